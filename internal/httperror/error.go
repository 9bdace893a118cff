package httperror

type Error struct {
	Message string `json:"error" example:"the request body must not be empty"`
}

func New(e error) Error {
	return Error{
		Message: e.Error(),
	}
}
