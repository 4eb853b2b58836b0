package response

const (
	MessageSuccess = "Success"

	DefaultErrorMessage     = "Something went wrong"
	InternalServerErrorCode = 500
	BadRequestErrorCode     = 1
)
