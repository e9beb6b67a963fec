package message

const (
	InvalidInput = "Invalid input."
	ServerError  = "An unexpected error occurred."
	Unavailable  = "The service is temporarily unavailable. Please try again."
	Healthy      = "ok"

	FmtErrStatusCode = "rec.Code = %d, want: %d"
)
