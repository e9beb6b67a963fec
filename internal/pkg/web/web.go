package web

const (
	HeaderContentType     = "Content-Type"
	HeaderContentEncoding = "Content-Encoding"
	HeaderAcceptEncoding  = "Accept-Encoding"
	HeaderRequestID       = "X-Request-ID"
	HeaderVary            = "Vary"

	MimeJSON = "application/json"
)
