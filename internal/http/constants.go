package http

const (
	HeaderContentType     = "Content-Type"
	HeaderValueJson       = "application/json"
	HeaderRequestID       = "X-Request-Id"
	HeaderReferer         = "Referer"
	HeaderWWWAuthenticate = "WWW-Authenticate"
)

// TimestampFormat is the rendering of ApiError.Timestamp.
const TimestampFormat = "2006-01-02 15:04:05"
