package middlewares

const (
	CtxRequestID = "request_id"
	CtxSession   = "session.current"
	CtxSessionID = "session.id"
)
