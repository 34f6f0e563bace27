package utils

// ContextKey is the type used for request-scoped context values.
type ContextKey string

const (
	RequestIDKey  ContextKey = "request_id"
	UserAgentKey  ContextKey = "user_agent"
	IPAddressKey  ContextKey = "ip_address"
	EndpointKey   ContextKey = "endpoint"
	AdminIDKey    ContextKey = "admin_id"
	CancelFuncKey ContextKey = "cancel_func"
)
