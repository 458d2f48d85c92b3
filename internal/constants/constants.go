package constants

// Session
const (
	SessionCookieName = "scheduler_session"
	ContextKeyUserID  = "user_id"
)

// Validation limits
const (
	MinUsernameLength = 3
	MaxUsernameLength = 50
	MinPasswordLength = 6
)

// Pagination
const (
	MinPageSize     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)
