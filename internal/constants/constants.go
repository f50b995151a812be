package constants

const (
	// SessionCookieName is the name of the session cookie.
	SessionCookieName = "todo_session"

	// ContextKeyUserID is the key under which the authenticated user ID is
	// stored in both the session and the request context.
	ContextKeyUserID = "user_id"

	// MinPasswordLength is the minimum accepted password length at signup.
	MinPasswordLength = 8
)
