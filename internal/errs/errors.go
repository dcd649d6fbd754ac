package errs

type Error string

func (e Error) Error() string { return string(e) }

const (
	ErrInvalidRequestBody = Error("invalid request body")
	ErrInvalidParams      = Error("invalid params")
	ErrSenderRequired     = Error("sender id is required")
	ErrReceiverRequired   = Error("receiver id is required")
	ErrContentRequired    = Error("message content is required")
	ErrQueryRequired      = Error("search query is required")
	ErrSelfMessage        = Error("sender and receiver must be different users")
	ErrUserNotFound       = Error("user not found")
	ErrUnauthorized       = Error("unauthorized")
	ErrInvalidToken       = Error("invalid token")
)

// IsValidation reports whether err is a malformed or incomplete request.
func IsValidation(err error) bool {
	switch err {
	case ErrInvalidRequestBody, ErrInvalidParams, ErrSenderRequired,
		ErrReceiverRequired, ErrContentRequired, ErrQueryRequired:
		return true
	}
	return false
}

// IsPolicy reports whether err is a well-formed request rejected by a business rule.
func IsPolicy(err error) bool {
	return err == ErrSelfMessage
}

func IsNotFound(err error) bool {
	return err == ErrUserNotFound
}
