package validation

const (
	// Password requirements
	MinPasswordLength = 8
	MaxPasswordLength = 72

	// Username requirements
	MinUsernameLength = 3
	MaxUsernameLength = 30
)
