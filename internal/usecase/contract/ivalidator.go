package usecasecontract

// IValidator checks the locally-enforced input shapes. Everything else
// (credential checks, uniqueness) belongs to the directory and resolver.
type IValidator interface {
	// ValidateNickname enforces 3–20 chars of [A-Za-z0-9_].
	ValidateNickname(nickname string) error
	// ValidatePassword enforces the minimum length of 6.
	ValidatePassword(password string) error
}
