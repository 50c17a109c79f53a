package dto

type CreateUserInput struct {
	Name    string
	Pin     string
	IsAdmin bool

	// Admin credentials authorizing the creation.
	AdminName string
	AdminPin  string
}

type ChangePinInput struct {
	TargetName string
	NewPin     string

	AdminName string
	AdminPin  string
}
