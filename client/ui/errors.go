package ui

// ActionableError is an error whose message can be shown to the player as is.
type ActionableError struct {
	Message string
	Err     error
}

func (e *ActionableError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *ActionableError) Unwrap() error {
	return e.Err
}
