package commands

// UserError is a rejected command: bad input or a broken game rule. Nothing
// the command did is kept. Reason is the message template that produced
// Message.
type UserError struct {
	Reason  string
	Message string
}

func (e *UserError) Error() string {
	return e.Message
}

// Reject renders the named message template into a UserError.
func Reject(name string, data any) *UserError {
	return &UserError{Reason: name, Message: Render(name, data)}
}
