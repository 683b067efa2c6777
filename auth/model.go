// Package auth holds the login/register form state, its validation and a
// stubbed submitter.
package auth

// Mode selects between logging in and registering.
type Mode int

const (
	Login Mode = iota
	Register
)

func (m Mode) String() string {
	if m == Register {
		return "register"
	}
	return "login"
}

// Field names a form input.
type Field string

const (
	Username Field = "username"
	Email    Field = "email"
	Password Field = "password"
)

// Fields lists the inputs in display order.
var Fields = []Field{Username, Email, Password}

// State is the form content. It is a value; every change returns a copy.
type State struct {
	Mode     Mode
	Username string
	Email    string
	Password string
}

// InitialState is an empty login form.
var InitialState = State{Mode: Login}

// WithMode switches mode. Switching to login drops the email.
func (s State) WithMode(m Mode) State {
	s.Mode = m
	if m == Login {
		s.Email = ""
	}
	return s
}

// WithField sets one input. Unknown fields leave the state unchanged.
func (s State) WithField(f Field, value string) State {
	switch f {
	case Username:
		s.Username = value
	case Email:
		s.Email = value
	case Password:
		s.Password = value
	}
	return s
}

// Value returns the content of one input.
func (s State) Value(f Field) string {
	switch f {
	case Username:
		return s.Username
	case Email:
		return s.Email
	case Password:
		return s.Password
	}
	return ""
}

// Touched records which fields have been blurred at least once. Errors are
// shown only for touched fields.
type Touched map[Field]bool

// All marks every field touched, as on submit.
func (t Touched) All() {
	for _, f := range Fields {
		t[f] = true
	}
}
