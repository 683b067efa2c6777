package auth

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestWithModeClearsEmailOnLogin(t *testing.T) {
	s := InitialState.WithMode(Register).WithField(Email, "a@b.co")
	if s.Email != "a@b.co" {
		t.Fatalf("email not set, got %q", s.Email)
	}
	if got := s.WithMode(Register).Email; got != "a@b.co" {
		t.Fatalf("register should keep email, got %q", got)
	}
	if got := s.WithMode(Login).Email; got != "" {
		t.Fatalf("login should clear email, got %q", got)
	}
}

func TestWithFieldIsCopy(t *testing.T) {
	s := InitialState
	s2 := s.WithField(Username, "xq")
	if s.Username != "" {
		t.Fatal("original state should not change")
	}
	if s2.Value(Username) != "xq" {
		t.Fatalf("expected xq, got %q", s2.Value(Username))
	}
	if s2.WithField(Field("nope"), "x") != s2 {
		t.Fatal("unknown field should be ignored")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		state State
		want  Errors
	}{
		{"empty login", State{Mode: Login}, Errors{
			Username: "Username is required.",
			Password: "Password is required.",
		}},
		{"blank username", State{Mode: Login, Username: "   ", Password: "longenough"}, Errors{
			Username: "Username is required.",
		}},
		{"short password", State{Mode: Login, Username: "u", Password: "short"}, Errors{
			Password: "Password must be at least 8 characters.",
		}},
		{"valid login ignores email", State{Mode: Login, Username: "u", Password: "longenough", Email: "bad"}, Errors{}},
		{"register missing email", State{Mode: Register, Username: "u", Password: "longenough"}, Errors{
			Email: "Email is required.",
		}},
		{"register bad email", State{Mode: Register, Username: "u", Password: "longenough", Email: "a@b"}, Errors{
			Email: "Email format is invalid.",
		}},
		{"register email with space", State{Mode: Register, Username: "u", Password: "longenough", Email: "a b@c.de"}, Errors{
			Email: "Email format is invalid.",
		}},
		{"register email with no-break space", State{Mode: Register, Username: "u", Password: "longenough", Email: "a\u00a0b@x.io"}, Errors{
			Email: "Email format is invalid.",
		}},
		{"register email with ideographic space", State{Mode: Register, Username: "u", Password: "longenough", Email: "a@x\u3000y.io"}, Errors{
			Email: "Email format is invalid.",
		}},
		{"astral password counts double", State{Mode: Login, Username: "u", Password: "😀😀😀😀"}, Errors{}},
		{"seven bmp runes too short", State{Mode: Login, Username: "u", Password: "象棋象棋象棋象"}, Errors{
			Password: "Password must be at least 8 characters.",
		}},
		{"valid register", State{Mode: Register, Username: "u", Password: "longenough", Email: "a@b.co"}, Errors{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Validate(tt.state)
			if len(got) != len(tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
			for f, msg := range tt.want {
				if got[f] != msg {
					t.Fatalf("%s: expected %q, got %q", f, msg, got[f])
				}
			}
			if got.Valid() != (len(tt.want) == 0) {
				t.Fatal("Valid disagrees with error count")
			}
		})
	}
}

func TestVisibleOnlyWhenTouched(t *testing.T) {
	e := Validate(InitialState)
	touched := Touched{}
	if e.Visible(Username, touched) != "" {
		t.Fatal("untouched field should hide its error")
	}
	touched[Username] = true
	if e.Visible(Username, touched) == "" {
		t.Fatal("touched field should show its error")
	}
	touched.All()
	if !touched[Email] || !touched[Password] {
		t.Fatal("All should touch every field")
	}
}

func TestPasswordStrength(t *testing.T) {
	tests := []struct {
		pw   string
		want Strength
	}{
		{"", Weak},
		{"abc", Weak},
		{"abcdefgh", Fair},
		{"Abcdefgh", Good},
		{"Abcdefg1", Strong},
		{"Abcdef1!", Elite},
		{"ABC1!", Good},
		{"😀😀😀😀", Fair},
	}
	for _, tt := range tests {
		s := State{Mode: Register, Password: tt.pw}
		if got := PasswordStrength(s); got != tt.want {
			t.Fatalf("%q: expected %s, got %s", tt.pw, tt.want, got)
		}
	}
	if got := PasswordStrength(State{Mode: Login, Password: "Abcdef1!"}); got != NoStrength {
		t.Fatalf("login mode should have no strength, got %q", got)
	}
}

func TestStrengthPercent(t *testing.T) {
	if Weak.Percent() != 20 || Good.Percent() != 60 || Elite.Percent() != 100 {
		t.Fatal("unexpected meter percentages")
	}
	if NoStrength.Percent() != 0 {
		t.Fatal("no strength should be empty")
	}
}

func TestStubSubmitter(t *testing.T) {
	valid := State{Mode: Login, Username: "u", Password: "longenough"}

	res, err := StubSubmitter{}.Submit(context.Background(), valid)
	if err != nil || !res.OK {
		t.Fatalf("expected ok, got %+v %v", res, err)
	}
	if res.Message(Login) != "Logged in." || res.Message(Register) != "Registered." {
		t.Fatal("unexpected success messages")
	}
	first := res.RequestID
	if first == "" {
		t.Fatal("missing request id")
	}

	res, err = StubSubmitter{Fail: true}.Submit(context.Background(), valid)
	if err != nil || res.OK || res.Message(Login) != "Failed." {
		t.Fatalf("expected failure result, got %+v %v", res, err)
	}
	if res.RequestID == first {
		t.Fatal("request ids should differ between submissions")
	}

	if _, err := (StubSubmitter{}).Submit(context.Background(), InitialState); !errors.Is(err, ErrInvalidForm) {
		t.Fatalf("expected ErrInvalidForm, got %v", err)
	}
}

func TestStubSubmitterCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	valid := State{Mode: Login, Username: "u", Password: "longenough"}
	_, err := StubSubmitter{Delay: time.Hour}.Submit(ctx, valid)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
