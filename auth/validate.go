package auth

import (
	"regexp"
	"strings"
	"unicode/utf16"
)

// MinPasswordLength is the shortest accepted password.
const MinPasswordLength = 8

// Whitespace covers Unicode spaces and the BOM as well as ASCII.
var emailPattern = regexp.MustCompile(`^[^\s\p{Z}\x{FEFF}@]+@[^\s\p{Z}\x{FEFF}@]+\.[^\s\p{Z}\x{FEFF}@]+$`)

// passwordLength counts UTF-16 code units, so characters outside the BMP
// count twice.
func passwordLength(s string) int {
	return len(utf16.Encode([]rune(s)))
}

// Errors maps a field to its message. An empty map means the form is valid.
type Errors map[Field]string

// Valid reports whether there are no errors.
func (e Errors) Valid() bool {
	return len(e) == 0
}

// Visible returns the message for f only if the field has been touched.
func (e Errors) Visible(f Field, touched Touched) string {
	if !touched[f] {
		return ""
	}
	return e[f]
}

// Validate checks the form for the current mode.
func Validate(s State) Errors {
	e := Errors{}
	if strings.TrimSpace(s.Username) == "" {
		e[Username] = "Username is required."
	}
	if s.Password == "" {
		e[Password] = "Password is required."
	} else if passwordLength(s.Password) < MinPasswordLength {
		e[Password] = "Password must be at least 8 characters."
	}
	if s.Mode == Register {
		if strings.TrimSpace(s.Email) == "" {
			e[Email] = "Email is required."
		} else if !emailPattern.MatchString(s.Email) {
			e[Email] = "Email format is invalid."
		}
	}
	return e
}

// Strength is the password strength tier shown in register mode.
type Strength string

const (
	NoStrength Strength = ""
	Weak       Strength = "Weak"
	Fair       Strength = "Fair"
	Good       Strength = "Good"
	Strong     Strength = "Strong"
	Elite      Strength = "Elite"
)

var (
	tiers      = []Strength{Weak, Fair, Good, Strong, Elite}
	upperRe    = regexp.MustCompile(`[A-Z]`)
	lowerRe    = regexp.MustCompile(`[a-z]`)
	digitRe    = regexp.MustCompile(`\d`)
	nonAlnumRe = regexp.MustCompile(`[^A-Za-z0-9]`)
)

// PasswordStrength scores the password one point each for length, upper
// case, lower case, digits and symbols. It is empty outside register mode.
func PasswordStrength(s State) Strength {
	if s.Mode != Register {
		return NoStrength
	}
	v := s.Password
	score := 0
	if passwordLength(v) >= MinPasswordLength {
		score++
	}
	for _, re := range []*regexp.Regexp{upperRe, lowerRe, digitRe, nonAlnumRe} {
		if re.MatchString(v) {
			score++
		}
	}
	if score < 1 {
		score = 1
	}
	return tiers[score-1]
}

// Percent is the meter fill for a tier.
func (s Strength) Percent() int {
	for i, t := range tiers {
		if t == s {
			return (i + 1) * 20
		}
	}
	return 0
}
