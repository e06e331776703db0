// Package validation provides input validation utilities
package validation

import "regexp"

// Violation identifies a single user-input rule violation.
type Violation string

const (
	NameInvalid      Violation = "name_invalid"
	EmailInvalid     Violation = "email_invalid"
	EmailTaken       Violation = "email_taken"
	PasswordInvalid  Violation = "password_invalid"
	PasswordMismatch Violation = "password_mismatch"
)

const (
	MaxNameLength     = 50
	MinPasswordLength = 6
	MaxPasswordLength = 40
)

// emailPattern accepts local-part@domain.tld addresses. The final dot-label
// requirement rejects addresses with a trailing dot after the TLD, and the
// character classes exclude commas and additional @ signs.
var emailPattern = regexp.MustCompile(`^[\w+\-.]+@[a-zA-Z\d\-.]+\.[a-zA-Z]+$`)

// Candidate is the transient input for a user create or update. The
// confirmation field is compared but never persisted.
type Candidate struct {
	Name                 string
	Email                string
	Password             string
	PasswordConfirmation string
	// RequirePassword is set on create; an update may leave the password
	// fields empty to keep the current digest.
	RequirePassword bool
}

// PasswordSupplied reports whether the candidate carries a password change.
func (c Candidate) PasswordSupplied() bool {
	return c.RequirePassword || c.Password != "" || c.PasswordConfirmation != ""
}

// Result is the aggregate outcome of validating a candidate.
type Result struct {
	Violations []Violation
}

// Valid reports whether no rule was violated.
func (r Result) Valid() bool {
	return len(r.Violations) == 0
}

// Has reports whether the result contains the given violation.
func (r Result) Has(v Violation) bool {
	for _, got := range r.Violations {
		if got == v {
			return true
		}
	}
	return false
}

// Strings returns the violations as plain strings for API responses.
func (r Result) Strings() []string {
	out := make([]string, len(r.Violations))
	for i, v := range r.Violations {
		out[i] = string(v)
	}
	return out
}

// ValidateUser checks every format rule and returns the full violation set.
// Uniqueness of the email is a persistence concern layered on top by the
// service; this function is pure.
func ValidateUser(c Candidate) Result {
	var res Result

	if c.Name == "" || len(c.Name) > MaxNameLength {
		res.Violations = append(res.Violations, NameInvalid)
	}

	if c.Email == "" || !ValidEmail(c.Email) {
		res.Violations = append(res.Violations, EmailInvalid)
	}

	if c.PasswordSupplied() {
		if len(c.Password) < MinPasswordLength || len(c.Password) > MaxPasswordLength {
			res.Violations = append(res.Violations, PasswordInvalid)
		}
		if c.Password != c.PasswordConfirmation {
			res.Violations = append(res.Violations, PasswordMismatch)
		}
	}

	return res
}

// ValidEmail reports whether the address matches the accepted pattern.
func ValidEmail(email string) bool {
	if len(email) > 254 {
		return false
	}
	return emailPattern.MatchString(email)
}
