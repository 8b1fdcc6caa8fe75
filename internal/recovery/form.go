// Package recovery holds the password-recovery form rules: which emails may
// be submitted, how the form reacts to the outcome of the upstream call and
// where the user is sent when leaving the page.
package recovery

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

const (
	SuccessMessage  = "Password reset link has been sent to your email!"
	FallbackError   = "Failed to send reset email"
	InvalidEmailMsg = "Please enter a valid email address"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidEmail reports whether email has the local@domain.tld shape. It is an
// advisory check only; the auth service is authoritative.
func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// Form is the state of the recovery form between submissions.
type Form struct {
	Email   string
	Busy    bool
	Message string
	Error   string
}

func (f Form) CanSubmit() bool {
	return !f.Busy && f.Email != "" && ValidEmail(f.Email)
}

func (f *Form) Begin() {
	f.Busy = true
	f.Message = ""
	f.Error = ""
}

func (f *Form) Succeed() {
	f.Busy = false
	f.Message = SuccessMessage
	f.Email = ""
}

// Fail keeps the email so the user can resubmit it.
func (f *Form) Fail(msg string) {
	f.Busy = false
	if msg == "" {
		msg = FallbackError
	}
	f.Error = msg
}

var ErrInvalidOrigin = errors.New("invalid origin")

// CallbackURL builds the reset-page link the auth service puts in the email.
func CallbackURL(origin, resetPath string) (string, error) {
	u, err := url.Parse(origin)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return "", fmt.Errorf("%w: %q", ErrInvalidOrigin, origin)
	}
	return strings.TrimRight(origin, "/") + resetPath, nil
}
