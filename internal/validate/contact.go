// Package validate holds the contact field rules. The HTTP service and the
// terminal client both call into it so the two sides can never drift apart.
package validate

import (
	"regexp"
	"strings"
)

var (
	reEmail = regexp.MustCompile(`\S+@\S+\.\S+`)
	rePhone = regexp.MustCompile(`^\d{10}$`)
)

// Contact checks candidate contact fields and returns a map of field name to message.
// An empty map means the candidate is acceptable. Email is optional; name
// and phone are not.
func Contact(name, email, phone string) map[string]string {
	errs := make(map[string]string)
	if strings.TrimSpace(name) == "" {
		errs["name"] = "Name is required"
	}
	if email != "" && !reEmail.MatchString(email) {
		errs["email"] = "Please enter a valid email"
	}
	if !rePhone.MatchString(phone) {
		errs["phone"] = "Phone number must be exactly 10 digits"
	}
	return errs
}

// ContactOK reports whether the candidate passes every field rule.
func ContactOK(name, email, phone string) bool {
	return len(Contact(name, email, phone)) == 0
}
