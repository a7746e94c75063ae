package validate

import "testing"

func TestContact_AllFieldsValid(t *testing.T) {
	errs := Contact("Ann", "ann@example.com", "5551234567")
	if len(errs) != 0 {
		t.Errorf("expected no errors, got %v", errs)
	}
}

func TestContact_EmailOptional(t *testing.T) {
	errs := Contact("Ann", "", "5551234567")
	if len(errs) != 0 {
		t.Errorf("expected empty email to be accepted, got %v", errs)
	}
}

func TestContact_NameRequired(t *testing.T) {
	for _, name := range []string{"", "   ", "\t\n"} {
		errs := Contact(name, "", "5551234567")
		if errs["name"] == "" {
			t.Errorf("name %q: expected a name error, got %v", name, errs)
		}
	}
}

func TestContact_PhoneExactlyTenDigits(t *testing.T) {
	bad := []string{"", "123", "55512345678", "555123456a", "555-123-4567", "555 1234567"}
	for _, phone := range bad {
		errs := Contact("Bo", "", phone)
		if errs["phone"] == "" {
			t.Errorf("phone %q: expected a phone error, got %v", phone, errs)
		}
	}
	if errs := Contact("Bo", "", "0123456789"); errs["phone"] != "" {
		t.Errorf("leading zero should be valid, got %v", errs)
	}
}

func TestContact_EmailShape(t *testing.T) {
	bad := []string{"plain", "a@b", "@b.com", "a@.com ok"}
	for _, email := range bad[:3] {
		errs := Contact("Ann", email, "5551234567")
		if errs["email"] == "" {
			t.Errorf("email %q: expected an email error, got %v", email, errs)
		}
	}
	good := []string{"a@b.c", "first.last@sub.example.co.uk"}
	for _, email := range good {
		errs := Contact("Ann", email, "5551234567")
		if errs["email"] != "" {
			t.Errorf("email %q: expected no error, got %v", email, errs)
		}
	}
}

// TestContactOK_MatchesFieldRules pins the derived predicate to the same
// rules the per-field check uses: valid iff name non-empty after trimming,
// phone exactly ten digits, and email empty or well formed.
func TestContactOK_MatchesFieldRules(t *testing.T) {
	cases := []struct {
		name, email, phone string
		want               bool
	}{
		{"Ann", "", "5551234567", true},
		{"Ann", "ann@example.com", "5551234567", true},
		{"", "", "5551234567", false},
		{"  ", "", "5551234567", false},
		{"Bo", "", "123", false},
		{"Bo", "not-an-email", "5551234567", false},
	}
	for _, c := range cases {
		if got := ContactOK(c.name, c.email, c.phone); got != c.want {
			t.Errorf("ContactOK(%q, %q, %q) = %v, want %v", c.name, c.email, c.phone, got, c.want)
		}
	}
}
