package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"test@example.com", "user.name+1@domain.co", "a@b.cd"}
	invalid := []string{"test@", "@example.com", "test@.com", "test@com", " ", ""}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestIsValidPayMonth(t *testing.T) {
	valid := []string{"2026-01", "2026-12", "1999-06"}
	invalid := []string{
		"2026-00",      // month zero
		"2026-13",      // month thirteen
		"2026-1",       // missing zero padding
		"202601",       // missing dash
		"2026-01-15",   // full date
		"March 2026",   // words
		"",             // empty
		"26-01",        // short year
	}
	for _, month := range valid {
		if !IsValidPayMonth(month) {
			t.Errorf("IsValidPayMonth(%q) = false, want true", month)
		}
	}
	for _, month := range invalid {
		if IsValidPayMonth(month) {
			t.Errorf("IsValidPayMonth(%q) = true, want false", month)
		}
	}
}

func TestIsValidBankAccountNumber(t *testing.T) {
	valid := []string{"12345678", "000123456789", "123456789012345678901234"}
	invalid := []string{
		"1234567",                   // too short
		"1234567890123456789012345", // too long
		"12345abc",                  // non-digits
		"",
	}
	for _, account := range valid {
		if !IsValidBankAccountNumber(account) {
			t.Errorf("IsValidBankAccountNumber(%q) = false, want true", account)
		}
	}
	for _, account := range invalid {
		if IsValidBankAccountNumber(account) {
			t.Errorf("IsValidBankAccountNumber(%q) = true, want false", account)
		}
	}
}

func TestIsValidDateTime(t *testing.T) {
	if _, ok := IsValidDateTime("2026-03-15T10:30:00Z"); !ok {
		t.Error("expected RFC3339 timestamp to be valid")
	}
	if _, ok := IsValidDateTime("2026-03-15T10:30:00+07:00"); !ok {
		t.Error("expected offset timestamp to be valid")
	}
	if _, ok := IsValidDateTime("2026-03-15"); ok {
		t.Error("expected bare date to be invalid")
	}
}

func TestValidationErrorsToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "month", Message: "must be in YYYY-MM format"},
		{Field: "hours", Message: "must be non-negative"},
	}

	m := errs.ToMap()
	if len(m) != 2 {
		t.Fatalf("ToMap() returned %d entries, want 2", len(m))
	}
	if m["month"] != "must be in YYYY-MM format" {
		t.Errorf("unexpected message for month: %q", m["month"])
	}

	want := "month: must be in YYYY-MM format; hours: must be non-negative"
	if errs.Error() != want {
		t.Errorf("Error() = %q, want %q", errs.Error(), want)
	}
}
