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

func TestIsValidDate(t *testing.T) {
	valid := []string{"2023-01-01", "2000-12-31"}
	invalid := []string{"2023-13-01", "01-01-2023", "2023/01/01", "yesterday", ""}
	for _, s := range valid {
		if _, ok := IsValidDate(s); !ok {
			t.Errorf("IsValidDate(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if _, ok := IsValidDate(s); ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestIsValidTimeOfDay(t *testing.T) {
	valid := []string{"08:30", "08:30:00", "23:59:59", "00:00"}
	invalid := []string{"24:00", "8:3", "08:61", "0830", ""}
	for _, s := range valid {
		if !IsValidTimeOfDay(s) {
			t.Errorf("IsValidTimeOfDay(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsValidTimeOfDay(s) {
			t.Errorf("IsValidTimeOfDay(%q) = true, want false", s)
		}
	}
}

func TestIsValidStaffID(t *testing.T) {
	valid := []string{"1", "42", "1234567890"}
	invalid := []string{"", "12345678901", "12a", "-1", "1.5"}
	for _, s := range valid {
		if !IsValidStaffID(s) {
			t.Errorf("IsValidStaffID(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsValidStaffID(s) {
			t.Errorf("IsValidStaffID(%q) = true, want false", s)
		}
	}
}

func TestIsValidIPv4(t *testing.T) {
	valid := []string{"192.168.1.201", "10.0.0.1", "255.255.255.255"}
	invalid := []string{"256.1.1.1", "192.168.1", "01.2.3.4", "a.b.c.d", ""}
	for _, s := range valid {
		if !IsValidIPv4(s) {
			t.Errorf("IsValidIPv4(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsValidIPv4(s) {
			t.Errorf("IsValidIPv4(%q) = true, want false", s)
		}
	}
}
