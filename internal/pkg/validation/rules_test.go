package validation

import "testing"

func TestIsValidEmail(t *testing.T) {
	valid := []string{
		"user@example.com",
		"first.last@sub.domain.org",
		"a+tag@mail.co",
	}
	for _, v := range valid {
		if !IsValidEmail(v) {
			t.Errorf("expected %q to be valid", v)
		}
	}

	invalid := []string{
		"",
		"plainaddress",
		"@no-local.com",
		"user@",
		"user@domain",
		"UPPER@example.com", // emails are normalized to lowercase before validation
	}
	for _, v := range invalid {
		if IsValidEmail(v) {
			t.Errorf("expected %q to be invalid", v)
		}
	}
}

func TestIsValidSlug(t *testing.T) {
	valid := []string{"go-basics", "react", "course-101"}
	for _, v := range valid {
		if !IsValidSlug(v) {
			t.Errorf("expected %q to be valid", v)
		}
	}

	invalid := []string{"", "-leading", "trailing-", "double--hyphen", "Upper-Case", "with space"}
	for _, v := range invalid {
		if IsValidSlug(v) {
			t.Errorf("expected %q to be invalid", v)
		}
	}
}

func TestIsValidPassword(t *testing.T) {
	if IsValidPassword("short7!") {
		t.Error("expected 7 character password to be rejected")
	}
	if !IsValidPassword("longenough") {
		t.Error("expected 10 character password to be accepted")
	}
}

func TestIsValidName(t *testing.T) {
	if IsValidName("A") {
		t.Error("expected single character name to be rejected")
	}
	if !IsValidName("Jo") {
		t.Error("expected two character name to be accepted")
	}
	long := make([]byte, NameMaxLength+1)
	for i := range long {
		long[i] = 'a'
	}
	if IsValidName(string(long)) {
		t.Error("expected over-length name to be rejected")
	}
}
