package analyzer

import "testing"

func TestExtractPersonalInfo(t *testing.T) {
	text := "John Doe\njohn@example.com\n+1-555-123-4567\nlinkedin.com/in/john-doe\ngithub.com/johndoe\n"
	info := ExtractPersonalInfo(text)

	if info.Name != "John Doe" {
		t.Errorf("Name = %q, want %q", info.Name, "John Doe")
	}
	if info.Email != "john@example.com" {
		t.Errorf("Email = %q, want %q", info.Email, "john@example.com")
	}
	if info.Phone == "" {
		t.Errorf("Phone not extracted")
	}
	if info.LinkedIn != "linkedin.com/in/john-doe" {
		t.Errorf("LinkedIn = %q, want %q", info.LinkedIn, "linkedin.com/in/john-doe")
	}
	if info.GitHub != "github.com/johndoe" {
		t.Errorf("GitHub = %q, want %q", info.GitHub, "github.com/johndoe")
	}
	if info.Portfolio != "" {
		t.Errorf("Portfolio = %q, want empty", info.Portfolio)
	}
}

func TestExtractPersonalInfoDefaults(t *testing.T) {
	info := ExtractPersonalInfo("")
	if info.Name != UnknownValue {
		t.Errorf("Name = %q, want %q", info.Name, UnknownValue)
	}
	if info.Email != UnknownValue {
		t.Errorf("Email = %q, want %q", info.Email, UnknownValue)
	}
	if info.Phone != "" || info.LinkedIn != "" || info.GitHub != "" {
		t.Errorf("expected empty phone/linkedin/github, got %+v", info)
	}
}

func TestExtractPersonalInfoFieldsAreIndependent(t *testing.T) {
	// No email or phone, but the GitHub link must still be found.
	info := ExtractPersonalInfo("Jane\nsee github.com/jane-dev for code\n")
	if info.Email != UnknownValue {
		t.Errorf("Email = %q, want %q", info.Email, UnknownValue)
	}
	if info.GitHub != "github.com/jane-dev" {
		t.Errorf("GitHub = %q, want %q", info.GitHub, "github.com/jane-dev")
	}
}

func TestExtractPersonalInfoSkipsBlankLeadingLinesForName(t *testing.T) {
	info := ExtractPersonalInfo("\n\n  Jane Roe  \njane@roe.dev\n")
	if info.Name != "Jane Roe" {
		t.Errorf("Name = %q, want %q", info.Name, "Jane Roe")
	}
}
