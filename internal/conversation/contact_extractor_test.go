package conversation

import "testing"

func TestExtractContactInfo_Email(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"my email is sarah.jones@example.com thanks", "sarah.jones@example.com"},
		{"reach me at JOHN+test@Mail.Co", "JOHN+test@Mail.Co"},
		{"no email here", ""},
		{"almost an email foo@bar", ""},
	}
	for _, tt := range tests {
		got := ExtractContactInfo(tt.text)
		if got.Email != tt.want {
			t.Errorf("ExtractContactInfo(%q).Email = %q, want %q", tt.text, got.Email, tt.want)
		}
	}
}

func TestExtractContactInfo_Phone(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"call me at 555-987-6543", "(555) 987-6543"},
		{"my number is (212) 555-0123", "(212) 555-0123"},
		{"it's +1 310.555.7788", "(310) 555-7788"},
		{"5559876543 works", "(555) 987-6543"},
		{"no digits here", ""},
	}
	for _, tt := range tests {
		got := ExtractContactInfo(tt.text)
		if got.Phone != tt.want {
			t.Errorf("ExtractContactInfo(%q).Phone = %q, want %q", tt.text, got.Phone, tt.want)
		}
	}
}

func TestExtractContactInfo_Name(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"Hi, my name is sarah jones", "Sarah Jones"},
		{"I'm Michael", "Michael"},
		{"this is Ana Smith", "Ana Smith"},
		{"call me Beth", "Beth"},
		{"I'm looking for a ring", ""},
		{"call me at 555-987-6543", ""},
		{"what are your hours?", ""},
	}
	for _, tt := range tests {
		got := ExtractContactInfo(tt.text)
		if got.Name != tt.want {
			t.Errorf("ExtractContactInfo(%q).Name = %q, want %q", tt.text, got.Name, tt.want)
		}
	}
}

func TestExtractContactInfo_AllFields(t *testing.T) {
	text := "My name is Sarah Jones, email sarah@example.com, phone 555-987-6543"
	got := ExtractContactInfo(text)
	if got.Name != "Sarah Jones" {
		t.Errorf("Name = %q", got.Name)
	}
	if got.Email != "sarah@example.com" {
		t.Errorf("Email = %q", got.Email)
	}
	if got.Phone != "(555) 987-6543" {
		t.Errorf("Phone = %q", got.Phone)
	}
}

func TestExtractContactInfo_Empty(t *testing.T) {
	got := ExtractContactInfo("")
	if got.Name != "" || got.Email != "" || got.Phone != "" {
		t.Errorf("expected zero value, got %+v", got)
	}
}
