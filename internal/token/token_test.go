package token

import "testing"

func TestIsNumber(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"0", true},
		{"12", true},
		{"-7", true},
		{"+3", true}, // strconv.ParseInt accepts an explicit sign
		{"", false},
		{"+", false},
		{"(", false},
		{"1.5", false},
		{"0x10", false},
		{"twelve", false},
	}

	for _, tt := range tests {
		tok := Token{Text: tt.text}
		if got := tok.IsNumber(); got != tt.want {
			t.Errorf("IsNumber(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestIsPunct(t *testing.T) {
	for _, text := range []string{OpenParen, CloseParen, Plus} {
		if !(Token{Text: text}).IsPunct() {
			t.Errorf("Expected %q to be punct", text)
		}
	}
	for _, text := range []string{"", "1", "-", "++"} {
		if (Token{Text: text}).IsPunct() {
			t.Errorf("Expected %q to not be punct", text)
		}
	}
}

func TestString(t *testing.T) {
	if got := (Token{Text: ""}).String(); got != "<empty>" {
		t.Errorf("Expected <empty>, got %q", got)
	}
	if got := (Token{Text: "42"}).String(); got != "42" {
		t.Errorf("Expected 42, got %q", got)
	}
}
