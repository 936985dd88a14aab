package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Empty string", "", ""},
		{"Whitespace only", " \t\n\r\n ", ""},
		{"Plain line", "Jane Doe", "Jane Doe"},
		{"Tabs to spaces", "Go\tPython", "Go Python"},
		{"Two spaces collapse", "Go  Python", "Go Python"},
		{"Three spaces become paragraph break", "Jane Doe   jane@mail.com", "Jane Doe\n\njane@mail.com"},
		{"Mixed wide gap then tab", "Python   React\tAWS", "Python\n\nReact AWS"},
		{"Wide gap around single newline stays line break", "one   \n   two", "one\ntwo"},
		{"CRLF to LF", "line one\r\nline two", "line one\nline two"},
		{"Bare CR to LF", "line one\rline two", "line one\nline two"},
		{"Blank lines become paragraph break", "one\n\n\n\ntwo", "one\n\ntwo"},
		{"Trailing spaces on lines trimmed", "one   \n   two", "one\ntwo"},
		{"Safelist kept", "C++, C#, .NET (ASP) a/b @x", "C++, C#, .NET (ASP) a/b @x"},
		{"Bullets stripped", "• Go\n• Python", "Go\nPython"},
		{"Colon stripped", "Email:jane@mail.com", "Email jane@mail.com"},
		{"Apostrophe dropped", "Master's degree", "Masters degree"},
		{"Unicode letters kept", "José Müller", "José Müller"},
		{"Pipes separate", "Go | Python", "Go Python"},
		{"Spaced pipes", "Go  |  Python", "Go Python"},
		{"Wide gap", "Go    |  Python", "Go\n\nPython"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.input))
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"",
		"JANE DOE\r\n\r\nSenior Engineer   |   Lagos, Nigeria\n\n\n* Go\t* Python",
		"  weird ✓ chars ™ and   spacing \n\n  ",
	}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once))
	}
}

func TestLines(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, Lines("a\n\nb\n c "))
	assert.Empty(t, Lines(""))
}

func TestCollapseSpaces(t *testing.T) {
	assert.Equal(t, "a b c", CollapseSpaces(" a\n b\n\nc "))
}
