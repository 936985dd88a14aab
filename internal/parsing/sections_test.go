package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var skillHeadings = []string{"technical skills", "skills"}

func TestSection(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		want   string
		wantOK bool
	}{
		{
			name:   "heading on own line",
			text:   "Jane Doe\n\nSkills\nGo, Python\nDocker\n\nExperience\nAcme",
			want:   "Go, Python\nDocker",
			wantOK: true,
		},
		{
			name:   "inline content",
			text:   "Technical Skills Go, Rust\nKafka",
			want:   "Go, Rust\nKafka",
			wantOK: true,
		},
		{
			name:   "stops at next heading without blank line",
			text:   "SKILLS\nGo\nEducation\nBSc",
			want:   "Go",
			wantOK: true,
		},
		{
			name:   "blank line after bare heading skipped",
			text:   "Skills\n\nGo, SQL\n\nOther",
			want:   "Go, SQL",
			wantOK: true,
		},
		{
			name:   "word prefix is not a heading",
			text:   "Skilled communicator\nGo",
			wantOK: false,
		},
		{
			name:   "no section",
			text:   "Jane Doe\nEngineer",
			wantOK: false,
		},
		{
			name:   "empty heading falls through to later one",
			text:   "Skills\n\n\nExperience\nAcme\n\nTechnical Skills\nGo",
			want:   "Go",
			wantOK: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Section(tt.text, skillHeadings)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsHeading(t *testing.T) {
	assert.True(t, IsHeading("EXPERIENCE"))
	assert.True(t, IsHeading(" Work Experience "))
	assert.True(t, IsHeading("Education."))
	assert.False(t, IsHeading("Experience with Go"))
	assert.False(t, IsHeading(""))
}

func TestSections_AllBlocksInOrder(t *testing.T) {
	text := "Summary\nShort.\n\nSkills\nGo\n\nProfessional Summary\nA longer paragraph."
	got := Sections(text, []string{"professional summary", "summary"})
	assert.Equal(t, []string{"Short.", "A longer paragraph."}, got)
}
