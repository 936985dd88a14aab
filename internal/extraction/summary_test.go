package extraction

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractSummary(t *testing.T) {
	long := strings.Repeat("word ", 210)
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "paragraph under heading",
			text: sampleResume,
			want: "Results-driven Senior Software Engineer with 7+ years of experience building scalable backend systems and leading distributed teams across fintech and e-commerce.",
		},
		{
			name: "multi-line block collapsed",
			text: "Summary\nBackend engineer focused on payments\nand reliable distributed systems at scale.",
			want: "Backend engineer focused on payments and reliable distributed systems at scale.",
		},
		{
			name: "too short is skipped for a later block",
			text: "Profile\nEngineer.\n\nProfessional Summary\nProduct designer who turns research into shipped experiences for millions.",
			want: "Product designer who turns research into shipped experiences for millions.",
		},
		{name: "too long", text: "Summary\n" + long, want: ""},
		{name: "no heading", text: "Jane Doe\nEngineer with a long history of shipping many great products.", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractSummary(normalized(tt.text)))
		})
	}
}

func TestExtractIndustry(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"technology", sampleResume, "Technology"},
		{"finance", "Analyst at a bank covering investment banking and audit", "Finance"},
		{"healthcare", "Registered nurse in a hospital, clinical patient care", "Healthcare"},
		{"tie goes to earlier industry", "software sales", "Technology"},
		{"none", "Jane Doe", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractIndustry(normalized(tt.text)))
		})
	}
}

func TestExtractExperienceEntries(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "date lines joined with role line",
			text: sampleResume,
			want: []string{
				"Senior Software Engineer at Paystack Jan 2020 - Present",
				"Software Engineer, Andela Technologies 2016 - 2019",
			},
		},
		{
			name: "date on the same line",
			text: "Data Analyst, Acme Corp 03/2018 to 05/2020",
			want: []string{"Data Analyst, Acme Corp 03/2018 to 05/2020"},
		},
		{
			name: "graduation year alone is not a range",
			text: "BSc Physics 2015",
			want: []string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractExperienceEntries(normalized(tt.text)))
		})
	}
}

func TestExtractExperienceEntries_Truncated(t *testing.T) {
	text := strings.Repeat("Engineer ", 30) + "2019 - 2021"
	got := ExtractExperienceEntries(text)
	if assert.Len(t, got, 1) {
		assert.LessOrEqual(t, len([]rune(got[0])), maxEntryLen)
	}
}
