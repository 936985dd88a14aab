package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCredentialsExtractor_SampleResume(t *testing.T) {
	c := CredentialsExtractor{}.Extract(normalized(sampleResume))

	assert.Equal(t, []string{"B.Sc. Computer Science, University of Lagos"}, c.Education)
	assert.Equal(t, []string{"AWS Certified Solutions Architect", "CKA"}, c.Certifications)
	assert.Equal(t, []string{"English", "Yoruba", "French"}, c.Languages)
}

func TestExtractEducation(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"degree with institution on same line", "Bachelor of Science in Computer Science, Stanford University", []string{"Bachelor of Science in Computer Science, Stanford University"}},
		{"institution on next line", "M.Sc. Data Science\nImperial College London", []string{"M.Sc. Data Science, Imperial College London"}},
		{"apostrophe degree", "Master's degree in Finance", []string{"Masters degree in Finance"}},
		{"institution only", "Studied at University of Ibadan", []string{"Studied at University of Ibadan"}},
		{"tool name is not a degree", "MS Excel, MS Word", []string{}},
		{"abbreviation with field", "BS in Mechanical Engineering", []string{"BS in Mechanical Engineering"}},
		{"none", "Self taught", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractEducation(normalized(tt.text)))
		})
	}
}

func TestExtractEducation_Capped(t *testing.T) {
	text := "BSc Physics\nMSc Physics\nPhD Physics\nMBA Finance\nHND Accounting"
	assert.Len(t, ExtractEducation(text), maxEducation)
}

func TestExtractCertifications(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"section entries", "Certifications\nGoogle Cloud Professional Architect\nScrum Master Training", []string{"Google Cloud Professional Architect", "Scrum Master Training"}},
		{"issuer and keyword outside section", "Earned Microsoft Certified Azure Developer in 2021", []string{"Earned Microsoft Certified Azure Developer in 2021"}},
		{"acronyms", "Holds PMP and CISSP credentials", []string{"PMP", "CISSP"}},
		{"acronym already covered by section entry", "Certifications\nCKA Certified Kubernetes Administrator", []string{"CKA Certified Kubernetes Administrator"}},
		{"issuer without keyword ignored", "Deployed to AWS and Google Cloud", []string{}},
		{"none", "Built things", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractCertifications(normalized(tt.text)))
		})
	}
}

func TestExtractLanguages(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"section preferred", "Studied English literature\n\nLanguages\nFrench, Igbo", []string{"French", "Igbo"}},
		{"whole text without section", "Fluent in Spanish and English", []string{"Spanish", "English"}},
		{"case sensitive", "a german shepherd", []string{}},
		{"duplicates collapse", "English, English", []string{"English"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractLanguages(normalized(tt.text)))
		})
	}
}
