package skills

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFind_BoundedTokens(t *testing.T) {
	tax := Default()
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"go not inside google", "Worked at Google on search", nil},
		{"lowercase go is a verb", "ready to go live", nil},
		{"go as token", "Languages Go, Python", []string{"Go", "Python"}},
		{"go opening a phrase", "Go to market strategy lead", nil},
		{"go before conjunction", "Services in Go and Rust", []string{"Go", "Rust"}},
		{"go at line end", "Five years with Go\nPython", []string{"Go", "Python"}},
		{"later listed go counts", "Go to market lead. Stack Go, SQL", []string{"Go", "SQL"}},
		{"golang alias", "golang and k8s", []string{"Go", "Kubernetes"}},
		{"java not inside javascript", "JavaScript developer", []string{"JavaScript"}},
		{"sql not inside postgresql", "PostgreSQL tuning", []string{"PostgreSQL"}},
		{"c++ and c#", "C++ and C# and Rust", []string{"C++", "C#", "Rust"}},
		{"dotted names", "Node.js, Vue.js and .NET Core", []string{"Node.js", "Vue", ".NET"}},
		{"discovery order", "AWS then React then Python", []string{"AWS", "React", "Python"}},
		{"case insensitive", "PYTHON, docker", []string{"Python", "Docker"}},
		{"multi word alias", "Deployed on Amazon Web Services", []string{"AWS"}},
		{"empty", "", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Names(tax.Find(tt.text))
			if tt.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFind_ReportsCategoryAndPosition(t *testing.T) {
	m := Default().Find("xx Docker")
	if assert.Len(t, m, 1) {
		assert.Equal(t, "Docker", m[0].Name)
		assert.Equal(t, "devops", m[0].Category)
		assert.Equal(t, 3, m[0].Pos)
	}
}

func TestFindSoft(t *testing.T) {
	got := Names(Default().FindSoft("Strong leadership and team player with problem-solving skills"))
	assert.Equal(t, []string{"Leadership", "Teamwork", "Problem Solving"}, got)
}
