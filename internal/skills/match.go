package skills

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"
)

// tokenChars are the characters that continue a skill token. A variant only
// matches when the characters on both sides of it are outside this class, so
// "Go" does not match inside "Google" and "C" does not match inside "C++".
const tokenChars = `\p{L}\p{N}_+#`

// shortExactLen is the longest exact-case name that needs list context.
const shortExactLen = 2

// proseFollower captures a lower-case word following a match on the same line.
var proseFollower = regexp.MustCompile(`^[ \t]+(\p{Ll}+)`)

// Match is one taxonomy entry found in text.
type Match struct {
	Name     string
	Category string
	// Pos is the byte offset of the first occurrence.
	Pos int
}

// boundedPattern builds the matcher for an entry. Longer variants are tried
// first so that "React Native" wins over "React" at the same position.
func boundedPattern(e Entry) (*regexp.Regexp, error) {
	type variant struct {
		text  string
		exact bool
	}
	variants := []variant{{e.Name, e.ExactCase}}
	for _, a := range e.Aliases {
		variants = append(variants, variant{a, false})
	}
	sort.SliceStable(variants, func(i, j int) bool {
		return len(variants[i].text) > len(variants[j].text)
	})

	alts := make([]string, 0, len(variants))
	for _, v := range variants {
		q := regexp.QuoteMeta(v.text)
		if v.exact {
			q = "(?-i:" + q + ")"
		}
		alts = append(alts, q)
	}

	return regexp.Compile(`(?i)(?:^|[^` + tokenChars + `])(` + strings.Join(alts, "|") + `)(?:[^` + tokenChars + `]|$)`)
}

// Find returns every technical entry whose name or alias occurs in text as a
// bounded token, ordered by first occurrence. Entries found at the same
// offset keep taxonomy order.
func (t *Taxonomy) Find(text string) []Match {
	return t.technical.find(text)
}

// FindSoft is Find over the soft-skill lexicon.
func (t *Taxonomy) FindSoft(text string) []Match {
	return t.soft.find(text)
}

func (l lexicon) find(text string) []Match {
	if text == "" {
		return nil
	}
	var out []Match
	for i := range l.matchers {
		pos, ok := l.firstOccurrence(i, text)
		if !ok {
			continue
		}
		out = append(out, Match{
			Name:     l.entries[i].Name,
			Category: l.entries[i].Category,
			Pos:      pos,
		})
	}
	sort.SliceStable(out, func(a, b int) bool {
		return out[a].Pos < out[b].Pos
	})
	return out
}

// firstOccurrence returns the offset of the first accepted match of entry i.
// A short exact-case name such as "Go" also reads as an ordinary word, so it
// counts only in list context: the next word on the line must not be a
// lower-case word other than "and" or "or". "Go, Python" and "Go and Rust"
// match; "Go to market" does not.
func (l lexicon) firstOccurrence(i int, text string) (int, bool) {
	e := l.entries[i]
	short := e.ExactCase && utf8.RuneCountInString(e.Name) <= shortExactLen
	for _, loc := range l.matchers[i].FindAllStringSubmatchIndex(text, -1) {
		start, end := loc[2], loc[3]
		if short && text[start:end] == e.Name && !listContext(text[end:]) {
			continue
		}
		return start, true
	}
	return 0, false
}

func listContext(rest string) bool {
	m := proseFollower.FindStringSubmatch(rest)
	if m == nil {
		return true
	}
	return m[1] == "and" || m[1] == "or"
}

// Names returns the canonical names of matches in order.
func Names(matches []Match) []string {
	names := make([]string, len(matches))
	for i, m := range matches {
		names[i] = m.Name
	}
	return names
}
