// Package skills provides the skill taxonomy: canonical skill names, their
// variants, category groupings and bounded-token matching over résumé text.
package skills

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/jonathan/resume-matcher/internal/schemas"
)

//go:embed taxonomy.json
var defaultTaxonomyJSON []byte

//go:embed taxonomy.schema.json
var taxonomySchemaJSON string

// Entry is one canonical skill and the variants that resolve to it.
type Entry struct {
	Name     string   `json:"name"`
	Category string   `json:"category,omitempty"`
	Aliases  []string `json:"aliases,omitempty"`
	// ExactCase makes the canonical name match case-sensitively ("Go" must not match "go").
	// Aliases always match case-insensitively.
	ExactCase bool `json:"exact_case,omitempty"`
}

// Document is the on-disk taxonomy format.
type Document struct {
	Version   string  `json:"version,omitempty"`
	Technical []Entry `json:"technical"`
	Soft      []Entry `json:"soft,omitempty"`
}

// Taxonomy is an immutable, compiled skill dictionary. It is safe for concurrent use.
type Taxonomy struct {
	version   string
	technical lexicon
	soft      lexicon
}

// lexicon is one compiled list of entries.
type lexicon struct {
	entries  []Entry
	index    map[string]int // lower-case variant -> entry index
	matchers []*regexp.Regexp
}

var (
	defaultOnce sync.Once
	defaultTax  *Taxonomy
	defaultErr  error
)

// Default returns the taxonomy embedded in the binary.
// It panics if the embedded data is invalid, which is a build defect.
func Default() *Taxonomy {
	defaultOnce.Do(func() {
		defaultTax, defaultErr = Parse(defaultTaxonomyJSON)
	})
	if defaultErr != nil {
		panic(fmt.Sprintf("embedded skill taxonomy is invalid: %v", defaultErr))
	}
	return defaultTax
}

// Load reads and compiles a taxonomy document from r.
func Load(r io.Reader) (*Taxonomy, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &TaxonomyError{Message: "failed to read taxonomy", Cause: err}
	}
	return Parse(data)
}

// LoadFile reads a taxonomy document from path.
func LoadFile(path string) (*Taxonomy, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &TaxonomyError{Source: path, Message: "failed to open taxonomy file", Cause: err}
	}
	defer func() { _ = f.Close() }()

	t, err := Load(f)
	if err != nil {
		if te, ok := err.(*TaxonomyError); ok {
			te.Source = path
		}
		return nil, err
	}
	return t, nil
}

// Parse validates data against the taxonomy schema and compiles it.
func Parse(data []byte) (*Taxonomy, error) {
	if err := schemas.ValidateJSONString(taxonomySchemaJSON, string(data)); err != nil {
		return nil, &TaxonomyError{Message: "taxonomy does not match schema", Cause: err}
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &TaxonomyError{Message: "failed to decode taxonomy", Cause: err}
	}
	return New(doc)
}

// New compiles a taxonomy from an in-memory document. Entries whose names
// collide case-insensitively are merged; an alias already claimed by an
// earlier entry is ignored.
func New(doc Document) (*Taxonomy, error) {
	technical, err := compile(doc.Technical)
	if err != nil {
		return nil, err
	}
	soft, err := compile(doc.Soft)
	if err != nil {
		return nil, err
	}
	return &Taxonomy{version: doc.Version, technical: technical, soft: soft}, nil
}

// Extend returns a new taxonomy containing t's entries plus those of other.
// Entries with an existing canonical name contribute their aliases, and their
// category when set. New entries are appended.
func (t *Taxonomy) Extend(other *Taxonomy) (*Taxonomy, error) {
	doc := Document{
		Version:   t.version,
		Technical: mergeEntries(t.technical.entries, other.technical.entries),
		Soft:      mergeEntries(t.soft.entries, other.soft.entries),
	}
	if other.version != "" {
		doc.Version = t.version + "+" + other.version
	}
	return New(doc)
}

// Version returns the document version string.
func (t *Taxonomy) Version() string {
	return t.version
}

// Entries returns a copy of the technical entries in taxonomy order.
func (t *Taxonomy) Entries() []Entry {
	return copyEntries(t.technical.entries)
}

// SoftEntries returns a copy of the soft-skill lexicon.
func (t *Taxonomy) SoftEntries() []Entry {
	return copyEntries(t.soft.entries)
}

// Canonical resolves any spelling of a technical skill to its canonical name.
// Lookup is case-insensitive on the whole string.
func (t *Taxonomy) Canonical(variant string) (string, bool) {
	return t.technical.lookup(variant)
}

// CanonicalSoft resolves any spelling of a soft skill to its canonical name.
func (t *Taxonomy) CanonicalSoft(variant string) (string, bool) {
	return t.soft.lookup(variant)
}

// Variants returns the canonical name followed by its aliases, or nil if the
// skill is unknown.
func (t *Taxonomy) Variants(skill string) []string {
	i, ok := t.technical.index[key(skill)]
	if !ok {
		return nil
	}
	e := t.technical.entries[i]
	return append([]string{e.Name}, e.Aliases...)
}

// Category returns the category of a known skill, or "".
func (t *Taxonomy) Category(skill string) string {
	i, ok := t.technical.index[key(skill)]
	if !ok {
		return ""
	}
	return t.technical.entries[i].Category
}

// Categories lists the distinct categories in use, sorted.
func (t *Taxonomy) Categories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, e := range t.technical.entries {
		if e.Category != "" && !seen[e.Category] {
			seen[e.Category] = true
			out = append(out, e.Category)
		}
	}
	sort.Strings(out)
	return out
}

// InCategory returns the canonical names in a category, in taxonomy order.
func (t *Taxonomy) InCategory(category string) []string {
	var out []string
	for _, e := range t.technical.entries {
		if strings.EqualFold(e.Category, category) {
			out = append(out, e.Name)
		}
	}
	return out
}

func (l lexicon) lookup(variant string) (string, bool) {
	i, ok := l.index[key(variant)]
	if !ok {
		return "", false
	}
	return l.entries[i].Name, true
}

func key(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func compile(entries []Entry) (lexicon, error) {
	l := lexicon{index: make(map[string]int)}

	for _, e := range entries {
		name := strings.TrimSpace(e.Name)
		if name == "" {
			continue
		}
		if i, ok := l.index[key(name)]; ok && strings.EqualFold(l.entries[i].Name, name) {
			l.entries[i].Aliases = appendAliases(l.entries[i].Aliases, e.Aliases)
			continue
		}
		e.Name = name
		e.Aliases = appendAliases(nil, e.Aliases)
		l.entries = append(l.entries, e)
		l.index[key(name)] = len(l.entries) - 1
	}

	for i := range l.entries {
		e := &l.entries[i]
		kept := e.Aliases[:0]
		for _, a := range e.Aliases {
			if j, claimed := l.index[key(a)]; claimed {
				if j == i {
					kept = append(kept, a)
				}
				continue
			}
			l.index[key(a)] = i
			kept = append(kept, a)
		}
		e.Aliases = kept

		re, err := boundedPattern(*e)
		if err != nil {
			return lexicon{}, &TaxonomyError{Message: fmt.Sprintf("invalid entry %q", e.Name), Cause: err}
		}
		l.matchers = append(l.matchers, re)
	}

	return l, nil
}

// appendAliases appends trimmed, non-empty aliases not already present.
func appendAliases(dst, src []string) []string {
	seen := make(map[string]bool, len(dst))
	for _, a := range dst {
		seen[key(a)] = true
	}
	for _, a := range src {
		a = strings.TrimSpace(a)
		if a == "" || seen[key(a)] {
			continue
		}
		seen[key(a)] = true
		dst = append(dst, a)
	}
	return dst
}

func mergeEntries(base, extra []Entry) []Entry {
	out := copyEntries(base)
	pos := make(map[string]int, len(out))
	for i, e := range out {
		pos[key(e.Name)] = i
	}
	for _, e := range extra {
		if i, ok := pos[key(e.Name)]; ok {
			out[i].Aliases = appendAliases(out[i].Aliases, e.Aliases)
			if e.Category != "" {
				out[i].Category = e.Category
			}
			continue
		}
		pos[key(e.Name)] = len(out)
		out = append(out, Entry{Name: e.Name, Category: e.Category, Aliases: appendAliases(nil, e.Aliases), ExactCase: e.ExactCase})
	}
	return out
}

func copyEntries(entries []Entry) []Entry {
	out := make([]Entry, len(entries))
	for i, e := range entries {
		out[i] = e
		out[i].Aliases = append([]string(nil), e.Aliases...)
	}
	return out
}
