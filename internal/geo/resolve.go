// Package geo resolves free-form location strings against a closed gazetteer
// of countries, first-level regions (US states, Canadian provinces, Nigerian
// states) and major cities.
package geo

import (
	"sort"
	"strings"
	"unicode"
)

// Place is the resolved form of a location string. Fields are "" when unknown.
type Place struct {
	City    string
	Region  string
	Country string
}

// Known reports whether any part of the location was recognised.
func (p Place) Known() bool {
	return p.City != "" || p.Region != "" || p.Country != ""
}

// SameRegion reports whether both places resolve to the same region of the same country.
func SameRegion(a, b Place) bool {
	if a.Region == "" || !strings.EqualFold(a.Region, b.Region) {
		return false
	}
	return a.Country == "" || b.Country == "" || a.Country == b.Country
}

// SameCountry reports whether both places resolve to the same country.
func SameCountry(a, b Place) bool {
	return a.Country != "" && a.Country == b.Country
}

type region struct {
	name    string
	country string
}

var (
	cityIndex   = make(map[string]City)
	regionIndex = make(map[string]region) // lower-case region names
	codeIndex   = make(map[string]region) // upper-case two-letter codes
	citiesByLen []City
)

func init() {
	for code, name := range usStates {
		codeIndex[code] = region{name, UnitedStates}
		regionIndex[strings.ToLower(name)] = region{name, UnitedStates}
	}
	for code, name := range caProvinces {
		codeIndex[code] = region{name, Canada}
		regionIndex[strings.ToLower(name)] = region{name, Canada}
	}
	for _, name := range ngStates {
		regionIndex[strings.ToLower(name)] = region{name, Nigeria}
	}
	regionIndex["fct"] = region{"Federal Capital Territory", Nigeria}

	for _, c := range cities {
		cityIndex[strings.ToLower(c.Name)] = c
	}
	citiesByLen = append([]City(nil), cities...)
	sort.SliceStable(citiesByLen, func(i, j int) bool {
		return len(citiesByLen[i].Name) > len(citiesByLen[j].Name)
	})
}

// LookupCity finds a known city by name, case-insensitively.
func LookupCity(name string) (City, bool) {
	c, ok := cityIndex[strings.ToLower(strings.TrimSpace(name))]
	return c, ok
}

// Cities returns the known cities, longest name first.
func Cities() []City {
	return append([]City(nil), citiesByLen...)
}

// IsRegionCode reports whether code is an upper-case US state or Canadian province code.
func IsRegionCode(code string) bool {
	_, ok := codeIndex[code]
	return ok
}

// LookupRegion resolves a region name or upper-case code to its name and country.
func LookupRegion(s string) (name, country string, ok bool) {
	s = strings.TrimSpace(s)
	if r, found := codeIndex[s]; found {
		return r.name, r.country, true
	}
	if r, found := regionIndex[strings.ToLower(s)]; found {
		return r.name, r.country, true
	}
	return "", "", false
}

// LookupCountry resolves a country name or common abbreviation.
func LookupCountry(s string) (string, bool) {
	c, ok := countryAliases[strings.ToLower(strings.TrimSpace(s))]
	return c, ok
}

// Resolve maps a location string such as "Austin, TX 78701", "Lagos, Nigeria"
// or "Toronto" to a Place. Unrecognised parts are ignored.
func Resolve(location string) Place {
	var p Place
	parts := strings.Split(location, ",")
	for i := len(parts) - 1; i >= 0; i-- {
		resolvePart(&p, strings.TrimSpace(parts[i]))
	}

	if p.City != "" && p.Region == "" {
		c, _ := LookupCity(p.City)
		p.Region = c.Region
	}
	if p.Country == "" {
		if p.Region != "" {
			_, p.Country, _ = LookupRegion(p.Region)
		}
		if p.Country == "" && p.City != "" {
			c, _ := LookupCity(p.City)
			p.Country = c.Country
		}
	}
	return p
}

func resolvePart(p *Place, part string) {
	part = stripPostalCode(part)
	if part == "" {
		return
	}
	if c, ok := LookupCity(part); ok {
		// parts are visited right to left, so the leftmost city wins
		p.City = c.Name
		return
	}
	if name, country, ok := LookupRegion(part); ok {
		if p.Region == "" {
			p.Region = name
			if p.Country == "" {
				p.Country = country
			}
		}
		return
	}
	if country, ok := LookupCountry(part); ok {
		if p.Country == "" {
			p.Country = country
		}
		return
	}

	// "San Francisco CA" without a comma
	fields := strings.Fields(part)
	if len(fields) > 1 && IsRegionCode(fields[len(fields)-1]) {
		resolvePart(p, fields[len(fields)-1])
		resolvePart(p, strings.Join(fields[:len(fields)-1], " "))
	}
}

// stripPostalCode removes trailing all-digit tokens ("TX 78701" -> "TX").
func stripPostalCode(s string) string {
	fields := strings.Fields(s)
	for len(fields) > 0 && isDigits(fields[len(fields)-1]) {
		fields = fields[:len(fields)-1]
	}
	return strings.Join(fields, " ")
}

func isDigits(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) && r != '-' {
			return false
		}
	}
	return s != ""
}
