// Package regions maps short region codes to the location slugs the
// search API expects in the gtsy parameter.
package regions

import "sort"

// Region is one searchable region.
type Region struct {
	Code string // short code used on the command line
	Slug string // gtsy value
	Name string // display name
}

var regions = map[string]Region{
	"by":      {Code: "by", Slug: "country-belarus", Name: "Belarus"},
	"minsk":   {Code: "minsk", Slug: "country-belarus~province-minsk~locality-minsk", Name: "Minsk"},
	"minsk-r": {Code: "minsk-r", Slug: "country-belarus~province-minskaja_oblast", Name: "Minsk region"},
	"brest":   {Code: "brest", Slug: "country-belarus~province-brestskaja_oblast", Name: "Brest region"},
	"vitebsk": {Code: "vitebsk", Slug: "country-belarus~province-vitebskaja_oblast", Name: "Vitebsk region"},
	"gomel":   {Code: "gomel", Slug: "country-belarus~province-gomelskaja_oblast", Name: "Gomel region"},
	"grodno":  {Code: "grodno", Slug: "country-belarus~province-grodnenskaja_oblast", Name: "Grodno region"},
	"mogilev": {Code: "mogilev", Slug: "country-belarus~province-mogilyovskaja_oblast", Name: "Mogilev region"},
}

// Get returns the region for a short code, or nil if unknown.
func Get(code string) *Region {
	if r, ok := regions[code]; ok {
		return &r
	}
	return nil
}

// Codes returns all known short codes, sorted.
func Codes() []string {
	codes := make([]string, 0, len(regions))
	for code := range regions {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
