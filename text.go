package radscrape

import (
	"regexp"
	"strconv"
	"strings"
)

// CleanText collapses all runs of whitespace (including newlines and tabs)
// to a single space and trims leading/trailing whitespace. Empty input
// yields an empty string, never an error.
//
// This is the only text-cleaning path: every extractor routes raw DOM text
// through it before storing a value.
func CleanText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Slugify derives a machine-usable slug from a section title: lower-cased
// with spaces replaced by underscores.
func Slugify(title string) string {
	return strings.ReplaceAll(strings.ToLower(title), " ", "_")
}

var digitRunRe = regexp.MustCompile(`\d+`)

// FirstInt returns the first run of digits in s as an integer.
// Returns false if s contains no digits.
func FirstInt(s string) (int, bool) {
	m := digitRunRe.FindString(s)
	if m == "" {
		return 0, false
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		return 0, false
	}
	return n, true
}
