package radscrape_test

import (
	"regexp"
	"testing"

	"github.com/radscrape/radscrape"
	"github.com/stretchr/testify/assert"
)

func TestURLFilter_Match(t *testing.T) {
	t.Parallel()

	t.Run("nil filter passes everything", func(t *testing.T) {
		t.Parallel()
		var f *radscrape.URLFilter
		assert.True(t, f.Match("https://radiopaedia.org/cases/x"))
	})

	t.Run("include patterns", func(t *testing.T) {
		t.Parallel()
		f := &radscrape.URLFilter{
			Include: []*regexp.Regexp{regexp.MustCompile(`/cases/`)},
		}
		assert.True(t, f.Match("https://radiopaedia.org/cases/x"))
		assert.False(t, f.Match("https://radiopaedia.org/articles/x"))
	})

	t.Run("exclude applied after include", func(t *testing.T) {
		t.Parallel()
		f := &radscrape.URLFilter{
			Include: []*regexp.Regexp{regexp.MustCompile(`/cases/`)},
			Exclude: []*regexp.Regexp{regexp.MustCompile(`draft`)},
		}
		assert.True(t, f.Match("https://radiopaedia.org/cases/x"))
		assert.False(t, f.Match("https://radiopaedia.org/cases/draft-1"))
	})
}
