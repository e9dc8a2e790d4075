package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/radscrape/radscrape"
)

// sections segments the article's narrative body into ordered titled
// sections at heading boundaries (h2-h4). The buffer is seeded with the
// reserved introduction title so leading content before any heading is
// materialized; buffers with no accumulated lines are dropped rather than
// emitted as empty sections.
func (s *Scraper) sections(doc *goquery.Document) []radscrape.ArticleSection {
	sections := []radscrape.ArticleSection{}

	body := doc.Find(selArticleBody).First()
	if body.Length() == 0 {
		return sections
	}

	title := s.defaults.IntroTitle
	var lines []string

	flush := func() {
		if len(lines) == 0 {
			return
		}
		sections = append(sections, radscrape.ArticleSection{
			Slug:     radscrape.Slugify(title),
			Title:    title,
			Markdown: strings.Join(lines, "\n"),
		})
		lines = nil
	}

	// Direct children only, in document order. Text nodes and unrecognized
	// elements are skipped.
	body.Contents().Each(func(_ int, child *goquery.Selection) {
		switch goquery.NodeName(child) {
		case "h2", "h3", "h4":
			flush()
			title = radscrape.CleanText(child.Text())
		case "p":
			lines = append(lines, radscrape.CleanText(child.Text()))
		case "ul":
			child.Find("li").Each(func(_ int, li *goquery.Selection) {
				lines = append(lines, "- "+radscrape.CleanText(li.Text()))
			})
		}
	})
	flush()

	return sections
}
