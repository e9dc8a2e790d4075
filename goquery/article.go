package goquery

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/radscrape/radscrape"
)

// assembleArticle composes the per-field extractor outputs into an Article
// and stamps the metadata envelope.
func (s *Scraper) assembleArticle(doc *goquery.Document, url string) *radscrape.Article {
	return &radscrape.Article{
		Source:     radscrape.Source,
		SourceID:   s.sourceID(doc, selArticleRID),
		Type:       radscrape.TypeArticle,
		Title:      s.title(doc),
		BodySystem: s.bodySystem(doc),
		BodyPart:   nil,
		Sections:   s.sections(doc),
		Images:     s.studyImages(doc),
		Tags:       tags(doc),
		Metadata: radscrape.Metadata{
			// Article pages carry no reliable date node.
			CreatedAt: s.now().UTC(),
			URL:       url,
			License:   s.defaults.License,
		},
	}
}
