package goquery

import (
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/radscrape/radscrape"
)

// assembleCase composes the per-field extractor outputs into a Case and
// stamps the metadata envelope. No field is computed here.
func (s *Scraper) assembleCase(doc *goquery.Document, url string) *radscrape.Case {
	sourceID := s.sourceID(doc, selCaseRID)
	title := s.title(doc)
	pageTags := tags(doc)

	return &radscrape.Case{
		Source:     radscrape.Source,
		SourceID:   sourceID,
		Title:      title,
		BodySystem: s.bodySystem(doc),

		// Mapping body parts needs a lookup table the site does not expose.
		BodyPart: s.defaults.UnknownTaxonomy,
		Modality: s.classifier.Classify(pageTags),

		Patient:              s.patient(doc),
		ClinicalPresentation: s.defaults.Presentation,
		Diagnosis: radscrape.Diagnosis{
			// Solved cases are titled by their diagnosis.
			Text:      title,
			Certainty: s.certainty(doc),
		},
		Narrative: s.narrative(doc),
		Images:    s.caseImages(doc, sourceID),
		Tags:      pageTags,
		Metadata: radscrape.Metadata{
			CreatedAt: s.caseCreatedAt(doc),
			URL:       url,
			License:   s.defaults.License,
		},
	}
}

// patient reads age and sex from the labeled data items inside the
// patient-data block. Absent fields stay nil; no values are invented.
func (s *Scraper) patient(doc *goquery.Document) radscrape.Patient {
	p := radscrape.Patient{AgeUnit: s.defaults.AgeUnit}

	container := doc.Find(selPatientData).First()
	if container.Length() == 0 {
		return p
	}

	container.Find(selPatientDataItem).Each(func(_ int, item *goquery.Selection) {
		labelNode := item.Find(selPatientDataLabel).First()
		if labelNode.Length() == 0 {
			return
		}

		label := strings.ToLower(radscrape.CleanText(labelNode.Text()))
		value := radscrape.CleanText(strings.Replace(item.Text(), labelNode.Text(), "", 1))

		switch {
		case strings.Contains(label, "age"):
			if n, ok := radscrape.FirstInt(value); ok {
				p.Age = &n
			}
		case strings.Contains(label, "gender"), strings.Contains(label, "sex"):
			sex := strings.ToLower(value)
			p.Sex = &sex
		}
	})

	return p
}

func (s *Scraper) certainty(doc *goquery.Document) string {
	node := doc.Find(selCertainty).First()
	if node.Length() == 0 {
		return s.defaults.UnknownCertainty
	}
	return radscrape.CleanText(node.Text())
}

func (s *Scraper) narrative(doc *goquery.Document) radscrape.Narrative {
	var n radscrape.Narrative
	if findings := doc.Find(selFindings).First(); findings.Length() > 0 {
		n.Findings = radscrape.CleanText(findings.Text())
	}
	// Impression is usually mixed into the discussion on the source site.
	if discussion := doc.Find(selDiscussion).First(); discussion.Length() > 0 {
		n.Discussion = radscrape.CleanText(discussion.Text())
	}
	return n
}

// caseImages collects the carousel images in display order. High-res
// variants are loaded client-side; only the carousel src is available
// here. Identifiers derive from the source ID and the carousel position,
// counting entries without a src so positions stay stable.
func (s *Scraper) caseImages(doc *goquery.Document, sourceID string) []radscrape.CaseImage {
	images := []radscrape.CaseImage{}
	doc.Find(selCarouselImages).Each(func(i int, img *goquery.Selection) {
		src, ok := img.Attr("src")
		if !ok || src == "" {
			return
		}

		images = append(images, radscrape.CaseImage{
			ImageID:     fmt.Sprintf("%s_img_%d", sourceID, i+1),
			Modality:    s.defaults.UnknownTaxonomy,
			Plane:       s.defaults.UnknownTaxonomy,
			Filepath:    src,
			Caption:     fmt.Sprintf("Image %d from case", i+1),
			Annotations: map[string]string{},
		})
	})
	return images
}

// caseCreatedAt reads the page's publication timestamp, falling back to
// the capture time when the date node is absent or unparseable.
func (s *Scraper) caseCreatedAt(doc *goquery.Document) time.Time {
	if attr, ok := doc.Find(selCaseDate).First().Attr("datetime"); ok {
		if t, err := time.Parse(time.RFC3339, attr); err == nil {
			return t
		}
	}
	return s.now().UTC()
}
