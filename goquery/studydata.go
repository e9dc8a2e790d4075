package goquery

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/PuerkitoBio/goquery"
	"github.com/radscrape/radscrape"
)

// studyViewerData is the shape of the JSON blob the site embeds in a
// hidden node for its client-side study viewer.
type studyViewerData struct {
	Inclusions []studyInclusion `json:"inclusions"`
}

// studyInclusion is one image entry of the embedded payload. The site
// emits imageId as either a string or a number depending on page version.
type studyInclusion struct {
	ImageID   any    `json:"imageId"`
	Caption   string `json:"caption"`
	Thumbnail string `json:"thumbnail"`
}

// studyImages decodes the hidden study-viewer payload into article images.
// A missing node or a malformed payload degrades to an empty list; the
// embedded data must never abort the whole extraction. Modality and plane
// are not derivable from this payload shape and stay unset.
func (s *Scraper) studyImages(doc *goquery.Document) []radscrape.ArticleImage {
	images := []radscrape.ArticleImage{}

	node := doc.Find(selStudyViewerData).First()
	if node.Length() == 0 {
		return images
	}

	var data studyViewerData
	if err := json.Unmarshal([]byte(node.Text()), &data); err != nil {
		return images
	}

	for _, inc := range data.Inclusions {
		images = append(images, radscrape.ArticleImage{
			ImageID:  imageID(inc.ImageID, s.defaults.UnknownID),
			Caption:  inc.Caption,
			Filepath: inc.Thumbnail,
		})
	}
	return images
}

// imageID renders the embedded identifier as a string, covering the
// string/number ambiguity. Missing identifiers get the sentinel.
func imageID(v any, sentinel string) string {
	switch id := v.(type) {
	case nil:
		return sentinel
	case string:
		return id
	case float64:
		return strconv.FormatFloat(id, 'f', -1, 64)
	default:
		return fmt.Sprint(id)
	}
}
