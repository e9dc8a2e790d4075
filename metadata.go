package radscrape

import "time"

// Metadata is the envelope stamped on every record at assembly time.
type Metadata struct {
	// CreatedAt is the page's own publication timestamp when the page
	// exposes one, otherwise the capture time.
	CreatedAt time.Time `json:"created_at"`

	// URL is the origin URL the record was scraped from.
	URL string `json:"url"`

	// License is a static notice referencing the source site's terms.
	License string `json:"license"`
}
