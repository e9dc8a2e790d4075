package radscrape

// Defaults holds the documented fallback values used when an expected
// structural anchor is absent. They are injected configuration rather than
// embedded literals so defaults can be overridden per deployment without a
// code change.
type Defaults struct {
	// UnknownID is the sentinel for missing identifiers (case/article
	// source IDs, embedded image IDs).
	UnknownID string

	// UntitledTitle is used when no page heading is found.
	UntitledTitle string

	// UnknownTaxonomy is used for body system, body part, and per-image
	// modality/plane when no taxonomy anchor is found.
	UnknownTaxonomy string

	// UnknownCertainty is the diagnosis certainty label when no certainty
	// indicator element exists.
	UnknownCertainty string

	// Presentation is the fixed clinical-presentation placeholder. Real
	// extraction of this field is an open problem; the placeholder
	// contract is preserved deliberately.
	Presentation string

	// IntroTitle is the reserved title for article content appearing
	// before the first heading.
	IntroTitle string

	// AgeUnit is the unit assumed for extracted patient ages.
	AgeUnit string

	// License is the static notice stamped into every record's metadata.
	License string
}

// NewDefaults returns the fallback values matching the source site's
// observed page contract.
func NewDefaults() Defaults {
	return Defaults{
		UnknownID:        "unknown",
		UntitledTitle:    "Untitled",
		UnknownTaxonomy:  "Unknown",
		UnknownCertainty: "unknown",
		Presentation:     "Not explicitly stated",
		IntroTitle:       "Introduction",
		AgeUnit:          "years",
		License:          "See Radiopaedia ToS",
	}
}
