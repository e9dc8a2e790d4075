package radscrape

import "strings"

// ModalityClassifier infers imaging modalities from a page's taxonomy tags.
//
// Modality inference is fundamentally a lookup against an external
// controlled vocabulary that this system does not carry. The interface
// isolates the current best-guess heuristic so it can be swapped for a
// real taxonomy service without touching extraction logic. Implementations
// must return a best-effort, never-empty classification.
type ModalityClassifier interface {
	Classify(tags []string) []string
}

// Ensure TagModalityClassifier implements ModalityClassifier.
var _ ModalityClassifier = (*TagModalityClassifier)(nil)

// TagModalityClassifier is a coarse two-bucket heuristic: the presence of
// Token among the tags selects Match, otherwise Fallback. This is
// explicitly not authoritative.
type TagModalityClassifier struct {
	Token    string
	Match    string
	Fallback string
}

// NewTagModalityClassifier returns the classifier matching the source
// site's observed tagging behavior: a "ct" tag marks CT studies, anything
// else is treated as plain radiography.
func NewTagModalityClassifier() *TagModalityClassifier {
	return &TagModalityClassifier{Token: "ct", Match: "CT", Fallback: "X-ray"}
}

// Classify returns a single-element modality list selected by tag presence.
func (c *TagModalityClassifier) Classify(tags []string) []string {
	for _, tag := range tags {
		if strings.EqualFold(tag, c.Token) {
			return []string{c.Match}
		}
	}
	return []string{c.Fallback}
}
