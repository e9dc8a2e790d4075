package radscrape

import (
	"context"
	"encoding/json"
)

// Case represents a single clinical vignette record with patient context,
// diagnosis, narrative, and images. Cases are value objects: immutable once
// assembled, created fresh per page and discarded after serialization.
type Case struct {
	Source     string   `json:"source"`
	SourceID   string   `json:"source_id"`
	Title      string   `json:"title"`
	BodySystem string   `json:"body_system"`
	BodyPart   string   `json:"body_part"`
	Modality   []string `json:"modality"`

	Patient              Patient   `json:"patient"`
	ClinicalPresentation string    `json:"clinical_presentation"`
	Diagnosis            Diagnosis `json:"diagnosis"`
	Narrative            Narrative `json:"narrative"`

	// Images preserves on-page display order.
	Images []CaseImage `json:"images"`

	Tags     []string `json:"tags"`
	Metadata Metadata `json:"metadata"`
}

// Patient holds the demographics extracted from the case's patient-data
// block. Absent fields stay nil; values are never invented.
type Patient struct {
	Age     *int    `json:"age"`
	AgeUnit string  `json:"age_unit"`
	Sex     *string `json:"sex"`
	Other   *string `json:"other"`
}

// Diagnosis pairs the free-text diagnosis with a certainty label.
type Diagnosis struct {
	Text      string `json:"text"`
	Certainty string `json:"certainty"`
}

// Narrative holds the case's free-text blocks. Impression is usually mixed
// into the discussion on the source site and stays empty.
type Narrative struct {
	Findings   string `json:"findings"`
	Impression string `json:"impression"`
	Discussion string `json:"discussion"`
}

// CaseImage is one entry of a case's image carousel.
type CaseImage struct {
	// ImageID is derived deterministically from the case's source ID and
	// the image's on-page position.
	ImageID     string            `json:"image_id"`
	Modality    string            `json:"modality"`
	Plane       string            `json:"plane"`
	Filepath    string            `json:"filepath"`
	Caption     string            `json:"caption"`
	Annotations map[string]string `json:"annotations"`
}

// Validate returns an error if the case contains invalid fields.
func (c *Case) Validate() error {
	if c.SourceID == "" {
		return Errorf(EINVALID, "case source ID required")
	}
	if c.Metadata.URL == "" {
		return Errorf(EINVALID, "case origin URL required")
	}
	return nil
}

// ToJSON serializes the case to its compact structured-text representation.
// Round-tripping through this format reconstructs equivalent field values.
func (c *Case) ToJSON() (string, error) {
	b, err := json.Marshal(c)
	if err != nil {
		return "", Errorf(EINTERNAL, "failed to serialize case: %v", err)
	}
	return string(b), nil
}

// CaseFromJSON reconstructs a Case from its serialized representation.
func CaseFromJSON(s string) (*Case, error) {
	var c Case
	if err := json.Unmarshal([]byte(s), &c); err != nil {
		return nil, Errorf(EINVALID, "failed to parse case payload: %v", err)
	}
	return &c, nil
}

// CaseService represents a service for managing stored cases.
type CaseService interface {
	// CreateCase stores a case. An existing record with the same source ID
	// is replaced.
	CreateCase(ctx context.Context, c *Case) error

	// FindCaseBySourceID retrieves a case by its source-local identifier.
	// Returns ENOTFOUND if the case does not exist.
	FindCaseBySourceID(ctx context.Context, sourceID string) (*Case, error)

	// FindCases retrieves cases matching the filter.
	FindCases(ctx context.Context, filter CaseFilter) ([]*Case, error)

	// DeleteCase permanently removes a case.
	// Returns ENOTFOUND if the case does not exist.
	DeleteCase(ctx context.Context, sourceID string) error
}

// CaseFilter represents a filter for FindCases.
type CaseFilter struct {
	SourceID   *string `json:"source_id"`
	BodySystem *string `json:"body_system"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
