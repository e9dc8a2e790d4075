package radscrape_test

import (
	"testing"
	"time"

	"github.com/radscrape/radscrape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCase() *radscrape.Case {
	age := 34
	sex := "female"
	return &radscrape.Case{
		Source:     radscrape.Source,
		SourceID:   "rID-8654",
		Title:      "Cystic bronchiectasis",
		BodySystem: "Chest",
		BodyPart:   "Unknown",
		Modality:   []string{"CT"},
		Patient: radscrape.Patient{
			Age:     &age,
			AgeUnit: "years",
			Sex:     &sex,
		},
		ClinicalPresentation: "Not explicitly stated",
		Diagnosis: radscrape.Diagnosis{
			Text:      "Cystic bronchiectasis",
			Certainty: "Diagnosis certain",
		},
		Narrative: radscrape.Narrative{
			Findings:   "Extensive cystic change.",
			Discussion: "Classic appearance.",
		},
		Images: []radscrape.CaseImage{
			{
				ImageID:     "rID-8654_img_1",
				Modality:    "Unknown",
				Plane:       "Unknown",
				Filepath:    "https://example.org/img/1.jpg",
				Caption:     "Image 1 from case",
				Annotations: map[string]string{},
			},
		},
		Tags: []string{"chest", "ct"},
		Metadata: radscrape.Metadata{
			CreatedAt: time.Date(2021, 3, 14, 9, 26, 53, 0, time.UTC),
			URL:       "https://radiopaedia.org/cases/cystic-bronchiectasis-1",
			License:   "See Radiopaedia ToS",
		},
	}
}

func TestCase_Validate(t *testing.T) {
	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, testCase().Validate())
	})

	t.Run("missing source ID", func(t *testing.T) {
		t.Parallel()
		c := testCase()
		c.SourceID = ""
		err := c.Validate()
		require.Error(t, err)
		assert.Equal(t, radscrape.EINVALID, radscrape.ErrorCode(err))
	})

	t.Run("missing origin URL", func(t *testing.T) {
		t.Parallel()
		c := testCase()
		c.Metadata.URL = ""
		err := c.Validate()
		require.Error(t, err)
		assert.Equal(t, radscrape.EINVALID, radscrape.ErrorCode(err))
	})
}

func TestCase_JSONRoundTrip(t *testing.T) {
	t.Parallel()

	original := testCase()

	payload, err := original.ToJSON()
	require.NoError(t, err)

	restored, err := radscrape.CaseFromJSON(payload)
	require.NoError(t, err)

	assert.Equal(t, original, restored)
}

func TestCaseFromJSON_Malformed(t *testing.T) {
	t.Parallel()

	_, err := radscrape.CaseFromJSON("{not json")
	require.Error(t, err)
	assert.Equal(t, radscrape.EINVALID, radscrape.ErrorCode(err))
}
