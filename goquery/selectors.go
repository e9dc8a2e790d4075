package goquery

// Structural anchors for radiopaedia.org markup, kept in one place so
// markup drift on the site requires changing data here, not extraction
// logic.
const (
	// Shared between cases and articles.
	selTitle      = "h1.header-title"
	selBodySystem = ".meta-item-systems .col-sm-8 a"
	selTags       = ".meta-item-tags .col-sm-8 a"

	// Case pages.
	selCaseRID          = ".row.rid .col-sm-8"
	selCaseDate         = "time.date"
	selPatientData      = "#case-patient-data"
	selPatientDataItem  = ".data-item"
	selPatientDataLabel = ".data-item-label"
	selCertainty        = ".diagnostic-certainty-container"
	selFindings         = ".study-findings.body"
	selDiscussion       = "#case-discussion"
	selCarouselImages   = "._StudyCarouselHeader_ImageListItem img"

	// Article pages.
	selArticleRID      = ".row.section-end.rid .col-sm-8"
	selArticleBody     = ".body.user-generated-content"
	selStudyViewerData = ".SidebarStudyViewer .hidden.data"
)
