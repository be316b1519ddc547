package domain

// DocumentCategory tags a corpus document with the dashboard area it answers for
type DocumentCategory string

const (
	CategoryLeave      DocumentCategory = "leave"
	CategoryLearning   DocumentCategory = "learning"
	CategoryCompliance DocumentCategory = "compliance"
	CategoryWellness   DocumentCategory = "wellness"
	CategoryCareer     DocumentCategory = "career"
	CategoryGeneral    DocumentCategory = "general"
)

// Document is a transient unit of retrieval built per request: the text the
// retriever searches over and the canned response surfaced on a match.
// Never persisted.
type Document struct {
	SearchText string
	Response   string
	Category   DocumentCategory
}
