package model

// SectionName links a bookmark to a section by display name, not id. Nothing
// enforces that a section with that name exists.
type Bookmark struct {
	ID          int64  `json:"id"`
	TabID       int64  `json:"tabId"`
	URL         string `json:"url"`
	Title       string `json:"title"`
	Favicon     string `json:"favicon"`
	SectionName string `json:"sectionName"`
	Position    int64  `json:"order"`
	Ctime       int64  `json:"createdAt"`
	Mtime       int64  `json:"updatedAt"`
}
