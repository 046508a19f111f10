package model

type Section struct {
	ID       int64  `json:"id"`
	TabID    int64  `json:"tabId"`
	Name     string `json:"name"`
	Color    string `json:"color"`
	Position int64  `json:"order"`
	Ctime    int64  `json:"createdAt"`
	Mtime    int64  `json:"updatedAt"`
}
