package model

type Tab struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	Position        int64  `json:"order"`
	BackgroundImage string `json:"backgroundImage"`
	AutoSwitch      int    `json:"autoSwitch"`
	Ctime           int64  `json:"createdAt"`
	Mtime           int64  `json:"updatedAt"`
}
