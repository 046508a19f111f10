package model

const (
	ThemeLight  = "light"
	ThemeDark   = "dark"
	ThemeSystem = "system"
)

// Settings is a singleton record, stored as the single row id=1.
type Settings struct {
	ID      int64  `json:"-"`
	Theme   string `json:"theme"`
	AutoRun int    `json:"autoRun"`
	Mtime   int64  `json:"updatedAt"`
}

func ValidTheme(theme string) bool {
	switch theme {
	case ThemeLight, ThemeDark, ThemeSystem:
		return true
	}
	return false
}
