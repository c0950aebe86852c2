package models

// AccessibilityConfig holds a user's accessibility preferences. It is a
// read-only input to the game endpoints and affects presentation only,
// never scoring. Owned by the settings screen; stored as a single JSON
// value in the settings table.
type AccessibilityConfig struct {
	Volume       int    `json:"volume"`
	Brightness   int    `json:"brightness"`
	Theme        string `json:"theme"` // light, dark or high-contrast
	ReduceMotion bool   `json:"reduceMotion"`
	SimplifiedUI bool   `json:"simplifiedUI"`
	FontSize     string `json:"fontSize"` // small, medium or large
	SoundEffects bool   `json:"soundEffects"`
}

// DefaultAccessibilityConfig returns the configuration used when no
// settings record has been saved yet, or when the stored record is
// malformed (storage-read errors fall back to defaults, never crash).
func DefaultAccessibilityConfig() AccessibilityConfig {
	return AccessibilityConfig{
		Volume:       50,
		Brightness:   100,
		Theme:        "light",
		ReduceMotion: false,
		SimplifiedUI: false,
		FontSize:     "medium",
		SoundEffects: true,
	}
}
