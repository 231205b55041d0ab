package domain

// PreferenceStore persists small local preferences across sessions.
// Bool returns ok=false when the key was never written.
type PreferenceStore interface {
	Bool(key string) (value bool, ok bool)
	SetBool(key string, value bool) error
	Delete(key string) error
	Close() error
}

// Preference keys
const (
	// PrefAdult records the answer to the age confirmation
	PrefAdult = "adult"

	// PrefPlaylistIncludeAdult records the playlist search "include adult content" toggle
	PrefPlaylistIncludeAdult = "playlist_include_adult"
)
