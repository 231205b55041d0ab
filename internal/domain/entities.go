package domain

import "time"

// User is a value snapshot of a site user as embedded in search results.
// It never aliases the session's own user.
type User struct {
	ID        string   // Discord user ID
	Authed    bool     // True only for the session's own, logged-in user
	Username  string   // Display name
	AvatarURL string   // Absolute avatar image URL
	Roles     []string // Discord role IDs
	Perms     []Perm   // Filled in by DerivePermissions, empty on search results
}

// HasPerm reports whether the user holds the given permission
func (u User) HasPerm(p Perm) bool {
	for _, have := range u.Perms {
		if have == p {
			return true
		}
	}
	return false
}

// Tag is a game tag as cached by the site
type Tag struct {
	ID       int64
	Name     string
	Category string
}

// Game is a Flashpoint game entry
type Game struct {
	ID                  string
	Title               string
	Series              string
	Developer           string
	Publisher           string
	Platform            string
	PlayMode            []string
	Language            []string
	ReleaseDate         string // Free-form, as entered by curators
	OriginalDescription string
	Tags                []Tag
	Extreme             bool
	FilterGroups        []string
	UpdatedAt           time.Time
	Missing             bool // Game was removed from the archive
}

// PlaylistInfo is a playlist summary as returned by playlist search
type PlaylistInfo struct {
	ID           int64
	Name         string
	Description  string
	Author       User
	TotalGames   int
	Library      Library
	Extreme      bool
	FilterGroups []string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ContentReport is a moderation report against user content
type ContentReport struct {
	ID           int64
	ContentRef   string // e.g. "playlist:12"
	State        ReportState
	ReportedUser User
	ReportedBy   User
	ReportReason string
	Context      string
	ResolvedAt   *time.Time
	ResolvedBy   *User
	ActionTaken  string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Resolved returns true if a moderator has closed the report
func (r ContentReport) Resolved() bool {
	return r.State == ReportStateResolved
}

// GotdSuggestion is a user suggestion for Game of the Day
type GotdSuggestion struct {
	ID            int64
	Game          Game
	Author        string // Username, or "Anonymous"
	Description   string
	SuggestedDate *time.Time
	CreatedAt     time.Time
}
