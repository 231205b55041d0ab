package api

import "time"

// RawUser is a user profile embedded in API payloads
type RawUser struct {
	UID       string    `json:"uid"`
	Username  string    `json:"username"`
	AvatarURL string    `json:"avatar_url"`
	Roles     []string  `json:"roles"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RawTag is a cached game tag
type RawTag struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
}

// RawGame is a cached game entry
type RawGame struct {
	ID                  string    `json:"id"`
	Title               string    `json:"title"`
	Series              string    `json:"series"`
	Developer           string    `json:"developer"`
	Publisher           string    `json:"publisher"`
	ReleaseDate         string    `json:"release_date"`
	PlayMode            []string  `json:"play_mode"`
	Language            []string  `json:"language"`
	OriginalDescription string    `json:"original_description"`
	Platform            string    `json:"platform"`
	Extreme             bool      `json:"extreme"`
	FilterGroups        []string  `json:"filter_groups"`
	Tags                []*RawTag `json:"tags"`
	UpdatedAt           time.Time `json:"updated_at"`
	Missing             bool      `json:"missing"`
}

// RawPlaylistInfo is a playlist summary from /api/playlists
type RawPlaylistInfo struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	TotalGames   int       `json:"total_games"`
	Description  string    `json:"description"`
	Author       *RawUser  `json:"author"`
	Library      string    `json:"library"`
	Icon         string    `json:"icon"`
	Public       bool      `json:"public"`
	Extreme      bool      `json:"extreme"`
	FilterGroups []string  `json:"filter_groups"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// RawContentReport is a moderation report from /api/reports
type RawContentReport struct {
	ID                int64      `json:"id"`
	ContentRef        string     `json:"content_ref"`
	ReportState       string     `json:"report_state"`
	ReportedBy        *RawUser   `json:"reported_by"`
	ReportReason      string     `json:"report_reason"`
	AdditionalContext string     `json:"additional_context"`
	ReportedUser      *RawUser   `json:"reported_user"`
	ResolvedBy        *RawUser   `json:"resolved_by"`
	ResolvedAt        *time.Time `json:"resolved_at"`
	ActionTaken       string     `json:"action_taken"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// RawGotdSuggestion is a Game of the Day suggestion from /api/gotd/suggestions
type RawGotdSuggestion struct {
	ID            int64      `json:"id"`
	Game          *RawGame   `json:"game"`
	Author        string     `json:"author"`
	Description   string     `json:"description"`
	SuggestedDate *time.Time `json:"suggested_date"`
	CreatedAt     time.Time  `json:"created_at"`
}

// Search responses. Total is a pointer so a missing total can be told apart
// from an empty result set.

// PlaylistSearchResponse is the body of GET /api/playlists
type PlaylistSearchResponse struct {
	Total     *int64             `json:"total"`
	Playlists []*RawPlaylistInfo `json:"playlists"`
}

// ContentReportSearchResponse is the body of GET /api/reports
type ContentReportSearchResponse struct {
	Total   *int64              `json:"total"`
	Reports []*RawContentReport `json:"reports"`
}

// GotdSuggestionSearchResponse is the body of GET /api/gotd/suggestions
type GotdSuggestionSearchResponse struct {
	Total       *int64               `json:"total"`
	Suggestions []*RawGotdSuggestion `json:"suggestions"`
}
