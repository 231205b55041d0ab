package api

import (
	"fmt"

	"github.com/FlashpointProject/CommunityWebsite/internal/domain"
)

// MapUser rebuilds a domain user from a raw profile. Permissions are left
// empty; they are derived separately for the session user only.
func MapUser(u RawUser) domain.User {
	return domain.User{
		ID:        u.UID,
		Authed:    false,
		Username:  u.Username,
		AvatarURL: u.AvatarURL,
		Roles:     append([]string(nil), u.Roles...),
		Perms:     []domain.Perm{},
	}
}

// MapGame converts a raw cached game
func MapGame(g RawGame) domain.Game {
	game := domain.Game{
		ID:                  g.ID,
		Title:               g.Title,
		Series:              g.Series,
		Developer:           g.Developer,
		Publisher:           g.Publisher,
		Platform:            g.Platform,
		PlayMode:            g.PlayMode,
		Language:            g.Language,
		ReleaseDate:         g.ReleaseDate,
		OriginalDescription: g.OriginalDescription,
		Extreme:             g.Extreme,
		FilterGroups:        g.FilterGroups,
		UpdatedAt:           g.UpdatedAt,
		Missing:             g.Missing,
	}
	for _, t := range g.Tags {
		if t == nil {
			continue
		}
		game.Tags = append(game.Tags, domain.Tag{ID: t.ID, Name: t.Name, Category: t.Category})
	}
	return game
}

// MapPlaylistInfo converts a raw playlist summary
func MapPlaylistInfo(p RawPlaylistInfo) (domain.PlaylistInfo, error) {
	if p.Author == nil {
		return domain.PlaylistInfo{}, fmt.Errorf("%w: playlist %d has no author", domain.ErrMalformedPayload, p.ID)
	}
	return domain.PlaylistInfo{
		ID:           p.ID,
		Name:         p.Name,
		Description:  p.Description,
		Author:       MapUser(*p.Author),
		TotalGames:   p.TotalGames,
		Library:      domain.Library(p.Library),
		Extreme:      p.Extreme,
		FilterGroups: p.FilterGroups,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}, nil
}

// MapContentReport converts a raw content report
func MapContentReport(r RawContentReport) (domain.ContentReport, error) {
	if r.ReportedUser == nil || r.ReportedBy == nil {
		return domain.ContentReport{}, fmt.Errorf("%w: report %d is missing a user", domain.ErrMalformedPayload, r.ID)
	}
	report := domain.ContentReport{
		ID:           r.ID,
		ContentRef:   r.ContentRef,
		State:        domain.ReportState(r.ReportState),
		ReportedUser: MapUser(*r.ReportedUser),
		ReportedBy:   MapUser(*r.ReportedBy),
		ReportReason: r.ReportReason,
		Context:      r.AdditionalContext,
		ResolvedAt:   r.ResolvedAt,
		ActionTaken:  r.ActionTaken,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
	if r.ResolvedBy != nil {
		resolver := MapUser(*r.ResolvedBy)
		report.ResolvedBy = &resolver
	}
	return report, nil
}

// MapGotdSuggestion converts a raw suggestion
func MapGotdSuggestion(s RawGotdSuggestion) (domain.GotdSuggestion, error) {
	if s.Game == nil {
		return domain.GotdSuggestion{}, fmt.Errorf("%w: suggestion %d has no game", domain.ErrMalformedPayload, s.ID)
	}
	return domain.GotdSuggestion{
		ID:            s.ID,
		Game:          MapGame(*s.Game),
		Author:        s.Author,
		Description:   s.Description,
		SuggestedDate: s.SuggestedDate,
		CreatedAt:     s.CreatedAt,
	}, nil
}

// mapAll applies fn to every raw item, failing on nil entries or the first mapping error
func mapAll[R any, T any](raw []*R, fn func(R) (T, error)) ([]T, error) {
	out := make([]T, 0, len(raw))
	for i, r := range raw {
		if r == nil {
			return nil, fmt.Errorf("%w: null entry at index %d", domain.ErrMalformedPayload, i)
		}
		item, err := fn(*r)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}
