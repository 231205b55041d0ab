package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOptionsAcceptExactValues(t *testing.T) {
	order, err := ParsePlaylistOrder("total_games")
	require.NoError(t, err)
	assert.Equal(t, PlaylistOrderTotalGames, order)

	lib, err := ParseLibrary("")
	require.NoError(t, err)
	assert.Equal(t, LibraryAll, lib)

	state, err := ParseReportState("reported")
	require.NoError(t, err)
	assert.Equal(t, ReportStateReported, state)

	content, err := ParseReportContentType("comment")
	require.NoError(t, err)
	assert.Equal(t, ReportContentComment, content)

	gotd, err := ParseGotdOrder("suggested_date")
	require.NoError(t, err)
	assert.Equal(t, GotdOrderSuggestedDate, gotd)

	report, err := ParseReportOrder("reporter")
	require.NoError(t, err)
	assert.Equal(t, ReportOrderReporter, report)
}

func TestParseOptionsSuggest(t *testing.T) {
	_, err := ParsePlaylistOrder("updated")
	assert.ErrorIs(t, err, ErrUnknownOption)
	assert.Contains(t, err.Error(), `did you mean "updated_at"`)

	_, err = ParsePlaylistOrder("nmae")
	assert.ErrorIs(t, err, ErrUnknownOption)
	assert.Contains(t, err.Error(), `did you mean "name"`)

	_, err = ParseLibrary("zzzz")
	assert.ErrorIs(t, err, ErrUnknownOption)
	assert.NotContains(t, err.Error(), "did you mean")
}

func TestParseOrderRejectsEmpty(t *testing.T) {
	_, err := ParseReportOrder("")
	assert.ErrorIs(t, err, ErrUnknownOption)
}

func TestDefaultQueries(t *testing.T) {
	p := DefaultPlaylistQuery(0, true)
	assert.Equal(t, PlaylistQuery{
		Page: 1, PageSize: DefaultPageSize, Order: PlaylistOrderUpdatedAt,
		OrderReverse: true, Library: LibraryAll, Extreme: true,
	}, p)

	r := DefaultContentReportQuery(20)
	assert.Equal(t, ReportOrderUpdatedAt, r.Order)
	assert.Equal(t, 20, r.PageSize)
	assert.Equal(t, ReportStateAll, r.ReportState)

	g := DefaultGotdSuggestionQuery(-1)
	assert.Equal(t, GotdOrderCreatedAt, g.Order)
	assert.Equal(t, DefaultPageSize, g.PageSize)

	assert.Equal(t, 4, p.WithPage(4).GetPage())
	assert.Equal(t, 1, p.GetPage(), "WithPage returns a copy")
}

func TestDerivePermissions(t *testing.T) {
	assert.Equal(t, []Perm{}, DerivePermissions(nil))
	assert.Equal(t, []Perm{PermStaff}, DerivePermissions([]string{RoleCurator}))
	assert.Equal(t,
		[]Perm{PermCreateNewsPost, PermModerate, PermStaff},
		DerivePermissions([]string{"123", RoleModerator}))
}

func TestSession(t *testing.T) {
	anon := NewSession("", "", nil)
	assert.False(t, anon.LoggedIn())
	assert.False(t, anon.Can(PermModerate))

	admin := NewSession("1", "admin", []string{RoleAdministrator})
	assert.True(t, admin.LoggedIn())
	assert.True(t, admin.Can(PermModerate))
	assert.True(t, admin.Can(PermStaff))
}

func TestReportResolved(t *testing.T) {
	now := time.Now()
	assert.False(t, ContentReport{State: ReportStateReported}.Resolved())
	assert.True(t, ContentReport{State: ReportStateResolved, ResolvedAt: &now}.Resolved())
}
