package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/FlashpointProject/CommunityWebsite/internal/agegate"
	"github.com/FlashpointProject/CommunityWebsite/internal/domain"
	"github.com/FlashpointProject/CommunityWebsite/internal/search"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

const dateLayout = "2006-01-02"

var errAdultDeclined = errors.New("adult content not confirmed")

// Flags shared by the search commands
var (
	page      int
	order     string
	ascending bool
)

// Playlist flags
var (
	library string
	extreme bool
)

// Report flags
var (
	contentType string
	reportState string
)

var playlistsCmd = &cobra.Command{
	Use:   "playlists",
	Short: "Print one page of public playlists",
	Args:  cobra.NoArgs,
	RunE:  runPlaylists,
}

var reportsCmd = &cobra.Command{
	Use:   "reports",
	Short: "Print one page of content reports (moderators only)",
	Args:  cobra.NoArgs,
	RunE:  runReports,
}

var gotdCmd = &cobra.Command{
	Use:   "gotd",
	Short: "Print one page of Game of the Day suggestions",
	Args:  cobra.NoArgs,
	RunE:  runGotd,
}

func init() {
	for _, c := range []*cobra.Command{playlistsCmd, reportsCmd, gotdCmd} {
		c.Flags().IntVarP(&page, "page", "p", 1, "page number")
		c.Flags().StringVarP(&order, "order", "o", "", "order by field")
		c.Flags().BoolVar(&ascending, "asc", false, "sort ascending")
		c.PreRunE = checkPage
	}

	playlistsCmd.Flags().StringVarP(&library, "library", "l", "", "library filter: arcade or theatre")
	playlistsCmd.Flags().BoolVarP(&extreme, "extreme", "x", false, "include adult playlists")

	reportsCmd.Flags().StringVar(&contentType, "content", "", "content type filter: playlist or comment")
	reportsCmd.Flags().StringVar(&reportState, "state", "", "report state filter: reported or resolved")
}

// checkPage rejects page numbers the server would not accept
func checkPage(cmd *cobra.Command, args []string) error {
	if page < 1 {
		return fmt.Errorf("%w %d: pages start at 1", domain.ErrInvalidPage, page)
	}
	return nil
}

func runPlaylists(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()
	if err := a.requireServer(); err != nil {
		return err
	}

	q := a.svc.Playlists.State().Query
	q.Page = page
	q.Extreme = extreme
	if q.Library, err = domain.ParseLibrary(library); err != nil {
		return err
	}
	if order != "" {
		if q.Order, err = domain.ParsePlaylistOrder(order); err != nil {
			return err
		}
		q.OrderReverse = !ascending
	} else if ascending {
		q.OrderReverse = false
	}

	if q.Extreme {
		adult, err := a.gate.PromptTerminal(os.Stdin, os.Stderr)
		if errors.Is(err, agegate.ErrConfirmationRequired) {
			return fmt.Errorf("%w: --extreme needs an interactive terminal", err)
		}
		if err != nil {
			return err
		}
		if !adult {
			return errAdultDeclined
		}
	}

	if err := runQuery(cmd.Context(), a.svc.Playlists, q); err != nil {
		return err
	}
	return printPage(cmd.OutOrStdout(), a.svc.Playlists,
		[]string{"ID", "Name", "Games", "Author", "Library", "Updated"},
		func(p domain.PlaylistInfo) []string {
			name := p.Name
			if p.Extreme {
				name += " [18+]"
			}
			return []string{
				strconv.FormatInt(p.ID, 10), name, strconv.Itoa(p.TotalGames),
				p.Author.Username, string(p.Library), p.UpdatedAt.Format(dateLayout),
			}
		})
}

func runReports(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()
	if err := a.requireServer(); err != nil {
		return err
	}
	if !a.svc.CanModerate() {
		return fmt.Errorf("%w: content reports require the moderate permission", domain.ErrUnauthorized)
	}

	q := a.svc.Reports.State().Query
	q.Page = page
	if q.Content, err = domain.ParseReportContentType(contentType); err != nil {
		return err
	}
	if q.ReportState, err = domain.ParseReportState(reportState); err != nil {
		return err
	}
	if order != "" {
		if q.Order, err = domain.ParseReportOrder(order); err != nil {
			return err
		}
		q.OrderReverse = !ascending
	} else if ascending {
		q.OrderReverse = false
	}

	if err := runQuery(cmd.Context(), a.svc.Reports, q); err != nil {
		return err
	}
	return printPage(cmd.OutOrStdout(), a.svc.Reports,
		[]string{"ID", "Content", "State", "Reason", "Reported by", "Created"},
		func(r domain.ContentReport) []string {
			return []string{
				strconv.FormatInt(r.ID, 10), r.ContentRef, string(r.State),
				r.ReportReason, r.ReportedBy.Username, r.CreatedAt.Format(dateLayout),
			}
		})
}

func runGotd(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()
	if err := a.requireServer(); err != nil {
		return err
	}

	q := a.svc.Gotd.State().Query
	q.Page = page
	if order != "" {
		if q.Order, err = domain.ParseGotdOrder(order); err != nil {
			return err
		}
		q.OrderReverse = !ascending
	} else if ascending {
		q.OrderReverse = false
	}

	if err := runQuery(cmd.Context(), a.svc.Gotd, q); err != nil {
		return err
	}
	return printPage(cmd.OutOrStdout(), a.svc.Gotd,
		[]string{"ID", "Game", "Suggested for", "Author"},
		func(s domain.GotdSuggestion) []string {
			date := "any day"
			if s.SuggestedDate != nil {
				date = s.SuggestedDate.Format(dateLayout)
			}
			return []string{strconv.FormatInt(s.ID, 10), s.Game.Title, date, s.Author}
		})
}

// runQuery drives one search to completion and returns its failure, if any
func runQuery[Q search.Pager[Q], T any](ctx context.Context, r *search.Resource[Q, T], q Q) error {
	alerts, err := search.Drive(ctx, r, search.SetQueryAction[Q, T](q))
	if err != nil {
		return err
	}
	if len(alerts) > 0 {
		return alerts[len(alerts)-1]
	}
	return nil
}

// printPage renders the loaded page as a table followed by the page line
func printPage[Q search.Pager[Q], T any](w io.Writer, r *search.Resource[Q, T], headers []string, row func(T) []string) error {
	st := r.State()

	if len(st.Results) == 0 {
		_, err := fmt.Fprintln(w, "No results.")
		return err
	}

	t := table.New().Headers(headers...)
	for _, item := range st.Results {
		t.Row(row(item)...)
	}

	_, err := fmt.Fprintf(w, "%s\npage %d of %d · %d results\n",
		t.Render(), st.Query.GetPage(), st.TotalPages(), st.TotalResults)
	return err
}
