package service

import (
	"context"
	"fmt"

	"github.com/FlashpointProject/CommunityWebsite/internal/search"
	"golang.org/x/sync/errgroup"
)

// Count is the outcome of loading the first page of one collection
type Count struct {
	Resource string
	Total    int
	Loaded   int
	Err      error
}

// Summary loads the first page of every available collection concurrently.
// Each resource is driven on its own goroutine and a failed fetch is reported
// on its Count without aborting the others.
func (s *Services) Summary(ctx context.Context) ([]Count, error) {
	counts := []Count{
		{Resource: ResourcePlaylists},
		{Resource: ResourceGotdSuggestions},
	}
	if s.CanModerate() {
		counts = append(counts, Count{Resource: ResourceContentReports})
	}

	g, gctx := errgroup.WithContext(ctx)
	for i := range counts {
		c := &counts[i]
		g.Go(func() error {
			var err error
			switch c.Resource {
			case ResourcePlaylists:
				*c, err = load(gctx, s.Playlists)
			case ResourceGotdSuggestions:
				*c, err = load(gctx, s.Gotd)
			case ResourceContentReports:
				*c, err = load(gctx, s.Reports)
			}
			return err
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return counts, nil
}

// load drives the initial fetch of r. Only context cancellation is returned
// as an error; a failed fetch is recorded on the Count.
func load[Q search.Pager[Q], T any](ctx context.Context, r *search.Resource[Q, T]) (Count, error) {
	c := Count{Resource: r.Name()}
	if _, err := search.Drive(ctx, r, search.ForceInitialLoadAction[Q, T]()); err != nil {
		return c, fmt.Errorf("%s: %w", r.Name(), err)
	}

	st := r.State()
	c.Total = st.TotalResults
	c.Loaded = len(st.Results)
	c.Err = st.Err
	return c, nil
}
