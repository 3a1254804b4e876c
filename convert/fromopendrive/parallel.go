package fromopendrive

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/go-roadspaces/roadspaces/config"
	"github.com/go-roadspaces/roadspaces/opendrive"
	"github.com/go-roadspaces/roadspaces/roadspace"
)

// buildRoadspaces resolves every road to a Roadspace. Per-road work shares
// no mutable state, so when params.ConcurrentProcessing is set it runs on
// an errgroup-managed worker pool; otherwise roads are processed in order
// on the calling goroutine. Either way the result slice is built by index,
// so output order — and therefore any downstream hash-derived identifier —
// is independent of how many workers ran it.
func buildRoadspaces(roads []opendrive.Road, params config.Parameters) ([]roadspace.Roadspace, error) {
	out := make([]roadspace.Roadspace, len(roads))

	if !params.ConcurrentProcessing {
		for i, road := range roads {
			rs, err := buildRoadspace(road, params)
			if err != nil {
				return nil, err
			}
			out[i] = rs
		}
		return out, nil
	}

	group, ctx := errgroup.WithContext(context.Background())
	for i, road := range roads {
		i, road := i, road
		group.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			rs, err := buildRoadspace(road, params)
			if err != nil {
				return err
			}
			out[i] = rs
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// roadMapFromRoads indexes roads by id for the sequential junction pass
// that follows buildRoadspaces.
func roadMapFromRoads(roads []opendrive.Road) map[string]opendrive.Road {
	out := make(map[string]opendrive.Road, len(roads))
	for _, r := range roads {
		out[r.ID] = r
	}
	return out
}
