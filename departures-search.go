package departures

import (
	"context"
	"log"
	"strings"

	"golang.org/x/sync/errgroup"
)

// Search queries both upstreams concurrently and concatenates the results,
// National Rail first. Either side failing degrades to the other side's
// results rather than failing the whole search. Queries shorter than two
// characters return nothing without touching the network.
func (c *Client) Search(ctx context.Context, query string) []StationSearchResult {
	if len(strings.TrimSpace(query)) < 2 {
		return nil
	}

	var railResults, tflResults []StationSearchResult
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		results, err := c.rail.searchStations(gctx, query)
		if err != nil {
			log.Printf("ERROR searching national rail stations: %v", err)
			return nil
		}
		railResults = results
		return nil
	})
	g.Go(func() error {
		results, err := c.tfl.searchStations(gctx, query)
		if err != nil {
			log.Printf("ERROR searching TfL stations: %v", err)
			return nil
		}
		tflResults = results
		return nil
	})
	g.Wait()

	return append(railResults, tflResults...)
}
