package departures

import (
	"context"
	"time"
)

const defaultUpstreamTimeout = 10 * time.Second

// Client fetches and searches across both upstreams behind one surface.
type Client struct {
	tfl  *tflFetcher
	rail *railFetcher
}

// NewClient builds a client against the given base URLs. Empty base URLs fall
// back to the public endpoints; a zero timeout falls back to the default.
func NewClient(tflBaseURL, huxleyBaseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultUpstreamTimeout
	}
	return &Client{
		tfl:  newTfLFetcher(tflBaseURL, timeout),
		rail: newRailFetcher(huxleyBaseURL, timeout),
	}
}

// ArrivalsFor fetches normalised arrivals for a station watch, routed to the
// adapter matching the station's type.
func (c *Client) ArrivalsFor(ctx context.Context, station Station) ([]Arrival, error) {
	if station.Type == SourceNationalRail {
		return c.rail.fetchDepartures(ctx, station.CRS)
	}
	return c.tfl.fetchArrivals(ctx, station.ID)
}
