package departures

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// tflModes are the TfL modes with a real-time arrivals feed.
var tflModes = []string{"tube", "dlr", "overground", "elizabeth-line"}

type tflFetcher struct {
	c            http.Client
	arrivalsURL  func(string) string
	stopPointURL func(string) string
	searchURL    func(string) string
}

func newTfLFetcher(baseURL string, timeout time.Duration) *tflFetcher {
	if baseURL == "" {
		baseURL = TfLBaseURL
	}
	c := http.Client{Timeout: timeout}
	return &tflFetcher{
		c: c,
		arrivalsURL: func(stopID string) string {
			return fmt.Sprintf(stopPointArrivalsAPI, baseURL, url.PathEscape(stopID))
		},
		stopPointURL: func(stopID string) string {
			return fmt.Sprintf(stopPointDetailAPI, baseURL, url.PathEscape(stopID))
		},
		searchURL: func(query string) string {
			return fmt.Sprintf(stopPointSearchAPI, baseURL, url.QueryEscape(query), strings.Join(tflModes, ","))
		},
	}
}

type tflStopArrival struct {
	ID              string
	VehicleId       string
	TimeToStation   int
	DestinationName string
	Towards         string
	LineName        string
	LineId          string
	ModeName        string
	PlatformName    string
}

func (ta tflStopArrival) normalise(now time.Time) Arrival {
	id := ta.VehicleId
	if id == "" {
		id = ta.ID
	}
	destination := ta.DestinationName
	if destination == "" {
		destination = ta.Towards
	}
	if destination == "" {
		destination = "Unknown"
	}
	return Arrival{
		ID:                id,
		ExpectedDeparture: now.Add(time.Duration(ta.TimeToStation) * time.Second),
		DestinationName:   destination,
		LineName:          ta.LineName,
		LineID:            ta.LineId,
		ModeName:          ta.ModeName,
		PlatformName:      ta.PlatformName,
		Source:            SourceTfL,
	}
}

type tflStopPoint struct {
	NaptanId string
	StopType string
	Modes    []string
	Children []tflStopPoint
}

// fetchArrivals fetches live arrivals for a stop. A stop that reports an empty
// list may be an interchange hub with no feed of its own; its leaf child stops
// are then resolved and fetched instead.
func (tf *tflFetcher) fetchArrivals(ctx context.Context, stopID string) ([]Arrival, error) {
	raw, err := tf.fetchRawArrivals(ctx, stopID)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		raw, err = tf.fetchHubArrivals(ctx, stopID)
		if err != nil {
			return nil, err
		}
	}
	now := time.Now()
	result := make([]Arrival, 0, len(raw))
	for _, r := range raw {
		result = append(result, r.normalise(now))
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ExpectedDeparture.Before(result[j].ExpectedDeparture)
	})
	return result, nil
}

func (tf *tflFetcher) fetchRawArrivals(ctx context.Context, stopID string) ([]tflStopArrival, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, tf.arrivalsURL(stopID), nil)
	if err != nil {
		return nil, errors.Wrap(err, "building arrivals request")
	}
	resp, err := tf.c.Do(req)
	if err != nil {
		return nil, &FetchError{Source: SourceTfL, Message: err.Error()}
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &FetchError{Source: SourceTfL, Status: resp.StatusCode}
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &FetchError{Source: SourceTfL, Message: err.Error()}
	}
	arrivals := []tflStopArrival{}
	if err := json.Unmarshal(body, &arrivals); err != nil {
		return nil, errors.Wrap(err, "problem parsing arrivals response from TfL")
	}
	return arrivals, nil
}

// fetchHubArrivals resolves a hub's leaf child stops and collects their
// arrivals. A failed child fetch contributes an empty list rather than
// aborting the batch.
func (tf *tflFetcher) fetchHubArrivals(ctx context.Context, stopID string) ([]tflStopArrival, error) {
	stop, err := tf.fetchStopPoint(ctx, stopID)
	if err != nil {
		return nil, err
	}
	if stop == nil {
		return nil, nil
	}
	childIDs := findRailChildStops(stop)
	if len(childIDs) == 0 {
		return nil, nil
	}

	buckets := make([][]tflStopArrival, len(childIDs))
	g, gctx := errgroup.WithContext(ctx)
	for i, childID := range childIDs {
		i, childID := i, childID
		g.Go(func() error {
			raw, err := tf.fetchRawArrivals(gctx, childID)
			if err != nil {
				log.Printf("problem fetching arrivals for child stop %s: %v", childID, err)
				return nil
			}
			buckets[i] = raw
			return nil
		})
	}
	g.Wait()

	var flat []tflStopArrival
	for _, b := range buckets {
		flat = append(flat, b...)
	}
	return flat, nil
}

func (tf *tflFetcher) fetchStopPoint(ctx context.Context, stopID string) (*tflStopPoint, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, tf.stopPointURL(stopID), nil)
	if err != nil {
		return nil, errors.Wrap(err, "building stop point request")
	}
	resp, err := tf.c.Do(req)
	if err != nil {
		return nil, &FetchError{Source: SourceTfL, Message: err.Error()}
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// the primary fetch succeeded with an empty board; a missing
		// detail record just means there is nothing more to show
		return nil, nil
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &FetchError{Source: SourceTfL, Message: err.Error()}
	}
	stop := tflStopPoint{}
	if err := json.Unmarshal(body, &stop); err != nil {
		return nil, errors.Wrap(err, "problem parsing stop point response from TfL")
	}
	return &stop, nil
}

// findRailChildStops walks a stop point tree and collects the identifiers of
// child stops that carry a supported real-time mode and are not themselves
// interchanges. Identifiers are deduplicated; a child reachable via multiple
// parents appears once.
func findRailChildStops(stop *tflStopPoint) []string {
	seen := make(map[string]bool)
	var ids []string

	var walk func(*tflStopPoint)
	walk = func(sp *tflStopPoint) {
		if sp == nil {
			return
		}
		if hasRailMode(sp.Modes) && sp.NaptanId != "" && sp.StopType != "TransportInterchange" && !seen[sp.NaptanId] {
			seen[sp.NaptanId] = true
			ids = append(ids, sp.NaptanId)
		}
		for i := range sp.Children {
			walk(&sp.Children[i])
		}
	}
	walk(stop)
	return ids
}

func hasRailMode(modes []string) bool {
	for _, m := range modes {
		for _, supported := range tflModes {
			if m == supported {
				return true
			}
		}
	}
	return false
}

type tflSearchMatch struct {
	ID    string
	Name  string
	Modes []string
}

type tflSearchResponse struct {
	Matches []tflSearchMatch
}

func (tf *tflFetcher) searchStations(ctx context.Context, query string) ([]StationSearchResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, tf.searchURL(query), nil)
	if err != nil {
		return nil, errors.Wrap(err, "building search request")
	}
	resp, err := tf.c.Do(req)
	if err != nil {
		return nil, &SearchError{Source: SourceTfL, Message: err.Error()}
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &SearchError{Source: SourceTfL, Status: resp.StatusCode}
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &SearchError{Source: SourceTfL, Message: err.Error()}
	}
	search := tflSearchResponse{}
	if err := json.Unmarshal(body, &search); err != nil {
		return nil, errors.Wrap(err, "problem parsing search response from TfL")
	}
	result := make([]StationSearchResult, 0, len(search.Matches))
	for _, m := range search.Matches {
		result = append(result, StationSearchResult{
			ID:    m.ID,
			Name:  m.Name,
			Type:  SourceTfL,
			Modes: m.Modes,
		})
	}
	return result, nil
}
