package departures

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/pkg/errors"
)

type railFetcher struct {
	c             http.Client
	departuresURL func(string) string
	searchURL     func(string) string
}

func newRailFetcher(baseURL string, timeout time.Duration) *railFetcher {
	if baseURL == "" {
		baseURL = HuxleyBaseURL
	}
	c := http.Client{Timeout: timeout}
	return &railFetcher{
		c: c,
		departuresURL: func(crs string) string {
			return fmt.Sprintf(railDeparturesAPI, baseURL, url.PathEscape(crs), railDeparturesWindow)
		},
		searchURL: func(query string) string {
			return fmt.Sprintf(railStationSearchAPI, baseURL, url.PathEscape(query))
		},
	}
}

type railLocation struct {
	LocationName string
}

type railCallingPointGroup struct {
	CallingPoint []railLocation
}

type railService struct {
	ServiceID               string
	Std                     string
	Etd                     string
	IsCancelled             bool
	Platform                string
	Operator                string
	OperatorCode            string
	Destination             []railLocation
	SubsequentCallingPoints []railCallingPointGroup
}

type railDeparturesResponse struct {
	TrainServices []railService
}

var clockPattern = regexp.MustCompile(`^\d{2}:\d{2}$`)

// departureTime resolves the authoritative departure time string. The etd
// field is overloaded: it carries either a status word ("On time", "Delayed")
// or a revised clock time. A status word defers to the scheduled time; a
// clock time supersedes it; anything else falls back to the scheduled time.
func (rs railService) departureTime() string {
	switch {
	case rs.Etd == "On time" || rs.Etd == "Delayed":
		return rs.Std
	case clockPattern.MatchString(rs.Etd):
		return rs.Etd
	default:
		return rs.Std
	}
}

// callingPoints flattens the list-of-groups structure into one ordered
// sequence of non-empty location names.
func (rs railService) callingPoints() []string {
	var points []string
	for _, group := range rs.SubsequentCallingPoints {
		for _, point := range group.CallingPoint {
			if point.LocationName != "" {
				points = append(points, point.LocationName)
			}
		}
	}
	return points
}

func (rs railService) normalise(now time.Time) Arrival {
	destination := "Unknown"
	if len(rs.Destination) > 0 && rs.Destination[0].LocationName != "" {
		destination = rs.Destination[0].LocationName
	}
	return Arrival{
		ID:                rs.ServiceID,
		ExpectedDeparture: now.Add(TimeUntil(rs.departureTime(), now)),
		DestinationName:   destination,
		CallingPoints:     rs.callingPoints(),
		LineName:          rs.Operator,
		LineID:            strings.ToLower(rs.OperatorCode),
		ModeName:          "national-rail",
		PlatformName:      rs.Platform,
		Delayed:           rs.Etd == "Delayed",
		Operator:          rs.Operator,
		Source:            SourceNationalRail,
	}
}

// fetchDepartures fetches the upcoming departures board for a station code.
// Cancelled services are dropped entirely.
func (rf *railFetcher) fetchDepartures(ctx context.Context, crs string) ([]Arrival, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rf.departuresURL(crs), nil)
	if err != nil {
		return nil, errors.Wrap(err, "building departures request")
	}
	resp, err := rf.c.Do(req)
	if err != nil {
		return nil, &FetchError{Source: SourceNationalRail, Message: err.Error()}
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &FetchError{Source: SourceNationalRail, Status: resp.StatusCode}
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &FetchError{Source: SourceNationalRail, Message: err.Error()}
	}
	board := railDeparturesResponse{}
	if err := json.Unmarshal(body, &board); err != nil {
		return nil, errors.Wrap(err, "problem parsing departures response from Huxley")
	}
	now := time.Now()
	result := make([]Arrival, 0, len(board.TrainServices))
	for _, service := range board.TrainServices {
		if service.IsCancelled {
			continue
		}
		result = append(result, service.normalise(now))
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ExpectedDeparture.Before(result[j].ExpectedDeparture)
	})
	return result, nil
}

type railStation struct {
	CrsCode     string
	StationName string
}

// searchStations searches station codes by free text. Huxley signals "no
// match" with a 404 rather than an empty body, and returns either a single
// object or an array depending on the match count.
func (rf *railFetcher) searchStations(ctx context.Context, query string) ([]StationSearchResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rf.searchURL(query), nil)
	if err != nil {
		return nil, errors.Wrap(err, "building search request")
	}
	resp, err := rf.c.Do(req)
	if err != nil {
		return nil, &SearchError{Source: SourceNationalRail, Message: err.Error()}
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &SearchError{Source: SourceNationalRail, Status: resp.StatusCode}
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &SearchError{Source: SourceNationalRail, Message: err.Error()}
	}
	stations := []railStation{}
	if err := json.Unmarshal(body, &stations); err != nil {
		single := railStation{}
		if err := json.Unmarshal(body, &single); err != nil {
			return nil, errors.Wrap(err, "problem parsing station search response from Huxley")
		}
		stations = []railStation{single}
	}
	result := make([]StationSearchResult, 0, len(stations))
	for _, s := range stations {
		result = append(result, StationSearchResult{
			ID:    "nr-" + s.CrsCode,
			Name:  s.StationName,
			Type:  SourceNationalRail,
			Modes: []string{"national-rail"},
			CRS:   s.CrsCode,
		})
	}
	return result, nil
}
