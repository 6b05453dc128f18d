package departures

import "fmt"

// FetchError is a non-2xx response or transport failure from an upstream
// departures feed.
type FetchError struct {
	Source  Source
	Status  int
	Message string
}

func (e *FetchError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("problem fetching %s departures: upstream returned HTTP %d", e.Source, e.Status)
	}
	return fmt.Sprintf("problem fetching %s departures: %s", e.Source, e.Message)
}

// SearchError is a non-2xx response or transport failure from an upstream
// station search endpoint.
type SearchError struct {
	Source  Source
	Status  int
	Message string
}

func (e *SearchError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("problem searching %s stations: upstream returned HTTP %d", e.Source, e.Status)
	}
	return fmt.Sprintf("problem searching %s stations: %s", e.Source, e.Message)
}
