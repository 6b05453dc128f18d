package departures

import (
	"context"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
)

// StationProvider supplies the configured station watches to the board.
type StationProvider interface {
	Stations() []Station
}

// Board holds the last successfully fetched raw arrivals per station and
// re-derives the filtered, live-countdown view from them on demand. Fetching
// and viewing are decoupled: Refresh is the slow network path, Snapshot is the
// cheap synchronous one that can run on every tick.
type Board struct {
	client   *Client
	provider StationProvider

	mu          sync.RWMutex
	raw         map[string][]Arrival
	errs        map[string]string
	lastUpdated time.Time
	applied     uint64

	generation uint64

	stopCh chan struct{}
	wg     sync.WaitGroup
}

func NewBoard(client *Client, provider StationProvider) *Board {
	return &Board{
		client:   client,
		provider: provider,
		raw:      make(map[string][]Arrival),
		errs:     make(map[string]string),
		stopCh:   make(chan struct{}),
	}
}

// Refresh fetches arrivals for every currently visible station concurrently
// and replaces the cached raw batches. Each station's outcome is independent:
// a failed fetch keeps that station's last known good batch and records the
// error, it never aborts the cycle. A refresh that completes after a newer one
// has already been applied is discarded rather than clobbering fresher data.
func (b *Board) Refresh(ctx context.Context) {
	generation := atomic.AddUint64(&b.generation, 1)
	stations := FilterVisibleStations(b.provider.Stations(), time.Now())

	type outcome struct {
		id       string
		name     string
		arrivals []Arrival
		err      error
	}
	outcomes := make([]outcome, len(stations))

	g, gctx := errgroup.WithContext(ctx)
	for i, station := range stations {
		i, station := i, station
		g.Go(func() error {
			arrivals, err := b.client.ArrivalsFor(gctx, station)
			outcomes[i] = outcome{id: station.ID, name: station.Name, arrivals: arrivals, err: err}
			return nil
		})
	}
	g.Wait()

	b.mu.Lock()
	defer b.mu.Unlock()
	if generation < b.applied {
		log.Printf("discarding stale refresh (generation %d, newest applied %d)", generation, b.applied)
		return
	}
	b.applied = generation

	raw := make(map[string][]Arrival, len(stations))
	errs := make(map[string]string, len(stations))
	for _, o := range outcomes {
		if o.err != nil {
			log.Printf("ERROR fetching departures for %s: %v", o.name, o.err)
			errs[o.id] = o.err.Error()
			if prior, ok := b.raw[o.id]; ok {
				// degrade to last known good rather than going blank
				raw[o.id] = prior
			}
			continue
		}
		raw[o.id] = o.arrivals
	}
	b.raw = raw
	b.errs = errs
	b.lastUpdated = time.Now()
}

// BoardStation is one station card: the watch, its filtered departures, the
// card header labels and any inline fetch error.
type BoardStation struct {
	Station       Station           `json:"station"`
	Departures    []FilteredArrival `json:"departures"`
	ModesDisplay  string            `json:"modesDisplay"`
	FilterSummary string            `json:"filterSummary,omitempty"`
	ScheduleDays  string            `json:"scheduleDays,omitempty"`
	Error         string            `json:"error,omitempty"`
}

// Snapshot is the board state at a point in time.
type Snapshot struct {
	Stations    []BoardStation `json:"stations"`
	LastUpdated time.Time      `json:"lastUpdated"`
}

// Snapshot re-derives the filtered view for every visible station from the
// cached raw batches. No I/O; safe to call per request or per second.
func (b *Board) Snapshot(now time.Time) Snapshot {
	stations := FilterVisibleStations(b.provider.Stations(), now)

	b.mu.RLock()
	defer b.mu.RUnlock()
	snapshot := Snapshot{
		Stations:    make([]BoardStation, 0, len(stations)),
		LastUpdated: b.lastUpdated,
	}
	for _, station := range stations {
		card := BoardStation{
			Station:       station,
			Departures:    []FilteredArrival{},
			ModesDisplay:  station.ModesDisplay(),
			FilterSummary: station.FilterSummary(false),
			Error:         b.errs[station.ID],
		}
		if station.Schedule != nil && station.Schedule.Enabled {
			card.ScheduleDays = FormatDays(station.Schedule.Days)
		}
		if raw, ok := b.raw[station.ID]; ok {
			card.Departures = FilterArrivals(raw, station.FilterOptions(), now)
		}
		snapshot.Stations = append(snapshot.Stations, card)
	}
	return snapshot
}

// Start begins the auto-refresh loop. Stop must be called to release it.
func (b *Board) Start(interval time.Duration) {
	b.wg.Add(1)
	go b.refreshLoop(interval)
}

// Stop halts the auto-refresh loop and waits for it to finish.
func (b *Board) Stop() {
	close(b.stopCh)
	b.wg.Wait()
}

func (b *Board) refreshLoop(interval time.Duration) {
	defer b.wg.Done()

	b.Refresh(context.Background())

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			b.Refresh(context.Background())
		case <-b.stopCh:
			return
		}
	}
}
