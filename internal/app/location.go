package app

import (
	"net/url"
	"sync"
	"time"

	"github.com/curioapp/curio/internal/debug"
)

// Location query parameters. The query is read from any of three aliases
// with fixed precedence (first non-empty wins); only the canonical alias is
// ever written, and the alternates are actively deleted to avoid staleness.
const (
	FolderParam         = "folder"
	CanonicalQueryParam = "q"
)

// queryAliases in precedence order.
var queryAliases = []string{"q", "query", "s"}

// DefaultDebounce is how long after the last query edit the location write
// fires; edits within the window collapse into one write.
const DefaultDebounce = 250 * time.Millisecond

// Location is the addressable location collaborator: the navigable address
// the engine keeps in sync with in-memory state.
type Location interface {
	// Read returns the current parameters.
	Read() url.Values
	// Write replaces the parameters, creating one navigation entry.
	Write(values url.Values)
}

// syncState is the echo-suppression state machine. Exactly one echo is ever
// suppressed per write: the transition structure guarantees it, there is no
// manually cleared flag.
type syncState int

const (
	syncIdle syncState = iota
	// syncPendingWrite: a debounced write is scheduled but not yet flushed.
	syncPendingWrite
	// syncAwaitingEcho: we wrote the location and the next externally
	// observed value matching it is our own echo.
	syncAwaitingEcho
)

// LocationController keeps {query, selected view} bidirectionally in sync
// with the location's {query param, folder param}.
type LocationController struct {
	mu       sync.Mutex
	loc      Location
	debounce time.Duration

	state   syncState
	written string // encoded value backing PendingWrite/AwaitingEcho
	timer   *time.Timer
	pending *pendingWrite // flushed when the debounce fires

	// OnExternal receives genuine external navigation: a location change
	// that is not our own echo.
	OnExternal func(query, folderID string)
}

// NewLocationController wires a controller to a location. A zero debounce
// falls back to DefaultDebounce.
func NewLocationController(loc Location, debounce time.Duration) *LocationController {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &LocationController{loc: loc, debounce: debounce}
}

// QueryEdited schedules a debounced location write for a query edit. The
// folder parameter is preserved: starting a query from within a folder is a
// scoped search. Rapid edits within the window collapse into exactly one
// write carrying the final value.
func (c *LocationController) QueryEdited(query, folderID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.pending = &pendingWrite{query: query, folderID: folderID}
	if c.timer != nil {
		c.timer.Stop()
	}
	c.state = syncPendingWrite
	c.timer = time.AfterFunc(c.debounce, c.flush)
	debug.Log(debug.NAV, "query edit debounced: %q", query)
}

// pendingWrite is the latest debounced edit, not yet flushed.
type pendingWrite struct {
	query    string
	folderID string
}

// FolderChanged writes the location immediately for a folder navigation.
// This is authoritative: any pending query write is cancelled, and the
// query is cleared (folder navigation always clears the query).
func (c *LocationController) FolderChanged(folderID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cancelTimerLocked()
	c.writeLocked("", folderID)
}

// Stop cancels any pending write, e.g. on unmount.
func (c *LocationController) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cancelTimerLocked()
	if c.state == syncPendingWrite {
		c.state = syncIdle
		c.written = ""
	}
}

// Observe feeds an observed location value into the controller. An exact
// match with the value we just wrote is our own echo and is discarded;
// anything else is genuine external navigation and is parsed and forwarded.
func (c *LocationController) Observe(values url.Values) {
	c.mu.Lock()
	if c.state == syncAwaitingEcho && values.Encode() == c.written {
		c.state = syncIdle
		c.written = ""
		c.mu.Unlock()
		debug.Log(debug.NAV, "discarded location echo")
		return
	}
	handler := c.OnExternal
	c.mu.Unlock()

	if handler != nil {
		handler(ReadQuery(values), values.Get(FolderParam))
	}
}

// flush runs on the debounce timer.
func (c *LocationController) flush() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != syncPendingWrite || c.pending == nil {
		return
	}
	p := c.pending
	c.pending = nil
	c.writeLocked(p.query, p.folderID)
}

// writeLocked rewrites the query and folder parameters over the current
// location: canonical query alias only, with the alternates actively
// deleted, folder omitted for the all view. Unrelated parameters survive.
// Arms echo suppression for exactly the written value.
func (c *LocationController) writeLocked(query, folderID string) {
	v := c.loc.Read()
	for _, alias := range queryAliases {
		v.Del(alias)
	}
	v.Del(FolderParam)
	if query != "" {
		v.Set(CanonicalQueryParam, query)
	}
	if folderID != "" && folderID != "all" {
		v.Set(FolderParam, folderID)
	}

	c.written = v.Encode()
	c.state = syncAwaitingEcho
	c.loc.Write(v)
	debug.Log(debug.NAV, "location write: %q", c.written)
}

func (c *LocationController) cancelTimerLocked() {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.pending = nil
}

// ReadQuery extracts the free-text query from location values: first
// non-empty alias wins, in fixed precedence order.
func ReadQuery(values url.Values) string {
	for _, alias := range queryAliases {
		if q := values.Get(alias); q != "" {
			return q
		}
	}
	return ""
}

// MemLocation is an in-memory Location for tests and headless sessions.
// Writes append to History so callers can assert on navigation traffic.
type MemLocation struct {
	mu      sync.Mutex
	current url.Values
	History []url.Values
}

// NewMemLocation returns an empty location.
func NewMemLocation() *MemLocation {
	return &MemLocation{current: url.Values{}}
}

func (m *MemLocation) Read() url.Values {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := url.Values{}
	for k, vs := range m.current {
		out[k] = append([]string(nil), vs...)
	}
	return out
}

func (m *MemLocation) Write(values url.Values) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = values
	m.History = append(m.History, values)
}
