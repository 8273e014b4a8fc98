package state

import (
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/foodshare/foodshare/internal/catalog"
	"github.com/foodshare/foodshare/internal/session"
)

// Saver persists the full catalog. The snapshot package provides the real
// implementation; tests substitute their own.
type Saver interface {
	Save(items []catalog.FoodItem) error
}

// SaverFunc adapts a function to the Saver interface.
type SaverFunc func(items []catalog.FoodItem) error

// Save implements Saver.
func (f SaverFunc) Save(items []catalog.FoodItem) error { return f(items) }

// Snapshot represents the data available to the UI at a point in time.
type Snapshot struct {
	User  *session.Profile
	Items []catalog.FoodItem

	// PostedThisSession counts items added since the store was created.
	PostedThisSession int

	// LastSaveFailed reports whether the most recent persistence write
	// failed. The catalog itself is always current in memory.
	LastSaveFailed bool
}

// Authenticated returns true when a profile is active.
func (s Snapshot) Authenticated() bool { return s.User != nil }

// PostedByName returns the name stamped onto new items.
func (s Snapshot) PostedByName() string {
	if s.User == nil {
		return session.AnonymousName
	}
	return s.User.Name
}

// Store holds the current user and catalog and applies all transitions.
// Every catalog mutation is written through the Saver; write failures are
// logged and flagged, never surfaced as errors.
type Store struct {
	mu sync.RWMutex

	user           *session.Profile
	items          []catalog.FoodItem
	posted         int
	lastSaveFailed bool

	saver Saver
	log   zerolog.Logger
	now   func() time.Time
}

// New creates a Store over an initial catalog. A nil saver disables
// persistence (used by tests that only exercise transitions).
func New(items []catalog.FoodItem, saver Saver, log zerolog.Logger) *Store {
	return &Store{
		items: cloneItems(items),
		saver: saver,
		log:   log,
		now:   time.Now,
	}
}

// Login makes the canned profile for role the active user. It is total:
// any valid role succeeds and replaces whatever session existed before.
func (s *Store) Login(role session.Role) session.Profile {
	profile := session.ProfileFor(role)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = &profile
	return profile
}

// Logout discards the active profile. Items already posted keep their
// denormalized PostedBy name.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
}

// AddItem validates the draft, appends the stamped item to the catalog,
// and writes the snapshot through. The returned item is the stored record.
// A persistence failure does not fail the call; it is logged and recorded
// on the next Snapshot.
func (s *Store) AddItem(draft catalog.Draft) (catalog.FoodItem, error) {
	if err := draft.Validate(); err != nil {
		return catalog.FoodItem{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	postedBy := session.AnonymousName
	if s.user != nil {
		postedBy = s.user.Name
	}
	item := catalog.New(draft, postedBy, s.now())
	s.items = append(s.items, item)
	s.posted++

	s.lastSaveFailed = false
	if s.saver != nil {
		if err := s.saver.Save(cloneItems(s.items)); err != nil {
			s.lastSaveFailed = true
			s.log.Error().Err(err).Str("item", item.ID).Msg("catalog snapshot write failed")
		}
	}

	return item, nil
}

// List returns the items matching the search term and category filter, in
// catalog order.
func (s *Store) List(term string, category catalog.Category) []catalog.FoodItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return catalog.Filter(s.items, term, category)
}

// Items returns a copy of the full catalog in insertion order.
func (s *Store) Items() []catalog.FoodItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneItems(s.items)
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := Snapshot{
		Items:             cloneItems(s.items),
		PostedThisSession: s.posted,
		LastSaveFailed:    s.lastSaveFailed,
	}
	if s.user != nil {
		user := *s.user
		snap.User = &user
	}
	return snap
}

func cloneItems(items []catalog.FoodItem) []catalog.FoodItem {
	if len(items) == 0 {
		return nil
	}
	dup := make([]catalog.FoodItem, len(items))
	copy(dup, items)
	return dup
}
