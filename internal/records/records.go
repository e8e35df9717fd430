// Package records keeps the history of finished encounters, persisted
// through gdata and ranked by survival score.
package records

import (
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

const (
	recordsObject   = "records"
	recordsProperty = "encounters"
	maxRecords      = 10
)

// Outcome values stored in an Entry.
const (
	OutcomeVictory = "victory"
	OutcomeSpared  = "spared"
	OutcomeDefeat  = "defeat"
)

// Entry is one finished encounter
type Entry struct {
	Enemy       string    `yaml:"enemy"`
	Boss        bool      `yaml:"boss"`
	Outcome     string    `yaml:"outcome"`
	DamageTaken int       `yaml:"damage_taken"`
	Hits        int       `yaml:"hits"`
	Ticks       int       `yaml:"ticks"`
	Score       int       `yaml:"score"`
	Date        time.Time `yaml:"date"`
}

// SurvivalScore ranks an encounter: winning counts most, each hit taken
// costs, and every second survived earns a point.
func SurvivalScore(e Entry) int {
	score := e.Ticks / 60
	switch e.Outcome {
	case OutcomeVictory:
		score += 1000
	case OutcomeSpared:
		score += 800
	}
	if e.Boss {
		score += 500
	}
	score -= e.DamageTaken * 10
	if score < 0 {
		score = 0
	}
	return score
}

// Store holds the top encounters. A Store without a gdata manager works in
// memory only.
type Store struct {
	gdataManager *gdata.Manager
	entries      []Entry
}

// Open creates a store backed by gdata under appName. When storage cannot
// be opened the store falls back to memory and logs a warning.
func Open(appName string) *Store {
	manager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		log.Printf("[Records] Warning: storage unavailable: %v (records kept in memory)", err)
		manager = nil
	}

	s, err := NewStore(manager)
	if err != nil {
		log.Printf("[Records] Warning: failed to load records: %v (starting empty)", err)
	}
	return s
}

// NewStore creates a store on top of manager, which may be nil. The store
// is usable even when the returned error is non-nil.
func NewStore(manager *gdata.Manager) (*Store, error) {
	s := &Store{gdataManager: manager}
	return s, s.Load()
}

// Persistent reports whether entries survive a restart.
func (s *Store) Persistent() bool {
	return s.gdataManager != nil
}

// Load replaces the in-memory entries with the stored ones.
func (s *Store) Load() error {
	s.entries = nil
	if s.gdataManager == nil {
		return nil
	}
	if !s.gdataManager.ObjectPropExists(recordsObject, recordsProperty) {
		return nil
	}

	data, err := s.gdataManager.LoadObjectProp(recordsObject, recordsProperty)
	if err != nil {
		return fmt.Errorf("failed to load records: %w", err)
	}

	var entries []Entry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return fmt.Errorf("failed to unmarshal records: %w", err)
	}
	s.entries = entries
	s.sortAndTrim()
	return nil
}

// Save writes the entries to storage. It is a no-op in memory mode.
func (s *Store) Save() error {
	if s.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(s.entries)
	if err != nil {
		return fmt.Errorf("failed to marshal records: %w", err)
	}
	if err := s.gdataManager.SaveObjectProp(recordsObject, recordsProperty, data); err != nil {
		return fmt.Errorf("failed to save records: %w", err)
	}
	return nil
}

// Add scores the entry, inserts it keeping the top entries and saves. It
// returns the 1-based rank of the entry, or 0 when it did not make the list.
func (s *Store) Add(e Entry) (int, error) {
	if e.Date.IsZero() {
		e.Date = time.Now()
	}
	e.Score = SurvivalScore(e)

	s.entries = append(s.entries, e)
	s.sortAndTrim()

	rank := 0
	for i := range s.entries {
		if s.entries[i] == e {
			rank = i + 1
			break
		}
	}

	if err := s.Save(); err != nil {
		return rank, err
	}
	return rank, nil
}

// Entries returns a copy of the ranked entries.
func (s *Store) Entries() []Entry {
	return append([]Entry(nil), s.entries...)
}

func (s *Store) sortAndTrim() {
	sort.SliceStable(s.entries, func(i, j int) bool {
		return s.entries[i].Score > s.entries[j].Score
	})
	if len(s.entries) > maxRecords {
		s.entries = s.entries[:maxRecords]
	}
}
