// Package cache holds normalized records for the lifetime of the process.
// The in-memory Store is the primary tier; Redis is an optional second
// tier mirroring single records and the default list.
package cache

import (
	"sync"

	"github.com/studykorea/uniclient/model"
)

// Store keeps normalized universities keyed by id plus the derived buckets
// (default list, locations, types, query-keyed filter results). Buckets are
// independent: nothing short of InvalidateAll clears more than the bucket
// being written. Safe for concurrent use. Construct one per client so tests
// get isolated state.
type Store struct {
	mu sync.RWMutex

	byID map[int]model.University

	defaultList []model.University
	hasDefault  bool

	locations []string
	types     []string

	searchResults   map[string][]model.University
	locationResults map[string][]model.University
	typeResults     map[string][]model.University
}

// NewStore returns an empty store.
func NewStore() *Store {
	s := &Store{}
	s.reset()
	return s
}

func (s *Store) reset() {
	s.byID = make(map[int]model.University)
	s.defaultList = nil
	s.hasDefault = false
	s.locations = nil
	s.types = nil
	s.searchResults = make(map[string][]model.University)
	s.locationResults = make(map[string][]model.University)
	s.typeResults = make(map[string][]model.University)
}

// Get returns the cached record for id, if any.
func (s *Store) Get(id int) (model.University, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.byID[id]
	return u, ok
}

// Upsert replaces the record with the same id, or adds it. The default
// list entry is replaced in place too so list and detail views agree.
func (s *Store) Upsert(u model.University) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byID[u.ID] = u
	for i := range s.defaultList {
		if s.defaultList[i].ID == u.ID {
			s.defaultList[i] = u
			break
		}
	}
}

// Put wholesale-replaces the default (unfiltered, first-page) list and
// indexes every record by id. Only default-shape list responses go here.
func (s *Store) Put(list []model.University) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.defaultList = append([]model.University(nil), list...)
	s.hasDefault = true
	for _, u := range list {
		s.byID[u.ID] = u
	}
}

// Default returns a copy of the default list and whether one is cached.
func (s *Store) Default() ([]model.University, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.hasDefault {
		return nil, false
	}
	return append([]model.University(nil), s.defaultList...), true
}

// Locations returns the cached distinct-locations list, if populated.
func (s *Store) Locations() ([]string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.locations == nil {
		return nil, false
	}
	return append([]string(nil), s.locations...), true
}

// SetLocations caches the distinct-locations list.
func (s *Store) SetLocations(locations []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.locations = append([]string{}, locations...)
}

// Types returns the cached distinct-types list, if populated.
func (s *Store) Types() ([]string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.types == nil {
		return nil, false
	}
	return append([]string(nil), s.types...), true
}

// SetTypes caches the distinct-types list.
func (s *Store) SetTypes(types []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.types = append([]string{}, types...)
}

// Search returns the cached result set for a free-text query.
func (s *Store) Search(query string) ([]model.University, bool) {
	return s.keyed(s.searchResults, query)
}

// SetSearch caches the result set for a free-text query.
func (s *Store) SetSearch(query string, list []model.University) {
	s.setKeyed(s.searchResults, query, list)
}

// ByLocation returns the cached result set for a location filter.
func (s *Store) ByLocation(location string) ([]model.University, bool) {
	return s.keyed(s.locationResults, location)
}

// SetByLocation caches the result set for a location filter.
func (s *Store) SetByLocation(location string, list []model.University) {
	s.setKeyed(s.locationResults, location, list)
}

// ByType returns the cached result set for a type filter.
func (s *Store) ByType(uniType string) ([]model.University, bool) {
	return s.keyed(s.typeResults, uniType)
}

// SetByType caches the result set for a type filter.
func (s *Store) SetByType(uniType string, list []model.University) {
	s.setKeyed(s.typeResults, uniType, list)
}

// InvalidateAll clears every bucket. Callers run this ahead of any
// retry-after-error flow so the next read is guaranteed a fresh fetch.
func (s *Store) InvalidateAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reset()
}

func (s *Store) keyed(bucket map[string][]model.University, key string) ([]model.University, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	list, ok := bucket[key]
	if !ok {
		return nil, false
	}
	return append([]model.University(nil), list...), true
}

func (s *Store) setKeyed(bucket map[string][]model.University, key string, list []model.University) {
	s.mu.Lock()
	defer s.mu.Unlock()
	bucket[key] = append([]model.University(nil), list...)
}
