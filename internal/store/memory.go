// Package store provides the in-memory persistence boundary: map-backed
// collections with auto-incrementing integer identifiers. All methods are
// safe for concurrent use; returned values are copies, so callers can never
// alias internal state.
package store

import (
	"sort"
	"sync"

	"github.com/fgclab/arena-api/internal/models"
)

type Store struct {
	mu sync.RWMutex

	players    map[int]models.Player
	teams      map[int]models.Team
	matches    map[int]models.MatchRecord
	strategies map[int]models.Strategy

	nextPlayerID   int
	nextTeamID     int
	nextMatchID    int
	nextStrategyID int
}

func New() *Store {
	return &Store{
		players:        make(map[int]models.Player),
		teams:          make(map[int]models.Team),
		matches:        make(map[int]models.MatchRecord),
		strategies:     make(map[int]models.Strategy),
		nextPlayerID:   1,
		nextTeamID:     1,
		nextMatchID:    1,
		nextStrategyID: 1,
	}
}

// Players

func (s *Store) CreatePlayer(p models.Player) models.Player {
	s.mu.Lock()
	defer s.mu.Unlock()
	p.ID = s.nextPlayerID
	s.nextPlayerID++
	s.players[p.ID] = p
	return p
}

func (s *Store) GetPlayer(id int) (models.Player, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.players[id]
	return p, ok
}

func (s *Store) ListPlayers() []models.Player {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Player, 0, len(s.players))
	for _, p := range s.players {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// UpdatePlayer replaces the stored player with the same ID. Returns false if
// the player does not exist.
func (s *Store) UpdatePlayer(p models.Player) (models.Player, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.players[p.ID]; !ok {
		return models.Player{}, false
	}
	s.players[p.ID] = p
	return p, true
}

func (s *Store) DeletePlayer(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.players[id]; !ok {
		return false
	}
	delete(s.players, id)
	return true
}

// Teams

func (s *Store) CreateTeam(t models.Team) models.Team {
	s.mu.Lock()
	defer s.mu.Unlock()
	t.ID = s.nextTeamID
	s.nextTeamID++
	t.PlayerIDs = append([]int(nil), t.PlayerIDs...)
	s.teams[t.ID] = t
	return copyTeam(t)
}

func (s *Store) GetTeam(id int) (models.Team, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.teams[id]
	if !ok {
		return models.Team{}, false
	}
	return copyTeam(t), true
}

func (s *Store) ListTeams() []models.Team {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Team, 0, len(s.teams))
	for _, t := range s.teams {
		out = append(out, copyTeam(t))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// UpdateTeam replaces the stored team with the same ID. Returns false if the
// team does not exist.
func (s *Store) UpdateTeam(t models.Team) (models.Team, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.teams[t.ID]; !ok {
		return models.Team{}, false
	}
	t.PlayerIDs = append([]int(nil), t.PlayerIDs...)
	s.teams[t.ID] = t
	return copyTeam(t), true
}

func (s *Store) DeleteTeam(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.teams[id]; !ok {
		return false
	}
	delete(s.teams, id)
	return true
}

// Matches

// AppendMatches records a batch of match results, assigning IDs in order.
// Used by the ingest worker pool.
func (s *Store) AppendMatches(batch []models.MatchRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, m := range batch {
		m.ID = s.nextMatchID
		s.nextMatchID++
		s.matches[m.ID] = m
	}
}

func (s *Store) ListMatches() []models.MatchRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.MatchRecord, 0, len(s.matches))
	for _, m := range s.matches {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Strategies

func (s *Store) CreateStrategy(st models.Strategy) models.Strategy {
	s.mu.Lock()
	defer s.mu.Unlock()
	st.ID = s.nextStrategyID
	s.nextStrategyID++
	st.Tags = append([]string(nil), st.Tags...)
	s.strategies[st.ID] = st
	return copyStrategy(st)
}

func (s *Store) GetStrategy(id int) (models.Strategy, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st, ok := s.strategies[id]
	if !ok {
		return models.Strategy{}, false
	}
	return copyStrategy(st), true
}

func (s *Store) ListStrategies() []models.Strategy {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Strategy, 0, len(s.strategies))
	for _, st := range s.strategies {
		out = append(out, copyStrategy(st))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// UpdateStrategy replaces the stored strategy with the same ID. Returns false
// if the strategy does not exist.
func (s *Store) UpdateStrategy(st models.Strategy) (models.Strategy, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.strategies[st.ID]; !ok {
		return models.Strategy{}, false
	}
	st.Tags = append([]string(nil), st.Tags...)
	s.strategies[st.ID] = st
	return copyStrategy(st), true
}

func (s *Store) DeleteStrategy(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.strategies[id]; !ok {
		return false
	}
	delete(s.strategies, id)
	return true
}

func copyTeam(t models.Team) models.Team {
	t.PlayerIDs = append([]int(nil), t.PlayerIDs...)
	return t
}

func copyStrategy(st models.Strategy) models.Strategy {
	st.Tags = append([]string(nil), st.Tags...)
	return st
}
