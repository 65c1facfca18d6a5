package logic

import (
	"context"

	"github.com/fgclab/arena-api/internal/models"
)

// MockPlayerStore implements PlayerStore over a fixed slice.
type MockPlayerStore struct {
	Players []models.Player
}

func (m *MockPlayerStore) GetPlayer(id int) (models.Player, bool) {
	for _, p := range m.Players {
		if p.ID == id {
			return p, true
		}
	}
	return models.Player{}, false
}

func (m *MockPlayerStore) ListPlayers() []models.Player {
	out := make([]models.Player, len(m.Players))
	copy(out, m.Players)
	return out
}

// MockTeamStore implements TeamStore over a fixed slice.
type MockTeamStore struct {
	Teams []models.Team
}

func (m *MockTeamStore) GetTeam(id int) (models.Team, bool) {
	for _, t := range m.Teams {
		if t.ID == id {
			return t, true
		}
	}
	return models.Team{}, false
}

// MockBattleService returns a canned prediction.
type MockBattleService struct {
	AnalyzeFunc func(ctx context.Context, req models.BattleAnalyzeRequest) (*models.BattlePrediction, error)
}

func (m *MockBattleService) Analyze(ctx context.Context, req models.BattleAnalyzeRequest) (*models.BattlePrediction, error) {
	if m.AnalyzeFunc != nil {
		return m.AnalyzeFunc(ctx, req)
	}
	return &models.BattlePrediction{}, nil
}
