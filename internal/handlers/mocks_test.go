package handlers

import (
	"context"

	"github.com/fgclab/arena-api/internal/models"
)

// MockIngestQueue
type MockIngestQueue struct {
	EnqueueFunc func(m models.MatchRecord) (string, bool)
	DepthFunc   func() int
}

func (m *MockIngestQueue) Enqueue(rec models.MatchRecord) (string, bool) {
	if m.EnqueueFunc != nil {
		return m.EnqueueFunc(rec)
	}
	return "mock-receipt", true
}

func (m *MockIngestQueue) QueueDepth() int {
	if m.DepthFunc != nil {
		return m.DepthFunc()
	}
	return 0
}

// MockBattleService
type MockBattleService struct {
	AnalyzeFunc func(ctx context.Context, req models.BattleAnalyzeRequest) (*models.BattlePrediction, error)
}

func (m *MockBattleService) Analyze(ctx context.Context, req models.BattleAnalyzeRequest) (*models.BattlePrediction, error) {
	if m.AnalyzeFunc != nil {
		return m.AnalyzeFunc(ctx, req)
	}
	return &models.BattlePrediction{}, nil
}

// MockScoutingService
type MockScoutingService struct {
	GetScoutingCardFunc func(ctx context.Context, playerID int) (*models.ScoutingCard, error)
	AnalyzeTeamFunc     func(ctx context.Context, teamID int) (*models.Roster, error)
}

func (m *MockScoutingService) GetScoutingCard(ctx context.Context, playerID int) (*models.ScoutingCard, error) {
	if m.GetScoutingCardFunc != nil {
		return m.GetScoutingCardFunc(ctx, playerID)
	}
	return &models.ScoutingCard{}, nil
}

func (m *MockScoutingService) AnalyzeTeam(ctx context.Context, teamID int) (*models.Roster, error) {
	if m.AnalyzeTeamFunc != nil {
		return m.AnalyzeTeamFunc(ctx, teamID)
	}
	return &models.Roster{}, nil
}

// MockLeaderboardService
type MockLeaderboardService struct {
	GetLeaderboardFunc func(ctx context.Context, stat string, limit, page int) (*models.Leaderboard, error)
}

func (m *MockLeaderboardService) GetLeaderboard(ctx context.Context, stat string, limit, page int) (*models.Leaderboard, error) {
	if m.GetLeaderboardFunc != nil {
		return m.GetLeaderboardFunc(ctx, stat, limit, page)
	}
	return &models.Leaderboard{}, nil
}

func (m *MockLeaderboardService) Invalidate(ctx context.Context) {}

// MockCoachService
type MockCoachService struct {
	ChatFunc          func(ctx context.Context, req models.CoachChatRequest) (*models.CoachReply, error)
	MatchupAdviceFunc func(ctx context.Context, req models.CoachMatchupRequest) (*models.CoachReply, error)
}

func (m *MockCoachService) Chat(ctx context.Context, req models.CoachChatRequest) (*models.CoachReply, error) {
	if m.ChatFunc != nil {
		return m.ChatFunc(ctx, req)
	}
	return &models.CoachReply{Reply: "mock"}, nil
}

func (m *MockCoachService) MatchupAdvice(ctx context.Context, req models.CoachMatchupRequest) (*models.CoachReply, error) {
	if m.MatchupAdviceFunc != nil {
		return m.MatchupAdviceFunc(ctx, req)
	}
	return &models.CoachReply{Reply: "mock"}, nil
}
