package logic

import (
	"context"

	"github.com/fgclab/arena-api/internal/engine"
	"github.com/fgclab/arena-api/internal/models"
)

type battleService struct{}

func NewBattleService() BattleService {
	return &battleService{}
}

// Analyze converts both roster drafts into validated rosters and runs the
// prediction engine. Validation failures (out-of-range skills, empty roster)
// come back as the engine's typed errors.
func (s *battleService) Analyze(ctx context.Context, req models.BattleAnalyzeRequest) (*models.BattlePrediction, error) {
	rosterA, err := engine.BuildRoster(req.TeamA)
	if err != nil {
		return nil, err
	}
	rosterB, err := engine.BuildRoster(req.TeamB)
	if err != nil {
		return nil, err
	}
	return engine.Predict(rosterA, rosterB)
}

// NewPlayer builds a stored player from a create request. Like roster drafts,
// this is the single place the derived StrengthScore/Style fields are set.
func NewPlayer(req models.CreatePlayerRequest) (models.Player, error) {
	m, err := engine.NewMember(0, models.RosterMemberDraft{
		Name:      req.Name,
		Character: req.Character,
		Rank:      req.Rank,
		WinRate:   req.WinRate,
		Skills:    req.Skills,
	})
	if err != nil {
		return models.Player{}, err
	}
	return models.Player{
		Name:          m.Name,
		Character:     m.Character,
		Rank:          m.Rank,
		WinRate:       m.WinRate,
		Skills:        m.Skills,
		StrengthScore: m.StrengthScore,
		Style:         m.Style,
	}, nil
}
