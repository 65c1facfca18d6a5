package logic

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/fgclab/arena-api/internal/models"
)

func TestCoachDisabledWithoutAPIKey(t *testing.T) {
	svc, err := NewCoachService(context.Background(), "", "gemini-2.0-flash", &MockBattleService{}, zap.NewNop())
	if err != nil {
		t.Fatalf("NewCoachService returned error: %v", err)
	}

	_, err = svc.Chat(context.Background(), models.CoachChatRequest{Message: "How do I beat zoners?"})
	if !errors.Is(err, ErrCoachDisabled) {
		t.Errorf("Chat error = %v, want ErrCoachDisabled", err)
	}
}

func TestMatchupAdvicePropagatesEngineError(t *testing.T) {
	wantErr := errors.New("bad roster")
	battle := &MockBattleService{
		AnalyzeFunc: func(ctx context.Context, req models.BattleAnalyzeRequest) (*models.BattlePrediction, error) {
			return nil, wantErr
		},
	}
	svc, err := NewCoachService(context.Background(), "", "gemini-2.0-flash", battle, zap.NewNop())
	if err != nil {
		t.Fatalf("NewCoachService returned error: %v", err)
	}

	_, err = svc.MatchupAdvice(context.Background(), models.CoachMatchupRequest{Question: "?"})
	if !errors.Is(err, wantErr) {
		t.Errorf("MatchupAdvice error = %v, want analysis error before any model call", err)
	}
}
