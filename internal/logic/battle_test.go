package logic

import (
	"context"
	"errors"
	"testing"

	"github.com/fgclab/arena-api/internal/engine"
	"github.com/fgclab/arena-api/internal/models"
)

func draftMember(name, character string, skill int) models.RosterMemberDraft {
	return models.RosterMemberDraft{
		Name:      name,
		Character: character,
		Skills:    models.Skills{Offense: skill, Defense: skill, Adaptation: skill, Execution: skill, Footsies: skill},
	}
}

func TestBattleServiceAnalyze(t *testing.T) {
	svc := NewBattleService()

	req := models.BattleAnalyzeRequest{
		TeamA: models.RosterDraft{Name: "Alpha", Members: []models.RosterMemberDraft{
			draftMember("A1", "Ken", 80),
			draftMember("A2", "Zangief", 70),
		}},
		TeamB: models.RosterDraft{Name: "Beta", Members: []models.RosterMemberDraft{
			draftMember("B1", "Dhalsim", 60),
		}},
	}

	pred, err := svc.Analyze(context.Background(), req)
	if err != nil {
		t.Fatalf("Analyze returned error: %v", err)
	}
	if len(pred.Matchups) != 2 {
		t.Errorf("got %d matchups, want 2", len(pred.Matchups))
	}
	if pred.PredictedWinner != "Alpha" {
		t.Errorf("winner = %q, want Alpha", pred.PredictedWinner)
	}
}

func TestBattleServiceAnalyzeErrors(t *testing.T) {
	svc := NewBattleService()

	tests := []struct {
		name    string
		req     models.BattleAnalyzeRequest
		wantErr error
	}{
		{
			name: "EmptyRoster",
			req: models.BattleAnalyzeRequest{
				TeamA: models.RosterDraft{Members: []models.RosterMemberDraft{}},
				TeamB: models.RosterDraft{Members: []models.RosterMemberDraft{draftMember("B", "Ryu", 50)}},
			},
			wantErr: engine.ErrEmptyRoster,
		},
		{
			name: "SkillOutOfRange",
			req: models.BattleAnalyzeRequest{
				TeamA: models.RosterDraft{Members: []models.RosterMemberDraft{draftMember("A", "Ryu", 140)}},
				TeamB: models.RosterDraft{Members: []models.RosterMemberDraft{draftMember("B", "Ryu", 50)}},
			},
			wantErr: engine.ErrSkillOutOfRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Analyze(context.Background(), tt.req)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Analyze error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestNewPlayerDerivedFields(t *testing.T) {
	p, err := NewPlayer(models.CreatePlayerRequest{
		Name:      "Daigo",
		Character: "Ken",
		WinRate:   72,
		Skills:    models.Skills{Offense: 90, Defense: 70, Adaptation: 82, Execution: 88, Footsies: 80},
	})
	if err != nil {
		t.Fatalf("NewPlayer returned error: %v", err)
	}
	if p.StrengthScore != 82 {
		t.Errorf("StrengthScore = %d, want 82", p.StrengthScore)
	}
	if p.Style != models.ArchetypeAllRounder {
		t.Errorf("Style = %q, want All-Rounder", p.Style)
	}

	_, err = NewPlayer(models.CreatePlayerRequest{Name: "X", Character: "Ryu", Skills: models.Skills{Offense: -1}})
	if !errors.Is(err, engine.ErrSkillOutOfRange) {
		t.Errorf("error = %v, want ErrSkillOutOfRange", err)
	}
}
