package engine

import (
	"errors"
	"testing"

	"github.com/fgclab/arena-api/internal/models"
)

func TestScore(t *testing.T) {
	tests := []struct {
		name   string
		skills models.Skills
		want   int
	}{
		{"AllZero", models.Skills{}, 0},
		{"AllMax", models.Skills{Offense: 100, Defense: 100, Adaptation: 100, Execution: 100, Footsies: 100}, 100},
		// round(90*0.25 + 70*0.20 + 82*0.20 + 88*0.15 + 80*0.20) = round(82.1)
		{"KenScenario", models.Skills{Offense: 90, Defense: 70, Adaptation: 82, Execution: 88, Footsies: 80}, 82},
		// round(65*0.25 + 75*0.20 + 85*0.20 + 80*0.15 + 92*0.20) = round(78.65)
		{"DhalsimScenario", models.Skills{Offense: 65, Defense: 75, Adaptation: 85, Execution: 80, Footsies: 92}, 79},
		{"RoundsToNearest", models.Skills{Offense: 50, Defense: 50, Adaptation: 50, Execution: 50, Footsies: 51}, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Score(tt.skills); got != tt.want {
				t.Errorf("Score(%+v) = %d, want %d", tt.skills, got, tt.want)
			}
		})
	}
}

func TestScoreRange(t *testing.T) {
	// Any valid input must land in [0,100].
	for offense := 0; offense <= 100; offense += 25 {
		for footsies := 0; footsies <= 100; footsies += 25 {
			s := models.Skills{Offense: offense, Defense: 60, Adaptation: 40, Execution: 80, Footsies: footsies}
			got := Score(s)
			if got < 0 || got > 100 {
				t.Fatalf("Score(%+v) = %d, outside [0,100]", s, got)
			}
		}
	}
}

func TestNewMember(t *testing.T) {
	draft := models.RosterMemberDraft{
		Name:      "Daigo",
		Character: "Ken",
		WinRate:   72,
		Skills:    models.Skills{Offense: 90, Defense: 70, Adaptation: 82, Execution: 88, Footsies: 80},
	}

	m, err := NewMember(1, draft)
	if err != nil {
		t.Fatalf("NewMember returned error: %v", err)
	}
	if m.StrengthScore != 82 {
		t.Errorf("StrengthScore = %d, want 82", m.StrengthScore)
	}
	if m.Style != models.ArchetypeAllRounder {
		t.Errorf("Style = %q, want %q", m.Style, models.ArchetypeAllRounder)
	}
	if m.Rank != "Unranked" {
		t.Errorf("Rank default = %q, want Unranked", m.Rank)
	}
	if m.ID != 1 {
		t.Errorf("ID = %d, want 1", m.ID)
	}
}

func TestNewMemberRejectsOutOfRangeSkills(t *testing.T) {
	tests := []struct {
		name   string
		skills models.Skills
	}{
		{"OffenseTooHigh", models.Skills{Offense: 101}},
		{"DefenseNegative", models.Skills{Defense: -1}},
		{"FootsiesTooHigh", models.Skills{Footsies: 250}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewMember(1, models.RosterMemberDraft{Name: "X", Character: "Ryu", Skills: tt.skills})
			if !errors.Is(err, ErrSkillOutOfRange) {
				t.Errorf("NewMember error = %v, want ErrSkillOutOfRange", err)
			}
		})
	}
}

func TestBuildRoster(t *testing.T) {
	draft := models.RosterDraft{
		Name: "Alpha",
		Members: []models.RosterMemberDraft{
			{Name: "One", Character: "Ryu", Skills: models.Skills{Offense: 50, Defense: 50, Adaptation: 50, Execution: 50, Footsies: 50}},
			{Name: "Two", Character: "Guile", Skills: models.Skills{Offense: 60, Defense: 60, Adaptation: 60, Execution: 60, Footsies: 60}},
		},
	}

	roster, err := BuildRoster(draft)
	if err != nil {
		t.Fatalf("BuildRoster returned error: %v", err)
	}
	if len(roster.Members) != 2 {
		t.Fatalf("got %d members, want 2", len(roster.Members))
	}
	if roster.Members[0].ID != 1 || roster.Members[1].ID != 2 {
		t.Errorf("member IDs = %d,%d, want 1,2", roster.Members[0].ID, roster.Members[1].ID)
	}

	draft.Members[1].Skills.Offense = -5
	if _, err := BuildRoster(draft); !errors.Is(err, ErrSkillOutOfRange) {
		t.Errorf("BuildRoster error = %v, want ErrSkillOutOfRange", err)
	}
}
