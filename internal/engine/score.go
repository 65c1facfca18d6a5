package engine

import (
	"errors"
	"fmt"
	"math"

	"github.com/fgclab/arena-api/internal/models"
)

// ErrSkillOutOfRange is returned when a draft carries a sub-score outside [0,100].
var ErrSkillOutOfRange = errors.New("skill sub-score outside [0,100]")

// Fixed strength-score weights. They sum to 1.0 by construction.
const (
	weightOffense    = 0.25
	weightDefense    = 0.20
	weightAdaptation = 0.20
	weightExecution  = 0.15
	weightFootsies   = 0.20
)

// Score computes the single 0-100 strength score from the five sub-scores.
// Inputs are assumed to already lie in [0,100]; range enforcement happens at
// the draft conversion boundary, not here.
func Score(s models.Skills) int {
	raw := float64(s.Offense)*weightOffense +
		float64(s.Defense)*weightDefense +
		float64(s.Adaptation)*weightAdaptation +
		float64(s.Execution)*weightExecution +
		float64(s.Footsies)*weightFootsies
	return int(math.Round(raw))
}

// ValidateSkills rejects sub-scores outside [0,100].
func ValidateSkills(s models.Skills) error {
	checks := []struct {
		name  string
		value int
	}{
		{"offense", s.Offense},
		{"defense", s.Defense},
		{"adaptation", s.Adaptation},
		{"execution", s.Execution},
		{"footsies", s.Footsies},
	}
	for _, c := range checks {
		if c.value < 0 || c.value > 100 {
			return fmt.Errorf("%w: %s=%d", ErrSkillOutOfRange, c.name, c.value)
		}
	}
	return nil
}

// NewMember converts a draft into a validated member. This is the single
// place defaults are applied and the derived StrengthScore/Style fields are
// computed, so they can never drift from their inputs.
func NewMember(id int, draft models.RosterMemberDraft) (models.RosterMember, error) {
	if err := ValidateSkills(draft.Skills); err != nil {
		return models.RosterMember{}, fmt.Errorf("member %q: %w", draft.Name, err)
	}

	rank := draft.Rank
	if rank == "" {
		rank = "Unranked"
	}

	return models.RosterMember{
		ID:                id,
		Name:              draft.Name,
		Character:         draft.Character,
		Rank:              rank,
		WinRate:           draft.WinRate,
		PreferredPosition: draft.PreferredPosition,
		Skills:            draft.Skills,
		StrengthScore:     Score(draft.Skills),
		Style:             Classify(draft.Character),
	}, nil
}

// BuildRoster converts a full roster draft, assigning members sequential IDs
// starting at 1.
func BuildRoster(draft models.RosterDraft) (models.Roster, error) {
	roster := models.Roster{
		Name:    draft.Name,
		Members: make([]models.RosterMember, 0, len(draft.Members)),
	}
	for i, md := range draft.Members {
		m, err := NewMember(i+1, md)
		if err != nil {
			return models.Roster{}, err
		}
		roster.Members = append(roster.Members, m)
	}
	return roster, nil
}
