package logic

import (
	"context"
	"errors"
	"fmt"

	"github.com/fgclab/arena-api/internal/engine"
	"github.com/fgclab/arena-api/internal/models"
)

var (
	ErrPlayerNotFound = errors.New("player not found")
	ErrTeamNotFound   = errors.New("team not found")
)

// Skill level a sub-score must reach to be called out on a scouting card.
const standoutSkillLevel = 80

// archetypeBlurbs are the one-line playstyle descriptions shown on cards.
var archetypeBlurbs = map[models.Archetype]string{
	models.ArchetypeAllRounder: "Comfortable at every range, hard to exploit",
	models.ArchetypeRushdown:   "Relentless pressure, wants to stay in your face",
	models.ArchetypeZoner:      "Controls space and makes you come to them",
	models.ArchetypeGrappler:   "One read from a command grab can end a round",
	models.ArchetypeMixed:      "Unorthodox tools and hard-to-react mixups",
	models.ArchetypeBalanced:   "Solid fundamentals with no glaring holes",
	models.ArchetypeUnknown:    "Playstyle not yet profiled",
}

type scoutingService struct {
	players PlayerStore
	teams   TeamStore
}

func NewScoutingService(players PlayerStore, teams TeamStore) ScoutingService {
	return &scoutingService{players: players, teams: teams}
}

func (s *scoutingService) GetScoutingCard(ctx context.Context, playerID int) (*models.ScoutingCard, error) {
	p, ok := s.players.GetPlayer(playerID)
	if !ok {
		return nil, ErrPlayerNotFound
	}

	card := &models.ScoutingCard{
		PlayerID:      p.ID,
		Name:          p.Name,
		Character:     p.Character,
		Style:         p.Style,
		Rank:          p.Rank,
		WinRate:       p.WinRate,
		StrengthScore: p.StrengthScore,
		Skills:        p.Skills,
		TopSkill:      topSkill(p.Skills),
	}

	card.Summary = append(card.Summary, archetypeBlurbs[p.Style])
	for _, sk := range skillList(p.Skills) {
		if sk.value >= standoutSkillLevel {
			card.Summary = append(card.Summary, fmt.Sprintf("Standout %s (%d)", sk.name, sk.value))
		}
	}

	return card, nil
}

// AnalyzeTeam assembles the team's roster from stored players and returns the
// aggregated view. Missing player IDs are skipped rather than failing the
// whole analysis.
func (s *scoutingService) AnalyzeTeam(ctx context.Context, teamID int) (*models.Roster, error) {
	team, ok := s.teams.GetTeam(teamID)
	if !ok {
		return nil, ErrTeamNotFound
	}

	roster := models.Roster{Name: team.Name}
	for _, id := range team.PlayerIDs {
		p, ok := s.players.GetPlayer(id)
		if !ok {
			continue
		}
		roster.Members = append(roster.Members, models.RosterMember{
			ID:            p.ID,
			Name:          p.Name,
			Character:     p.Character,
			Rank:          p.Rank,
			WinRate:       p.WinRate,
			Skills:        p.Skills,
			StrengthScore: p.StrengthScore,
			Style:         p.Style,
		})
	}

	aggregated := engine.Aggregate(roster)
	return &aggregated, nil
}

type namedSkill struct {
	name  string
	value int
}

// skillList fixes the tie-break order for top-skill selection.
func skillList(s models.Skills) []namedSkill {
	return []namedSkill{
		{"offense", s.Offense},
		{"defense", s.Defense},
		{"adaptation", s.Adaptation},
		{"execution", s.Execution},
		{"footsies", s.Footsies},
	}
}

func topSkill(s models.Skills) string {
	best := namedSkill{name: "offense", value: -1}
	for _, sk := range skillList(s) {
		if sk.value > best.value {
			best = sk
		}
	}
	return best.name
}
