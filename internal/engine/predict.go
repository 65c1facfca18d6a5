package engine

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/fgclab/arena-api/internal/models"
)

// ErrEmptyRoster is returned when either side has no members.
var ErrEmptyRoster = errors.New("roster must have at least one member")

// Advantage bounds for a single matchup.
const (
	maxAdvantage = 30.0
	minAdvantage = -30.0
)

// Note thresholds.
const (
	evenMatchupMargin   = 5.0
	significantMargin   = 15.0
	pressureSkillMargin = 20
)

type matchupKey struct {
	A, B models.Archetype
}

// characterFactors adjusts a matchup by archetype pairing, keyed on
// (A's archetype, B's archetype) with the value applied to A's advantage.
// Pairings are directional: the reverse matchup is evaluated on its own row
// of the cross-product, not by negating an entry here.
var characterFactors = map[matchupKey]float64{
	{models.ArchetypeGrappler, models.ArchetypeZoner}:    -10,
	{models.ArchetypeRushdown, models.ArchetypeGrappler}: 10,
}

// Predict computes the full cross-product of pairwise matchups between two
// rosters, a recommended play order for roster A, and an overall winner call.
// Both rosters must be non-empty. The input rosters are not mutated; the
// returned prediction embeds aggregated copies.
func Predict(rosterA, rosterB models.Roster) (*models.BattlePrediction, error) {
	if len(rosterA.Members) == 0 || len(rosterB.Members) == 0 {
		return nil, ErrEmptyRoster
	}

	teamA := Aggregate(rosterA)
	teamB := Aggregate(rosterB)
	nameA := teamName(teamA, "Team A")
	nameB := teamName(teamB, "Team B")

	matchups := make([]models.MatchupResult, 0, len(teamA.Members)*len(teamB.Members))
	memberTotals := make([]float64, len(teamA.Members))
	var total float64

	for i, a := range teamA.Members {
		for _, b := range teamB.Members {
			factor := characterFactors[matchupKey{a.Style, b.Style}]
			skillAdvantage := float64(a.StrengthScore - b.StrengthScore)
			advantage := clamp((skillAdvantage+factor)/2, minAdvantage, maxAdvantage)

			matchups = append(matchups, models.MatchupResult{
				MemberA:          a.Name,
				MemberB:          b.Name,
				AdvantagePercent: advantage,
				Notes:            matchupNotes(a, b, advantage, factor),
			})
			memberTotals[i] += advantage
			total += advantage
		}
	}

	meanAdvantage := total / float64(len(matchups))

	pred := &models.BattlePrediction{
		AverageAdvantage: meanAdvantage,
		TeamA:            teamA,
		TeamB:            teamB,
		Matchups:         matchups,
		RecommendedOrder: recommendOrder(teamA.Members, memberTotals, len(teamB.Members)),
	}

	// Ties go to the first-named roster.
	winnerName := nameA
	if meanAdvantage < 0 {
		winnerName = nameB
	}
	pred.PredictedWinner = winnerName

	if math.Abs(meanAdvantage) < evenMatchupMargin {
		pred.Notes = append(pred.Notes, "Teams are evenly matched - expect a close battle")
	} else {
		pred.Notes = append(pred.Notes, fmt.Sprintf("%s is favored to win with an average advantage of %d%%",
			winnerName, int(math.Round(math.Abs(meanAdvantage)))))
	}
	if s := teamA.Strengths[0]; s != NoStrengthsSentinel {
		pred.Notes = append(pred.Notes, fmt.Sprintf("%s's key strength: %s", nameA, s))
	}
	if s := teamB.Strengths[0]; s != NoStrengthsSentinel {
		pred.Notes = append(pred.Notes, fmt.Sprintf("%s's key strength: %s", nameB, s))
	}

	return pred, nil
}

// matchupNotes builds the rationale list for one matchup, most significant
// factor first.
func matchupNotes(a, b models.RosterMember, advantage, factor float64) []string {
	if math.Abs(advantage) < evenMatchupMargin {
		return []string{"Even matchup - could go either way"}
	}

	favored, other := a, b
	if advantage < 0 {
		favored, other = b, a
	}

	degree := "slight"
	if math.Abs(advantage) > significantMargin {
		degree = "significant"
	}
	notes := []string{fmt.Sprintf("%s has a %s advantage", favored.Name, degree)}

	if favored.Skills.Offense-other.Skills.Defense > pressureSkillMargin {
		notes = append(notes, fmt.Sprintf("%s's offense can overwhelm %s's defense", favored.Name, other.Name))
	}

	if factor != 0 {
		beneficiary := a
		if factor < 0 {
			beneficiary = b
		}
		notes = append(notes, fmt.Sprintf("%s has a favorable character matchup", beneficiary.Name))
	}

	return notes
}

// recommendOrder sequences roster A's members for sequential play: declared
// starters first, then descending by that member's mean advantage across all
// of their matchups. The sort is stable, so equal members keep roster order.
// This is a greedy per-member ordering - no cross-member interaction is modeled.
func recommendOrder(members []models.RosterMember, totals []float64, opponents int) []models.RosterMember {
	type ranked struct {
		member models.RosterMember
		mean   float64
	}
	order := make([]ranked, len(members))
	for i, m := range members {
		order[i] = ranked{member: m, mean: totals[i] / float64(opponents)}
	}

	sort.SliceStable(order, func(i, j int) bool {
		si := order[i].member.PreferredPosition == models.PositionStarter
		sj := order[j].member.PreferredPosition == models.PositionStarter
		if si != sj {
			return si
		}
		return order[i].mean > order[j].mean
	})

	out := make([]models.RosterMember, len(order))
	for i, r := range order {
		out[i] = r.member
	}
	return out
}

func teamName(r models.Roster, fallback string) string {
	if r.Name != "" {
		return r.Name
	}
	return fallback
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
