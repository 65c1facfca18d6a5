package engine

import (
	"fmt"
	"math"

	"github.com/fgclab/arena-api/internal/models"
)

// Aggregation thresholds. Strength rules fire above the high-water mark,
// the mirrored weakness rules below the low-water mark.
const (
	highSkillThreshold  = 70
	lowSkillThreshold   = 40
	strongRecordWinRate = 65
	poorRecordWinRate   = 40

	diverseArchetypeMin   = 3
	diverseRosterMin      = 3
	specialistCountMin    = 3
	specialistRosterMin   = 4
	monotoneArchetypeMax  = 1
	monotoneRosterMin     = 3
)

// Sentinel entries used when no rule fires. The label lists are never empty.
const (
	NoStrengthsSentinel  = "No specific strengths identified"
	NoWeaknessesSentinel = "No specific weaknesses identified"
)

// specialistOrder fixes the evaluation order for specialist-team labels so
// aggregation is independent of member insertion order.
var specialistOrder = []models.Archetype{
	models.ArchetypeAllRounder,
	models.ArchetypeRushdown,
	models.ArchetypeZoner,
	models.ArchetypeGrappler,
	models.ArchetypeMixed,
	models.ArchetypeBalanced,
	models.ArchetypeUnknown,
}

// Aggregate returns a copy of the roster with OverallSkill, Strengths and
// Weaknesses recomputed from its members. It is idempotent: reapplying it to
// the same members yields identical output. An empty roster aggregates to an
// overall skill of 0 (the divisor is floored at 1).
func Aggregate(roster models.Roster) models.Roster {
	out := roster
	size := len(roster.Members)

	var sumStrength, sumWinRate, sumOffense, sumDefense int
	styleCounts := make(map[models.Archetype]int, len(specialistOrder))
	for _, m := range roster.Members {
		sumStrength += m.StrengthScore
		sumWinRate += m.WinRate
		sumOffense += m.Skills.Offense
		sumDefense += m.Skills.Defense
		styleCounts[m.Style]++
	}

	divisor := float64(max(1, size))
	out.OverallSkill = int(math.Round(float64(sumStrength) / divisor))
	meanWinRate := float64(sumWinRate) / divisor
	meanOffense := float64(sumOffense) / divisor
	meanDefense := float64(sumDefense) / divisor
	uniqueStyles := len(styleCounts)

	var strengths []string
	if out.OverallSkill > highSkillThreshold {
		strengths = append(strengths, "High Overall Skill Level")
	}
	if meanWinRate > strongRecordWinRate {
		strengths = append(strengths, "Strong Win Record")
	}
	if uniqueStyles >= diverseArchetypeMin && size >= diverseRosterMin {
		strengths = append(strengths, "Diverse Character Selection")
	}
	if size >= specialistRosterMin {
		for _, style := range specialistOrder {
			if styleCounts[style] >= specialistCountMin {
				strengths = append(strengths, fmt.Sprintf("%s Specialist Team", style))
			}
		}
	}
	if meanOffense > highSkillThreshold {
		strengths = append(strengths, "Strong Offensive Capability")
	}
	if meanDefense > highSkillThreshold {
		strengths = append(strengths, "Solid Defensive Skills")
	}
	if len(strengths) == 0 {
		strengths = []string{NoStrengthsSentinel}
	}
	out.Strengths = strengths

	var weaknesses []string
	if out.OverallSkill < lowSkillThreshold {
		weaknesses = append(weaknesses, "Low Overall Skill Level")
	}
	if meanWinRate < poorRecordWinRate {
		weaknesses = append(weaknesses, "Poor Win Record")
	}
	if uniqueStyles <= monotoneArchetypeMax && size >= monotoneRosterMin {
		weaknesses = append(weaknesses, "Lack of Character Diversity")
	}
	if meanOffense < lowSkillThreshold {
		weaknesses = append(weaknesses, "Limited Offensive Pressure")
	}
	if meanDefense < lowSkillThreshold {
		weaknesses = append(weaknesses, "Vulnerable Defense")
	}
	if len(weaknesses) == 0 {
		weaknesses = []string{NoWeaknessesSentinel}
	}
	out.Weaknesses = weaknesses

	return out
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
