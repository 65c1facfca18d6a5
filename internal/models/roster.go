package models

// Archetype is the coarse playstyle category assigned to a character.
type Archetype string

const (
	ArchetypeAllRounder Archetype = "All-Rounder"
	ArchetypeRushdown   Archetype = "Rushdown"
	ArchetypeZoner      Archetype = "Zoner"
	ArchetypeGrappler   Archetype = "Grappler"
	ArchetypeMixed      Archetype = "Mixed/Tricky"
	ArchetypeBalanced   Archetype = "Balanced"
	ArchetypeUnknown    Archetype = "Unknown"
)

// Preferred play-order positions a member can declare.
const (
	PositionStarter = "starter"
	PositionMiddle  = "middle"
	PositionAnchor  = "anchor"
)

// Skills holds the five sub-scores used to derive a strength score.
// Each value is an integer in [0,100].
type Skills struct {
	Offense    int `json:"offense"`
	Defense    int `json:"defense"`
	Adaptation int `json:"adaptation"`
	Execution  int `json:"execution"`
	Footsies   int `json:"footsies"`
}

// RosterMember is one competitor on a side of a matchup.
// StrengthScore and Style are derived fields - they are recomputed from
// Skills/Character at the draft conversion boundary and never edited directly.
type RosterMember struct {
	ID                int       `json:"id"`
	Name              string    `json:"name"`
	Character         string    `json:"character"`
	Rank              string    `json:"rank"`
	WinRate           int       `json:"win_rate"`
	PreferredPosition string    `json:"preferred_position,omitempty"`
	Skills            Skills    `json:"skills"`
	StrengthScore     int       `json:"strength_score"`
	Style             Archetype `json:"style"`
}

// Roster is an ordered collection of members. Strengths, Weaknesses and
// OverallSkill are derived aggregates, recomputed on demand.
type Roster struct {
	Name         string         `json:"name,omitempty"`
	Members      []RosterMember `json:"members"`
	Strengths    []string       `json:"strengths,omitempty"`
	Weaknesses   []string       `json:"weaknesses,omitempty"`
	OverallSkill int            `json:"overall_skill"`
}

// MatchupResult is one directed pairwise comparison, member A vs member B.
// A positive advantage favors member A. Notes are ordered most significant first.
type MatchupResult struct {
	MemberA          string   `json:"member_a"`
	MemberB          string   `json:"member_b"`
	AdvantagePercent float64  `json:"advantage_percent"`
	Notes            []string `json:"notes"`
}

// BattlePrediction is the engine output for two rosters.
type BattlePrediction struct {
	PredictedWinner  string          `json:"predicted_winner"`
	AverageAdvantage float64         `json:"average_advantage"`
	TeamA            Roster          `json:"team_a"`
	TeamB            Roster          `json:"team_b"`
	Matchups         []MatchupResult `json:"matchups"`
	RecommendedOrder []RosterMember  `json:"recommended_order"`
	Notes            []string        `json:"notes"`
}
