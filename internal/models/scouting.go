package models

// ScoutingCard is the engine-derived view of a stored player used by the
// scouting dashboard.
type ScoutingCard struct {
	PlayerID      int       `json:"player_id"`
	Name          string    `json:"name"`
	Character     string    `json:"character"`
	Style         Archetype `json:"style"`
	Rank          string    `json:"rank"`
	WinRate       int       `json:"win_rate"`
	StrengthScore int       `json:"strength_score"`
	Skills        Skills    `json:"skills"`
	TopSkill      string    `json:"top_skill"`
	Summary       []string  `json:"summary"`
}
