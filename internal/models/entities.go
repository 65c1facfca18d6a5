package models

import "time"

// Player is a stored competitor profile. Derived fields follow the same
// recompute-on-write rule as RosterMember.
type Player struct {
	ID            int       `json:"id"`
	Name          string    `json:"name"`
	Character     string    `json:"character"`
	Rank          string    `json:"rank"`
	WinRate       int       `json:"win_rate"`
	Skills        Skills    `json:"skills"`
	StrengthScore int       `json:"strength_score"`
	Style         Archetype `json:"style"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Team is a named group of stored players.
type Team struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	PlayerIDs []int     `json:"player_ids"`
	CreatedAt time.Time `json:"created_at"`
}

// MatchRecord is a reported match result, written by the ingest pipeline.
type MatchRecord struct {
	ID        int       `json:"id"`
	ReceiptID string    `json:"receipt_id"`
	PlayerA   string    `json:"player_a"`
	PlayerB   string    `json:"player_b"`
	Winner    string    `json:"winner"`
	Score     string    `json:"score,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	PlayedAt  time.Time `json:"played_at"`
}

// Strategy is a saved game plan against a specific opponent or character.
type Strategy struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	Opponent  string    `json:"opponent,omitempty"`
	GamePlan  string    `json:"game_plan"`
	Tags      []string  `json:"tags,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
