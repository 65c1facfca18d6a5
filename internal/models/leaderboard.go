package models

// LeaderboardEntry is one ranked row. Value carries the stat the board is
// sorted by so the grid can render a dynamic column.
type LeaderboardEntry struct {
	Rank          int       `json:"rank"`
	PlayerID      int       `json:"player_id"`
	PlayerName    string    `json:"player_name"`
	Character     string    `json:"character"`
	Style         Archetype `json:"style"`
	Value         float64   `json:"value"`
	StrengthScore int       `json:"strength_score"`
	WinRate       int       `json:"win_rate"`
	Skills        Skills    `json:"skills"`
}

// Leaderboard is a page of ranked players for one stat.
type Leaderboard struct {
	Stat    string             `json:"stat"`
	Page    int                `json:"page"`
	Total   int                `json:"total"`
	Players []LeaderboardEntry `json:"players"`
}
