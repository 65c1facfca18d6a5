package models

import "time"

// RosterMemberDraft is the unvalidated form input for one roster slot.
// Conversion to a RosterMember is the single place defaults are applied
// and derived fields are computed.
type RosterMemberDraft struct {
	Name              string `json:"name" validate:"required"`
	Character         string `json:"character" validate:"required"`
	Rank              string `json:"rank"`
	WinRate           int    `json:"win_rate" validate:"min=0,max=100"`
	PreferredPosition string `json:"preferred_position" validate:"omitempty,oneof=starter middle anchor"`
	Skills            Skills `json:"skills"`
}

// RosterDraft is one side of a battle analysis request. The 5-member cap
// mirrors the roster size the dashboard allows.
type RosterDraft struct {
	Name    string              `json:"name"`
	Members []RosterMemberDraft `json:"members" validate:"required,min=1,max=5,dive"`
}

// BattleAnalyzeRequest carries both rosters for POST /battle/analyze.
type BattleAnalyzeRequest struct {
	TeamA RosterDraft `json:"team_a" validate:"required"`
	TeamB RosterDraft `json:"team_b" validate:"required"`
}

// CreatePlayerRequest is the body for POST /players.
type CreatePlayerRequest struct {
	Name      string `json:"name" validate:"required"`
	Character string `json:"character" validate:"required"`
	Rank      string `json:"rank"`
	WinRate   int    `json:"win_rate" validate:"min=0,max=100"`
	Skills    Skills `json:"skills"`
}

// CreateTeamRequest is the body for POST /teams.
type CreateTeamRequest struct {
	Name      string `json:"name" validate:"required"`
	PlayerIDs []int  `json:"player_ids" validate:"max=5"`
}

// ReportMatchRequest is the body for POST /matches. Results are accepted
// asynchronously and recorded by the ingest worker pool.
type ReportMatchRequest struct {
	PlayerA  string    `json:"player_a" validate:"required"`
	PlayerB  string    `json:"player_b" validate:"required"`
	Winner   string    `json:"winner" validate:"required"`
	Score    string    `json:"score"`
	Notes    string    `json:"notes"`
	PlayedAt time.Time `json:"played_at"`
}

// CreateStrategyRequest is the body for POST /strategies.
type CreateStrategyRequest struct {
	Title    string   `json:"title" validate:"required"`
	Opponent string   `json:"opponent"`
	GamePlan string   `json:"game_plan" validate:"required"`
	Tags     []string `json:"tags"`
}

// ChatTurn is one prior exchange in a coach conversation.
type ChatTurn struct {
	Role    string `json:"role" validate:"required,oneof=user coach"`
	Content string `json:"content" validate:"required"`
}

// CoachChatRequest is the body for POST /coach/chat.
type CoachChatRequest struct {
	Message string     `json:"message" validate:"required"`
	History []ChatTurn `json:"history" validate:"max=20,dive"`
}

// CoachMatchupRequest asks the coach for advice on a specific matchup.
// The engine's prediction is computed server-side and attached as context.
type CoachMatchupRequest struct {
	Question string      `json:"question" validate:"required"`
	TeamA    RosterDraft `json:"team_a" validate:"required"`
	TeamB    RosterDraft `json:"team_b" validate:"required"`
}

// CoachReply is the proxied model response for both coach routes.
type CoachReply struct {
	Reply     string    `json:"reply"`
	Model     string    `json:"model"`
	CreatedAt time.Time `json:"created_at"`
}
