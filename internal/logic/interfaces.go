package logic

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/fgclab/arena-api/internal/models"
)

// PlayerStore is the slice of the persistence boundary the services read
// players through.
type PlayerStore interface {
	GetPlayer(id int) (models.Player, bool)
	ListPlayers() []models.Player
}

// TeamStore is the slice of the persistence boundary used for team analysis.
type TeamStore interface {
	GetTeam(id int) (models.Team, bool)
}

// RedisClient defines the cache operations the leaderboard needs.
type RedisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Incr(ctx context.Context, key string) *redis.IntCmd
}

// BattleService runs the matchup prediction engine over two roster drafts.
type BattleService interface {
	Analyze(ctx context.Context, req models.BattleAnalyzeRequest) (*models.BattlePrediction, error)
}

// ScoutingService produces engine-derived views of stored players and teams.
type ScoutingService interface {
	GetScoutingCard(ctx context.Context, playerID int) (*models.ScoutingCard, error)
	AnalyzeTeam(ctx context.Context, teamID int) (*models.Roster, error)
}

// LeaderboardService ranks stored players by a chosen stat.
type LeaderboardService interface {
	GetLeaderboard(ctx context.Context, stat string, limit, page int) (*models.Leaderboard, error)
	Invalidate(ctx context.Context)
}

// CoachService proxies user questions to the LLM backend.
type CoachService interface {
	Chat(ctx context.Context, req models.CoachChatRequest) (*models.CoachReply, error)
	MatchupAdvice(ctx context.Context, req models.CoachMatchupRequest) (*models.CoachReply, error)
}
