package logic

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/fgclab/arena-api/internal/models"
)

const leaderboardVersionKey = "arena:leaderboard:ver"

type leaderboardService struct {
	players PlayerStore
	cache   RedisClient
	ttl     time.Duration
	logger  *zap.SugaredLogger
}

// NewLeaderboardService builds the ranking service. cache may be nil, in
// which case every request recomputes from the store.
func NewLeaderboardService(players PlayerStore, cache RedisClient, ttl time.Duration, logger *zap.Logger) LeaderboardService {
	return &leaderboardService{
		players: players,
		cache:   cache,
		ttl:     ttl,
		logger:  logger.Sugar(),
	}
}

// statValue maps a stat name to the ranked value. Unknown stats fall back to
// the strength score.
func statValue(stat string, p models.Player) float64 {
	switch stat {
	case "win_rate":
		return float64(p.WinRate)
	case "offense":
		return float64(p.Skills.Offense)
	case "defense":
		return float64(p.Skills.Defense)
	case "adaptation":
		return float64(p.Skills.Adaptation)
	case "execution":
		return float64(p.Skills.Execution)
	case "footsies":
		return float64(p.Skills.Footsies)
	default:
		return float64(p.StrengthScore)
	}
}

func normalizeStat(stat string) string {
	switch stat {
	case "strength", "win_rate", "offense", "defense", "adaptation", "execution", "footsies":
		return stat
	default:
		return "strength"
	}
}

func (s *leaderboardService) GetLeaderboard(ctx context.Context, stat string, limit, page int) (*models.Leaderboard, error) {
	stat = normalizeStat(stat)
	if limit <= 0 || limit > 100 {
		limit = 25
	}
	if page <= 0 {
		page = 1
	}

	key := s.cacheKey(ctx, stat, limit, page)
	if s.cache != nil {
		if raw, err := s.cache.Get(ctx, key).Result(); err == nil {
			var cached models.Leaderboard
			if err := json.Unmarshal([]byte(raw), &cached); err == nil {
				return &cached, nil
			}
		} else if err != redis.Nil {
			s.logger.Warnw("Leaderboard cache read failed", "error", err, "key", key)
		}
	}

	players := s.players.ListPlayers()
	sort.SliceStable(players, func(i, j int) bool {
		vi, vj := statValue(stat, players[i]), statValue(stat, players[j])
		if vi != vj {
			return vi > vj
		}
		return players[i].ID < players[j].ID
	})

	offset := (page - 1) * limit
	board := &models.Leaderboard{
		Stat:    stat,
		Page:    page,
		Total:   len(players),
		Players: make([]models.LeaderboardEntry, 0, limit),
	}
	for i := offset; i < len(players) && i < offset+limit; i++ {
		p := players[i]
		board.Players = append(board.Players, models.LeaderboardEntry{
			Rank:          i + 1,
			PlayerID:      p.ID,
			PlayerName:    p.Name,
			Character:     p.Character,
			Style:         p.Style,
			Value:         statValue(stat, p),
			StrengthScore: p.StrengthScore,
			WinRate:       p.WinRate,
			Skills:        p.Skills,
		})
	}

	if s.cache != nil {
		if raw, err := json.Marshal(board); err == nil {
			if err := s.cache.Set(ctx, key, raw, s.ttl).Err(); err != nil {
				s.logger.Warnw("Leaderboard cache write failed", "error", err, "key", key)
			}
		}
	}

	return board, nil
}

// Invalidate bumps the cache version so every cached page becomes stale.
// Called by the ingest pipeline after recording results.
func (s *leaderboardService) Invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Incr(ctx, leaderboardVersionKey).Err(); err != nil {
		s.logger.Warnw("Leaderboard cache invalidation failed", "error", err)
	}
}

func (s *leaderboardService) cacheKey(ctx context.Context, stat string, limit, page int) string {
	var version int64
	if s.cache != nil {
		if v, err := s.cache.Get(ctx, leaderboardVersionKey).Int64(); err == nil {
			version = v
		}
	}
	return fmt.Sprintf("arena:leaderboard:v%d:%s:%d:%d", version, stat, limit, page)
}
