package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/fgclab/arena-api/internal/logic"
	"github.com/fgclab/arena-api/internal/models"
	"github.com/fgclab/arena-api/internal/store"
)

// MaxBodySize limits the size of request bodies to 1MB
const MaxBodySize = 1048576

// IngestQueue defines the interface for the match ingest worker pool
type IngestQueue interface {
	Enqueue(m models.MatchRecord) (receipt string, ok bool)
	QueueDepth() int
}

type Config struct {
	Store  *store.Store
	Queue  IngestQueue
	Redis  *redis.Client
	Logger *zap.Logger
	// Services
	Battle      logic.BattleService
	Scouting    logic.ScoutingService
	Leaderboard logic.LeaderboardService
	Coach       logic.CoachService
}

type Handler struct {
	store       *store.Store
	queue       IngestQueue
	redis       *redis.Client
	logger      *zap.SugaredLogger
	validator   *validator.Validate
	battle      logic.BattleService
	scouting    logic.ScoutingService
	leaderboard logic.LeaderboardService
	coach       logic.CoachService
}

func New(cfg Config) *Handler {
	return &Handler{
		store:       cfg.Store,
		queue:       cfg.Queue,
		redis:       cfg.Redis,
		logger:      cfg.Logger.Sugar(),
		validator:   validator.New(),
		battle:      cfg.Battle,
		scouting:    cfg.Scouting,
		leaderboard: cfg.Leaderboard,
		coach:       cfg.Coach,
	}
}
