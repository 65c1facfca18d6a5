package logic

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go.uber.org/zap"
	genai "google.golang.org/genai"

	"github.com/fgclab/arena-api/internal/models"
)

var (
	// ErrCoachDisabled is returned when no LLM API key is configured.
	ErrCoachDisabled = errors.New("coach assistant is not configured")

	// ErrEmptyCompletion is returned when the model responds without content.
	ErrEmptyCompletion = errors.New("empty completion from model")
)

const coachMaxAttempts = 3

const chatSystemPrompt = `You are an experienced fighting-game coach for a competitive team.
Answer questions about matchups, training plans and tournament preparation.
Be concrete and concise; when you reference a character, mention its archetype.`

const matchupSystemPrompt = `You are an experienced fighting-game coach. You are given the
output of a matchup analysis engine as JSON: pairwise advantages, team strengths and
weaknesses, and a recommended play order. Ground your advice in those numbers and answer
the user's question about the matchup.`

// coachService proxies coach questions to the Gemini API. The service retries
// transient failures with backoff; the prediction engine itself never retries.
type coachService struct {
	cli    *genai.Client
	model  string
	battle BattleService
	logger *zap.SugaredLogger
}

// NewCoachService creates the LLM-backed coach. With an empty apiKey the
// service is disabled and every call returns ErrCoachDisabled, so the rest of
// the API keeps working without credentials.
func NewCoachService(ctx context.Context, apiKey, model string, battle BattleService, logger *zap.Logger) (CoachService, error) {
	svc := &coachService{
		model:  model,
		battle: battle,
		logger: logger.Sugar(),
	}
	if apiKey == "" {
		return svc, nil
	}

	cli, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}
	svc.cli = cli
	return svc, nil
}

func (s *coachService) Chat(ctx context.Context, req models.CoachChatRequest) (*models.CoachReply, error) {
	contents := make([]*genai.Content, 0, len(req.History)+1)
	for _, turn := range req.History {
		role := "user"
		if turn.Role == "coach" {
			role = "model"
		}
		contents = append(contents, &genai.Content{
			Role:  role,
			Parts: []*genai.Part{{Text: turn.Content}},
		})
	}
	contents = append(contents, &genai.Content{
		Role:  "user",
		Parts: []*genai.Part{{Text: req.Message}},
	})

	return s.generate(ctx, chatSystemPrompt, contents)
}

// MatchupAdvice runs the prediction engine first and hands the result to the
// model as context, so the reply is grounded in the same numbers the
// dashboard shows.
func (s *coachService) MatchupAdvice(ctx context.Context, req models.CoachMatchupRequest) (*models.CoachReply, error) {
	pred, err := s.battle.Analyze(ctx, models.BattleAnalyzeRequest{TeamA: req.TeamA, TeamB: req.TeamB})
	if err != nil {
		return nil, err
	}

	analysis, _ := json.MarshalIndent(pred, "", "  ")
	prompt := req.Question + "\n\n[MATCHUP ANALYSIS]\n" + string(analysis)
	contents := []*genai.Content{{
		Role:  "user",
		Parts: []*genai.Part{{Text: prompt}},
	}}

	return s.generate(ctx, matchupSystemPrompt, contents)
}

func (s *coachService) generate(ctx context.Context, system string, contents []*genai.Content) (*models.CoachReply, error) {
	if s.cli == nil {
		return nil, ErrCoachDisabled
	}

	cfg := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: system}}},
	}

	var lastErr error
	for attempt := 0; attempt < coachMaxAttempts; attempt++ {
		resp, err := s.cli.Models.GenerateContent(ctx, s.model, contents, cfg)
		switch {
		case err != nil:
			lastErr = err
			s.logger.Warnw("Coach completion failed", "attempt", attempt, "error", err)
		case len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0:
			lastErr = ErrEmptyCompletion
		default:
			return &models.CoachReply{
				Reply:     resp.Candidates[0].Content.Parts[0].Text,
				Model:     s.model,
				CreatedAt: time.Now().UTC(),
			}, nil
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(time.Duration(300*(1<<attempt)) * time.Millisecond):
		}
	}
	return nil, lastErr
}
