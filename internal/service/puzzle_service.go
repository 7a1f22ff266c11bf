package service

import (
	"sync/atomic"
	"time"

	"advent_quiz_backend/internal/config"
	"advent_quiz_backend/internal/model"
	"advent_quiz_backend/internal/util"
	"advent_quiz_backend/pkg/monitoring"
)

// PuzzleGameService finalizes or resets the sliding-puzzle minigame attempt.
// Client-reported metrics are bounds-checked and cross-checked against the
// attempt's wall-clock age before anything is persisted.
type PuzzleGameService struct {
	Tracker *TestService
	Answers AnswerStore

	cfg atomic.Pointer[config.GameConfig]
}

func NewPuzzleGameService(tracker *TestService, answers AnswerStore, cfg config.GameConfig) *PuzzleGameService {
	s := &PuzzleGameService{Tracker: tracker, Answers: answers}
	s.cfg.Store(&cfg)
	return s
}

// UpdateConfig swaps the game thresholds at runtime. In-flight requests keep
// the snapshot they loaded.
func (s *PuzzleGameService) UpdateConfig(cfg config.GameConfig) {
	s.cfg.Store(&cfg)
}

func (s *PuzzleGameService) gameConfig() config.GameConfig {
	return *s.cfg.Load()
}

// PuzzleTest resolves the calendar slot the minigame lives in.
func (s *PuzzleGameService) PuzzleTest() (*model.Test, error) {
	test, err := s.Tracker.TestByNumber(s.gameConfig().PuzzleTestNumber)
	if err != nil {
		return nil, err
	}
	if test == nil {
		return nil, util.ErrTestNotFound
	}
	return test, nil
}

// CheckGameStarted reports whether the user holds an in-progress game.
func (s *PuzzleGameService) CheckGameStarted(userID string) (bool, error) {
	test, err := s.PuzzleTest()
	if err != nil {
		return false, err
	}

	attempt, err := s.Answers.FindActive(userID, test.ID)
	if err != nil {
		return false, err
	}
	return attempt != nil, nil
}

// StartGame opens (or resumes) the user's puzzle attempt.
func (s *PuzzleGameService) StartGame(userID string) (*model.TestAnswer, error) {
	test, err := s.PuzzleTest()
	if err != nil {
		return nil, err
	}
	return s.Tracker.StartAttempt(test.ID, userID)
}

// CommitResult validates the reported metrics and finalizes the attempt.
// A rejected commit leaves the attempt in progress, untouched.
func (s *PuzzleGameService) CommitResult(userID string, moveCount, durationSeconds int, endState string) (*model.TestAnswer, error) {
	test, err := s.PuzzleTest()
	if err != nil {
		return nil, err
	}

	attempt, err := s.Answers.FindActive(userID, test.ID)
	if err != nil {
		return nil, err
	}
	if attempt == nil {
		return nil, util.ErrAttemptNotFound
	}

	if err := s.validateMetrics(attempt, moveCount, durationSeconds, endState); err != nil {
		monitoring.GameCommitCounter.WithLabelValues("rejected").Inc()
		return nil, err
	}

	now := time.Now()
	ok, err := s.Answers.FinalizePuzzle(attempt.ID, now, moveCount, durationSeconds, endState)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, util.ErrAttemptFinalized
	}
	monitoring.GameCommitCounter.WithLabelValues("finalized").Inc()

	attempt.Active = nil
	attempt.AnsweringTime = &now
	attempt.MoveCount = &moveCount
	attempt.GameDurationSeconds = &durationSeconds
	attempt.CompletionState = &endState
	return attempt, nil
}

// ResetGame reinitializes the in-progress move counter without finalizing,
// so a restart does not burn the user's single active-attempt slot.
func (s *PuzzleGameService) ResetGame(userID string, moveCount int) error {
	if moveCount < 0 || moveCount > s.gameConfig().MaxPuzzleMoves {
		return util.ErrInvalidGameMetrics
	}

	test, err := s.PuzzleTest()
	if err != nil {
		return err
	}

	attempt, err := s.Answers.FindActive(userID, test.ID)
	if err != nil {
		return err
	}
	if attempt == nil {
		return util.ErrAttemptNotFound
	}

	ok, err := s.Answers.ResetMetrics(attempt.ID, moveCount)
	if err != nil {
		return err
	}
	if !ok {
		return util.ErrAttemptFinalized
	}
	return nil
}

// validateMetrics rejects implausible client-reported values. There is no
// board-state verification of endState; it is stored opaque but must at least
// be present.
func (s *PuzzleGameService) validateMetrics(attempt *model.TestAnswer, moveCount, durationSeconds int, endState string) error {
	cfg := s.gameConfig()
	if moveCount < 1 || moveCount > cfg.MaxPuzzleMoves {
		return util.ErrInvalidGameMetrics
	}
	if durationSeconds < 1 || durationSeconds > cfg.MaxPuzzleDurationSec {
		return util.ErrInvalidGameMetrics
	}
	if endState == "" {
		return util.ErrInvalidGameMetrics
	}

	// The reported duration cannot exceed how long the attempt has actually
	// existed, give or take client clock skew.
	elapsed := time.Since(attempt.CreatedAt) + cfg.ClockSkewAllowance
	if time.Duration(durationSeconds)*time.Second > elapsed {
		return util.ErrInvalidGameMetrics
	}
	return nil
}
