package service

import (
	"errors"
	"testing"
	"time"

	"advent_quiz_backend/internal/config"
	"advent_quiz_backend/internal/model"
	"advent_quiz_backend/internal/util"
)

func newPuzzleFixture(t *testing.T) (*PuzzleGameService, *fakeAnswerStore) {
	t.Helper()

	tests := newFakeTestStore(&model.Test{
		BaseModel: model.BaseModel{ID: 7},
		Number:    7,
		Kind:      model.TestKindPuzzle,
		Status:    model.TestStatusStarted,
	})
	answers := newFakeAnswerStore()
	tracker := NewTestService(tests, answers, &fakeWrongAnswerStore{})

	cfg := config.GameConfig{
		PuzzleTestNumber:     7,
		MaxPuzzleMoves:       10000,
		MaxPuzzleDurationSec: 86400,
		ClockSkewAllowance:   time.Minute,
	}
	return NewPuzzleGameService(tracker, answers, cfg), answers
}

func TestPuzzleGameLifecycle(t *testing.T) {
	svc, _ := newPuzzleFixture(t)

	started, err := svc.CheckGameStarted("u1")
	if err != nil {
		t.Fatalf("CheckGameStarted: %v", err)
	}
	if started {
		t.Fatal("game reported started before any attempt")
	}

	attempt, err := svc.StartGame("u1")
	if err != nil {
		t.Fatalf("StartGame: %v", err)
	}

	started, err = svc.CheckGameStarted("u1")
	if err != nil || !started {
		t.Fatalf("CheckGameStarted after start: started=%v err=%v", started, err)
	}

	// Restarting the board keeps the attempt alive.
	if err := svc.ResetGame("u1", 3); err != nil {
		t.Fatalf("ResetGame: %v", err)
	}
	active, err := svc.Answers.FindActive("u1", attempt.TestID)
	if err != nil || active == nil {
		t.Fatalf("attempt lost after reset: %v", err)
	}

	committed, err := svc.CommitResult("u1", 10, 42, "solved")
	if err != nil {
		t.Fatalf("CommitResult: %v", err)
	}
	if committed.AnsweringTime == nil {
		t.Fatal("commit did not stamp answering time")
	}
	if committed.MoveCount == nil || *committed.MoveCount != 10 {
		t.Fatalf("committed move count: %+v", committed.MoveCount)
	}

	// Finalized attempts are immutable.
	if _, err := svc.CommitResult("u1", 11, 43, "solved"); !errors.Is(err, util.ErrAttemptNotFound) {
		t.Fatalf("second commit: want ErrAttemptNotFound, got %v", err)
	}
	if err := svc.ResetGame("u1", 0); !errors.Is(err, util.ErrAttemptNotFound) {
		t.Fatalf("reset after finalize: want ErrAttemptNotFound, got %v", err)
	}
}

func TestCommitResultRejectsImplausibleMetrics(t *testing.T) {
	cases := []struct {
		name     string
		moves    int
		duration int
		endState string
	}{
		{"zero moves", 0, 42, "solved"},
		{"negative moves", -5, 42, "solved"},
		{"absurd moves", 20000, 42, "solved"},
		{"zero duration", 10, 0, "solved"},
		{"negative duration", 10, -1, "solved"},
		{"absurd duration", 10, 200000, "solved"},
		{"empty end state", 10, 42, ""},
		// A fresh attempt is seconds old; an hour-long game cannot have
		// happened inside it even with clock skew.
		{"duration exceeds attempt age", 10, 3600, "solved"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc, answers := newPuzzleFixture(t)

			if _, err := svc.StartGame("u1"); err != nil {
				t.Fatalf("StartGame: %v", err)
			}

			_, err := svc.CommitResult("u1", tc.moves, tc.duration, tc.endState)
			if !errors.Is(err, util.ErrInvalidGameMetrics) {
				t.Fatalf("want ErrInvalidGameMetrics, got %v", err)
			}

			// A rejected commit leaves the attempt in progress.
			active, err := answers.FindActive("u1", 7)
			if err != nil || active == nil {
				t.Fatalf("attempt not preserved after rejection: %v", err)
			}
			if active.AnsweringTime != nil {
				t.Fatal("rejected commit stamped answering time")
			}
		})
	}
}

func TestCommitResultRacedFinalize(t *testing.T) {
	svc, answers := newPuzzleFixture(t)

	attempt, err := svc.StartGame("u1")
	if err != nil {
		t.Fatalf("StartGame: %v", err)
	}

	// Another request finalizes between our active lookup and our write.
	finalize := func() {
		if ok, _ := answers.Finalize(attempt.ID, time.Now()); !ok {
			t.Fatal("seed finalize failed")
		}
	}

	active, err := answers.FindActive("u1", attempt.TestID)
	if err != nil || active == nil {
		t.Fatalf("FindActive: %v", err)
	}
	finalize()

	ok, err := answers.FinalizePuzzle(active.ID, time.Now(), 10, 42, "solved")
	if err != nil {
		t.Fatalf("FinalizePuzzle: %v", err)
	}
	if ok {
		t.Fatal("raced finalize succeeded twice")
	}
}

func TestResetGameValidatesMoveCount(t *testing.T) {
	svc, _ := newPuzzleFixture(t)

	if _, err := svc.StartGame("u1"); err != nil {
		t.Fatalf("StartGame: %v", err)
	}

	if err := svc.ResetGame("u1", -1); !errors.Is(err, util.ErrInvalidGameMetrics) {
		t.Fatalf("negative move count: want ErrInvalidGameMetrics, got %v", err)
	}
}

func TestGameWithoutPuzzleTest(t *testing.T) {
	tests := newFakeTestStore() // calendar has no puzzle slot
	answers := newFakeAnswerStore()
	tracker := NewTestService(tests, answers, &fakeWrongAnswerStore{})
	svc := NewPuzzleGameService(tracker, answers, config.GameConfig{PuzzleTestNumber: 7})

	if _, err := svc.StartGame("u1"); !errors.Is(err, util.ErrTestNotFound) {
		t.Fatalf("want ErrTestNotFound, got %v", err)
	}
	if _, err := svc.CheckGameStarted("u1"); !errors.Is(err, util.ErrTestNotFound) {
		t.Fatalf("want ErrTestNotFound, got %v", err)
	}
}
