package service

import (
	"errors"
	"testing"

	"advent_quiz_backend/internal/model"
	"advent_quiz_backend/internal/util"
)

func TestStartAttemptIsIdempotent(t *testing.T) {
	tests := newFakeTestStore(&model.Test{BaseModel: model.BaseModel{ID: 1}, Number: 1, Status: model.TestStatusStarted})
	answers := newFakeAnswerStore()
	svc := NewTestService(tests, answers, &fakeWrongAnswerStore{})

	first, err := svc.StartAttempt(1, "u1")
	if err != nil {
		t.Fatalf("first StartAttempt: %v", err)
	}

	second, err := svc.StartAttempt(1, "u1")
	if err != nil {
		t.Fatalf("second StartAttempt: %v", err)
	}

	if first.ID != second.ID {
		t.Fatalf("two starts yielded different attempts: %d and %d", first.ID, second.ID)
	}
	if answers.createCalls != 1 {
		t.Fatalf("createCalls = %d, want 1", answers.createCalls)
	}
}

func TestStartAttemptUnknownTest(t *testing.T) {
	svc := NewTestService(newFakeTestStore(), newFakeAnswerStore(), &fakeWrongAnswerStore{})

	if _, err := svc.StartAttempt(42, "u1"); !errors.Is(err, util.ErrTestNotFound) {
		t.Fatalf("want ErrTestNotFound, got %v", err)
	}
}

func TestStartAttemptRecoversFromLostRace(t *testing.T) {
	tests := newFakeTestStore(&model.Test{BaseModel: model.BaseModel{ID: 1}, Number: 1})
	answers := newFakeAnswerStore()
	svc := NewTestService(tests, answers, &fakeWrongAnswerStore{})

	// Simulate another request winning the insert between our existence
	// check and our create: the row is already there.
	winner := &model.TestAnswer{TestID: 1, UserID: "u1"}
	if err := answers.CreateActive(winner); err != nil {
		t.Fatalf("seed winner: %v", err)
	}

	got, err := svc.StartAttempt(1, "u1")
	if err != nil {
		t.Fatalf("StartAttempt: %v", err)
	}
	if got.ID != winner.ID {
		t.Fatalf("loser did not adopt the winner's attempt: got %d, want %d", got.ID, winner.ID)
	}
}

func TestFinishAttemptRequiresActiveAttempt(t *testing.T) {
	tests := newFakeTestStore(&model.Test{BaseModel: model.BaseModel{ID: 1}, Number: 1})
	answers := newFakeAnswerStore()
	svc := NewTestService(tests, answers, &fakeWrongAnswerStore{})

	if _, err := svc.FinishAttempt("u1", 1); !errors.Is(err, util.ErrAttemptNotFound) {
		t.Fatalf("want ErrAttemptNotFound, got %v", err)
	}

	attempt, err := svc.StartAttempt(1, "u1")
	if err != nil {
		t.Fatalf("StartAttempt: %v", err)
	}

	finished, err := svc.FinishAttempt("u1", 1)
	if err != nil {
		t.Fatalf("FinishAttempt: %v", err)
	}
	if finished.ID != attempt.ID || finished.AnsweringTime == nil {
		t.Fatalf("finish result: %+v", finished)
	}

	if _, err := svc.FinishAttempt("u1", 1); !errors.Is(err, util.ErrAttemptNotFound) {
		t.Fatalf("second finish: want ErrAttemptNotFound, got %v", err)
	}
}

func TestLogWrongAnswerAccumulates(t *testing.T) {
	tests := newFakeTestStore(&model.Test{BaseModel: model.BaseModel{ID: 1}, Number: 1})
	wrongs := &fakeWrongAnswerStore{}
	svc := NewTestService(tests, newFakeAnswerStore(), wrongs)

	for _, guess := range []string{"alpha", "beta", "alpha"} {
		if err := svc.LogWrongAnswer("u1", 1, guess); err != nil {
			t.Fatalf("LogWrongAnswer(%q): %v", guess, err)
		}
	}

	if len(wrongs.rows) != 3 {
		t.Fatalf("logged %d wrong answers, want 3", len(wrongs.rows))
	}

	listed, err := svc.WrongAnswersForTest(1)
	if err != nil {
		t.Fatalf("WrongAnswersForTest: %v", err)
	}
	if len(listed) != 3 {
		t.Fatalf("listed %d wrong answers, want 3", len(listed))
	}

	if err := svc.LogWrongAnswer("u1", 9, "x"); !errors.Is(err, util.ErrTestNotFound) {
		t.Fatalf("unknown test: want ErrTestNotFound, got %v", err)
	}
	if _, err := svc.WrongAnswersForTest(9); !errors.Is(err, util.ErrTestNotFound) {
		t.Fatalf("unknown test listing: want ErrTestNotFound, got %v", err)
	}
}
