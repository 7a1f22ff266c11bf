package service

import (
	"errors"
	"time"

	"advent_quiz_backend/internal/model"
	"advent_quiz_backend/internal/util"
)

// TestService owns the attempt lifecycle for every test: not-started, one
// active (empty) answer, finalized. The single-active-attempt invariant per
// (user, test) is enforced here together with the store's unique index.
type TestService struct {
	Tests        TestStore
	Answers      AnswerStore
	WrongAnswers WrongAnswerStore
}

func NewTestService(tests TestStore, answers AnswerStore, wrongAnswers WrongAnswerStore) *TestService {
	return &TestService{Tests: tests, Answers: answers, WrongAnswers: wrongAnswers}
}

func (s *TestService) CurrentTest() (*model.Test, error) {
	return s.Tests.FindCurrent()
}

func (s *TestService) TestByNumber(number int) (*model.Test, error) {
	return s.Tests.FindByNumber(number)
}

func (s *TestService) AllTests() ([]model.Test, error) {
	return s.Tests.All()
}

func (s *TestService) ActiveAttempt(userID string, testID uint) (*model.TestAnswer, error) {
	return s.Answers.FindActive(userID, testID)
}

// StartAttempt is idempotent: when the user already holds an active attempt
// for the test it is returned as-is, otherwise an empty answer is created.
// Two concurrent starts cannot both insert; the loser of the race reads the
// winner's row back.
func (s *TestService) StartAttempt(testID uint, userID string) (*model.TestAnswer, error) {
	test, err := s.Tests.FindByID(testID)
	if err != nil {
		return nil, err
	}
	if test == nil {
		return nil, util.ErrTestNotFound
	}

	existing, err := s.Answers.FindActive(userID, testID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	attempt := &model.TestAnswer{
		TestID: testID,
		UserID: userID,
	}
	err = s.Answers.CreateActive(attempt)
	if errors.Is(err, util.ErrAttemptExists) {
		return s.Answers.FindActive(userID, testID)
	}
	if err != nil {
		return nil, err
	}
	return attempt, nil
}

// FinishAttempt finalizes the user's active attempt for the test. The quiz
// checking layer calls this once it has judged the submission correct;
// finalized answers are immutable afterwards.
func (s *TestService) FinishAttempt(userID string, testID uint) (*model.TestAnswer, error) {
	attempt, err := s.Answers.FindActive(userID, testID)
	if err != nil {
		return nil, err
	}
	if attempt == nil {
		return nil, util.ErrAttemptNotFound
	}

	now := time.Now()
	ok, err := s.Answers.Finalize(attempt.ID, now)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, util.ErrAttemptFinalized
	}

	attempt.Active = nil
	attempt.AnsweringTime = &now
	return attempt, nil
}

// LogWrongAnswer appends one incorrect-guess record. Unlike answers, any
// number of these may pile up per (user, test).
func (s *TestService) LogWrongAnswer(userID string, testID uint, answer string) error {
	test, err := s.Tests.FindByID(testID)
	if err != nil {
		return err
	}
	if test == nil {
		return util.ErrTestNotFound
	}

	return s.WrongAnswers.Create(&model.TestWrongAnswer{
		TestID: testID,
		UserID: userID,
		Time:   time.Now(),
		Answer: answer,
	})
}

// WrongAnswersForTest lists every logged wrong guess for a test, oldest first.
func (s *TestService) WrongAnswersForTest(testID uint) ([]model.TestWrongAnswer, error) {
	test, err := s.Tests.FindByID(testID)
	if err != nil {
		return nil, err
	}
	if test == nil {
		return nil, util.ErrTestNotFound
	}
	return s.WrongAnswers.ListByTest(testID)
}
