package service

import (
	"time"

	"advent_quiz_backend/internal/model"
	"advent_quiz_backend/internal/util"
)

// In-memory stand-ins for the store interfaces. They mirror the invariants
// the gorm repositories enforce: one active attempt per (user, test) and
// conditional writes gated on the active flag.

type fakeTestStore struct {
	tests map[uint]*model.Test
}

func newFakeTestStore(tests ...*model.Test) *fakeTestStore {
	s := &fakeTestStore{tests: make(map[uint]*model.Test)}
	for _, t := range tests {
		s.tests[t.ID] = t
	}
	return s
}

func (s *fakeTestStore) FindCurrent() (*model.Test, error) {
	for _, t := range s.tests {
		if t.Status == model.TestStatusStarted {
			return t, nil
		}
	}
	return nil, nil
}

func (s *fakeTestStore) FindByNumber(number int) (*model.Test, error) {
	for _, t := range s.tests {
		if t.Number == number {
			return t, nil
		}
	}
	return nil, nil
}

func (s *fakeTestStore) FindByID(id uint) (*model.Test, error) {
	return s.tests[id], nil
}

func (s *fakeTestStore) All() ([]model.Test, error) {
	out := make([]model.Test, 0, len(s.tests))
	for _, t := range s.tests {
		out = append(out, *t)
	}
	return out, nil
}

type attemptKey struct {
	userID string
	testID uint
}

type fakeAnswerStore struct {
	nextID   uint
	answers  map[uint]*model.TestAnswer
	byActive map[attemptKey]uint

	createCalls int
}

func newFakeAnswerStore() *fakeAnswerStore {
	return &fakeAnswerStore{
		answers:  make(map[uint]*model.TestAnswer),
		byActive: make(map[attemptKey]uint),
	}
}

func (s *fakeAnswerStore) FindActive(userID string, testID uint) (*model.TestAnswer, error) {
	id, ok := s.byActive[attemptKey{userID, testID}]
	if !ok {
		return nil, nil
	}
	copied := *s.answers[id]
	return &copied, nil
}

func (s *fakeAnswerStore) CreateActive(a *model.TestAnswer) error {
	s.createCalls++
	key := attemptKey{a.UserID, a.TestID}
	if _, exists := s.byActive[key]; exists {
		return util.ErrAttemptExists
	}

	s.nextID++
	a.ID = s.nextID
	a.CreatedAt = time.Now()
	active := true
	a.Active = &active
	a.AnsweringTime = nil

	stored := *a
	s.answers[a.ID] = &stored
	s.byActive[key] = a.ID
	return nil
}

func (s *fakeAnswerStore) Finalize(id uint, at time.Time) (bool, error) {
	a, ok := s.answers[id]
	if !ok || !a.IsActive() {
		return false, nil
	}
	a.Active = nil
	a.AnsweringTime = &at
	delete(s.byActive, attemptKey{a.UserID, a.TestID})
	return true, nil
}

func (s *fakeAnswerStore) FinalizePuzzle(id uint, at time.Time, moveCount, durationSeconds int, completionState string) (bool, error) {
	a, ok := s.answers[id]
	if !ok || !a.IsActive() {
		return false, nil
	}
	a.Active = nil
	a.AnsweringTime = &at
	a.MoveCount = &moveCount
	a.GameDurationSeconds = &durationSeconds
	a.CompletionState = &completionState
	delete(s.byActive, attemptKey{a.UserID, a.TestID})
	return true, nil
}

func (s *fakeAnswerStore) ResetMetrics(id uint, moveCount int) (bool, error) {
	a, ok := s.answers[id]
	if !ok || !a.IsActive() {
		return false, nil
	}
	a.MoveCount = &moveCount
	a.GameDurationSeconds = nil
	a.CompletionState = nil
	return true, nil
}

func (s *fakeAnswerStore) CorrectAnswerCount(userID string) (int, error) {
	seen := make(map[uint]bool)
	for _, a := range s.answers {
		if a.UserID == userID && a.AnsweringTime != nil {
			seen[a.TestID] = true
		}
	}
	return len(seen), nil
}

func (s *fakeAnswerStore) CorrectAnswersPerUser(from, to time.Time) (map[string]int, error) {
	counts := make(map[string]int)
	for _, a := range s.answers {
		if a.AnsweringTime == nil {
			continue
		}
		at := *a.AnsweringTime
		if !at.Before(from) && at.Before(to) {
			counts[a.UserID]++
		}
	}
	return counts, nil
}

type fakeWrongAnswerStore struct {
	rows []model.TestWrongAnswer
}

func (s *fakeWrongAnswerStore) Create(w *model.TestWrongAnswer) error {
	s.rows = append(s.rows, *w)
	return nil
}

func (s *fakeWrongAnswerStore) ListByTest(testID uint) ([]model.TestWrongAnswer, error) {
	var out []model.TestWrongAnswer
	for _, w := range s.rows {
		if w.TestID == testID {
			out = append(out, w)
		}
	}
	return out, nil
}

func (s *fakeWrongAnswerStore) WrongAnswersPerUser(from, to time.Time) (map[string]int, error) {
	counts := make(map[string]int)
	for _, w := range s.rows {
		if !w.Time.Before(from) && w.Time.Before(to) {
			counts[w.UserID]++
		}
	}
	return counts, nil
}

type fakeResultStore struct {
	byUser map[string]*model.Result
	weeks  map[int][]model.Result

	weekCalls int
}

func newFakeResultStore() *fakeResultStore {
	return &fakeResultStore{
		byUser: make(map[string]*model.Result),
		weeks:  make(map[int][]model.Result),
	}
}

func (s *fakeResultStore) FindByUserID(userID string) (*model.Result, error) {
	return s.byUser[userID], nil
}

func (s *fakeResultStore) ResultsForWeek(week int) ([]model.Result, error) {
	s.weekCalls++
	return s.weeks[week], nil
}
