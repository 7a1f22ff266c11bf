package service

import "time"

// AnswerStatsService aggregates correct and wrong answer counts over
// caller-supplied windows. Read-only; it never touches attempt state.
type AnswerStatsService struct {
	Answers      AnswerStore
	WrongAnswers WrongAnswerStore
}

func NewAnswerStatsService(answers AnswerStore, wrongAnswers WrongAnswerStore) *AnswerStatsService {
	return &AnswerStatsService{Answers: answers, WrongAnswers: wrongAnswers}
}

// CorrectAnswerCount counts the distinct tests the user has solved.
func (s *AnswerStatsService) CorrectAnswerCount(userID string) (int, error) {
	return s.Answers.CorrectAnswerCount(userID)
}

// CorrectAnswersPerUser maps each user to their finalized-answer count within
// [from, to). An equal from and to is an empty window and yields an empty map.
func (s *AnswerStatsService) CorrectAnswersPerUser(from, to time.Time) (map[string]int, error) {
	return s.Answers.CorrectAnswersPerUser(from, to)
}

// WrongAnswersPerUser maps each user to their wrong-guess count within
// [from, to), same half-open semantics as the correct-answer window.
func (s *AnswerStatsService) WrongAnswersPerUser(from, to time.Time) (map[string]int, error) {
	return s.WrongAnswers.WrongAnswersPerUser(from, to)
}
