package quiz

import (
	"sort"

	"go_5_quiz_keep/internal/model"
)

// WeakQuestionIDs は各問題の最新の回答だけを見て、不正解だった問題IDを返します。
// 過去の回答や正解の回数は考慮しません。返す順序は最新の回答が新しい順
func WeakQuestionIDs(history []model.AnswerFact) []int {
	sorted := make([]model.AnswerFact, len(history))
	copy(sorted, history)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].AnsweredAt.After(sorted[j].AnsweredAt)
	})

	latest := make(map[int]bool, len(sorted))
	ids := []int{}
	for _, h := range sorted {
		if _, seen := latest[h.QuestionID]; seen {
			continue
		}
		latest[h.QuestionID] = h.IsCorrect
		if !h.IsCorrect {
			ids = append(ids, h.QuestionID)
		}
	}
	return ids
}
