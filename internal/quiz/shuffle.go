package quiz

import (
	"math/rand/v2"
)

// Shuffler は出題順をランダムにします。テストではシードを固定できます
type Shuffler struct {
	rnd *rand.Rand
}

// NewShuffler は rnd が nil の場合グローバルな乱数源を使います
func NewShuffler(rnd *rand.Rand) *Shuffler {
	return &Shuffler{rnd: rnd}
}

func (s *Shuffler) intN(n int) int {
	if s == nil || s.rnd == nil {
		return rand.IntN(n)
	}
	return s.rnd.IntN(n)
}

// Pick は items のコピーを Fisher-Yates でシャッフルし、先頭 limit 件を返します。元のスライスは変更しません
func Pick[T any](s *Shuffler, items []T, limit int) []T {
	out := make([]T, len(items))
	copy(out, items)
	for i := len(out) - 1; i > 0; i-- {
		j := s.intN(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	if limit >= 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
