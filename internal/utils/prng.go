// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"
)

// PRNGService — обертка над стандартным генератором случайных чисел Go,
// которая позволяет использовать предсказуемый (seeded) рандом во всей игре.
type PRNGService struct {
	rng *rand.Rand
}

// NewPRNGService создает новый экземпляр сервиса с указанным сидом.
// Если сид равен 0, используется текущее время.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	source := rand.NewSource(seed)
	return &PRNGService{
		rng: rand.New(source),
	}
}

// Intn возвращает случайное целое число в диапазоне [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Choose выбирает случайную строку. Для пустого списка возвращает "".
func (s *PRNGService) Choose(items []string) string {
	if len(items) == 0 {
		return ""
	}
	return items[s.Intn(len(items))]
}
