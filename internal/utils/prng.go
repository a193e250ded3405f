// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"
)

// PRNGService — это обертка над стандартным генератором случайных чисел Go,
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

// Float64 возвращает случайное число в диапазоне [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// Intn возвращает случайное целое в диапазоне [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Chance возвращает true с вероятностью p (0..1).
func (s *PRNGService) Chance(p float64) bool {
	return s.rng.Float64() < p
}

// Range возвращает случайное число в диапазоне [min, max).
func (s *PRNGService) Range(min, max float64) float64 {
	return min + s.rng.Float64()*(max-min)
}
