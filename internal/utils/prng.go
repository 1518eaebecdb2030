// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"

	"go-path-defense/internal/defs"
)

// PRNGService — обертка над генератором случайных чисел,
// чтобы прогоны с одинаковым сидом повторялись один в один.
type PRNGService struct {
	rng  *rand.Rand
	seed int64
}

// NewPRNGService создает сервис с указанным сидом.
// Если сид равен 0, используется текущее время.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{
		rng:  rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Seed returns the seed the service was created with.
func (s *PRNGService) Seed() int64 { return s.seed }

// Intn возвращает случайное целое число в диапазоне [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Float64 возвращает случайное число в диапазоне [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// RandomPoint returns a point uniformly inside [minX,maxX) x [minY,maxY).
func (s *PRNGService) RandomPoint(minX, minY, maxX, maxY float64) (float64, float64) {
	return minX + s.rng.Float64()*(maxX-minX), minY + s.rng.Float64()*(maxY-minY)
}

// ChooseWeighted выполняет взвешенный случайный выбор башни.
// Суммирует веса, выбирает число в этом диапазоне
// и находит элемент, которому оно соответствует.
func (s *PRNGService) ChooseWeighted(entries []defs.BuildWeight) defs.TowerID {
	if len(entries) == 0 {
		return ""
	}

	totalWeight := 0
	for _, entry := range entries {
		if entry.Weight > 0 {
			totalWeight += entry.Weight
		}
	}
	if totalWeight <= 0 {
		return entries[0].TowerID
	}

	r := s.Intn(totalWeight)
	upto := 0
	for _, entry := range entries {
		if entry.Weight <= 0 {
			continue
		}
		if upto+entry.Weight > r {
			return entry.TowerID
		}
		upto += entry.Weight
	}
	return entries[len(entries)-1].TowerID
}
