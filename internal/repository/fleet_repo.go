package repository

import "github.com/Domenick1991/airtransport/internal/domain"

// Airplane and airport keys are count+1 at add time. Neither collection
// supports deletion, so the keys stay unique.

type AirplaneRepository interface {
	List() []*domain.Airplane
	Count() int
	NextKey() int
	Add(airplane *domain.Airplane)
	GetByKey(key int) (*domain.Airplane, bool)
	Replace(airplanes []*domain.Airplane)
}

type MemoryAirplaneRepository struct {
	collection[domain.Airplane]
}

func NewAirplaneRepository() *MemoryAirplaneRepository {
	return &MemoryAirplaneRepository{}
}

func (r *MemoryAirplaneRepository) NextKey() int {
	return r.Count() + 1
}

func (r *MemoryAirplaneRepository) GetByKey(key int) (*domain.Airplane, bool) {
	return r.Find(func(a *domain.Airplane) bool { return a.Key == key })
}

type AirportRepository interface {
	List() []*domain.Airport
	Count() int
	NextKey() int
	Add(airport *domain.Airport)
	GetByKey(key int) (*domain.Airport, bool)
	Replace(airports []*domain.Airport)
}

type MemoryAirportRepository struct {
	collection[domain.Airport]
}

func NewAirportRepository() *MemoryAirportRepository {
	return &MemoryAirportRepository{}
}

func (r *MemoryAirportRepository) NextKey() int {
	return r.Count() + 1
}

func (r *MemoryAirportRepository) GetByKey(key int) (*domain.Airport, bool) {
	return r.Find(func(a *domain.Airport) bool { return a.Key == key })
}

var (
	_ AirplaneRepository = (*MemoryAirplaneRepository)(nil)
	_ AirportRepository  = (*MemoryAirportRepository)(nil)
)
