package repository

import (
	"github.com/Domenick1991/airtransport/internal/domain"
	"github.com/samber/lo"
)

type FlightRepository interface {
	List() []*domain.Flight
	NextKey() int
	Add(flight *domain.Flight)
	Remove(flight *domain.Flight) bool
	GetByNumber(number string) (*domain.Flight, bool)
	Filter(predicate func(f *domain.Flight) bool) []*domain.Flight
	MostExpensive() (*domain.Flight, bool)
	Replace(flights []*domain.Flight)
}

type MemoryFlightRepository struct {
	collection[domain.Flight]
	lastKey int
}

func NewFlightRepository() *MemoryFlightRepository {
	return &MemoryFlightRepository{}
}

// NextKey pre-increments the counter, so the first flight gets key 1.
func (r *MemoryFlightRepository) NextKey() int {
	r.lastKey++
	return r.lastKey
}

func (r *MemoryFlightRepository) GetByNumber(number string) (*domain.Flight, bool) {
	return r.Find(func(f *domain.Flight) bool { return f.FlightNumber == number })
}

// MostExpensive keeps the first flight on equal prices.
func (r *MemoryFlightRepository) MostExpensive() (*domain.Flight, bool) {
	if r.Count() == 0 {
		return nil, false
	}
	return lo.MaxBy(r.items, func(a, b *domain.Flight) bool {
		return a.Price.GreaterThan(b.Price)
	}), true
}

// Replace installs loaded flights and moves the counter past the highest key.
func (r *MemoryFlightRepository) Replace(flights []*domain.Flight) {
	r.collection.Replace(flights)
	for _, f := range flights {
		r.lastKey = max(r.lastKey, f.Key)
	}
}

var _ FlightRepository = (*MemoryFlightRepository)(nil)
