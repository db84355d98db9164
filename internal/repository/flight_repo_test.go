package repository

import (
	"testing"

	"github.com/Domenick1991/airtransport/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryFlightRepository_NextKey(t *testing.T) {
	repo := NewFlightRepository()

	assert.Equal(t, 1, repo.NextKey())
	assert.Equal(t, 2, repo.NextKey())
	assert.Equal(t, 3, repo.NextKey())
}

func TestMemoryFlightRepository_AddRemove(t *testing.T) {
	repo := NewFlightRepository()
	first := &domain.Flight{Key: repo.NextKey(), FlightNumber: "SU100"}
	second := &domain.Flight{Key: repo.NextKey(), FlightNumber: "SU200"}
	repo.Add(first)
	repo.Add(second)

	got, ok := repo.GetByNumber("SU200")
	require.True(t, ok)
	assert.Same(t, second, got)

	assert.True(t, repo.Remove(second))
	assert.False(t, repo.Remove(second))

	_, ok = repo.GetByNumber("SU200")
	assert.False(t, ok)
	assert.Equal(t, []*domain.Flight{first}, repo.List())

	// removal does not rewind the counter
	assert.Equal(t, 3, repo.NextKey())
}

func TestMemoryFlightRepository_GetByNumber_ExactMatch(t *testing.T) {
	repo := NewFlightRepository()
	repo.Add(&domain.Flight{FlightNumber: "SU100"})

	_, ok := repo.GetByNumber("su100")
	assert.False(t, ok)
	_, ok = repo.GetByNumber("SU10")
	assert.False(t, ok)
}

func TestMemoryFlightRepository_MostExpensive(t *testing.T) {
	repo := NewFlightRepository()

	_, ok := repo.MostExpensive()
	assert.False(t, ok)

	cheap := &domain.Flight{FlightNumber: "A", Price: decimal.NewFromInt(100)}
	firstTop := &domain.Flight{FlightNumber: "B", Price: decimal.NewFromInt(500)}
	secondTop := &domain.Flight{FlightNumber: "C", Price: decimal.RequireFromString("500.00")}
	repo.Add(cheap)
	repo.Add(firstTop)
	repo.Add(secondTop)

	got, ok := repo.MostExpensive()
	require.True(t, ok)
	assert.Same(t, firstTop, got)
}

func TestMemoryFlightRepository_Filter(t *testing.T) {
	repo := NewFlightRepository()
	direct := &domain.Flight{FlightNumber: "A"}
	withStop := &domain.Flight{FlightNumber: "B", Landings: []*domain.Airport{{Code: "KZN"}}}
	repo.Add(direct)
	repo.Add(withStop)

	assert.Equal(t, []*domain.Flight{direct}, repo.Filter((*domain.Flight).NonStop))
	assert.Empty(t, repo.Filter(func(f *domain.Flight) bool { return f.FlightNumber == "Z" }))
}

func TestMemoryFlightRepository_Replace_SeedsCounter(t *testing.T) {
	repo := NewFlightRepository()
	repo.Replace([]*domain.Flight{{Key: 4}, {Key: 9}, {Key: 2}})

	assert.Len(t, repo.List(), 3)
	assert.Equal(t, 10, repo.NextKey())
}
