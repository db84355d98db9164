package storage

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Domenick1991/airtransport/internal/domain"
	"github.com/Domenick1991/airtransport/internal/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockMirror struct {
	mock.Mock
}

func (m *MockMirror) SetSnapshot(ctx context.Context, name string, payload []byte) error {
	args := m.Called(ctx, name, payload)
	return args.Error(0)
}

func seededStore() *repository.Store {
	store := repository.NewStore()
	svo := &domain.Airport{Key: 1, Code: "SVO", Name: "Sheremetyevo", City: "Moscow", Country: "Russia"}
	led := &domain.Airport{Key: 2, Code: "LED", Name: "Pulkovo", City: "Saint Petersburg", Country: "Russia"}
	kzn := &domain.Airport{Key: 3, Code: "KZN", Name: "Kazan", City: "Kazan", Country: "Russia"}
	plane := &domain.Airplane{Key: 1, Name: "Boeing 700", Model: "737", RegistrationNumber: "RA-73001", Category: "narrow", Capacity: 150}
	store.Airports.Add(svo)
	store.Airports.Add(led)
	store.Airports.Add(kzn)
	store.Airplanes.Add(plane)

	first := &domain.Flight{
		Key:           store.Flights.NextKey(),
		FlightNumber:  "SU100",
		Departure:     svo,
		Destination:   led,
		DepartureTime: time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC),
		ArrivalTime:   time.Date(2025, 5, 1, 11, 30, 0, 0, time.UTC),
		Airplane:      plane,
		Price:         decimal.RequireFromString("4500.50"),
		Landings:      []*domain.Airport{kzn},
	}
	first.AddPassenger(&domain.Passenger{FullName: "Ivan Petrov", PassportNumber: "4500 123456", ContactInfo: "+7 900"})
	second := &domain.Flight{
		Key:          store.Flights.NextKey(),
		FlightNumber: "SU200",
		Departure:    led,
		Destination:  svo,
		Airplane:     plane,
		Price:        decimal.NewFromInt(3000),
	}
	store.Flights.Add(first)
	store.Flights.Add(second)
	store.Tickets.Add(&domain.Ticket{
		Key:                store.Tickets.NextKey(),
		CashRegisterNumber: 3,
		FlightNumber:       "SU100",
		SaleDate:           time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
		SaleTime:           time.Date(2025, 4, 1, 9, 15, 0, 0, time.UTC),
	})
	return store
}

func TestJSONStore_RoundTrip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "Data")
	src := seededStore()

	require.NoError(t, NewJSONStore(dir, src).SaveAll(context.Background()))

	for _, name := range []string{FlightsFile, AirplanesFile, AirportsFile, TicketsFile} {
		assert.FileExists(t, filepath.Join(dir, name))
	}

	dst := repository.NewStore()
	NewJSONStore(dir, dst).LoadAll()

	require.Len(t, dst.Flights.List(), 2)
	require.Len(t, dst.Airports.List(), 3)
	require.Len(t, dst.Airplanes.List(), 1)
	require.Len(t, dst.Tickets.List(), 1)

	assert.Equal(t, src.Airports.List(), dst.Airports.List())
	assert.Equal(t, src.Airplanes.List(), dst.Airplanes.List())
	assert.Equal(t, src.Tickets.List(), dst.Tickets.List())

	for i, want := range src.Flights.List() {
		got := dst.Flights.List()[i]
		assert.Equal(t, want.Key, got.Key)
		assert.Equal(t, want.FlightNumber, got.FlightNumber)
		assert.Equal(t, want.Departure, got.Departure)
		assert.Equal(t, want.Destination, got.Destination)
		assert.True(t, want.DepartureTime.Equal(got.DepartureTime))
		assert.True(t, want.ArrivalTime.Equal(got.ArrivalTime))
		assert.Equal(t, want.Airplane, got.Airplane)
		assert.Equal(t, want.Passengers, got.Passengers)
		assert.True(t, want.Price.Equal(got.Price))
		assert.Equal(t, len(want.Landings), len(got.Landings))
	}

	// references are shared with the loaded collections again
	loaded := dst.Flights.List()[0]
	assert.Same(t, dst.Airports.List()[0], loaded.Departure)
	assert.Same(t, dst.Airports.List()[2], loaded.Landings[0])
	assert.Same(t, dst.Airplanes.List()[0], loaded.Airplane)
	assert.Same(t, dst.Flights.List()[1].Airplane, loaded.Airplane)

	// counters continue after the loaded keys
	assert.Equal(t, 3, dst.Flights.NextKey())
	assert.Equal(t, 2, dst.Tickets.NextKey())
}

func TestJSONStore_LoadAll_MissingDir(t *testing.T) {
	store := repository.NewStore()

	NewJSONStore(filepath.Join(t.TempDir(), "nope"), store).LoadAll()

	assert.Empty(t, store.Flights.List())
	assert.Empty(t, store.Airports.List())
	assert.Equal(t, 1, store.Flights.NextKey())
}

func TestJSONStore_LoadAll_CorruptFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FlightsFile), []byte("{not json"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, AirportsFile), []byte(`[{"key":1,"code":"SVO"}]`), 0o644))

	var logs bytes.Buffer
	store := repository.NewStore()
	NewJSONStore(dir, store, WithLogger(slog.New(slog.NewTextHandler(&logs, nil)))).LoadAll()

	assert.Empty(t, store.Flights.List())
	assert.Len(t, store.Airports.List(), 1)
	assert.Contains(t, logs.String(), FlightsFile)
}

func TestJSONStore_SaveAll_EmptyCollections(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, NewJSONStore(dir, repository.NewStore()).SaveAll(context.Background()))

	data, err := os.ReadFile(filepath.Join(dir, TicketsFile))
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestJSONStore_SaveAll_Mirror(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()
	mirror := &MockMirror{}
	mirror.On("SetSnapshot", ctx, FlightsFile, mock.Anything).Return(errors.New("redis down")).Once()
	mirror.On("SetSnapshot", ctx, AirplanesFile, mock.Anything).Return(nil).Once()
	mirror.On("SetSnapshot", ctx, AirportsFile, mock.Anything).Return(nil).Once()
	mirror.On("SetSnapshot", ctx, TicketsFile, mock.Anything).Return(nil).Once()

	var logs bytes.Buffer
	s := NewJSONStore(dir, seededStore(), WithMirror(mirror), WithLogger(slog.New(slog.NewTextHandler(&logs, nil))))

	assert.NoError(t, s.SaveAll(ctx))
	assert.Contains(t, logs.String(), "failed to mirror snapshot")
	mirror.AssertExpectations(t)
}

func TestJSONStore_Persist_SwallowsError(t *testing.T) {
	base := t.TempDir()
	blocker := filepath.Join(base, "Data")
	require.NoError(t, os.WriteFile(blocker, []byte("file, not dir"), 0o644))

	var logs bytes.Buffer
	store := seededStore()
	s := NewJSONStore(blocker, store, WithLogger(slog.New(slog.NewTextHandler(&logs, nil))))

	assert.Error(t, s.SaveAll(context.Background()))
	assert.NotPanics(t, func() { s.Persist(context.Background()) })
	assert.Contains(t, logs.String(), "failed to save data")
	assert.Len(t, store.Flights.List(), 2)
}
