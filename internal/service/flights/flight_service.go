package flights

import (
	"context"
	"time"

	"github.com/Domenick1991/airtransport/internal/domain"
	"github.com/Domenick1991/airtransport/internal/repository"
	"github.com/shopspring/decimal"
)

// replaceableShare is the free-seat share above which a smaller airplane
// would do.
const replaceableShare = 0.3

type FlightUseCase interface {
	List() []*domain.Flight
	GetByNumber(number string) (*domain.Flight, error)
	Add(ctx context.Context, input AddFlightInput) *domain.Flight
	Edit(ctx context.Context, flight *domain.Flight, edit Edit)
	Remove(ctx context.Context, number string) error
	NonStop() []*domain.Flight
	ByAirplane(airplane *domain.Airplane) []*domain.Flight
	MostExpensive() (*domain.Flight, error)
	Replaceable() []*domain.Flight
}

type Committer interface {
	Commit(ctx context.Context, event domain.Event) domain.Event
}

type AddFlightInput struct {
	FlightNumber  string
	Departure     *domain.Airport
	Destination   *domain.Airport
	DepartureTime time.Time
	ArrivalTime   time.Time
	Airplane      *domain.Airplane
	Price         decimal.Decimal
	Landings      []*domain.Airport
}

type FlightService struct {
	repo      repository.FlightRepository
	committer Committer
}

func NewFlightService(repo repository.FlightRepository, committer Committer) *FlightService {
	return &FlightService{repo: repo, committer: committer}
}

func (s *FlightService) List() []*domain.Flight {
	return s.repo.List()
}

func (s *FlightService) GetByNumber(number string) (*domain.Flight, error) {
	flight, ok := s.repo.GetByNumber(number)
	if !ok {
		return nil, domain.ErrFlightNotFound
	}
	return flight, nil
}

func (s *FlightService) Add(ctx context.Context, input AddFlightInput) *domain.Flight {
	flight := &domain.Flight{
		Key:           s.repo.NextKey(),
		FlightNumber:  input.FlightNumber,
		Departure:     input.Departure,
		Destination:   input.Destination,
		DepartureTime: input.DepartureTime,
		ArrivalTime:   input.ArrivalTime,
		Airplane:      input.Airplane,
		Passengers:    []*domain.Passenger{},
		Price:         input.Price,
		Landings:      input.Landings,
	}
	if flight.Landings == nil {
		flight.Landings = []*domain.Airport{}
	}

	s.repo.Add(flight)
	s.committer.Commit(ctx, domain.Event{Type: domain.EventFlightAdded, FlightNumber: flight.FlightNumber, Key: flight.Key})
	return flight
}

// Edit replaces the single field named by edit. An unknown field changes
// nothing, but the store is still saved.
func (s *FlightService) Edit(ctx context.Context, flight *domain.Flight, edit Edit) {
	edit.apply(flight)
	s.committer.Commit(ctx, domain.Event{
		Type:         domain.EventFlightUpdated,
		FlightNumber: flight.FlightNumber,
		Key:          flight.Key,
		Detail:       edit.Field.String(),
	})
}

func (s *FlightService) Remove(ctx context.Context, number string) error {
	flight, ok := s.repo.GetByNumber(number)
	if !ok {
		return domain.ErrFlightNotFound
	}
	s.repo.Remove(flight)
	s.committer.Commit(ctx, domain.Event{Type: domain.EventFlightRemoved, FlightNumber: flight.FlightNumber, Key: flight.Key})
	return nil
}

func (s *FlightService) NonStop() []*domain.Flight {
	return s.repo.Filter((*domain.Flight).NonStop)
}

func (s *FlightService) ByAirplane(airplane *domain.Airplane) []*domain.Flight {
	return s.repo.Filter(func(f *domain.Flight) bool {
		return f.Airplane != nil && f.Airplane.Key == airplane.Key
	})
}

func (s *FlightService) MostExpensive() (*domain.Flight, error) {
	flight, ok := s.repo.MostExpensive()
	if !ok {
		return nil, domain.ErrNoFlights
	}
	return flight, nil
}

// Replaceable lists flights flying with more than 30% of seats empty.
func (s *FlightService) Replaceable() []*domain.Flight {
	return s.repo.Filter(func(f *domain.Flight) bool {
		return float64(f.FreeSeats()) > float64(f.Capacity())*replaceableShare
	})
}

var _ FlightUseCase = (*FlightService)(nil)
