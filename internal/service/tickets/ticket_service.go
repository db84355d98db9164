package tickets

import (
	"context"
	"math/rand"
	"time"

	"github.com/Domenick1991/airtransport/internal/domain"
	"github.com/Domenick1991/airtransport/internal/repository"
)

type TicketUseCase interface {
	Sell(ctx context.Context, flightNumber string) (*domain.Ticket, error)
	OpenFlight(flightNumber string) (*domain.Flight, error)
	AddPassenger(ctx context.Context, flight *domain.Flight, input PassengerInput) (*domain.Passenger, error)
	FreeSeats(flightNumber string) (int, error)
	Load(flightNumber string) (*Load, error)
}

type Committer interface {
	Commit(ctx context.Context, event domain.Event) domain.Event
}

type PassengerInput struct {
	FullName       string
	PassportNumber string
	ContactInfo    string
}

// Load is the occupancy of one flight.
type Load struct {
	FlightNumber string
	Capacity     int
	Occupied     int
	Free         int
}

type TicketService struct {
	flights       repository.FlightRepository
	tickets       repository.TicketRepository
	committer     Committer
	cashRegisters int
	now           func() time.Time
	register      func(n int) int
}

type TicketServiceOption func(*TicketService)

func WithCashRegisters(n int) TicketServiceOption {
	return func(s *TicketService) {
		s.cashRegisters = n
	}
}

func WithClock(now func() time.Time) TicketServiceOption {
	return func(s *TicketService) {
		s.now = now
	}
}

// WithRegisterPicker replaces the random cash register choice. pick gets the
// register count and returns a value in [0, n).
func WithRegisterPicker(pick func(n int) int) TicketServiceOption {
	return func(s *TicketService) {
		s.register = pick
	}
}

func NewTicketService(
	flights repository.FlightRepository,
	tickets repository.TicketRepository,
	committer Committer,
	opts ...TicketServiceOption,
) *TicketService {
	service := &TicketService{
		flights:       flights,
		tickets:       tickets,
		committer:     committer,
		cashRegisters: 9,
		now:           time.Now,
		register:      rand.Intn,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

// Sell issues a ticket and occupies a seat with an anonymous passenger.
func (s *TicketService) Sell(ctx context.Context, flightNumber string) (*domain.Ticket, error) {
	flight, ok := s.flights.GetByNumber(flightNumber)
	if !ok || flight.FreeSeats() <= 0 {
		return nil, domain.ErrFlightUnavailable
	}

	now := s.now()
	ticket := &domain.Ticket{
		Key:                s.tickets.NextKey(),
		CashRegisterNumber: s.register(s.cashRegisters) + 1,
		FlightNumber:       flight.FlightNumber,
		SaleDate:           time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()),
		SaleTime:           now,
	}
	s.tickets.Add(ticket)
	flight.AddPassenger(&domain.Passenger{})

	s.committer.Commit(ctx, domain.Event{Type: domain.EventTicketSold, FlightNumber: ticket.FlightNumber, Key: ticket.Key})
	return ticket, nil
}

// OpenFlight returns the flight if it can take one more passenger.
func (s *TicketService) OpenFlight(flightNumber string) (*domain.Flight, error) {
	flight, ok := s.flights.GetByNumber(flightNumber)
	if !ok {
		return nil, domain.ErrFlightNotFound
	}
	if flight.FreeSeats() <= 0 {
		return nil, domain.ErrNoFreeSeats
	}
	return flight, nil
}

func (s *TicketService) AddPassenger(ctx context.Context, flight *domain.Flight, input PassengerInput) (*domain.Passenger, error) {
	if flight.FreeSeats() <= 0 {
		return nil, domain.ErrNoFreeSeats
	}
	passenger := flight.AddPassenger(&domain.Passenger{
		FullName:       input.FullName,
		PassportNumber: input.PassportNumber,
		ContactInfo:    input.ContactInfo,
	})

	s.committer.Commit(ctx, domain.Event{Type: domain.EventPassengerAdded, FlightNumber: flight.FlightNumber, Key: passenger.Key})
	return passenger, nil
}

func (s *TicketService) FreeSeats(flightNumber string) (int, error) {
	flight, ok := s.flights.GetByNumber(flightNumber)
	if !ok {
		return 0, domain.ErrFlightNotFound
	}
	return flight.FreeSeats(), nil
}

func (s *TicketService) Load(flightNumber string) (*Load, error) {
	flight, ok := s.flights.GetByNumber(flightNumber)
	if !ok {
		return nil, domain.ErrFlightNotFound
	}
	return &Load{
		FlightNumber: flight.FlightNumber,
		Capacity:     flight.Capacity(),
		Occupied:     len(flight.Passengers),
		Free:         flight.FreeSeats(),
	}, nil
}

var _ TicketUseCase = (*TicketService)(nil)
