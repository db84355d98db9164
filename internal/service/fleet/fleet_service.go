package fleet

import (
	"context"
	"fmt"
	"strings"

	"github.com/Domenick1991/airtransport/internal/domain"
	"github.com/Domenick1991/airtransport/internal/repository"
)

// baseAirplaneNumber seeds generated airplane names: the first one is
// "Boeing 700".
const baseAirplaneNumber = 700

type FleetUseCase interface {
	Airplanes() []*domain.Airplane
	Airports() []*domain.Airport
	AddAirplane(ctx context.Context, input AirplaneInput) *domain.Airplane
	AddAirport(ctx context.Context, input AirportInput) *domain.Airport
}

type Committer interface {
	Commit(ctx context.Context, event domain.Event) domain.Event
}

type AirplaneInput struct {
	Model              string
	RegistrationNumber string
	Category           string
	Capacity           int
}

type AirportInput struct {
	Code    string
	Name    string
	City    string
	Country string
}

type FleetService struct {
	airplanes repository.AirplaneRepository
	airports  repository.AirportRepository
	committer Committer
}

func NewFleetService(airplanes repository.AirplaneRepository, airports repository.AirportRepository, committer Committer) *FleetService {
	return &FleetService{airplanes: airplanes, airports: airports, committer: committer}
}

func (s *FleetService) Airplanes() []*domain.Airplane {
	return s.airplanes.List()
}

func (s *FleetService) Airports() []*domain.Airport {
	return s.airports.List()
}

// NextAirplaneName is the name the next AddAirplane call will assign.
func (s *FleetService) NextAirplaneName() string {
	return fmt.Sprintf("Boeing %d", baseAirplaneNumber+s.airplanes.Count())
}

func (s *FleetService) AddAirplane(ctx context.Context, input AirplaneInput) *domain.Airplane {
	airplane := &domain.Airplane{
		Key:                s.airplanes.NextKey(),
		Name:               s.NextAirplaneName(),
		Model:              input.Model,
		RegistrationNumber: input.RegistrationNumber,
		Category:           input.Category,
		Capacity:           input.Capacity,
	}
	s.airplanes.Add(airplane)

	s.committer.Commit(ctx, domain.Event{Type: domain.EventAirplaneAdded, Key: airplane.Key, Detail: airplane.Name})
	return airplane
}

func (s *FleetService) AddAirport(ctx context.Context, input AirportInput) *domain.Airport {
	airport := &domain.Airport{
		Key:     s.airports.NextKey(),
		Code:    strings.ToUpper(input.Code),
		Name:    input.Name,
		City:    input.City,
		Country: input.Country,
	}
	s.airports.Add(airport)

	s.committer.Commit(ctx, domain.Event{Type: domain.EventAirportAdded, Key: airport.Key, Detail: airport.Code})
	return airport
}

var _ FleetUseCase = (*FleetService)(nil)
