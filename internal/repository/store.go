package repository

import "github.com/Domenick1991/airtransport/internal/domain"

// Store groups the four collections. It is built once at startup and handed
// to every service; it is not safe for concurrent use.
type Store struct {
	Flights   FlightRepository
	Airplanes AirplaneRepository
	Airports  AirportRepository
	Tickets   TicketRepository
}

func NewStore() *Store {
	return &Store{
		Flights:   NewFlightRepository(),
		Airplanes: NewAirplaneRepository(),
		Airports:  NewAirportRepository(),
		Tickets:   NewTicketRepository(),
	}
}

// Relink points flight references at the airport and airplane instances held
// by the store, matching by key. Unknown keys keep the decoded copy.
func (s *Store) Relink() {
	airport := func(a *domain.Airport) *domain.Airport {
		if a == nil {
			return nil
		}
		if shared, ok := s.Airports.GetByKey(a.Key); ok {
			return shared
		}
		return a
	}

	for _, f := range s.Flights.List() {
		f.Departure = airport(f.Departure)
		f.Destination = airport(f.Destination)
		for i, landing := range f.Landings {
			f.Landings[i] = airport(landing)
		}
		if f.Airplane != nil {
			if shared, ok := s.Airplanes.GetByKey(f.Airplane.Key); ok {
				f.Airplane = shared
			}
		}
	}
}
