package shell

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Domenick1991/airtransport/internal/domain"
	"github.com/Domenick1991/airtransport/internal/service/fleet"
	"github.com/Domenick1991/airtransport/internal/service/flights"
	"github.com/Domenick1991/airtransport/internal/service/tickets"
	"github.com/Domenick1991/airtransport/internal/utils"
	"github.com/shopspring/decimal"
)

var separator = strings.Repeat("-", 40)

func (s *Shell) addFlight(ctx context.Context) error {
	c := s.console
	airports := airportCatalog{shell: s}
	var input flights.AddFlightInput
	var err error

	c.Center("=== NEW FLIGHT ===")
	c.Println()
	if input.FlightNumber, err = c.Prompt("Flight number: "); err != nil {
		return err
	}

	c.Println("\nDeparture")
	if input.Departure, err = PickAirport(ctx, c, airports, false); err != nil {
		return err
	}
	c.Println("\nDestination")
	if input.Destination, err = PickAirport(ctx, c, airports, false); err != nil {
		return err
	}

	c.Println()
	if input.DepartureTime, err = s.promptTime("Departure time (dd.mm.yyyy hh:mm): "); err != nil {
		return err
	}
	c.Println()
	if input.ArrivalTime, err = s.promptTime("Arrival time (dd.mm.yyyy hh:mm): "); err != nil {
		return err
	}

	if input.Airplane, err = PickAirplane(ctx, c, airplaneCatalog{shell: s}, true); err != nil {
		return err
	}
	c.Println()
	if input.Price, err = s.promptPrice("Flight price: "); err != nil {
		return err
	}

	c.Println()
	c.Println("Intermediate landings (-1 to finish):")
	for {
		landing, err := PickAirport(ctx, c, airports, true)
		if err != nil {
			return err
		}
		if landing == nil {
			break
		}
		input.Landings = append(input.Landings, landing)
	}

	s.flights.Add(ctx, input)
	return c.Success("=== Flight added! ===")
}

func (s *Shell) sellTicket(ctx context.Context) error {
	s.printFlights()
	number, err := s.console.Prompt("Enter flight number: ")
	if err != nil {
		return err
	}

	ticket, err := s.tickets.Sell(ctx, number)
	if err != nil {
		return s.console.Error("Flight not found or no free seats")
	}
	s.console.Lines(ticket.Lines())
	return s.console.Success(fmt.Sprintf("=== Ticket #%d sold! ===", ticket.Key))
}

func (s *Shell) checkFreeSeats(_ context.Context) error {
	s.printFlights()
	number, err := s.console.Prompt("Flight number: ")
	if err != nil {
		return err
	}

	free, err := s.tickets.FreeSeats(number)
	if err != nil {
		return s.console.Error("=== Flight not found ===")
	}
	s.console.Center(fmt.Sprintf("=== Free seats: %d ===", free))
	return s.console.Pause()
}

func (s *Shell) findNonStopFlights(_ context.Context) error {
	s.console.Center("=== NON-STOP FLIGHTS ===")
	result := s.flights.NonStop()
	if len(result) == 0 {
		s.console.Center("=== NO NON-STOP FLIGHTS ===")
	} else {
		for _, f := range result {
			s.console.Lines(f.Lines())
		}
	}
	return s.console.Pause()
}

// findFlightsByPlane prints nothing at all when the airplane has no flights.
func (s *Shell) findFlightsByPlane(ctx context.Context) error {
	plane, err := PickAirplane(ctx, s.console, airplaneCatalog{shell: s}, false)
	if err != nil {
		return err
	}

	for _, f := range s.flights.ByAirplane(plane) {
		s.console.Lines(f.Lines())
		s.console.Println(separator)
	}
	return s.console.Pause()
}

func (s *Shell) showFlightLoad(_ context.Context) error {
	c := s.console
	c.Center("=== FLIGHT LOAD ===")
	s.printFlights()
	number, err := c.Prompt("Flight number: ")
	if err != nil {
		return err
	}

	load, err := s.tickets.Load(number)
	if err != nil {
		return c.Error("=== Flight not found ===")
	}
	c.Printf("Load of flight %s:\n", load.FlightNumber)
	c.Printf("Total seats: %d\n", load.Capacity)
	c.Printf("Occupied: %d\n", load.Occupied)
	c.Printf("Free: %d\n", load.Free)
	return c.Pause()
}

func (s *Shell) showMostExpensiveFlight(_ context.Context) error {
	flight, err := s.flights.MostExpensive()
	if errors.Is(err, domain.ErrNoFlights) {
		s.console.Center("=== No flights ===")
	} else {
		s.console.Lines(flight.Lines())
	}
	return s.console.Pause()
}

func (s *Shell) findReplaceablePlanes(_ context.Context) error {
	result := s.flights.Replaceable()
	if len(result) == 0 {
		s.console.Center("=== NO FLIGHTS WITH REPLACEABLE AIRPLANES ===")
	} else {
		for _, f := range result {
			s.console.Lines(f.Lines())
		}
	}
	return s.console.Pause()
}

func (s *Shell) addAirplaneAction(ctx context.Context) error {
	_, err := s.addAirplane(ctx)
	return err
}

func (s *Shell) addAirplane(ctx context.Context) (*domain.Airplane, error) {
	c := s.console
	var input fleet.AirplaneInput
	var err error

	c.Center("=== AIRPLANE ===")
	c.Println()
	if input.Model, err = c.Prompt("Model: "); err != nil {
		return nil, err
	}
	if input.RegistrationNumber, err = c.Prompt("Registration number: "); err != nil {
		return nil, err
	}
	if input.Category, err = c.Prompt("Category: "); err != nil {
		return nil, err
	}
	capacity, err := c.Prompt("Capacity: ")
	if err != nil {
		return nil, err
	}
	input.Capacity = utils.StrToInt(capacity, 0)

	airplane := s.fleet.AddAirplane(ctx, input)
	c.Lines(airplane.Lines())
	return airplane, c.Success("=== Airplane added! ===")
}

func (s *Shell) addAirportAction(ctx context.Context) error {
	_, err := s.addAirport(ctx)
	return err
}

func (s *Shell) addAirport(ctx context.Context) (*domain.Airport, error) {
	c := s.console
	var input fleet.AirportInput
	var err error

	c.Center("=== AIRPORT ===")
	c.Println()
	if input.Code, err = c.Prompt("Airport code: "); err != nil {
		return nil, err
	}
	if input.Name, err = c.Prompt("Name: "); err != nil {
		return nil, err
	}
	if input.City, err = c.Prompt("City: "); err != nil {
		return nil, err
	}
	if input.Country, err = c.Prompt("Country: "); err != nil {
		return nil, err
	}

	airport := s.fleet.AddAirport(ctx, input)
	c.Lines(airport.Lines())
	return airport, c.Success("=== Airport added! ===")
}

func (s *Shell) showAllFlights(_ context.Context) error {
	s.printFlights()
	return s.console.Pause()
}

func (s *Shell) printFlights() {
	c := s.console
	c.Center("=== FLIGHT LIST ===")
	list := s.flights.List()
	if len(list) == 0 {
		c.Center("=== No flights ===")
		return
	}
	for _, f := range list {
		c.Lines(f.Lines())
		c.Println(separator)
	}
}

var editMenu = []string{
	"╔════════════════════════════════════════╗",
	"║ 1.  Change number                      ║",
	"║ 2.  Change departure airport           ║",
	"║ 3.  Change destination airport         ║",
	"║ 4.  Change departure time              ║",
	"║ 5.  Change arrival time                ║",
	"║ 6.  Change airplane                    ║",
	"║ 7.  Change price                       ║",
	"╚════════════════════════════════════════╝",
}

// editFlight replaces one field. Unparsable times and prices reset the field
// to its zero value instead of keeping the old one.
func (s *Shell) editFlight(ctx context.Context) error {
	c := s.console
	s.printFlights()
	number, err := c.Prompt("Flight number: ")
	if err != nil {
		return err
	}

	flight, err := s.flights.GetByNumber(number)
	if err != nil {
		return c.Error("=== Flight not found ===")
	}

	for _, line := range editMenu {
		c.Center(line)
	}
	choice, err := c.Prompt("\n→ Your choice: ")
	if err != nil {
		return err
	}

	edit := flights.Edit{}
	switch strings.TrimSpace(choice) {
	case "1":
		edit.Field = flights.EditNumber
		edit.Number, err = c.Prompt("New number: ")
	case "2":
		edit.Field = flights.EditDeparture
		edit.Airport, err = PickAirport(ctx, c, airportCatalog{shell: s}, false)
	case "3":
		edit.Field = flights.EditDestination
		edit.Airport, err = PickAirport(ctx, c, airportCatalog{shell: s}, false)
	case "4":
		edit.Field = flights.EditDepartureTime
		edit.Time, err = s.promptTime("New departure time: ")
	case "5":
		edit.Field = flights.EditArrivalTime
		edit.Time, err = s.promptTime("New arrival time: ")
	case "6":
		edit.Field = flights.EditAirplane
		edit.Airplane, err = PickAirplane(ctx, c, airplaneCatalog{shell: s}, true)
	case "7":
		edit.Field = flights.EditPrice
		edit.Price, err = s.promptPrice("New price: ")
	}
	if err != nil {
		return err
	}

	s.flights.Edit(ctx, flight, edit)
	return c.Success("=== Flight updated! ===")
}

func (s *Shell) removeFlight(ctx context.Context) error {
	s.printFlights()
	number, err := s.console.Prompt("Flight number: ")
	if err != nil {
		return err
	}

	if err := s.flights.Remove(ctx, number); err != nil {
		return s.console.Error("=== Flight not found ===")
	}
	return s.console.Success("=== Flight removed! ===")
}

func (s *Shell) addPassenger(ctx context.Context) error {
	c := s.console
	s.printFlights()
	number, err := c.Prompt("Flight number: ")
	if err != nil {
		return err
	}

	flight, err := s.tickets.OpenFlight(number)
	switch {
	case errors.Is(err, domain.ErrFlightNotFound):
		return c.Error("=== Flight not found ===")
	case errors.Is(err, domain.ErrNoFreeSeats):
		return c.Error("=== No free seats ===")
	}

	var input tickets.PassengerInput
	if input.FullName, err = c.Prompt("Full name: "); err != nil {
		return err
	}
	if input.PassportNumber, err = c.Prompt("Passport: "); err != nil {
		return err
	}
	if input.ContactInfo, err = c.Prompt("Contacts: "); err != nil {
		return err
	}

	passenger, err := s.tickets.AddPassenger(ctx, flight, input)
	if err != nil {
		return c.Error("=== No free seats ===")
	}
	c.Lines(passenger.Lines())
	return c.Success("=== Passenger added! ===")
}

func (s *Shell) promptTime(label string) (time.Time, error) {
	line, err := s.console.Prompt(label)
	if err != nil {
		return time.Time{}, err
	}
	return utils.StrToTime(line, time.Time{}), nil
}

func (s *Shell) promptPrice(label string) (decimal.Decimal, error) {
	line, err := s.console.Prompt(label)
	if err != nil {
		return decimal.Zero, err
	}
	return utils.StrToDecimal(line, decimal.Zero), nil
}
