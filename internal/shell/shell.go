// Package shell is the menu-driven front end. Every dialog reads operator
// input through the console, calls a service and reports the outcome.
package shell

import (
	"context"
	"errors"
	"strings"

	"github.com/Domenick1991/airtransport/internal/console"
	"github.com/Domenick1991/airtransport/internal/service/fleet"
	"github.com/Domenick1991/airtransport/internal/service/flights"
	"github.com/Domenick1991/airtransport/internal/service/tickets"
)

const exitChoice = "15"

var menu = []string{
	"╔════════════════════════════════════════╗",
	"║      AIR TRANSPORT MANAGEMENT SYSTEM   ║",
	"╠════════════════════════════════════════╣",
	"║ 1.  Add flight                         ║",
	"║ 2.  Add airplane                       ║",
	"║ 3.  Add airport                        ║",
	"║ 4.  Show all flights                   ║",
	"║ 5.  Edit flight                        ║",
	"║ 6.  Remove flight                      ║",
	"║ 7.  Add passenger                      ║",
	"║ 8.  Sell ticket                        ║",
	"║ 9.  Check free seats                   ║",
	"║ 10. Non-stop flights                   ║",
	"║ 11. Flights by airplane                ║",
	"║ 12. Flight load                        ║",
	"║ 13. Most expensive flight              ║",
	"║ 14. Replaceable airplanes              ║",
	"║ 15. Exit                               ║",
	"╚════════════════════════════════════════╝",
}

type action func(ctx context.Context) error

type Shell struct {
	console *console.Console
	flights flights.FlightUseCase
	tickets tickets.TicketUseCase
	fleet   fleet.FleetUseCase
	actions map[string]action
}

func New(c *console.Console, flightSvc flights.FlightUseCase, ticketSvc tickets.TicketUseCase, fleetSvc fleet.FleetUseCase) *Shell {
	s := &Shell{
		console: c,
		flights: flightSvc,
		tickets: ticketSvc,
		fleet:   fleetSvc,
	}
	s.actions = map[string]action{
		"1":  s.addFlight,
		"2":  s.addAirplaneAction,
		"3":  s.addAirportAction,
		"4":  s.showAllFlights,
		"5":  s.editFlight,
		"6":  s.removeFlight,
		"7":  s.addPassenger,
		"8":  s.sellTicket,
		"9":  s.checkFreeSeats,
		"10": s.findNonStopFlights,
		"11": s.findFlightsByPlane,
		"12": s.showFlightLoad,
		"13": s.showMostExpensiveFlight,
		"14": s.findReplaceablePlanes,
	}
	return s
}

// Run shows the menu until the operator exits, input runs out or ctx is
// cancelled. A line read after cancellation is discarded, not dispatched.
func (s *Shell) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return nil
		}

		s.showMenu()
		line, err := s.console.Prompt("→ Your choice: ")
		if err != nil {
			return ignoreClosed(err)
		}
		if ctx.Err() != nil {
			return nil
		}

		choice := strings.TrimSpace(line)
		if choice == exitChoice {
			return nil
		}

		run, ok := s.actions[choice]
		if !ok {
			err = s.console.Error("Invalid choice")
		} else {
			err = run(ctx)
		}
		if err != nil {
			return ignoreClosed(err)
		}
	}
}

func ignoreClosed(err error) error {
	if errors.Is(err, console.ErrInputClosed) {
		return nil
	}
	return err
}

func (s *Shell) showMenu() {
	s.console.Println()
	for _, line := range menu {
		s.console.Center(line)
	}
	s.console.Println()
}
