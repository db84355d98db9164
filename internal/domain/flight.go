package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

const displayTimeLayout = "02.01.06 15:04"

type Flight struct {
	Key           int             `json:"key"`
	FlightNumber  string          `json:"flightNumber"`
	Departure     *Airport        `json:"departure"`
	Destination   *Airport        `json:"destination"`
	DepartureTime time.Time       `json:"departureTime"`
	ArrivalTime   time.Time       `json:"arrivalTime"`
	Airplane      *Airplane       `json:"airplane"`
	Passengers    []*Passenger    `json:"passengers"`
	Price         decimal.Decimal `json:"price"`
	Landings      []*Airport      `json:"landings"`
}

// Capacity is zero when no airplane is assigned.
func (f *Flight) Capacity() int {
	if f.Airplane == nil {
		return 0
	}
	return f.Airplane.Capacity
}

// FreeSeats is recomputed on every call and may be negative if capacity shrank.
func (f *Flight) FreeSeats() int {
	if f.Airplane == nil {
		return 0
	}
	return f.Airplane.Capacity - len(f.Passengers)
}

func (f *Flight) NonStop() bool {
	return len(f.Landings) == 0
}

// AddPassenger assigns the next flight-scoped key and appends p.
func (f *Flight) AddPassenger(p *Passenger) *Passenger {
	p.Key = len(f.Passengers) + 1
	f.Passengers = append(f.Passengers, p)
	return p
}

func (f *Flight) Lines() []string {
	var depCode, dstCode, planeName, planeReg string
	if f.Departure != nil {
		depCode = f.Departure.Code
	}
	if f.Destination != nil {
		dstCode = f.Destination.Code
	}
	if f.Airplane != nil {
		planeName = f.Airplane.Name
		planeReg = f.Airplane.RegistrationNumber
	}
	return []string{
		fmt.Sprintf("Flight #%d: %s", f.Key, f.FlightNumber),
		fmt.Sprintf("Route: %s → %s", depCode, dstCode),
		fmt.Sprintf("Time: %s - %s", f.DepartureTime.Format(displayTimeLayout), f.ArrivalTime.Format(displayTimeLayout)),
		fmt.Sprintf("Airplane: %s (%s)", planeName, planeReg),
		fmt.Sprintf("Price: %s, free seats: %d", f.Price.StringFixed(2), f.FreeSeats()),
	}
}
