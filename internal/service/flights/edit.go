package flights

import (
	"time"

	"github.com/Domenick1991/airtransport/internal/domain"
	"github.com/shopspring/decimal"
)

// EditField numbers match the edit sub-menu.
type EditField int

const (
	EditNumber EditField = iota + 1
	EditDeparture
	EditDestination
	EditDepartureTime
	EditArrivalTime
	EditAirplane
	EditPrice
)

func (f EditField) String() string {
	switch f {
	case EditNumber:
		return "number"
	case EditDeparture:
		return "departure"
	case EditDestination:
		return "destination"
	case EditDepartureTime:
		return "departure_time"
	case EditArrivalTime:
		return "arrival_time"
	case EditAirplane:
		return "airplane"
	case EditPrice:
		return "price"
	default:
		return "none"
	}
}

// Edit carries the new value for Field; the other value fields are ignored.
// Zero values are applied as is.
type Edit struct {
	Field    EditField
	Number   string
	Airport  *domain.Airport
	Time     time.Time
	Airplane *domain.Airplane
	Price    decimal.Decimal
}

func (e Edit) apply(f *domain.Flight) {
	switch e.Field {
	case EditNumber:
		f.FlightNumber = e.Number
	case EditDeparture:
		f.Departure = e.Airport
	case EditDestination:
		f.Destination = e.Airport
	case EditDepartureTime:
		f.DepartureTime = e.Time
	case EditArrivalTime:
		f.ArrivalTime = e.Time
	case EditAirplane:
		f.Airplane = e.Airplane
	case EditPrice:
		f.Price = e.Price
	}
}
