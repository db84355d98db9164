package domain

import "time"

type EventType string

const (
	EventFlightAdded    EventType = "flight_added"
	EventFlightUpdated  EventType = "flight_updated"
	EventFlightRemoved  EventType = "flight_removed"
	EventAirplaneAdded  EventType = "airplane_added"
	EventAirportAdded   EventType = "airport_added"
	EventPassengerAdded EventType = "passenger_added"
	EventTicketSold     EventType = "ticket_sold"
)

// Event describes a committed mutation of the store.
type Event struct {
	ID           string    `json:"id"`
	Type         EventType `json:"type"`
	FlightNumber string    `json:"flight_number,omitempty"`
	Key          int       `json:"key"`
	Detail       string    `json:"detail,omitempty"`
	OccurredAt   time.Time `json:"occurred_at"`
}
