package domain

import (
	"fmt"
	"time"
)

// Ticket refers to its flight by number only.
type Ticket struct {
	Key                int       `json:"key"`
	CashRegisterNumber int       `json:"cashRegisterNumber"`
	FlightNumber       string    `json:"flightNumber"`
	SaleDate           time.Time `json:"saleDate"`
	SaleTime           time.Time `json:"saleTime"`
}

func (t *Ticket) Lines() []string {
	return []string{
		fmt.Sprintf("Ticket #%d for flight %s", t.Key, t.FlightNumber),
		fmt.Sprintf("Sold: %s at %s by cash register #%d", t.SaleDate.Format("02.01.06"), t.SaleTime.Format("15:04"), t.CashRegisterNumber),
	}
}
