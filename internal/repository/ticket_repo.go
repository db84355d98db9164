package repository

import "github.com/Domenick1991/airtransport/internal/domain"

type TicketRepository interface {
	List() []*domain.Ticket
	NextKey() int
	Add(ticket *domain.Ticket)
	ForFlight(number string) []*domain.Ticket
	Replace(tickets []*domain.Ticket)
}

type MemoryTicketRepository struct {
	collection[domain.Ticket]
	lastKey int
}

func NewTicketRepository() *MemoryTicketRepository {
	return &MemoryTicketRepository{}
}

func (r *MemoryTicketRepository) NextKey() int {
	r.lastKey++
	return r.lastKey
}

func (r *MemoryTicketRepository) ForFlight(number string) []*domain.Ticket {
	return r.Filter(func(t *domain.Ticket) bool { return t.FlightNumber == number })
}

func (r *MemoryTicketRepository) Replace(tickets []*domain.Ticket) {
	r.collection.Replace(tickets)
	for _, t := range tickets {
		r.lastKey = max(r.lastKey, t.Key)
	}
}

var _ TicketRepository = (*MemoryTicketRepository)(nil)
