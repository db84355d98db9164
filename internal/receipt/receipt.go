package receipt

import (
	"context"
	"fmt"
	"io"

	"github.com/Domenick1991/airtransport/internal/domain"
)

// Printer writes one line per store event; ticket sales get a receipt line.
type Printer struct {
	out io.Writer
}

func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

func (p *Printer) Print(_ context.Context, event domain.Event) error {
	at := event.OccurredAt.Format("02.01.06 15:04")
	var err error
	switch event.Type {
	case domain.EventTicketSold:
		_, err = fmt.Fprintf(p.out, "%s receipt: ticket #%d for flight %s\n", at, event.Key, event.FlightNumber)
	case domain.EventPassengerAdded:
		_, err = fmt.Fprintf(p.out, "%s passenger #%d boarded flight %s\n", at, event.Key, event.FlightNumber)
	case domain.EventAirplaneAdded, domain.EventAirportAdded:
		_, err = fmt.Fprintf(p.out, "%s %s #%d %s\n", at, event.Type, event.Key, event.Detail)
	default:
		_, err = fmt.Fprintf(p.out, "%s %s flight %s (#%d)\n", at, event.Type, event.FlightNumber, event.Key)
	}
	return err
}
