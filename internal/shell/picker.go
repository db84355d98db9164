package shell

import (
	"context"

	"github.com/Domenick1991/airtransport/internal/console"
	"github.com/Domenick1991/airtransport/internal/domain"
	"github.com/Domenick1991/airtransport/internal/utils"
)

const (
	choiceCreate = 0
	choiceExit   = -1
)

// AirportCatalog lets a picker list airports and create one inline.
type AirportCatalog interface {
	List() []*domain.Airport
	Create(ctx context.Context) (*domain.Airport, error)
}

type AirplaneCatalog interface {
	List() []*domain.Airplane
	Create(ctx context.Context) (*domain.Airplane, error)
}

// PickAirport keeps asking until it gets a valid choice. With allowExit the
// operator may answer -1 to get nil back, and cannot create a new airport.
func PickAirport(ctx context.Context, c *console.Console, catalog AirportCatalog, allowExit bool) (*domain.Airport, error) {
	for {
		airports := catalog.List()
		c.Println("Select an airport:")
		for i, a := range airports {
			c.Printf("%d. %s\n", i+1, a.Label())
		}
		if allowExit {
			c.Println("-1. Finish selection")
		} else {
			c.Println("0. Create new")
		}

		line, err := c.Prompt("\n→ Your choice: ")
		if err != nil {
			return nil, err
		}

		choice := utils.StrToInt(line, invalidChoice)
		switch {
		case choice == choiceExit && allowExit:
			return nil, nil
		case choice == choiceCreate && !allowExit:
			return catalog.Create(ctx)
		case choice > 0 && choice <= len(airports):
			return airports[choice-1], nil
		}
		if err := c.Error("=== Invalid choice ==="); err != nil {
			return nil, err
		}
	}
}

// PickAirplane keeps asking until it gets a valid choice. Without allowCreate
// only an existing airplane can be returned.
func PickAirplane(ctx context.Context, c *console.Console, catalog AirplaneCatalog, allowCreate bool) (*domain.Airplane, error) {
	for {
		airplanes := catalog.List()
		c.Println("Select an airplane:")
		for i, a := range airplanes {
			c.Printf("%d. %s\n", i+1, a.Label())
		}
		if allowCreate {
			c.Println("0. Create new")
		}

		line, err := c.Prompt("\n→ Your choice: ")
		if err != nil {
			return nil, err
		}

		choice := utils.StrToInt(line, invalidChoice)
		switch {
		case choice == choiceCreate && allowCreate:
			return catalog.Create(ctx)
		case choice > 0 && choice <= len(airplanes):
			return airplanes[choice-1], nil
		}
		if err := c.Error("=== Invalid choice ==="); err != nil {
			return nil, err
		}
	}
}

// invalidChoice is never a valid picker answer.
const invalidChoice = -2

type airportCatalog struct {
	shell *Shell
}

func (a airportCatalog) List() []*domain.Airport {
	return a.shell.fleet.Airports()
}

func (a airportCatalog) Create(ctx context.Context) (*domain.Airport, error) {
	return a.shell.addAirport(ctx)
}

type airplaneCatalog struct {
	shell *Shell
}

func (a airplaneCatalog) List() []*domain.Airplane {
	return a.shell.fleet.Airplanes()
}

func (a airplaneCatalog) Create(ctx context.Context) (*domain.Airplane, error) {
	return a.shell.addAirplane(ctx)
}

var (
	_ AirportCatalog  = airportCatalog{}
	_ AirplaneCatalog = airplaneCatalog{}
)
