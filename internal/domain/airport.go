package domain

import "fmt"

type Airport struct {
	Key     int    `json:"key"`
	Code    string `json:"code"`
	Name    string `json:"name"`
	City    string `json:"city"`
	Country string `json:"country"`
}

func (a *Airport) Lines() []string {
	return []string{
		fmt.Sprintf("Airport %s (%s)", a.Name, a.Code),
		fmt.Sprintf("Location: %s, %s", a.City, a.Country),
	}
}

// Label is the one-line form used by pickers.
func (a *Airport) Label() string {
	return fmt.Sprintf("%s (%s)", a.Name, a.Code)
}
