package domain

import "fmt"

type Airplane struct {
	Key                int    `json:"key"`
	Name               string `json:"name"`
	Model              string `json:"model"`
	RegistrationNumber string `json:"registrationNumber"`
	Category           string `json:"category"`
	Capacity           int    `json:"capacity"`
}

func (a *Airplane) Lines() []string {
	return []string{
		fmt.Sprintf("Airplane %s (%s) - registration: %s", a.Name, a.Model, a.RegistrationNumber),
		fmt.Sprintf("Category: %s, capacity: %d", a.Category, a.Capacity),
	}
}

func (a *Airplane) Label() string {
	return fmt.Sprintf("%s (%s)", a.Name, a.RegistrationNumber)
}
