package domain

import "fmt"

// Passenger belongs to exactly one flight. Key is scoped to that flight.
type Passenger struct {
	Key            int    `json:"key"`
	FullName       string `json:"fullName"`
	PassportNumber string `json:"passportNumber"`
	ContactInfo    string `json:"contactInfo"`
}

func (p *Passenger) Lines() []string {
	return []string{
		fmt.Sprintf("Passenger: %s", p.FullName),
		fmt.Sprintf("Passport: %s, contacts: %s", p.PassportNumber, p.ContactInfo),
	}
}
