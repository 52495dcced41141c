package domain

// Ticket é o ticket vendido na taquilla, como devolvido pelo backend
type Ticket struct {
	ID             NumericString `json:"id_ticket"`
	Name           string        `json:"name"`
	Lastname       string        `json:"lastname"`
	EmailPerson    string        `json:"email_person"`
	PhoneNumber    string        `json:"phone_number"`
	DateTicket     string        `json:"date_ticket"`
	Status         string        `json:"status"`
	IdentityNumber string        `json:"identity_number"`
}

// SearchFields são os campos considerados na busca textual de tickets
func (t Ticket) SearchFields() []string {
	return []string{
		t.Name,
		t.Lastname,
		t.EmailPerson,
		t.PhoneNumber,
		t.DateTicket,
		t.Status,
		t.IdentityNumber,
	}
}

func (u UserProfile) SearchFields() []string {
	return []string{u.Name, u.Email, u.Role, u.StatusProfile}
}
