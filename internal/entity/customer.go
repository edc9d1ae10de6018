package entity

import "time"

// Customer is one read-only customer row of the analytics snapshot.
type Customer struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	CreatedAt time.Time `json:"created_at"`
}

// DisplayName falls back first+last name -> email -> "Unknown".
func (c *Customer) DisplayName() string {
	if c == nil {
		return "Unknown"
	}
	if c.FirstName != "" && c.LastName != "" {
		return c.FirstName + " " + c.LastName
	}
	if c.Email != "" {
		return c.Email
	}
	return "Unknown"
}
