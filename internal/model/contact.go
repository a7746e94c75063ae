package model

import "time"

// Contact is a single address-book record submitted via the contact form.
// ID and CreatedAt are assigned by the store on insert and never change.
type Contact struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone"`
	Message   string    `json:"message,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
