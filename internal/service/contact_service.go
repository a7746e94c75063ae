package service

import (
	"context"

	"github.com/contactdesk/contactdesk/internal/model"
)

// ContactService defines the business logic for managing contacts.
type ContactService interface {
	// Create validates the candidate and stores it. On rule violations it
	// returns a *ValidationError and writes nothing. On success c.ID and
	// c.CreatedAt are populated by the store.
	Create(ctx context.Context, c *model.Contact) error

	// List returns all contacts in insertion order.
	List(ctx context.Context) ([]*model.Contact, error)

	// Delete removes the contact with the given id. Returns
	// repository.ErrNotFound when the id does not exist.
	Delete(ctx context.Context, id string) error
}
