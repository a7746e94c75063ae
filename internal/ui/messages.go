package ui

import (
	"context"

	"github.com/contactdesk/contactdesk/internal/client"
	"github.com/contactdesk/contactdesk/internal/model"
)

// API is the surface of the Contacts API client the views depend on.
// *client.Client satisfies it; tests substitute a stub.
type API interface {
	List(ctx context.Context) ([]model.Contact, error)
	Create(ctx context.Context, req *client.CreateContactRequest) (*model.Contact, error)
	Delete(ctx context.Context, id string) error
}

var _ API = (*client.Client)(nil)

// contactsLoadedMsg delivers the result of a full list fetch.
type contactsLoadedMsg struct {
	contacts []model.Contact
	err      error
}

// contactCreatedMsg tells the app shell a create completed and the
// authoritative set must be refetched.
type contactCreatedMsg struct{}

// contactDeletedMsg tells the app shell a delete completed and the
// authoritative set must be refetched.
type contactDeletedMsg struct{}

// createResultMsg delivers the outcome of a form submission.
type createResultMsg struct {
	contact *model.Contact
	err     error
}

// deleteResultMsg delivers the outcome of a delete request.
type deleteResultMsg struct {
	id  string
	err error
}

// clearStatusMsg fires when a transient status message should disappear.
// seq guards against a stale timer wiping a newer message.
type clearStatusMsg struct {
	seq int
}
