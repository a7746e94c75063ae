package service

import (
	"context"
	"strings"

	"github.com/contactdesk/contactdesk/internal/model"
	"github.com/contactdesk/contactdesk/internal/repository"
	"github.com/contactdesk/contactdesk/internal/validate"
)

// contactServiceImpl is the production implementation of ContactService.
type contactServiceImpl struct {
	repo repository.ContactRepository
}

// NewContactService creates a ContactService backed by the given repository.
func NewContactService(repo repository.ContactRepository) ContactService {
	return &contactServiceImpl{repo: repo}
}

// Create validates the candidate against the field rules and persists it.
// The stored name keeps its surrounding whitespace trimmed.
func (s *contactServiceImpl) Create(ctx context.Context, c *model.Contact) error {
	if errs := validate.Contact(c.Name, c.Email, c.Phone); len(errs) > 0 {
		return &ValidationError{Fields: errs}
	}
	c.Name = strings.TrimSpace(c.Name)
	return s.repo.Insert(ctx, c)
}

// List returns all contacts in insertion order.
func (s *contactServiceImpl) List(ctx context.Context) ([]*model.Contact, error) {
	return s.repo.List(ctx)
}

// Delete removes a contact by id.
func (s *contactServiceImpl) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
