package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/contactdesk/contactdesk/internal/model"
	"github.com/contactdesk/contactdesk/internal/repository"
)

// ---------------------------------------------------------------------------
// mockContactRepository is an in-memory stub for testing
// ---------------------------------------------------------------------------

type mockContactRepository struct {
	insertFunc func(ctx context.Context, c *model.Contact) error
	listFunc   func(ctx context.Context) ([]*model.Contact, error)
	deleteFunc func(ctx context.Context, id string) error
}

func (m *mockContactRepository) Insert(ctx context.Context, c *model.Contact) error {
	if m.insertFunc != nil {
		return m.insertFunc(ctx, c)
	}
	return nil
}

func (m *mockContactRepository) GetByID(ctx context.Context, id string) (*model.Contact, error) {
	return nil, repository.ErrNotFound
}

func (m *mockContactRepository) List(ctx context.Context) ([]*model.Contact, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

func (m *mockContactRepository) Delete(ctx context.Context, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Create tests
// ---------------------------------------------------------------------------

func TestContactService_Create_PersistsValidContact(t *testing.T) {
	var saved *model.Contact
	mock := &mockContactRepository{
		insertFunc: func(ctx context.Context, c *model.Contact) error {
			c.ID = "generated-id"
			c.CreatedAt = time.Now()
			saved = c
			return nil
		},
	}
	svc := NewContactService(mock)

	c := &model.Contact{Name: "Ann", Phone: "5551234567"}
	if err := svc.Create(context.Background(), c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if saved == nil {
		t.Fatal("expected Insert to be called")
	}
	if c.ID == "" {
		t.Error("expected ID to be assigned")
	}
	if c.Phone != "5551234567" {
		t.Errorf("expected phone preserved, got %q", c.Phone)
	}
}

func TestContactService_Create_TrimsName(t *testing.T) {
	mock := &mockContactRepository{}
	svc := NewContactService(mock)

	c := &model.Contact{Name: "  Ann  ", Phone: "5551234567"}
	if err := svc.Create(context.Background(), c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Name != "Ann" {
		t.Errorf("expected trimmed name, got %q", c.Name)
	}
}

func TestContactService_Create_RejectsEmptyName(t *testing.T) {
	inserted := false
	mock := &mockContactRepository{
		insertFunc: func(ctx context.Context, c *model.Contact) error {
			inserted = true
			return nil
		},
	}
	svc := NewContactService(mock)

	err := svc.Create(context.Background(), &model.Contact{Name: "", Phone: "5551234567"})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if verr.Fields["name"] == "" {
		t.Errorf("expected name to be cited, got %v", verr.Fields)
	}
	if inserted {
		t.Error("expected no write on validation failure")
	}
}

func TestContactService_Create_RejectsBadPhone(t *testing.T) {
	svc := NewContactService(&mockContactRepository{})

	err := svc.Create(context.Background(), &model.Contact{Name: "Bo", Phone: "123"})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if verr.Fields["phone"] == "" {
		t.Errorf("expected phone to be cited, got %v", verr.Fields)
	}
}

func TestContactService_Create_RejectsBadEmail(t *testing.T) {
	svc := NewContactService(&mockContactRepository{})

	err := svc.Create(context.Background(), &model.Contact{Name: "Ann", Email: "nope", Phone: "5551234567"})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if verr.Fields["email"] == "" {
		t.Errorf("expected email to be cited, got %v", verr.Fields)
	}
}

func TestContactService_Create_PropagatesRepoError(t *testing.T) {
	want := errors.New("connection refused")
	mock := &mockContactRepository{
		insertFunc: func(ctx context.Context, c *model.Contact) error { return want },
	}
	svc := NewContactService(mock)

	err := svc.Create(context.Background(), &model.Contact{Name: "Ann", Phone: "5551234567"})
	if !errors.Is(err, want) {
		t.Errorf("expected repo error to propagate, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Delete tests
// ---------------------------------------------------------------------------

func TestContactService_Delete_PassesThroughNotFound(t *testing.T) {
	mock := &mockContactRepository{
		deleteFunc: func(ctx context.Context, id string) error { return repository.ErrNotFound },
	}
	svc := NewContactService(mock)

	if err := svc.Delete(context.Background(), "missing"); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestContactService_List_ReturnsRepoResult(t *testing.T) {
	want := []*model.Contact{{ID: "a", Name: "Amy"}, {ID: "z", Name: "Zed"}}
	mock := &mockContactRepository{
		listFunc: func(ctx context.Context) ([]*model.Contact, error) { return want, nil },
	}
	svc := NewContactService(mock)

	got, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[0].Name != "Amy" || got[1].Name != "Zed" {
		t.Errorf("unexpected list result: %+v", got)
	}
}
