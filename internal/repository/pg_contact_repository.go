package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/contactdesk/contactdesk/internal/model"
)

// ContactRepository defines the persistence interface for contacts.
// It is defined here (in repository) to avoid an import cycle with service.
type ContactRepository interface {
	// Insert persists a new contact, assigning c.ID and c.CreatedAt.
	Insert(ctx context.Context, c *model.Contact) error
	// GetByID returns the contact with the given id, or ErrNotFound.
	GetByID(ctx context.Context, id string) (*model.Contact, error)
	// Delete removes the contact with the given id. Returns ErrNotFound
	// when no row matched.
	Delete(ctx context.Context, id string) error
	// List returns all contacts in insertion order.
	List(ctx context.Context) ([]*model.Contact, error)
}

// PgContactRepository is the PostgreSQL implementation of ContactRepository.
type PgContactRepository struct {
	pool *pgxpool.Pool
}

// NewPgContactRepository creates a PgContactRepository backed by the given pool.
func NewPgContactRepository(pool *pgxpool.Pool) *PgContactRepository {
	return &PgContactRepository{pool: pool}
}

// Ensure PgContactRepository implements ContactRepository at compile time.
var _ ContactRepository = (*PgContactRepository)(nil)

// Insert stores a new contacts row. The id is generated here; created_at
// comes back from the database RETURNING clause so the stored and returned
// timestamps are identical.
func (r *PgContactRepository) Insert(ctx context.Context, c *model.Contact) error {
	c.ID = uuid.NewString()
	return r.pool.QueryRow(ctx,
		`INSERT INTO contacts (id, name, email, phone, message)
		 VALUES ($1, $2, NULLIF($3, ''), $4, NULLIF($5, ''))
		 RETURNING created_at`,
		c.ID, c.Name, c.Email, c.Phone, c.Message,
	).Scan(&c.CreatedAt)
}

// GetByID returns a single contact or ErrNotFound.
func (r *PgContactRepository) GetByID(ctx context.Context, id string) (*model.Contact, error) {
	var c model.Contact
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, COALESCE(email, ''), phone, COALESCE(message, ''), created_at
		 FROM contacts WHERE id = $1`, id,
	).Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Message, &c.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Delete removes a contact by id. ErrNotFound when the id did not exist.
func (r *PgContactRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM contacts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// List returns every contact ordered by insertion. The seq column rather
// than created_at drives the ordering so two rows inserted within the same
// clock tick still come back in a stable order.
func (r *PgContactRepository) List(ctx context.Context) ([]*model.Contact, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, COALESCE(email, ''), phone, COALESCE(message, ''), created_at
		 FROM contacts ORDER BY seq ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var contacts []*model.Contact
	for rows.Next() {
		var c model.Contact
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Message, &c.CreatedAt); err != nil {
			return nil, err
		}
		contacts = append(contacts, &c)
	}
	return contacts, rows.Err()
}
