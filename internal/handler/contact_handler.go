package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/contactdesk/contactdesk/internal/model"
	"github.com/contactdesk/contactdesk/internal/repository"
	"github.com/contactdesk/contactdesk/internal/service"
)

// ContactHandler handles the contact CRUD endpoints.
type ContactHandler struct {
	contactService service.ContactService
}

// NewContactHandler creates a ContactHandler with the given service.
func NewContactHandler(contactService service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// createRequest is the expected JSON body for POST /api/contacts.
type createRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// errorResponse is the JSON body for every non-2xx response. Errors is only
// set for validation failures.
type errorResponse struct {
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// List handles GET /api/contacts. Returns the full contact set in insertion
// order; no server-side filtering or sorting.
func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	contacts, err := h.contactService.List(r.Context())
	if err != nil {
		slog.Error("list contacts failed", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(errorResponse{Message: "Failed to fetch contacts"})
		return
	}

	// Return [] not null for empty lists
	if contacts == nil {
		contacts = []*model.Contact{}
	}

	_ = json.NewEncoder(w).Encode(contacts)
}

// Create handles POST /api/contacts.
func (h *ContactHandler) Create(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(errorResponse{Message: "Invalid request body"})
		return
	}

	c := &model.Contact{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
	}

	if err := h.contactService.Create(r.Context(), c); err != nil {
		var verr *service.ValidationError
		if errors.As(err, &verr) {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(errorResponse{
				Message: "Validation failed",
				Errors:  verr.Fields,
			})
			return
		}
		slog.Error("create contact failed", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(errorResponse{Message: "Failed to add contact"})
		return
	}

	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(c)
}

// Delete handles DELETE /api/contacts/{id}.
func (h *ContactHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(errorResponse{Message: "Contact id is required"})
		return
	}

	if err := h.contactService.Delete(r.Context(), id); err != nil {
		w.Header().Set("Content-Type", "application/json")
		if errors.Is(err, repository.ErrNotFound) {
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(errorResponse{Message: "Contact not found"})
			return
		}
		slog.Error("delete contact failed", "id", id, "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(errorResponse{Message: "Failed to delete contact"})
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
