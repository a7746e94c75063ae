package ui

import (
	"sort"
	"strings"

	"github.com/contactdesk/contactdesk/internal/model"
)

// SortKey selects the field the contact list is ordered by.
type SortKey string

const (
	SortByName  SortKey = "name"
	SortByEmail SortKey = "email"
	SortByPhone SortKey = "phone"
	SortByDate  SortKey = "date"
)

// sortKeys is the cycle order used by the list view.
var sortKeys = []SortKey{SortByName, SortByEmail, SortByPhone, SortByDate}

// Visible computes the display projection of the authoritative contact set:
// filter by the search term, then order by the sort key. The input slice is
// never mutated. An empty term is the identity filter.
func Visible(contacts []model.Contact, term string, key SortKey) []model.Contact {
	filtered := filterContacts(contacts, term)
	sortContacts(filtered, key)
	return filtered
}

// filterContacts keeps contacts where any of name, email, phone, or message
// contains the term, case-insensitively. Always returns a fresh slice.
func filterContacts(contacts []model.Contact, term string) []model.Contact {
	out := make([]model.Contact, 0, len(contacts))
	if term == "" {
		return append(out, contacts...)
	}
	needle := strings.ToLower(term)
	for _, c := range contacts {
		if strings.Contains(strings.ToLower(c.Name), needle) ||
			strings.Contains(strings.ToLower(c.Email), needle) ||
			strings.Contains(strings.ToLower(c.Phone), needle) ||
			strings.Contains(strings.ToLower(c.Message), needle) {
			out = append(out, c)
		}
	}
	return out
}

// sortContacts orders in place: date is most-recent-first by CreatedAt,
// every other key is ascending case-insensitive on the field value.
func sortContacts(contacts []model.Contact, key SortKey) {
	if key == SortByDate {
		sort.Slice(contacts, func(i, j int) bool {
			return contacts[i].CreatedAt.After(contacts[j].CreatedAt)
		})
		return
	}
	sort.Slice(contacts, func(i, j int) bool {
		return sortField(contacts[i], key) < sortField(contacts[j], key)
	})
}

func sortField(c model.Contact, key SortKey) string {
	switch key {
	case SortByEmail:
		return strings.ToLower(c.Email)
	case SortByPhone:
		return strings.ToLower(c.Phone)
	default:
		return strings.ToLower(c.Name)
	}
}

// nextSortKey returns the key after k in the cycle order.
func nextSortKey(k SortKey) SortKey {
	for i, s := range sortKeys {
		if s == k {
			return sortKeys[(i+1)%len(sortKeys)]
		}
	}
	return SortByName
}
