package ui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contactdesk/contactdesk/internal/model"
)

func testContacts() []model.Contact {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return []model.Contact{
		{ID: "1", Name: "Zed", Email: "zed@example.com", Phone: "5550000001", Message: "hello there", CreatedAt: base},
		{ID: "2", Name: "Amy", Email: "amy@example.com", Phone: "5550000002", Message: "", CreatedAt: base.Add(time.Hour)},
		{ID: "3", Name: "Bob", Email: "", Phone: "9990000003", Message: "call me about zebras", CreatedAt: base.Add(2 * time.Hour)},
	}
}

func names(contacts []model.Contact) []string {
	out := make([]string, len(contacts))
	for i, c := range contacts {
		out[i] = c.Name
	}
	return out
}

func TestVisible_EmptyTermIsIdentityFilter(t *testing.T) {
	contacts := testContacts()
	got := Visible(contacts, "", SortByName)
	assert.Len(t, got, len(contacts))
}

func TestVisible_SortByNameAscending(t *testing.T) {
	got := Visible(testContacts(), "", SortByName)
	assert.Equal(t, []string{"Amy", "Bob", "Zed"}, names(got))
}

func TestVisible_SortIsCaseInsensitive(t *testing.T) {
	contacts := []model.Contact{
		{ID: "1", Name: "zed"},
		{ID: "2", Name: "Amy"},
		{ID: "3", Name: "BOB"},
	}
	got := Visible(contacts, "", SortByName)
	assert.Equal(t, []string{"Amy", "BOB", "zed"}, names(got))
}

func TestVisible_SortByDateNewestFirst(t *testing.T) {
	got := Visible(testContacts(), "", SortByDate)
	require.Len(t, got, 3)
	for i := 1; i < len(got); i++ {
		assert.False(t, got[i].CreatedAt.After(got[i-1].CreatedAt),
			"createdAt must be non-increasing, got %v before %v", got[i-1].CreatedAt, got[i].CreatedAt)
	}
	assert.Equal(t, "Bob", got[0].Name)
}

func TestVisible_SortByEmailMissingValuesFirst(t *testing.T) {
	got := Visible(testContacts(), "", SortByEmail)
	// Bob has no email; empty string sorts before any address.
	assert.Equal(t, []string{"Bob", "Amy", "Zed"}, names(got))
}

func TestVisible_FilterIsCaseInsensitiveSubstring(t *testing.T) {
	got := Visible(testContacts(), "zed", SortByName)
	assert.Equal(t, []string{"Zed"}, names(got))

	got = Visible(testContacts(), "ZED", SortByName)
	assert.Equal(t, []string{"Zed"}, names(got))
}

func TestVisible_FilterMatchesAnyField(t *testing.T) {
	// phone substring
	got := Visible(testContacts(), "999", SortByName)
	assert.Equal(t, []string{"Bob"}, names(got))

	// message substring
	got = Visible(testContacts(), "zebras", SortByName)
	assert.Equal(t, []string{"Bob"}, names(got))

	// email substring
	got = Visible(testContacts(), "amy@", SortByName)
	assert.Equal(t, []string{"Amy"}, names(got))
}

func TestVisible_NoMatches(t *testing.T) {
	got := Visible(testContacts(), "does-not-exist", SortByName)
	assert.Empty(t, got)
}

func TestVisible_DoesNotMutateInput(t *testing.T) {
	contacts := testContacts()
	_ = Visible(contacts, "", SortByDate)
	assert.Equal(t, []string{"Zed", "Amy", "Bob"}, names(contacts), "input order must be preserved")
}

func TestNextSortKey_Cycles(t *testing.T) {
	assert.Equal(t, SortByEmail, nextSortKey(SortByName))
	assert.Equal(t, SortByPhone, nextSortKey(SortByEmail))
	assert.Equal(t, SortByDate, nextSortKey(SortByPhone))
	assert.Equal(t, SortByName, nextSortKey(SortByDate))
	assert.Equal(t, SortByName, nextSortKey(SortKey("bogus")))
}
