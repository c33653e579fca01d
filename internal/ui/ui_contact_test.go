package ui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-dob/internal/config"
	"github.com/tartampluch/go-dob/internal/engine"
)

func contact(name string, day, month, year int) engine.Contact {
	return engine.Contact{
		Name:      name,
		Birth:     engine.DateTriple{Day: day, Month: month, Year: year},
		YearKnown: year != 0,
	}
}

func names(rows []contactRow) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.Contact.Name
	}
	return out
}

// -----------------------------------------------------------------------------
// Sorting Logic Tests
// -----------------------------------------------------------------------------

func TestSortContactRows_Date(t *testing.T) {
	rows := newContactRows([]engine.Contact{
		contact("C_December", 31, 12, 1980),
		contact("B_January", 2, 1, 1990),
		contact("A_January", 2, 1, 1970),
		contact("D_March", 1, 3, 0),
	}, birthdayMorning)

	sortContactRows(rows, config.ColIDDate, true)
	assert.Equal(t, []string{"A_January", "B_January", "D_March", "C_December"}, names(rows),
		"Calendar order, ties broken by name")

	sortContactRows(rows, config.ColIDDate, false)
	assert.Equal(t, "C_December", rows[0].Contact.Name)
}

func TestSortContactRows_Names(t *testing.T) {
	rows := newContactRows([]engine.Contact{
		contact("charlie", 1, 1, 1990),
		contact("Bob", 1, 1, 1990),
		contact("alice", 1, 1, 1990),
	}, birthdayMorning)

	sortContactRows(rows, config.ColIDName, true)
	assert.Equal(t, []string{"alice", "Bob", "charlie"}, names(rows), "Case-insensitive")
}

// TestSortContactRows_Age verifies that unknown ages sink in ascending order.
func TestSortContactRows_Age(t *testing.T) {
	rows := newContactRows([]engine.Contact{
		contact("Young", 1, 1, 2015),
		contact("Unknown", 1, 1, 0),
		contact("Old", 1, 1, 1975),
		contact("Baby", 1, 1, 2025),
	}, birthdayMorning)

	sortContactRows(rows, config.ColIDAge, true)
	assert.Equal(t, []string{"Baby", "Young", "Old", "Unknown"}, names(rows))
}

// -----------------------------------------------------------------------------
// Row Formatting Tests
// -----------------------------------------------------------------------------

func TestContactRow_Texts(t *testing.T) {
	now := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		contact  engine.Contact
		wantDate string
		wantAge  string
	}{
		{"Known year", contact("Jane", 15, 6, 1990), "Jun 15, 1990", "35"},
		{"Unknown year", contact("Ada", 29, 2, 0), "Feb 29", config.AgeUnknown},
		{"Future date", contact("Later", 1, 1, 2030), "Jan 1, 2030", config.AgeUnknown},
		{"Newborn", contact("Baby", 1, 6, 2025), "Jun 1, 2025", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := newContactRows([]engine.Contact{tt.contact}, now)
			require.Len(t, rows, 1)
			assert.Equal(t, tt.wantDate, rows[0].dateText())
			assert.Equal(t, tt.wantAge, rows[0].ageText())
		})
	}
}

// -----------------------------------------------------------------------------
// Window Tests
// -----------------------------------------------------------------------------

func TestContactsWindow_Singleton(t *testing.T) {
	app, _ := setupTestApp(t, birthdayMorning)
	contacts := []engine.Contact{contact("Jane", 15, 6, 1990), contact("John", 1, 12, 1985)}

	app.ShowContactsWindow(contacts)
	first := app.contactsWindow
	require.NotNil(t, first)

	app.ShowContactsWindow(contacts)
	second := app.contactsWindow
	require.NotNil(t, second)
	assert.NotSame(t, first, second, "A new import replaces the open picker")

	second.Close()
	assert.Nil(t, app.contactsWindow)
}

func TestUseContact(t *testing.T) {
	app, _ := setupTestApp(t, birthdayMorning)

	app.UseContact(contact("John", 1, 12, 1985))

	assert.Equal(t, "1", app.dayEntry.Text)
	assert.Equal(t, "12", app.monthEntry.Text)
	assert.Equal(t, "1985", app.yearEntry.Text)
	assert.Equal(t, "John", app.lastName)
	assert.True(t, app.output.Visible())
	assert.False(t, app.card.Visible())
}
