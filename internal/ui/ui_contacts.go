package ui

import (
	"log/slog"
	"sort"
	"strconv"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/tartampluch/go-dob/internal/config"
	"github.com/tartampluch/go-dob/internal/engine"
)

// contactRow is one imported contact as displayed in the picker.
type contactRow struct {
	Contact engine.Contact
	Birth   time.Time
	Age     int // -1 when the year is unknown or the date is not valid today.
}

func newContactRows(contacts []engine.Contact, now time.Time) []contactRow {
	rows := make([]contactRow, 0, len(contacts))
	for _, c := range contacts {
		row := contactRow{
			Contact: c,
			Birth:   time.Date(c.Birth.Year, time.Month(c.Birth.Month), c.Birth.Day, 0, 0, 0, 0, time.UTC),
			Age:     -1,
		}
		if c.YearKnown {
			if b, err := engine.Validate(c.Birth, now); err == nil {
				row.Age = engine.Age(b, now)
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// sortContactRows orders rows by the given column. Unknown ages sink to the bottom in ascending order.
func sortContactRows(rows []contactRow, col int, asc bool) {
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		var less bool
		switch col {
		case config.ColIDName:
			less = strings.ToLower(a.Contact.Name) < strings.ToLower(b.Contact.Name)
		case config.ColIDAge:
			switch {
			case a.Age < 0 && b.Age >= 0:
				less = false
			case a.Age >= 0 && b.Age < 0:
				less = true
			default:
				less = a.Age < b.Age
			}
		default: // config.ColIDDate
			am, bm := a.Contact.Birth.Month*100+a.Contact.Birth.Day, b.Contact.Birth.Month*100+b.Contact.Birth.Day
			if am == bm {
				// Secondary sort key: Name
				less = a.Contact.Name < b.Contact.Name
			} else {
				less = am < bm
			}
		}

		if !asc {
			return !less
		}
		return less
	})
}

func (r contactRow) dateText() string {
	if r.Contact.YearKnown {
		return r.Birth.Format(config.DateFormatDisplay)
	}
	return r.Birth.Format(config.DateFormatNoYear)
}

func (r contactRow) ageText() string {
	if r.Age < 0 {
		return config.AgeUnknown
	}
	return strconv.Itoa(r.Age)
}

// ShowContactsWindow lists imported contacts in a sortable table.
// Selecting a row fills the inputs with that contact and calculates.
// It implements a singleton pattern: if the window is already open, it is replaced.
func (app *DOBApp) ShowContactsWindow(contacts []engine.Contact) {
	if app.contactsWindow != nil {
		app.contactsWindow.Close()
	}

	w := app.App.NewWindow(app.Catalog.Text(config.TKeyWinContacts))
	w.Resize(fyne.NewSize(config.ContactsWinWidth, config.ContactsWinHeight))
	app.contactsWindow = w

	rows := newContactRows(contacts, app.Calc.Now())

	slog.Info(config.LogMsgOpenWin,
		config.LogKeyComponent, config.CompUI,
		config.LogKeyCount, len(rows))

	// Internal Sorting State
	currentSortCol := config.ColIDDate
	sortAsc := true

	performSort := func() {
		sortContactRows(rows, currentSortCol, sortAsc)
		slog.Debug(config.LogMsgSorted,
			config.LogKeyComponent, config.CompUI,
			config.LogKeySortCol, currentSortCol,
			config.LogKeySortAsc, sortAsc)
	}
	performSort()

	table := widget.NewTable(
		func() (int, int) {
			return len(rows), 3
		},
		func() fyne.CanvasObject {
			return widget.NewLabel(config.TablePlaceholder)
		},
		func(id widget.TableCellID, o fyne.CanvasObject) {
			label := o.(*widget.Label)
			if id.Row >= len(rows) {
				return
			}
			r := rows[id.Row]

			switch id.Col {
			case config.ColIDName:
				label.SetText(r.Contact.Name)
			case config.ColIDDate:
				label.SetText(r.dateText())
			case config.ColIDAge:
				label.SetText(r.ageText())
			}
		},
	)

	table.ShowHeaderRow = true
	table.CreateHeader = func() fyne.CanvasObject {
		return widget.NewButton(config.TablePlaceholder, func() {})
	}
	table.UpdateHeader = func(id widget.TableCellID, o fyne.CanvasObject) {
		btn := o.(*widget.Button)

		var titleKey string
		switch id.Col {
		case config.ColIDName:
			titleKey = config.TKeyColName
		case config.ColIDDate:
			titleKey = config.TKeyColBirthday
		case config.ColIDAge:
			titleKey = config.TKeyColAge
		}

		text := app.Catalog.Text(titleKey)
		if id.Col == currentSortCol {
			if sortAsc {
				text += config.SortIconAsc
			} else {
				text += config.SortIconDesc
			}
		}
		btn.SetText(text)

		btn.OnTapped = func() {
			if currentSortCol == id.Col {
				sortAsc = !sortAsc
			} else {
				currentSortCol = id.Col
				sortAsc = true
			}
			performSort()
			table.Refresh()
		}
	}

	table.OnSelected = func(id widget.TableCellID) {
		if id.Row < 0 || id.Row >= len(rows) {
			return
		}
		picked := rows[id.Row].Contact
		slog.Info(config.LogMsgPicked,
			config.LogKeyComponent, config.CompUI,
			config.LogKeyName, picked.Name)

		w.Close()
		app.UseContact(picked)
	}

	table.SetColumnWidth(config.ColIDName, config.ColWidthName)
	table.SetColumnWidth(config.ColIDDate, config.ColWidthDate)
	table.SetColumnWidth(config.ColIDAge, config.ColWidthAge)

	w.SetContent(container.NewBorder(nil, nil, nil, nil, table))
	w.SetOnClosed(func() {
		if app.contactsWindow == w {
			app.contactsWindow = nil
		}
	})
	w.Show()
}
