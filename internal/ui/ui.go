package ui

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/tartampluch/go-dob/internal/config"
	"github.com/tartampluch/go-dob/internal/confetti"
	"github.com/tartampluch/go-dob/internal/engine"
	"github.com/tartampluch/go-dob/internal/report"
)

// DOBApp encapsulates the calculator window, its widgets and the confetti overlay.
type DOBApp struct {
	App      fyne.App
	Window   fyne.Window
	Ctx      context.Context
	Catalog  *report.Catalog
	Calc     *engine.Calculator
	Settings config.Settings
	Burst    *confetti.Burst

	// after schedules the modal auto-hide and the burst timeout.
	after confetti.AfterFunc

	dayEntry   *NumericalEntry
	monthEntry *NumericalEntry
	yearEntry  *NumericalEntry

	resultsGrid *fyne.Container
	output      *fyne.Container
	card        *widget.Card
	copyButton  *widget.Button
	layer       *confettiLayer

	// Result State
	resultMu   sync.Mutex
	lastResult *engine.Result
	lastName   string

	// Modal State
	modal      dialog.Dialog
	modalTimer confetti.Timer
	modalMsg   report.Message

	contactsWindow fyne.Window
}

// NewDOBApp constructs the application and wires dependencies.
func NewDOBApp(a fyne.App, ctx context.Context, settings config.Settings) *DOBApp {
	catalog := report.NewCatalog(config.DefaultLanguage)
	catalog.BurstParticles = settings.Burst.Particles

	return &DOBApp{
		App:      a,
		Ctx:      ctx,
		Catalog:  catalog,
		Calc:     engine.NewCalculator(),
		Settings: settings,
		after: func(d time.Duration, f func()) confetti.Timer {
			return time.AfterFunc(d, f)
		},
	}
}

// Run builds the window and blocks in the Fyne event loop.
func (app *DOBApp) Run() error {
	if err := app.BuildWindow(); err != nil {
		return err
	}
	app.Window.ShowAndRun()
	app.Burst.Stop()
	return nil
}

// BuildWindow creates the main window and its content without showing it.
func (app *DOBApp) BuildWindow() error {
	w := app.App.NewWindow(app.Catalog.Text(config.TKeyWinTitle))
	w.Resize(fyne.NewSize(config.WindowWidth, config.WindowHeight))
	w.SetIcon(theme.CalendarIcon())
	app.Window = w

	app.layer = newConfettiLayer()
	burst, err := confetti.NewBurst(app.layer, &animationTicker{}, app.Settings.Burst, confetti.Options{
		AfterFunc: app.after,
	})
	if err != nil {
		return err
	}
	app.Burst = burst

	content := container.NewStack(app.buildForm(), app.layer.raster)
	w.SetContent(content)

	// Escape dismisses the current notice.
	w.Canvas().SetOnTypedKey(func(ev *fyne.KeyEvent) {
		if ev.Name == fyne.KeyEscape {
			app.hideModal()
		}
	})

	w.SetOnClosed(func() {
		app.Burst.Stop()
	})
	return nil
}

// buildForm assembles the inputs, the buttons, the birthday card and the results grid.
func (app *DOBApp) buildForm() fyne.CanvasObject {
	cat := app.Catalog

	app.dayEntry = NewNumericalEntry(config.MaxDayDigits)
	app.monthEntry = NewNumericalEntry(config.MaxMonthDigits)
	app.yearEntry = NewNumericalEntry(config.MaxYearDigits)

	app.dayEntry.PlaceHolder = cat.Text(config.TKeyLblDay)
	app.monthEntry.PlaceHolder = cat.Text(config.TKeyLblMonth)
	app.yearEntry.PlaceHolder = cat.Text(config.TKeyLblYear)

	// Focus advances as soon as day and month hold two digits.
	app.dayEntry.OnFull = func() { app.focus(app.monthEntry) }
	app.monthEntry.OnFull = func() { app.focus(app.yearEntry) }

	for _, e := range []*NumericalEntry{app.dayEntry, app.monthEntry, app.yearEntry} {
		e.OnSubmitted = func(string) { app.Calculate() }
	}

	dateRow := container.NewGridWithColumns(config.LayoutColumnsDate,
		labelled(cat.Text(config.TKeyLblDay), app.dayEntry),
		labelled(cat.Text(config.TKeyLblMonth), app.monthEntry),
		labelled(cat.Text(config.TKeyLblYear), app.yearEntry),
	)

	btnCalc := widget.NewButtonWithIcon(cat.Text(config.TKeyBtnCalculate), theme.ConfirmIcon(), app.Calculate)
	btnCalc.Importance = widget.HighImportance
	btnClear := widget.NewButtonWithIcon(cat.Text(config.TKeyBtnClear), theme.ContentClearIcon(), app.Clear)
	btnImport := widget.NewButtonWithIcon(cat.Text(config.TKeyBtnImport), theme.FolderOpenIcon(), app.showImportDialog)
	app.copyButton = widget.NewButtonWithIcon(cat.Text(config.TKeyBtnCopyICS), theme.ContentCopyIcon(), app.CopyCalendar)
	app.copyButton.Disable()

	buttons := container.NewGridWithColumns(config.LayoutColumns, btnCalc, btnClear, btnImport, app.copyButton)

	app.card = widget.NewCard(cat.Text(config.TKeyCardTitle), cat.Text(config.TKeyCardSubtitle), nil)
	app.card.Hide()

	app.resultsGrid = container.NewGridWithColumns(config.LayoutColumns)
	app.output = container.NewVBox(app.card, app.resultsGrid)
	app.output.Hide()

	return container.NewVScroll(container.NewPadded(container.NewVBox(
		widget.NewLabelWithStyle(cat.Text(config.TKeyWinTitle), fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
		dateRow,
		buttons,
		widget.NewSeparator(),
		app.output,
	)))
}

func labelled(label string, obj fyne.CanvasObject) fyne.CanvasObject {
	return container.NewBorder(widget.NewLabel(label), nil, nil, nil, obj)
}

func (app *DOBApp) focus(obj fyne.Focusable) {
	if app.Window != nil {
		app.Window.Canvas().Focus(obj)
	}
}

// Input returns the three raw fields.
func (app *DOBApp) Input() engine.Input {
	return engine.Input{
		Day:   app.dayEntry.Text,
		Month: app.monthEntry.Text,
		Year:  app.yearEntry.Text,
	}
}

// Calculate validates the inputs and shows either the result rows or an error notice.
// A running burst is left alone; spawning while it runs is a no-op.
func (app *DOBApp) Calculate() {
	app.hideModal()
	in := app.Input()

	slog.Info(config.LogMsgCalc,
		config.LogKeyComponent, config.CompUI,
		config.LogKeyDay, in.Day,
		config.LogKeyMonth, in.Month,
		config.LogKeyYear, in.Year,
	)

	res, err := app.Calc.Calculate(in)
	if err != nil {
		app.showModal(app.Catalog.Describe(err))
		return
	}

	rep := app.Catalog.Build(res)
	app.showReport(rep)

	app.resultMu.Lock()
	app.lastResult = &res
	app.resultMu.Unlock()
	app.copyButton.Enable()

	if rep.Celebrate {
		app.Burst.Spawn(rep.BurstParticles)
	}
}

// showReport replaces the results grid with rep's rows.
func (app *DOBApp) showReport(rep report.Report) {
	objects := make([]fyne.CanvasObject, 0, 2*len(rep.Rows))
	for _, row := range rep.Rows {
		title := widget.NewLabelWithStyle(row.Label, fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
		value := widget.NewLabel(row.Value)
		value.Wrapping = fyne.TextWrapWord
		objects = append(objects, title, value)
	}
	app.resultsGrid.Objects = objects
	app.resultsGrid.Refresh()

	if rep.Celebrate {
		app.card.Show()
	} else {
		app.card.Hide()
	}
	app.output.Show()
}

// Clear resets the inputs and hides the results. A running burst finishes on its own.
func (app *DOBApp) Clear() {
	app.dayEntry.SetText("")
	app.monthEntry.SetText("")
	app.yearEntry.SetText("")

	app.resultsGrid.Objects = nil
	app.resultsGrid.Refresh()
	app.card.Hide()
	app.output.Hide()

	app.resultMu.Lock()
	app.lastResult = nil
	app.lastName = ""
	app.resultMu.Unlock()
	app.copyButton.Disable()

	app.focus(app.dayEntry)
	slog.Debug(config.LogMsgCleared, config.LogKeyComponent, config.CompUI)
}

// showModal displays msg and hides it after config.ModalAutoHide.
func (app *DOBApp) showModal(msg report.Message) {
	app.hideModal()

	d := dialog.NewInformation(msg.Title, msg.Text, app.Window)
	d.SetOnClosed(func() {
		if app.modal == d {
			app.modal = nil
		}
	})
	app.modal = d
	app.modalMsg = msg
	d.Show()

	app.modalTimer = app.after(config.ModalAutoHide, func() {
		fyne.Do(func() {
			if app.modal == d {
				d.Hide()
			}
		})
	})
}

func (app *DOBApp) hideModal() {
	if app.modalTimer != nil {
		app.modalTimer.Stop()
		app.modalTimer = nil
	}
	if app.modal != nil {
		d := app.modal
		app.modal = nil
		d.Hide()
	}
}

// showImportDialog lets the user pick a .vcf file.
func (app *DOBApp) showImportDialog() {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			app.showImportError(err)
			return
		}
		if reader == nil {
			return // Cancelled
		}
		defer func() { _ = reader.Close() }()

		if err := app.ImportFrom(reader); err != nil {
			app.showImportError(err)
		}
	}, app.Window)
	fd.SetFilter(storage.NewExtensionFileFilter([]string{config.VCardExtension}))
	fd.Show()
}

// ImportFrom reads contacts from a vCard stream. A single usable contact is calculated
// right away; several open the contacts picker.
func (app *DOBApp) ImportFrom(r io.Reader) error {
	contacts, err := engine.ReadContacts(app.Ctx, r)
	if err != nil {
		return err
	}

	withYear := make([]engine.Contact, 0, len(contacts))
	for _, c := range contacts {
		if c.YearKnown {
			withYear = append(withYear, c)
		}
	}

	switch len(withYear) {
	case 0:
		_, err := engine.FirstWithYear(contacts)
		return err
	case 1:
		app.UseContact(withYear[0])
	default:
		app.ShowContactsWindow(withYear)
	}
	return nil
}

// UseContact fills the inputs from c and calculates.
func (app *DOBApp) UseContact(c engine.Contact) {
	in := c.Input()
	app.dayEntry.SetText(in.Day)
	app.monthEntry.SetText(in.Month)
	app.yearEntry.SetText(in.Year)

	app.Calculate()

	app.resultMu.Lock()
	app.lastName = c.Name
	app.resultMu.Unlock()

	slog.Info(config.LogMsgImported,
		config.LogKeyComponent, config.CompUI,
		config.LogKeyName, c.Name,
	)
}

func (app *DOBApp) showImportError(err error) {
	slog.Warn(config.ErrVCardParse,
		config.LogKeyComponent, config.CompUI,
		config.LogKeyError, err,
	)
	dialog.ShowError(fmt.Errorf("%s: %w", app.Catalog.Text(config.TKeyErrImportTitle), err), app.Window)
}

// CopyCalendar puts the next birthday on the clipboard as an iCalendar document.
func (app *DOBApp) CopyCalendar() {
	app.resultMu.Lock()
	last, name := app.lastResult, app.lastName
	app.resultMu.Unlock()
	if last == nil {
		return
	}

	ics, err := engine.NextBirthdayCalendar(*last, name, app.Calc.Now())
	if err != nil {
		dialog.ShowError(err, app.Window)
		return
	}

	clip := app.App.Clipboard()
	if clip == nil {
		slog.Warn(config.ErrClipboardMissing, config.LogKeyComponent, config.CompUI)
		return
	}
	clip.SetContent(string(ics))

	app.App.SendNotification(fyne.NewNotification(config.AppName, app.Catalog.Text(config.TKeyNotifCopied)))
	slog.Info(config.LogMsgCopied, config.LogKeyComponent, config.CompUI)
}
