package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"
)

// NumericalEntry is a custom Entry widget that only accepts digits, up to MaxLength of them.
// It embeds widget.Entry to inherit all standard behavior.
type NumericalEntry struct {
	widget.Entry

	// MaxLength caps the number of digits. Zero means unlimited.
	MaxLength int

	// OnFull is called after a keystroke fills the entry to MaxLength.
	OnFull func()
}

// NewNumericalEntry creates a new instance of NumericalEntry.
func NewNumericalEntry(maxLength int) *NumericalEntry {
	entry := &NumericalEntry{MaxLength: maxLength}
	entry.ExtendBaseWidget(entry)
	return entry
}

// TypedRune intercepts text input events.
// It filters characters to allow only digits (0-9) and enforces MaxLength.
func (e *NumericalEntry) TypedRune(r rune) {
	if r < '0' || r > '9' {
		return
	}
	if e.full() && e.SelectedText() == "" {
		return
	}

	e.Entry.TypedRune(r)

	if e.full() && e.OnFull != nil {
		e.OnFull()
	}
}

// TypedShortcut filters pasted text down to its digits.
func (e *NumericalEntry) TypedShortcut(s fyne.Shortcut) {
	paste, ok := s.(*fyne.ShortcutPaste)
	if !ok {
		e.Entry.TypedShortcut(s)
		return
	}
	if paste.Clipboard == nil {
		return
	}
	for _, r := range paste.Clipboard.Content() {
		e.TypedRune(r)
	}
}

// Keyboard overrides the default keyboard type.
// This ensures that on mobile devices, a numeric keypad is shown.
func (e *NumericalEntry) Keyboard() mobile.KeyboardType {
	return mobile.NumberKeyboard
}

func (e *NumericalEntry) full() bool {
	return e.MaxLength > 0 && len([]rune(e.Text)) >= e.MaxLength
}
