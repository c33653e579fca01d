// Package tui is the terminal rendition of the calculator, with confetti drawn in cells.
package tui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tartampluch/go-dob/internal/config"
	"github.com/tartampluch/go-dob/internal/confetti"
	"github.com/tartampluch/go-dob/internal/engine"
	"github.com/tartampluch/go-dob/internal/report"
)

const (
	fieldDay = iota
	fieldMonth
	fieldYear
	fieldCount
)

// noticeExpiredMsg hides the error notice it was scheduled for.
type noticeExpiredMsg struct{ seq int }

// Model is the bubbletea model of the terminal calculator.
type Model struct {
	calc    *engine.Calculator
	catalog *report.Catalog
	burst   *confetti.Burst
	surface *cellSurface
	ticker  *msgTicker
	styles  Styles

	inputs []textinput.Model
	focus  int

	report    *report.Report
	notice    *report.Message
	noticeSeq int
	quitting  bool
}

// New builds the model. opts is handed to the confetti burst.
func New(calc *engine.Calculator, settings config.Settings, opts confetti.Options) (Model, error) {
	catalog := report.NewCatalog(config.DefaultLanguage)
	catalog.BurstParticles = settings.Burst.Particles

	surface := newCellSurface(config.TUIWidth, config.TUIBurstRows)
	ticker := &msgTicker{}
	burst, err := confetti.NewBurst(surface, ticker, settings.Burst, opts)
	if err != nil {
		return Model{}, err
	}

	m := Model{
		calc:    calc,
		catalog: catalog,
		burst:   burst,
		surface: surface,
		ticker:  ticker,
		styles:  DefaultStyles(),
	}

	for _, limit := range []int{config.MaxDayDigits, config.MaxMonthDigits, config.MaxYearDigits} {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = strings.Repeat("_", limit)
		ti.CharLimit = limit
		ti.Width = limit + 1
		m.inputs = append(m.inputs, ti)
	}
	m.inputs[fieldDay].Focus()
	return m, nil
}

// Run starts the terminal program and blocks until the user quits or ctx is done.
func Run(ctx context.Context, settings config.Settings) error {
	m, err := New(engine.NewCalculator(), settings, confetti.Options{})
	if err != nil {
		return err
	}
	defer m.burst.Stop()

	p := tea.NewProgram(m, tea.WithContext(ctx), tea.WithAltScreen())
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("%s: %w", config.ErrTUIFailed, err)
	}
	return nil
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.surface.Resize(msg.Width)
		return m, nil

	case frameMsg:
		if m.ticker.Frame(time.Time(msg)) {
			return m, frameCmd()
		}
		return m, nil

	case noticeExpiredMsg:
		if msg.seq == m.noticeSeq {
			m.notice = nil
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m.quit()
		case "esc":
			if m.notice != nil {
				m.notice = nil
				return m, nil
			}
			return m.quit()
		case "enter":
			return m.calculate()
		case "ctrl+l":
			return m.clear()
		case "tab", "down":
			return m.setFocus(m.focus + 1)
		case "shift+tab", "up":
			return m.setFocus(m.focus - 1)
		}

		if msg.Type == tea.KeyRunes {
			msg.Runes = digitsOnly(msg.Runes)
			if len(msg.Runes) == 0 {
				return m, nil
			}
		}
		return m.updateInput(msg)
	}

	return m.updateInput(msg)
}

// updateInput forwards msg to the focused field, advancing when day or month fills up.
func (m Model) updateInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)

	if key, typed := msg.(tea.KeyMsg); typed && key.Type == tea.KeyRunes && m.focus < fieldYear {
		in := m.inputs[m.focus]
		if len(in.Value()) >= in.CharLimit {
			next, focusCmd := m.setFocus(m.focus + 1)
			return next, tea.Batch(cmd, focusCmd)
		}
	}
	return m, cmd
}

func (m Model) setFocus(i int) (tea.Model, tea.Cmd) {
	i = (i + fieldCount) % fieldCount
	m.inputs[m.focus].Blur()
	m.focus = i
	return m, m.inputs[i].Focus()
}

func (m Model) input() engine.Input {
	return engine.Input{
		Day:   m.inputs[fieldDay].Value(),
		Month: m.inputs[fieldMonth].Value(),
		Year:  m.inputs[fieldYear].Value(),
	}
}

func (m Model) calculate() (tea.Model, tea.Cmd) {
	in := m.input()
	slog.Info(config.LogMsgCalc,
		config.LogKeyComponent, config.CompTUI,
		config.LogKeyDay, in.Day,
		config.LogKeyMonth, in.Month,
		config.LogKeyYear, in.Year,
	)

	res, err := m.calc.Calculate(in)
	if err != nil {
		notice := m.catalog.Describe(err)
		m.notice = &notice
		m.noticeSeq++
		seq := m.noticeSeq
		return m, tea.Tick(config.ModalAutoHide, func(time.Time) tea.Msg {
			return noticeExpiredMsg{seq: seq}
		})
	}

	rep := m.catalog.Build(res)
	m.report = &rep
	m.notice = nil

	if rep.Celebrate && m.burst.Spawn(rep.BurstParticles) {
		return m, frameCmd()
	}
	return m, nil
}

// clear resets the fields and the result. A running burst finishes on its own.
func (m Model) clear() (tea.Model, tea.Cmd) {
	for i := range m.inputs {
		m.inputs[i].Reset()
	}
	m.report = nil
	m.notice = nil
	slog.Debug(config.LogMsgCleared, config.LogKeyComponent, config.CompTUI)
	return m.setFocus(fieldDay)
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.burst.Stop()
	m.quitting = true
	return m, tea.Quit
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	s := m.styles
	var b strings.Builder

	if !m.surface.Empty() {
		b.WriteString(m.surface.Render())
		b.WriteString("\n")
	}

	b.WriteString(s.Title.Render(m.catalog.Text(config.TKeyWinTitle)))
	b.WriteString("\n")

	labels := []string{config.TKeyLblDay, config.TKeyLblMonth, config.TKeyLblYear}
	for i, key := range labels {
		b.WriteString(s.Label.Render(m.catalog.Text(key)))
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n")
	}

	if m.notice != nil {
		b.WriteString("\n")
		b.WriteString(s.ErrorTitle.Render(m.notice.Title))
		b.WriteString("\n")
		b.WriteString(s.ErrorText.Render(m.notice.Text))
		b.WriteString("\n")
	}

	if m.report != nil {
		b.WriteString("\n")
		if m.report.Celebrate {
			card := m.catalog.Text(config.TKeyCardTitle) + "\n" + m.catalog.Text(config.TKeyCardSubtitle)
			b.WriteString(s.Card.Render(card))
			b.WriteString("\n")
		}
		for _, row := range m.report.Rows {
			b.WriteString(s.Label.Render(row.Label))
			b.WriteString(s.Value.Render(row.Value))
			b.WriteString("\n")
		}
	}

	b.WriteString(s.Help.Render(m.catalog.Text(config.TKeyTUIHelp)))
	return b.String()
}

func frameCmd() tea.Cmd {
	return tea.Tick(config.TUIFrameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func digitsOnly(runes []rune) []rune {
	out := runes[:0:0]
	for _, r := range runes {
		if r >= '0' && r <= '9' {
			out = append(out, r)
		}
	}
	return out
}
