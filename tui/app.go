package tui

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"seat-booking-cli/model"
	"seat-booking-cli/report"
	"seat-booking-cli/service"
	"seat-booking-cli/store"
)

type appState int

const (
	stateMenu appState = iota
	stateEnterName
	stateSelectCategory
	stateSelectFare
	stateConfirmExport
	stateResult
	stateDone
)

type appModel struct {
	system     *service.BookingSystem
	exportPath string
	logger     *slog.Logger

	state appState
	input textinput.Model

	width  int
	height int

	// body is the output of the last action, shown until Enter is pressed.
	body string

	passenger string
	category  model.Category
}

// New returns the menu model driving system. Exports go to exportPath.
func New(system *service.BookingSystem, exportPath string, logger *slog.Logger) tea.Model {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	ti := textinput.New()
	ti.Focus()

	m := appModel{
		system:     system,
		exportPath: exportPath,
		logger:     logger,
		input:      ti,
	}
	m.enter(stateMenu)
	return m
}

func (m appModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.width > 4 {
			m.input.Width = m.width - 4
		}
		return m, nil

	case tea.KeyMsg:
		if next, cmd, handled := m.handleKey(msg); handled {
			return next, cmd
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	switch msg.String() {
	case "ctrl+c":
		m.logger.Info("session interrupted", "bookings", len(m.system.Bookings()))
		return m, tea.Quit, true
	case "esc":
		if m.state == stateEnterName || m.state == stateSelectCategory || m.state == stateSelectFare {
			m.enter(stateMenu)
			return m, nil, true
		}
	}
	if msg.Type != tea.KeyEnter {
		if m.state == stateResult {
			return m, nil, true
		}
		return m, nil, false
	}

	value := strings.TrimSpace(m.input.Value())
	m.input.Reset()

	switch m.state {
	case stateMenu:
		return m.handleMenuChoice(value)
	case stateEnterName:
		if value == "" {
			return m.showResult(report.Error("Name cannot be empty!")), nil, true
		}
		m.passenger = value
		m.enter(stateSelectCategory)
		return m, nil, true
	case stateSelectCategory:
		category, ok := pick(model.Categories, value)
		if !ok {
			return m.showResult(report.Error("Invalid choice!")), nil, true
		}
		m.category = category
		m.enter(stateSelectFare)
		return m, nil, true
	case stateSelectFare:
		fare, ok := pick(model.FareClasses, value)
		if !ok {
			return m.showResult(report.Error("Invalid choice!")), nil, true
		}
		return m.book(fare), nil, true
	case stateConfirmExport:
		if report.Affirmative(value) {
			m.body += "\n\n" + m.export()
		}
		m.enter(stateResult)
		return m, nil, true
	case stateResult:
		m.enter(stateMenu)
		return m, nil, true
	}
	return m, nil, false
}

func (m appModel) handleMenuChoice(choice string) (tea.Model, tea.Cmd, bool) {
	switch choice {
	case "1":
		m.passenger = ""
		m.category = ""
		m.enter(stateEnterName)
		return m, nil, true
	case "2":
		return m.showResult(report.Availability(m.system.AvailableSeats(), m.system.Seats())), nil, true
	case "3":
		m.body = report.Bookings(m.system.Bookings(), m.system.Summary())
		if m.system.HasBookings() {
			m.enter(stateConfirmExport)
		} else {
			m.enter(stateResult)
		}
		return m, nil, true
	case "4":
		return m.exit()
	default:
		return m.showResult(report.Error("Invalid choice! Please enter 1-4")), nil, true
	}
}

func (m appModel) book(fare model.FareClass) appModel {
	booking, err := m.system.BookSeat(m.passenger, m.category, fare)
	if err != nil {
		if errors.Is(err, service.ErrNoSeatAvailable) {
			return m.showResult(report.Unavailable(m.category))
		}
		return m.showResult(report.Error(err.Error()))
	}
	return m.showResult(report.Confirmation(booking))
}

func (m appModel) exit() (tea.Model, tea.Cmd, bool) {
	body := report.Farewell()
	if m.system.HasBookings() {
		body += "\n" + m.export()
	}
	m.body = body
	m.enter(stateDone)
	m.logger.Info("session finished", "bookings", len(m.system.Bookings()))
	return m, tea.Quit, true
}

// ExitMessage returns what the menu printed on Exit: the farewell and the
// outcome of the automatic export. It is empty when the session ended any
// other way.
func ExitMessage(final tea.Model) string {
	m, ok := final.(appModel)
	if !ok || m.state != stateDone {
		return ""
	}
	return m.body
}

func (m appModel) export() string {
	err := store.Export(m.exportPath, m.system.Bookings(), m.logger)
	return report.ExportResult(m.exportPath, err)
}

func (m appModel) showResult(body string) appModel {
	m.body = body
	m.enter(stateResult)
	return m
}

func (m *appModel) enter(state appState) {
	m.state = state
	m.input.Reset()
	switch state {
	case stateMenu:
		m.body = ""
		m.input.Prompt = "Enter your choice (1-4): "
	case stateEnterName:
		m.input.Prompt = "Enter passenger name: "
	case stateSelectCategory:
		m.input.Prompt = "Choose seat type (1-3): "
	case stateSelectFare:
		m.input.Prompt = "Choose fare class (1-3): "
	case stateConfirmExport:
		m.input.Prompt = "Save bookings to CSV? (yes/no): "
	default:
		m.input.Prompt = ""
	}
}

func (m appModel) View() string {
	header := report.Banner()
	switch m.state {
	case stateMenu:
		return header + "\n\n" + report.Menu() + "\n\n" + m.input.View() + "\n\n" + hint("ctrl+c quit")
	case stateEnterName:
		return header + "\n\n" + report.Section("BOOK A NEW SEAT") + "\n\n" + m.input.View() + "\n\n" + hint("esc back to menu • ctrl+c quit")
	case stateSelectCategory:
		return header + "\n\n" + m.bookingHeader() + "\n\n" + report.CategoryOptions() + "\n\n" + m.input.View() + "\n\n" + hint("esc back to menu • ctrl+c quit")
	case stateSelectFare:
		return header + "\n\n" + m.bookingHeader() + "\n\n" + report.FareOptions() + "\n\n" + m.input.View() + "\n\n" + hint("esc back to menu • ctrl+c quit")
	case stateConfirmExport:
		return header + "\n\n" + m.body + "\n\n" + m.input.View()
	case stateResult:
		return header + "\n\n" + m.body + "\n\n" + hint("Press Enter to continue...")
	case stateDone:
		return m.body + "\n"
	default:
		return header
	}
}

func (m appModel) bookingHeader() string {
	sub := []string{fmt.Sprintf("Passenger: %s", m.passenger)}
	if m.category != "" {
		sub = append(sub, fmt.Sprintf("Seat Type: %s", m.category))
	}
	return report.Section("BOOK A NEW SEAT") + "\n" + hint(strings.Join(sub, " • "))
}

func hint(text string) string {
	return lipgloss.NewStyle().Faint(true).Render(text)
}

// pick maps a 1-based menu answer onto options.
func pick[T any](options []T, answer string) (T, bool) {
	var zero T
	n, err := strconv.Atoi(strings.TrimSpace(answer))
	if err != nil || n < 1 || n > len(options) {
		return zero, false
	}
	return options[n-1], true
}
