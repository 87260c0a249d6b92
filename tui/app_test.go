package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"seat-booking-cli/model"
	"seat-booking-cli/service"
)

func newTestModel(t *testing.T) (appModel, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data", "bookings.csv")
	return New(service.NewBookingSystem(), path, nil).(appModel), path
}

// submit types value into the prompt and presses enter.
func submit(t *testing.T, m appModel, value string) (appModel, tea.Cmd) {
	t.Helper()
	var next tea.Model = m
	if value != "" {
		next, _ = next.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(value)})
	}
	next, cmd := next.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return next.(appModel), cmd
}

func submitAll(t *testing.T, m appModel, values ...string) appModel {
	t.Helper()
	for _, v := range values {
		m, _ = submit(t, m, v)
	}
	return m
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func TestBookSeat_WindowEconomy(t *testing.T) {
	m, _ := newTestModel(t)

	m = submitAll(t, m, "1", "Alice", "1", "1")
	if m.state != stateResult {
		t.Fatalf("expected result state, got %v", m.state)
	}
	for _, want := range []string{"BOOKING CONFIRMED!", "BK001", "1A", "₹4,500.00"} {
		if !strings.Contains(m.View(), want) {
			t.Fatalf("expected %q in view:\n%s", want, m.View())
		}
	}
	if got := len(m.system.AvailableSeats().Window); got != 9 {
		t.Fatalf("expected 9 window seats left, got %d", got)
	}

	m, _ = submit(t, m, "")
	if m.state != stateMenu {
		t.Fatalf("expected enter to return to menu, got %v", m.state)
	}
}

func TestBookSeat_PromptsFollowFlow(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = submit(t, m, "1")
	if m.state != stateEnterName || !strings.Contains(m.View(), "Enter passenger name") {
		t.Fatalf("expected name prompt, got:\n%s", m.View())
	}
	m, _ = submit(t, m, "Bob")
	if m.state != stateSelectCategory || !strings.Contains(m.View(), "2. Aisle (₹5,000)") {
		t.Fatalf("expected category prompt, got:\n%s", m.View())
	}
	m, _ = submit(t, m, "2")
	if m.state != stateSelectFare || !strings.Contains(m.View(), "Seat Type: Aisle") {
		t.Fatalf("expected fare prompt, got:\n%s", m.View())
	}
	m, _ = submit(t, m, "2")
	if !strings.Contains(m.View(), "₹12,500.00") {
		t.Fatalf("expected business aisle price, got:\n%s", m.View())
	}
}

func TestBookSeat_EmptyNameRejected(t *testing.T) {
	m, _ := newTestModel(t)

	m = submitAll(t, m, "1", "   ")
	if !strings.Contains(m.View(), "Name cannot be empty!") {
		t.Fatalf("expected validation message, got:\n%s", m.View())
	}
	if m.system.HasBookings() {
		t.Fatal("expected no booking")
	}
}

func TestBookSeat_InvalidChoicesAbort(t *testing.T) {
	cases := map[string][]string{
		"category": {"1", "Alice", "9"},
		"fare":     {"1", "Alice", "1", "0"},
		"text":     {"1", "Alice", "window"},
	}
	for name, inputs := range cases {
		t.Run(name, func(t *testing.T) {
			m, _ := newTestModel(t)
			m = submitAll(t, m, inputs...)
			if m.state != stateResult || !strings.Contains(m.View(), "Invalid choice!") {
				t.Fatalf("expected invalid choice, got:\n%s", m.View())
			}
			if m.system.HasBookings() {
				t.Fatal("expected no booking")
			}
		})
	}
}

func TestBookSeat_CategoryExhausted(t *testing.T) {
	m, _ := newTestModel(t)
	for i := 0; i < 10; i++ {
		if _, err := m.system.BookSeat("P", model.Aisle, model.Economy); err != nil {
			t.Fatal(err)
		}
	}

	m = submitAll(t, m, "1", "Late", "2", "1")
	if !strings.Contains(m.View(), "Sorry, no Aisle seats available!") {
		t.Fatalf("expected unavailable message, got:\n%s", m.View())
	}
	if got := m.system.Summary().Bookings; got != 10 {
		t.Fatalf("expected 10 bookings, got %d", got)
	}
}

func TestMenu_InvalidChoice(t *testing.T) {
	m, _ := newTestModel(t)

	m, cmd := submit(t, m, "7")
	if isQuit(cmd) {
		t.Fatal("invalid choice must not quit")
	}
	if !strings.Contains(m.View(), "Invalid choice! Please enter 1-4") {
		t.Fatalf("expected invalid choice message, got:\n%s", m.View())
	}
}

func TestMenu_Esc_ReturnsFromBookingFlow(t *testing.T) {
	m, _ := newTestModel(t)
	m = submitAll(t, m, "1", "Alice")

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(appModel)
	if m.state != stateMenu {
		t.Fatalf("expected menu, got %v", m.state)
	}
}

func TestViewAvailableSeats(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = submit(t, m, "2")
	if m.state != stateResult {
		t.Fatalf("expected result state, got %v", m.state)
	}
	if !strings.Contains(m.View(), "Total Available: 30/30") {
		t.Fatalf("unexpected view:\n%s", m.View())
	}
}

func TestViewBookings_EmptyDoesNotOfferExport(t *testing.T) {
	m, path := newTestModel(t)

	m, _ = submit(t, m, "3")
	if m.state != stateResult {
		t.Fatalf("expected result state, got %v", m.state)
	}
	if !strings.Contains(m.View(), "No bookings yet!") {
		t.Fatalf("unexpected view:\n%s", m.View())
	}
	if fileExists(path) {
		t.Fatal("expected no export file")
	}
}

func TestViewBookings_ExportOnYes(t *testing.T) {
	for _, answer := range []string{"yes", "Y", "YES"} {
		t.Run(answer, func(t *testing.T) {
			m, path := newTestModel(t)
			m = submitAll(t, m, "1", "Alice", "1", "1", "")

			m, _ = submit(t, m, "3")
			if m.state != stateConfirmExport {
				t.Fatalf("expected export prompt, got %v", m.state)
			}
			if !strings.Contains(m.View(), "Occupancy: 1/30 seats (3%)") {
				t.Fatalf("unexpected view:\n%s", m.View())
			}

			m, _ = submit(t, m, answer)
			if !fileExists(path) {
				t.Fatal("expected export file")
			}
			if !strings.Contains(m.View(), "Data saved to") {
				t.Fatalf("expected save message, got:\n%s", m.View())
			}
		})
	}
}

func TestViewBookings_NoExportOnNo(t *testing.T) {
	m, path := newTestModel(t)
	m = submitAll(t, m, "1", "Alice", "1", "1", "", "3", "no")

	if m.state != stateResult {
		t.Fatalf("expected result state, got %v", m.state)
	}
	if fileExists(path) {
		t.Fatal("expected no export file")
	}
}

func TestViewBookings_ExportFailureIsReported(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "data")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	m := New(service.NewBookingSystem(), filepath.Join(blocker, "bookings.csv"), nil).(appModel)

	m = submitAll(t, m, "1", "Alice", "1", "1", "", "3", "y")
	if !strings.Contains(m.View(), "Error saving") {
		t.Fatalf("expected error message, got:\n%s", m.View())
	}
	m, _ = submit(t, m, "")
	if m.state != stateMenu || !m.system.HasBookings() {
		t.Fatal("expected session to continue with ledger intact")
	}
}

func TestExit_WithoutBookingsSkipsExport(t *testing.T) {
	m, path := newTestModel(t)

	m, cmd := submit(t, m, "4")
	if !isQuit(cmd) {
		t.Fatal("expected quit")
	}
	if fileExists(path) {
		t.Fatal("expected no export file")
	}
	if !strings.Contains(m.View(), "Thank you for using our system!") {
		t.Fatalf("expected farewell, got:\n%s", m.View())
	}
	if got := ExitMessage(m); !strings.Contains(got, "Thank you for using our system!") || strings.Contains(got, "Data saved") {
		t.Fatalf("unexpected exit message:\n%s", got)
	}
}

func TestExit_WithBookingsExports(t *testing.T) {
	m, path := newTestModel(t)
	m = submitAll(t, m, "1", "Alice", "1", "1", "")

	m, cmd := submit(t, m, "4")
	if !isQuit(cmd) {
		t.Fatal("expected quit")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("expected export file, got %v", err)
	}
	if !strings.Contains(string(data), "BK001,Alice,1A,Window,Economy,4500.0") {
		t.Fatalf("unexpected export:\n%s", data)
	}
	if m.state != stateDone {
		t.Fatalf("expected done state, got %v", m.state)
	}
	if got := ExitMessage(m); !strings.Contains(got, "Data saved to "+path) {
		t.Fatalf("expected export outcome in exit message, got:\n%s", got)
	}
}

func TestExit_ExportFailureSurvivesQuit(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "data")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	m := New(service.NewBookingSystem(), filepath.Join(blocker, "bookings.csv"), nil).(appModel)
	m = submitAll(t, m, "1", "Alice", "1", "1", "")

	m, cmd := submit(t, m, "4")
	if !isQuit(cmd) {
		t.Fatal("expected quit")
	}
	got := ExitMessage(m)
	if !strings.Contains(got, "Thank you for using our system!") || !strings.Contains(got, "Error saving") {
		t.Fatalf("expected farewell and export error, got:\n%s", got)
	}
}

func TestExitMessage_EmptyUnlessExited(t *testing.T) {
	m, _ := newTestModel(t)
	if got := ExitMessage(m); got != "" {
		t.Fatalf("expected no message at the menu, got %q", got)
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if !isQuit(cmd) {
		t.Fatal("expected quit")
	}
	if got := ExitMessage(next); got != "" {
		t.Fatalf("expected no message after ctrl+c, got %q", got)
	}
}

func TestEnterName_LongNameKept(t *testing.T) {
	m, _ := newTestModel(t)
	name := strings.Repeat("Maximilian ", 10) + "Okonkwo-Vandenberghe"

	m = submitAll(t, m, "1", name, "1", "1")
	bookings := m.system.Bookings()
	if len(bookings) != 1 || bookings[0].Passenger != name {
		t.Fatalf("expected passenger %q, got %+v", name, bookings)
	}
}

func TestPick(t *testing.T) {
	if got, ok := pick(model.Categories, "3"); !ok || got != model.Middle {
		t.Fatalf("expected Middle, got %v %v", got, ok)
	}
	for _, bad := range []string{"", "0", "4", "-1", "one"} {
		if _, ok := pick(model.Categories, bad); ok {
			t.Fatalf("expected %q to be rejected", bad)
		}
	}
}
