package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"seat-booking-cli/model"
	"seat-booking-cli/report"
	"seat-booking-cli/service"
	"seat-booking-cli/store"
)

var menuItems = []string{
	"Book a Seat",
	"View Available Seats",
	"View All Bookings",
	"Exit",
}

// prompter asks the operator one question at a time.
type prompter interface {
	Select(label string, items []string) (int, error)
	Input(label string, validate func(string) error) (string, error)
	Confirm(label string) (bool, error)
}

// promptuiPrompter uses the terminal unless stdin and stdout are set.
type promptuiPrompter struct {
	stdin  io.ReadCloser
	stdout io.WriteCloser
}

func (p promptuiPrompter) Select(label string, items []string) (int, error) {
	s := promptui.Select{
		Label:  label,
		Items:  items,
		Size:   len(items),
		Stdin:  p.stdin,
		Stdout: p.stdout,
	}
	index, _, err := s.Run()
	return index, err
}

func (p promptuiPrompter) Input(label string, validate func(string) error) (string, error) {
	prompt := promptui.Prompt{
		Label:    label,
		Validate: validate,
		Stdin:    p.stdin,
		Stdout:   p.stdout,
	}
	return prompt.Run()
}

// Confirm accepts "yes" or "y" in any case; any other answer declines.
func (p promptuiPrompter) Confirm(label string) (bool, error) {
	prompt := promptui.Prompt{
		Label:  label + " (yes/no)",
		Stdin:  p.stdin,
		Stdout: p.stdout,
	}
	answer, err := prompt.Run()
	if err != nil {
		return false, err
	}
	return report.Affirmative(answer), nil
}

func newClassicCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "classic",
		Short: "Guided prompts instead of the full-screen menu",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.setup(); err != nil {
				return err
			}
			defer a.teardown()

			s := &classicSession{
				system:     a.newSystem(),
				prompt:     promptuiPrompter{},
				out:        cmd.OutOrStdout(),
				exportPath: a.cfg.ExportPath(),
				log:        a.log,
			}
			return s.run()
		},
	}
}

type classicSession struct {
	system     *service.BookingSystem
	prompt     prompter
	out        io.Writer
	exportPath string
	log        *slog.Logger
}

func (s *classicSession) println(a ...any) {
	fmt.Fprintln(s.out, a...)
}

func (s *classicSession) run() error {
	s.println(report.Banner())
	for {
		choice, err := s.prompt.Select("Main Menu", menuItems)
		if err != nil {
			if isPromptExit(err) {
				return s.exit()
			}
			return err
		}

		switch choice {
		case 0:
			if err := s.book(); err != nil {
				return err
			}
		case 1:
			s.println(report.Availability(s.system.AvailableSeats(), s.system.Seats()))
		case 2:
			if err := s.listBookings(); err != nil {
				return err
			}
		case 3:
			return s.exit()
		}
	}
}

func (s *classicSession) book() error {
	s.println(report.Section("BOOK A NEW SEAT"))
	name, err := s.prompt.Input("Passenger name", validatePassenger)
	if err != nil {
		return s.abortOnInterrupt(err)
	}

	categoryLabels := make([]string, len(model.Categories))
	for i, c := range model.Categories {
		categoryLabels[i] = report.CategoryLabel(c)
	}
	ci, err := s.prompt.Select("Seat type", categoryLabels)
	if err != nil {
		return s.abortOnInterrupt(err)
	}

	fareLabels := make([]string, len(model.FareClasses))
	for i, f := range model.FareClasses {
		fareLabels[i] = report.FareLabel(f)
	}
	fi, err := s.prompt.Select("Fare class", fareLabels)
	if err != nil {
		return s.abortOnInterrupt(err)
	}

	category := model.Categories[ci]
	booking, err := s.system.BookSeat(name, category, model.FareClasses[fi])
	switch {
	case errors.Is(err, service.ErrNoSeatAvailable):
		s.println(report.Unavailable(category))
	case err != nil:
		s.println(report.Error(err.Error()))
	default:
		s.println(report.Confirmation(booking))
	}
	return nil
}

func (s *classicSession) listBookings() error {
	s.println(report.Bookings(s.system.Bookings(), s.system.Summary()))
	if !s.system.HasBookings() {
		return nil
	}
	save, err := s.prompt.Confirm("Save bookings to CSV")
	if err != nil {
		return s.abortOnInterrupt(err)
	}
	if save {
		s.println(s.export())
	}
	return nil
}

func (s *classicSession) exit() error {
	s.println(report.Farewell())
	if s.system.HasBookings() {
		s.println(s.export())
	}
	return nil
}

func (s *classicSession) export() string {
	err := store.Export(s.exportPath, s.system.Bookings(), s.log)
	return report.ExportResult(s.exportPath, err)
}

// abortOnInterrupt treats ctrl+c or ctrl+d inside a sub-prompt as "back to
// the menu"; any other prompt failure ends the session.
func (s *classicSession) abortOnInterrupt(err error) error {
	if isPromptExit(err) {
		s.println(report.Error("Cancelled"))
		return nil
	}
	return err
}

func isPromptExit(err error) bool {
	return errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF)
}

func validatePassenger(input string) error {
	if strings.TrimSpace(input) == "" {
		return errors.New("name cannot be empty")
	}
	return nil
}
