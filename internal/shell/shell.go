// Package shell is the interactive terminal front end: a three item menu and
// two forms that stay open until a submission succeeds or the user gives up.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"vaxreg/internal/records/models"
	"vaxreg/internal/vaccine"
	dErrors "vaxreg/pkg/domain-errors"
)

const title = "COVID-19 Vaccination Record System"

// Service is the subset of the record service the shell drives.
type Service interface {
	RegisterPatient(ctx context.Context, req models.RegisterPatientRequest) (*models.Patient, error)
	AdministerDose(ctx context.Context, req models.AdministerDoseRequest) (*models.Dose, error)
	Vaccines() []vaccine.Definition
	Centres() []string
}

type Shell struct {
	records Service
	in      *bufio.Reader
	out     io.Writer
}

func New(records Service, in io.Reader, out io.Writer) *Shell {
	return &Shell{records: records, in: bufio.NewReader(in), out: out}
}

// Run shows the menu until Exit is chosen, input ends or ctx is cancelled.
func (s *Shell) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return nil
		}
		s.printMenu()
		choice, err := s.readLine()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		switch strings.TrimSpace(choice) {
		case "1":
			err = s.registerForm(ctx)
		case "2":
			err = s.administerForm(ctx)
		case "3", "q", "exit":
			return nil
		default:
			s.printf("Unknown option %q\n", strings.TrimSpace(choice))
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (s *Shell) printMenu() {
	s.printf("\n%s\n", title)
	s.printf("  1) Register New Patient\n")
	s.printf("  2) Administer Vaccine Dose\n")
	s.printf("  3) Exit\n")
	s.printf("Select an option: ")
}

func (s *Shell) registerForm(ctx context.Context) error {
	codes := make([]string, 0)
	for _, d := range s.records.Vaccines() {
		codes = append(codes, string(d.Code))
	}
	centres := s.records.Centres()

	req := models.RegisterPatientRequest{}
	if len(centres) > 0 {
		req.Centre = centres[0]
	}
	if len(codes) > 0 {
		req.VaccineCode = codes[0]
	}

	s.printf("\nRegister Patient\n")
	for {
		var err error
		if req.Name, err = s.prompt("Name", nil, req.Name); err != nil {
			return err
		}
		if req.Age, err = s.prompt("Age", nil, req.Age); err != nil {
			return err
		}
		if req.Contact, err = s.prompt("Contact", nil, req.Contact); err != nil {
			return err
		}
		if req.Centre, err = s.prompt("Vaccination Centre", centres, req.Centre); err != nil {
			return err
		}
		if req.VaccineCode, err = s.prompt("Vaccine", codes, req.VaccineCode); err != nil {
			return err
		}

		patient, err := s.records.RegisterPatient(ctx, req)
		if err == nil {
			s.printf("Success: Patient registered with ID: %s\n", patient.ID)
			return nil
		}
		if retry, rerr := s.reportAndAskRetry(err); rerr != nil || !retry {
			return rerr
		}
	}
}

func (s *Shell) administerForm(ctx context.Context) error {
	req := models.AdministerDoseRequest{Dose: string(vaccine.DoseFirst)}
	labels := make([]string, 0, len(vaccine.DoseLabels))
	for _, l := range vaccine.DoseLabels {
		labels = append(labels, string(l))
	}

	s.printf("\nAdminister Dose\n")
	for {
		var err error
		if req.PatientID, err = s.prompt("Patient ID", nil, req.PatientID); err != nil {
			return err
		}
		if req.Dose, err = s.prompt("Dose", labels, req.Dose); err != nil {
			return err
		}
		if req.Date, err = s.prompt("Date (YYYY-MM-DD)", nil, req.Date); err != nil {
			return err
		}

		dose, err := s.records.AdministerDose(ctx, req)
		if err == nil {
			s.printf("Success: %s recorded for %s.\n", dose.Label, dose.PatientID)
			return nil
		}
		if retry, rerr := s.reportAndAskRetry(err); rerr != nil || !retry {
			return rerr
		}
	}
}

// reportAndAskRetry prints the failure and asks whether to keep the form open.
func (s *Shell) reportAndAskRetry(err error) (bool, error) {
	msg := dErrors.MessageOf(err)
	s.printf("Error: %s\n", msg)
	answer, rerr := s.prompt("Edit and resubmit? [y/N]", nil, "")
	if rerr != nil {
		return false, rerr
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// prompt shows label, the allowed options and the current value. An empty
// answer keeps the current value.
func (s *Shell) prompt(label string, options []string, current string) (string, error) {
	var b strings.Builder
	b.WriteString(label)
	if len(options) > 0 {
		b.WriteString(" [" + strings.Join(options, "/") + "]")
	}
	if current != "" {
		b.WriteString(" (" + current + ")")
	}
	b.WriteString(": ")
	s.printf("%s", b.String())

	line, err := s.readLine()
	if err != nil {
		return "", err
	}
	if answer := strings.TrimSpace(line); answer != "" {
		return answer, nil
	}
	return current, nil
}

// readLine returns one line without its terminator. A final unterminated line
// is returned before io.EOF.
func (s *Shell) readLine() (string, error) {
	line, err := s.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (s *Shell) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(s.out, format, args...)
}
