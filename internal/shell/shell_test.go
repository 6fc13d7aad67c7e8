package shell

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"vaxreg/internal/records/models"
	"vaxreg/internal/records/service"
	"vaxreg/internal/records/store/memory"
	"vaxreg/internal/records/workflow"
)

type ShellSuite struct {
	suite.Suite
	store   *memory.InMemory
	service *service.Service
}

func TestShellSuite(t *testing.T) {
	suite.Run(t, new(ShellSuite))
}

func (s *ShellSuite) SetupTest() {
	s.store = memory.New()
	svc, err := service.New(s.store, workflow.ReferenceRules())
	s.Require().NoError(err)
	s.service = svc
}

func (s *ShellSuite) run(lines ...string) string {
	var out bytes.Buffer
	sh := New(s.service, strings.NewReader(strings.Join(lines, "\n")+"\n"), &out)
	s.Require().NoError(sh.Run(context.Background()))
	return out.String()
}

func (s *ShellSuite) patients() []*models.Patient {
	patients, err := s.store.LoadPatients(context.Background())
	s.Require().NoError(err)
	return patients
}

func (s *ShellSuite) TestMenu() {
	out := s.run("7", "3")
	s.Contains(out, "COVID-19 Vaccination Record System")
	s.Contains(out, "1) Register New Patient")
	s.Contains(out, `Unknown option "7"`)
}

func (s *ShellSuite) TestRegister_UsesDefaults() {
	out := s.run("1", "Ada", "30", "555-0100", "", "", "3")

	s.Contains(out, "Vaccination Centre [VC1/VC2] (VC1): ")
	s.Contains(out, "Vaccine [AF/BV/CZ/DM/EC] (AF): ")
	s.Contains(out, "Success: Patient registered with ID: P0001")

	patients := s.patients()
	s.Require().Len(patients, 1)
	s.Equal("VC1", patients[0].Centre)
	s.Equal("AF", string(patients[0].VaccineCode))
}

func (s *ShellSuite) TestRegister_RetryKeepsEnteredValues() {
	out := s.run(
		"1", "Kid", "10", "555", "VC2", "",
		"y",
		"", "30", "", "", "",
		"3",
	)

	s.Contains(out, "Error: patient is not eligible for this vaccine: minimum age is 12")
	s.Contains(out, "Name (Kid): ")
	s.Contains(out, "Vaccination Centre [VC1/VC2] (VC2): ")
	s.Contains(out, "Success: Patient registered with ID: P0001")

	patients := s.patients()
	s.Require().Len(patients, 1)
	s.Equal("Kid", patients[0].Name)
	s.Equal(30, patients[0].Age)
	s.Equal("VC2", patients[0].Centre)
}

func (s *ShellSuite) TestRegister_DecliningRetryDiscardsInput() {
	out := s.run("1", "Ada", "thirty", "555", "", "", "n", "3")
	s.Contains(out, "Error: age must be a whole number")
	s.Empty(s.patients())
}

func (s *ShellSuite) TestAdminister() {
	s.run("1", "Ada", "30", "555", "", "", "3")

	out := s.run(
		"2", "P0001", "", "2024-01-01",
		"2", "P0001", "D2", "2024-01-10", "y", "", "", "2024-01-15",
		"3",
	)
	s.Contains(out, "Success: D1 recorded for P0001.")
	s.Contains(out, "Error: too early for second dose, wait 14 days")
	s.Contains(out, "Dose [D1/D2] (D2): ")
	s.Contains(out, "Success: D2 recorded for P0001.")

	doses, err := s.store.DosesForPatient(context.Background(), "P0001")
	s.Require().NoError(err)
	s.Len(doses, 2)
}

func (s *ShellSuite) TestAdminister_DateCheckedBeforePatient() {
	out := s.run("2", "P0009", "D1", "2024/01/01", "n", "3")
	s.Contains(out, "Error: invalid date format, use YYYY-MM-DD")
}

func (s *ShellSuite) TestEndOfInputExits() {
	var out bytes.Buffer
	sh := New(s.service, strings.NewReader("1\nAda\n30"), &out)
	s.NoError(sh.Run(context.Background()))
	s.Empty(s.patients())
}

func (s *ShellSuite) TestCancelledContextExits() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out bytes.Buffer
	s.NoError(New(s.service, strings.NewReader("1\n"), &out).Run(ctx))
	s.Empty(out.String())
}
