package app

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vaxreg/internal/platform/config"
	"vaxreg/internal/records/models"
	filestore "vaxreg/internal/records/store/file"
	"vaxreg/internal/records/store/memory"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestOpen_FileDriver(t *testing.T) {
	cfg := config.Default()
	cfg.Store.DataDir = t.TempDir()

	records, err := Open(context.Background(), cfg, discard())
	require.NoError(t, err)
	defer records.Close()
	assert.IsType(t, &filestore.Store{}, records.Store)
	assert.Nil(t, records.Health)

	p, err := records.Service.RegisterPatient(context.Background(), models.RegisterPatientRequest{
		Name: "Ada", Age: "30", Contact: "555", Centre: "VC1", VaccineCode: "AF",
	})
	require.NoError(t, err)
	assert.Equal(t, models.PatientID("P0001"), p.ID)

	raw, err := os.ReadFile(filepath.Join(cfg.Store.DataDir, "patients.txt"))
	require.NoError(t, err)
	assert.Equal(t, "P0001,Ada,30,555,VC1,AF\n", string(raw))
}

func TestOpen_MemoryDriver(t *testing.T) {
	cfg := config.Default()
	cfg.Store.Driver = config.DriverMemory

	records, err := Open(context.Background(), cfg, discard())
	require.NoError(t, err)
	assert.IsType(t, &memory.InMemory{}, records.Store)
	assert.NoError(t, records.Close())
}

func TestOpen_UnknownDriver(t *testing.T) {
	cfg := config.Default()
	cfg.Store.Driver = "sqlite"
	_, err := Open(context.Background(), cfg, discard())
	assert.ErrorContains(t, err, "unknown store driver")
}
