package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"vaxreg/internal/records/models"
	"vaxreg/internal/records/store/storetest"
)

func TestInMemoryStoreSuite(t *testing.T) {
	suite.Run(t, &storetest.Suite{NewStore: func(*testing.T) storetest.Store { return New() }})
}

func TestInMemory_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	s := New()
	require.NoError(t, s.AppendPatient(ctx, &models.Patient{ID: "P0001", Name: "Ada"}))

	p, err := s.FindPatientByID(ctx, "P0001")
	require.NoError(t, err)
	p.Name = "changed"

	again, err := s.FindPatientByID(ctx, "P0001")
	require.NoError(t, err)
	assert.Equal(t, "Ada", again.Name)
}
