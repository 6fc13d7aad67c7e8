package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"vaxreg/internal/platform/config"
)

func TestOpen_RequiresURL(t *testing.T) {
	_, err := Open(context.Background(), config.PostgresConfig{})
	assert.ErrorContains(t, err, "postgres url is required")
}
