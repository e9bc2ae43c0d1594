package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/parlourease/internal/domain"
)

func TestBuildUpsert(t *testing.T) {
	query, args, err := buildUpsert(&domain.SalonSettings{FestivalMode: true}).ToSql()
	require.NoError(t, err)

	assert.Contains(t, query, "INSERT INTO salon_settings (id,festival_mode) VALUES ($1,$2)")
	assert.Contains(t, query, "ON CONFLICT (id) DO UPDATE")
	assert.Equal(t, []interface{}{1, true}, args)
}
