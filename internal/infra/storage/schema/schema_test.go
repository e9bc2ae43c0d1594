package schema

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDDL_CreatesCollections(t *testing.T) {
	ddl := DDL()

	for _, table := range []string{"services", "bookings", "salon_settings"} {
		assert.Contains(t, ddl, "CREATE TABLE IF NOT EXISTS "+table)
	}
	assert.Equal(t, 0, strings.Count(ddl, "DROP "))
}
