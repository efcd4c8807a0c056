package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDepartment(t *testing.T) {
	for _, d := range Departments() {
		parsed, err := ParseDepartment(string(d))
		require.NoError(t, err)
		assert.Equal(t, d, parsed)
	}

	for _, invalid := range []string{"", "roads", "Sanitation", " Roads"} {
		_, err := ParseDepartment(invalid)
		assert.Error(t, err, "value %q must be rejected", invalid)
	}
}

func TestParseRegion(t *testing.T) {
	for _, r := range Regions() {
		parsed, err := ParseRegion(string(r))
		require.NoError(t, err)
		assert.Equal(t, r, parsed)
	}

	for _, invalid := range []string{"", "north", "Northeast", "HeadOffice"} {
		_, err := ParseRegion(invalid)
		assert.Error(t, err, "value %q must be rejected", invalid)
	}
}
