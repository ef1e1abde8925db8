package testutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMustParseTime(t *testing.T) {
	parsed := MustParseTime(t, "2025-06-15T14:30:00Z")
	assert.Equal(t, 2025, parsed.Year())
	assert.Equal(t, time.June, parsed.Month())
	assert.Equal(t, 15, parsed.Day())
	assert.Equal(t, 14, parsed.Hour())
	assert.Equal(t, 30, parsed.Minute())
}

func TestMustParseDate(t *testing.T) {
	parsed := MustParseDate(t, "2025-06-15")
	assert.Equal(t, 2025, parsed.Year())
	assert.Equal(t, time.June, parsed.Month())
	assert.Equal(t, 15, parsed.Day())
	assert.Equal(t, 0, parsed.Hour())
}

func TestPtr(t *testing.T) {
	v := Ptr(42)
	assert.NotNil(t, v)
	assert.Equal(t, 42, *v)

	s := Ptr("DEN")
	assert.Equal(t, "DEN", *s)
}

func TestStringSlice(t *testing.T) {
	assert.Equal(t, []string{"DEN", "MCO"}, StringSlice("DEN", "MCO"))
	assert.Empty(t, StringSlice())
}
