package types_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aanand-mishra/constructor-demos/internal/types"
)

func TestDateDisplay(t *testing.T) {
	tests := []struct {
		day, month, year int
		want             string
	}{
		{4, 10, 2025, "Today's date is 4/10/2025\n"},
		{31, 12, 1999, "Today's date is 31/12/1999\n"},
		{1, 1, 1, "Today's date is 1/1/1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			d := types.NewDate(tt.day, tt.month, tt.year)

			var sb strings.Builder
			require.NoError(t, d.Display(&sb))
			assert.Equal(t, tt.want, sb.String())
			assert.Equal(t, tt.want, d.String())
		})
	}
}

func TestDateKeepsFieldsAsGiven(t *testing.T) {
	d := types.NewDate(31, 2, 2025)

	assert.Equal(t, 31, d.Day())
	assert.Equal(t, 2, d.Month())
	assert.Equal(t, 2025, d.Year())
	assert.Equal(t, "Today's date is 31/2/2025\n", d.String())
	assert.NoError(t, d.Validate())
}

func TestDateValidate(t *testing.T) {
	assert.NoError(t, types.NewDate(4, 10, 2025).Validate())
	assert.Error(t, types.NewDate(0, 10, 2025).Validate())
	assert.Error(t, types.NewDate(4, 13, 2025).Validate())
	assert.Error(t, types.NewDate(4, 10, 0).Validate())
}
