package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/partshelf/partshelf/pkg/types"
)

func TestParseFieldValue(t *testing.T) {
	tests := []struct {
		name    string
		field   string
		raw     string
		want    any
		wantErr bool
	}{
		{name: "text passes through", field: "part_num", raw: "R100", want: "R100"},
		{name: "integer parses", field: "quantity", raw: "25", want: int64(25)},
		{name: "integer rejects garbage", field: "quantity", raw: "many", wantErr: true},
		{name: "real parses", field: "value", raw: "4.7", want: 4.7},
		{name: "real accepts integer literal", field: "price", raw: "3", want: 3.0},
		{name: "boolean parses", field: "present", raw: "true", want: true},
		{name: "boolean rejects garbage", field: "present", raw: "maybe", wantErr: true},
		{name: "unknown field", field: "no_such", raw: "x", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseFieldValue(tt.field, tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseFieldArgs(t *testing.T) {
	fields, err := parseFieldArgs([]string{"part_num=R100", "quantity=25", "present=true"})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"part_num": "R100",
		"quantity": int64(25),
		"present":  true,
	}, fields)

	_, err = parseFieldArgs([]string{"no-equals-sign"})
	assert.Error(t, err)

	_, err = parseFieldArgs([]string{"bogus_field=1"})
	assert.ErrorIs(t, err, types.ErrUnknownField)
}
