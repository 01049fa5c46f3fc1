// Unit tests for typed part field assignment and dirty tracking.
package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPartSet(t *testing.T) {
	tests := []struct {
		name  string
		check func(t *testing.T, p *Part)
	}{
		{
			name: "text field accepts string",
			check: func(t *testing.T, p *Part) {
				require.NoError(t, p.Set("part_num", "R100"))
				assert.Equal(t, "R100", p.PartNum)
				assert.True(t, p.Dirty())
			},
		},
		{
			name: "text field rejects integer",
			check: func(t *testing.T, p *Part) {
				err := p.Set("description", 42)
				assert.ErrorIs(t, err, ErrTypeMismatch)
				assert.Empty(t, p.Description)
				assert.False(t, p.Dirty())
			},
		},
		{
			name: "boolean field accepts bool",
			check: func(t *testing.T, p *Part) {
				require.NoError(t, p.Set("present", true))
				assert.True(t, p.Present)
			},
		},
		{
			name: "boolean field rejects string",
			check: func(t *testing.T, p *Part) {
				err := p.Set("present", "yes")
				assert.ErrorIs(t, err, ErrTypeMismatch)
				assert.False(t, p.Present)
			},
		},
		{
			name: "integer field accepts int and int64",
			check: func(t *testing.T, p *Part) {
				require.NoError(t, p.Set("quantity", 25))
				assert.Equal(t, int64(25), p.Quantity)
				require.NoError(t, p.Set("quantity", int64(30)))
				assert.Equal(t, int64(30), p.Quantity)
			},
		},
		{
			name: "integer field rejects float",
			check: func(t *testing.T, p *Part) {
				err := p.Set("quantity", 2.5)
				assert.ErrorIs(t, err, ErrTypeMismatch)
			},
		},
		{
			name: "real field accepts float",
			check: func(t *testing.T, p *Part) {
				require.NoError(t, p.Set("value", 4.7))
				assert.Equal(t, 4.7, p.Value)
			},
		},
		{
			name: "real field widens integer",
			check: func(t *testing.T, p *Part) {
				require.NoError(t, p.Set("price", 3))
				assert.Equal(t, 3.0, p.Price)
			},
		},
		{
			name: "real field rejects string",
			check: func(t *testing.T, p *Part) {
				err := p.Set("value", "4.7")
				assert.ErrorIs(t, err, ErrTypeMismatch)
				assert.Zero(t, p.Value)
			},
		},
		{
			name: "unknown field name",
			check: func(t *testing.T, p *Part) {
				err := p.Set("no_such_field", "x")
				assert.ErrorIs(t, err, ErrUnknownField)
				assert.False(t, p.Dirty())
			},
		},
		{
			name: "failed assignment leaves part clean",
			check: func(t *testing.T, p *Part) {
				require.Error(t, p.Set("quantity", "many"))
				assert.False(t, p.Dirty())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, &Part{})
		})
	}
}

func TestPartGet(t *testing.T) {
	p := &Part{}
	require.NoError(t, p.Set("part_num", "C22"))
	require.NoError(t, p.Set("quantity", 5))

	v, err := p.Get("part_num")
	require.NoError(t, err)
	assert.Equal(t, "C22", v)

	v, err = p.Get("quantity")
	require.NoError(t, err)
	assert.Equal(t, int64(5), v)

	_, err = p.Get("bogus")
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestPartDirtyLifecycle(t *testing.T) {
	p := &Part{}
	assert.False(t, p.Dirty())

	require.NoError(t, p.Set("part_num", "R1"))
	assert.True(t, p.Dirty())

	p.ClearDirty()
	assert.False(t, p.Dirty())
}

func TestPartFieldsCoversSchema(t *testing.T) {
	fields := (&Part{}).Fields()
	for _, name := range PartFieldNames() {
		_, ok := fields[name]
		assert.True(t, ok, "field map missing %s", name)
	}
	assert.Len(t, fields, len(PartFields))
}
