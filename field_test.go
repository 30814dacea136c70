package cron

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpand_Wildcard(t *testing.T) {
	for _, field := range []Field{Minute, Hour} {
		values, err := Expand(Wildcard(), field)
		require.NoError(t, err)
		require.Len(t, values, field.Max+1)

		for i, v := range values {
			assert.Equal(t, i, v)
		}
	}
}

func TestExpand_Exact(t *testing.T) {
	values, err := Expand(Exact(30), Minute)
	require.NoError(t, err)
	assert.Equal(t, []int{30}, values)

	values, err = Expand(Exact(0), Hour)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, values)

	values, err = Expand(Exact(23), Hour)
	require.NoError(t, err)
	assert.Equal(t, []int{23}, values)
}

func TestExpand_StrictlyAscendingWithinDomain(t *testing.T) {
	for _, field := range []Field{Minute, Hour, {Name: "second", Max: 59}, {Name: "dow", Max: 6}} {
		specs := []FieldSpec{Wildcard()}
		for v := 0; v <= field.Max; v++ {
			specs = append(specs, Exact(v))
		}

		for _, spec := range specs {
			values, err := Expand(spec, field)
			require.NoError(t, err)
			require.NotEmpty(t, values)

			for i, v := range values {
				assert.GreaterOrEqual(t, v, 0)
				assert.LessOrEqual(t, v, field.Max)
				if i > 0 {
					assert.Greater(t, v, values[i-1])
				}
			}
		}
	}
}

func TestExpand_OutOfRange(t *testing.T) {
	tests := []struct {
		spec  FieldSpec
		field Field
		value string
	}{
		{Exact(60), Minute, "60"},
		{Exact(-1), Minute, "-1"},
		{Exact(24), Hour, "24"},
		{Exact(-5), Hour, "-5"},
	}

	for _, tt := range tests {
		t.Run(tt.field.Name+"="+tt.value, func(t *testing.T) {
			values, err := Expand(tt.spec, tt.field)
			assert.Nil(t, values)

			var cerr *ConfigurationError
			require.True(t, errors.As(err, &cerr))
			assert.Equal(t, tt.field.Name, cerr.Field)
			assert.Equal(t, tt.value, cerr.Value)
		})
	}
}

func TestParseField(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		field       Field
		want        FieldSpec
		expectError bool
	}{
		{name: "wildcard minute", input: "*", field: Minute, want: Wildcard()},
		{name: "wildcard hour", input: "*", field: Hour, want: Wildcard()},
		{name: "exact minute", input: "45", field: Minute, want: Exact(45)},
		{name: "leading zero", input: "06", field: Hour, want: Exact(6)},
		{name: "minute too large", input: "60", field: Minute, expectError: true},
		{name: "hour too large", input: "24", field: Hour, expectError: true},
		{name: "negative", input: "-1", field: Hour, expectError: true},
		{name: "step syntax", input: "*/5", field: Minute, expectError: true},
		{name: "range syntax", input: "1-5", field: Minute, expectError: true},
		{name: "not a number", input: "abc", field: Minute, expectError: true},
		{name: "empty", input: "", field: Hour, expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec, err := ParseField(tt.input, tt.field)
			if tt.expectError {
				var cerr *ConfigurationError
				require.True(t, errors.As(err, &cerr), "got %v", err)
				assert.Equal(t, tt.field.Name, cerr.Field)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, spec)
		})
	}
}

func TestFieldSpec_String(t *testing.T) {
	assert.Equal(t, "*", Wildcard().String())
	assert.Equal(t, "7", Exact(7).String())
	assert.True(t, Wildcard().IsWildcard())
	assert.False(t, Exact(7).IsWildcard())
	assert.Equal(t, 7, Exact(7).Value())
}
