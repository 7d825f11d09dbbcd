package dbconfig

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSource_Get(t *testing.T) {
	t.Setenv("TESTENV_NAME", "appdb")
	t.Setenv("TESTENV_BLANK", "   ")

	src := NewSource("TESTENV", zap.NewNop())

	assert.Equal(t, "appdb", src.Get("NAME", "fallback"))
	assert.Equal(t, "fallback", src.Get("UNSET", "fallback"))
	assert.Equal(t, "fallback", src.Get("BLANK", "fallback"), "blank values count as unset")
}

func TestSource_RequireCollectsAllMissing(t *testing.T) {
	t.Setenv("TESTENV_NAME", "appdb")

	src := NewSource("TESTENV", zap.NewNop())
	src.Require("NAME")
	src.Require("USER")
	src.Require("PASSWORD")

	err := src.Missing()
	require.Error(t, err)

	var missing *MissingEnvError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, []string{"TESTENV_USER", "TESTENV_PASSWORD"}, missing.Vars)
	assert.ErrorIs(t, err, ErrConfiguration)
}

func TestSource_MissingNilWhenComplete(t *testing.T) {
	t.Setenv("TESTENV_NAME", "appdb")

	src := NewSource("TESTENV", zap.NewNop())
	src.Require("NAME")

	assert.NoError(t, src.Missing())
}

func TestSource_Bool(t *testing.T) {
	tests := []struct {
		name  string
		value string
		def   bool
		want  bool
	}{
		{name: "true word", value: "true", def: false, want: true},
		{name: "one", value: "1", def: false, want: true},
		{name: "yes", value: "yes", def: false, want: true},
		{name: "on mixed case", value: "On", def: false, want: true},
		{name: "false word", value: "false", def: true, want: false},
		{name: "zero", value: "0", def: true, want: false},
		{name: "off", value: "off", def: true, want: false},
		{name: "garbage falls back", value: "maybe", def: true, want: true},
		{name: "garbage falls back to false", value: "maybe", def: false, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TESTENV_FLAG", tt.value)
			src := NewSource("TESTENV", zap.NewNop())
			assert.Equal(t, tt.want, src.Bool("FLAG", tt.def))
		})
	}
}

func TestSource_Int(t *testing.T) {
	t.Setenv("TESTENV_AGE", "600")
	t.Setenv("TESTENV_BAD", "sixty")

	src := NewSource("TESTENV", zap.NewNop())

	assert.Equal(t, 600, src.Int("AGE", 0))
	assert.Equal(t, 0, src.Int("BAD", 0), "invalid integer uses default")
	assert.Equal(t, 42, src.Int("UNSET", 42))
}

func TestSource_Port(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  int
	}{
		{name: "valid", value: "5433", want: 5433},
		{name: "not a number", value: "abc", want: 5432},
		{name: "out of range", value: "99999", want: 5432},
		{name: "negative", value: "-1", want: 5432},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TESTENV_PORT", tt.value)
			src := NewSource("TESTENV", zap.NewNop())
			assert.Equal(t, tt.want, src.Port("PORT", 5432))
		})
	}
}

func TestSource_ExtraOptions(t *testing.T) {
	t.Setenv("TESTENV_OPTIONS_SSLMODE", "require")
	t.Setenv("TESTENV_OPTIONS_CONNECT_TIMEOUT", "10")
	t.Setenv("TESTENV_NAME", "ignored")
	t.Setenv("OTHER_OPTIONS_SSLMODE", "ignored")

	src := NewSource("TESTENV", zap.NewNop())

	assert.Equal(t, map[string]string{
		"sslmode":         "require",
		"connect_timeout": "10",
	}, src.ExtraOptions())
}
