package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("ID_CODEC", "")

	var stdout, stderr bytes.Buffer
	root := newRootCmd(strings.NewReader(stdin), &stdout, &stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), err
}

func exitCode(err error) int {
	var cErr codedError
	if errors.As(err, &cErr) {
		return cErr.code
	}
	return 0
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		arg  string
		raw  bool
		want any
	}{
		{"hello", false, "hello"},
		{"42", false, json.Number("42")},
		{`"quoted"`, false, "quoted"},
		{`["a","b"]`, false, []any{"a", "b"}},
		{`{"a":1}`, false, map[string]any{"a": json.Number("1")}},
		{"5 6", false, "5 6"},
		{"5]", false, "5]"},
		{"42", true, "42"},
	}

	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			assert.Equal(t, tt.want, parseValue(tt.arg, tt.raw))
		})
	}
}

func TestTextKind(t *testing.T) {
	for _, kind := range []string{"string", "id", "url", "image-url", "country-code"} {
		assert.True(t, textKind(kind), kind)
	}
	for _, kind := range []string{"number", "geocode", "string-array", "email"} {
		assert.False(t, textKind(kind), kind)
	}
}

func TestCheckCommand(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantOut  string
		wantErr  string
		wantCode int
	}{
		{
			name:    "string trimmed",
			args:    []string{"check", "string", "  hello  "},
			wantOut: "\"hello\"\n",
		},
		{
			name:    "number with bounds",
			args:    []string{"check", "number", "42", "--name", "age", "--min", "18", "--max", "120"},
			wantOut: "42\n",
		},
		{
			name:     "number out of range",
			args:     []string{"check", "number", "12", "--name", "age", "--min", "18", "--max", "120"},
			wantErr:  "OUT_OF_RANGE: age must be between 18 and 120",
			wantCode: exitCheckFailed,
		},
		{
			name:    "url escaped",
			args:    []string{"check", "url", "https://a.com/x y", "--name", "site"},
			wantOut: "\"https://a.com/x%20y\"\n",
		},
		{
			name:    "all digit object id stays text",
			args:    []string{"check", "id", "123456789012345678901234"},
			wantOut: "\"123456789012345678901234\"\n",
		},
		{
			name:    "numeric string kept as text",
			args:    []string{"check", "string", " 42 "},
			wantOut: "\"42\"\n",
		},
		{
			name:    "uuid codec",
			args:    []string{"check", "id", "3f2504e0-4f89-11d3-9a0c-0305e82c3301", "--codec", "uuid"},
			wantOut: "\"3f2504e0-4f89-11d3-9a0c-0305e82c3301\"\n",
		},
		{
			name:     "object id rejected by uuid codec",
			args:     []string{"check", "id", "507f1f77bcf86cd799439011", "--codec", "uuid", "--name", "owner"},
			wantErr:  "INVALID_FORMAT: owner is not a valid UUID",
			wantCode: exitCheckFailed,
		},
		{
			name:     "unknown codec",
			args:     []string{"check", "id", "x", "--codec", "snowflake"},
			wantErr:  "build checker",
			wantCode: exitError,
		},
		{
			name:     "unknown kind",
			args:     []string{"check", "email", "a@b.c"},
			wantErr:  "NOT_FOUND: check kind not found",
			wantCode: exitCheckFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, "", tt.args...)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				assert.Equal(t, tt.wantCode, exitCode(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantOut, out)
		})
	}
}

func TestStringifyCommand(t *testing.T) {
	out, err := run(t, `[{"_id":{"$oid":"507f1f77bcf86cd799439011"},"n":1}]`, "stringify")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"_id":"507f1f77bcf86cd799439011","n":1}]`, out)

	_, err = run(t, `nope`, "stringify")
	require.Error(t, err)
	assert.Equal(t, exitCheckFailed, exitCode(err))
}

func TestKindsCommand(t *testing.T) {
	out, err := run(t, "", "kinds")
	require.NoError(t, err)
	assert.Contains(t, out, "image-url\n")
	assert.Contains(t, out, "string-array")
}
