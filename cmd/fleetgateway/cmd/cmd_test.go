package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(&bytes.Buffer{})
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}

func TestAdapt(t *testing.T) {
	tests := []struct {
		name     string
		kind     string
		input    string
		expected string
	}{
		{
			name:     "fuel expenses",
			kind:     "expenses",
			input:    `[{"id":"e1","amount":12.5},{"_id":"e2","cost":7.5}]`,
			expected: `{"expenses":[{"_id":"e1","vehicleId":"","addedBy":"","date":"","cost":12.5,"note":"","registrationNo":"","key":0},{"_id":"e2","vehicleId":"","addedBy":"","date":"","cost":7.5,"note":"","registrationNo":"","key":1}],"totalExpense":20}`,
		},
		{
			name:     "non-list degrades to empty listing",
			kind:     "loan-calculations",
			input:    `{"unexpected":true}`,
			expected: `{"calculations":[],"totalCalculation":0}`,
		},
		{
			name:     "alert passes through",
			kind:     "alerts",
			input:    `{"success":true,"alert":{"id":"a1"}}`,
			expected: `{"success":true,"message":"Alert found","data":{"id":"a1"}}`,
		},
		{
			name:     "empty input",
			kind:     "vehicles",
			input:    ``,
			expected: `null`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Act
			out, err := run(t, tt.input, "adapt", tt.kind)

			// Assert
			require.NoError(t, err)
			assert.JSONEq(t, tt.expected, out)
		})
	}
}

func TestAdapt_FromFile(t *testing.T) {
	// Arrange
	path := filepath.Join(t.TempDir(), "verify.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"valid":true,"user":{"_id":"u1","subscribed":true}}`), 0o600))

	// Act
	out, err := run(t, "", "adapt", "identity", path)

	// Assert
	require.NoError(t, err)
	assert.JSONEq(t, `{"message":"User verified","user":{"userId":"u1","email":"","name":"","isSubscribed":true,"isAdmin":false}}`, out)
	assert.Contains(t, out, "\n  ", "output is indented")
}

func TestAdapt_Errors(t *testing.T) {
	tests := []struct {
		name          string
		args          []string
		stdin         string
		expectedError string
	}{
		{name: "unknown kind", args: []string{"adapt", "fuel"}, expectedError: "expected one of: alerts, def-expenses"},
		{name: "invalid json", args: []string{"adapt", "drivers"}, stdin: `{`, expectedError: "decode input"},
		{name: "missing file", args: []string{"adapt", "drivers", "/nonexistent/file.json"}, expectedError: "open input"},
		{name: "no kind", args: []string{"adapt"}, expectedError: "accepts between 1 and 2 arg(s)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, tt.stdin, tt.args...)

			assert.ErrorContains(t, err, tt.expectedError)
		})
	}
}

func TestAdapt_UnknownKindIsSentinel(t *testing.T) {
	_, err := run(t, "", "adapt", "trips")

	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestServe_InvalidConfig(t *testing.T) {
	// Arrange
	t.Setenv("FINANCE_SERVICE_URL", "not-a-url")

	// Act
	_, err := run(t, "", "serve")

	// Assert
	assert.ErrorContains(t, err, "load config")
}

func TestRoot_ListsCommands(t *testing.T) {
	root := NewRootCmd()

	names := make([]string, 0)
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}

	assert.Contains(t, names, "serve")
	assert.Contains(t, names, "adapt")
}
