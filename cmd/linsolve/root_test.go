package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gaussjordan/crosscheck"
	"github.com/katalvlaran/gaussjordan/gaussjordan"
	"github.com/katalvlaran/gaussjordan/textio"
)

// execute runs the root command with args and stdin, returning stdout and stderr.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	if args == nil {
		args = []string{} // nil would make cobra fall back to os.Args
	}
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), errOut.String(), err
}

const system2 = "2 2\n2 1\n1 3\n2 1\n5\n10\n"

func TestRunReal(t *testing.T) {
	out, _, err := execute(t, system2)
	require.NoError(t, err)

	want := "=== BEFORE ===\n" +
		"A = \t2.000 1.000 \n\t1.000 3.000 \n" +
		"b = \t5.000 \n\t10.000 \n" +
		"=== AFTER ===\n" +
		"A = \t1.000 0 \n\t0 1.000 \n" +
		"b = \t1.000 \n\t3.000 \n" +
		"x =\n1.000\n3.000\n"
	require.Equal(t, want, out)
}

func TestRunComplexVerify(t *testing.T) {
	in := "2 2\n1 0  0 1\n0 1  1 0\n2 1\n1 0\n0 0\n"
	out, stderr, err := execute(t, in, "--complex", "--verify")
	require.NoError(t, err)
	require.True(t, strings.HasSuffix(out, "x =\n0.500\n-0.500i\n"), out)
	require.Contains(t, stderr, "residual")
}

func TestRunTrace(t *testing.T) {
	_, stderr, err := execute(t, system2, "--trace")
	require.NoError(t, err)
	require.Contains(t, stderr, "pivot col=0 row=0 value=2.000")
	require.Contains(t, stderr, "add-scaled target=1 source=0 factor=-0.500")
	require.Contains(t, stderr, "scale target=0 source=0 factor=0.500")
}

func TestRunCrosscheck(t *testing.T) {
	for _, backend := range crosscheck.Backends {
		t.Run(string(backend), func(t *testing.T) {
			_, stderr, err := execute(t, system2, "--crosscheck", string(backend))
			require.NoError(t, err)
			require.Contains(t, stderr, "reference agrees")
		})
	}

	_, _, err := execute(t, system2, "--crosscheck", "lapack")
	require.ErrorIs(t, err, crosscheck.ErrUnknownBackend)

	_, _, err = execute(t, "1 1 1 0\n1 1 1 0\n", "--complex", "--crosscheck", "gonum")
	require.ErrorIs(t, err, crosscheck.ErrUnsupportedDomain)
}

func TestRunInputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "system.txt")
	require.NoError(t, os.WriteFile(path, []byte(system2), 0o600))

	out, _, err := execute(t, "", "--input", path)
	require.NoError(t, err)
	require.Contains(t, out, "x =\n1.000\n3.000\n")

	_, _, err = execute(t, "", "--input", filepath.Join(t.TempDir(), "missing"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestRunErrors(t *testing.T) {
	cases := []struct {
		name  string
		input string
		args  []string
		want  error
	}{
		{"singular", "2 2\n1 0\n0 0\n2 1\n1\n1\n", nil, gaussjordan.ErrSingular},
		{"incompatible", "3 3\n1 0 0\n0 1 0\n0 0 1\n2 1\n1\n1\n", nil, gaussjordan.ErrIncompatibleDimensions},
		{"malformed", "2 2\n1 x\n", nil, textio.ErrMalformedInput},
		{"truncated", "2 2\n1 0\n0 1\n", nil, textio.ErrUnexpectedEOF},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := execute(t, tc.input, tc.args...)
			require.ErrorIs(t, err, tc.want)
		})
	}

	_, _, err := execute(t, system2, "--tol", "0")
	require.Error(t, err)
}

// TestRunSingularKeepsBefore checks the BEFORE block is already written when the solve fails.
func TestRunSingularKeepsBefore(t *testing.T) {
	out, _, err := execute(t, "2 2\n1 0\n0 0\n2 1\n1\n1\n")
	require.Error(t, err)
	require.True(t, strings.HasPrefix(out, "=== BEFORE ==="))
	require.NotContains(t, out, "=== AFTER ===")
}
