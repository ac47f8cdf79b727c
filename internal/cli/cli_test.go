package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/qdyn/internal/cli"
	"github.com/katalvlaran/qdyn/internal/config"
	"github.com/katalvlaran/qdyn/quadrature"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const problem = `
problem:
  matrix: [[1, 0], [0, 2]]
  vector: [1, 1]
  hamiltonian: [[0, 1], [1, 0]]
quadrature:
  method: me
  degree: 4
  polynomial: [1, 0, 3]
  interval: [0, 2]
`

func writeConfig(t *testing.T, doc string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "qdyn.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	return path
}

// run executes the root command and returns stdout, stderr and the error.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv(config.EnvLogLevel, "")
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	cmd := cli.NewRootCommand()
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), errOut.String(), err
}

func TestExpmVDiagonal(t *testing.T) {
	out, _, err := run(t, "expmv", "--config", writeConfig(t, problem))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "2.71828182846"), lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "7.38905609893"), lines[1])
}

func TestExpmVTimeFactor(t *testing.T) {
	out, _, err := run(t, "expmv", "-c", writeConfig(t, problem), "--time", "0")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "1"), lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "1"), lines[1])
}

func TestExpmVMissingOperand(t *testing.T) {
	_, _, err := run(t, "expmv", "--config", writeConfig(t, "problem: {vector: [1]}\n"))
	assert.ErrorIs(t, err, cli.ErrMissingOperand)
}

func TestExpmVDebugLogging(t *testing.T) {
	_, errOut, err := run(t, "expmv", "--config", writeConfig(t, problem), "--log-level", "debug")
	require.NoError(t, err)
	assert.Contains(t, errOut, "krylov projection")
}

func TestLiouvillianCommand(t *testing.T) {
	out, _, err := run(t, "liouvillian", "--config", writeConfig(t, problem))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	// I⊗σx − σxᵀ⊗I, first row: [0, 1, −1, 0]
	assert.Equal(t, "[(0+0i), (1+0i), (-1+0i), (0+0i)]", lines[0])
}

func TestPadeCommand(t *testing.T) {
	out, _, err := run(t, "pade", "--config", writeConfig(t, problem), "--p", "10", "--q", "10")
	require.NoError(t, err)
	assert.Contains(t, out, "(2.7182818284")
	assert.Contains(t, out, "(7.389056098")

	_, _, err = run(t, "pade", "--config", writeConfig(t, problem), "--p", "-1")
	assert.Error(t, err)
}

func TestIntegrateCommand(t *testing.T) {
	path := writeConfig(t, problem)
	// ∫₀² 1 + 3t² dt = 10
	out, _, err := run(t, "integrate", "--config", path)
	require.NoError(t, err)
	assert.Equal(t, "10\n", out)

	out, _, err = run(t, "integrate", "--config", path, "--method", "scipy")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "10\t"), out)

	_, errOut, err := run(t, "integrate", "--config", path, "--method", "bogus")
	assert.ErrorIs(t, err, quadrature.ErrUnknownMethod)
	assert.Contains(t, errOut, "invalid integration method")
}

func TestTimegridCommand(t *testing.T) {
	out, _, err := run(t, "timegrid", "--step", "0.5", "--final", "1")
	require.NoError(t, err)
	assert.Equal(t, "0\n0.5\n1\n", out)

	out, _, err = run(t, "timegrid", "--step", "0.5", "--final", "1", "--midpoint")
	require.NoError(t, err)
	assert.Equal(t, "0.25\n0.75\n", out)

	_, _, err = run(t, "timegrid", "--step", "0")
	assert.ErrorIs(t, err, quadrature.ErrTimeGrid)
}

func TestBadConfig(t *testing.T) {
	_, _, err := run(t, "timegrid", "--config", writeConfig(t, "log_level: loud\n"))
	assert.ErrorIs(t, err, config.ErrInvalid)

	_, _, err = run(t, "timegrid", "--log-level", "loud")
	assert.ErrorIs(t, err, config.ErrInvalid)
}
