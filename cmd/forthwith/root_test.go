package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forthwith/forthwith"
)

func runRoot(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	var out strings.Builder
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootCmd_stdin(t *testing.T) {
	out, err := runRoot(t, "1 2 + 4")
	require.NoError(t, err)
	assert.Equal(t, "4\n3\n", out, "stack prints top first")
}

func TestRootCmd_file(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sq.fs")
	require.NoError(t, os.WriteFile(path, []byte(": SQ DUP * ;\n4 SQ\n"), 0o644))

	out, err := runRoot(t, "", path)
	require.NoError(t, err)
	assert.Equal(t, "16\n", out)
}

func TestRootCmd_files_share_a_session(t *testing.T) {
	dir := t.TempDir()
	def := filepath.Join(dir, "def.fs")
	use := filepath.Join(dir, "use.fs")
	require.NoError(t, os.WriteFile(def, []byte(": DOUBLE DUP + ;"), 0o644))
	require.NoError(t, os.WriteFile(use, []byte("3 DOUBLE"), 0o644))

	out, err := runRoot(t, "", def, use)
	require.NoError(t, err)
	assert.Equal(t, "6\n", out)
}

func TestRootCmd_eval_error(t *testing.T) {
	_, err := runRoot(t, "5 0 /")
	assert.ErrorIs(t, err, forthwith.ErrDivisionByZero)
}

func TestRootCmd_step_limit_flag(t *testing.T) {
	_, err := runRoot(t, ": X X ; X", "--step-limit", "100")
	assert.ErrorIs(t, err, forthwith.ErrStepLimit)
}

func TestEvalLine(t *testing.T) {
	vm := forthwith.New()
	assert.Equal(t, "[3]", evalLine(vm, "1 2 +"))
	assert.Equal(t, "error: unknown word", evalLine(vm, "FOO"))
	assert.Equal(t, "[3]", evalLine(vm, ""), "stack survives a failed line")
}

func TestRenderWords(t *testing.T) {
	vm := forthwith.New()
	require.NoError(t, vm.Eval(": SQ DUP * ;"))

	var out strings.Builder
	renderWords(&out, vm.Words())

	assert.Contains(t, out.String(), "DUP")
	assert.Contains(t, out.String(), "SQ")
	assert.Contains(t, out.String(), "expand")
}
