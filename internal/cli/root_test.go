package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestRootCommandEvaluatesArgs(t *testing.T) {
	out, err := execute(t, "2+3*4")
	require.NoError(t, err)
	assert.Equal(t, "14\n", out)
}

func TestRootCommandEvaluatesEachArg(t *testing.T) {
	out, err := execute(t, "2^3^2", "(1+2)(3+4)")
	require.NoError(t, err)
	assert.Equal(t, "512\n21\n", out)
}

func TestRootCommandFormatVerb(t *testing.T) {
	out, err := execute(t, "--fmt", "%.2f", "5/2")
	require.NoError(t, err)
	assert.Equal(t, "2.50\n", out)
}

func TestRootCommandReportsErrors(t *testing.T) {
	cases := []struct {
		name, src, want string
	}{
		{"div-zero", "5/0", "division by zero"},
		{"mod-zero", "10 % 0", "modulo by zero"},
		{"unclosed", "(1+2", "missing closing parenthesis"},
		{"trailing", "3 q", "unexpected trailing input"},
		{"number", "2+", "expected number"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := execute(t, c.src)
			require.Error(t, err)
			assert.Contains(t, err.Error(), c.want)
		})
	}
}
