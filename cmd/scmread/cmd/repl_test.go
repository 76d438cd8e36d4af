package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunReplEchoesDatumsPerLine(t *testing.T) {
	replCmd.SetIn(strings.NewReader("(a b)\n1\n"))

	var out bytes.Buffer
	replCmd.SetOut(&out)

	err := runRepl(replCmd, nil)
	require.NoError(t, err)

	lines := out.String()
	assert.Contains(t, lines, "0: (a b)")
	assert.Contains(t, lines, "0: 1")
}

func TestRunReplReportsErrorAndContinuesByDefault(t *testing.T) {
	replCmd.SetIn(strings.NewReader(")\n"))

	var out bytes.Buffer
	replCmd.SetOut(&out)

	err := runRepl(replCmd, nil)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "0: error:")
}
