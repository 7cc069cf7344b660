package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ARM-software/numeric-overflow/commonerrors"
	"github.com/ARM-software/numeric-overflow/commonerrors/errortest"
	"github.com/ARM-software/numeric-overflow/logs"
	"github.com/ARM-software/numeric-overflow/report"
	"github.com/ARM-software/numeric-overflow/scenario"
)

func TestRun_ReportToFile(t *testing.T) {
	t.Setenv("NUMOVF_LOGGER", "")
	t.Setenv("NUMOVF_VERBOSE", "")
	fs := afero.NewMemMapFs()
	var errOutput bytes.Buffer
	run([]string{"--logger", logs.KindNoop, "-o", "out/report.txt"}, fs, &errOutput)

	content, err := afero.ReadFile(fs, "out/report.txt")
	require.NoError(t, err)
	text := string(content)
	assert.True(t, strings.HasPrefix(text, report.StartBanner))
	assert.True(t, strings.HasSuffix(text, report.EndBanner+"\n"))
	for _, c := range scenario.Cases() {
		assert.Contains(t, text, "Overflow Test of Type = "+c.Domain.Label())
		assert.Contains(t, text, "Underflow Test of Type = "+c.Domain.Label())
	}
	assert.Empty(t, errOutput.String())
}

func TestLoadConfiguration(t *testing.T) {
	t.Setenv("NUMOVF_LOGGER", "")
	t.Setenv("NUMOVF_OUTPUT", "")
	t.Setenv("NUMOVF_VERBOSE", "")
	var errOutput bytes.Buffer
	cfg, err := loadConfiguration([]string{"-v", "--logger", logs.KindZap}, &errOutput)
	require.NoError(t, err)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, logs.KindZap, cfg.Logger)
	assert.Empty(t, cfg.Output)

	cfg, err = loadConfiguration([]string{"--logger", "noop,stdr"}, &errOutput)
	require.NoError(t, err)
	assert.Equal(t, "noop,stdr", cfg.Logger)

	cfg, err = loadConfiguration([]string{"--logger", "printer"}, &errOutput)
	errortest.AssertError(t, err, commonerrors.ErrInvalid)
	assert.Equal(t, logs.KindStd, cfg.Logger)

	_, err = loadConfiguration([]string{"--unknown-flag"}, &errOutput)
	require.Error(t, err)
	assert.Contains(t, errOutput.String(), "unknown-flag")
}
