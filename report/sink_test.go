package report

import (
	"bytes"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/go-faker/faker/v4"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ARM-software/numeric-overflow/commonerrors"
	"github.com/ARM-software/numeric-overflow/commonerrors/errortest"
	"github.com/ARM-software/numeric-overflow/logs"
)

func TestFileSink(t *testing.T) {
	fs := afero.NewMemMapFs()
	path := filepath.Join("reports", fmt.Sprintf("%v.txt", faker.Word()))
	require.NoError(t, afero.WriteFile(fs, path, []byte("previous content which is longer than the report"), 0o644))

	sink, err := NewSink(fs, path)
	require.NoError(t, err)
	assert.Equal(t, path, sink.Name())
	_, err = sink.Write([]byte(StartBanner))
	require.NoError(t, err)
	require.NoError(t, sink.Close())

	content, err := afero.ReadFile(fs, path)
	require.NoError(t, err)
	assert.Equal(t, StartBanner, string(content))
}

func TestFileSink_Report(t *testing.T) {
	fs := afero.NewMemMapFs()
	sink, err := NewFileSink(fs, "report.txt")
	require.NoError(t, err)
	logger, err := logs.NewNoopLogger("test")
	require.NoError(t, err)
	r, err := NewReporter(sink, logger, WithCases(testCases()...))
	require.NoError(t, err)
	_, err = r.Run()
	require.NoError(t, err)
	require.NoError(t, sink.Close())

	content, err := afero.ReadFile(fs, "report.txt")
	require.NoError(t, err)
	assert.Equal(t, expectedReport, string(content))
}

func TestFileSink_Errors(t *testing.T) {
	_, err := NewFileSink(nil, "report.txt")
	errortest.AssertError(t, err, commonerrors.ErrUndefined)
	_, err = NewFileSink(afero.NewMemMapFs(), " ")
	errortest.AssertError(t, err, commonerrors.ErrEmpty)
	_, err = NewFileSink(afero.NewReadOnlyFs(afero.NewMemMapFs()), "report.txt")
	errortest.AssertError(t, err, commonerrors.ErrUnexpected)
}

func TestWriterSink(t *testing.T) {
	var buf bytes.Buffer
	sink := NewWriterSink(&buf)
	assert.Equal(t, "writer", sink.Name())
	_, err := sink.Write([]byte(EndBanner))
	require.NoError(t, err)
	require.NoError(t, sink.Close())
	assert.Equal(t, EndBanner, buf.String())

	sink, err = NewSink(afero.NewMemMapFs(), "")
	require.NoError(t, err)
	assert.Equal(t, "standard output", sink.Name())
	require.NoError(t, sink.Close())
}
