/*
 * Copyright (C) 2020-2024 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package report

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/ARM-software/numeric-overflow/commonerrors"
)

const reportFilePermissions = 0o644

// Sink is the destination of a report.
type Sink interface {
	io.WriteCloser
	// Name describes the destination.
	Name() string
}

type writerSink struct {
	io.Writer
}

func (s *writerSink) Close() error {
	return nil
}

func (s *writerSink) Name() string {
	if s.Writer == os.Stdout {
		return "standard output"
	}
	return "writer"
}

type fileSink struct {
	*bufio.Writer
	file afero.File
}

func (s *fileSink) Close() error {
	return commonerrors.Join(s.Flush(), s.file.Close())
}

func (s *fileSink) Name() string {
	return s.file.Name()
}

// NewStdoutSink returns a sink writing to the standard output.
func NewStdoutSink() Sink {
	return NewWriterSink(os.Stdout)
}

// NewWriterSink returns a sink writing to w. Closing the sink does not close w.
func NewWriterSink(w io.Writer) Sink {
	return &writerSink{Writer: w}
}

// NewFileSink returns a sink writing to the file at path on the file system fs. The file is truncated if it exists.
func NewFileSink(fs afero.Fs, path string) (Sink, error) {
	if fs == nil {
		return nil, commonerrors.New(commonerrors.ErrUndefined, "missing file system")
	}
	if strings.TrimSpace(path) == "" {
		return nil, commonerrors.New(commonerrors.ErrEmpty, "missing report path")
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := fs.MkdirAll(dir, 0o755); err != nil {
			return nil, commonerrors.WrapErrorf(commonerrors.ErrUnexpected, err, "could not create directory %v", dir)
		}
	}
	f, err := fs.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, reportFilePermissions)
	if err != nil {
		return nil, commonerrors.WrapErrorf(commonerrors.ErrUnexpected, err, "could not open report file %v", path)
	}
	return &fileSink{Writer: bufio.NewWriter(f), file: f}, nil
}

// NewSink returns a sink writing to the file at path on fs or to the standard output if path is empty.
func NewSink(fs afero.Fs, path string) (Sink, error) {
	if strings.TrimSpace(path) == "" {
		return NewStdoutSink(), nil
	}
	return NewFileSink(fs, path)
}
