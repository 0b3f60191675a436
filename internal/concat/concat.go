/*
 * Copyright (c) Meta Platforms, Inc. and affiliates.
 *
 * This source code is dual-licensed under either the MIT license found in the
 * LICENSE-MIT file in the root directory of this source tree or the Apache
 * License, Version 2.0 found in the LICENSE-APACHE file in the root directory
 * of this source tree. You may select, at your option, one of the
 * above-listed licenses.
 */

// Package concat writes the byte-for-byte concatenation of a list of source
// files, in order, to a destination.
package concat

import (
	"io"
	"log/slog"
	"os"

	"cloudeng.io/errors"
)

// Result describes a finished (or partially finished) concatenation.
type Result struct {
	Dest    string
	Sources int   // number of sources fully copied
	Bytes   int64 // bytes written to the destination
}

type options struct {
	logger *slog.Logger
}

// Option configures Files and Writer.
type Option func(*options)

// WithLogger sets the logger used to report every copied source.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

func newOptions(opts []Option) *options {
	o := &options{logger: slog.New(slog.DiscardHandler)}
	for _, fn := range opts {
		fn(o)
	}
	return o
}

// Files creates or truncates dest and writes the contents of srcs to it in
// order. The destination is flushed to stable storage and closed before
// Files returns. A failing source aborts the run and leaves the bytes of the
// preceding sources in dest.
func Files(dest string, srcs []string, opts ...Option) (Result, error) {
	res := Result{Dest: dest}
	if len(srcs) == 0 {
		return res, ErrNoSources
	}
	if err := checkDistinct(dest, srcs); err != nil {
		return res, err
	}
	o := newOptions(opts)

	f, err := os.Create(dest)
	if err != nil {
		return res, &DestinationError{Path: dest, Op: "create", Err: err}
	}
	o.logger.Debug("Opened destination", "dest", dest)

	res, err = copyAll(f, dest, srcs, o)

	errs := &errors.M{}
	errs.Append(err)
	if err == nil {
		if err := syncFile(f); err != nil {
			errs.Append(&DestinationError{Path: dest, Op: "sync", Err: err})
		}
	}
	if err := f.Close(); err != nil {
		errs.Append(&DestinationError{Path: dest, Op: "close", Err: err})
	}
	return res, errs.Err()
}

// Writer writes the contents of srcs to w in order. Unlike Files it neither
// flushes nor closes w.
func Writer(w io.Writer, srcs []string, opts ...Option) (Result, error) {
	if len(srcs) == 0 {
		return Result{}, ErrNoSources
	}
	return copyAll(w, "", srcs, newOptions(opts))
}

func copyAll(w io.Writer, dest string, srcs []string, o *options) (Result, error) {
	res := Result{Dest: dest}
	tw := &trackingWriter{w: w}
	for i, src := range srcs {
		n, err := copyFrom(tw, src)
		res.Bytes += n
		if err != nil {
			if tw.err != nil {
				return res, &DestinationError{Path: dest, Op: "write", Err: tw.err}
			}
			return res, &SourceError{Path: src, Index: i, Err: err}
		}
		res.Sources++
		o.logger.Debug("Copied source", "src", src, "bytes", n)
	}
	return res, nil
}

func copyFrom(w io.Writer, src string) (int64, error) {
	f, err := os.Open(src)
	if err != nil {
		return 0, err
	}
	defer f.Close()
	return io.Copy(w, f)
}

// trackingWriter remembers the first write error so that copy failures can
// be attributed to the destination rather than the source.
type trackingWriter struct {
	w   io.Writer
	err error
}

func (t *trackingWriter) Write(p []byte) (int, error) {
	n, err := t.w.Write(p)
	if err != nil && t.err == nil {
		t.err = err
	}
	return n, err
}

// checkDistinct refuses sources that are the destination itself, which
// os.Create would truncate before they are read. Sources that cannot be
// stat'ed are left for the copy loop to report.
func checkDistinct(dest string, srcs []string) error {
	dfi, err := os.Stat(dest)
	if err != nil {
		return nil
	}
	for i, src := range srcs {
		sfi, err := os.Stat(src)
		if err != nil {
			continue
		}
		if os.SameFile(dfi, sfi) {
			return &SourceError{Path: src, Index: i, Err: ErrSourceIsDestination}
		}
	}
	return nil
}
