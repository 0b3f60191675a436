/*
 * Copyright (c) Meta Platforms, Inc. and affiliates.
 *
 * This source code is dual-licensed under either the MIT license found in the
 * LICENSE-MIT file in the root directory of this source tree or the Apache
 * License, Version 2.0 found in the LICENSE-APACHE file in the root directory
 * of this source tree. You may select, at your option, one of the
 * above-listed licenses.
 */

package concat

import (
	"errors"
	"fmt"
)

var (
	// ErrNoSources is returned when no source files are given.
	ErrNoSources = errors.New("at least one source file is required")
	// ErrSourceIsDestination is returned when a source refers to the same
	// file as the destination.
	ErrSourceIsDestination = errors.New("source file is the destination file")
)

// DestinationError reports a failure on the destination file. Op is one of
// "create", "write", "sync" or "close".
type DestinationError struct {
	Path string
	Op   string
	Err  error
}

func (e *DestinationError) Error() string {
	return fmt.Sprintf("can't %s destination %s: %v", e.Op, e.Path, e.Err)
}

func (e *DestinationError) Unwrap() error { return e.Err }

// SourceError reports a failure on the source at position Index.
type SourceError struct {
	Path  string
	Index int
	Err   error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("source #%d %s: %v", e.Index, e.Path, e.Err)
}

func (e *SourceError) Unwrap() error { return e.Err }
