/*
 * Copyright (c) Meta Platforms, Inc. and affiliates.
 *
 * This source code is dual-licensed under either the MIT license found in the
 * LICENSE-MIT file in the root directory of this source tree or the Apache
 * License, Version 2.0 found in the LICENSE-APACHE file in the root directory
 * of this source tree. You may select, at your option, one of the
 * above-listed licenses.
 */

// concat_files writes the concatenation of one or more binary files to a
// destination file:
//
//	concat_files [-v] [-output dest] dest src [src ...]
//	concat_files [-v] -manifest jobs.yaml
//
// Arguments of the form @file are replaced by the lines of file.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mentlerd/concatfiles/internal/argsfile"
	"github.com/mentlerd/concatfiles/internal/concat"
	"github.com/mentlerd/concatfiles/internal/manifest"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

const usage = `usage: concat_files [-v] [-output dest] dest src [src ...]
       concat_files [-v] -manifest jobs.yaml
`

var errUsage = errors.New("usage error")

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

func run(args []string, stderr io.Writer) int {
	args, err := argsfile.Expand(args)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	fs := flag.NewFlagSet("concat_files", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprint(stderr, usage)
		fs.PrintDefaults()
	}
	outputFile := fs.String("output", "", "destination file; all positional arguments are sources")
	manifestFile := fs.String("manifest", "", "YAML file listing concatenation jobs")
	verbose := fs.Bool("v", false, "enable debug logging")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	jobs, err := jobsFromArgs(*outputFile, *manifestFile, fs.Args())
	if err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprintf(stderr, "%v\n%s", err, usage)
			return exitUsage
		}
		logger.Error("Error reading manifest", "err", err)
		return exitError
	}

	for _, job := range jobs {
		res, err := concat.Files(job.Output, job.Inputs, concat.WithLogger(logger))
		if err != nil {
			logger.Error("Error concatenating files", "dest", job.Output, "err", err)
			return exitError
		}
		logger.Debug("Wrote destination", "dest", res.Dest, "sources", res.Sources, "bytes", res.Bytes)
	}
	return exitOK
}

func jobsFromArgs(outputFile, manifestFile string, positional []string) ([]manifest.Job, error) {
	if manifestFile != "" {
		if outputFile != "" || len(positional) > 0 {
			return nil, fmt.Errorf("%w: -manifest can't be combined with -output or positional arguments", errUsage)
		}
		m, err := manifest.Load(manifestFile)
		if err != nil {
			return nil, err
		}
		return m.Jobs, nil
	}

	if outputFile == "" {
		if len(positional) == 0 {
			return nil, fmt.Errorf("%w: missing destination", errUsage)
		}
		outputFile, positional = positional[0], positional[1:]
	}
	if len(positional) == 0 {
		return nil, fmt.Errorf("%w: at least one source is required", errUsage)
	}
	return []manifest.Job{{Output: outputFile, Inputs: positional}}, nil
}
