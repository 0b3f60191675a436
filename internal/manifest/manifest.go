/*
 * Copyright (c) Meta Platforms, Inc. and affiliates.
 *
 * This source code is dual-licensed under either the MIT license found in the
 * LICENSE-MIT file in the root directory of this source tree or the Apache
 * License, Version 2.0 found in the LICENSE-APACHE file in the root directory
 * of this source tree. You may select, at your option, one of the
 * above-listed licenses.
 */

// Package manifest reads YAML files describing a batch of concatenations:
//
//	jobs:
//	  - output: out/firmware.bin
//	    inputs: [boot.bin, app.bin]
package manifest

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
)

// Job is a single destination and its ordered sources.
type Job struct {
	Output string   `yaml:"output"`
	Inputs []string `yaml:"inputs"`
}

// Manifest is an ordered list of jobs.
type Manifest struct {
	Jobs []Job `yaml:"jobs"`
}

// Parse decodes and validates a manifest. Unknown fields are rejected.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.UnmarshalWithOptions(data, &m, yaml.Strict()); err != nil {
		return nil, errors.New(yaml.FormatError(err, false, true))
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Load reads the manifest at path. Relative paths in it are resolved against
// the directory containing the manifest.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	m.resolve(filepath.Dir(path))
	return m, nil
}

// Validate checks that there is at least one job and that every job names
// an output and at least one input.
func (m *Manifest) Validate() error {
	if len(m.Jobs) == 0 {
		return errors.New("manifest has no jobs")
	}
	for i, job := range m.Jobs {
		if job.Output == "" {
			return fmt.Errorf("job #%d: output is required", i)
		}
		if len(job.Inputs) == 0 {
			return fmt.Errorf("job #%d (%s): at least one input is required", i, job.Output)
		}
		for j, in := range job.Inputs {
			if in == "" {
				return fmt.Errorf("job #%d (%s): input #%d is empty", i, job.Output, j)
			}
		}
	}
	return nil
}

func (m *Manifest) resolve(dir string) {
	abs := func(p string) string {
		if filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(dir, p)
	}
	for i := range m.Jobs {
		job := &m.Jobs[i]
		job.Output = abs(job.Output)
		for j := range job.Inputs {
			job.Inputs[j] = abs(job.Inputs[j])
		}
	}
}
