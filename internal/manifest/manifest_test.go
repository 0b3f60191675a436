/*
 * Copyright (c) Meta Platforms, Inc. and affiliates.
 *
 * This source code is dual-licensed under either the MIT license found in the
 * LICENSE-MIT file in the root directory of this source tree or the Apache
 * License, Version 2.0 found in the LICENSE-APACHE file in the root directory
 * of this source tree. You may select, at your option, one of the
 * above-listed licenses.
 */

package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	m, err := Parse([]byte(`
jobs:
  - output: out.bin
    inputs:
      - a.bin
      - b.bin
  - output: other.bin
    inputs: [c.bin]
`))
	require.NoError(t, err)
	require.Equal(t, []Job{
		{Output: "out.bin", Inputs: []string{"a.bin", "b.bin"}},
		{Output: "other.bin", Inputs: []string{"c.bin"}},
	}, m.Jobs)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{
			name:    "no jobs",
			input:   "jobs: []\n",
			wantErr: "manifest has no jobs",
		},
		{
			name:    "missing output",
			input:   "jobs:\n  - inputs: [a.bin]\n",
			wantErr: "job #0: output is required",
		},
		{
			name:    "missing inputs",
			input:   "jobs:\n  - output: out.bin\n",
			wantErr: "job #0 (out.bin): at least one input is required",
		},
		{
			name:    "empty input",
			input:   "jobs:\n  - output: out.bin\n    inputs: [a.bin, \"\"]\n",
			wantErr: "job #0 (out.bin): input #1 is empty",
		},
		{
			name:    "unknown field",
			input:   "jobs:\n  - output: out.bin\n    inputs: [a.bin]\n    append: true\n",
			wantErr: "append",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.input))
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadResolvesRelativePaths(t *testing.T) {
	dir := t.TempDir()
	abs := filepath.Join(dir, "elsewhere", "abs.bin")
	path := filepath.Join(dir, "jobs.yaml")
	require.NoError(t, os.WriteFile(path, []byte("jobs:\n  - output: out/fw.bin\n    inputs: [boot.bin, "+abs+"]\n"), 0o644))

	m, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, []Job{{
		Output: filepath.Join(dir, "out", "fw.bin"),
		Inputs: []string{filepath.Join(dir, "boot.bin"), abs},
	}}, m.Jobs)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.True(t, os.IsNotExist(err))
}
