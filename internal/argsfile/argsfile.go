/*
 * Copyright (c) Meta Platforms, Inc. and affiliates.
 *
 * This source code is dual-licensed under either the MIT license found in the
 * LICENSE-MIT file in the root directory of this source tree or the Apache
 * License, Version 2.0 found in the LICENSE-APACHE file in the root directory
 * of this source tree. You may select, at your option, one of the
 * above-listed licenses.
 */

// Package argsfile expands "@file" command line arguments, one argument per
// line, as build systems emit them for long command lines.
package argsfile

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Expand replaces every argument of the form @path with the non-empty lines
// of the file at path. Other arguments are returned unchanged.
func Expand(args []string) ([]string, error) {
	newArgs := make([]string, 0, len(args))
	for _, arg := range args {
		if !strings.HasPrefix(arg, "@") || len(arg) == 1 {
			newArgs = append(newArgs, arg)
			continue
		}
		lines, err := readLines(arg[1:])
		if err != nil {
			return nil, fmt.Errorf("can't read args file: %w", err)
		}
		newArgs = append(newArgs, lines...)
	}
	return newArgs, nil
}

func readLines(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	// Paths in generated args files can get long.
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return lines, nil
}
