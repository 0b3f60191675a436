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
	"os"

	"golang.org/x/sys/unix"
)

func syncFile(f *os.File) error {
	err := unix.Fdatasync(int(f.Fd()))
	if err == unix.EINVAL {
		// Character devices and pipes such as /dev/stdout can't be synced.
		return nil
	}
	return err
}
