// airframe/errors.go
// Copyright(c) 2024-2025 DBF2025-SizingTool contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package airframe

import "errors"

var (
	ErrInvalidConfiguration = errors.New("Configuration field is not a finite number")
	ErrLengthMismatch       = errors.New("Flap arrays have unequal lengths")
	ErrMissingField         = errors.New("Required field is missing")
	ErrUnexpectedField      = errors.New("Unexpected field")
)
