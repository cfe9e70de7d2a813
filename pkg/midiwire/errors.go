// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Auralux Instruments

package midiwire

import "fmt"

// OutOfRangeError is returned by a bounded-value constructor when the given
// integer exceeds the type's bit width. It is always recoverable: reject the
// input, do not retry with the same value.
type OutOfRangeError struct {
	Kind  string // value type name, e.g. "Value7"
	Value int
	Max   int
}

// Error implements the error interface
func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("%s out of range: %d (max %d)", e.Kind, e.Value, e.Max)
}
