// SPDX-License-Identifier: MIT

package superop

import "errors"

var (
	// ErrShape indicates that a vector cannot be reshaped into the requested matrix.
	ErrShape = errors.New("superop: invalid shape")

	// ErrEmpty indicates an empty input vector.
	ErrEmpty = errors.New("superop: empty vector")
)
