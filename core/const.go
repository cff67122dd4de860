/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package core

import "errors"

// Common sentinel errors returned while building and writing the PDF object graph.
var (
	ErrTypeError    = errors.New("type check error")
	ErrRangeError   = errors.New("range check error")
	ErrNotSupported = errors.New("feature not currently supported")
	ErrNotANumber   = errors.New("not a number")
)
