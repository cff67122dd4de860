/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package model

import (
	"errors"
	"fmt"

	"github.com/rupdf/rupdf-go/core"
)

// Errors surfaced while building font, image and page resources.
var (
	ErrRequiredAttributeMissing = errors.New("required attribute missing")
	ErrNoFont                   = errors.New("font not defined")
	ErrFontNotSupported         = fmt.Errorf("unsupported font (%v)", core.ErrNotSupported)
)
