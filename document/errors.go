/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package document

import "fmt"

// ValidationError reports a malformed document: a missing required field,
// a resource naming both or neither of path/bytes, or a page with
// non-positive dimensions. Grounded on the teacher's sentinel-error
// convention (core.Err*) but carrying the offending field name, matching
// spec.md §7's "human-readable message" single error kind.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("document: %s: %s", e.Field, e.Reason)
}
