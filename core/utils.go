/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package core

import (
	"errors"

	"github.com/rupdf/rupdf-go/common"
)

// Check slice range to make sure within bounds for accessing:
//    slice[a:b] where sliceLen=len(slice).
func checkBounds(sliceLen, a, b int) error {
	if a < 0 || a > sliceLen {
		return errors.New("slice index a out of bounds")
	}
	if b < a {
		return errors.New("invalid slice index b < a")
	}
	if b > sliceLen {
		return errors.New("slice index b out of bounds")
	}

	return nil
}

// ResolveReference returns `obj` unchanged unless it is a *PdfObjectReference, which this package
// never produces on the write path: indirect relationships are built with direct object pointers,
// not by number, so a reference reaching here always indicates a construction bug upstream.
func ResolveReference(obj PdfObject) PdfObject {
	if _, isRef := obj.(*PdfObjectReference); isRef {
		common.Log.Debug("ERROR: cannot resolve a bare reference object in a write-only document")
		return MakeNull()
	}
	return obj
}

// ResolveReferencesDeep recursively traverses through object `o`, confirming that no bare
// reference objects are reachable from it. Optionally a map of already-traversed objects can be
// provided via `traversed` to avoid revisiting the same object multiple times.
func ResolveReferencesDeep(o PdfObject, traversed map[PdfObject]struct{}) error {
	if traversed == nil {
		traversed = map[PdfObject]struct{}{}
	}
	return resolveReferencesDeep(o, 0, traversed)
}

func resolveReferencesDeep(o PdfObject, depth int, traversed map[PdfObject]struct{}) error {
	common.Log.Trace("Traverse object data (depth = %d)", depth)
	if _, isTraversed := traversed[o]; isTraversed {
		common.Log.Trace("-Already traversed...")
		return nil
	}
	traversed[o] = struct{}{}

	switch t := o.(type) {
	case *PdfIndirectObject:
		io := t
		common.Log.Trace("io: %s", io)
		common.Log.Trace("- %s", io.PdfObject)
		return resolveReferencesDeep(io.PdfObject, depth+1, traversed)
	case *PdfObjectStream:
		so := t
		return resolveReferencesDeep(so.PdfObjectDictionary, depth+1, traversed)
	case *PdfObjectDictionary:
		dict := t
		common.Log.Trace("- dict: %s", dict)
		for _, name := range dict.Keys() {
			if err := resolveReferencesDeep(dict.Get(name), depth+1, traversed); err != nil {
				return err
			}
		}
		return nil
	case *PdfObjectArray:
		arr := t
		common.Log.Trace("- array: %s", arr)
		for _, v := range arr.Elements() {
			if err := resolveReferencesDeep(v, depth+1, traversed); err != nil {
				return err
			}
		}
		return nil
	case *PdfObjectReference:
		common.Log.Debug("ERROR: Tracing a reference!")
		return errors.New("error tracing a reference")
	}

	return nil
}

// IsPrintable reports whether c lies in the range '!' (0x21) to '~' (0x7E);
// name characters outside it are written in #xx hexadecimal notation.
func IsPrintable(c byte) bool {
	return 0x21 <= c && c <= 0x7E
}

// IsDelimiter reports whether c is one of the PDF delimiter characters.
func IsDelimiter(c byte) bool {
	return c == '(' || c == ')' || c == '<' || c == '>' || c == '[' || c == ']' || c == '{' || c == '}' || c == '/' || c == '%'
}
