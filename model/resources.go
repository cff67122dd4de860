/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package model

import (
	"fmt"
	"sort"

	"github.com/rupdf/rupdf-go/core"
)

// PdfPageResources is a page's /Resources dictionary: named fonts, XObjects (image
// and form) and ExtGState dictionaries referenced from the page's content stream.
// Grounded on the teacher's model/resources.go PdfPageResources, trimmed to the
// three subdictionaries the assembler ever populates — colorspaces, patterns and
// shadings are never constructed here (DeviceRGB only, no gradients).
type PdfPageResources struct {
	fonts      map[core.PdfObjectName]core.PdfObject
	xobjects   map[core.PdfObjectName]core.PdfObject
	extGStates map[core.PdfObjectName]core.PdfObject
	nextXObj   int
}

// NewPdfPageResources returns an empty resource dictionary.
func NewPdfPageResources() *PdfPageResources {
	return &PdfPageResources{
		fonts:      map[core.PdfObjectName]core.PdfObject{},
		xobjects:   map[core.PdfObjectName]core.PdfObject{},
		extGStates: map[core.PdfObjectName]core.PdfObject{},
	}
}

// SetFontByName registers a font resource under name.
func (r *PdfPageResources) SetFontByName(name core.PdfObjectName, obj core.PdfObject) {
	r.fonts[name] = obj
}

// SetXObjectByName registers an image or form XObject under name.
func (r *PdfPageResources) SetXObjectByName(name core.PdfObjectName, obj core.PdfObject) {
	r.xobjects[name] = obj
}

// GenerateXObjectName returns a fresh, unused XObject resource name (Im0, Im1, ...).
func (r *PdfPageResources) GenerateXObjectName() core.PdfObjectName {
	for {
		name := core.PdfObjectName(fmt.Sprintf("Im%d", r.nextXObj))
		r.nextXObj++
		if _, used := r.xobjects[name]; !used {
			return name
		}
	}
}

// SetExtGState registers an ExtGState dictionary under name.
func (r *PdfPageResources) SetExtGState(name core.PdfObjectName, obj core.PdfObject) {
	r.extGStates[name] = obj
}

// ToPdfObject returns the /Resources dictionary.
func (r *PdfPageResources) ToPdfObject() core.PdfObject {
	d := core.MakeDict()

	if len(r.fonts) > 0 {
		fontDict := core.MakeDict()
		for _, name := range sortedNames(r.fonts) {
			fontDict.Set(name, r.fonts[name])
		}
		d.Set("Font", fontDict)
	}
	if len(r.xobjects) > 0 {
		xobjDict := core.MakeDict()
		for _, name := range sortedNames(r.xobjects) {
			xobjDict.Set(name, r.xobjects[name])
		}
		d.Set("XObject", xobjDict)
	}
	if len(r.extGStates) > 0 {
		gsDict := core.MakeDict()
		for _, name := range sortedNames(r.extGStates) {
			gsDict.Set(name, r.extGStates[name])
		}
		d.Set("ExtGState", gsDict)
	}
	d.Set("ProcSet", core.MakeArray(core.MakeName("PDF"), core.MakeName("Text"), core.MakeName("ImageC")))

	return d
}

// sortedNames returns m's keys in ascending order, so each subdictionary
// serializes its entries in the same order on every render.
func sortedNames(m map[core.PdfObjectName]core.PdfObject) []core.PdfObjectName {
	names := make([]core.PdfObjectName, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}
