/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package creator

import (
	"fmt"

	"github.com/rupdf/rupdf-go/contentstream"
	"github.com/rupdf/rupdf-go/core"
	"github.com/rupdf/rupdf-go/model"
)

// withAlpha wraps draw in q/Q and an ExtGState /CA /ca pair when either
// strokeAlpha or fillAlpha is below opaque (spec.md §4.4), registering the
// dict in page's resources. (CA, ca) pairs are deduplicated across the
// whole document since the same pair recurs across elements sharing a
// color's alpha.
func (a *assembler) withAlpha(cc *contentstream.ContentCreator, page *model.PdfPage, strokeAlpha, fillAlpha float64, draw func()) {
	isolate := strokeAlpha < 1 || fillAlpha < 1
	if isolate {
		cc.Add_q()
		cc.Add_gs(a.extGStateName(page, strokeAlpha, fillAlpha))
	}
	draw()
	if isolate {
		cc.Add_Q()
	}
}

// extGStateName returns the resource name for the (CA, ca) pair, creating
// and registering the dictionary on first use.
func (a *assembler) extGStateName(page *model.PdfPage, ca, cfill float64) core.PdfObjectName {
	key := [2]float64{ca, cfill}
	name, ok := a.gsNames[key]
	if !ok {
		name = core.PdfObjectName(fmt.Sprintf("GS%d", len(a.gsNames)))
		dict := core.MakeDict()
		dict.Set("Type", core.MakeName("ExtGState"))
		dict.Set("CA", core.MakeFloat(ca))
		dict.Set("ca", core.MakeFloat(cfill))
		a.gsNames[key] = name
		a.gsDicts[name] = dict
	}
	page.Resources.SetExtGState(name, a.gsDicts[name])
	return name
}
