/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package creator assembles a document.Document into a complete PDF byte
// stream: it resolves font and image resources, emits each page's content
// stream while recording glyph and XObject usage, finalizes font subsets,
// and writes the object graph (fonts, images, pages, page tree, info,
// catalog) followed by the xref table and trailer. Grounded on the
// teacher's model.PdfWriter.Write pipeline (parse/compress/write in
// distinct passes over an object table) but retargeted end to end at
// building fresh objects from document.Document rather than editing an
// already-parsed PDF.
package creator

import (
	"fmt"
	"sort"

	"github.com/rupdf/rupdf-go/common"
	"github.com/rupdf/rupdf-go/core"
	"github.com/rupdf/rupdf-go/document"
	"github.com/rupdf/rupdf-go/internal/timeutils"
	"github.com/rupdf/rupdf-go/model"
)

// assembler holds the per-call state render.Render's single invocation
// needs: the resolved resource caches and the growing object table. Never
// reused across calls (spec.md §5: no retained state between renders).
type assembler struct {
	doc     *document.Document
	encoder core.StreamEncoder
	table   *core.ObjectTable

	fonts  map[string]*model.PdfFont
	images map[string]*resolvedImage

	// xobjNames allocates the single, document-wide XObject resource name
	// each image keeps across every page's resource dictionary (spec.md
	// §1: image XObjects are shared, not duplicated per page).
	xobjNames *model.PdfPageResources

	gsNames map[[2]float64]core.PdfObjectName
	gsDicts map[core.PdfObjectName]*core.PdfObjectDictionary
}

// Assemble renders doc into a complete PDF byte stream, compressing
// content and stream bodies with Flate when compress is true.
func Assemble(doc *document.Document, compress bool) ([]byte, error) {
	a := &assembler{
		doc:       doc,
		fonts:     map[string]*model.PdfFont{},
		images:    map[string]*resolvedImage{},
		xobjNames: model.NewPdfPageResources(),
		gsNames:   map[[2]float64]core.PdfObjectName{},
		gsDicts:   map[core.PdfObjectName]*core.PdfObjectDictionary{},
	}
	if compress {
		a.encoder = core.NewFlateEncoder()
	} else {
		a.encoder = core.NewRawEncoder()
	}

	for _, p := range doc.Pages {
		if err := p.Validate(); err != nil {
			return nil, err
		}
		for _, el := range p.Elements {
			if err := el.Validate(); err != nil {
				return nil, err
			}
		}
	}

	a.table = core.NewObjectTable()
	a.table.WriteHeader(7)

	pages := make([]*model.PdfPage, len(a.doc.Pages))
	contents := make([][]byte, len(a.doc.Pages))
	for i, p := range a.doc.Pages {
		page, body, err := a.buildPage(p)
		if err != nil {
			return nil, err
		}
		pages[i] = page
		contents[i] = body
	}

	fontAliases := make([]string, 0, len(a.fonts))
	for alias := range a.fonts {
		fontAliases = append(fontAliases, alias)
	}
	sort.Strings(fontAliases)
	for _, alias := range fontAliases {
		if _, err := a.fonts[alias].WriteTo(a.table, a.encoder); err != nil {
			return nil, fmt.Errorf("creator: embed font %q: %w", alias, err)
		}
	}

	imageAliases := make([]string, 0, len(a.images))
	for alias := range a.images {
		imageAliases = append(imageAliases, alias)
	}
	sort.Strings(imageAliases)
	for _, alias := range imageAliases {
		img := a.images[alias]
		img.stream.ObjectNumber = a.table.Alloc()
		a.table.WriteObject(img.stream.ObjectNumber, img.stream)
		common.Log.Debug("creator: wrote image xobject %q as object %d", alias, img.stream.ObjectNumber)
	}

	pagesTreeNum := a.table.Alloc()
	pagesTreeRef := &core.PdfIndirectObject{PdfObjectReference: core.PdfObjectReference{ObjectNumber: pagesTreeNum}}
	catalogNum := a.table.Alloc()
	infoNum := a.table.Alloc()

	kids := make([]core.PdfObject, len(pages))
	for i, page := range pages {
		page.Parent = pagesTreeRef

		streamObj, err := core.MakeStream(contents[i], a.encoder)
		if err != nil {
			return nil, fmt.Errorf("creator: encode page %d content: %w", i, err)
		}
		page.Contents = streamObj

		indirect := page.Indirect()
		indirect.ObjectNumber = a.table.Alloc()
		a.table.WriteObject(indirect.ObjectNumber, page.ToPdfObject())
		kids[i] = indirect
	}

	pagesDict := core.MakeDict()
	pagesDict.Set("Type", core.MakeName("Pages"))
	pagesDict.Set("Kids", core.MakeArray(kids...))
	pagesDict.Set("Count", core.MakeInteger(int64(len(pages))))
	a.table.WriteObject(pagesTreeNum, pagesDict)

	infoDict := a.buildInfoDict()
	a.table.WriteObject(infoNum, infoDict)
	infoRef := &core.PdfObjectReference{ObjectNumber: infoNum}

	catalogDict := core.MakeDict()
	catalogDict.Set("Type", core.MakeName("Catalog"))
	catalogDict.Set("Pages", pagesTreeRef)
	a.table.WriteObject(catalogNum, catalogDict)
	catalogRef := &core.PdfObjectReference{ObjectNumber: catalogNum}

	return a.table.Finalize(catalogRef, infoRef), nil
}

// buildInfoDict builds the /Info dictionary, always carrying a Producer
// entry and consulting doc.Metadata for the rest. CreationDate is omitted
// when unset rather than defaulted to wall-clock time, so that rendering
// the same Document twice produces byte-identical output.
func (a *assembler) buildInfoDict() *core.PdfObjectDictionary {
	m := a.doc.Metadata
	d := core.MakeDict()
	if m.Title != "" {
		d.Set("Title", infoString(m.Title))
	}
	if m.Author != "" {
		d.Set("Author", infoString(m.Author))
	}
	if m.Subject != "" {
		d.Set("Subject", infoString(m.Subject))
	}
	if m.Creator != "" {
		d.Set("Creator", infoString(m.Creator))
	}
	producer := m.Producer
	if producer == "" {
		producer = "rupdf"
	}
	d.Set("Producer", infoString(producer))

	if !m.CreationDate.IsZero() {
		d.Set("CreationDate", core.MakeString(timeutils.FormatPdfTime(m.CreationDate)))
	}

	return d
}

// infoString encodes an /Info entry: PDFDocEncoding when s is plain ASCII,
// UTF-16BE with a byte-order mark otherwise (spec.md §6).
func infoString(s string) *core.PdfObjectString {
	return core.MakeEncodedString(s, !isASCII(s))
}

func isASCII(s string) bool {
	for _, r := range s {
		if r > 127 {
			return false
		}
	}
	return true
}
