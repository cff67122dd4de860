/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package core

import "fmt"

// ObjectTable owns the growing output buffer, allocates sequential object
// numbers and records the byte offset of each object as it is emitted, so
// it can produce the classic xref table and trailer at the end. Adapted
// from model/writer.go's PdfWriter.Write: only the "else" branch of that
// function survives here — the literal xref-table writer — since spec.md
// §4.1 calls for the classic 20-byte-entry table, never a cross-reference
// *stream* (the teacher supports both; this assembler never needs to
// produce the stream form, nor any of the incremental-update/encryption
// machinery PdfWriter carries for editing existing files).
type ObjectTable struct {
	buf     []byte
	offsets []int64 // index 0 is the free-list head, entry 0 always.
	nextNum int64
}

// NewObjectTable returns an empty object table, ready to receive a header.
func NewObjectTable() *ObjectTable {
	return &ObjectTable{
		offsets: []int64{0}, // object 0 is the head of the free list.
		nextNum: 1,
	}
}

// Alloc reserves the next sequential object number. The object's offset
// slot is recorded once WriteObject is called with this number.
func (t *ObjectTable) Alloc() int64 {
	num := t.nextNum
	t.nextNum++
	t.offsets = append(t.offsets, 0)
	return num
}

// Offset returns the current length of the buffer, i.e. where the next
// byte written will land.
func (t *ObjectTable) Offset() int64 {
	return int64(len(t.buf))
}

// WriteHeader writes the PDF version comment and the mandatory binary
// marker line (four bytes >= 0x80, signaling binary content to readers
// that sniff the first few lines), per spec.md §6.
func (t *ObjectTable) WriteHeader(minorVersion int) {
	t.writeString(fmt.Sprintf("%%PDF-1.%d\n", minorVersion))
	t.buf = append(t.buf, 0x25, 0xE2, 0xE3, 0xCF, 0xD3, 0x0A)
}

// WriteObject serializes obj as an indirect object (`num 0 obj ... endobj`)
// at the table's current offset, recording that offset for num.
func (t *ObjectTable) WriteObject(num int64, obj PdfObject) {
	t.recordOffset(num)
	t.writeString(fmt.Sprintf("%d 0 obj\n", num))
	if stream, ok := obj.(*PdfObjectStream); ok {
		t.writeStreamBody(stream)
	} else {
		t.writeString(obj.WriteString())
		t.writeString("\n")
	}
	t.writeString("endobj\n")
}

func (t *ObjectTable) writeStreamBody(stream *PdfObjectStream) {
	t.writeString(stream.PdfObjectDictionary.WriteString())
	t.writeString("\nstream\n")
	t.buf = append(t.buf, stream.Stream...)
	t.writeString("\nendstream\n")
}

func (t *ObjectTable) recordOffset(num int64) {
	for int64(len(t.offsets)) <= num {
		t.offsets = append(t.offsets, 0)
	}
	t.offsets[num] = t.Offset()
}

func (t *ObjectTable) writeString(s string) {
	t.buf = append(t.buf, s...)
}

// Finalize appends the xref table and trailer, referencing root and info,
// and returns the complete byte stream.
func (t *ObjectTable) Finalize(root, info *PdfObjectReference) []byte {
	xrefOffset := t.Offset()

	maxIndex := int64(len(t.offsets) - 1)
	t.writeString("xref\n")
	t.writeString(fmt.Sprintf("%d %d\n", 0, maxIndex+1))
	for idx := int64(0); idx <= maxIndex; idx++ {
		if idx == 0 {
			t.writeString(fmt.Sprintf("%010d %05d f \n", 0, 65535))
			continue
		}
		t.writeString(fmt.Sprintf("%010d %05d n \n", t.offsets[idx], 0))
	}

	trailer := MakeDict()
	trailer.Set("Size", MakeInteger(maxIndex+1))
	trailer.Set("Root", root)
	if info != nil {
		trailer.Set("Info", info)
	}
	t.writeString("trailer\n")
	t.writeString(trailer.WriteString())
	t.writeString("\n")

	t.writeString(fmt.Sprintf("startxref\n%d\n%%%%EOF", xrefOffset))

	return t.buf
}
