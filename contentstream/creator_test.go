/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package contentstream

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rupdf/rupdf-go/core"
)

func TestAddReEmitsRectangleOperator(t *testing.T) {
	cc := NewContentCreator()
	cc.Add_re(10, 20, 100, 50)
	assert.Equal(t, "10 20 100 50 re\n", cc.String())
}

func TestAddCmEmitsSixValueMatrix(t *testing.T) {
	cc := NewContentCreator()
	cc.Add_cm(1, 0, 0, 1, 5, 10)
	assert.Equal(t, "1 0 0 1 5 10 cm\n", cc.String())
}

func TestAddTfEmitsFontNameAndSize(t *testing.T) {
	cc := NewContentCreator()
	cc.Add_Tf("F1", 12)
	assert.Equal(t, "/F1 12 Tf\n", cc.String())
}

func TestAddTjKeepsHexFormOfHexConstructedInput(t *testing.T) {
	// Add_Tj passes its argument through as given, so a PdfObjectString
	// built via MakeHexString serializes as hex digits in angle brackets.
	cc := NewContentCreator()
	cc.Add_Tj(*core.MakeHexString(string([]byte{0x00, 0x41})))
	assert.Equal(t, "<0041> Tj\n", cc.String())
}

func TestSetStrokingAndNonStrokingColorEmitRGAndRg(t *testing.T) {
	cc := NewContentCreator()
	cc.SetStrokingColor(1, 0, 0)
	cc.SetNonStrokingColor(0, 1, 0)
	assert.Equal(t, "1 0 0 RG\n0 1 0 rg\n", cc.String())
}

func TestAddDoEmitsXObjectInvocation(t *testing.T) {
	cc := NewContentCreator()
	cc.Add_Do("Im0")
	assert.Equal(t, "/Im0 Do\n", cc.String())
}

func TestGraphicsStateStackOperatorsHaveNoParams(t *testing.T) {
	cc := NewContentCreator()
	cc.Add_q()
	cc.Add_w(2)
	cc.Add_Q()
	assert.Equal(t, "q\n2 w\nQ\n", cc.String())
}

func TestAddBEmitsFillAndStrokeOperator(t *testing.T) {
	cc := NewContentCreator()
	cc.Add_m(0, 0)
	cc.Add_l(1, 1)
	cc.Add_h()
	cc.Add_B()
	assert.Equal(t, "0 0 m\n1 1 l\nh\nB\n", cc.String())
}
