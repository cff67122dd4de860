/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package svgpath

import (
	"fmt"
	"math"
	"strings"

	"github.com/rupdf/rupdf-go/contentstream"
)

// pathCursor tracks the state a path-data walk needs beyond the raw PDF
// operator stream: the current point (for relative commands and implicit
// line-tos), the path's start point (for Z) and the last cubic/quadratic
// control point (for the S/T "smooth" reflection rule).
type pathCursor struct {
	cc                   *contentstream.ContentCreator
	x, y                 float64
	startX, startY       float64
	lastCtrlX, lastCtrlY float64
	lastWasCubic         bool
	lastWasQuad          bool
}

// drawPath tokenizes p.D and emits the equivalent PDF path-construction
// operators, then paints it per p's fill/stroke attributes.
func drawPath(cc *contentstream.ContentCreator, p pathEl) error {
	paint := paintOp(cc, p.paintAttrs)
	cur := &pathCursor{cc: cc}
	toks, err := tokenizePath(p.D)
	if err != nil {
		return err
	}
	if err := cur.run(toks); err != nil {
		return err
	}
	paint()
	return nil
}

// token is one command letter plus its numeric argument list.
type token struct {
	cmd  byte
	args []float64
}

var argCounts = map[byte]int{
	'M': 2, 'L': 2, 'H': 1, 'V': 1, 'C': 6, 'S': 4, 'Q': 4, 'T': 2, 'A': 7, 'Z': 0,
}

// tokenizePath splits an SVG path `d` attribute into commands, handling the
// grammar's implicit command repetition (a bare number after "L 1 2" means
// another "L"), comma/whitespace-insensitivity and the scientific/decimal
// number forms SVG path data allows.
func tokenizePath(d string) ([]token, error) {
	d = strings.TrimSpace(d)
	var toks []token
	i := 0
	n := len(d)
	var cmd byte
	for i < n {
		c := d[i]
		switch {
		case c == ' ' || c == ',' || c == '\t' || c == '\n' || c == '\r':
			i++
			continue
		case isCommandLetter(c):
			cmd = c
			i++
		case cmd == 0:
			return nil, fmt.Errorf("svgpath: path data does not start with a command: %q", d)
		}

		upper := upperCmd(cmd)
		count, ok := argCounts[upper]
		if !ok {
			return nil, fmt.Errorf("svgpath: unsupported path command %q", cmd)
		}

		var args []float64
		for len(args) < count {
			num, rest, err := readNumber(d[i:])
			if err != nil {
				return nil, fmt.Errorf("svgpath: reading args for %q: %w", cmd, err)
			}
			args = append(args, num)
			i += len(d[i:]) - len(rest)
			for i < n && (d[i] == ' ' || d[i] == ',' || d[i] == '\t') {
				i++
			}
		}
		toks = append(toks, token{cmd: cmd, args: args})

		// Implicit repetition: after an initial M/m, subsequent bare coordinate
		// pairs are treated as L/l; for everything else the same command
		// repeats. Z takes no arguments, so it never repeats implicitly.
		switch {
		case upper == 'M':
			if cmd == 'M' {
				cmd = 'L'
			} else {
				cmd = 'l'
			}
		case upper == 'Z':
			cmd = 0
		}
	}
	return toks, nil
}

func isCommandLetter(c byte) bool {
	switch c {
	case 'M', 'm', 'L', 'l', 'H', 'h', 'V', 'v', 'C', 'c', 'S', 's', 'Q', 'q', 'T', 't', 'A', 'a', 'Z', 'z':
		return true
	}
	return false
}

func upperCmd(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}

// readNumber reads one float64 token (optionally signed, with an optional
// fractional part and exponent) from the front of s, returning its value and
// the unconsumed remainder.
func readNumber(s string) (float64, string, error) {
	i := 0
	n := len(s)
	for i < n && (s[i] == ' ' || s[i] == ',' || s[i] == '\t') {
		i++
	}
	start := i
	if i < n && (s[i] == '+' || s[i] == '-') {
		i++
	}
	for i < n && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i < n && s[i] == '.' {
		i++
		for i < n && s[i] >= '0' && s[i] <= '9' {
			i++
		}
	}
	if i < n && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < n && (s[j] == '+' || s[j] == '-') {
			j++
		}
		if j < n && s[j] >= '0' && s[j] <= '9' {
			i = j
			for i < n && s[i] >= '0' && s[i] <= '9' {
				i++
			}
		}
	}
	if i == start {
		return 0, s, fmt.Errorf("no number at %q", s)
	}
	var v float64
	if _, err := fmt.Sscanf(s[start:i], "%g", &v); err != nil {
		return 0, s, err
	}
	return v, s[i:], nil
}

func (cur *pathCursor) run(toks []token) error {
	for _, t := range toks {
		rel := t.cmd >= 'a' && t.cmd <= 'z'
		isCubic, isQuad := false, false

		switch upperCmd(t.cmd) {
		case 'M':
			x, y := cur.resolve(rel, t.args[0], t.args[1])
			cur.cc.Add_m(x, y)
			cur.x, cur.y = x, y
			cur.startX, cur.startY = x, y
		case 'L':
			x, y := cur.resolve(rel, t.args[0], t.args[1])
			cur.cc.Add_l(x, y)
			cur.x, cur.y = x, y
		case 'H':
			x := t.args[0]
			if rel {
				x += cur.x
			}
			cur.cc.Add_l(x, cur.y)
			cur.x = x
		case 'V':
			y := t.args[0]
			if rel {
				y += cur.y
			}
			cur.cc.Add_l(cur.x, y)
			cur.y = y
		case 'C':
			x1, y1 := cur.resolve(rel, t.args[0], t.args[1])
			x2, y2 := cur.resolve(rel, t.args[2], t.args[3])
			x3, y3 := cur.resolve(rel, t.args[4], t.args[5])
			cur.cc.Add_c(x1, y1, x2, y2, x3, y3)
			cur.x, cur.y = x3, y3
			cur.lastCtrlX, cur.lastCtrlY = x2, y2
			isCubic = true
		case 'S':
			x1, y1 := cur.reflectCubic()
			x2, y2 := cur.resolve(rel, t.args[0], t.args[1])
			x3, y3 := cur.resolve(rel, t.args[2], t.args[3])
			cur.cc.Add_c(x1, y1, x2, y2, x3, y3)
			cur.x, cur.y = x3, y3
			cur.lastCtrlX, cur.lastCtrlY = x2, y2
			isCubic = true
		case 'Q':
			qx, qy := cur.resolve(rel, t.args[0], t.args[1])
			x3, y3 := cur.resolve(rel, t.args[2], t.args[3])
			x1, y1, x2, y2 := quadToCubic(cur.x, cur.y, qx, qy, x3, y3)
			cur.cc.Add_c(x1, y1, x2, y2, x3, y3)
			cur.x, cur.y = x3, y3
			cur.lastCtrlX, cur.lastCtrlY = qx, qy
			isQuad = true
		case 'T':
			qx, qy := cur.reflectQuad()
			x3, y3 := cur.resolve(rel, t.args[0], t.args[1])
			x1, y1, x2, y2 := quadToCubic(cur.x, cur.y, qx, qy, x3, y3)
			cur.cc.Add_c(x1, y1, x2, y2, x3, y3)
			cur.x, cur.y = x3, y3
			cur.lastCtrlX, cur.lastCtrlY = qx, qy
			isQuad = true
		case 'A':
			rx, ry := t.args[0], t.args[1]
			xrot := t.args[2]
			large, sweep := t.args[3] != 0, t.args[4] != 0
			x3, y3 := cur.resolve(rel, t.args[5], t.args[6])
			arcToCubics(cur.cc, cur.x, cur.y, rx, ry, xrot, large, sweep, x3, y3)
			cur.x, cur.y = x3, y3
		case 'Z':
			cur.cc.Add_h()
			cur.x, cur.y = cur.startX, cur.startY
		default:
			return fmt.Errorf("svgpath: unsupported path command %q", t.cmd)
		}
		cur.lastWasCubic, cur.lastWasQuad = isCubic, isQuad
	}
	return nil
}

func (cur *pathCursor) resolve(rel bool, x, y float64) (float64, float64) {
	if rel {
		return cur.x + x, cur.y + y
	}
	return x, y
}

// reflectCubic returns the control point for a smooth "S" curve: the
// current point's reflection of the previous curve's second control point,
// or the current point itself if the previous command wasn't a cubic.
func (cur *pathCursor) reflectCubic() (float64, float64) {
	if !cur.lastWasCubic {
		return cur.x, cur.y
	}
	return 2*cur.x - cur.lastCtrlX, 2*cur.y - cur.lastCtrlY
}

func (cur *pathCursor) reflectQuad() (float64, float64) {
	if !cur.lastWasQuad {
		return cur.x, cur.y
	}
	return 2*cur.x - cur.lastCtrlX, 2*cur.y - cur.lastCtrlY
}

// quadToCubic elevates a quadratic Bézier (start, control, end) to the
// equivalent cubic form PDF's "c" operator requires.
func quadToCubic(x0, y0, qx, qy, x3, y3 float64) (x1, y1, x2, y2 float64) {
	x1 = x0 + 2.0/3.0*(qx-x0)
	y1 = y0 + 2.0/3.0*(qy-y0)
	x2 = x3 + 2.0/3.0*(qx-x3)
	y2 = y3 + 2.0/3.0*(qy-y3)
	return
}

// arcToCubics converts an SVG elliptical arc (endpoint parameterization,
// SVG spec appendix F.6) into one or more cubic Bézier segments, each
// spanning at most 90 degrees, and emits them via cc.Add_c.
func arcToCubics(cc *contentstream.ContentCreator, x0, y0, rx, ry, xAxisRotDeg float64, largeArc, sweep bool, x1, y1 float64) {
	if rx == 0 || ry == 0 {
		cc.Add_l(x1, y1)
		return
	}
	rx, ry = math.Abs(rx), math.Abs(ry)
	phi := xAxisRotDeg * math.Pi / 180

	dx2, dy2 := (x0-x1)/2, (y0-y1)/2
	cosPhi, sinPhi := math.Cos(phi), math.Sin(phi)
	x1p := cosPhi*dx2 + sinPhi*dy2
	y1p := -sinPhi*dx2 + cosPhi*dy2

	lambda := (x1p*x1p)/(rx*rx) + (y1p*y1p)/(ry*ry)
	if lambda > 1 {
		scale := math.Sqrt(lambda)
		rx *= scale
		ry *= scale
	}

	sign := 1.0
	if largeArc == sweep {
		sign = -1
	}
	num := rx*rx*ry*ry - rx*rx*y1p*y1p - ry*ry*x1p*x1p
	den := rx*rx*y1p*y1p + ry*ry*x1p*x1p
	co := 0.0
	if den != 0 && num > 0 {
		co = sign * math.Sqrt(num/den)
	}
	cxp := co * (rx * y1p / ry)
	cyp := co * (-ry * x1p / rx)

	cx := cosPhi*cxp - sinPhi*cyp + (x0+x1)/2
	cy := sinPhi*cxp + cosPhi*cyp + (y0+y1)/2

	angle := func(ux, uy, vx, vy float64) float64 {
		dot := ux*vx + uy*vy
		lenProd := math.Hypot(ux, uy) * math.Hypot(vx, vy)
		a := math.Acos(clamp(dot/lenProd, -1, 1))
		if ux*vy-uy*vx < 0 {
			a = -a
		}
		return a
	}

	theta1 := angle(1, 0, (x1p-cxp)/rx, (y1p-cyp)/ry)
	dtheta := angle((x1p-cxp)/rx, (y1p-cyp)/ry, (-x1p-cxp)/rx, (-y1p-cyp)/ry)
	if !sweep && dtheta > 0 {
		dtheta -= 2 * math.Pi
	} else if sweep && dtheta < 0 {
		dtheta += 2 * math.Pi
	}

	// Split into segments of at most 90 degrees for a good cubic fit.
	segments := int(math.Ceil(math.Abs(dtheta) / (math.Pi / 2)))
	if segments < 1 {
		segments = 1
	}
	delta := dtheta / float64(segments)
	t := 4.0 / 3.0 * math.Tan(delta/4)

	theta := theta1
	for i := 0; i < segments; i++ {
		theta2 := theta + delta

		cosT, sinT := math.Cos(theta), math.Sin(theta)
		cosT2, sinT2 := math.Cos(theta2), math.Sin(theta2)

		ex1 := cx + rx*(cosT-t*sinT)*math.Cos(phi) - ry*(sinT+t*cosT)*math.Sin(phi)
		ey1 := cy + rx*(cosT-t*sinT)*math.Sin(phi) + ry*(sinT+t*cosT)*math.Cos(phi)

		ex2 := cx + rx*(cosT2+t*sinT2)*math.Cos(phi) - ry*(sinT2-t*cosT2)*math.Sin(phi)
		ey2 := cy + rx*(cosT2+t*sinT2)*math.Sin(phi) + ry*(sinT2-t*cosT2)*math.Cos(phi)

		ex3 := cx + rx*cosT2*math.Cos(phi) - ry*sinT2*math.Sin(phi)
		ey3 := cy + rx*cosT2*math.Sin(phi) + ry*sinT2*math.Cos(phi)

		cc.Add_c(ex1, ey1, ex2, ey2, ex3, ey3)
		theta = theta2
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
