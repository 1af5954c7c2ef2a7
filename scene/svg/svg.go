// Package svg writes a scene as a standalone SVG document.
//
// Shapes become path elements carrying their own transform, groups become
// g elements, gradients are emitted once per drawable in defs with
// userSpaceOnUse units, and a clip composite becomes a clipPath referenced
// by a wrapping g element in the parent's space.
package svg

import (
	"bytes"
	"cmp"
	"fmt"
	"image/color"
	"io"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/gogpu/rive"
	"github.com/gogpu/rive/scene"
	"github.com/tdewolff/minify/v2"
	minifysvg "github.com/tdewolff/minify/v2/svg"
)

const mimeType = "image/svg+xml"

// Options configures Write.
type Options struct {
	// Width and Height set the document size. Zero uses the bottom-right
	// corner of the scene bounds.
	Width, Height float32

	// Precision is the number of significant digits written for
	// coordinates. Zero uses DefaultOptions.Precision.
	Precision int

	// Minify runs the document through the tdewolff SVG minifier.
	Minify bool
}

// DefaultOptions are the options used for zero fields.
var DefaultOptions = Options{Precision: 5}

// Write encodes s as an SVG document to w.
func Write(w io.Writer, s *scene.Scene, opts Options) error {
	if opts.Precision <= 0 {
		opts.Precision = DefaultOptions.Precision
	}
	width, height := opts.Width, opts.Height
	if width <= 0 || height <= 0 {
		b := s.Bounds()
		if !b.IsEmpty() {
			if width <= 0 {
				width = max(b.MaxX, 0)
			}
			if height <= 0 {
				height = max(b.MaxY, 0)
			}
		}
	}

	e := &encoder{prec: opts.Precision}
	for _, p := range s.Paints() {
		e.paint(p)
	}

	var doc bytes.Buffer
	fmt.Fprintf(&doc, `<svg xmlns="http://www.w3.org/2000/svg" version="1.1" width="%s" height="%s" viewBox="0 0 %s %s">`,
		e.dec(width), e.dec(height), e.dec(width), e.dec(height))
	if e.defs.Len() > 0 {
		doc.WriteString("<defs>")
		doc.Write(e.defs.Bytes())
		doc.WriteString("</defs>")
	}
	doc.Write(e.body.Bytes())
	doc.WriteString("</svg>")

	rive.Logger().Debug("svg: encoded scene",
		"paints", s.Len(), "gradients", e.gradients, "clips", e.clips, "bytes", doc.Len())

	if !opts.Minify {
		_, err := w.Write(doc.Bytes())
		return err
	}
	m := minify.New()
	m.AddFunc(mimeType, minifysvg.Minify)
	if err := m.Minify(mimeType, w, &doc); err != nil {
		return fmt.Errorf("svg: minify: %w", err)
	}
	return nil
}

// encoder accumulates the defs and body of a document.
type encoder struct {
	prec int

	defs bytes.Buffer
	body bytes.Buffer

	gradients int
	clips     int
}

func (e *encoder) paint(p scene.Paint) {
	if target, method := p.Composite(); target != nil && method == scene.CompositeClipPath {
		id := e.clip(target)
		fmt.Fprintf(&e.body, `<g clip-path="url(#%s)">`, id)
		defer e.body.WriteString("</g>")
	}

	switch v := p.(type) {
	case *scene.Shape:
		e.shape(v)
	case *scene.Group:
		e.body.WriteString("<g")
		e.transform(&e.body, v.Transform())
		e.body.WriteString(">")
		for _, c := range v.Children() {
			e.paint(c)
		}
		e.body.WriteString("</g>")
	}
}

// clip writes target as a clipPath and returns its id.
func (e *encoder) clip(target *scene.Shape) string {
	e.clips++
	id := "clip" + strconv.Itoa(e.clips)
	fmt.Fprintf(&e.defs, `<clipPath id="%s" clipPathUnits="userSpaceOnUse"><path d="%s"`, id, e.pathData(target.Path()))
	e.transform(&e.defs, target.Transform())
	if target.FillRule() == scene.FillEvenOdd {
		e.defs.WriteString(` clip-rule="evenodd"`)
	}
	e.defs.WriteString("/></clipPath>")
	return id
}

func (e *encoder) shape(sh *scene.Shape) {
	fmt.Fprintf(&e.body, `<path d="%s"`, e.pathData(sh.Path()))
	e.transform(&e.body, sh.Transform())

	switch {
	case sh.Fill() != nil:
		fmt.Fprintf(&e.body, ` fill="url(#%s)"`, e.gradient(sh.Fill()))
	case sh.FillColor().A > 0:
		e.color(&e.body, "fill", sh.FillColor())
	default:
		e.body.WriteString(` fill="none"`)
	}
	if sh.FillRule() == scene.FillEvenOdd {
		e.body.WriteString(` fill-rule="evenodd"`)
	}

	if sh.HasStroke() {
		if sh.StrokeFill() != nil {
			fmt.Fprintf(&e.body, ` stroke="url(#%s)"`, e.gradient(sh.StrokeFill()))
		} else {
			e.color(&e.body, "stroke", sh.StrokeColor())
		}
		st := sh.Stroke()
		if st.Width != 1 {
			fmt.Fprintf(&e.body, ` stroke-width="%s"`, e.dec(st.Width))
		}
		if st.Cap != scene.LineCapButt {
			fmt.Fprintf(&e.body, ` stroke-linecap="%s"`, st.Cap)
		}
		if st.Join != scene.LineJoinMiter {
			fmt.Fprintf(&e.body, ` stroke-linejoin="%s"`, st.Join)
		} else if st.MiterLimit != 4 {
			fmt.Fprintf(&e.body, ` stroke-miterlimit="%s"`, e.dec(st.MiterLimit))
		}
	}
	e.body.WriteString("/>")
}

// gradient writes f to defs and returns its id.
func (e *encoder) gradient(f scene.Fill) string {
	e.gradients++
	id := "grad" + strconv.Itoa(e.gradients)
	switch g := f.(type) {
	case *scene.LinearGradient:
		fmt.Fprintf(&e.defs, `<linearGradient id="%s" gradientUnits="userSpaceOnUse" x1="%s" y1="%s" x2="%s" y2="%s"`,
			id, e.num(g.X1), e.num(g.Y1), e.num(g.X2), e.num(g.Y2))
		e.spread(g.Spread())
		e.stops(g.ColorStops())
		e.defs.WriteString("</linearGradient>")
	case *scene.RadialGradient:
		fmt.Fprintf(&e.defs, `<radialGradient id="%s" gradientUnits="userSpaceOnUse" cx="%s" cy="%s" r="%s"`,
			id, e.num(g.CX), e.num(g.CY), e.num(g.R))
		e.spread(g.Spread())
		e.stops(g.ColorStops())
		e.defs.WriteString("</radialGradient>")
	}
	return id
}

func (e *encoder) spread(s scene.Spread) {
	if s != scene.SpreadPad {
		fmt.Fprintf(&e.defs, ` spreadMethod="%s"`, s)
	}
	e.defs.WriteString(">")
}

// stops writes stops in offset order. Equal offsets keep their order, so
// the later stop wins the hard edge.
func (e *encoder) stops(stops []scene.ColorStop) {
	sorted := slices.Clone(stops)
	slices.SortStableFunc(sorted, func(a, b scene.ColorStop) int {
		return cmp.Compare(a.Offset, b.Offset)
	})
	for _, s := range sorted {
		offset := min(max(s.Offset, 0), 1)
		fmt.Fprintf(&e.defs, `<stop offset="%s" stop-color="%s"`, e.dec(offset), hex(s.Color))
		if s.Color.A != 0xff {
			fmt.Fprintf(&e.defs, ` stop-opacity="%s"`, e.dec(float32(s.Color.A)/255))
		}
		e.defs.WriteString("/>")
	}
}

func (e *encoder) color(b *bytes.Buffer, attr string, c color.NRGBA) {
	fmt.Fprintf(b, ` %s="%s"`, attr, hex(c))
	if c.A != 0xff {
		fmt.Fprintf(b, ` %s-opacity="%s"`, attr, e.dec(float32(c.A)/255))
	}
}

func (e *encoder) transform(b *bytes.Buffer, m scene.Matrix) {
	if m.IsIdentity() {
		return
	}
	fmt.Fprintf(b, ` transform="matrix(%s %s %s %s %s %s)"`,
		e.num(m.E11), e.num(m.E21), e.num(m.E12), e.num(m.E22), e.num(m.E13), e.num(m.E23))
}

// pathData returns the d attribute of p.
func (e *encoder) pathData(p *scene.Path) string {
	var sb strings.Builder
	for el := range p.Elements() {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		switch el.Verb {
		case scene.VerbMoveTo:
			sb.WriteByte('M')
		case scene.VerbLineTo:
			sb.WriteByte('L')
		case scene.VerbCubicTo:
			sb.WriteByte('C')
		case scene.VerbClose:
			sb.WriteByte('Z')
		}
		for i, pt := range el.Points {
			if i > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(e.num(pt.X))
			sb.WriteByte(' ')
			sb.WriteString(e.num(pt.Y))
		}
	}
	return sb.String()
}

// num formats f with the configured significant digits.
func (e *encoder) num(f float32) string {
	s := strconv.FormatFloat(float64(f), 'g', e.prec, 32)
	if float64(f) > math.MaxInt32 || float64(f) < math.MinInt32 {
		if !strings.ContainsAny(s, ".eE") {
			s += ".0"
		}
	}
	return string(minify.Number([]byte(s), e.prec))
}

// dec formats f with the configured decimal places.
func (e *encoder) dec(f float32) string {
	s := strconv.FormatFloat(float64(f), 'f', e.prec, 32)
	return string(minify.Decimal([]byte(s), e.prec))
}

func hex(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
