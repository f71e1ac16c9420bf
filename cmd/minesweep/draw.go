package main

import (
	"image/color"

	eb "github.com/hajimehoshi/ebiten/v2"
	ebt "github.com/hajimehoshi/ebiten/v2/text/v2"
	ebv "github.com/hajimehoshi/ebiten/v2/vector"
)

func DrawFilledRect(
	dst *eb.Image,
	rect FRectangle,
	clr color.Color,
	antialias bool,
) {
	ebv.DrawFilledRect(
		dst,
		f32(rect.Min.X), f32(rect.Min.Y), f32(rect.Dx()), f32(rect.Dy()),
		clr,
		antialias,
	)
}

func StrokeRect(
	dst *eb.Image,
	rect FRectangle,
	strokeWidth float64,
	clr color.Color,
	antialias bool,
) {
	ebv.StrokeRect(
		dst,
		f32(rect.Min.X), f32(rect.Min.Y), f32(rect.Dx()), f32(rect.Dy()),
		f32(strokeWidth),
		clr,
		antialias,
	)
}

func DrawFilledCircle(
	dst *eb.Image,
	x, y, r float64,
	clr color.Color,
	antialias bool,
) {
	ebv.DrawFilledCircle(
		dst, f32(x), f32(y), f32(r), clr, antialias)
}

func StrokeCircle(
	dst *eb.Image,
	x, y, r float64,
	strokeWidth float64,
	clr color.Color,
	antialias bool,
) {
	ebv.StrokeCircle(
		dst, f32(x), f32(y), f32(r), f32(strokeWidth), clr, antialias)
}

func StrokeLine(
	dst *eb.Image,
	from, to FPoint,
	strokeWidth float64,
	clr color.Color,
	antialias bool,
) {
	ebv.StrokeLine(
		dst,
		f32(from.X), f32(from.Y), f32(to.X), f32(to.Y),
		f32(strokeWidth),
		clr,
		antialias,
	)
}

func FillPath(dst *eb.Image, p *ebv.Path, clr color.Color, antialias bool) {
	vs, is := p.AppendVerticesAndIndicesForFilling(nil, nil)
	drawVertices(dst, vs, is, clr, antialias)
}

func StrokePath(dst *eb.Image, p *ebv.Path, strokeWidth float64, clr color.Color, antialias bool) {
	op := &ebv.StrokeOptions{}
	op.Width = f32(strokeWidth)
	op.LineCap = ebv.LineCapRound
	op.LineJoin = ebv.LineJoinRound

	vs, is := p.AppendVerticesAndIndicesForStroke(nil, nil, op)
	drawVertices(dst, vs, is, clr, antialias)
}

func drawVertices(dst *eb.Image, vs []eb.Vertex, is []uint16, clr color.Color, antialias bool) {
	r, g, b, a := clr.RGBA()
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(r) / 0xffff
		vs[i].ColorG = float32(g) / 0xffff
		vs[i].ColorB = float32(b) / 0xffff
		vs[i].ColorA = float32(a) / 0xffff
	}

	op := &eb.DrawTrianglesOptions{}
	op.ColorScaleMode = eb.ColorScaleModePremultipliedAlpha
	op.AntiAlias = antialias
	dst.DrawTriangles(vs, is, WhiteImage, op)
}

// DrawTextCentered draws str centered on center at the given size.
func DrawTextCentered(
	dst *eb.Image,
	str string,
	center FPoint,
	size float64,
	clr color.Color,
) {
	face := &ebt.GoTextFace{
		Source: FaceSource,
		Size:   size,
	}

	op := &ebt.DrawOptions{}
	op.GeoM.Translate(center.X, center.Y)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = ebt.AlignCenter
	op.SecondaryAlign = ebt.AlignCenter
	op.LineSpacing = face.Metrics().HAscent + face.Metrics().HDescent

	ebt.Draw(dst, str, face, op)
}

// DrawTextShadowed draws text with a drop shadow offset by shadow pixels.
func DrawTextShadowed(
	dst *eb.Image,
	str string,
	center FPoint,
	size float64,
	shadow float64,
	clr, shadowClr color.Color,
) {
	DrawTextCentered(dst, str, center.Add(FPt(shadow, shadow)), size, shadowClr)
	DrawTextCentered(dst, str, center, size, clr)
}
