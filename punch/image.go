package punch

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"
)

const (
	cardWidthIn  = 7.375
	cardHeightIn = 3.25
	a4WidthIn    = 8.27
	a4HeightIn   = 11.69

	// GlyphWidth is the width of a text glyph in pattern cells.
	GlyphWidth = 5
	// GlyphHeight is the height of a text glyph in pattern cells.
	GlyphHeight = 7

	// MinDPI and MaxDPI bound the rasterization scale.
	MinDPI = 72
	MaxDPI = 1200
)

// CardImageStyle selects the color palette for raster output.
type CardImageStyle int

const (
	// StylePlain draws an unmarked manila card.
	StylePlain CardImageStyle = iota
	// StyleInterpreter adds the tinted header band of interpreted cards.
	StyleInterpreter
	// StyleKeypunch mimics the warmer keypunch room stock.
	StyleKeypunch
)

func (s CardImageStyle) String() string {
	switch s {
	case StyleInterpreter:
		return "interpreter"
	case StyleKeypunch:
		return "keypunch"
	default:
		return "plain"
	}
}

// ParseCardImageStyle resolves a style name.
func ParseCardImageStyle(name string) (CardImageStyle, error) {
	switch name {
	case "plain":
		return StylePlain, nil
	case "interpreter":
		return StyleInterpreter, nil
	case "keypunch":
		return StyleKeypunch, nil
	default:
		return StylePlain, fmt.Errorf("unknown image style %q (want plain, interpreter or keypunch)", name)
	}
}

// PageLayout selects the output canvas for raster rendering.
type PageLayout int

const (
	// LayoutCard sizes the image to the physical card.
	LayoutCard PageLayout = iota
	// LayoutA4 centers the card on an A4 page.
	LayoutA4
)

func (l PageLayout) String() string {
	if l == LayoutA4 {
		return "a4"
	}
	return "card"
}

// ParsePageLayout resolves a layout name.
func ParsePageLayout(name string) (PageLayout, error) {
	switch name {
	case "card":
		return LayoutCard, nil
	case "a4":
		return LayoutA4, nil
	default:
		return LayoutCard, fmt.Errorf("unknown page layout %q (want card or a4)", name)
	}
}

// ImageRenderOptions controls raster output.
type ImageRenderOptions struct {
	Style  CardImageStyle
	DPI    int
	Layout PageLayout
}

type palette struct {
	cardBG color.RGBA
	pageBG color.RGBA
	grid   color.RGBA
	hole   color.RGBA
	text   color.RGBA
	border color.RGBA
	header *color.RGBA
}

// RenderCardImage rasterizes a card at the requested DPI, preserving
// the 7.375in x 3.25in physical proportions. DPI is clamped to
// [MinDPI, MaxDPI].
func RenderCardImage(card *Card, opts ImageRenderOptions) *image.RGBA {
	dpi := opts.DPI
	if dpi < MinDPI {
		dpi = MinDPI
	}
	if dpi > MaxDPI {
		dpi = MaxDPI
	}
	pal := stylePalette(opts.Style, opts.Layout == LayoutCard)

	cardW := inchesToPx(cardWidthIn, dpi)
	cardH := inchesToPx(cardHeightIn, dpi)
	dpiF := float64(dpi)

	marginX := int(math.Round(0.18 * dpiF))
	marginTop := int(math.Round(0.55 * dpiF))
	marginBottom := int(math.Round(0.35 * dpiF))

	img := image.NewRGBA(image.Rect(0, 0, cardW, cardH))
	fillRect(img, img.Bounds(), pal.cardBG)

	if pal.header != nil {
		headerH := int(math.Round(0.4 * dpiF))
		if headerH > cardH {
			headerH = cardH
		}
		fillRect(img, image.Rect(0, 0, cardW, headerH), *pal.header)
	}

	hollowRect(img, img.Bounds(), pal.border)

	colSpacing := math.Max(float64(cardW)-2*float64(marginX), 1) / float64(Columns-1)
	rowSpacing := math.Max(float64(cardH)-float64(marginTop+marginBottom), 1) / float64(Rows-1)
	holeRadius := int(math.Round(math.Min(colSpacing, rowSpacing) * 0.2))
	if holeRadius < 2 {
		holeRadius = 2
	}

	// Column grid every 10 columns plus both card edges.
	for col := 0; col <= Columns; col++ {
		if col == 0 || col == Columns || col%10 == 0 {
			x := int(math.Round(float64(marginX) + float64(col)*colSpacing))
			vline(img, x, marginTop, cardH-marginBottom, pal.grid)
		}
	}

	cols := card.Columns()
	for colIdx := 0; colIdx < Columns; colIdx++ {
		centerX := int(math.Round(float64(marginX) + float64(colIdx)*colSpacing))
		for rowIdx := 0; rowIdx < Rows; rowIdx++ {
			if (cols[colIdx]>>rowBitOrder[rowIdx])&1 == 1 {
				centerY := int(math.Round(float64(marginTop) + float64(rowIdx)*rowSpacing))
				fillCircle(img, centerX, centerY, holeRadius, pal.hole)
			}
		}
	}

	scale := int(math.Ceil(dpiF / 120.0))
	if scale < 2 {
		scale = 2
	}
	glyphHalfWidth := int(math.Round(float64(GlyphWidth*scale) / 2.0))
	textBaseline := int(math.Round(float64(marginTop) - rowSpacing*0.85))
	text := []rune(card.Text())
	for colIdx, ch := range text {
		centerX := int(math.Round(float64(marginX) + float64(colIdx)*colSpacing))
		drawGlyph(img, centerX-glyphHalfWidth, textBaseline, ch, pal.text, scale)
	}

	if opts.Layout == LayoutA4 {
		pageW := inchesToPx(a4WidthIn, dpi)
		pageH := inchesToPx(a4HeightIn, dpi)
		page := image.NewRGBA(image.Rect(0, 0, pageW, pageH))
		fillRect(page, page.Bounds(), pal.pageBG)
		offsetX := (pageW - cardW) / 2
		offsetY := (pageH - cardH) / 2
		if offsetX < 0 {
			offsetX = 0
		}
		if offsetY < 0 {
			offsetY = 0
		}
		target := image.Rect(offsetX, offsetY, offsetX+cardW, offsetY+cardH)
		draw.Draw(page, target, img, image.Point{}, draw.Over)
		return page
	}
	return img
}

func inchesToPx(inches float64, dpi int) int {
	return int(math.Round(inches * float64(dpi)))
}

func stylePalette(style CardImageStyle, cardOnly bool) palette {
	pageBG := func(card color.RGBA, page color.RGBA) color.RGBA {
		if cardOnly {
			return card
		}
		return page
	}
	switch style {
	case StyleInterpreter:
		header := rgb(0xe6, 0xcb, 0xa6)
		return palette{
			cardBG: rgb(0xf6, 0xe3, 0xc6),
			pageBG: pageBG(rgb(0xf6, 0xe3, 0xc6), rgb(0xfc, 0xf7, 0xef)),
			grid:   rgb(0xd1, 0xba, 0x9b),
			hole:   rgb(0x24, 0x22, 0x1d),
			text:   rgb(0x1f, 0x1b, 0x14),
			border: rgb(0x86, 0x74, 0x5d),
			header: &header,
		}
	case StyleKeypunch:
		header := rgb(0xe6, 0xb8, 0x8f)
		return palette{
			cardBG: rgb(0xf5, 0xd7, 0xb5),
			pageBG: pageBG(rgb(0xf5, 0xd7, 0xb5), rgb(0xfa, 0xf2, 0xe7)),
			grid:   rgb(0xca, 0xa0, 0x79),
			hole:   rgb(0x2b, 0x21, 0x1d),
			text:   rgb(0x21, 0x18, 0x15),
			border: rgb(0x82, 0x63, 0x4d),
			header: &header,
		}
	default:
		return palette{
			cardBG: rgb(0xf4, 0xe8, 0xcc),
			pageBG: pageBG(rgb(0xf4, 0xe8, 0xcc), rgb(0xfd, 0xfa, 0xf3)),
			grid:   rgb(0xd7, 0xc9, 0xa8),
			hole:   rgb(0x28, 0x24, 0x1f),
			text:   rgb(0x28, 0x24, 0x1f),
			border: rgb(0x7d, 0x6b, 0x54),
		}
	}
}

func rgb(r, g, b uint8) color.RGBA {
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

func fillRect(img *image.RGBA, r image.Rectangle, c color.RGBA) {
	draw.Draw(img, r, &image.Uniform{C: c}, image.Point{}, draw.Src)
}

func hollowRect(img *image.RGBA, r image.Rectangle, c color.RGBA) {
	for x := r.Min.X; x < r.Max.X; x++ {
		img.SetRGBA(x, r.Min.Y, c)
		img.SetRGBA(x, r.Max.Y-1, c)
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		img.SetRGBA(r.Min.X, y, c)
		img.SetRGBA(r.Max.X-1, y, c)
	}
}

func vline(img *image.RGBA, x, y0, y1 int, c color.RGBA) {
	for y := y0; y <= y1; y++ {
		img.SetRGBA(x, y, c)
	}
}

func fillCircle(img *image.RGBA, cx, cy, radius int, c color.RGBA) {
	rr := radius * radius
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy <= rr {
				img.SetRGBA(cx+dx, cy+dy, c)
			}
		}
	}
}

func drawGlyph(img *image.RGBA, x, y int, ch rune, c color.RGBA, scale int) {
	pattern := glyphPattern(ch)
	for row, bits := range pattern {
		for col := 0; col < GlyphWidth; col++ {
			if bits&(1<<(GlyphWidth-1-col)) != 0 {
				px := x + col*scale
				py := y + row*scale
				fillRect(img, image.Rect(px, py, px+scale, py+scale), c)
			}
		}
	}
}
