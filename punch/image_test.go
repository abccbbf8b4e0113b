package punch

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderCardImageDimensions(t *testing.T) {
	card, err := NewCard(NewIBM029(), "HELLO")
	require.NoError(t, err)

	img := RenderCardImage(card, ImageRenderOptions{Style: StylePlain, DPI: 100, Layout: LayoutCard})
	bounds := img.Bounds()
	// 7.375in x 3.25in at 100 DPI, rounded.
	assert.Equal(t, 738, bounds.Dx())
	assert.Equal(t, 325, bounds.Dy())
}

func TestRenderCardImageClampsDPI(t *testing.T) {
	card, err := NewCard(NewIBM029(), "")
	require.NoError(t, err)

	low := RenderCardImage(card, ImageRenderOptions{Style: StylePlain, DPI: 10, Layout: LayoutCard})
	atMin := RenderCardImage(card, ImageRenderOptions{Style: StylePlain, DPI: MinDPI, Layout: LayoutCard})
	assert.Equal(t, atMin.Bounds(), low.Bounds())

	high := RenderCardImage(card, ImageRenderOptions{Style: StylePlain, DPI: 5000, Layout: LayoutCard})
	atMax := RenderCardImage(card, ImageRenderOptions{Style: StylePlain, DPI: MaxDPI, Layout: LayoutCard})
	assert.Equal(t, atMax.Bounds(), high.Bounds())
}

func TestRenderCardImageA4Layout(t *testing.T) {
	card, err := NewCard(NewIBM029(), "A")
	require.NoError(t, err)

	img := RenderCardImage(card, ImageRenderOptions{Style: StyleInterpreter, DPI: 100, Layout: LayoutA4})
	bounds := img.Bounds()
	assert.Equal(t, 827, bounds.Dx())
	assert.Equal(t, 1169, bounds.Dy())

	// A corner pixel belongs to the page, not the card.
	corner := img.RGBAAt(0, 0)
	assert.Equal(t, color.RGBA{R: 0xfc, G: 0xf7, B: 0xef, A: 0xff}, corner)
}

func TestRenderCardImagePunchesHoles(t *testing.T) {
	enc := NewIBM029()
	blank, err := NewCard(enc, "")
	require.NoError(t, err)
	punched, err := NewCard(enc, "A")
	require.NoError(t, err)

	opts := ImageRenderOptions{Style: StylePlain, DPI: 150, Layout: LayoutCard}
	blankImg := RenderCardImage(blank, opts)
	punchedImg := RenderCardImage(punched, opts)

	holeColor := color.RGBA{R: 0x28, G: 0x24, B: 0x1f, A: 0xff}
	blankHoles := countPixels(blankImg.Pix, holeColor)
	punchedHoles := countPixels(punchedImg.Pix, holeColor)
	assert.Greater(t, punchedHoles, blankHoles, "punching a character must darken hole pixels")
}

func countPixels(pix []uint8, c color.RGBA) int {
	count := 0
	for ii := 0; ii+3 < len(pix); ii += 4 {
		if pix[ii] == c.R && pix[ii+1] == c.G && pix[ii+2] == c.B && pix[ii+3] == c.A {
			count++
		}
	}
	return count
}

func TestParseImageOptions(t *testing.T) {
	style, err := ParseCardImageStyle("keypunch")
	require.NoError(t, err)
	assert.Equal(t, StyleKeypunch, style)
	_, err = ParseCardImageStyle("sepia")
	assert.Error(t, err)

	layout, err := ParsePageLayout("a4")
	require.NoError(t, err)
	assert.Equal(t, LayoutA4, layout)
	_, err = ParsePageLayout("letter")
	assert.Error(t, err)
}
