package render

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"tahfidzku_backend/internals/features/reports/service"
)

// Renderer grafik batang bertumpuk di atas kanvas raster. Output default
// PNG; WebP dipakai untuk lampiran WA supaya ukurannya kecil.

const (
	chartHeight  = 400
	marginTop    = 48
	marginBottom = 76
	marginLeft   = 44
	marginRight  = 16
	legendHeight = 20
	barGapRatio  = 0.25
)

type Format string

const (
	FormatPNG  Format = "png"
	FormatWebP Format = "webp"
)

type RasterRenderer struct {
	format Format
}

func NewPNGRenderer() *RasterRenderer  { return &RasterRenderer{format: FormatPNG} }
func NewWebPRenderer() *RasterRenderer { return &RasterRenderer{format: FormatWebP} }

func (r *RasterRenderer) ContentType() string {
	if r.format == FormatWebP {
		return "image/webp"
	}
	return "image/png"
}

func (r *RasterRenderer) Extension() string { return string(r.format) }

// RenderChart menggambar proyeksi jadi bytes sesuai format renderer.
func (r *RasterRenderer) RenderChart(proj service.ChartProjection) ([]byte, error) {
	if len(proj.Categories) == 0 {
		return nil, errors.New("grafik tanpa kategori")
	}

	width := proj.MinWidthPx
	if width < 600 {
		width = 600
	}
	canvas := imaging.New(width, chartHeight, color.NRGBA{R: 255, G: 255, B: 255, A: 255})

	maxTotal := 0
	for i := range proj.Categories {
		sum := 0
		for _, s := range proj.Series {
			sum += s.Values[i]
		}
		if sum > maxTotal {
			maxTotal = sum
		}
	}
	if maxTotal == 0 {
		maxTotal = 1
	}

	plotW := width - marginLeft - marginRight
	plotH := chartHeight - marginTop - marginBottom
	slot := float64(plotW) / float64(len(proj.Categories))
	barW := int(slot * (1 - barGapRatio))
	if barW < 4 {
		barW = 4
	}

	for i := range proj.Categories {
		x := marginLeft + int(float64(i)*slot+(slot-float64(barW))/2)
		y := marginTop + plotH
		for _, s := range proj.Series {
			v := s.Values[i]
			if v == 0 {
				continue
			}
			h := v * plotH / maxTotal
			if h < 1 {
				h = 1
			}
			fillRect(canvas, x, y-h, barW, h, parseHex(s.Color))
			y -= h
		}
	}

	drawText(canvas, proj.Title, marginLeft, 24, color.NRGBA{A: 255})
	drawAxis(canvas, maxTotal, plotH)
	drawCategoryLabels(canvas, proj.Categories, slot, plotH)
	drawLegend(canvas, proj.Series, width)

	buf := new(bytes.Buffer)
	if r.format == FormatWebP {
		if err := webp.Encode(buf, canvas, &webp.Options{Lossless: false, Quality: 85}); err != nil {
			return nil, fmt.Errorf("encode webp: %w", err)
		}
	} else {
		if err := imaging.Encode(buf, canvas, imaging.PNG); err != nil {
			return nil, fmt.Errorf("encode png: %w", err)
		}
	}
	return buf.Bytes(), nil
}

// drawAxis: garis dasar plus label nilai maksimum dan nol.
func drawAxis(canvas *image.NRGBA, maxTotal, plotH int) {
	gray := color.NRGBA{R: 120, G: 120, B: 120, A: 255}
	baseY := marginTop + plotH
	for x := marginLeft; x < canvas.Bounds().Dx()-marginRight; x++ {
		canvas.SetNRGBA(x, baseY, gray)
	}
	drawText(canvas, fmt.Sprintf("%d", maxTotal), 8, marginTop+6, gray)
	drawText(canvas, "0", 8, baseY, gray)
}

func drawCategoryLabels(canvas *image.NRGBA, cats []string, slot float64, plotH int) {
	dark := color.NRGBA{R: 60, G: 60, B: 60, A: 255}
	maxChars := int(slot) / 7
	if maxChars < 3 {
		maxChars = 3
	}
	for i, cat := range cats {
		label := cat
		if len(label) > maxChars {
			label = label[:maxChars-1] + "…"
		}
		x := marginLeft + int(float64(i)*slot)
		drawText(canvas, label, x, marginTop+plotH+16, dark)
	}
}

func drawLegend(canvas *image.NRGBA, series []service.ChartSeries, width int) {
	y := chartHeight - legendHeight
	x := marginLeft
	for _, s := range series {
		fillRect(canvas, x, y-9, 10, 10, parseHex(s.Color))
		drawText(canvas, s.Name, x+14, y, color.NRGBA{R: 60, G: 60, B: 60, A: 255})
		x += 14 + 7*len(s.Name) + 16
		if x > width-marginRight {
			break
		}
	}
}

func fillRect(dst *image.NRGBA, x, y, w, h int, col color.NRGBA) {
	for yy := y; yy < y+h; yy++ {
		for xx := x; xx < x+w; xx++ {
			dst.SetNRGBA(xx, yy, col)
		}
	}
}

func drawText(dst *image.NRGBA, text string, x, y int, col color.NRGBA) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}

// parseHex membaca "#RRGGBB"; warna tak valid jatuh ke abu-abu.
func parseHex(s string) color.NRGBA {
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err != nil {
		return color.NRGBA{R: 150, G: 150, B: 150, A: 255}
	}
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}
