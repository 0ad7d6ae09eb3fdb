package render

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"

	"tahfidzku_backend/internals/features/reports/service"
)

func sampleProjection() service.ChartProjection {
	return service.ChartProjection{
		Title:      "Grafik Kehadiran Per Santri",
		Categories: []string{"Ahmad", "Budi"},
		Series: []service.ChartSeries{
			{Name: "Hadir", Color: "#22C55E", Values: []int{3, 1}},
			{Name: "Alpa", Color: "#EF4444", Values: []int{0, 2}},
		},
		MinWidthPx: 600,
	}
}

func TestRenderChartPNG(t *testing.T) {
	out, err := NewPNGRenderer().RenderChart(sampleProjection())

	assert.NoError(t, err)
	img, err := png.Decode(bytes.NewReader(out))
	assert.NoError(t, err, "hasil harus PNG valid")
	assert.Equal(t, 600, img.Bounds().Dx())
	assert.Equal(t, 400, img.Bounds().Dy())
}

func TestRenderChartWebP(t *testing.T) {
	out, err := NewWebPRenderer().RenderChart(sampleProjection())

	assert.NoError(t, err)
	assert.NotEmpty(t, out)
	// container RIFF/WEBP
	assert.Equal(t, "RIFF", string(out[:4]))
	assert.Equal(t, "WEBP", string(out[8:12]))
}

func TestRenderChartEmptyCategories(t *testing.T) {
	_, err := NewPNGRenderer().RenderChart(service.ChartProjection{Title: "Kosong"})
	assert.Error(t, err)
}

func TestRenderChartRespectsMinWidth(t *testing.T) {
	proj := sampleProjection()
	proj.MinWidthPx = 900

	out, err := NewPNGRenderer().RenderChart(proj)

	assert.NoError(t, err)
	img, err := png.Decode(bytes.NewReader(out))
	assert.NoError(t, err)
	assert.Equal(t, 900, img.Bounds().Dx())
}

func TestRendererContentTypes(t *testing.T) {
	assert.Equal(t, "image/png", NewPNGRenderer().ContentType())
	assert.Equal(t, "png", NewPNGRenderer().Extension())
	assert.Equal(t, "image/webp", NewWebPRenderer().ContentType())
	assert.Equal(t, "webp", NewWebPRenderer().Extension())
}
