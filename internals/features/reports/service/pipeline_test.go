package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	attModel "tahfidzku_backend/internals/features/attendance/model"
)

type fakeRenderer struct {
	failOn map[string]bool // judul proyeksi yang digagalkan
	calls  []string
}

func (f *fakeRenderer) RenderChart(proj ChartProjection) ([]byte, error) {
	f.calls = append(f.calls, proj.Title)
	if f.failOn[proj.Title] {
		return nil, errors.New("render gagal")
	}
	return []byte{0x89, 0x50}, nil
}

func pipelineRecords() []attModel.AttendanceModel {
	return []attModel.AttendanceModel{
		att("2026-01-05", "Shubuh", "Santri", 1, "Ahmad", "Aliyah", "2B", "Hadir"),
		att("2026-01-05", "Shubuh", "Santri", 2, "Budi", "Aliyah", "2B", "Alpa"),
		att("2026-01-05", "Shubuh", "Santri", 3, "Umar", "Jamiah", "TQS", "Hadir"),
	}
}

func staticLookup(nama, phone string) WaliLookup {
	return func(marhalah, kelas string) (string, string, bool) {
		if nama == "" {
			return "", "", false
		}
		return nama, phone, true
	}
}

func TestGenerateProducesItemsPerClass(t *testing.T) {
	g := NewWAGenerator(&fakeRenderer{})
	req := g.NewRequest([]string{"Aliyah-2B", "Jamiah-TQS"}, Filter{DateStart: "2026-01-01", DateEnd: "2026-01-31"})

	items, err := g.Generate(req, pipelineRecords(), staticLookup("Ustadz Salman", "081234567890"))

	assert.NoError(t, err)
	assert.Len(t, items, 2)

	first := items[0]
	assert.Equal(t, "Aliyah-2B", first.ClassKey)
	assert.NotEmpty(t, first.Image)
	assert.Contains(t, first.Caption, "*LAPORAN ABSENSI KELAS*")
	assert.Contains(t, first.Caption, "Budi (Alpa: 1)")
	assert.Equal(t, "Ustadz Salman", first.WaliNama)
	assert.Contains(t, first.WALink, "https://wa.me/6281234567890?text=")
	assert.False(t, first.MissingPhone)
}

func TestGenerateSkipsClassOnRenderFailure(t *testing.T) {
	r := &fakeRenderer{failOn: map[string]bool{"Grafik Kehadiran 2B (Aliyah)": true}}
	g := NewWAGenerator(r)
	req := g.NewRequest([]string{"Aliyah-2B", "Jamiah-TQS"}, Filter{})

	items, err := g.Generate(req, pipelineRecords(), staticLookup("X", "08123"))

	assert.NoError(t, err)
	assert.Len(t, items, 1, "kelas yang gagal render dilewati, sisanya jalan terus")
	assert.Equal(t, "Jamiah-TQS", items[0].ClassKey)
	assert.Len(t, r.calls, 2)
}

func TestGenerateUnknownClassKeySkipped(t *testing.T) {
	g := NewWAGenerator(&fakeRenderer{})
	req := g.NewRequest([]string{"Aliyah-9Z"}, Filter{})

	items, err := g.Generate(req, pipelineRecords(), staticLookup("X", "08123"))

	assert.NoError(t, err)
	assert.Empty(t, items)
}

func TestGenerateMissingPhone(t *testing.T) {
	g := NewWAGenerator(&fakeRenderer{})
	req := g.NewRequest([]string{"Aliyah-2B"}, Filter{})

	items, err := g.Generate(req, pipelineRecords(), staticLookup("", ""))

	assert.NoError(t, err)
	assert.Len(t, items, 1)
	assert.True(t, items[0].MissingPhone)
	assert.Empty(t, items[0].WALink)
}

func TestGenerateStaleToken(t *testing.T) {
	g := NewWAGenerator(&fakeRenderer{})
	old := g.NewRequest([]string{"Aliyah-2B"}, Filter{})
	_ = g.NewRequest([]string{"Jamiah-TQS"}, Filter{}) // permintaan baru menggantikan

	items, err := g.Generate(old, pipelineRecords(), staticLookup("X", "08123"))

	assert.ErrorIs(t, err, ErrStaleGeneration)
	assert.Nil(t, items)
}
