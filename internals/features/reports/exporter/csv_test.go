package exporter

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"tahfidzku_backend/internals/features/reports/service"
)

func TestExportTable(t *testing.T) {
	e := NewCSVExporter()
	out, err := e.ExportTable(service.Table{
		Title:    "Laporan Detail Absensi",
		FileName: "Laporan_Detail_Absensi",
		Columns:  []string{"Tanggal", "Nama", "Status"},
		Rows: [][]string{
			{"2026-01-05", "Ahmad, Fauzan", "Hadir"},
			{"2026-01-05", "Budi", "Alpa"},
		},
	})

	assert.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte{0xEF, 0xBB, 0xBF}), "diawali BOM UTF-8")

	body := string(bytes.TrimPrefix(out, []byte{0xEF, 0xBB, 0xBF}))
	lines := strings.Split(strings.TrimRight(body, "\n"), "\n")
	assert.Equal(t, "Tanggal,Nama,Status", lines[0])
	assert.Equal(t, `2026-01-05,"Ahmad, Fauzan",Hadir`, lines[1], "nama berkoma di-quote")
	assert.Equal(t, "2026-01-05,Budi,Alpa", lines[2])
}

func TestExportTableContentTypeAndExtension(t *testing.T) {
	e := NewCSVExporter()
	assert.Equal(t, "text/csv; charset=utf-8", e.ContentType())
	assert.Equal(t, "csv", e.Extension())
}

func TestExportBook(t *testing.T) {
	start := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	doc := service.BuildAttendanceBook(service.BookRequest{
		StartDate: start, Weeks: 1, Jenis: "Halaqah Utama",
	}, nil, nil, nil)

	e := NewCSVExporter()
	out, err := e.ExportBook(doc)

	assert.NoError(t, err)
	body := string(out)
	assert.Contains(t, body, "BUKU ABSENSI HALAQAH AL-QURAN")
	assert.Contains(t, body, "MA'HAD AL FARUQ ASSALAFY")
	assert.Contains(t, body, "Periode,5 Januari 2026 - 11 Januari 2026 (1 Minggu)")
}
