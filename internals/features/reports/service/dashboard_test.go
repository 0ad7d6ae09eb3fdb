package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	attModel "tahfidzku_backend/internals/features/attendance/model"
)

func TestBuildTodayMatrix(t *testing.T) {
	rows := []attModel.AttendanceModel{
		att("2026-01-10", "Shubuh", "Santri", 1, "A", "Mutawassithah", "1A", "Hadir"),
		att("2026-01-10", "Shubuh", "Santri", 2, "B", "Mutawassithah", "1A", "Alpa"),
		att("2026-01-10", "Shubuh", "Santri", 3, "C", "Jamiah", "TQS", "Izin"),
		att("2026-01-09", "Shubuh", "Santri", 4, "D", "Aliyah", "2B", "Hadir"), // tanggal lain
		att("2026-01-10", "Shubuh", "Santri", 5, "E", "Marhalah Asing", "X", "Hadir"),
	}

	m := BuildTodayMatrix(rows, "2026-01-10")

	assert.Equal(t, "2026-01-10", m.Date)
	assert.Len(t, m.Rows, 3, "semua marhalah selalu muncul")

	assert.Equal(t, "Mutawassithah", m.Rows[0].Marhalah)
	assert.Equal(t, 1, m.Rows[0].Hadir)
	assert.Equal(t, 1, m.Rows[0].Alpa)
	assert.Equal(t, 2, m.Rows[0].Total)

	assert.Equal(t, "Aliyah", m.Rows[1].Marhalah)
	assert.Equal(t, 0, m.Rows[1].Total, "baris kosong tetap ada dengan nol")

	assert.Equal(t, "Jamiah", m.Rows[2].Marhalah)
	assert.Equal(t, 1, m.Rows[2].Izin)

	assert.Equal(t, "TOTAL", m.ColumnTotal.Marhalah)
	assert.Equal(t, 1, m.ColumnTotal.Hadir)
	assert.Equal(t, 3, m.ColumnTotal.Total)
}

func TestBuildWeeklyTrend(t *testing.T) {
	today := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC) // Sabtu
	rows := []attModel.AttendanceModel{
		att("2026-01-10", "Shubuh", "Santri", 1, "A", "Aliyah", "2B", "Hadir"),
		att("2026-01-10", "Dhuha", "Santri", 1, "A", "Aliyah", "2B", "Terlambat"),
		att("2026-01-04", "Shubuh", "Santri", 1, "A", "Aliyah", "2B", "Alpa"),
		att("2026-01-03", "Shubuh", "Santri", 1, "A", "Aliyah", "2B", "Hadir"), // di luar 7 hari
	}

	trend := BuildWeeklyTrend(rows, today)

	assert.Len(t, trend, 7)
	assert.Equal(t, "2026-01-04", trend[0].Date, "titik tertua dulu")
	assert.Equal(t, "Sun", trend[0].Name)
	assert.Equal(t, 1, trend[0].Alpa)

	last := trend[6]
	assert.Equal(t, "2026-01-10", last.Date)
	assert.Equal(t, "Sat", last.Name)
	assert.Equal(t, 1, last.Hadir)
	assert.Equal(t, 1, last.Terlambat)
	assert.Equal(t, 2, last.Total)

	// hari tanpa data tetap nol
	assert.Equal(t, 0, trend[3].Total)
}
