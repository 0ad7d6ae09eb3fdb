package service

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	attModel "tahfidzku_backend/internals/features/attendance/model"
)

func TestBuildDailyCaptionExactBytes(t *testing.T) {
	cls := ClassInfo{Kelas: "1A", Marhalah: "Mutawassithah", WaliNama: "Ustadz Salman"}
	refDate := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC) // Senin
	rows := []attModel.AttendanceModel{
		att("2026-01-05", "Shubuh", "Santri", 1, "Ahmad", "Mutawassithah", "1A", "Hadir"),
		att("2026-01-05", "Shubuh", "Santri", 2, "Budi", "Mutawassithah", "1A", "Alpa"),
	}

	want := strings.Join([]string{
		"*LAPORAN HARIAN*",
		"Senin, 5 Januari 2026",
		"--------------------------------",
		"Kelas : 1A (Mutawassithah)",
		"Wali  : Ustadz Salman",
		"--------------------------------",
		"",
		"*STATISTIK KEHADIRAN*",
		"Hadir : 1",
		"Sakit : 0",
		"Izin  : 0",
		"Alpa  : 1",
		"Telat : 0",
		"",
		"*DETAIL KETIDAKHADIRAN PER SESI*",
		"",
		"1. SHUBUH",
		"   - Budi (Alpa)",
		"",
		"2. DHUHA",
		"   (Semua Hadir)",
		"",
		"3. ASHAR",
		"   (Semua Hadir)",
		"",
		"4. ISYA",
		"   (Semua Hadir)",
		"--------------------------------",
		"Digenerate oleh Sistem Informasi Tahfidz",
	}, "\n")

	assert.Equal(t, want, BuildDailyCaption(cls, refDate, rows))
}

func TestBuildDailyCaptionIdempotent(t *testing.T) {
	cls := ClassInfo{Kelas: "2B", Marhalah: "Aliyah"}
	refDate := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	rows := []attModel.AttendanceModel{
		att("2026-03-10", "Isya", "Santri", 1, "Hasan", "Aliyah", "2B", "Sakit"),
	}

	first := BuildDailyCaption(cls, refDate, rows)
	second := BuildDailyCaption(cls, refDate, rows)
	assert.Equal(t, first, second, "caption harus byte-per-byte stabil")
	assert.NotContains(t, first, "Wali", "tanpa wali tidak ada baris wali")
}

func TestBuildDailyCaptionExcludesMusammi(t *testing.T) {
	cls := ClassInfo{Kelas: "1A", Marhalah: "Mutawassithah"}
	refDate := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	rows := []attModel.AttendanceModel{
		att("2026-01-05", "Shubuh", "Santri", 1, "Ahmad", "Mutawassithah", "1A", "Hadir"),
		att("2026-01-05", "Shubuh", "Musammi", 7, "Ust. Salim", "Mutawassithah", "1A", "Alpa"),
	}

	// Caption kelas dibangun dari baris yang sudah disaring peran santri;
	// absensi musammi sekelas tidak boleh masuk statistik maupun detail.
	f := Filter{
		DateStart: "2026-01-05", DateEnd: "2026-01-05",
		Marhalah: "Mutawassithah", Kelas: "1A", Peran: "Santri",
	}
	got := BuildDailyCaption(cls, refDate, f.Apply(rows))

	assert.NotContains(t, got, "Ust. Salim")
	assert.Contains(t, got, "Hadir : 1")
	assert.Contains(t, got, "Alpa  : 0")
}

func TestBuildWeeklyCaptionHeader(t *testing.T) {
	cls := ClassInfo{Kelas: "2B", Marhalah: "Aliyah"}
	// Kamis 8 Jan 2026: minggunya Senin 5 Jan s.d Ahad 11 Jan
	refDate := time.Date(2026, 1, 8, 0, 0, 0, 0, time.UTC)

	got := BuildWeeklyCaption(cls, refDate, nil)

	assert.True(t, strings.HasPrefix(got, "*LAPORAN MINGGUAN*\n5 Jan - 11 Jan 2026\n"))
	assert.Contains(t, got, "Kelas : 2B (Aliyah)")
}

func TestBuildMonthlyCaption(t *testing.T) {
	cls := ClassInfo{Kelas: "1A", Marhalah: "Mutawassithah", WaliNama: "Ustadz Salman"}
	avg := ProgressAverages{Hafalan: 2.5, Murojaah: 3, Ziyadah: 12.3, Count: 6}
	students := []StudentMonthly{
		{Nama: "Ahmad", H: 20, S: 1, I: 0, A: 2, T: 1, Hafalan: "3", Murojaah: "2.5", Ziyadah: "10"},
		{Nama: "Budi", H: 24, Hafalan: "-", Murojaah: "-", Ziyadah: "-"},
	}

	got := BuildMonthlyCaption(cls, "2026-01", avg, students)

	assert.Contains(t, got, "*LAPORAN BULANAN*\nJanuari 2026\n")
	assert.Contains(t, got, "*RATA-RATA KELAS*\nHafalan  : 2.5 Juz\nMurojaah : 3 Juz\nZiyadah  : 12.3 Halaman\n")
	assert.Contains(t, got, "1. *Ahmad*\n   Absensi : H:20 | S:1 | I:0 | A:2 | T:1\n   Capaian : Ziyadah: 10 | Murojaah: 2.5 | Hafalan: 3\n")
	assert.Contains(t, got, "2. *Budi*\n   Absensi : H:24 | S:0 | I:0 | A:0 | T:0\n   Capaian : Ziyadah: - | Murojaah: - | Hafalan: -\n")
	assert.True(t, strings.HasSuffix(got, "Digenerate oleh Sistem Informasi Tahfidz"))
}

func TestBuildClassRecapCaption(t *testing.T) {
	cls := KelasRecap{
		Key: "Aliyah-2B", Marhalah: "Aliyah", Kelas: "2B",
		StatusCounts:    StatusCounts{Hadir: 5, Izin: 1, Alpa: 2, Total: 8},
		PersenKehadiran: "63%",
	}
	persons := []PersonRecap{
		{Nama: "Ahmad", Marhalah: "Aliyah", Kelas: "2B", StatusCounts: StatusCounts{Hadir: 5, Total: 5}},
		{Nama: "Budi", Marhalah: "Aliyah", Kelas: "2B", StatusCounts: StatusCounts{Izin: 1, Alpa: 2, Total: 3}},
		{Nama: "Umar", Marhalah: "Jamiah", Kelas: "TQS", StatusCounts: StatusCounts{Alpa: 9, Total: 9}},
	}

	got := BuildClassRecapCaption(cls, persons, "2026-01-01", "2026-01-31")

	assert.Contains(t, got, "*LAPORAN ABSENSI KELAS*\nKelas: 2B (Aliyah)\nPeriode: 2026-01-01 s.d 2026-01-31\n")
	assert.Contains(t, got, "Hadir: 5 | Izin: 1 | Sakit: 0 | Alpa: 2 | Terlambat: 0\n")
	// hanya santri kelas ini, urutan catatan Sakit/Izin/Alpa/Telat
	assert.Contains(t, got, "1. Budi (Izin: 1, Alpa: 2)\n")
	assert.NotContains(t, got, "Umar")
	assert.True(t, strings.HasSuffix(got, "Dikirim otomatis oleh Sistem Informasi Tahfidz."))
}

func TestBuildClassRecapCaptionNihilAndFallbacks(t *testing.T) {
	cls := KelasRecap{Marhalah: "Aliyah", Kelas: "2B", StatusCounts: StatusCounts{Hadir: 3, Total: 3}}
	persons := []PersonRecap{
		{Nama: "Ahmad", Marhalah: "Aliyah", Kelas: "2B", StatusCounts: StatusCounts{Hadir: 3, Total: 3}},
	}

	got := BuildClassRecapCaption(cls, persons, "", "")

	assert.Contains(t, got, "Periode: ... s.d ...\n")
	assert.Contains(t, got, "(Nihil - Semua Hadir)\n")
}

func TestFormatNilai(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{3, "3"},
		{2.5, "2.5"},
		{2.50, "2.5"},
		{2.04, "2"},
		{2.06, "2.1"},
		{12.34, "12.3"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatNilai(tt.in), "FormatNilai(%v)", tt.in)
	}
}
