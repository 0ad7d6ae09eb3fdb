package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	attModel "tahfidzku_backend/internals/features/attendance/model"
)

func att(date, waktu, peran string, id int64, nama, marhalah, kelas, status string) attModel.AttendanceModel {
	return attModel.AttendanceModel{
		AttendanceDate:     date,
		AttendanceWaktu:    waktu,
		AttendancePeran:    peran,
		AttendancePersonId: id,
		AttendanceNama:     nama,
		AttendanceMarhalah: marhalah,
		AttendanceKelas:    kelas,
		AttendanceStatus:   status,
	}
}

func TestFilterMatch(t *testing.T) {
	row := att("2026-01-10", "Shubuh", "Santri", 1, "Ahmad Fauzan", "Aliyah", "2B", "Hadir")

	tests := []struct {
		name string
		f    Filter
		want bool
	}{
		{"kosong lolos semua", Filter{}, true},
		{"all lolos semua", Filter{Marhalah: "all", Kelas: "all", Peran: "all", Status: "all"}, true},
		{"rentang tanggal di dalam", Filter{DateStart: "2026-01-01", DateEnd: "2026-01-31"}, true},
		{"sebelum date_start", Filter{DateStart: "2026-01-11"}, false},
		{"sesudah date_end", Filter{DateEnd: "2026-01-09"}, false},
		{"tepat di batas", Filter{DateStart: "2026-01-10", DateEnd: "2026-01-10"}, true},
		{"marhalah cocok", Filter{Marhalah: "Aliyah"}, true},
		{"marhalah beda", Filter{Marhalah: "Jamiah"}, false},
		{"kelas beda", Filter{Kelas: "1A"}, false},
		{"peran cocok", Filter{Peran: "Santri"}, true},
		{"status beda", Filter{Status: "Alpa"}, false},
		{"nama substring case-insensitive", Filter{Nama: "fauZAN"}, true},
		{"nama tidak terkandung", Filter{Nama: "budi"}, false},
		{"gabungan AND", Filter{Marhalah: "Aliyah", Status: "Hadir", Nama: "ahmad"}, true},
		{"gabungan AND salah satu gagal", Filter{Marhalah: "Aliyah", Status: "Izin"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.f.Match(row))
		})
	}
}

func TestFilterApplyPreservesOrder(t *testing.T) {
	rows := []attModel.AttendanceModel{
		att("2026-01-03", "Shubuh", "Santri", 1, "C", "Aliyah", "2B", "Hadir"),
		att("2026-01-01", "Shubuh", "Santri", 2, "A", "Aliyah", "2B", "Hadir"),
		att("2026-01-02", "Shubuh", "Santri", 3, "B", "Jamiah", "TQS", "Hadir"),
	}

	got := Filter{Marhalah: "Aliyah"}.Apply(rows)

	assert.Len(t, got, 2)
	assert.Equal(t, "C", got[0].AttendanceNama)
	assert.Equal(t, "A", got[1].AttendanceNama)
	// sumber tidak berubah
	assert.Len(t, rows, 3)
}

func TestFilterApplyEmptyInput(t *testing.T) {
	got := Filter{Status: "Hadir"}.Apply(nil)
	assert.Empty(t, got)
}
