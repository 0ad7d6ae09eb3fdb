package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	halaqahModel "tahfidzku_backend/internals/features/halaqah/model"
	rosterModel "tahfidzku_backend/internals/features/roster/model"
)

func TestWorkingDaysSkipsFriday(t *testing.T) {
	monday := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)

	days := WorkingDays(monday)

	assert.Len(t, days, 6)
	for _, d := range days {
		assert.NotEqual(t, time.Friday, d.Weekday())
	}
	assert.Equal(t, "2026-01-05", ISODate(days[0]))
	assert.Equal(t, "2026-01-08", ISODate(days[3]))
	// Jumat 9 Jan dilewati, lanjut Sabtu dan Ahad
	assert.Equal(t, "2026-01-10", ISODate(days[4]))
	assert.Equal(t, "2026-01-11", ISODate(days[5]))
}

func TestBuildAttendanceBook(t *testing.T) {
	start := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	halaqahList := []halaqahModel.HalaqahModel{
		{HalaqahId: 1, HalaqahNama: "Halaqah B", HalaqahMarhalah: "Mutawassithah", HalaqahMusammiId: 10, HalaqahJenis: "Halaqah Utama", HalaqahWaktu: []string{"Shubuh", "Isya"}},
		{HalaqahId: 2, HalaqahNama: "Halaqah A", HalaqahMarhalah: "Aliyah", HalaqahMusammiId: 11, HalaqahJenis: "Halaqah Utama", HalaqahWaktu: []string{"Dhuha"}},
		{HalaqahId: 3, HalaqahNama: "Halaqah C", HalaqahMarhalah: "Aliyah", HalaqahMusammiId: 11, HalaqahJenis: "Halaqah Pagi", HalaqahWaktu: []string{"Shubuh"}},
	}
	musammi := map[int64]string{10: "Ust. Salim", 11: "Ust. Hasan"}
	members := map[int64][]rosterModel.SantriModel{
		1: {
			{SantriId: 1, SantriNama: "Zaid", SantriKelas: "1A"},
			{SantriId: 2, SantriNama: "Ahmad", SantriKelas: "1B"},
		},
	}

	doc := BuildAttendanceBook(BookRequest{
		StartDate: start, Weeks: 2, Jenis: "Halaqah Utama", Marhalah: "all",
	}, halaqahList, musammi, members)

	// jenis lain tersaring
	assert.Len(t, doc.Halaqah, 2)
	// urut marhalah leksikografis (Aliyah < Mutawassithah), lalu nama
	assert.Equal(t, "Halaqah A", doc.Halaqah[0].Nama)
	assert.Equal(t, "Halaqah B", doc.Halaqah[1].Nama)

	assert.Equal(t, []string{"S", "I"}, doc.Halaqah[1].SesiInitials)
	assert.Equal(t, "Ust. Salim", doc.Halaqah[1].MusammiNama)

	// anggota urut nama
	assert.Equal(t, "Ahmad", doc.Halaqah[1].Members[0].Nama)
	assert.Equal(t, "Zaid", doc.Halaqah[1].Members[1].Nama)

	assert.Len(t, doc.Weeks, 2)
	assert.Equal(t, "MINGGU KE-1", doc.Weeks[0].Label)
	assert.Equal(t, "5 Januari 2026 - 11 Januari 2026", doc.Weeks[0].Period)
	assert.Len(t, doc.Weeks[0].Days, 6)
	assert.Equal(t, "MINGGU KE-2", doc.Weeks[1].Label)

	assert.Equal(t, "BUKU ABSENSI HALAQAH AL-QURAN", doc.Title)
	assert.Equal(t, "MA'HAD AL FARUQ ASSALAFY", doc.Subtitle)
	assert.Equal(t, "HALAQAH UTAMA", doc.JenisLabel)
	assert.Equal(t, "SEMUA MARHALAH", doc.MarhalahLabel)
	assert.Equal(t, "(2 Minggu)", doc.WeeksLabel)
	assert.Equal(t, "5 Januari 2026 - 18 Januari 2026", doc.PeriodLabel)
}

func TestBuildAttendanceBookMarhalahFilter(t *testing.T) {
	start := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	halaqahList := []halaqahModel.HalaqahModel{
		{HalaqahId: 1, HalaqahNama: "A", HalaqahMarhalah: "Aliyah", HalaqahJenis: "Halaqah Utama"},
		{HalaqahId: 2, HalaqahNama: "B", HalaqahMarhalah: "Jamiah", HalaqahJenis: "Halaqah Utama"},
	}

	doc := BuildAttendanceBook(BookRequest{
		StartDate: start, Weeks: 1, Jenis: "Halaqah Utama", Marhalah: "Jamiah",
	}, halaqahList, nil, nil)

	assert.Len(t, doc.Halaqah, 1)
	assert.Equal(t, "B", doc.Halaqah[0].Nama)
	assert.Equal(t, "JAMIAH", doc.MarhalahLabel)
}
