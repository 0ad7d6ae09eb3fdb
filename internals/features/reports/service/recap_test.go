package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	attModel "tahfidzku_backend/internals/features/attendance/model"
)

func TestRecapByPersonGroupsAndCounts(t *testing.T) {
	rows := []attModel.AttendanceModel{
		att("2026-01-01", "Shubuh", "Santri", 1, "Ahmad", "Aliyah", "2B", "Hadir"),
		att("2026-01-01", "Dhuha", "Santri", 1, "Ahmad", "Aliyah", "2B", "Izin"),
		att("2026-01-02", "Shubuh", "Santri", 1, "Ahmad", "Aliyah", "2B", "Hadir"),
		att("2026-01-01", "Shubuh", "Musammi", 1, "Ust. Salim", "Aliyah", "", "Terlambat"),
	}

	got := RecapByPerson(rows)

	assert.Len(t, got, 2, "peran berbeda dengan id sama harus jadi dua grup")
	var ahmad, salim *PersonRecap
	for i := range got {
		switch got[i].Peran {
		case "Santri":
			ahmad = &got[i]
		case "Musammi":
			salim = &got[i]
		}
	}
	if assert.NotNil(t, ahmad) {
		assert.Equal(t, 2, ahmad.Hadir)
		assert.Equal(t, 1, ahmad.Izin)
		assert.Equal(t, 3, ahmad.Total)
	}
	if assert.NotNil(t, salim) {
		assert.Equal(t, 1, salim.Terlambat)
		assert.Equal(t, 1, salim.Total)
	}
}

func TestRecapByPersonFirstSeenDisplayFields(t *testing.T) {
	rows := []attModel.AttendanceModel{
		att("2026-01-01", "Shubuh", "Santri", 1, "Ahmad", "Aliyah", "2B", "Hadir"),
		att("2026-01-02", "Shubuh", "Santri", 1, "Ahmad Fauzan", "Aliyah", "3A", "Hadir"),
	}

	got := RecapByPerson(rows)

	assert.Len(t, got, 1)
	assert.Equal(t, "Ahmad", got[0].Nama)
	assert.Equal(t, "2B", got[0].Kelas)
	assert.Equal(t, 2, got[0].Total)
}

func TestRecapByPersonSortOrder(t *testing.T) {
	rows := []attModel.AttendanceModel{
		att("2026-01-01", "Shubuh", "Santri", 1, "Zaid", "Jamiah", "TQS", "Hadir"),
		att("2026-01-01", "Shubuh", "Santri", 2, "Ali", "Mutawassithah", "1B", "Hadir"),
		att("2026-01-01", "Shubuh", "Santri", 3, "Bakr", "Mutawassithah", "1A", "Hadir"),
		att("2026-01-01", "Shubuh", "Santri", 4, "Umar", "Madrasah Asing", "1A", "Hadir"),
		att("2026-01-01", "Shubuh", "Santri", 5, "Dawud", "Mutawassithah", "1A", "Hadir"),
		att("2026-01-01", "Shubuh", "Santri", 6, "Isa", "Mutawassithah", "9Z", "Hadir"),
	}

	got := RecapByPerson(rows)

	names := make([]string, len(got))
	for i, r := range got {
		names[i] = r.Nama
	}
	// Mutawassithah dulu (1A sebelum 1B, kelas asing 9Z paling belakang),
	// lalu Jamiah, marhalah asing terakhir.
	assert.Equal(t, []string{"Bakr", "Dawud", "Ali", "Isa", "Zaid", "Umar"}, names)
}

func TestRecapByKelasPercentage(t *testing.T) {
	rows := []attModel.AttendanceModel{
		att("2026-01-01", "Shubuh", "Santri", 1, "A", "Aliyah", "2B", "Hadir"),
		att("2026-01-01", "Shubuh", "Santri", 2, "B", "Aliyah", "2B", "Hadir"),
		att("2026-01-01", "Shubuh", "Santri", 3, "C", "Aliyah", "2B", "Alpa"),
	}

	got := RecapByKelas(rows)

	assert.Len(t, got, 1)
	assert.Equal(t, "Aliyah-2B", got[0].Key)
	// 2/3 = 66.67 dibulatkan 67
	assert.Equal(t, "67%", got[0].PersenKehadiran)
}

func TestRecapByKelasSortsByMarhalahThenKelas(t *testing.T) {
	rows := []attModel.AttendanceModel{
		att("2026-01-01", "Shubuh", "Santri", 1, "A", "Jamiah", "KHS", "Hadir"),
		att("2026-01-01", "Shubuh", "Santri", 2, "B", "Mutawassithah", "2A", "Hadir"),
		att("2026-01-01", "Shubuh", "Santri", 3, "C", "Mutawassithah", "1B", "Hadir"),
		att("2026-01-01", "Shubuh", "Santri", 4, "D", "Jamiah", "TQS", "Hadir"),
	}

	got := RecapByKelas(rows)

	keys := make([]string, len(got))
	for i, r := range got {
		keys[i] = r.Key
	}
	assert.Equal(t, []string{"Mutawassithah-1B", "Mutawassithah-2A", "Jamiah-TQS", "Jamiah-KHS"}, keys)
}

func TestRecapByWaktuOrder(t *testing.T) {
	rows := []attModel.AttendanceModel{
		att("2026-01-01", "Isya", "Santri", 1, "A", "Aliyah", "2B", "Hadir"),
		att("2026-01-02", "Shubuh", "Santri", 1, "A", "Aliyah", "2B", "Hadir"),
		att("2026-01-01", "Shubuh", "Santri", 1, "A", "Aliyah", "2B", "Hadir"),
		att("2026-01-02", "Ashar", "Santri", 1, "A", "Aliyah", "2B", "Izin"),
	}

	got := RecapByWaktu(rows)

	type dw struct{ d, w string }
	order := make([]dw, len(got))
	for i, r := range got {
		order[i] = dw{r.Date, r.Waktu}
	}
	// tanggal terbaru dulu, dalam satu tanggal urut sesi harian
	assert.Equal(t, []dw{
		{"2026-01-02", "Shubuh"},
		{"2026-01-02", "Ashar"},
		{"2026-01-01", "Shubuh"},
		{"2026-01-01", "Isya"},
	}, order)
}

func TestGlobalWaktuDistributionPreseedsAllWaktu(t *testing.T) {
	rows := []attModel.AttendanceModel{
		att("2026-01-01", "Shubuh", "Santri", 1, "A", "Aliyah", "2B", "Hadir"),
		att("2026-01-01", "Waktu Aneh", "Santri", 2, "B", "Aliyah", "2B", "Hadir"),
	}

	got := GlobalWaktuDistribution(rows)

	assert.Len(t, got, 4)
	assert.Equal(t, "Shubuh", got[0].Name)
	assert.Equal(t, 1, got[0].Hadir)
	assert.Equal(t, "Dhuha", got[1].Name)
	assert.Equal(t, 0, got[1].Total)
	assert.Equal(t, "Ashar", got[2].Name)
	assert.Equal(t, "Isya", got[3].Name)
}

func TestStatusDistributionFixedOrder(t *testing.T) {
	rows := []attModel.AttendanceModel{
		att("2026-01-01", "Shubuh", "Santri", 1, "A", "Aliyah", "2B", "Alpa"),
		att("2026-01-01", "Dhuha", "Santri", 1, "A", "Aliyah", "2B", "Alpa"),
		att("2026-01-01", "Ashar", "Santri", 1, "A", "Aliyah", "2B", "Hadir"),
	}

	got := StatusDistribution(rows)

	assert.Len(t, got, 5)
	assert.Equal(t, PieSlice{Name: "Hadir", Value: 1}, got[0])
	assert.Equal(t, PieSlice{Name: "Izin", Value: 0}, got[1])
	assert.Equal(t, PieSlice{Name: "Sakit", Value: 0}, got[2])
	assert.Equal(t, PieSlice{Name: "Alpa", Value: 2}, got[3])
	assert.Equal(t, PieSlice{Name: "Terlambat", Value: 0}, got[4])
}

func TestRecapPartitionInvariant(t *testing.T) {
	// Campuran: beberapa orang, kelas, sesi, status, peran, plus duplikat
	// (orang+tanggal+sesi sama dua kali) yang memang ikut terhitung dua kali.
	rows := []attModel.AttendanceModel{
		att("2026-01-01", "Shubuh", "Santri", 1, "Ahmad", "Mutawassithah", "1A", "Hadir"),
		att("2026-01-01", "Shubuh", "Santri", 1, "Ahmad", "Mutawassithah", "1A", "Hadir"),
		att("2026-01-01", "Dhuha", "Santri", 2, "Budi", "Mutawassithah", "1B", "Izin"),
		att("2026-01-01", "Ashar", "Santri", 3, "Hasan", "Aliyah", "2B", "Sakit"),
		att("2026-01-02", "Shubuh", "Santri", 3, "Hasan", "Aliyah", "2B", "Alpa"),
		att("2026-01-02", "Isya", "Santri", 4, "Zaid", "Jamiah", "TQS", "Terlambat"),
		att("2026-01-02", "Isya", "Musammi", 4, "Ust. Salim", "Jamiah", "TQS", "Hadir"),
		att("2026-01-03", "Dhuha", "Santri", 5, "Umar", "Aliyah", "3A", "Alpa"),
	}

	var want StatusCounts
	for _, r := range rows {
		switch r.AttendanceStatus {
		case "Hadir":
			want.Hadir++
		case "Izin":
			want.Izin++
		case "Sakit":
			want.Sakit++
		case "Alpa":
			want.Alpa++
		case "Terlambat":
			want.Terlambat++
		}
		want.Total++
	}

	sum := func(counts []StatusCounts) StatusCounts {
		var s StatusCounts
		for _, c := range counts {
			s.Hadir += c.Hadir
			s.Izin += c.Izin
			s.Sakit += c.Sakit
			s.Alpa += c.Alpa
			s.Terlambat += c.Terlambat
			s.Total += c.Total
		}
		return s
	}

	var perPerson, perKelas, perWaktu []StatusCounts
	for _, r := range RecapByPerson(rows) {
		perPerson = append(perPerson, r.StatusCounts)
	}
	for _, r := range RecapByKelas(rows) {
		perKelas = append(perKelas, r.StatusCounts)
	}
	for _, r := range RecapByWaktu(rows) {
		perWaktu = append(perWaktu, r.StatusCounts)
	}

	assert.Equal(t, want, sum(perPerson), "jumlah per status rekap per orang")
	assert.Equal(t, want, sum(perKelas), "jumlah per status rekap per kelas")
	assert.Equal(t, want, sum(perWaktu), "jumlah per status rekap per sesi")
}

func TestRecapByPersonStableUnderInputOrder(t *testing.T) {
	rows := []attModel.AttendanceModel{
		att("2026-01-01", "Shubuh", "Santri", 1, "Ahmad", "Mutawassithah", "1A", "Hadir"),
		att("2026-01-02", "Dhuha", "Santri", 1, "Ahmad", "Mutawassithah", "1A", "Izin"),
		att("2026-01-01", "Shubuh", "Santri", 2, "Budi", "Aliyah", "2B", "Alpa"),
		att("2026-01-01", "Isya", "Santri", 3, "Zaid", "Jamiah", "TQS", "Hadir"),
		att("2026-01-03", "Ashar", "Musammi", 1, "Ust. Salim", "Aliyah", "2B", "Hadir"),
	}
	reversed := make([]attModel.AttendanceModel, len(rows))
	for i, r := range rows {
		reversed[len(rows)-1-i] = r
	}

	assert.Equal(t, RecapByPerson(rows), RecapByPerson(reversed),
		"urutan input tidak boleh mengubah hasil rekap")
}

func TestStatusCountsTotalIncludesUnknownStatus(t *testing.T) {
	rows := []attModel.AttendanceModel{
		att("2026-01-01", "Shubuh", "Santri", 1, "A", "Aliyah", "2B", "Hadir"),
		att("2026-01-01", "Dhuha", "Santri", 1, "A", "Aliyah", "2B", "Bolos"),
	}

	got := RecapByPerson(rows)

	assert.Len(t, got, 1)
	assert.Equal(t, 1, got[0].Hadir)
	assert.Equal(t, 2, got[0].Total)
}
