package constants

// Tabel enumerasi akademik. Urutan slice dipakai sebagai urutan sortir
// rekap, jangan diubah sembarangan.

const (
	MarhalahMutawassithah = "Mutawassithah"
	MarhalahAliyah        = "Aliyah"
	MarhalahJamiah        = "Jamiah"
)

var AllMarhalah = []string{MarhalahMutawassithah, MarhalahAliyah, MarhalahJamiah}

// KelasByMarhalah: daftar kelas resmi per marhalah, urut sesuai buku induk.
var KelasByMarhalah = map[string][]string{
	MarhalahMutawassithah: {"1A", "1B", "1D", "2A", "2B", "3A", "3B", "3C"},
	MarhalahAliyah:        {"1A", "1B", "1C", "2A", "2B", "3A", "3B"},
	MarhalahJamiah:        {"TQS", "KHS"},
}

const (
	WaktuShubuh = "Shubuh"
	WaktuDhuha  = "Dhuha"
	WaktuAshar  = "Ashar"
	WaktuIsya   = "Isya"
)

var AllWaktu = []string{WaktuShubuh, WaktuDhuha, WaktuAshar, WaktuIsya}

const (
	StatusHadir     = "Hadir"
	StatusIzin      = "Izin"
	StatusSakit     = "Sakit"
	StatusAlpa      = "Alpa"
	StatusTerlambat = "Terlambat"
)

var AllAttendanceStatus = []string{StatusHadir, StatusIzin, StatusSakit, StatusAlpa, StatusTerlambat}

const (
	PeranSantri  = "Santri"
	PeranMusammi = "Musammi"
)

var AllPeran = []string{PeranSantri, PeranMusammi}

// Jenis halaqah sengaja string bebas; ini hanya registry nilai yang dikenal
// untuk dropdown, input lain tetap diterima.
const (
	HalaqahUtama = "Halaqah Utama"
	HalaqahPagi  = "Halaqah Pagi"
)

var AllHalaqahType = []string{HalaqahUtama, HalaqahPagi}

const (
	ProgressHafalan  = "Hafalan"
	ProgressMurojaah = "Murojaah"
	ProgressZiyadah  = "Ziyadah"
)

var AllProgressType = []string{ProgressHafalan, ProgressMurojaah, ProgressZiyadah}

// MarhalahRank: indeks urutan marhalah; yang tidak dikenal ditempatkan paling
// belakang.
func MarhalahRank(m string) int {
	for i, v := range AllMarhalah {
		if v == m {
			return i
		}
	}
	return len(AllMarhalah)
}

// KelasRank: indeks kelas pada daftar resmi marhalah, -1 kalau tidak dikenal.
func KelasRank(marhalah, kelas string) int {
	for i, v := range KelasByMarhalah[marhalah] {
		if v == kelas {
			return i
		}
	}
	return -1
}

// WaktuRank: urutan sesi dalam sehari, yang tidak dikenal paling belakang.
func WaktuRank(w string) int {
	for i, v := range AllWaktu {
		if v == w {
			return i
		}
	}
	return len(AllWaktu)
}

// WaktuInitial: inisial satu huruf untuk header buku absensi.
func WaktuInitial(w string) string {
	switch w {
	case WaktuShubuh:
		return "S"
	case WaktuDhuha:
		return "D"
	case WaktuAshar:
		return "A"
	case WaktuIsya:
		return "I"
	}
	if w == "" {
		return ""
	}
	return w[:1]
}

func ValidMarhalah(m string) bool { return MarhalahRank(m) < len(AllMarhalah) }

func ValidWaktu(w string) bool { return WaktuRank(w) < len(AllWaktu) }

func ValidStatus(s string) bool {
	for _, v := range AllAttendanceStatus {
		if v == s {
			return true
		}
	}
	return false
}

func ValidPeran(p string) bool { return p == PeranSantri || p == PeranMusammi }
