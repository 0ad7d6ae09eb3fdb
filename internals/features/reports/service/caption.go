package service

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"tahfidzku_backend/internals/constants"
	attModel "tahfidzku_backend/internals/features/attendance/model"
)

// Caption WA dibangun byte-per-byte stabil: input sama → teks sama persis,
// tidak ada timestamp di footer.

const captionSeparator = "--------------------------------\n"

type Cadence string

const (
	CadenceHarian   Cadence = "harian"
	CadenceMingguan Cadence = "mingguan"
	CadenceBulanan  Cadence = "bulanan"
)

// ClassInfo: identitas kelas untuk header caption. WaliNama kosong berarti
// baris wali tidak dicetak.
type ClassInfo struct {
	Kelas    string
	Marhalah string
	WaliNama string
}

// PeriodLabel: label periode di bawah judul laporan.
func PeriodLabel(cadence Cadence, refDate time.Time, monthKey string) string {
	switch cadence {
	case CadenceMingguan:
		start := StartOfWeek(refDate)
		end := EndOfWeek(refDate)
		return FormatIndo(start, "d MMM") + " - " + FormatIndo(end, "d MMM yyyy")
	case CadenceBulanan:
		return FormatIndo(ParseMonthKey(monthKey), "MMMM yyyy")
	default:
		return FormatIndo(refDate, "eeee, d MMMM yyyy")
	}
}

func captionHeader(title, label string, cls ClassInfo) string {
	var b strings.Builder
	b.WriteString("*" + title + "*\n")
	b.WriteString(label + "\n")
	b.WriteString(captionSeparator)
	b.WriteString("Kelas : " + cls.Kelas + " (" + cls.Marhalah + ")\n")
	if cls.WaliNama != "" {
		b.WriteString("Wali  : " + cls.WaliNama + "\n")
	}
	b.WriteString(captionSeparator)
	b.WriteString("\n")
	return b.String()
}

func captionFooter() string {
	return captionSeparator + "Digenerate oleh Sistem Informasi Tahfidz"
}

// writeSessionBody: blok STATISTIK KEHADIRAN + DETAIL KETIDAKHADIRAN PER SESI.
// records harus sudah tersaring kelas + periode.
func writeSessionBody(b *strings.Builder, records []attModel.AttendanceModel) {
	var stats StatusCounts
	for _, r := range records {
		stats.add(r.AttendanceStatus)
	}
	fmt.Fprintf(b, "*STATISTIK KEHADIRAN*\n")
	fmt.Fprintf(b, "Hadir : %d\n", stats.Hadir)
	fmt.Fprintf(b, "Sakit : %d\n", stats.Sakit)
	fmt.Fprintf(b, "Izin  : %d\n", stats.Izin)
	fmt.Fprintf(b, "Alpa  : %d\n", stats.Alpa)
	fmt.Fprintf(b, "Telat : %d\n\n", stats.Terlambat)

	b.WriteString("*DETAIL KETIDAKHADIRAN PER SESI*\n")
	for idx, sesi := range constants.AllWaktu {
		fmt.Fprintf(b, "\n%d. %s", idx+1, strings.ToUpper(sesi))
		found := false
		for _, r := range records {
			if r.AttendanceWaktu != sesi || r.AttendanceStatus == constants.StatusHadir {
				continue
			}
			found = true
			fmt.Fprintf(b, "\n   - %s (%s)", r.AttendanceNama, r.AttendanceStatus)
		}
		if !found {
			b.WriteString("\n   (Semua Hadir)")
		}
		b.WriteString("\n")
	}
}

// BuildDailyCaption: laporan harian per kelas.
func BuildDailyCaption(cls ClassInfo, refDate time.Time, records []attModel.AttendanceModel) string {
	var b strings.Builder
	b.WriteString(captionHeader("LAPORAN HARIAN", PeriodLabel(CadenceHarian, refDate, ""), cls))
	writeSessionBody(&b, records)
	b.WriteString(captionFooter())
	return b.String()
}

// BuildWeeklyCaption: bentuk statistiknya sama dengan harian, datanya
// rentang Senin-Ahad dari refDate.
func BuildWeeklyCaption(cls ClassInfo, refDate time.Time, records []attModel.AttendanceModel) string {
	var b strings.Builder
	b.WriteString(captionHeader("LAPORAN MINGGUAN", PeriodLabel(CadenceMingguan, refDate, ""), cls))
	writeSessionBody(&b, records)
	b.WriteString(captionFooter())
	return b.String()
}

// StudentMonthly: satu santri di rincian laporan bulanan.
// Capaian kosong dicetak "-".
type StudentMonthly struct {
	SantriId int64
	Nama     string
	H, I, S, A, T, Total int
	Hafalan  string
	Murojaah string
	Ziyadah  string
}

// ProgressAverages: rata-rata kelas, sudah dibulatkan 1 desimal.
type ProgressAverages struct {
	Hafalan  float64
	Murojaah float64
	Ziyadah  float64
	Count    int
}

// BuildMonthlyCaption: laporan bulanan dengan rata-rata kelas dan rincian
// per santri (absensi + capaian).
func BuildMonthlyCaption(cls ClassInfo, monthKey string, avg ProgressAverages, students []StudentMonthly) string {
	var b strings.Builder
	b.WriteString(captionHeader("LAPORAN BULANAN", PeriodLabel(CadenceBulanan, time.Time{}, monthKey), cls))

	b.WriteString("*RATA-RATA KELAS*\n")
	fmt.Fprintf(&b, "Hafalan  : %s Juz\n", FormatNilai(avg.Hafalan))
	fmt.Fprintf(&b, "Murojaah : %s Juz\n", FormatNilai(avg.Murojaah))
	fmt.Fprintf(&b, "Ziyadah  : %s Halaman\n\n", FormatNilai(avg.Ziyadah))

	b.WriteString("*RINCIAN PER SANTRI*\n")
	b.WriteString("Ket: H(Hadir), S(Sakit), I(Izin), A(Alpa), T(Terlambat)\n\n")
	for idx, s := range students {
		fmt.Fprintf(&b, "%d. *%s*\n", idx+1, s.Nama)
		fmt.Fprintf(&b, "   Absensi : H:%d | S:%d | I:%d | A:%d | T:%d\n", s.H, s.S, s.I, s.A, s.T)
		fmt.Fprintf(&b, "   Capaian : Ziyadah: %s | Murojaah: %s | Hafalan: %s\n\n", s.Ziyadah, s.Murojaah, s.Hafalan)
	}

	b.WriteString(captionFooter())
	return b.String()
}

// BuildClassRecapCaption: caption rekap absensi kelas untuk kirim WA dari
// halaman laporan, lengkap dengan daftar santri bermasalah.
func BuildClassRecapCaption(cls KelasRecap, persons []PersonRecap, dateStart, dateEnd string) string {
	if dateStart == "" {
		dateStart = "..."
	}
	if dateEnd == "" {
		dateEnd = "..."
	}

	var b strings.Builder
	b.WriteString("*LAPORAN ABSENSI KELAS*\n")
	fmt.Fprintf(&b, "Kelas: %s (%s)\n", cls.Kelas, cls.Marhalah)
	fmt.Fprintf(&b, "Periode: %s s.d %s\n", dateStart, dateEnd)
	b.WriteString(captionSeparator)
	b.WriteString("\n")

	b.WriteString("*RINGKASAN KEHADIRAN*\n")
	fmt.Fprintf(&b, "Hadir: %d | Izin: %d | Sakit: %d | Alpa: %d | Terlambat: %d\n\n",
		cls.Hadir, cls.Izin, cls.Sakit, cls.Alpa, cls.Terlambat)

	b.WriteString("*DAFTAR SANTRI BERMASALAH*\n")
	num := 0
	for _, p := range persons {
		if p.Marhalah != cls.Marhalah || p.Kelas != cls.Kelas {
			continue
		}
		if p.Sakit == 0 && p.Izin == 0 && p.Alpa == 0 && p.Terlambat == 0 {
			continue
		}
		num++
		notes := make([]string, 0, 4)
		if p.Sakit > 0 {
			notes = append(notes, fmt.Sprintf("Sakit: %d", p.Sakit))
		}
		if p.Izin > 0 {
			notes = append(notes, fmt.Sprintf("Izin: %d", p.Izin))
		}
		if p.Alpa > 0 {
			notes = append(notes, fmt.Sprintf("Alpa: %d", p.Alpa))
		}
		if p.Terlambat > 0 {
			notes = append(notes, fmt.Sprintf("Telat: %d", p.Terlambat))
		}
		fmt.Fprintf(&b, "%d. %s (%s)\n", num, p.Nama, strings.Join(notes, ", "))
	}
	if num == 0 {
		b.WriteString("(Nihil - Semua Hadir)\n")
	}

	b.WriteString("\n")
	b.WriteString(captionSeparator)
	b.WriteString("Dikirim otomatis oleh Sistem Informasi Tahfidz.")
	return b.String()
}

// FormatNilai mencetak angka capaian tanpa nol di belakang ("2.5", "3"),
// setelah dibulatkan ke 1 desimal.
func FormatNilai(v float64) string {
	r := math.Round(v*10) / 10
	return strconv.FormatFloat(r, 'f', -1, 64)
}
