package service

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"tahfidzku_backend/internals/constants"
	halaqahModel "tahfidzku_backend/internals/features/halaqah/model"
	rosterModel "tahfidzku_backend/internals/features/roster/model"
)

// Buku absensi cetak: per minggu 6 hari kerja (Jumat libur), per halaqah
// grid anggota x (hari x inisial waktu) dengan sel kosong untuk dicentang.

type BookRequest struct {
	StartDate time.Time // Senin awal periode
	Weeks     int
	Jenis     string // jenis halaqah
	Marhalah  string // "" atau "all" = semua
}

type BookDay struct {
	Date  string `json:"date"`  // YYYY-MM-DD
	Label string `json:"label"` // "Senin, 5/1"
}

type BookWeek struct {
	Label  string    `json:"label"`  // "MINGGU KE-1"
	Period string    `json:"period"` // "5 Januari 2026 - 11 Januari 2026"
	Days   []BookDay `json:"days"`
}

type BookMember struct {
	Nama  string `json:"nama"`
	Kelas string `json:"kelas"`
}

type BookHalaqah struct {
	Nama         string       `json:"nama"`
	MusammiNama  string       `json:"musammi_nama"`
	Marhalah     string       `json:"marhalah"`
	SesiInitials []string     `json:"sesi_initials"`
	Members      []BookMember `json:"members"`
}

type BookDocument struct {
	Title         string        `json:"title"`
	Subtitle      string        `json:"subtitle"`
	JenisLabel    string        `json:"jenis_label"`
	MarhalahLabel string        `json:"marhalah_label"`
	PeriodLabel   string        `json:"period_label"`
	WeeksLabel    string        `json:"weeks_label"`
	Weeks         []BookWeek    `json:"weeks"`
	Halaqah       []BookHalaqah `json:"halaqah"`
}

// WorkingDays: 6 hari dari Senin weekStart, hari Jumat dilewati.
func WorkingDays(weekStart time.Time) []time.Time {
	out := make([]time.Time, 0, 6)
	for i := 0; i < 7; i++ {
		d := weekStart.AddDate(0, 0, i)
		if d.Weekday() != time.Friday {
			out = append(out, d)
		}
	}
	return out
}

// BuildAttendanceBook menyusun isi buku. halaqahList sudah berisi semua
// halaqah; penyaringan jenis/marhalah dilakukan di sini.
func BuildAttendanceBook(
	req BookRequest,
	halaqahList []halaqahModel.HalaqahModel,
	musammiNameByID map[int64]string,
	membersByHalaqah map[int64][]rosterModel.SantriModel,
) BookDocument {
	filtered := make([]halaqahModel.HalaqahModel, 0, len(halaqahList))
	for _, h := range halaqahList {
		if h.HalaqahJenis != req.Jenis {
			continue
		}
		if req.Marhalah != "" && req.Marhalah != FilterAll && h.HalaqahMarhalah != req.Marhalah {
			continue
		}
		filtered = append(filtered, h)
	}
	sort.Slice(filtered, func(i, j int) bool {
		if filtered[i].HalaqahMarhalah != filtered[j].HalaqahMarhalah {
			return filtered[i].HalaqahMarhalah < filtered[j].HalaqahMarhalah
		}
		return filtered[i].HalaqahNama < filtered[j].HalaqahNama
	})

	weeks := make([]BookWeek, 0, req.Weeks)
	for w := 0; w < req.Weeks; w++ {
		weekStart := req.StartDate.AddDate(0, 0, w*7)
		days := WorkingDays(weekStart)
		bw := BookWeek{
			Label: fmt.Sprintf("MINGGU KE-%d", w+1),
			Period: FormatIndo(days[0], "d MMMM yyyy") + " - " +
				FormatIndo(days[len(days)-1], "d MMMM yyyy"),
		}
		for _, d := range days {
			bw.Days = append(bw.Days, BookDay{Date: ISODate(d), Label: FormatDayIndo(d)})
		}
		weeks = append(weeks, bw)
	}

	items := make([]BookHalaqah, 0, len(filtered))
	for _, h := range filtered {
		initials := make([]string, 0, len(h.HalaqahWaktu))
		for _, w := range h.HalaqahWaktu {
			initials = append(initials, constants.WaktuInitial(w))
		}

		members := membersByHalaqah[h.HalaqahId]
		sorted := make([]rosterModel.SantriModel, len(members))
		copy(sorted, members)
		sort.Slice(sorted, func(i, j int) bool { return sorted[i].SantriNama < sorted[j].SantriNama })

		bh := BookHalaqah{
			Nama:         h.HalaqahNama,
			MusammiNama:  musammiNameByID[h.HalaqahMusammiId],
			Marhalah:     h.HalaqahMarhalah,
			SesiInitials: initials,
		}
		for _, m := range sorted {
			bh.Members = append(bh.Members, BookMember{Nama: m.SantriNama, Kelas: m.SantriKelas})
		}
		items = append(items, bh)
	}

	marhalahLabel := "SEMUA MARHALAH"
	if req.Marhalah != "" && req.Marhalah != FilterAll {
		marhalahLabel = strings.ToUpper(req.Marhalah)
	}
	endDate := req.StartDate.AddDate(0, 0, req.Weeks*7-1)

	return BookDocument{
		Title:         "BUKU ABSENSI HALAQAH AL-QURAN",
		Subtitle:      "MA'HAD AL FARUQ ASSALAFY",
		JenisLabel:    strings.ToUpper(req.Jenis),
		MarhalahLabel: marhalahLabel,
		PeriodLabel: FormatIndo(req.StartDate, "d MMMM yyyy") + " - " +
			FormatIndo(endDate, "d MMMM yyyy"),
		WeeksLabel: fmt.Sprintf("(%d Minggu)", req.Weeks),
		Weeks:      weeks,
		Halaqah:    items,
	}
}
