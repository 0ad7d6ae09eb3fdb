package service

import (
	"fmt"
	"math"
	"sort"

	"tahfidzku_backend/internals/constants"
	attModel "tahfidzku_backend/internals/features/attendance/model"
)

// StatusCounts: lima counter status + total input.
// Total menghitung SEMUA baris grup, termasuk status di luar lima itu,
// sehingga jumlah counter selalu <= Total.
type StatusCounts struct {
	Hadir     int `json:"hadir"`
	Izin      int `json:"izin"`
	Sakit     int `json:"sakit"`
	Terlambat int `json:"terlambat"`
	Alpa      int `json:"alpa"`
	Total     int `json:"total"`
}

func (s *StatusCounts) add(status string) {
	switch status {
	case constants.StatusHadir:
		s.Hadir++
	case constants.StatusIzin:
		s.Izin++
	case constants.StatusSakit:
		s.Sakit++
	case constants.StatusTerlambat:
		s.Terlambat++
	case constants.StatusAlpa:
		s.Alpa++
	}
	s.Total++
}

// PersonRecap: rekap per (peran, person). Nama/marhalah/kelas diambil dari
// baris pertama yang ditemui; kalau baris-baris satu orang tidak konsisten,
// yang pertama menang.
type PersonRecap struct {
	PersonId int64  `json:"person_id"`
	Peran    string `json:"peran"`
	Marhalah string `json:"marhalah"`
	Kelas    string `json:"kelas"`
	Nama     string `json:"nama"`
	StatusCounts
}

// RecapByPerson mengelompokkan per (peran, person id), urut marhalah lalu
// kelas lalu nama.
func RecapByPerson(records []attModel.AttendanceModel) []PersonRecap {
	groups := map[string]*PersonRecap{}
	for _, r := range records {
		key := fmt.Sprintf("%s_%d", r.AttendancePeran, r.AttendancePersonId)
		g, ok := groups[key]
		if !ok {
			g = &PersonRecap{
				PersonId: r.AttendancePersonId,
				Peran:    r.AttendancePeran,
				Marhalah: r.AttendanceMarhalah,
				Kelas:    r.AttendanceKelas,
				Nama:     r.AttendanceNama,
			}
			groups[key] = g
		}
		g.add(r.AttendanceStatus)
	}

	out := make([]PersonRecap, 0, len(groups))
	for _, g := range groups {
		out = append(out, *g)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if c := compareMarhalah(a.Marhalah, b.Marhalah); c != 0 {
			return c < 0
		}
		if c := compareKelas(a.Marhalah, a.Kelas, b.Kelas); c != 0 {
			return c < 0
		}
		return a.Nama < b.Nama
	})
	return out
}

// KelasRecap: rekap per (marhalah, kelas) dengan persentase kehadiran.
type KelasRecap struct {
	Key      string `json:"key"` // "Marhalah-Kelas"
	Marhalah string `json:"marhalah"`
	Kelas    string `json:"kelas"`
	StatusCounts
	PersenKehadiran string `json:"persen_kehadiran"`
}

// RecapByKelas mengelompokkan per kelas. PersenKehadiran =
// round(Hadir/Total*100) dengan "0%" saat Total nol.
func RecapByKelas(records []attModel.AttendanceModel) []KelasRecap {
	groups := map[string]*KelasRecap{}
	for _, r := range records {
		key := r.AttendanceMarhalah + "-" + r.AttendanceKelas
		g, ok := groups[key]
		if !ok {
			g = &KelasRecap{
				Key:             key,
				Marhalah:        r.AttendanceMarhalah,
				Kelas:           r.AttendanceKelas,
				PersenKehadiran: "0%",
			}
			groups[key] = g
		}
		g.add(r.AttendanceStatus)
	}

	out := make([]KelasRecap, 0, len(groups))
	for _, g := range groups {
		if g.Total > 0 {
			g.PersenKehadiran = fmt.Sprintf("%d%%", int(math.Round(float64(g.Hadir)/float64(g.Total)*100)))
		}
		out = append(out, *g)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if c := compareMarhalah(a.Marhalah, b.Marhalah); c != 0 {
			return c < 0
		}
		return compareKelas(a.Marhalah, a.Kelas, b.Kelas) < 0
	})
	return out
}

// WaktuRecap: rekap per (tanggal, waktu), urut tanggal terbaru dulu lalu
// urutan sesi dalam sehari.
type WaktuRecap struct {
	Date  string `json:"date"`
	Waktu string `json:"waktu"`
	StatusCounts
}

func RecapByWaktu(records []attModel.AttendanceModel) []WaktuRecap {
	groups := map[string]*WaktuRecap{}
	for _, r := range records {
		key := r.AttendanceDate + "_" + r.AttendanceWaktu
		g, ok := groups[key]
		if !ok {
			g = &WaktuRecap{Date: r.AttendanceDate, Waktu: r.AttendanceWaktu}
			groups[key] = g
		}
		g.add(r.AttendanceStatus)
	}

	out := make([]WaktuRecap, 0, len(groups))
	for _, g := range groups {
		out = append(out, *g)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Date != b.Date {
			return a.Date > b.Date
		}
		return constants.WaktuRank(a.Waktu) < constants.WaktuRank(b.Waktu)
	})
	return out
}

// GlobalWaktuRow: distribusi status per sesi global. Keempat waktu selalu
// hadir (nol semua kalau tidak ada data); waktu tak dikenal diabaikan.
type GlobalWaktuRow struct {
	Name string `json:"name"`
	StatusCounts
}

func GlobalWaktuDistribution(records []attModel.AttendanceModel) []GlobalWaktuRow {
	idx := map[string]int{}
	out := make([]GlobalWaktuRow, 0, len(constants.AllWaktu))
	for i, w := range constants.AllWaktu {
		idx[w] = i
		out = append(out, GlobalWaktuRow{Name: w})
	}
	for _, r := range records {
		if i, ok := idx[r.AttendanceWaktu]; ok {
			out[i].add(r.AttendanceStatus)
		}
	}
	return out
}

// PieSlice untuk distribusi lima status.
type PieSlice struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

func StatusDistribution(records []attModel.AttendanceModel) []PieSlice {
	order := []string{
		constants.StatusHadir, constants.StatusIzin, constants.StatusSakit,
		constants.StatusAlpa, constants.StatusTerlambat,
	}
	counts := map[string]int{}
	for _, r := range records {
		counts[r.AttendanceStatus]++
	}
	out := make([]PieSlice, 0, len(order))
	for _, name := range order {
		out = append(out, PieSlice{Name: name, Value: counts[name]})
	}
	return out
}

// compareMarhalah: urutan enum, yang tidak dikenal di belakang.
func compareMarhalah(a, b string) int {
	ra, rb := constants.MarhalahRank(a), constants.MarhalahRank(b)
	switch {
	case ra < rb:
		return -1
	case ra > rb:
		return 1
	default:
		return 0
	}
}

// compareKelas: dua-duanya dikenal → urutan tabel; satu dikenal → yang
// dikenal duluan; dua-duanya asing → leksikografis.
func compareKelas(marhalah, a, b string) int {
	ra, rb := constants.KelasRank(marhalah, a), constants.KelasRank(marhalah, b)
	switch {
	case ra >= 0 && rb >= 0:
		if ra < rb {
			return -1
		}
		if ra > rb {
			return 1
		}
		return 0
	case ra >= 0:
		return -1
	case rb >= 0:
		return 1
	default:
		if a < b {
			return -1
		}
		if a > b {
			return 1
		}
		return 0
	}
}
