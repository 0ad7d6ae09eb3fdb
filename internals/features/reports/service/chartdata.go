package service

import (
	"tahfidzku_backend/internals/constants"
)

// Warna status baku untuk semua grafik.
var StatusColors = map[string]string{
	constants.StatusHadir:     "#22C55E",
	constants.StatusSakit:     "#F59E0B",
	constants.StatusIzin:      "#0EA5E9",
	constants.StatusAlpa:      "#EF4444",
	constants.StatusTerlambat: "#FBBF24",
}

// chartStatusOrder: urutan seri pada grafik batang bertumpuk.
var chartStatusOrder = []string{
	constants.StatusHadir,
	constants.StatusSakit,
	constants.StatusIzin,
	constants.StatusAlpa,
	constants.StatusTerlambat,
}

type ChartSeries struct {
	Name   string `json:"name"`
	Color  string `json:"color"`
	Values []int  `json:"values"`
}

// ChartProjection: data siap gambar, urutan kategori mengikuti urutan rekap
// sumbernya. MinWidthPx hanya hint lebar kanvas.
type ChartProjection struct {
	Title      string        `json:"title"`
	Categories []string      `json:"categories"`
	Series     []ChartSeries `json:"series"`
	MinWidthPx int           `json:"min_width_px"`
}

func chartMinWidth(n, perCategory int) int {
	w := n * perCategory
	if w < 600 {
		return 600
	}
	return w
}

func pick(c StatusCounts, status string) int {
	switch status {
	case constants.StatusHadir:
		return c.Hadir
	case constants.StatusSakit:
		return c.Sakit
	case constants.StatusIzin:
		return c.Izin
	case constants.StatusAlpa:
		return c.Alpa
	case constants.StatusTerlambat:
		return c.Terlambat
	}
	return 0
}

func buildSeries(counts []StatusCounts) []ChartSeries {
	series := make([]ChartSeries, 0, len(chartStatusOrder))
	for _, status := range chartStatusOrder {
		s := ChartSeries{Name: status, Color: StatusColors[status], Values: make([]int, len(counts))}
		for i, c := range counts {
			s.Values[i] = pick(c, status)
		}
		series = append(series, s)
	}
	return series
}

// ProjectPersonChart: grafik kehadiran per orang (40px per kategori).
func ProjectPersonChart(recaps []PersonRecap) ChartProjection {
	cats := make([]string, len(recaps))
	counts := make([]StatusCounts, len(recaps))
	for i, r := range recaps {
		cats[i] = r.Nama
		counts[i] = r.StatusCounts
	}
	return ChartProjection{
		Title:      "Grafik Kehadiran Per Santri",
		Categories: cats,
		Series:     buildSeries(counts),
		MinWidthPx: chartMinWidth(len(cats), 40),
	}
}

// ProjectKelasChart: grafik per kelas (50px per kategori), label
// "Kelas (Marhalah)".
func ProjectKelasChart(recaps []KelasRecap) ChartProjection {
	cats := make([]string, len(recaps))
	counts := make([]StatusCounts, len(recaps))
	for i, r := range recaps {
		cats[i] = r.Kelas + " (" + r.Marhalah + ")"
		counts[i] = r.StatusCounts
	}
	return ChartProjection{
		Title:      "Grafik Kehadiran Per Kelas",
		Categories: cats,
		Series:     buildSeries(counts),
		MinWidthPx: chartMinWidth(len(cats), 50),
	}
}

// ProjectWaktuChart: distribusi status per sesi global.
func ProjectWaktuChart(rows []GlobalWaktuRow) ChartProjection {
	cats := make([]string, len(rows))
	counts := make([]StatusCounts, len(rows))
	for i, r := range rows {
		cats[i] = r.Name
		counts[i] = r.StatusCounts
	}
	return ChartProjection{
		Title:      "Distribusi Kehadiran Per Waktu",
		Categories: cats,
		Series:     buildSeries(counts),
		MinWidthPx: chartMinWidth(len(cats), 40),
	}
}
