package service

import (
	"time"

	"tahfidzku_backend/internals/constants"
	attModel "tahfidzku_backend/internals/features/attendance/model"
)

// Statistik beranda: matriks marhalah x status hari ini dan tren 7 hari.

type MarhalahStatusRow struct {
	Marhalah  string `json:"marhalah"`
	Hadir     int    `json:"hadir"`
	Izin      int    `json:"izin"`
	Sakit     int    `json:"sakit"`
	Alpa      int    `json:"alpa"`
	Terlambat int    `json:"terlambat"`
	Total     int    `json:"total"`
}

type TodayMatrix struct {
	Date       string              `json:"date"`
	Rows       []MarhalahStatusRow `json:"rows"`
	ColumnTotal MarhalahStatusRow  `json:"column_total"`
}

// BuildTodayMatrix: semua marhalah selalu muncul (nol kalau kosong);
// baris dengan marhalah asing diabaikan.
func BuildTodayMatrix(records []attModel.AttendanceModel, today string) TodayMatrix {
	idx := map[string]int{}
	rows := make([]MarhalahStatusRow, 0, len(constants.AllMarhalah))
	for i, m := range constants.AllMarhalah {
		idx[m] = i
		rows = append(rows, MarhalahStatusRow{Marhalah: m})
	}

	for _, r := range records {
		if r.AttendanceDate != today {
			continue
		}
		i, ok := idx[r.AttendanceMarhalah]
		if !ok {
			continue
		}
		switch r.AttendanceStatus {
		case constants.StatusHadir:
			rows[i].Hadir++
		case constants.StatusIzin:
			rows[i].Izin++
		case constants.StatusSakit:
			rows[i].Sakit++
		case constants.StatusAlpa:
			rows[i].Alpa++
		case constants.StatusTerlambat:
			rows[i].Terlambat++
		default:
			continue
		}
		rows[i].Total++
	}

	total := MarhalahStatusRow{Marhalah: "TOTAL"}
	for _, r := range rows {
		total.Hadir += r.Hadir
		total.Izin += r.Izin
		total.Sakit += r.Sakit
		total.Alpa += r.Alpa
		total.Terlambat += r.Terlambat
		total.Total += r.Total
	}
	return TodayMatrix{Date: today, Rows: rows, ColumnTotal: total}
}

type DayTrendPoint struct {
	Name string `json:"name"` // singkatan hari (Mon, Tue, ...)
	Date string `json:"date"`
	StatusCounts
}

// BuildWeeklyTrend: 7 titik, 6 hari lalu sampai hari ini.
func BuildWeeklyTrend(records []attModel.AttendanceModel, today time.Time) []DayTrendPoint {
	out := make([]DayTrendPoint, 0, 7)
	for i := 6; i >= 0; i-- {
		d := today.AddDate(0, 0, -i)
		out = append(out, DayTrendPoint{Name: d.Format("Mon"), Date: ISODate(d)})
	}
	byDate := make(map[string]*StatusCounts, len(out))
	for i := range out {
		byDate[out[i].Date] = &out[i].StatusCounts
	}
	for _, r := range records {
		if c, ok := byDate[r.AttendanceDate]; ok {
			c.add(r.AttendanceStatus)
		}
	}
	return out
}
