package service

import (
	"strings"

	attModel "tahfidzku_backend/internals/features/attendance/model"
)

// FilterAll berarti kriteria itu tidak membatasi apa-apa.
const FilterAll = "all"

// Filter adalah snapshot kriteria laporan. Semua kriteria di-AND-kan.
// Rentang tanggal dibandingkan leksikografis karena format baris YYYY-MM-DD.
type Filter struct {
	DateStart string `json:"date_start"`
	DateEnd   string `json:"date_end"`
	Marhalah  string `json:"marhalah"`
	Kelas     string `json:"kelas"`
	Peran     string `json:"peran"`
	Status    string `json:"status"`
	Nama      string `json:"nama"`
}

func (f Filter) matchEnum(want, got string) bool {
	return want == "" || want == FilterAll || want == got
}

// Match memutuskan satu baris lolos filter atau tidak.
func (f Filter) Match(r attModel.AttendanceModel) bool {
	if f.DateStart != "" && r.AttendanceDate < f.DateStart {
		return false
	}
	if f.DateEnd != "" && r.AttendanceDate > f.DateEnd {
		return false
	}
	if !f.matchEnum(f.Marhalah, r.AttendanceMarhalah) {
		return false
	}
	if !f.matchEnum(f.Kelas, r.AttendanceKelas) {
		return false
	}
	if !f.matchEnum(f.Peran, r.AttendancePeran) {
		return false
	}
	if !f.matchEnum(f.Status, r.AttendanceStatus) {
		return false
	}
	if f.Nama != "" && !strings.Contains(strings.ToLower(r.AttendanceNama), strings.ToLower(f.Nama)) {
		return false
	}
	return true
}

// Apply menyaring tanpa mengubah urutan maupun slice sumber.
func (f Filter) Apply(records []attModel.AttendanceModel) []attModel.AttendanceModel {
	out := make([]attModel.AttendanceModel, 0, len(records))
	for _, r := range records {
		if f.Match(r) {
			out = append(out, r)
		}
	}
	return out
}
