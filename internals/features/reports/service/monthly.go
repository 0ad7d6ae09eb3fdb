package service

import (
	"math"
	"sort"
	"strings"

	attModel "tahfidzku_backend/internals/features/attendance/model"
	progModel "tahfidzku_backend/internals/features/progress/model"
	rosterModel "tahfidzku_backend/internals/features/roster/model"
	"tahfidzku_backend/internals/constants"
)

// BuildMonthlyDetail menyusun rincian laporan bulanan satu kelas:
// daftar santri (urut nama) dengan counter absensi bulan itu plus capaian,
// dan rata-rata capaian kelas.
//
// classStudents: roster kelas; records: absensi kelas bulan itu (peran
// Santri); progress: baris capaian apa pun, disaring di sini.
func BuildMonthlyDetail(
	classStudents []rosterModel.SantriModel,
	records []attModel.AttendanceModel,
	progress []progModel.StudentProgressModel,
	monthKey string,
) ([]StudentMonthly, ProgressAverages) {
	students := make([]rosterModel.SantriModel, len(classStudents))
	copy(students, classStudents)
	sort.Slice(students, func(i, j int) bool { return students[i].SantriNama < students[j].SantriNama })

	memberIDs := make(map[int64]bool, len(students))
	for _, s := range students {
		memberIDs[s.SantriId] = true
	}

	// capaian per (santri, jenis) untuk bulan ini
	progByKey := map[int64]map[string]float64{}
	var sums, counts [3]float64
	typeIdx := map[string]int{
		constants.ProgressHafalan:  0,
		constants.ProgressMurojaah: 1,
		constants.ProgressZiyadah:  2,
	}
	total := 0
	for _, p := range progress {
		if p.StudentProgressMonthKey != monthKey || !memberIDs[p.StudentProgressSantriId] {
			continue
		}
		if progByKey[p.StudentProgressSantriId] == nil {
			progByKey[p.StudentProgressSantriId] = map[string]float64{}
		}
		progByKey[p.StudentProgressSantriId][p.StudentProgressType] = p.StudentProgressNilai
		if i, ok := typeIdx[p.StudentProgressType]; ok {
			sums[i] += p.StudentProgressNilai
			counts[i]++
		}
		total++
	}

	out := make([]StudentMonthly, 0, len(students))
	for _, s := range students {
		sm := StudentMonthly{
			SantriId: s.SantriId,
			Nama:     s.SantriNama,
			Hafalan:  "-",
			Murojaah: "-",
			Ziyadah:  "-",
		}
		for _, r := range records {
			if r.AttendancePersonId != s.SantriId || r.AttendancePeran != constants.PeranSantri {
				continue
			}
			switch r.AttendanceStatus {
			case constants.StatusHadir:
				sm.H++
			case constants.StatusIzin:
				sm.I++
			case constants.StatusSakit:
				sm.S++
			case constants.StatusAlpa:
				sm.A++
			case constants.StatusTerlambat:
				sm.T++
			}
			sm.Total++
		}
		if vals, ok := progByKey[s.SantriId]; ok {
			if v, ok := vals[constants.ProgressHafalan]; ok {
				sm.Hafalan = FormatNilai(v)
			}
			if v, ok := vals[constants.ProgressMurojaah]; ok {
				sm.Murojaah = FormatNilai(v)
			}
			if v, ok := vals[constants.ProgressZiyadah]; ok {
				sm.Ziyadah = FormatNilai(v)
			}
		}
		out = append(out, sm)
	}

	avg := ProgressAverages{Count: total}
	round1 := func(v float64) float64 { return math.Round(v*10) / 10 }
	if counts[0] > 0 {
		avg.Hafalan = round1(sums[0] / counts[0])
	}
	if counts[1] > 0 {
		avg.Murojaah = round1(sums[1] / counts[1])
	}
	if counts[2] > 0 {
		avg.Ziyadah = round1(sums[2] / counts[2])
	}
	return out, avg
}

// ProgressTrendPoint: rata-rata satu bulan untuk grafik tren.
type ProgressTrendPoint struct {
	Name     string  `json:"name"` // nama bulan huruf besar
	Hafalan  float64 `json:"hafalan"`
	Murojaah float64 `json:"murojaah"`
	Ziyadah  float64 `json:"ziyadah"`
}

// ProgressTrend: rata-rata capaian 3 bulan terakhir (2 bulan lalu, bulan
// lalu, bulan monthKey), untuk anggota kelas yang diberikan.
func ProgressTrend(progress []progModel.StudentProgressModel, memberIDs map[int64]bool, monthKey string) []ProgressTrendPoint {
	base := ParseMonthKey(monthKey)
	out := make([]ProgressTrendPoint, 0, 3)
	for i := 2; i >= 0; i-- {
		m := base.AddDate(0, -i, 0)
		mKey := MonthKey(m)
		var sums, counts [3]float64
		for _, p := range progress {
			if p.StudentProgressMonthKey != mKey || !memberIDs[p.StudentProgressSantriId] {
				continue
			}
			switch p.StudentProgressType {
			case constants.ProgressHafalan:
				sums[0] += p.StudentProgressNilai
				counts[0]++
			case constants.ProgressMurojaah:
				sums[1] += p.StudentProgressNilai
				counts[1]++
			case constants.ProgressZiyadah:
				sums[2] += p.StudentProgressNilai
				counts[2]++
			}
		}
		pt := ProgressTrendPoint{Name: strings.ToUpper(FormatIndo(m, "MMMM"))}
		round1 := func(v float64) float64 { return math.Round(v*10) / 10 }
		if counts[0] > 0 {
			pt.Hafalan = round1(sums[0] / counts[0])
		}
		if counts[1] > 0 {
			pt.Murojaah = round1(sums[1] / counts[1])
		}
		if counts[2] > 0 {
			pt.Ziyadah = round1(sums[2] / counts[2])
		}
		out = append(out, pt)
	}
	return out
}
