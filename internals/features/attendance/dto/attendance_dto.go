package dto

import (
	"strings"

	"tahfidzku_backend/internals/features/attendance/model"
)

type CreateAttendanceRequest struct {
	AttendanceDate      string `json:"attendance_date" validate:"required,len=10,datetime=2006-01-02"`
	AttendanceWaktu     string `json:"attendance_waktu" validate:"required"`
	AttendancePeran     string `json:"attendance_peran" validate:"required"`
	AttendancePersonId  int64  `json:"attendance_person_id" validate:"required,gt=0"`
	AttendanceNama      string `json:"attendance_nama" validate:"required"`
	AttendanceMarhalah  string `json:"attendance_marhalah" validate:"required"`
	AttendanceKelas     string `json:"attendance_kelas" validate:"required"`
	AttendanceHalaqahId *int64 `json:"attendance_halaqah_id" validate:"omitempty,gt=0"`
	AttendanceStatus    string `json:"attendance_status" validate:"required"`
}

func (r *CreateAttendanceRequest) Normalize() {
	r.AttendanceDate = strings.TrimSpace(r.AttendanceDate)
	r.AttendanceWaktu = strings.TrimSpace(r.AttendanceWaktu)
	r.AttendancePeran = strings.TrimSpace(r.AttendancePeran)
	r.AttendanceNama = strings.TrimSpace(r.AttendanceNama)
	r.AttendanceMarhalah = strings.TrimSpace(r.AttendanceMarhalah)
	r.AttendanceKelas = strings.TrimSpace(r.AttendanceKelas)
	r.AttendanceStatus = strings.TrimSpace(r.AttendanceStatus)
}

func (r *CreateAttendanceRequest) ToModel() *model.AttendanceModel {
	return &model.AttendanceModel{
		AttendanceDate:      r.AttendanceDate,
		AttendanceWaktu:     r.AttendanceWaktu,
		AttendancePeran:     r.AttendancePeran,
		AttendancePersonId:  r.AttendancePersonId,
		AttendanceNama:      r.AttendanceNama,
		AttendanceMarhalah:  r.AttendanceMarhalah,
		AttendanceKelas:     r.AttendanceKelas,
		AttendanceHalaqahId: r.AttendanceHalaqahId,
		AttendanceStatus:    r.AttendanceStatus,
	}
}

// Batch: satu tanggal+waktu, banyak orang sekaligus (input per sesi).
type BatchCreateAttendanceRequest struct {
	AttendanceDate  string                 `json:"attendance_date" validate:"required,len=10,datetime=2006-01-02"`
	AttendanceWaktu string                 `json:"attendance_waktu" validate:"required"`
	Entries         []BatchAttendanceEntry `json:"entries" validate:"required,min=1,dive"`
}

type BatchAttendanceEntry struct {
	AttendancePeran     string `json:"attendance_peran" validate:"required"`
	AttendancePersonId  int64  `json:"attendance_person_id" validate:"required,gt=0"`
	AttendanceNama      string `json:"attendance_nama" validate:"required"`
	AttendanceMarhalah  string `json:"attendance_marhalah" validate:"required"`
	AttendanceKelas     string `json:"attendance_kelas" validate:"required"`
	AttendanceHalaqahId *int64 `json:"attendance_halaqah_id" validate:"omitempty,gt=0"`
	AttendanceStatus    string `json:"attendance_status" validate:"required"`
}

func (r *BatchCreateAttendanceRequest) ToModels() []model.AttendanceModel {
	out := make([]model.AttendanceModel, 0, len(r.Entries))
	for _, e := range r.Entries {
		out = append(out, model.AttendanceModel{
			AttendanceDate:      strings.TrimSpace(r.AttendanceDate),
			AttendanceWaktu:     strings.TrimSpace(r.AttendanceWaktu),
			AttendancePeran:     strings.TrimSpace(e.AttendancePeran),
			AttendancePersonId:  e.AttendancePersonId,
			AttendanceNama:      strings.TrimSpace(e.AttendanceNama),
			AttendanceMarhalah:  strings.TrimSpace(e.AttendanceMarhalah),
			AttendanceKelas:     strings.TrimSpace(e.AttendanceKelas),
			AttendanceHalaqahId: e.AttendanceHalaqahId,
			AttendanceStatus:    strings.TrimSpace(e.AttendanceStatus),
		})
	}
	return out
}

type UpdateAttendanceRequest struct {
	AttendanceDate   *string `json:"attendance_date" validate:"omitempty,len=10,datetime=2006-01-02"`
	AttendanceWaktu  *string `json:"attendance_waktu"`
	AttendanceStatus *string `json:"attendance_status"`
}

func (r *UpdateAttendanceRequest) Apply(m *model.AttendanceModel) {
	if r.AttendanceDate != nil {
		m.AttendanceDate = strings.TrimSpace(*r.AttendanceDate)
	}
	if r.AttendanceWaktu != nil {
		m.AttendanceWaktu = strings.TrimSpace(*r.AttendanceWaktu)
	}
	if r.AttendanceStatus != nil {
		m.AttendanceStatus = strings.TrimSpace(*r.AttendanceStatus)
	}
}
