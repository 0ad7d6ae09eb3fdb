package dto

import (
	"strings"

	"github.com/lib/pq"

	"tahfidzku_backend/internals/features/halaqah/model"
)

type CreateHalaqahRequest struct {
	HalaqahNama      string   `json:"halaqah_nama" validate:"required,min=2,max=100"`
	HalaqahMarhalah  string   `json:"halaqah_marhalah" validate:"required"`
	HalaqahMusammiId int64    `json:"halaqah_musammi_id" validate:"required,gt=0"`
	HalaqahJenis     string   `json:"halaqah_jenis" validate:"required"`
	HalaqahWaktu     []string `json:"halaqah_waktu" validate:"required,min=1,dive,required"`
	SantriIds        []int64  `json:"santri_ids"`
}

func (r *CreateHalaqahRequest) Normalize() {
	r.HalaqahNama = strings.TrimSpace(r.HalaqahNama)
	r.HalaqahMarhalah = strings.TrimSpace(r.HalaqahMarhalah)
	r.HalaqahJenis = strings.TrimSpace(r.HalaqahJenis)
	for i := range r.HalaqahWaktu {
		r.HalaqahWaktu[i] = strings.TrimSpace(r.HalaqahWaktu[i])
	}
}

func (r *CreateHalaqahRequest) ToModel() *model.HalaqahModel {
	return &model.HalaqahModel{
		HalaqahNama:      r.HalaqahNama,
		HalaqahMarhalah:  r.HalaqahMarhalah,
		HalaqahMusammiId: r.HalaqahMusammiId,
		HalaqahJenis:     r.HalaqahJenis,
		HalaqahWaktu:     pq.StringArray(r.HalaqahWaktu),
	}
}

type UpdateHalaqahRequest struct {
	HalaqahNama      *string  `json:"halaqah_nama" validate:"omitempty,min=2,max=100"`
	HalaqahMusammiId *int64   `json:"halaqah_musammi_id" validate:"omitempty,gt=0"`
	HalaqahJenis     *string  `json:"halaqah_jenis"`
	HalaqahWaktu     []string `json:"halaqah_waktu" validate:"omitempty,min=1,dive,required"`
}

func (r *UpdateHalaqahRequest) Apply(m *model.HalaqahModel) {
	if r.HalaqahNama != nil {
		m.HalaqahNama = strings.TrimSpace(*r.HalaqahNama)
	}
	if r.HalaqahMusammiId != nil {
		m.HalaqahMusammiId = *r.HalaqahMusammiId
	}
	if r.HalaqahJenis != nil {
		m.HalaqahJenis = strings.TrimSpace(*r.HalaqahJenis)
	}
	if len(r.HalaqahWaktu) > 0 {
		m.HalaqahWaktu = pq.StringArray(r.HalaqahWaktu)
	}
}

type AddMembersRequest struct {
	SantriIds []int64 `json:"santri_ids" validate:"required,min=1,dive,gt=0"`
}
