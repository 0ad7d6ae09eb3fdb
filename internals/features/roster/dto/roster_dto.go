package dto

import (
	"strings"

	"tahfidzku_backend/internals/features/roster/model"
)

/* ===================== SANTRI ===================== */

type CreateSantriRequest struct {
	SantriNama     string `json:"santri_nama" validate:"required,min=2,max=100"`
	SantriMarhalah string `json:"santri_marhalah" validate:"required"`
	SantriKelas    string `json:"santri_kelas" validate:"required"`
}

func (r *CreateSantriRequest) Normalize() {
	r.SantriNama = strings.TrimSpace(r.SantriNama)
	r.SantriMarhalah = strings.TrimSpace(r.SantriMarhalah)
	r.SantriKelas = strings.TrimSpace(r.SantriKelas)
}

func (r *CreateSantriRequest) ToModel() *model.SantriModel {
	return &model.SantriModel{
		SantriNama:     r.SantriNama,
		SantriMarhalah: r.SantriMarhalah,
		SantriKelas:    r.SantriKelas,
	}
}

type UpdateSantriRequest struct {
	SantriNama     *string `json:"santri_nama" validate:"omitempty,min=2,max=100"`
	SantriMarhalah *string `json:"santri_marhalah"`
	SantriKelas    *string `json:"santri_kelas"`
}

func (r *UpdateSantriRequest) Apply(m *model.SantriModel) {
	if r.SantriNama != nil {
		m.SantriNama = strings.TrimSpace(*r.SantriNama)
	}
	if r.SantriMarhalah != nil {
		m.SantriMarhalah = strings.TrimSpace(*r.SantriMarhalah)
	}
	if r.SantriKelas != nil {
		m.SantriKelas = strings.TrimSpace(*r.SantriKelas)
	}
}

/* ===================== MUSAMMI ===================== */

type CreateMusammiRequest struct {
	MusammiNama     string `json:"musammi_nama" validate:"required,min=2,max=100"`
	MusammiMarhalah string `json:"musammi_marhalah" validate:"required"`
}

func (r *CreateMusammiRequest) Normalize() {
	r.MusammiNama = strings.TrimSpace(r.MusammiNama)
	r.MusammiMarhalah = strings.TrimSpace(r.MusammiMarhalah)
}

func (r *CreateMusammiRequest) ToModel() *model.MusammiModel {
	return &model.MusammiModel{
		MusammiNama:     r.MusammiNama,
		MusammiMarhalah: r.MusammiMarhalah,
	}
}

type UpdateMusammiRequest struct {
	MusammiNama     *string `json:"musammi_nama" validate:"omitempty,min=2,max=100"`
	MusammiMarhalah *string `json:"musammi_marhalah"`
}

func (r *UpdateMusammiRequest) Apply(m *model.MusammiModel) {
	if r.MusammiNama != nil {
		m.MusammiNama = strings.TrimSpace(*r.MusammiNama)
	}
	if r.MusammiMarhalah != nil {
		m.MusammiMarhalah = strings.TrimSpace(*r.MusammiMarhalah)
	}
}

/* ===================== WALI KELAS ===================== */

type CreateWaliKelasRequest struct {
	WaliKelasNama     string `json:"wali_kelas_nama" validate:"required,min=2,max=100"`
	WaliKelasMarhalah string `json:"wali_kelas_marhalah" validate:"required"`
	WaliKelasKelas    string `json:"wali_kelas_kelas" validate:"required"`
	WaliKelasNomorWA  string `json:"wali_kelas_nomor_wa"`
}

func (r *CreateWaliKelasRequest) Normalize() {
	r.WaliKelasNama = strings.TrimSpace(r.WaliKelasNama)
	r.WaliKelasMarhalah = strings.TrimSpace(r.WaliKelasMarhalah)
	r.WaliKelasKelas = strings.TrimSpace(r.WaliKelasKelas)
	r.WaliKelasNomorWA = strings.TrimSpace(r.WaliKelasNomorWA)
}

func (r *CreateWaliKelasRequest) ToModel() *model.WaliKelasModel {
	return &model.WaliKelasModel{
		WaliKelasNama:     r.WaliKelasNama,
		WaliKelasMarhalah: r.WaliKelasMarhalah,
		WaliKelasKelas:    r.WaliKelasKelas,
		WaliKelasNomorWA:  r.WaliKelasNomorWA,
	}
}

type UpdateWaliKelasRequest struct {
	WaliKelasNama     *string `json:"wali_kelas_nama" validate:"omitempty,min=2,max=100"`
	WaliKelasMarhalah *string `json:"wali_kelas_marhalah"`
	WaliKelasKelas    *string `json:"wali_kelas_kelas"`
	WaliKelasNomorWA  *string `json:"wali_kelas_nomor_wa"`
}

func (r *UpdateWaliKelasRequest) Apply(m *model.WaliKelasModel) {
	if r.WaliKelasNama != nil {
		m.WaliKelasNama = strings.TrimSpace(*r.WaliKelasNama)
	}
	if r.WaliKelasMarhalah != nil {
		m.WaliKelasMarhalah = strings.TrimSpace(*r.WaliKelasMarhalah)
	}
	if r.WaliKelasKelas != nil {
		m.WaliKelasKelas = strings.TrimSpace(*r.WaliKelasKelas)
	}
	if r.WaliKelasNomorWA != nil {
		m.WaliKelasNomorWA = strings.TrimSpace(*r.WaliKelasNomorWA)
	}
}
