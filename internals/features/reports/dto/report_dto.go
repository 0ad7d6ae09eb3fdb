package dto

import "strings"

// WAGenerateRequest: body POST /reports/wa/generate. ClassKeys memakai
// kunci rekap kelas ("Marhalah-Kelas"); Filter sama dengan query laporan.
type WAGenerateRequest struct {
	ClassKeys []string      `json:"class_keys" validate:"required,min=1,dive,required"`
	Filter    FilterRequest `json:"filter"`
}

type FilterRequest struct {
	DateStart string `json:"date_start" validate:"omitempty,datetime=2006-01-02"`
	DateEnd   string `json:"date_end" validate:"omitempty,datetime=2006-01-02"`
	Marhalah  string `json:"marhalah"`
	Kelas     string `json:"kelas"`
	Peran     string `json:"peran"`
	Status    string `json:"status"`
	Nama      string `json:"nama"`
}

func (r *WAGenerateRequest) Normalize() {
	for i := range r.ClassKeys {
		r.ClassKeys[i] = strings.TrimSpace(r.ClassKeys[i])
	}
}

// BookGenerateRequest: body POST /reports/book. StartDate harus hari Senin.
type BookGenerateRequest struct {
	StartDate string `json:"start_date" validate:"required,datetime=2006-01-02"`
	Weeks     int    `json:"weeks" validate:"required,gte=1,lte=12"`
	Jenis     string `json:"jenis" validate:"required"`
	Marhalah  string `json:"marhalah"`
}

func (r *BookGenerateRequest) Normalize() {
	r.Jenis = strings.TrimSpace(r.Jenis)
	r.Marhalah = strings.TrimSpace(r.Marhalah)
}
