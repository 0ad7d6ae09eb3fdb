package dto

import (
	"strings"

	"tahfidzku_backend/internals/features/progress/model"
)

type UpsertProgressRequest struct {
	MonthKey string                `json:"month_key" validate:"required,len=7,datetime=2006-01"`
	Type     string                `json:"type" validate:"required"`
	Entries  []UpsertProgressEntry `json:"entries" validate:"required,min=1,dive"`
}

type UpsertProgressEntry struct {
	SantriId int64   `json:"santri_id" validate:"required,gt=0"`
	Nilai    float64 `json:"nilai" validate:"gte=0"`
}

func (r *UpsertProgressRequest) ToModels() []model.StudentProgressModel {
	monthKey := strings.TrimSpace(r.MonthKey)
	ptype := strings.TrimSpace(r.Type)
	out := make([]model.StudentProgressModel, 0, len(r.Entries))
	for _, e := range r.Entries {
		out = append(out, model.StudentProgressModel{
			StudentProgressSantriId: e.SantriId,
			StudentProgressMonthKey: monthKey,
			StudentProgressType:     ptype,
			StudentProgressNilai:    e.Nilai,
		})
	}
	return out
}
