package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"tahfidzku_backend/internals/constants"
	"tahfidzku_backend/internals/features/progress/dto"
	"tahfidzku_backend/internals/features/progress/model"
	helper "tahfidzku_backend/internals/helpers"
)

type ProgressController struct {
	DB *gorm.DB
}

func NewProgressController(db *gorm.DB) *ProgressController {
	return &ProgressController{DB: db}
}

// GET /progress?month=&type=&santri_id=
func (ctrl *ProgressController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 100, 1000)

	q := ctrl.DB.Model(&model.StudentProgressModel{})
	if v := c.Query("month"); v != "" {
		q = q.Where("student_progress_month_key = ?", v)
	}
	if v := c.Query("type"); v != "" {
		q = q.Where("student_progress_type = ?", v)
	}
	if v := c.QueryInt("santri_id"); v > 0 {
		q = q.Where("student_progress_santri_id = ?", v)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung progress")
	}

	var rows []model.StudentProgressModel
	if err := q.Order("student_progress_month_key DESC, student_progress_santri_id ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil progress")
	}

	p := helper.BuildPagination(total, paging.Page, paging.PerPage, len(rows))
	return helper.JsonList(c, "Data progress", rows, &p)
}

// POST /progress/upsert
// Kunci konflik (santri, bulan, jenis): nilai lama ditimpa, bukan ditambah.
func (ctrl *ProgressController) Upsert(c *fiber.Ctx) error {
	var req dto.UpsertProgressRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}
	valid := false
	for _, t := range constants.AllProgressType {
		if t == req.Type {
			valid = true
			break
		}
	}
	if !valid {
		return helper.JsonError(c, fiber.StatusBadRequest, "Jenis progress tidak dikenal: "+req.Type)
	}

	rows := req.ToModels()
	if err := ctrl.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "student_progress_santri_id"},
			{Name: "student_progress_month_key"},
			{Name: "student_progress_type"},
		},
		DoUpdates: clause.AssignmentColumns([]string{"student_progress_nilai", "student_progress_updated_at"}),
	}).Create(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan progress")
	}
	return helper.JsonCreated(c, "Progress tersimpan", fiber.Map{
		"month_key": req.MonthKey,
		"type":      req.Type,
		"count":     len(rows),
	})
}

// DELETE /progress/:id
func (ctrl *ProgressController) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	res := ctrl.DB.Delete(&model.StudentProgressModel{}, "student_progress_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus progress")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Progress tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Progress dihapus", fiber.Map{"student_progress_id": id})
}

// DELETE /progress/month?month=&type=
func (ctrl *ProgressController) DeleteByMonth(c *fiber.Ctx) error {
	month := c.Query("month")
	ptype := c.Query("type")
	if month == "" || ptype == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Parameter month dan type wajib diisi")
	}

	res := ctrl.DB.
		Where("student_progress_month_key = ? AND student_progress_type = ?", month, ptype).
		Delete(&model.StudentProgressModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus progress bulan itu")
	}
	return helper.JsonDeleted(c, "Progress bulan dihapus", fiber.Map{
		"month_key": month,
		"type":      ptype,
		"deleted":   res.RowsAffected,
	})
}
