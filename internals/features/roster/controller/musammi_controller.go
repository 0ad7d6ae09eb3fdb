package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tahfidzku_backend/internals/constants"
	"tahfidzku_backend/internals/features/roster/dto"
	"tahfidzku_backend/internals/features/roster/model"
	helper "tahfidzku_backend/internals/helpers"
)

type MusammiController struct {
	DB *gorm.DB
}

func NewMusammiController(db *gorm.DB) *MusammiController {
	return &MusammiController{DB: db}
}

// GET /musammi?marhalah=&q=&page=&per_page=
func (ctrl *MusammiController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 25, 200)

	q := ctrl.DB.Model(&model.MusammiModel{})
	if marhalah := c.Query("marhalah"); marhalah != "" {
		q = q.Where("musammi_marhalah = ?", marhalah)
	}
	if name := c.Query("q"); name != "" {
		q = q.Where("musammi_nama ILIKE ?", "%"+name+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung musammi")
	}

	var rows []model.MusammiModel
	if err := q.Order("musammi_nama ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data musammi")
	}

	p := helper.BuildPagination(total, paging.Page, paging.PerPage, len(rows))
	return helper.JsonList(c, "Daftar musammi", rows, &p)
}

// POST /musammi
func (ctrl *MusammiController) Create(c *fiber.Ctx) error {
	var req dto.CreateMusammiRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := helper.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}
	if !constants.ValidMarhalah(req.MusammiMarhalah) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Marhalah tidak dikenal")
	}

	m := req.ToModel()
	if err := ctrl.DB.Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan musammi")
	}
	return helper.JsonCreated(c, "Musammi berhasil ditambahkan", m)
}

// PATCH /musammi/:id
func (ctrl *MusammiController) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.UpdateMusammiRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	var row model.MusammiModel
	if err := ctrl.DB.First(&row, "musammi_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Musammi tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	req.Apply(&row)
	if !constants.ValidMarhalah(row.MusammiMarhalah) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Marhalah tidak dikenal")
	}
	if err := ctrl.DB.Save(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui musammi")
	}
	return helper.JsonUpdated(c, "Musammi berhasil diperbarui", row)
}

// DELETE /musammi/:id
func (ctrl *MusammiController) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	res := ctrl.DB.Delete(&model.MusammiModel{}, "musammi_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus musammi")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Musammi tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Musammi berhasil dihapus", fiber.Map{"musammi_id": id})
}
