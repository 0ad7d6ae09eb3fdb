package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tahfidzku_backend/internals/constants"
	"tahfidzku_backend/internals/features/roster/dto"
	"tahfidzku_backend/internals/features/roster/model"
	helper "tahfidzku_backend/internals/helpers"
)

type WaliKelasController struct {
	DB *gorm.DB
}

func NewWaliKelasController(db *gorm.DB) *WaliKelasController {
	return &WaliKelasController{DB: db}
}

// GET /wali-kelas?marhalah=&kelas=
func (ctrl *WaliKelasController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 50, 200)

	q := ctrl.DB.Model(&model.WaliKelasModel{})
	if marhalah := c.Query("marhalah"); marhalah != "" {
		q = q.Where("wali_kelas_marhalah = ?", marhalah)
	}
	if kelas := c.Query("kelas"); kelas != "" {
		q = q.Where("wali_kelas_kelas = ?", kelas)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung wali kelas")
	}

	var rows []model.WaliKelasModel
	if err := q.Order("wali_kelas_marhalah ASC, wali_kelas_kelas ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data wali kelas")
	}

	p := helper.BuildPagination(total, paging.Page, paging.PerPage, len(rows))
	return helper.JsonList(c, "Daftar wali kelas", rows, &p)
}

// POST /wali-kelas
func (ctrl *WaliKelasController) Create(c *fiber.Ctx) error {
	var req dto.CreateWaliKelasRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := helper.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}
	if !constants.ValidMarhalah(req.WaliKelasMarhalah) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Marhalah tidak dikenal")
	}
	if constants.KelasRank(req.WaliKelasMarhalah, req.WaliKelasKelas) < 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Kelas tidak ada di marhalah tersebut")
	}

	m := req.ToModel()
	if err := ctrl.DB.Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan wali kelas")
	}
	return helper.JsonCreated(c, "Wali kelas berhasil ditambahkan", m)
}

// PATCH /wali-kelas/:id
func (ctrl *WaliKelasController) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.UpdateWaliKelasRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	var row model.WaliKelasModel
	if err := ctrl.DB.First(&row, "wali_kelas_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Wali kelas tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	req.Apply(&row)
	if !constants.ValidMarhalah(row.WaliKelasMarhalah) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Marhalah tidak dikenal")
	}
	if constants.KelasRank(row.WaliKelasMarhalah, row.WaliKelasKelas) < 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Kelas tidak ada di marhalah tersebut")
	}
	if err := ctrl.DB.Save(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui wali kelas")
	}
	return helper.JsonUpdated(c, "Wali kelas berhasil diperbarui", row)
}

// DELETE /wali-kelas/:id
func (ctrl *WaliKelasController) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	res := ctrl.DB.Delete(&model.WaliKelasModel{}, "wali_kelas_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus wali kelas")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Wali kelas tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Wali kelas berhasil dihapus", fiber.Map{"wali_kelas_id": id})
}
