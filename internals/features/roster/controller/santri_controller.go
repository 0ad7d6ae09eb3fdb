package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tahfidzku_backend/internals/constants"
	"tahfidzku_backend/internals/features/roster/dto"
	"tahfidzku_backend/internals/features/roster/model"
	helper "tahfidzku_backend/internals/helpers"
)

type SantriController struct {
	DB *gorm.DB
}

func NewSantriController(db *gorm.DB) *SantriController {
	return &SantriController{DB: db}
}

/* ===================== LIST ===================== */
// GET /santri?marhalah=&kelas=&q=&page=&per_page=
func (ctrl *SantriController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 25, 200)

	q := ctrl.DB.Model(&model.SantriModel{})
	if marhalah := c.Query("marhalah"); marhalah != "" {
		q = q.Where("santri_marhalah = ?", marhalah)
	}
	if kelas := c.Query("kelas"); kelas != "" {
		q = q.Where("santri_kelas = ?", kelas)
	}
	if name := c.Query("q"); name != "" {
		q = q.Where("santri_nama ILIKE ?", "%"+name+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung santri")
	}

	var rows []model.SantriModel
	if err := q.Order("santri_nama ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data santri")
	}

	p := helper.BuildPagination(total, paging.Page, paging.PerPage, len(rows))
	return helper.JsonList(c, "Daftar santri", rows, &p)
}

/* ===================== DETAIL ===================== */
// GET /santri/:id
func (ctrl *SantriController) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var row model.SantriModel
	if err := ctrl.DB.First(&row, "santri_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Santri tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "", row)
}

/* ===================== CREATE ===================== */
// POST /santri
func (ctrl *SantriController) Create(c *fiber.Ctx) error {
	var req dto.CreateSantriRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := helper.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}
	if !constants.ValidMarhalah(req.SantriMarhalah) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Marhalah tidak dikenal")
	}
	if constants.KelasRank(req.SantriMarhalah, req.SantriKelas) < 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Kelas tidak ada di marhalah tersebut")
	}

	m := req.ToModel()
	if err := ctrl.DB.Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan santri")
	}
	return helper.JsonCreated(c, "Santri berhasil ditambahkan", m)
}

/* ===================== UPDATE ===================== */
// PATCH /santri/:id
func (ctrl *SantriController) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.UpdateSantriRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	var row model.SantriModel
	if err := ctrl.DB.First(&row, "santri_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Santri tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	req.Apply(&row)
	if !constants.ValidMarhalah(row.SantriMarhalah) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Marhalah tidak dikenal")
	}
	if constants.KelasRank(row.SantriMarhalah, row.SantriKelas) < 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Kelas tidak ada di marhalah tersebut")
	}
	if err := ctrl.DB.Save(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui santri")
	}
	return helper.JsonUpdated(c, "Santri berhasil diperbarui", row)
}

/* ===================== DELETE ===================== */
// DELETE /santri/:id
func (ctrl *SantriController) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	res := ctrl.DB.Delete(&model.SantriModel{}, "santri_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus santri")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Santri tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Santri berhasil dihapus", fiber.Map{"santri_id": id})
}
