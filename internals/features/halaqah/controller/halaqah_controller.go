package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tahfidzku_backend/internals/constants"
	"tahfidzku_backend/internals/features/halaqah/dto"
	"tahfidzku_backend/internals/features/halaqah/model"
	rosterModel "tahfidzku_backend/internals/features/roster/model"
	helper "tahfidzku_backend/internals/helpers"
)

type HalaqahController struct {
	DB *gorm.DB
}

func NewHalaqahController(db *gorm.DB) *HalaqahController {
	return &HalaqahController{DB: db}
}

/* ===================== LIST ===================== */
// GET /halaqah?marhalah=&jenis=
func (ctrl *HalaqahController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 50, 200)

	q := ctrl.DB.Model(&model.HalaqahModel{})
	if marhalah := c.Query("marhalah"); marhalah != "" {
		q = q.Where("halaqah_marhalah = ?", marhalah)
	}
	if jenis := c.Query("jenis"); jenis != "" {
		q = q.Where("halaqah_jenis = ?", jenis)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung halaqah")
	}

	var rows []model.HalaqahModel
	if err := q.Order("halaqah_marhalah ASC, halaqah_nama ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data halaqah")
	}

	p := helper.BuildPagination(total, paging.Page, paging.PerPage, len(rows))
	return helper.JsonList(c, "Daftar halaqah", rows, &p)
}

/* ===================== DETAIL + ANGGOTA ===================== */
// GET /halaqah/:id
func (ctrl *HalaqahController) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var row model.HalaqahModel
	if err := ctrl.DB.First(&row, "halaqah_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Halaqah tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var members []rosterModel.SantriModel
	if err := ctrl.DB.
		Joins("JOIN halaqah_santri ON halaqah_santri.halaqah_santri_santri_id = santri.santri_id").
		Where("halaqah_santri.halaqah_santri_halaqah_id = ?", id).
		Order("santri.santri_nama ASC").
		Find(&members).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil anggota halaqah")
	}

	return helper.JsonOK(c, "", fiber.Map{
		"halaqah": row,
		"santri":  members,
	})
}

/* ===================== CREATE ===================== */
// POST /halaqah
func (ctrl *HalaqahController) Create(c *fiber.Ctx) error {
	var req dto.CreateHalaqahRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := helper.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}
	if !constants.ValidMarhalah(req.HalaqahMarhalah) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Marhalah tidak dikenal")
	}
	for _, w := range req.HalaqahWaktu {
		if !constants.ValidWaktu(w) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Waktu tidak dikenal: "+w)
		}
	}

	m := req.ToModel()
	err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(m).Error; err != nil {
			return err
		}
		for _, sid := range req.SantriIds {
			link := model.HalaqahSantriModel{
				HalaqahSantriHalaqahId: m.HalaqahId,
				HalaqahSantriSantriId:  sid,
			}
			if err := tx.Create(&link).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan halaqah")
	}
	return helper.JsonCreated(c, "Halaqah berhasil dibuat", m)
}

/* ===================== UPDATE ===================== */
// PATCH /halaqah/:id
func (ctrl *HalaqahController) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.UpdateHalaqahRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}
	for _, w := range req.HalaqahWaktu {
		if !constants.ValidWaktu(w) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Waktu tidak dikenal: "+w)
		}
	}

	var row model.HalaqahModel
	if err := ctrl.DB.First(&row, "halaqah_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Halaqah tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	req.Apply(&row)
	if err := ctrl.DB.Save(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui halaqah")
	}
	return helper.JsonUpdated(c, "Halaqah berhasil diperbarui", row)
}

/* ===================== ANGGOTA ===================== */
// POST /halaqah/:id/santri
func (ctrl *HalaqahController) AddMembers(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.AddMembersRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	var count int64
	if err := ctrl.DB.Model(&model.HalaqahModel{}).
		Where("halaqah_id = ?", id).Count(&count).Error; err != nil || count == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Halaqah tidak ditemukan")
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		for _, sid := range req.SantriIds {
			link := model.HalaqahSantriModel{
				HalaqahSantriHalaqahId: int64(id),
				HalaqahSantriSantriId:  sid,
			}
			if err := tx.Create(&link).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menambah anggota")
	}
	return helper.JsonCreated(c, "Anggota halaqah ditambahkan", fiber.Map{
		"halaqah_id": id,
		"santri_ids": req.SantriIds,
	})
}

// DELETE /halaqah/:id/santri/:santri_id
func (ctrl *HalaqahController) RemoveMember(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	santriID, err := c.ParamsInt("santri_id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID santri tidak valid")
	}

	res := ctrl.DB.
		Where("halaqah_santri_halaqah_id = ? AND halaqah_santri_santri_id = ?", id, santriID).
		Delete(&model.HalaqahSantriModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus anggota")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Anggota tidak ditemukan di halaqah ini")
	}
	return helper.JsonDeleted(c, "Anggota halaqah dihapus", fiber.Map{
		"halaqah_id": id,
		"santri_id":  santriID,
	})
}

/* ===================== DELETE (CASCADE) ===================== */
// DELETE /halaqah/:id
// Urutan wajib: link anggota dulu, lalu absensi halaqah, baru halaqahnya.
func (ctrl *HalaqahController) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("halaqah_santri_halaqah_id = ?", id).
			Delete(&model.HalaqahSantriModel{}).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM attendance WHERE attendance_halaqah_id = ?", id).Error; err != nil {
			return err
		}
		res := tx.Delete(&model.HalaqahModel{}, "halaqah_id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Halaqah tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus halaqah")
	}
	return helper.JsonDeleted(c, "Halaqah beserta absensinya dihapus", fiber.Map{"halaqah_id": id})
}
