package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tahfidzku_backend/internals/constants"
	"tahfidzku_backend/internals/features/attendance/dto"
	"tahfidzku_backend/internals/features/attendance/model"
	helper "tahfidzku_backend/internals/helpers"
)

type AttendanceController struct {
	DB *gorm.DB
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{DB: db}
}

func validateSessionFields(waktu, peran, status string) error {
	// "all" hanya bermakna di filter laporan, bukan di pencatatan.
	if !constants.ValidWaktu(waktu) {
		return fiber.NewError(fiber.StatusBadRequest, "Waktu tidak dikenal: "+waktu)
	}
	if !constants.ValidPeran(peran) {
		return fiber.NewError(fiber.StatusBadRequest, "Peran tidak dikenal: "+peran)
	}
	if !constants.ValidStatus(status) {
		return fiber.NewError(fiber.StatusBadRequest, "Status tidak dikenal: "+status)
	}
	return nil
}

/* ===================== LIST ===================== */
// GET /attendance?date_start=&date_end=&marhalah=&kelas=&peran=&status=&waktu=&page=&per_page=
func (ctrl *AttendanceController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 50, 500)

	q := ctrl.DB.Model(&model.AttendanceModel{})
	if v := c.Query("date_start"); v != "" {
		q = q.Where("attendance_date >= ?", v)
	}
	if v := c.Query("date_end"); v != "" {
		q = q.Where("attendance_date <= ?", v)
	}
	if v := c.Query("marhalah"); v != "" {
		q = q.Where("attendance_marhalah = ?", v)
	}
	if v := c.Query("kelas"); v != "" {
		q = q.Where("attendance_kelas = ?", v)
	}
	if v := c.Query("peran"); v != "" {
		q = q.Where("attendance_peran = ?", v)
	}
	if v := c.Query("status"); v != "" {
		q = q.Where("attendance_status = ?", v)
	}
	if v := c.Query("waktu"); v != "" {
		q = q.Where("attendance_waktu = ?", v)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung absensi")
	}

	var rows []model.AttendanceModel
	if err := q.Order("attendance_date DESC, attendance_id DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data absensi")
	}

	p := helper.BuildPagination(total, paging.Page, paging.PerPage, len(rows))
	return helper.JsonList(c, "Data absensi", rows, &p)
}

/* ===================== CREATE ===================== */
// POST /attendance
func (ctrl *AttendanceController) Create(c *fiber.Ctx) error {
	var req dto.CreateAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := helper.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}
	if err := validateSessionFields(req.AttendanceWaktu, req.AttendancePeran, req.AttendanceStatus); err != nil {
		return err
	}

	m := req.ToModel()
	if err := ctrl.DB.Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan absensi")
	}
	return helper.JsonCreated(c, "Absensi tercatat", m)
}

/* ===================== CREATE BATCH ===================== */
// POST /attendance/batch
// Satu sesi (tanggal+waktu) untuk banyak orang sekaligus.
func (ctrl *AttendanceController) CreateBatch(c *fiber.Ctx) error {
	var req dto.BatchCreateAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}
	for _, e := range req.Entries {
		if err := validateSessionFields(req.AttendanceWaktu, e.AttendancePeran, e.AttendanceStatus); err != nil {
			return err
		}
	}

	rows := req.ToModels()
	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		return tx.CreateInBatches(rows, 200).Error
	}); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan absensi batch")
	}
	return helper.JsonCreated(c, "Absensi sesi tercatat", fiber.Map{
		"attendance_date":  req.AttendanceDate,
		"attendance_waktu": req.AttendanceWaktu,
		"count":            len(rows),
	})
}

/* ===================== UPDATE ===================== */
// PATCH /attendance/:id
func (ctrl *AttendanceController) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.UpdateAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	var row model.AttendanceModel
	if err := ctrl.DB.First(&row, "attendance_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Absensi tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	req.Apply(&row)
	if err := validateSessionFields(row.AttendanceWaktu, row.AttendancePeran, row.AttendanceStatus); err != nil {
		return err
	}
	if err := ctrl.DB.Save(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui absensi")
	}
	return helper.JsonUpdated(c, "Absensi diperbarui", row)
}

/* ===================== DELETE ===================== */
// DELETE /attendance/:id
func (ctrl *AttendanceController) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	res := ctrl.DB.Delete(&model.AttendanceModel{}, "attendance_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus absensi")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Absensi tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Absensi dihapus", fiber.Map{"attendance_id": id})
}

// DELETE /attendance/session?date=&waktu=
// Hapus seluruh sesi, misal salah input satu sesi penuh.
func (ctrl *AttendanceController) DeleteSession(c *fiber.Ctx) error {
	date := c.Query("date")
	waktu := c.Query("waktu")
	if date == "" || waktu == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Parameter date dan waktu wajib diisi")
	}
	if !constants.ValidWaktu(waktu) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Waktu tidak dikenal: "+waktu)
	}

	res := ctrl.DB.
		Where("attendance_date = ? AND attendance_waktu = ?", date, waktu).
		Delete(&model.AttendanceModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus sesi")
	}
	return helper.JsonDeleted(c, "Sesi absensi dihapus", fiber.Map{
		"attendance_date":  date,
		"attendance_waktu": waktu,
		"deleted":          res.RowsAffected,
	})
}
