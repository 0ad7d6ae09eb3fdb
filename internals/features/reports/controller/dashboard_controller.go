package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"

	attModel "tahfidzku_backend/internals/features/attendance/model"
	halaqahModel "tahfidzku_backend/internals/features/halaqah/model"
	"tahfidzku_backend/internals/features/reports/dto"
	"tahfidzku_backend/internals/features/reports/service"
	rosterModel "tahfidzku_backend/internals/features/roster/model"
	helper "tahfidzku_backend/internals/helpers"
)

/* ===================== DASHBOARD ===================== */
// GET /reports/dashboard
// Ringkasan beranda: jumlah santri per marhalah, matriks status hari ini,
// tren 7 hari terakhir.
func (ctrl *ReportController) Dashboard(c *fiber.Ctx) error {
	type marhalahCount struct {
		Marhalah string `json:"marhalah"`
		Total    int64  `json:"total"`
	}
	var counts []marhalahCount
	if err := ctrl.DB.Model(&rosterModel.SantriModel{}).
		Select("santri_marhalah AS marhalah, COUNT(*) AS total").
		Group("santri_marhalah").
		Scan(&counts).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung santri")
	}

	now := time.Now()
	today := service.ISODate(now)
	weekAgo := service.ISODate(now.AddDate(0, 0, -6))

	var rows []attModel.AttendanceModel
	if err := ctrl.DB.
		Where("attendance_date BETWEEN ? AND ?", weekAgo, today).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data absensi")
	}

	return helper.JsonOK(c, "Statistik beranda", fiber.Map{
		"santri_per_marhalah": counts,
		"today":               service.BuildTodayMatrix(rows, today),
		"weekly_trend":        service.BuildWeeklyTrend(rows, now),
	})
}

/* ===================== BUKU ABSENSI ===================== */
// POST /reports/book?format=json|csv
func (ctrl *ReportController) GenerateBook(c *fiber.Ctx) error {
	var body dto.BookGenerateRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	body.Normalize()
	if err := helper.Validate.Struct(body); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	start := service.ParseISODate(body.StartDate)
	if start.IsZero() {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format tanggal tidak valid")
	}
	if start.Weekday() != time.Monday {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tanggal mulai harus hari Senin")
	}

	var halaqahList []halaqahModel.HalaqahModel
	if err := ctrl.DB.Find(&halaqahList).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil halaqah")
	}

	var musammiList []rosterModel.MusammiModel
	if err := ctrl.DB.Find(&musammiList).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil musammi")
	}
	musammiNames := make(map[int64]string, len(musammiList))
	for _, m := range musammiList {
		musammiNames[m.MusammiId] = m.MusammiNama
	}

	members, err := ctrl.fetchMembersByHalaqah()
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil anggota halaqah")
	}

	doc := service.BuildAttendanceBook(service.BookRequest{
		StartDate: start,
		Weeks:     body.Weeks,
		Jenis:     body.Jenis,
		Marhalah:  body.Marhalah,
	}, halaqahList, musammiNames, members)

	if c.Query("format", "json") == "csv" {
		out, err := ctrl.CSV.ExportBook(doc)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyusun buku absensi")
		}
		c.Set(fiber.HeaderContentType, ctrl.CSV.ContentType())
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="Buku_Absensi_Halaqah.`+ctrl.CSV.Extension()+`"`)
		return c.Send(out)
	}
	return helper.JsonOK(c, "Buku absensi tersusun", doc)
}

func (ctrl *ReportController) fetchMembersByHalaqah() (map[int64][]rosterModel.SantriModel, error) {
	type memberRow struct {
		HalaqahId      int64
		SantriId       int64
		SantriNama     string
		SantriMarhalah string
		SantriKelas    string
	}
	var rows []memberRow
	if err := ctrl.DB.Table("halaqah_santri").
		Select("halaqah_santri.halaqah_santri_halaqah_id AS halaqah_id, santri.santri_id, santri.santri_nama, santri.santri_marhalah, santri.santri_kelas").
		Joins("JOIN santri ON santri.santri_id = halaqah_santri.halaqah_santri_santri_id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	out := make(map[int64][]rosterModel.SantriModel)
	for _, r := range rows {
		out[r.HalaqahId] = append(out[r.HalaqahId], rosterModel.SantriModel{
			SantriId:       r.SantriId,
			SantriNama:     r.SantriNama,
			SantriMarhalah: r.SantriMarhalah,
			SantriKelas:    r.SantriKelas,
		})
	}
	return out, nil
}
