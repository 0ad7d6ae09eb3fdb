package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tahfidzku_backend/internals/constants"
	attModel "tahfidzku_backend/internals/features/attendance/model"
	progModel "tahfidzku_backend/internals/features/progress/model"
	"tahfidzku_backend/internals/features/reports/dto"
	"tahfidzku_backend/internals/features/reports/exporter"
	"tahfidzku_backend/internals/features/reports/render"
	"tahfidzku_backend/internals/features/reports/service"
	rosterModel "tahfidzku_backend/internals/features/roster/model"
	helper "tahfidzku_backend/internals/helpers"
)

type ReportController struct {
	DB        *gorm.DB
	Generator *service.WAGenerator
	PNG       *render.RasterRenderer
	WebP      *render.RasterRenderer
	CSV       *exporter.CSVExporter
}

func NewReportController(db *gorm.DB) *ReportController {
	webp := render.NewWebPRenderer()
	return &ReportController{
		DB:        db,
		Generator: service.NewWAGenerator(webp),
		PNG:       render.NewPNGRenderer(),
		WebP:      webp,
		CSV:       exporter.NewCSVExporter(),
	}
}

// filterFromQuery membaca kriteria laporan dari query string.
func filterFromQuery(c *fiber.Ctx) service.Filter {
	return service.Filter{
		DateStart: c.Query("date_start"),
		DateEnd:   c.Query("date_end"),
		Marhalah:  c.Query("marhalah"),
		Kelas:     c.Query("kelas"),
		Peran:     c.Query("peran"),
		Status:    c.Query("status"),
		Nama:      c.Query("q"),
	}
}

// fetchFiltered menyempitkan rentang tanggal di SQL, sisanya disaring di
// memori supaya semantik filternya satu sumber.
func (ctrl *ReportController) fetchFiltered(f service.Filter) ([]attModel.AttendanceModel, error) {
	q := ctrl.DB.Model(&attModel.AttendanceModel{})
	if f.DateStart != "" {
		q = q.Where("attendance_date >= ?", f.DateStart)
	}
	if f.DateEnd != "" {
		q = q.Where("attendance_date <= ?", f.DateEnd)
	}
	var rows []attModel.AttendanceModel
	if err := q.Order("attendance_date ASC, attendance_id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return f.Apply(rows), nil
}

func (ctrl *ReportController) classInfo(marhalah, kelas string) (service.ClassInfo, string) {
	info := service.ClassInfo{Kelas: kelas, Marhalah: marhalah}
	var wali rosterModel.WaliKelasModel
	if err := ctrl.DB.
		First(&wali, "wali_kelas_marhalah = ? AND wali_kelas_kelas = ?", marhalah, kelas).
		Error; err != nil {
		return info, ""
	}
	info.WaliNama = wali.WaliKelasNama
	return info, wali.WaliKelasNomorWA
}

/* ===================== REKAP ===================== */
// GET /reports/recap/person?date_start=&date_end=&marhalah=&kelas=&peran=&status=&q=
func (ctrl *ReportController) RecapPerson(c *fiber.Ctx) error {
	rows, err := ctrl.fetchFiltered(filterFromQuery(c))
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data absensi")
	}
	return helper.JsonOK(c, "Rekapitulasi per orang", service.RecapByPerson(rows))
}

// GET /reports/recap/kelas
func (ctrl *ReportController) RecapKelas(c *fiber.Ctx) error {
	rows, err := ctrl.fetchFiltered(filterFromQuery(c))
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data absensi")
	}
	return helper.JsonOK(c, "Rekapitulasi per kelas", service.RecapByKelas(rows))
}

// GET /reports/recap/waktu
func (ctrl *ReportController) RecapWaktu(c *fiber.Ctx) error {
	rows, err := ctrl.fetchFiltered(filterFromQuery(c))
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data absensi")
	}
	return helper.JsonOK(c, "Rekapitulasi per waktu", service.RecapByWaktu(rows))
}

// GET /reports/distribution/waktu
func (ctrl *ReportController) DistributionWaktu(c *fiber.Ctx) error {
	rows, err := ctrl.fetchFiltered(filterFromQuery(c))
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data absensi")
	}
	return helper.JsonOK(c, "Distribusi per waktu", service.GlobalWaktuDistribution(rows))
}

// GET /reports/distribution/status
func (ctrl *ReportController) DistributionStatus(c *fiber.Ctx) error {
	rows, err := ctrl.fetchFiltered(filterFromQuery(c))
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data absensi")
	}
	return helper.JsonOK(c, "Distribusi status", service.StatusDistribution(rows))
}

/* ===================== GRAFIK ===================== */
// GET /reports/chart/:kind?format=json|png|webp
// kind: santri | kelas | waktu
func (ctrl *ReportController) Chart(c *fiber.Ctx) error {
	rows, err := ctrl.fetchFiltered(filterFromQuery(c))
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data absensi")
	}

	var proj service.ChartProjection
	switch c.Params("kind") {
	case "santri":
		proj = service.ProjectPersonChart(service.RecapByPerson(rows))
	case "kelas":
		proj = service.ProjectKelasChart(service.RecapByKelas(rows))
	case "waktu":
		proj = service.ProjectWaktuChart(service.GlobalWaktuDistribution(rows))
	default:
		return helper.JsonError(c, fiber.StatusBadRequest, "Jenis grafik tidak dikenal")
	}

	switch c.Query("format", "json") {
	case "json":
		return helper.JsonOK(c, "Proyeksi grafik", proj)
	case "png":
		return ctrl.sendChart(c, ctrl.PNG, proj)
	case "webp":
		return ctrl.sendChart(c, ctrl.WebP, proj)
	default:
		return helper.JsonError(c, fiber.StatusBadRequest, "Format tidak didukung")
	}
}

func (ctrl *ReportController) sendChart(c *fiber.Ctx, r *render.RasterRenderer, proj service.ChartProjection) error {
	img, err := r.RenderChart(proj)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Gagal merender grafik: "+err.Error())
	}
	c.Set(fiber.HeaderContentType, r.ContentType())
	return c.Send(img)
}

/* ===================== EKSPOR ===================== */
// GET /reports/export/:table
// table: detail | rekap | waktu | kelas
func (ctrl *ReportController) Export(c *fiber.Ctx) error {
	rows, err := ctrl.fetchFiltered(filterFromQuery(c))
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data absensi")
	}

	var t service.Table
	switch c.Params("table") {
	case "detail":
		t = service.DetailTable(rows)
	case "rekap":
		t = service.PersonRecapTable(service.RecapByPerson(rows))
	case "waktu":
		t = service.WaktuRecapTable(service.RecapByWaktu(rows))
	case "kelas":
		t = service.KelasRecapTable(service.RecapByKelas(rows))
	default:
		return helper.JsonError(c, fiber.StatusBadRequest, "Jenis tabel tidak dikenal")
	}

	out, err := ctrl.CSV.ExportTable(t)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyusun ekspor")
	}
	c.Set(fiber.HeaderContentType, ctrl.CSV.ContentType())
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+t.FileName+"."+ctrl.CSV.Extension()+`"`)
	return c.Send(out)
}

/* ===================== CAPTION WA ===================== */

type captionResponse struct {
	Caption      string `json:"caption"`
	WaliNama     string `json:"wali_nama,omitempty"`
	WALink       string `json:"wa_link,omitempty"`
	MissingPhone bool   `json:"missing_phone"`
}

func buildCaptionResponse(caption, waliNama, phone string) captionResponse {
	resp := captionResponse{Caption: caption, WaliNama: waliNama, MissingPhone: true}
	if link, err := helper.BuildWALink(phone, caption); err == nil {
		resp.WALink = link
		resp.MissingPhone = false
	}
	return resp
}

// GET /reports/caption/daily?marhalah=&kelas=&date=
func (ctrl *ReportController) CaptionDaily(c *fiber.Ctx) error {
	marhalah, kelas := c.Query("marhalah"), c.Query("kelas")
	if marhalah == "" || kelas == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Parameter marhalah dan kelas wajib diisi")
	}
	refDate := service.ParseISODate(c.Query("date", service.ISODate(time.Now())))
	if refDate.IsZero() {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format tanggal tidak valid")
	}

	// Caption kelas hanya menghitung santri; absensi musammi tidak ikut.
	day := service.ISODate(refDate)
	rows, err := ctrl.fetchFiltered(service.Filter{
		DateStart: day, DateEnd: day, Marhalah: marhalah, Kelas: kelas,
		Peran: constants.PeranSantri,
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data absensi")
	}

	info, phone := ctrl.classInfo(marhalah, kelas)
	caption := service.BuildDailyCaption(info, refDate, rows)
	return helper.JsonOK(c, "Caption laporan harian", buildCaptionResponse(caption, info.WaliNama, phone))
}

// GET /reports/caption/weekly?marhalah=&kelas=&date=
// Rentang data Senin s.d Ahad dari tanggal acuan.
func (ctrl *ReportController) CaptionWeekly(c *fiber.Ctx) error {
	marhalah, kelas := c.Query("marhalah"), c.Query("kelas")
	if marhalah == "" || kelas == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Parameter marhalah dan kelas wajib diisi")
	}
	refDate := service.ParseISODate(c.Query("date", service.ISODate(time.Now())))
	if refDate.IsZero() {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format tanggal tidak valid")
	}

	rows, err := ctrl.fetchFiltered(service.Filter{
		DateStart: service.ISODate(service.StartOfWeek(refDate)),
		DateEnd:   service.ISODate(service.EndOfWeek(refDate)),
		Marhalah:  marhalah, Kelas: kelas,
		Peran:     constants.PeranSantri,
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data absensi")
	}

	info, phone := ctrl.classInfo(marhalah, kelas)
	caption := service.BuildWeeklyCaption(info, refDate, rows)
	return helper.JsonOK(c, "Caption laporan mingguan", buildCaptionResponse(caption, info.WaliNama, phone))
}

// GET /reports/caption/monthly?marhalah=&kelas=&month=YYYY-MM
func (ctrl *ReportController) CaptionMonthly(c *fiber.Ctx) error {
	marhalah, kelas := c.Query("marhalah"), c.Query("kelas")
	if marhalah == "" || kelas == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Parameter marhalah dan kelas wajib diisi")
	}
	monthKey := c.Query("month", service.MonthKey(time.Now()))
	base := service.ParseMonthKey(monthKey)
	if base.IsZero() {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format bulan tidak valid (YYYY-MM)")
	}

	students, records, progress, err := ctrl.fetchMonthlyInputs(marhalah, kelas, monthKey, base)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data laporan bulanan")
	}

	detail, avg := service.BuildMonthlyDetail(students, records, progress, monthKey)
	info, phone := ctrl.classInfo(marhalah, kelas)
	caption := service.BuildMonthlyCaption(info, monthKey, avg, detail)
	return helper.JsonOK(c, "Caption laporan bulanan", buildCaptionResponse(caption, info.WaliNama, phone))
}

func (ctrl *ReportController) fetchMonthlyInputs(marhalah, kelas, monthKey string, base time.Time) (
	[]rosterModel.SantriModel, []attModel.AttendanceModel, []progModel.StudentProgressModel, error,
) {
	var students []rosterModel.SantriModel
	if err := ctrl.DB.
		Where("santri_marhalah = ? AND santri_kelas = ?", marhalah, kelas).
		Find(&students).Error; err != nil {
		return nil, nil, nil, err
	}

	monthEnd := base.AddDate(0, 1, 0).AddDate(0, 0, -1)
	records, err := ctrl.fetchFiltered(service.Filter{
		DateStart: monthKey + "-01",
		DateEnd:   service.ISODate(monthEnd),
		Marhalah:  marhalah, Kelas: kelas,
	})
	if err != nil {
		return nil, nil, nil, err
	}

	var progress []progModel.StudentProgressModel
	if err := ctrl.DB.
		Where("student_progress_month_key = ?", monthKey).
		Find(&progress).Error; err != nil {
		return nil, nil, nil, err
	}
	return students, records, progress, nil
}

// GET /reports/progress/trend?marhalah=&kelas=&month=YYYY-MM
// Rata-rata capaian 3 bulan terakhir untuk grafik tren.
func (ctrl *ReportController) ProgressTrend(c *fiber.Ctx) error {
	marhalah, kelas := c.Query("marhalah"), c.Query("kelas")
	if marhalah == "" || kelas == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Parameter marhalah dan kelas wajib diisi")
	}
	monthKey := c.Query("month", service.MonthKey(time.Now()))
	base := service.ParseMonthKey(monthKey)
	if base.IsZero() {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format bulan tidak valid (YYYY-MM)")
	}

	var students []rosterModel.SantriModel
	if err := ctrl.DB.
		Where("santri_marhalah = ? AND santri_kelas = ?", marhalah, kelas).
		Find(&students).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil roster kelas")
	}
	memberIDs := make(map[int64]bool, len(students))
	for _, s := range students {
		memberIDs[s.SantriId] = true
	}

	// kunci bulan YYYY-MM aman dibandingkan leksikografis
	fromKey := service.MonthKey(base.AddDate(0, -2, 0))
	var progress []progModel.StudentProgressModel
	if err := ctrl.DB.
		Where("student_progress_month_key BETWEEN ? AND ?", fromKey, monthKey).
		Find(&progress).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil capaian")
	}

	return helper.JsonOK(c, "Tren capaian 3 bulan", service.ProgressTrend(progress, memberIDs, monthKey))
}

/* ===================== GENERATE WA ===================== */
// POST /reports/wa/generate
func (ctrl *ReportController) GenerateWA(c *fiber.Ctx) error {
	var body dto.WAGenerateRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	body.Normalize()
	if err := helper.Validate.Struct(body); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	f := service.Filter{
		DateStart: body.Filter.DateStart,
		DateEnd:   body.Filter.DateEnd,
		Marhalah:  body.Filter.Marhalah,
		Kelas:     body.Filter.Kelas,
		Peran:     body.Filter.Peran,
		Status:    body.Filter.Status,
		Nama:      body.Filter.Nama,
	}
	rows, err := ctrl.fetchFiltered(f)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data absensi")
	}

	req := ctrl.Generator.NewRequest(body.ClassKeys, f)
	items, err := ctrl.Generator.Generate(req, rows, ctrl.waliLookup)
	if err == service.ErrStaleGeneration {
		return helper.JsonError(c, fiber.StatusConflict, "Permintaan laporan sudah digantikan yang lebih baru")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyusun laporan WA")
	}
	return helper.JsonOK(c, "Laporan WA siap", fiber.Map{
		"generation_token": req.GenerationToken,
		"items":            items,
	})
}

func (ctrl *ReportController) waliLookup(marhalah, kelas string) (string, string, bool) {
	var wali rosterModel.WaliKelasModel
	if err := ctrl.DB.
		First(&wali, "wali_kelas_marhalah = ? AND wali_kelas_kelas = ?", marhalah, kelas).
		Error; err != nil {
		return "", "", false
	}
	return wali.WaliKelasNama, wali.WaliKelasNomorWA, true
}
