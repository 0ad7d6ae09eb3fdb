package service

import (
	"errors"
	"log"
	"sync"

	"github.com/google/uuid"

	attModel "tahfidzku_backend/internals/features/attendance/model"
	helper "tahfidzku_backend/internals/helpers"
)

// Pipeline laporan WA: per kelas terpilih, render grafik lalu susun caption
// lalu cari nomor wali. Jalan berurutan; gagal render satu kelas tidak
// menggagalkan kelas lain, hasilnya saja yang tidak ikut.

// ChartRenderer menggambar proyeksi grafik jadi bytes PNG/WebP.
type ChartRenderer interface {
	RenderChart(proj ChartProjection) ([]byte, error)
}

// WaliLookup mencari wali kelas; ok=false kalau kelas belum punya wali.
type WaliLookup func(marhalah, kelas string) (nama, phone string, ok bool)

// ErrStaleGeneration: permintaan sudah digantikan permintaan yang lebih baru.
var ErrStaleGeneration = errors.New("generasi laporan sudah kedaluwarsa")

type WAReportRequest struct {
	GenerationToken uuid.UUID `json:"generation_token"`
	ClassKeys       []string  `json:"class_keys"` // "Marhalah-Kelas"
	Filter          Filter    `json:"filter"`
}

type WAReportItem struct {
	ClassKey     string `json:"class_key"`
	Marhalah     string `json:"marhalah"`
	Kelas        string `json:"kelas"`
	Caption      string `json:"caption"`
	Image        []byte `json:"image,omitempty"`
	WaliNama     string `json:"wali_nama,omitempty"`
	WALink       string `json:"wa_link,omitempty"`
	MissingPhone bool   `json:"missing_phone"`
}

type WAGenerator struct {
	mu       sync.Mutex
	current  uuid.UUID
	renderer ChartRenderer
}

func NewWAGenerator(renderer ChartRenderer) *WAGenerator {
	return &WAGenerator{renderer: renderer}
}

// NewRequest menerbitkan token baru; permintaan lama yang masih jalan akan
// dibuang hasilnya saat selesai.
func (g *WAGenerator) NewRequest(classKeys []string, f Filter) WAReportRequest {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.current = uuid.New()
	return WAReportRequest{
		GenerationToken: g.current,
		ClassKeys:       classKeys,
		Filter:          f,
	}
}

func (g *WAGenerator) isCurrent(token uuid.UUID) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.current == token
}

// Generate menjalankan pipeline untuk satu permintaan. records adalah
// snapshot absensi; penyaringan pakai req.Filter.
func (g *WAGenerator) Generate(req WAReportRequest, records []attModel.AttendanceModel, lookup WaliLookup) ([]WAReportItem, error) {
	if !g.isCurrent(req.GenerationToken) {
		return nil, ErrStaleGeneration
	}

	filtered := req.Filter.Apply(records)
	classRecaps := RecapByKelas(filtered)
	personRecaps := RecapByPerson(filtered)

	byKey := make(map[string]KelasRecap, len(classRecaps))
	for _, c := range classRecaps {
		byKey[c.Key] = c
	}

	items := make([]WAReportItem, 0, len(req.ClassKeys))
	for _, key := range req.ClassKeys {
		cls, ok := byKey[key]
		if !ok {
			continue
		}

		// grafik per kelas: batang per santri kelas itu
		classPersons := make([]PersonRecap, 0)
		for _, p := range personRecaps {
			if p.Marhalah == cls.Marhalah && p.Kelas == cls.Kelas {
				classPersons = append(classPersons, p)
			}
		}
		proj := ProjectPersonChart(classPersons)
		proj.Title = "Grafik Kehadiran " + cls.Kelas + " (" + cls.Marhalah + ")"

		image, err := g.renderer.RenderChart(proj)
		if err != nil {
			log.Printf("❌ Gagal render grafik kelas %s: %v", key, err)
			continue
		}

		item := WAReportItem{
			ClassKey: key,
			Marhalah: cls.Marhalah,
			Kelas:    cls.Kelas,
			Caption:  BuildClassRecapCaption(cls, personRecaps, req.Filter.DateStart, req.Filter.DateEnd),
			Image:    image,
		}
		if nama, phone, ok := lookup(cls.Marhalah, cls.Kelas); ok {
			item.WaliNama = nama
			if link, err := helper.BuildWALink(phone, item.Caption); err == nil {
				item.WALink = link
			} else {
				item.MissingPhone = true
			}
		} else {
			item.MissingPhone = true
		}
		items = append(items, item)
	}

	// permintaan lain bisa saja masuk selama proses; hasil basi dibuang
	if !g.isCurrent(req.GenerationToken) {
		return nil, ErrStaleGeneration
	}
	return items, nil
}
