package exporter

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"tahfidzku_backend/internals/features/reports/service"
)

// Ekspor CSV. Dipilih karena bisa dibuka Excel/Sheets tanpa dependensi
// format biner; BOM UTF-8 disisipkan supaya Excel membaca huruf Arab/latin
// beraksen dengan benar.

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

type CSVExporter struct{}

func NewCSVExporter() *CSVExporter { return &CSVExporter{} }

func (e *CSVExporter) ContentType() string { return "text/csv; charset=utf-8" }
func (e *CSVExporter) Extension() string   { return "csv" }

func (e *CSVExporter) ExportTable(t service.Table) ([]byte, error) {
	buf := new(bytes.Buffer)
	buf.Write(utf8BOM)
	w := csv.NewWriter(buf)
	if err := w.Write(t.Columns); err != nil {
		return nil, fmt.Errorf("tulis header: %w", err)
	}
	if err := w.WriteAll(t.Rows); err != nil {
		return nil, fmt.Errorf("tulis baris: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ExportBook menulis buku absensi sebagai CSV bersambung: baris judul,
// lalu per halaqah satu blok grid anggota x (hari x sesi) per minggu.
func (e *CSVExporter) ExportBook(doc service.BookDocument) ([]byte, error) {
	buf := new(bytes.Buffer)
	buf.Write(utf8BOM)
	w := csv.NewWriter(buf)

	header := [][]string{
		{doc.Title},
		{doc.Subtitle},
		{"Jenis", doc.JenisLabel},
		{"Marhalah", doc.MarhalahLabel},
		{"Periode", doc.PeriodLabel + " " + doc.WeeksLabel},
		{},
	}
	if err := w.WriteAll(header); err != nil {
		return nil, err
	}

	for _, h := range doc.Halaqah {
		meta := [][]string{
			{"Halaqah", h.Nama},
			{"Musammi", h.MusammiNama},
			{"Marhalah", h.Marhalah},
		}
		if err := w.WriteAll(meta); err != nil {
			return nil, err
		}

		for _, wk := range doc.Weeks {
			cols := []string{wk.Label, wk.Period}
			if err := w.Write(cols); err != nil {
				return nil, err
			}

			// header grid: No, Nama, Kelas, lalu per hari satu kolom per sesi
			grid := []string{"No", "Nama", "Kelas"}
			for _, day := range wk.Days {
				for _, ini := range h.SesiInitials {
					grid = append(grid, day.Label+" "+ini)
				}
			}
			if err := w.Write(grid); err != nil {
				return nil, err
			}

			for i, m := range h.Members {
				row := []string{fmt.Sprintf("%d", i+1), m.Nama, m.Kelas}
				for range wk.Days {
					for range h.SesiInitials {
						row = append(row, "")
					}
				}
				if err := w.Write(row); err != nil {
					return nil, err
				}
			}
			if err := w.Write(nil); err != nil {
				return nil, err
			}
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
