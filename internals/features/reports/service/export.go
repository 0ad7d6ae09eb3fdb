package service

import (
	"strconv"

	attModel "tahfidzku_backend/internals/features/attendance/model"
)

// Table: tabel ekspor generik. FileName tanpa ekstensi, encoder yang
// menentukan ekstensinya.
type Table struct {
	Title    string
	FileName string
	Columns  []string
	Rows     [][]string
}

// TableExporter adalah batas kemampuan encoder tabel (CSV, nantinya xlsx).
type TableExporter interface {
	ContentType() string
	Extension() string
	ExportTable(t Table) ([]byte, error)
}

// DocumentExporter meng-encode dokumen buku absensi.
type DocumentExporter interface {
	ContentType() string
	Extension() string
	ExportBook(doc BookDocument) ([]byte, error)
}

// DetailTable: ekspor baris mentah hasil filter.
func DetailTable(records []attModel.AttendanceModel) Table {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			r.AttendanceDate, r.AttendanceWaktu, r.AttendanceNama,
			r.AttendanceMarhalah, r.AttendanceKelas, r.AttendancePeran, r.AttendanceStatus,
		})
	}
	return Table{
		Title:    "Laporan Detail Absensi",
		FileName: "Laporan_Detail_Absensi",
		Columns:  []string{"Tanggal", "Waktu", "Nama", "Marhalah", "Kelas", "Peran", "Status"},
		Rows:     rows,
	}
}

// PersonRecapTable: ekspor rekap per orang.
func PersonRecapTable(recaps []PersonRecap) Table {
	rows := make([][]string, 0, len(recaps))
	for _, r := range recaps {
		rows = append(rows, []string{
			r.Peran, r.Marhalah, r.Kelas, r.Nama,
			strconv.Itoa(r.Hadir), strconv.Itoa(r.Izin), strconv.Itoa(r.Sakit),
			strconv.Itoa(r.Terlambat), strconv.Itoa(r.Alpa), strconv.Itoa(r.Total),
		})
	}
	return Table{
		Title:    "Laporan Rekapitulasi Absensi",
		FileName: "Laporan_Rekapitulasi_Absensi",
		Columns:  []string{"Peran", "Marhalah", "Kelas", "Nama", "Hadir", "Izin", "Sakit", "Terlambat", "Alpa", "Total"},
		Rows:     rows,
	}
}

// WaktuRecapTable: ekspor rekap per (tanggal, waktu).
func WaktuRecapTable(recaps []WaktuRecap) Table {
	rows := make([][]string, 0, len(recaps))
	for _, r := range recaps {
		rows = append(rows, []string{
			r.Date, r.Waktu,
			strconv.Itoa(r.Hadir), strconv.Itoa(r.Izin), strconv.Itoa(r.Sakit),
			strconv.Itoa(r.Alpa), strconv.Itoa(r.Terlambat), strconv.Itoa(r.Total),
		})
	}
	return Table{
		Title:    "Laporan Rekapitulasi Per Waktu",
		FileName: "Laporan_Rekap_Per_Waktu",
		Columns:  []string{"Tanggal", "Waktu", "Hadir", "Izin", "Sakit", "Alpa", "Terlambat", "Total"},
		Rows:     rows,
	}
}

// KelasRecapTable: ekspor rekap per kelas, termasuk persentase.
func KelasRecapTable(recaps []KelasRecap) Table {
	rows := make([][]string, 0, len(recaps))
	for _, r := range recaps {
		rows = append(rows, []string{
			r.Marhalah, r.Kelas,
			strconv.Itoa(r.Hadir), strconv.Itoa(r.Izin), strconv.Itoa(r.Sakit),
			strconv.Itoa(r.Alpa), strconv.Itoa(r.Terlambat), strconv.Itoa(r.Total),
			r.PersenKehadiran,
		})
	}
	return Table{
		Title:    "Laporan Rekapitulasi Per Kelas",
		FileName: "Laporan_Rekap_Per_Kelas",
		Columns:  []string{"Marhalah", "Kelas", "Hadir", "Izin", "Sakit", "Alpa", "Terlambat", "Total", "% Hadir"},
		Rows:     rows,
	}
}
