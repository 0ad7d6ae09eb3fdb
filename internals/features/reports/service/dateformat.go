package service

import (
	"fmt"
	"strings"
	"time"
)

// Label tanggal bahasa Indonesia untuk caption laporan.
// Hari dimulai dari Ahad supaya indeksnya sama dengan time.Weekday.

var indoMonths = []string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

var indoDays = []string{"Ahad", "Senin", "Selasa", "Rabu", "Kamis", "Jumat", "Sabtu"}

// FormatIndo mendukung pola yang dipakai laporan:
// "eeee, d MMMM yyyy", "d MMM", "d MMM yyyy", "MMMM yyyy", "MMMM", "MMM".
func FormatIndo(t time.Time, pattern string) string {
	month := indoMonths[int(t.Month())-1]
	switch pattern {
	case "eeee, d MMMM yyyy":
		return fmt.Sprintf("%s, %d %s %d", indoDays[int(t.Weekday())], t.Day(), month, t.Year())
	case "d MMM":
		return fmt.Sprintf("%d %s", t.Day(), month[:3])
	case "d MMM yyyy":
		return fmt.Sprintf("%d %s %d", t.Day(), month[:3], t.Year())
	case "d MMMM yyyy":
		return fmt.Sprintf("%d %s %d", t.Day(), month, t.Year())
	case "MMMM yyyy":
		return fmt.Sprintf("%s %d", month, t.Year())
	case "MMMM":
		return month
	case "MMM":
		return month[:3]
	}
	return t.Format("2006-01-02")
}

// FormatDayIndo: label kolom buku absensi, misal "Senin, 5/1".
func FormatDayIndo(t time.Time) string {
	return fmt.Sprintf("%s, %d/%d", indoDays[int(t.Weekday())], t.Day(), int(t.Month()))
}

// StartOfWeek: Senin minggu berjalan; Ahad dihitung milik minggu sebelumnya.
func StartOfWeek(t time.Time) time.Time {
	day := int(t.Weekday())
	diff := -day + 1
	if day == 0 {
		diff = -6
	}
	d := t.AddDate(0, 0, diff)
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, t.Location())
}

func EndOfWeek(t time.Time) time.Time {
	return StartOfWeek(t).AddDate(0, 0, 6)
}

// ParseISODate membaca tanggal YYYY-MM-DD; gagal parse mengembalikan zero time.
func ParseISODate(s string) time.Time {
	t, err := time.Parse("2006-01-02", strings.TrimSpace(s))
	if err != nil {
		return time.Time{}
	}
	return t
}

// ParseMonthKey membaca kunci bulan YYYY-MM ke hari pertama bulan itu.
func ParseMonthKey(s string) time.Time {
	t, err := time.Parse("2006-01", strings.TrimSpace(s))
	if err != nil {
		return time.Time{}
	}
	return t
}

func ISODate(t time.Time) string { return t.Format("2006-01-02") }

func MonthKey(t time.Time) string { return t.Format("2006-01") }
