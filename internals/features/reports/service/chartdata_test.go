package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProjectPersonChartPreservesRecapOrder(t *testing.T) {
	recaps := []PersonRecap{
		{Nama: "Bakr", StatusCounts: StatusCounts{Hadir: 3, Alpa: 1, Total: 4}},
		{Nama: "Ali", StatusCounts: StatusCounts{Hadir: 4, Total: 4}},
	}

	proj := ProjectPersonChart(recaps)

	assert.Equal(t, []string{"Bakr", "Ali"}, proj.Categories)
	assert.Len(t, proj.Series, 5)
	// urutan seri: Hadir, Sakit, Izin, Alpa, Terlambat
	assert.Equal(t, "Hadir", proj.Series[0].Name)
	assert.Equal(t, "#22C55E", proj.Series[0].Color)
	assert.Equal(t, []int{3, 4}, proj.Series[0].Values)
	assert.Equal(t, "Alpa", proj.Series[3].Name)
	assert.Equal(t, []int{1, 0}, proj.Series[3].Values)
}

func TestChartMinWidthFloor(t *testing.T) {
	proj := ProjectPersonChart([]PersonRecap{{Nama: "A"}})
	assert.Equal(t, 600, proj.MinWidthPx)
}

func TestChartMinWidthGrowsPerCategory(t *testing.T) {
	recaps := make([]PersonRecap, 20)
	proj := ProjectPersonChart(recaps)
	assert.Equal(t, 800, proj.MinWidthPx, "20 kategori x 40px")

	kelas := make([]KelasRecap, 20)
	projK := ProjectKelasChart(kelas)
	assert.Equal(t, 1000, projK.MinWidthPx, "20 kategori x 50px")
}

func TestProjectKelasChartLabels(t *testing.T) {
	recaps := []KelasRecap{
		{Marhalah: "Aliyah", Kelas: "2B", StatusCounts: StatusCounts{Sakit: 2, Total: 2}},
	}

	proj := ProjectKelasChart(recaps)

	assert.Equal(t, []string{"2B (Aliyah)"}, proj.Categories)
	assert.Equal(t, []int{2}, proj.Series[1].Values, "seri kedua Sakit")
}

func TestProjectWaktuChart(t *testing.T) {
	rows := GlobalWaktuDistribution(nil)
	proj := ProjectWaktuChart(rows)

	assert.Equal(t, []string{"Shubuh", "Dhuha", "Ashar", "Isya"}, proj.Categories)
	for _, s := range proj.Series {
		assert.Equal(t, []int{0, 0, 0, 0}, s.Values)
	}
}
