package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMarhalahRank(t *testing.T) {
	assert.Equal(t, 0, MarhalahRank(MarhalahMutawassithah))
	assert.Equal(t, 1, MarhalahRank(MarhalahAliyah))
	assert.Equal(t, 2, MarhalahRank(MarhalahJamiah))
	assert.Equal(t, 3, MarhalahRank("Tidak Dikenal"), "marhalah asing paling belakang")
}

func TestKelasRank(t *testing.T) {
	assert.Equal(t, 0, KelasRank(MarhalahMutawassithah, "1A"))
	assert.Equal(t, 2, KelasRank(MarhalahMutawassithah, "1D"))
	assert.Equal(t, 2, KelasRank(MarhalahAliyah, "1C"))
	assert.Equal(t, 1, KelasRank(MarhalahJamiah, "KHS"))
	assert.Equal(t, -1, KelasRank(MarhalahAliyah, "1D"), "kelas di luar daftar marhalahnya")
	assert.Equal(t, -1, KelasRank("Asing", "1A"))
}

func TestWaktuRankAndInitial(t *testing.T) {
	assert.Equal(t, 0, WaktuRank(WaktuShubuh))
	assert.Equal(t, 3, WaktuRank(WaktuIsya))
	assert.Equal(t, 4, WaktuRank("Maghrib"))

	assert.Equal(t, "S", WaktuInitial(WaktuShubuh))
	assert.Equal(t, "D", WaktuInitial(WaktuDhuha))
	assert.Equal(t, "A", WaktuInitial(WaktuAshar))
	assert.Equal(t, "I", WaktuInitial(WaktuIsya))
	assert.Equal(t, "M", WaktuInitial("Maghrib"))
	assert.Equal(t, "", WaktuInitial(""))
}

func TestValidators(t *testing.T) {
	assert.True(t, ValidMarhalah(MarhalahJamiah))
	assert.False(t, ValidMarhalah("all"))

	assert.True(t, ValidWaktu(WaktuDhuha))
	assert.False(t, ValidWaktu("all"))

	assert.True(t, ValidStatus(StatusTerlambat))
	assert.False(t, ValidStatus("Bolos"))

	assert.True(t, ValidPeran(PeranMusammi))
	assert.False(t, ValidPeran("Admin"))
}
