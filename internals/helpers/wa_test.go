package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"awalan 0 jadi 62", "081234567890", "6281234567890"},
		{"sudah 62 dibiarkan", "6281234567890", "6281234567890"},
		{"plus dan spasi dibuang", "+62 812-3456-7890", "6281234567890"},
		{"huruf dibuang", "wa: 0812abc345", "62812345"},
		{"kosong tetap kosong", "", ""},
		{"tanpa digit", "tidak ada", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizePhone(tt.in))
		})
	}
}

func TestBuildWALink(t *testing.T) {
	link, err := BuildWALink("081234567890", "Laporan kelas 1A & 1B")

	assert.NoError(t, err)
	assert.Equal(t, "https://wa.me/6281234567890?text=Laporan+kelas+1A+%26+1B", link)
}

func TestBuildWALinkMissingPhone(t *testing.T) {
	_, err := BuildWALink("  ", "caption")
	assert.ErrorIs(t, err, ErrMissingPhone)
}
