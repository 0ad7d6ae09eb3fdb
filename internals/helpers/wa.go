// file: internals/helpers/wa.go
package helper

import (
	"errors"
	"net/url"
	"strings"
)

// ErrMissingPhone dikembalikan saat nomor WA kosong setelah normalisasi,
// supaya caller bisa membedakan "tidak punya nomor" dari error lain.
var ErrMissingPhone = errors.New("nomor whatsapp tidak tersedia")

// NormalizePhone membersihkan nomor ke format internasional tanpa plus:
// semua non-digit dibuang, prefix 0 diganti 62.
func NormalizePhone(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if strings.HasPrefix(digits, "0") {
		digits = "62" + digits[1:]
	}
	return digits
}

// BuildWALink membentuk URL wa.me siap kirim dengan caption ter-encode.
func BuildWALink(phone, caption string) (string, error) {
	normalized := NormalizePhone(phone)
	if normalized == "" {
		return "", ErrMissingPhone
	}
	return "https://wa.me/" + normalized + "?text=" + url.QueryEscape(caption), nil
}
