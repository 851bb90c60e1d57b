package domain

import (
	"fmt"
	"time"
	"unicode"
	"unicode/utf8"
)

// InvalidDate is rendered for timestamps that cannot be parsed.
const InvalidDate = "Invalid Date"

// serverTimeLayout matches "2024-03-05T10:15:00.000000Z". The fractional
// seconds are accepted by time.Parse without appearing in the layout, and the
// trailing Z is a literal, so the value is interpreted as UTC.
const serverTimeLayout = "2006-01-02T15:04:05Z"

var indonesianMonths = [...]string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

var wib = loadWIB()

// loadWIB falls back to a fixed UTC+7 zone when the tz database is missing.
// Jakarta has not observed DST since 1964, so the two are equivalent here.
func loadWIB() *time.Location {
	loc, err := time.LoadLocation("Asia/Jakarta")
	if err != nil {
		return time.FixedZone("WIB", 7*60*60)
	}
	return loc
}

// FormatWIB converts a server timestamp to WIB and renders it as
// "dd <bulan> yyyy, HH:mm", e.g. "05 Maret 2024, 17:15".
func FormatWIB(createdAt string) string {
	t, err := time.Parse(serverTimeLayout, createdAt)
	if err != nil {
		return InvalidDate
	}
	t = t.In(wib)
	return fmt.Sprintf("%02d %s %04d, %02d:%02d",
		t.Day(), indonesianMonths[t.Month()-1], t.Year(), t.Hour(), t.Minute())
}

// CapitalizeFirst title-cases the first rune when it is lower case and leaves
// everything else untouched.
func CapitalizeFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || !unicode.IsLower(r) {
		return s
	}
	return string(unicode.ToTitle(r)) + s[size:]
}
