// Package domain models DEKAT weather/impact reports ("cuaca") for Indonesian
// districts ("kecamatan").
//
// # Wire Format
//
// The remote API returns an envelope with an ordered data array:
//
//	{"data": [{"id": "12", "kecamatan": "ilir barat", "kondisi": "hujan",
//	           "dampak": "banjir", "createdAt": "2024-03-05T10:15:00.000000Z"}]}
//
// Only "id" is required. The remaining fields may be absent and are modelled
// as *string so rendering can skip them. Server order is preserved as-is.
//
// # Timestamps
//
// createdAt is UTC with microsecond precision and a literal trailing "Z".
// For display it is converted to WIB (Asia/Jakarta, UTC+7) and rendered with
// Indonesian month names, e.g. "05 Maret 2024, 17:15". Anything that does not
// parse renders as "Invalid Date". See [FormatWIB].
//
// # Operation Lifecycle
//
// Every remote call is reported as a [Result]: Loading while in flight, then
// exactly one Success or Error.
package domain
