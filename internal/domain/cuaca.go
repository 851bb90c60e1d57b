package domain

// DataItem is a single weather/impact report.
type DataItem struct {
	ID        string  `json:"id"`
	Kecamatan *string `json:"kecamatan,omitempty"`
	Kondisi   *string `json:"kondisi,omitempty"`
	Dampak    *string `json:"dampak,omitempty"`
	CreatedAt *string `json:"createdAt,omitempty"`
}

// CuacaResponse is the envelope returned by both list and delete endpoints.
type CuacaResponse struct {
	Data []DataItem `json:"data"`
}

// StringValue dereferences an optional field, returning "" when absent.
func StringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// Ptr returns a pointer to s, for building optional fields.
func Ptr(s string) *string {
	return &s
}
