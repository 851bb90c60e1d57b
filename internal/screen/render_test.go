package screen

import (
	"bytes"
	"strings"
	"testing"

	"github.com/candra1525/DEKAT-APPS-CENTRAL/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestView_Header(t *testing.T) {
	out := View(State{})

	assert.True(t, strings.HasPrefix(out, "DEKAT\n(Dampak dan Kondisi Terkini)\n"))
	assert.Contains(t, out, emptyList)
}

func TestView_LoadingHidesListAndDialog(t *testing.T) {
	it := item("1", "medan")
	out := View(State{
		IsLoading:    true,
		Items:        []domain.DataItem{it},
		SelectedItem: &it,
		ShowDialog:   true,
	})

	assert.Contains(t, out, busyIndicator)
	assert.NotContains(t, out, "Medan")
	assert.NotContains(t, out, dialogTitle)
}

func TestView_Card(t *testing.T) {
	out := View(State{Items: []domain.DataItem{{
		ID:        "1",
		Kecamatan: domain.Ptr("medan baru"),
		Kondisi:   domain.Ptr("hujan lebat"),
		Dampak:    domain.Ptr("genangan air"),
		CreatedAt: domain.Ptr("2024-06-10T03:05:00.000000Z"),
	}}})

	assert.Contains(t, out, "[1] Medan baru")
	assert.Contains(t, out, "Hujan lebat")
	assert.Contains(t, out, "Genangan air")
	assert.Contains(t, out, "10 Juni 2024, 10:05")
	assert.NotContains(t, out, busyIndicator)
}

func TestView_CardSkipsAbsentFields(t *testing.T) {
	out := View(State{Items: []domain.DataItem{
		{ID: "1"},
		{ID: "2", Dampak: domain.Ptr("longsor")},
	}})

	assert.Contains(t, out, "[1]")
	assert.Contains(t, out, "[2]")
	assert.Contains(t, out, "Longsor")
	assert.NotContains(t, out, domain.InvalidDate)
}

func TestView_Dialog(t *testing.T) {
	it := item("1", "medan")

	out := View(State{Items: []domain.DataItem{it}, SelectedItem: &it, ShowDialog: true})
	assert.Contains(t, out, dialogTitle)
	assert.Contains(t, out, "Apakah Anda ingin menghapus item medan?")
	assert.Contains(t, out, dialogActions)

	out = View(State{Items: []domain.DataItem{it}, SelectedItem: &it, ShowDialog: true, IsDeleting: true})
	assert.Contains(t, out, dialogDeleting)
	assert.NotContains(t, out, dialogActions)
}

func TestView_Notification(t *testing.T) {
	out := View(State{Notification: &Notification{Message: MsgLoadFailed}})

	assert.Contains(t, out, MsgLoadFailed)
}

func TestTextRenderer(t *testing.T) {
	var buf bytes.Buffer

	NewTextRenderer(&buf, false).Render(State{})
	assert.Equal(t, View(State{}), buf.String())

	buf.Reset()
	NewTextRenderer(&buf, true).Render(State{})
	assert.True(t, strings.HasPrefix(buf.String(), "\033[H\033[2J"))
}
