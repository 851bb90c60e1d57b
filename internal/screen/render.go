package screen

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/candra1525/DEKAT-APPS-CENTRAL/internal/domain"
)

const (
	appName     = "DEKAT"
	appFullName = "Dampak dan Kondisi Terkini"

	busyIndicator = "⟳ Memuat..."
	emptyList     = "Belum ada data cuaca."

	dialogTitle    = "Konfirmasi Hapus"
	dialogDeleting = "Menghapus item..."
	dialogActions  = "[y] Hapus   [n] Batal"

	// leftColumnWidth is the width of the kecamatan/time column of a card.
	leftColumnWidth = 32
)

// View renders state as plain text. While loading only the busy indicator is
// shown; the list and the dialog come back once loading completes.
func View(state State) string {
	var b strings.Builder

	b.WriteString(appName + "\n")
	b.WriteString("(" + appFullName + ")\n\n")

	if state.Notification != nil {
		fmt.Fprintf(&b, "» %s\n\n", state.Notification.Message)
	}

	if state.IsLoading {
		b.WriteString(busyIndicator + "\n")
		return b.String()
	}

	if len(state.Items) == 0 {
		b.WriteString(emptyList + "\n")
	}
	for i, item := range state.Items {
		writeCard(&b, i+1, item)
	}

	if state.ShowDialog {
		writeDialog(&b, state)
	}
	return b.String()
}

// writeCard renders kecamatan and time on the left, kondisi and dampak on the
// right. Absent fields are skipped.
func writeCard(b *strings.Builder, n int, item domain.DataItem) {
	var left, right []string
	if item.Kecamatan != nil {
		left = append(left, domain.CapitalizeFirst(*item.Kecamatan))
	}
	if item.CreatedAt != nil {
		left = append(left, domain.FormatWIB(*item.CreatedAt))
	}
	if item.Kondisi != nil {
		right = append(right, domain.CapitalizeFirst(*item.Kondisi))
	}
	if item.Dampak != nil {
		right = append(right, domain.CapitalizeFirst(*item.Dampak))
	}

	rows := max(len(left), len(right), 1)
	prefix := fmt.Sprintf("[%d] ", n)
	indent := strings.Repeat(" ", len(prefix))
	for i := 0; i < rows; i++ {
		lead := indent
		if i == 0 {
			lead = prefix
		}
		l, r := at(left, i), at(right, i)
		line := lead + padRight(l, leftColumnWidth) + r
		b.WriteString(strings.TrimRight(line, " ") + "\n")
	}
	b.WriteString("\n")
}

func writeDialog(b *strings.Builder, state State) {
	b.WriteString("┌ " + dialogTitle + "\n")
	if state.IsDeleting {
		b.WriteString("│ " + dialogDeleting + "\n")
		b.WriteString("└\n")
		return
	}
	kecamatan := ""
	if state.SelectedItem != nil {
		kecamatan = domain.StringValue(state.SelectedItem.Kecamatan)
	}
	fmt.Fprintf(b, "│ Apakah Anda ingin menghapus item %s?\n", kecamatan)
	b.WriteString("└ " + dialogActions + "\n")
}

func at(lines []string, i int) string {
	if i < len(lines) {
		return lines[i]
	}
	return ""
}

func padRight(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s + " "
	}
	return s + strings.Repeat(" ", width-n)
}

// TextRenderer writes each state as a full text frame.
type TextRenderer struct {
	mu    sync.Mutex
	w     io.Writer
	clear bool
}

// NewTextRenderer creates a renderer writing to w. With clear set, each frame
// first clears the terminal.
func NewTextRenderer(w io.Writer, clear bool) *TextRenderer {
	return &TextRenderer{w: w, clear: clear}
}

func (r *TextRenderer) Render(state State) {
	r.mu.Lock()
	defer r.mu.Unlock()

	frame := View(state)
	if r.clear {
		frame = "\033[H\033[2J" + frame
	}
	io.WriteString(r.w, frame) //nolint:errcheck // best-effort terminal output
}
