package screen

import (
	"time"

	"github.com/candra1525/DEKAT-APPS-CENTRAL/internal/domain"
)

// NotificationDuration is how long a transient notification stays visible.
const NotificationDuration = 2 * time.Second

// User-facing notification messages.
const (
	MsgRefreshing   = "Memuat data terbaru..."
	MsgLoadFailed   = "Error loading data"
	MsgDeleteFailed = "Gagal menghapus data"
)

// Notification is a short-lived message shown on top of the screen.
type Notification struct {
	Message string    `json:"message"`
	ShownAt time.Time `json:"shown_at"`
}

// State is everything the screen renders. Values handed out by the screen are
// copies; mutating them has no effect on the screen.
type State struct {
	IsLoading    bool              `json:"is_loading"`
	Items        []domain.DataItem `json:"items"`
	SelectedItem *domain.DataItem  `json:"selected_item,omitempty"`
	IsDeleting   bool              `json:"is_deleting"`
	ShowDialog   bool              `json:"show_dialog"`
	Notification *Notification     `json:"notification,omitempty"`
}

func (s State) clone() State {
	out := s
	if s.Items != nil {
		out.Items = append([]domain.DataItem(nil), s.Items...)
	}
	if s.SelectedItem != nil {
		item := *s.SelectedItem
		out.SelectedItem = &item
	}
	if s.Notification != nil {
		n := *s.Notification
		out.Notification = &n
	}
	return out
}
