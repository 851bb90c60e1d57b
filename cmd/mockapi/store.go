package main

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"

	"github.com/candra1525/DEKAT-APPS-CENTRAL/internal/domain"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
)

// createdAtLayout matches the timestamps the real API emits.
const createdAtLayout = "2006-01-02T15:04:05.000000Z"

type seedRecord struct {
	kecamatan, kondisi, dampak string
}

var seedRecords = []seedRecord{
	{"medan baru", "hujan lebat disertai angin kencang", "genangan air di beberapa ruas jalan"},
	{"medan johor", "berawan", "tidak ada dampak"},
	{"medan tuntungan", "hujan sedang", "pohon tumbang di jalan utama"},
	{"medan belawan", "gelombang tinggi", "aktivitas nelayan terhenti"},
	{"medan amplas", "cerah", "tidak ada dampak"},
}

// store keeps records in insertion order.
type store struct {
	mu      sync.Mutex
	clock   clockwork.Clock
	records []domain.DataItem
}

func newStore(clock clockwork.Clock) *store {
	return &store{clock: clock}
}

func (s *store) seed(recs []seedRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range recs {
		s.records = append(s.records, domain.DataItem{
			ID:        uuid.NewString(),
			Kecamatan: domain.Ptr(r.kecamatan),
			Kondisi:   domain.Ptr(r.kondisi),
			Dampak:    domain.Ptr(r.dampak),
			CreatedAt: domain.Ptr(s.clock.Now().UTC().Format(createdAtLayout)),
		})
	}
}

func (s *store) list() domain.CuacaResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.CuacaResponse{Data: append([]domain.DataItem{}, s.records...)}
}

// remove deletes id and returns the remaining records.
func (s *store) remove(id string) (domain.CuacaResponse, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, r := range s.records {
		if r.ID == id {
			s.records = append(s.records[:i], s.records[i+1:]...)
			return domain.CuacaResponse{Data: append([]domain.DataItem{}, s.records...)}, true
		}
	}
	return domain.CuacaResponse{}, false
}

func (s *store) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

func newHandler(s *store, logger *slog.Logger) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/api/cuaca", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, s.list())
	})
	mux.HandleFunc("DELETE /api/api/cuaca/{id}", func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		resp, ok := s.remove(id)
		if !ok {
			logger.Info("delete of unknown record", "id", id, "request_id", r.Header.Get("X-Request-ID"))
			http.Error(w, "data cuaca tidak ditemukan", http.StatusNotFound)
			return
		}
		logger.Info("record deleted", "id", id, "remaining", len(resp.Data), "request_id", r.Header.Get("X-Request-ID"))
		writeJSON(w, http.StatusOK, resp)
	})

	return mux
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck // best-effort response
}
