package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-phonebook/internal/logger"
	"github.com/MKhiriev/go-phonebook/internal/search"
	"github.com/MKhiriev/go-phonebook/internal/store"
)

// clientHistoryService keeps the search history as a JSON array under
// [search.HistoryKey].
type clientHistoryService struct {
	kv store.KeyValueRepository

	logger *logger.Logger
}

func NewClientHistoryService(kv store.KeyValueRepository, logger *logger.Logger) ClientHistoryService {
	return &clientHistoryService{kv: kv, logger: logger}
}

// Load returns the stored history, sanitized. A missing key is an empty
// history; an unreadable value is reported as a persistence error.
func (s *clientHistoryService) Load(ctx context.Context) ([]string, error) {
	raw, ok, err := s.kv.Get(ctx, search.HistoryKey)
	if err != nil {
		return nil, err
	}
	if !ok || raw == "" {
		return search.Clear(), nil
	}

	var stored []string
	if err = json.Unmarshal([]byte(raw), &stored); err != nil {
		s.logger.Warn().Err(err).Str("func", "clientHistoryService.Load").Msg("stored history is corrupted")
		return nil, fmt.Errorf("%w: decode history: %w", store.ErrPersistence, err)
	}

	return search.Sanitize(stored), nil
}

func (s *clientHistoryService) Save(ctx context.Context, history []string) error {
	if history == nil {
		history = search.Clear()
	}

	raw, err := json.Marshal(history)
	if err != nil {
		return fmt.Errorf("%w: encode history: %w", store.ErrPersistence, err)
	}

	return s.kv.Set(ctx, search.HistoryKey, string(raw))
}
