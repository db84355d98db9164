package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/Domenick1991/airtransport/internal/domain"
	"github.com/Domenick1991/airtransport/internal/repository"
)

const (
	FlightsFile   = "flights.json"
	AirplanesFile = "airplanes.json"
	AirportsFile  = "airports.json"
	TicketsFile   = "tickets.json"
)

// Mirror receives a copy of every snapshot document after it is written.
type Mirror interface {
	SetSnapshot(ctx context.Context, name string, payload []byte) error
}

type JSONStore struct {
	dir    string
	store  *repository.Store
	mirror Mirror
	logger *slog.Logger
}

type Option func(*JSONStore)

func WithMirror(m Mirror) Option {
	return func(s *JSONStore) {
		s.mirror = m
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(s *JSONStore) {
		s.logger = l
	}
}

func NewJSONStore(dir string, store *repository.Store, opts ...Option) *JSONStore {
	s := &JSONStore{
		dir:    dir,
		store:  store,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// LoadAll fills the store from the data directory and relinks flight
// references. It never fails: unreadable files leave their collection empty.
func (s *JSONStore) LoadAll() {
	s.store.Airports.Replace(load[domain.Airport](s, AirportsFile))
	s.store.Airplanes.Replace(load[domain.Airplane](s, AirplanesFile))
	s.store.Flights.Replace(load[domain.Flight](s, FlightsFile))
	s.store.Tickets.Replace(load[domain.Ticket](s, TicketsFile))
	s.store.Relink()
}

func load[T any](s *JSONStore, name string) []*T {
	items, err := readFile[T](filepath.Join(s.dir, name))
	if err != nil {
		s.logger.Error("failed to load collection, starting empty", "file", name, "error", err)
		return []*T{}
	}
	return items
}

func readFile[T any](path string) ([]*T, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return []*T{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var items []*T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if items == nil {
		items = []*T{}
	}
	return items, nil
}

// SaveAll overwrites every collection document. The first failure aborts the
// remaining writes.
func (s *JSONStore) SaveAll(ctx context.Context) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	docs := []struct {
		name  string
		value any
	}{
		{FlightsFile, s.store.Flights.List()},
		{AirplanesFile, s.store.Airplanes.List()},
		{AirportsFile, s.store.Airports.List()},
		{TicketsFile, s.store.Tickets.List()},
	}
	for _, doc := range docs {
		if err := s.write(ctx, doc.name, doc.value); err != nil {
			return err
		}
	}
	return nil
}

func (s *JSONStore) write(ctx context.Context, name string, value any) error {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}

	if s.mirror != nil {
		if err := s.mirror.SetSnapshot(ctx, name, data); err != nil {
			s.logger.Warn("failed to mirror snapshot", "file", name, "error", err)
		}
	}
	return nil
}

// Persist saves everything and swallows the error after logging it. The
// in-memory state is kept as is, so memory and disk may diverge.
func (s *JSONStore) Persist(ctx context.Context) {
	if err := s.SaveAll(ctx); err != nil {
		s.logger.Error("failed to save data", "dir", s.dir, "error", err)
	}
}
