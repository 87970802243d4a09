package infrastructure

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
)

// Retained-record caps per log. Oldest records are evicted first once a cap
// is exceeded. Logs without an entry grow unbounded, as the original data
// files did.
var defaultCaps = map[string]int{
	"sms_logs.json":    100,
	"sms_history.json": 100,
}

// JSONStore keeps named append-only logs as JSON array files plus single
// JSON documents, all under one directory. The mutex serializes every
// read-modify-write: concurrent webhook deliveries append to shared files.
type JSONStore struct {
	dir    string
	caps   map[string]int
	logger *zap.Logger
	mu     sync.Mutex
}

func NewJSONStore(dir string, logger *zap.Logger) *JSONStore {
	return &JSONStore{dir: dir, caps: defaultCaps, logger: logger}
}

// Append adds record to the named log, evicting oldest entries past the cap.
func (s *JSONStore) Append(log string, record any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records := s.readList(log)
	raw, err := json.Marshal(record)
	if err != nil {
		return err
	}
	records = append(records, raw)

	if limit, ok := s.caps[log]; ok && len(records) > limit {
		records = records[len(records)-limit:]
	}
	return s.writeJSON(log, records)
}

// List unmarshals the whole named log into out (a pointer to a slice).
// A missing or corrupt file reads as an empty list, never an error.
func (s *JSONStore) List(log string, out any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path(log))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return json.Unmarshal([]byte("[]"), out)
		}
		return err
	}
	if err := json.Unmarshal(data, out); err != nil {
		s.logger.Warn("corrupt log treated as empty", zap.String("log", log), zap.Error(err))
		return json.Unmarshal([]byte("[]"), out)
	}
	return nil
}

// Clear truncates the named log to an empty list.
func (s *JSONStore) Clear(log string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writeJSON(log, []json.RawMessage{})
}

// Load reads a single JSON document into out.
func (s *JSONStore) Load(name string, out any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path(name))
	if err != nil {
		return err
	}
	return json.Unmarshal(data, out)
}

// Save writes a single JSON document.
func (s *JSONStore) Save(name string, doc any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writeJSON(name, doc)
}

func (s *JSONStore) readList(log string) []json.RawMessage {
	data, err := os.ReadFile(s.path(log))
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			s.logger.Warn("failed to read log", zap.String("log", log), zap.Error(err))
		}
		return nil
	}
	var records []json.RawMessage
	if err := json.Unmarshal(data, &records); err != nil {
		s.logger.Warn("corrupt log treated as empty", zap.String("log", log), zap.Error(err))
		return nil
	}
	return records
}

func (s *JSONStore) writeJSON(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(s.path(name), data, 0o644)
}

func (s *JSONStore) path(name string) string {
	return filepath.Join(s.dir, filepath.Base(name))
}
