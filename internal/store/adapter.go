package store

import (
	"bytes"
	"encoding/json"

	"github.com/studiowebux/editpad/internal/types"
	"go.uber.org/zap"
)

// Storage keys. The version suffix lets a future layout live next to the
// old one.
const (
	KeyTabs     = "tabs.v1"
	KeyActiveID = "activeTabId.v1"
	KeyDarkMode = "dark-mode"
)

// Adapter serializes session state onto a KV backend
type Adapter struct {
	kv     KV
	logger *zap.Logger
}

// AdapterOption configures an Adapter
type AdapterOption func(*Adapter)

// WithLogger sets the logger used for fail-soft reads and failed writes
func WithLogger(l *zap.Logger) AdapterOption {
	return func(a *Adapter) {
		if l != nil {
			a.logger = l
		}
	}
}

// NewAdapter wraps kv
func NewAdapter(kv KV, opts ...AdapterOption) *Adapter {
	a := &Adapter{kv: kv, logger: zap.NewNop()}
	for _, o := range opts {
		o(a)
	}
	return a
}

// Close closes the backend
func (a *Adapter) Close() error {
	return a.kv.Close()
}

// LoadTabs returns the stored tabs in order, or nil when nothing usable is
// stored. Records are returned as decoded; tabs.Registry.Load validates ids.
func (a *Adapter) LoadTabs() []types.Tab {
	data, ok := a.get(KeyTabs)
	if !ok {
		return nil
	}

	var stored []types.Tab
	if err := json.Unmarshal(data, &stored); err != nil {
		a.logger.Warn("discarding unreadable tab collection", zap.String("key", KeyTabs), zap.Error(err))
		return nil
	}

	return stored
}

// SaveTabs writes the whole collection
func (a *Adapter) SaveTabs(tabs []types.Tab) {
	if tabs == nil {
		tabs = []types.Tab{}
	}
	data, err := json.Marshal(tabs)
	if err != nil {
		a.logger.Error("failed to encode tabs", zap.Error(err))
		return
	}
	a.put(KeyTabs, data)
}

// LoadActiveID returns the stored active tab id, or "" when none is stored
func (a *Adapter) LoadActiveID() string {
	data, ok := a.get(KeyActiveID)
	if !ok {
		return ""
	}

	var id string
	if err := json.Unmarshal(data, &id); err == nil {
		return id
	}

	// older data stored the bare id without JSON quoting
	raw := bytes.TrimSpace(data)
	if len(raw) > 0 && !bytes.ContainsAny(raw[:1], `"{[`) {
		return string(raw)
	}

	a.logger.Warn("discarding unreadable active tab id", zap.String("key", KeyActiveID))
	return ""
}

// SaveActiveID writes the active id. An empty id removes the record.
func (a *Adapter) SaveActiveID(id string) {
	if id == "" {
		if err := a.kv.Delete(KeyActiveID); err != nil {
			a.logger.Error("failed to clear active tab id", zap.Error(err))
		}
		return
	}
	data, _ := json.Marshal(id)
	a.put(KeyActiveID, data)
}

// LoadDarkMode returns the stored dark-mode flag. ok is false when the user
// never toggled it.
func (a *Adapter) LoadDarkMode() (on bool, ok bool) {
	data, found := a.get(KeyDarkMode)
	if !found {
		return false, false
	}
	if err := json.Unmarshal(bytes.TrimSpace(data), &on); err != nil {
		a.logger.Warn("discarding unreadable dark-mode flag", zap.Error(err))
		return false, false
	}
	return on, true
}

// SaveDarkMode writes the dark-mode flag
func (a *Adapter) SaveDarkMode(on bool) {
	data, _ := json.Marshal(on)
	a.put(KeyDarkMode, data)
}

func (a *Adapter) get(key string) ([]byte, bool) {
	data, ok, err := a.kv.Get(key)
	if err != nil {
		a.logger.Warn("failed to read from store", zap.String("key", key), zap.Error(err))
		return nil, false
	}
	if !ok || len(bytes.TrimSpace(data)) == 0 {
		return nil, false
	}
	return data, true
}

func (a *Adapter) put(key string, value []byte) {
	if err := a.kv.Put(key, value); err != nil {
		a.logger.Error("failed to write to store", zap.String("key", key), zap.Error(err))
		return
	}
	a.logger.Debug("stored", zap.String("key", key), zap.Int("bytes", len(value)))
}
