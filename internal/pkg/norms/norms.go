// Package norms holds the process-wide advisory norms keyed by process name.
package norms

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/bytedance/sonic"
	"github.com/ougirez/milkdigit/internal/domain"
	"gopkg.in/yaml.v3"
)

const (
	Pasteurization = "Пастеризация"
	Cooling        = "Охлаждение"
	Fermentation   = "Ферментация"
)

func ptr(v float64) *float64 {
	return &v
}

// Defaults is the built-in norm set used when no override file is supplied.
func Defaults() map[string]domain.Norm {
	return map[string]domain.Norm{
		Pasteurization: {Min: ptr(72), Max: ptr(75), Unit: "°C", Note: "Типовая пастеризация (72–75°C) — см. протокол."},
		Cooling:        {Min: ptr(2), Max: ptr(6), Unit: "°C", Note: "Хранение/охлаждение."},
		Fermentation:   {Min: ptr(18), Max: ptr(42), Unit: "°C", Note: "Температуры ферментации — зависят от рецептуры."},
	}
}

// Parse decodes a norms document. YAML is used for .yaml/.yml names, JSON otherwise.
func Parse(name string, data []byte) (map[string]domain.Norm, error) {
	out := make(map[string]domain.Norm)
	if len(bytes.TrimSpace(data)) == 0 {
		return out, nil
	}

	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &out); err != nil {
			return nil, fmt.Errorf("yaml.Unmarshal: %w", err)
		}
	default:
		if err := sonic.Unmarshal(data, &out); err != nil {
			return nil, fmt.Errorf("sonic.Unmarshal: %w", err)
		}
	}

	return out, nil
}

// Load reads the override file. A missing file returns (nil, nil).
func Load(path string) (map[string]domain.Norm, error) {
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	return Parse(path, data)
}

// Registry is the reloadable norm set: overrides from the file on top of Defaults.
type Registry struct {
	path string

	mu        sync.RWMutex
	overrides map[string]domain.Norm
}

func NewRegistry(path string) *Registry {
	return &Registry{path: path}
}

// NewStaticRegistry is a registry without a backing file.
func NewStaticRegistry(overrides map[string]domain.Norm) *Registry {
	return &Registry{overrides: overrides}
}

func (r *Registry) Path() string {
	return r.path
}

// Reload re-reads the file. On error the previous overrides are dropped and defaults stay in effect.
func (r *Registry) Reload() error {
	overrides, err := Load(r.path)

	r.mu.Lock()
	defer r.mu.Unlock()

	if err != nil {
		r.overrides = nil
		return fmt.Errorf("norms %s: %w", r.path, err)
	}
	r.overrides = overrides
	return nil
}

// Override returns the norm the file supplies for key.
func (r *Registry) Override(key string) (domain.Norm, bool) {
	if r == nil {
		return domain.Norm{}, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	n, ok := r.overrides[key]
	return n, ok
}

// Resolve returns the override for key, then the built-in default.
func (r *Registry) Resolve(key string) (domain.Norm, bool) {
	if n, ok := r.Override(key); ok {
		return n, true
	}
	n, ok := Defaults()[key]
	return n, ok
}

type Entry struct {
	Key      string      `json:"key"`
	Norm     domain.Norm `json:"norm"`
	Override bool        `json:"override"`
}

// All lists the merged norm set ordered by key.
func (r *Registry) All() []Entry {
	merged := make(map[string]Entry)
	for k, n := range Defaults() {
		merged[k] = Entry{Key: k, Norm: n}
	}

	if r != nil {
		r.mu.RLock()
		for k, n := range r.overrides {
			merged[k] = Entry{Key: k, Norm: n, Override: true}
		}
		r.mu.RUnlock()
	}

	out := make([]Entry, 0, len(merged))
	for _, e := range merged {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}
