package config

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Config holds all user-configurable settings loaded from config.json
type Config struct {
	Library LibraryConfig `json:"library"`
	Sync    SyncConfig    `json:"sync"`
	UI      UIConfig      `json:"ui"`
}

// LibraryConfig points at the asset library on disk
type LibraryConfig struct {
	Root   string `json:"root"`   // Directory scanned for assets
	DBPath string `json:"dbPath"` // SQLite settings database; empty uses the default path
}

// SyncConfig holds location sync tuning
type SyncConfig struct {
	DebounceMs int `json:"debounceMs"` // Query write debounce in milliseconds
}

// UIConfig holds presentation defaults applied when the settings store has
// no persisted value yet
type UIConfig struct {
	ViewMode      string `json:"viewMode"` // "grid" | "list"
	ThumbnailSize int    `json:"thumbnailSize"`
	SidebarWidth  int    `json:"sidebarWidth"`
}

// Manager handles loading, saving, and accessing configuration
type Manager struct {
	mu       sync.RWMutex
	config   *Config
	path     string
	parseErr error // Stores parsing error if config failed to load
}

// NewManager creates a new configuration manager
func NewManager() *Manager {
	return &Manager{
		config: DefaultConfig(),
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	home, _ := os.UserHomeDir()
	return &Config{
		Library: LibraryConfig{
			Root:   filepath.Join(home, "Pictures"),
			DBPath: "",
		},
		Sync: SyncConfig{
			DebounceMs: 250,
		},
		UI: UIConfig{
			ViewMode:      "grid",
			ThumbnailSize: 120,
			SidebarWidth:  240,
		},
	}
}

// ConfigPath returns the config file path: ~/.config/curio/config.json
// This is consistent across all platforms (Windows, macOS, Linux)
func ConfigPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "curio", "config.json")
}

// DefaultDBPath returns where the settings database lives when the config
// does not name one: ~/.config/curio/settings.db
func DefaultDBPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "curio", "settings.db")
}

// Load reads the configuration from the given path, or ConfigPath() when
// path is empty. If the file doesn't exist, creates it with defaults.
// If parsing fails, stores the error and returns defaults.
func (m *Manager) Load(path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if path == "" {
		path = ConfigPath()
	}
	m.path = path
	m.parseErr = nil

	configDir := filepath.Dir(m.path)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		log.Printf("Config: failed to create directory %s: %v", configDir, err)
		return err
	}

	data, err := os.ReadFile(m.path)
	if os.IsNotExist(err) {
		log.Printf("Config: creating default config at %s", m.path)
		m.config = DefaultConfig()
		if saveErr := m.saveUnlocked(); saveErr != nil {
			log.Printf("Config: failed to save default config: %v", saveErr)
			return saveErr
		}
		return nil
	}
	if err != nil {
		log.Printf("Config: failed to read %s: %v", m.path, err)
		return err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		log.Printf("Config: JSON parse error: %v", err)
		m.parseErr = err
		m.config = DefaultConfig()
		return nil // Don't return error - we're using defaults
	}

	log.Printf("Config: loaded from %s", m.path)
	m.config = &cfg
	return nil
}

// saveUnlocked saves config without acquiring lock (caller must hold lock)
func (m *Manager) saveUnlocked() error {
	data, err := json.MarshalIndent(m.config, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(m.path, data, 0o644)
}

// Save writes the current configuration to disk
func (m *Manager) Save() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saveUnlocked()
}

// Get returns a copy of the current configuration
func (m *Manager) Get() Config {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.config == nil {
		return *DefaultConfig()
	}
	return *m.config
}

// ParseError returns the parsing error if config failed to load
func (m *Manager) ParseError() error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.parseErr
}

// Debounce returns the configured location sync debounce as a duration.
// Non-positive values fall back to the default.
func (m *Manager) Debounce() time.Duration {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.config.Sync.DebounceMs <= 0 {
		return 250 * time.Millisecond
	}
	return time.Duration(m.config.Sync.DebounceMs) * time.Millisecond
}

// DBPath returns the configured settings database path, falling back to the
// default location when unset.
func (m *Manager) DBPath() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.config.Library.DBPath != "" {
		return m.config.Library.DBPath
	}
	return DefaultDBPath()
}

// SetLibraryRoot updates the library root directory
func (m *Manager) SetLibraryRoot(root string) {
	m.mu.Lock()
	m.config.Library.Root = root
	m.mu.Unlock()
	m.Save()
}

// SetViewMode updates the default view mode
func (m *Manager) SetViewMode(mode string) {
	m.mu.Lock()
	m.config.UI.ViewMode = mode
	m.mu.Unlock()
	m.Save()
}
