package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"atscore/internal/errors"

	"github.com/fsnotify/fsnotify"
)

// TuningWatcher watches the config file for changes and invokes a callback
// with the freshly loaded configuration. The server uses this to hot-reload
// the analysis tuning section without a restart.
type TuningWatcher struct {
	mu sync.RWMutex

	configFile string

	lastModTime time.Time

	fsWatcher     *fsnotify.Watcher
	debounceDelay time.Duration
	debounceTimer *time.Timer

	stopChan   chan struct{}
	reloadChan chan struct{}

	reloadCallback func(*Config)
	logger         *errors.Logger

	running bool
}

// NewTuningWatcher creates a watcher for the given config file. The callback
// receives the reloaded config only after it passes validation; an invalid
// file on disk leaves the running configuration untouched.
func NewTuningWatcher(configFile string, debounceDelay time.Duration, reloadCallback func(*Config), logger *errors.Logger) (*TuningWatcher, error) {
	if configFile == "" {
		return nil, fmt.Errorf("config file path is required")
	}
	if debounceDelay == 0 {
		debounceDelay = time.Second
	}

	return &TuningWatcher{
		configFile:     configFile,
		debounceDelay:  debounceDelay,
		stopChan:       make(chan struct{}),
		reloadChan:     make(chan struct{}, 1), // Buffered to prevent blocking
		reloadCallback: reloadCallback,
		logger:         logger,
	}, nil
}

// Start begins watching the config file for changes
func (tw *TuningWatcher) Start() error {
	tw.mu.Lock()
	defer tw.mu.Unlock()

	if tw.running {
		return fmt.Errorf("tuning watcher is already running")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	tw.fsWatcher = watcher

	if stat, err := os.Stat(tw.configFile); err == nil {
		tw.lastModTime = stat.ModTime()
	}

	if err := tw.addFileToWatcher(); err != nil {
		tw.cleanupWatcher()
		return err
	}

	tw.running = true
	go tw.watchLoop()

	if tw.logger != nil {
		tw.logger.Info("Tuning config watcher started",
			"file", tw.configFile,
			"debounce_delay", tw.debounceDelay)
	}
	return nil
}

// Stop stops the watcher
func (tw *TuningWatcher) Stop() error {
	tw.mu.Lock()
	defer tw.mu.Unlock()

	if !tw.running {
		return nil
	}

	close(tw.stopChan)

	if tw.debounceTimer != nil {
		tw.debounceTimer.Stop()
	}

	if tw.fsWatcher != nil {
		if err := tw.fsWatcher.Close(); err != nil {
			if tw.logger != nil {
				tw.logger.LogError(err, "Failed to close file system watcher")
			}
			return err
		}
	}

	tw.running = false

	if tw.logger != nil {
		tw.logger.Info("Tuning config watcher stopped")
	}

	return nil
}

func (tw *TuningWatcher) cleanupWatcher() {
	if tw.fsWatcher != nil {
		if closeErr := tw.fsWatcher.Close(); closeErr != nil && tw.logger != nil {
			tw.logger.LogError(closeErr, "Failed to close file watcher during cleanup")
		}
	}
}

// addFileToWatcher watches the file and its directory; the directory watch
// catches atomic writes (rename operations) from editors and config managers
func (tw *TuningWatcher) addFileToWatcher() error {
	if err := tw.fsWatcher.Add(tw.configFile); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to watch file %s: %w", tw.configFile, err)
		}
	}

	dir := filepath.Dir(tw.configFile)
	if err := tw.fsWatcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch directory %s: %w", dir, err)
	}

	return nil
}

// hasFileChanged checks if the config file has been modified since last check
func (tw *TuningWatcher) hasFileChanged() bool {
	stat, err := os.Stat(tw.configFile)
	if err != nil {
		return false
	}

	if stat.ModTime().After(tw.lastModTime) {
		tw.lastModTime = stat.ModTime()
		return true
	}

	return false
}

// watchLoop is the main event loop for file watching
func (tw *TuningWatcher) watchLoop() {
	for {
		select {
		case event, ok := <-tw.fsWatcher.Events:
			if !ok {
				return
			}

			if tw.shouldProcessEvent(event) {
				tw.scheduleReload()
			}

		case err, ok := <-tw.fsWatcher.Errors:
			if !ok {
				return
			}
			if tw.logger != nil {
				tw.logger.LogError(err, "File watcher error")
			}

		case <-tw.reloadChan:
			// Debounced reload trigger
			if tw.hasFileChanged() {
				tw.reload()
			}

		case <-tw.stopChan:
			return
		}
	}
}

// reload re-reads the configuration and hands it to the callback. Load or
// validation failures are logged and the previous config stays in effect.
func (tw *TuningWatcher) reload() {
	cfg, err := LoadConfig()
	if err != nil {
		if tw.logger != nil {
			tw.logger.LogError(err, "Config reload failed, keeping previous configuration",
				"file", tw.configFile)
		}
		return
	}

	if tw.logger != nil {
		tw.logger.Info("Config file changed, applying reloaded configuration",
			"file", tw.configFile)
	}
	tw.reloadCallback(cfg)
}

// shouldProcessEvent determines if a file system event should trigger a
// reload check
func (tw *TuningWatcher) shouldProcessEvent(event fsnotify.Event) bool {
	if event.Name != tw.configFile && filepath.Base(event.Name) != filepath.Base(tw.configFile) {
		return false
	}
	return event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0
}

// scheduleReload schedules a debounced reload
func (tw *TuningWatcher) scheduleReload() {
	tw.mu.Lock()
	defer tw.mu.Unlock()

	if tw.debounceTimer != nil {
		tw.debounceTimer.Stop()
	}

	tw.debounceTimer = time.AfterFunc(tw.debounceDelay, func() {
		select {
		case tw.reloadChan <- struct{}{}:
		default:
			// Reload already scheduled
		}
	})
}

// IsRunning returns whether the watcher is currently running
func (tw *TuningWatcher) IsRunning() bool {
	tw.mu.RLock()
	defer tw.mu.RUnlock()
	return tw.running
}
