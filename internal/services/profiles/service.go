// Package profiles manages the child profile roster with file watching
// and persistence. Profiles only seed the usage simulator; switching
// the active profile regenerates the series rather than mutating it.
package profiles

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/avenka-dev/screenbalance-tui/internal/logger"
)

// Profile is one child identity in the roster.
type Profile struct {
	Name    string    `json:"name"`
	AddedAt time.Time `json:"addedAt,omitempty"`
}

// RosterFile represents the JSON file structure for profile storage.
type RosterFile struct {
	Profiles      []Profile `json:"profiles"`
	ActiveProfile string    `json:"activeProfile,omitempty"`
	Version       int       `json:"version,omitempty"`
}

// EventType defines the type of roster event.
type EventType int

const (
	EventProfilesLoaded EventType = iota
	EventProfilesChanged
	EventProfileAdded
	EventProfileDeleted
	EventActiveProfileChanged
	EventError
)

// Event represents a roster service event.
type Event struct {
	Type    EventType
	Error   error
	Profile *Profile
}

// Service manages the roster with file watching and change notifications.
type Service struct {
	mu            sync.RWMutex
	profiles      []Profile
	activeProfile string
	filePath      string
	watcher       *fsnotify.Watcher
	eventChan     chan Event
	stopChan      chan struct{}
	debounceTimer *time.Timer
}

// defaultRoster is seeded when no roster file exists yet.
func defaultRoster() []Profile {
	now := time.Now()
	return []Profile{
		{Name: "Naresh", AddedAt: now},
		{Name: "Mounika", AddedAt: now},
		{Name: "Varshitha", AddedAt: now},
	}
}

// New creates a new roster service and starts file watching.
func New(filePath string) (*Service, error) {
	if filePath == "" {
		return nil, fmt.Errorf("profiles path is required")
	}

	s := &Service{
		filePath:  filePath,
		eventChan: make(chan Event, 100),
		stopChan:  make(chan struct{}),
	}

	// Ensure directory exists
	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	// Load the roster, seeding defaults on first run
	if err := s.load(); err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to load profiles: %w", err)
		}
		s.profiles = defaultRoster()
		s.activeProfile = s.profiles[0].Name
		if err := s.save(); err != nil {
			return nil, fmt.Errorf("failed to create profiles file: %w", err)
		}
	}

	if err := s.startWatcher(); err != nil {
		return nil, fmt.Errorf("failed to start file watcher: %w", err)
	}

	s.sendEvent(Event{Type: EventProfilesLoaded})

	return s, nil
}

// Events returns the event channel for subscribing to roster changes.
func (s *Service) Events() <-chan Event {
	return s.eventChan
}

// GetProfiles returns a copy of the roster.
func (s *Service) GetProfiles() []Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()

	profiles := make([]Profile, len(s.profiles))
	copy(profiles, s.profiles)
	return profiles
}

// GetActiveProfile returns the active profile name.
func (s *Service) GetActiveProfile() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.activeProfile != "" {
		return s.activeProfile
	}
	if len(s.profiles) > 0 {
		return s.profiles[0].Name
	}
	return ""
}

// Count returns the number of profiles.
func (s *Service) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.profiles)
}

// SetActiveProfile switches the active profile by name.
func (s *Service) SetActiveProfile(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	found := false
	for _, p := range s.profiles {
		if p.Name == name {
			found = true
			s.activeProfile = p.Name
			break
		}
	}
	if !found {
		return fmt.Errorf("profile not found: %s", name)
	}

	if err := s.saveLocked(); err != nil {
		return fmt.Errorf("failed to save profiles: %w", err)
	}

	s.sendEvent(Event{Type: EventActiveProfileChanged})
	return nil
}

// AddProfile adds a new profile to the roster.
func (s *Service) AddProfile(profile Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if profile.Name == "" {
		return fmt.Errorf("profile name is required")
	}
	for _, p := range s.profiles {
		if p.Name == profile.Name {
			return fmt.Errorf("profile %s already exists", profile.Name)
		}
	}

	if profile.AddedAt.IsZero() {
		profile.AddedAt = time.Now()
	}

	s.profiles = append(s.profiles, profile)
	if len(s.profiles) == 1 {
		s.activeProfile = profile.Name
	}

	if err := s.saveLocked(); err != nil {
		// Rollback
		s.profiles = s.profiles[:len(s.profiles)-1]
		return fmt.Errorf("failed to save profiles: %w", err)
	}

	s.sendEvent(Event{Type: EventProfileAdded, Profile: &profile})
	return nil
}

// DeleteProfile removes a profile by name.
func (s *Service) DeleteProfile(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	var deleted Profile
	for i, p := range s.profiles {
		if p.Name == name {
			idx = i
			deleted = p
			break
		}
	}
	if idx == -1 {
		return fmt.Errorf("profile not found: %s", name)
	}

	s.profiles = append(s.profiles[:idx], s.profiles[idx+1:]...)

	if s.activeProfile == deleted.Name {
		if len(s.profiles) > 0 {
			s.activeProfile = s.profiles[0].Name
		} else {
			s.activeProfile = ""
		}
	}

	if err := s.saveLocked(); err != nil {
		return fmt.Errorf("failed to save profiles: %w", err)
	}

	s.sendEvent(Event{Type: EventProfileDeleted, Profile: &deleted})
	return nil
}

// load reads the roster from the JSON file.
func (s *Service) load() error {
	data, err := os.ReadFile(s.filePath)
	if err != nil {
		return err
	}

	var file RosterFile
	if err := json.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("failed to parse profiles file: %w", err)
	}

	active := file.ActiveProfile
	if active != "" {
		found := false
		for _, p := range file.Profiles {
			if p.Name == active {
				found = true
				break
			}
		}
		if !found {
			active = ""
		}
	}
	if active == "" && len(file.Profiles) > 0 {
		active = file.Profiles[0].Name
	}

	s.profiles = file.Profiles
	s.activeProfile = active
	return nil
}

// save persists the roster (public version).
func (s *Service) save() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveLocked()
}

// saveLocked persists the roster to the JSON file (must hold lock).
func (s *Service) saveLocked() error {
	file := RosterFile{
		Profiles:      s.profiles,
		ActiveProfile: s.activeProfile,
		Version:       1,
	}

	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal profiles: %w", err)
	}

	// Write to temp file first, then rename
	tmpFile := s.filePath + ".tmp"
	if err := os.WriteFile(tmpFile, data, 0o600); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}

	if err := os.Rename(tmpFile, s.filePath); err != nil {
		if removeErr := os.Remove(tmpFile); removeErr != nil {
			logger.Error("failed to remove temp file", "error", removeErr)
		}
		return fmt.Errorf("failed to rename temp file: %w", err)
	}

	return nil
}

// startWatcher starts the file system watcher.
func (s *Service) startWatcher() error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	s.watcher = watcher

	// Watch the directory (to catch file creation/deletion)
	dir := filepath.Dir(s.filePath)
	if err := watcher.Add(dir); err != nil {
		if closeErr := watcher.Close(); closeErr != nil {
			logger.Error("failed to close watcher", "error", closeErr)
		}
		return err
	}

	go s.watchLoop()
	return nil
}

// watchLoop handles file system events with debouncing.
func (s *Service) watchLoop() {
	const debounceInterval = 100 * time.Millisecond

	for {
		select {
		case event, ok := <-s.watcher.Events:
			if !ok {
				return
			}

			// Only care about our roster file
			if filepath.Base(event.Name) != filepath.Base(s.filePath) {
				continue
			}

			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				// Debounce rapid changes
				if s.debounceTimer != nil {
					s.debounceTimer.Stop()
				}
				s.debounceTimer = time.AfterFunc(debounceInterval, func() {
					s.handleFileChange()
				})
			}

		case err, ok := <-s.watcher.Errors:
			if !ok {
				return
			}
			logger.Error("profiles watcher error", "error", err)
			s.sendEvent(Event{Type: EventError, Error: err})

		case <-s.stopChan:
			return
		}
	}
}

// handleFileChange reloads the roster after an external edit.
func (s *Service) handleFileChange() {
	s.mu.Lock()
	err := s.load()
	s.mu.Unlock()

	if err != nil {
		logger.Error("failed to reload profiles", "error", err)
		s.sendEvent(Event{Type: EventError, Error: err})
		return
	}

	logger.Debug("profiles file changed, roster reloaded")
	s.sendEvent(Event{Type: EventProfilesChanged})
}

// sendEvent sends an event without blocking.
func (s *Service) sendEvent(event Event) {
	select {
	case s.eventChan <- event:
	default:
		logger.Warn("profiles event channel full, dropping event")
	}
}

// Close stops the watcher and releases resources.
func (s *Service) Close() error {
	close(s.stopChan)
	if s.debounceTimer != nil {
		s.debounceTimer.Stop()
	}
	if s.watcher != nil {
		return s.watcher.Close()
	}
	return nil
}
