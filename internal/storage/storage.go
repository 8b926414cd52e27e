// Package storage persists host state: the recent command history and the
// set of disabled commands.
package storage

import (
	"fmt"
	"time"

	"github.com/Joo200/piston/datastore"
)

const historyLimit = 20

const (
	keyHistory  = "cmd_history"
	keyDisabled = "cmd_disabled"
)

type Storage struct {
	ds *datastore.DataStore
}

// HistoryRecord is one finished command invocation.
type HistoryRecord struct {
	Command  string    `json:"command"`
	Status   int       `json:"status"`
	Error    string    `json:"error,omitempty"`
	Datetime time.Time `json:"datetime"`
}

func New(filePath string) (*Storage, error) {
	ds, err := datastore.New(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open datastore: %w", err)
	}
	return &Storage{ds: ds}, nil
}

func (s *Storage) Close() error {
	return s.ds.Close()
}

// AddHistory appends rec, keeping only the most recent entries.
func (s *Storage) AddHistory(rec HistoryRecord) error {
	var records []HistoryRecord
	if _, err := s.ds.Get(keyHistory, &records); err != nil {
		return err
	}
	records = append(records, rec)
	if len(records) > historyLimit {
		records = records[len(records)-historyLimit:]
	}
	return s.ds.Set(keyHistory, records)
}

// History returns the stored records, oldest first.
func (s *Storage) History() ([]HistoryRecord, error) {
	var records []HistoryRecord
	if _, err := s.ds.Get(keyHistory, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// DisableCommand marks name as disabled; dispatch conditions consult this.
func (s *Storage) DisableCommand(name string) error {
	disabled, err := s.DisabledCommands()
	if err != nil {
		return err
	}
	for _, d := range disabled {
		if d == name {
			return nil
		}
	}
	return s.ds.Set(keyDisabled, append(disabled, name))
}

// EnableCommand lifts a DisableCommand.
func (s *Storage) EnableCommand(name string) error {
	disabled, err := s.DisabledCommands()
	if err != nil {
		return err
	}
	updated := make([]string, 0, len(disabled))
	for _, d := range disabled {
		if d != name {
			updated = append(updated, d)
		}
	}
	return s.ds.Set(keyDisabled, updated)
}

// IsCommandDisabled reports whether name is currently disabled. Lookup
// failures count as enabled.
func (s *Storage) IsCommandDisabled(name string) bool {
	disabled, err := s.DisabledCommands()
	if err != nil {
		return false
	}
	for _, d := range disabled {
		if d == name {
			return true
		}
	}
	return false
}

// DisabledCommands returns the currently disabled command names.
func (s *Storage) DisabledCommands() ([]string, error) {
	var disabled []string
	if _, err := s.ds.Get(keyDisabled, &disabled); err != nil {
		return nil, err
	}
	return disabled, nil
}
