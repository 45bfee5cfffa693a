package changelog

import (
	"crypto/md5"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const (
	StatusActive   = "active"
	StatusReverted = "reverted"
)

// ChangeRecord captures one accepted suggestion edit so it can be shown in the
// history and reverted later. Original and New hold full file contents; revert
// is simply writing Original back.
type ChangeRecord struct {
	RevisionID string    `json:"revision_id"`
	Filename   string    `json:"filename"`
	Message    string    `json:"message"`
	LineIndex  int       `json:"line_index"`
	Original   string    `json:"original"`
	New        string    `json:"new"`
	Status     string    `json:"status"`
	Timestamp  time.Time `json:"timestamp"`
}

func changelogPath() string {
	return filepath.Join(".aitutor", "changes.json")
}

// RecordChange appends an active revision record and returns its ID.
func RecordChange(filename, message string, lineIndex int, original, updated string) (string, error) {
	records, err := loadRecords()
	if err != nil {
		return "", err
	}

	hash := md5.Sum([]byte(fmt.Sprintf("%s-%d-%d", filename, lineIndex, time.Now().UnixNano())))
	record := ChangeRecord{
		RevisionID: fmt.Sprintf("%x", hash)[:12],
		Filename:   filename,
		Message:    message,
		LineIndex:  lineIndex,
		Original:   original,
		New:        updated,
		Status:     StatusActive,
		Timestamp:  time.Now(),
	}
	records = append(records, record)

	if err := saveRecords(records); err != nil {
		return "", err
	}
	return record.RevisionID, nil
}

// LoadChanges returns all recorded changes, newest first.
func LoadChanges() ([]ChangeRecord, error) {
	records, err := loadRecords()
	if err != nil {
		return nil, err
	}
	// Stored oldest first; present newest first.
	for i, j := 0, len(records)-1; i < j; i, j = i+1, j-1 {
		records[i], records[j] = records[j], records[i]
	}
	return records, nil
}

// RevertChange writes a revision's original content back to its file and flips
// the record status to reverted.
func RevertChange(revisionID string) error {
	records, err := loadRecords()
	if err != nil {
		return err
	}

	for i := range records {
		if records[i].RevisionID != revisionID {
			continue
		}
		if records[i].Status != StatusActive {
			return fmt.Errorf("revision %s is not active, cannot revert", revisionID)
		}
		if err := os.WriteFile(records[i].Filename, []byte(records[i].Original), 0644); err != nil {
			return fmt.Errorf("failed to restore %s: %w", records[i].Filename, err)
		}
		records[i].Status = StatusReverted
		return saveRecords(records)
	}
	return fmt.Errorf("no change recorded with revision %s", revisionID)
}

func loadRecords() ([]ChangeRecord, error) {
	data, err := os.ReadFile(changelogPath())
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read change log: %w", err)
	}
	var records []ChangeRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse change log: %w", err)
	}
	return records, nil
}

func saveRecords(records []ChangeRecord) error {
	if err := os.MkdirAll(filepath.Dir(changelogPath()), 0755); err != nil {
		return fmt.Errorf("failed to create change log directory: %w", err)
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(changelogPath(), data, 0644); err != nil {
		return fmt.Errorf("failed to write change log: %w", err)
	}
	return nil
}
