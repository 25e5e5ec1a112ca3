package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// timeFormat has fixed width so that created_at sorts as text.
const timeFormat = "2006-01-02T15:04:05.000000000Z07:00"

// Scan is a labeled corner set and the state inferred from it.
type Scan struct {
	ScanID    string
	CreatedAt time.Time
	Labels    []string
	State     uint64
	Faces     string
	Note      *string
}

// ScanRepository provides CRUD operations for scans.
type ScanRepository struct {
	db *DB
}

// NewScanRepository creates a new scan repository.
func NewScanRepository(db *DB) *ScanRepository {
	return &ScanRepository{db: db}
}

// Create records a scan and returns its ID.
func (r *ScanRepository) Create(labels []string, state uint64, faces, note string) (string, error) {
	id := uuid.New().String()
	createdAt := time.Now().UTC()

	var notePtr *string
	if note != "" {
		notePtr = &note
	}

	// Packed states never set the top two bits, so they fit in a signed column.
	_, err := r.db.Exec(`
		INSERT INTO scans (scan_id, created_at, labels, state, faces, note)
		VALUES (?, ?, ?, ?, ?, ?)
	`, id, createdAt.Format(timeFormat), strings.Join(labels, " "), int64(state), faces, notePtr)

	if err != nil {
		return "", fmt.Errorf("failed to create scan: %w", err)
	}

	return id, nil
}

// Get retrieves a scan by ID. It returns nil if no scan matches.
func (r *ScanRepository) Get(scanID string) (*Scan, error) {
	row := r.db.QueryRow(`
		SELECT scan_id, created_at, labels, state, faces, note
		FROM scans
		WHERE scan_id = ?
	`, scanID)

	s, err := scanRow(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get scan: %w", err)
	}
	return s, nil
}

// List returns the most recent scans, newest first.
func (r *ScanRepository) List(limit int) ([]Scan, error) {
	rows, err := r.db.Query(`
		SELECT scan_id, created_at, labels, state, faces, note
		FROM scans
		ORDER BY created_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list scans: %w", err)
	}
	defer rows.Close()

	return collect(rows)
}

// FindByState returns every scan that inferred the given packed state.
func (r *ScanRepository) FindByState(state uint64) ([]Scan, error) {
	rows, err := r.db.Query(`
		SELECT scan_id, created_at, labels, state, faces, note
		FROM scans
		WHERE state = ?
		ORDER BY created_at
	`, int64(state))
	if err != nil {
		return nil, fmt.Errorf("failed to find scans: %w", err)
	}
	defer rows.Close()

	return collect(rows)
}

// Count returns the number of stored scans.
func (r *ScanRepository) Count() (int, error) {
	var count int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM scans").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count scans: %w", err)
	}
	return count, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRow(row rowScanner) (*Scan, error) {
	var (
		s         Scan
		createdAt string
		labels    string
		state     int64
	)
	if err := row.Scan(&s.ScanID, &createdAt, &labels, &state, &s.Faces, &s.Note); err != nil {
		return nil, err
	}
	t, err := time.Parse(timeFormat, createdAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse created_at: %w", err)
	}
	s.CreatedAt = t
	s.Labels = strings.Fields(labels)
	s.State = uint64(state)
	return &s, nil
}

func collect(rows *sql.Rows) ([]Scan, error) {
	var scans []Scan
	for rows.Next() {
		s, err := scanRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		scans = append(scans, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate scans: %w", err)
	}
	return scans, nil
}
