// Package database provides persistent caching of upstream post details
// using BoltDB.
package database

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/timshannon/bolthold"

	"github.com/cineflow/catalogd/internal/models"
)

const (
	dbFileMode = 0600
	dbDirMode  = 0755

	defaultDBFile = "catalog.db"
)

// PostCache is a cached individual-post-detail payload. The raw JSON is
// kept so normalization changes never require invalidating stored rows.
type PostCache struct {
	PostID    string
	Raw       json.RawMessage
	CreatedAt time.Time
}

// Database defines the persistence operations used by the catalog service.
type Database interface {
	// GetCachedPost retrieves a cached post detail by id; nil when absent
	// or older than maxAge.
	GetCachedPost(postID string, maxAge time.Duration) (*models.PostDetail, error)
	// StorePost stores a post detail payload
	StorePost(postID string, detail *models.PostDetail) error
	// DeleteExpired removes rows older than maxAge
	DeleteExpired(maxAge time.Duration) error
	// Close closes the database connection
	Close() error
}

// BoltDB implements Database using bolthold on top of BoltDB.
type BoltDB struct {
	store *bolthold.Store
}

type boltPostCache struct {
	PostID    string `boltholdKey:"PostID"`
	Raw       []byte
	CreatedAt time.Time
}

// NewBolt opens (creating if needed) the BoltDB-backed cache at dbPath.
// An empty dbPath uses the default file in the current directory.
func NewBolt(dbPath string) (*BoltDB, error) {
	if dbPath == "" {
		dbPath = filepath.Join(".", defaultDBFile)
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), dbDirMode); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	store, err := bolthold.Open(dbPath, dbFileMode, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt database: %w", err)
	}

	return &BoltDB{store: store}, nil
}

// Close closes the database connection.
func (db *BoltDB) Close() error {
	return db.store.Close()
}

// GetCachedPost retrieves a cached post detail. A miss or an expired row
// returns nil without error.
func (db *BoltDB) GetCachedPost(postID string, maxAge time.Duration) (*models.PostDetail, error) {
	var row boltPostCache
	err := db.store.Get(postID, &row)
	if err == bolthold.ErrNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read cached post %s: %w", postID, err)
	}

	if maxAge > 0 && time.Since(row.CreatedAt) > maxAge {
		return nil, nil
	}

	var detail models.PostDetail
	if err := json.Unmarshal(row.Raw, &detail); err != nil {
		return nil, fmt.Errorf("failed to decode cached post %s: %w", postID, err)
	}
	return &detail, nil
}

// StorePost stores a post detail payload, replacing any previous row.
func (db *BoltDB) StorePost(postID string, detail *models.PostDetail) error {
	raw, err := json.Marshal(detail)
	if err != nil {
		return fmt.Errorf("failed to encode post %s: %w", postID, err)
	}

	row := boltPostCache{
		PostID:    postID,
		Raw:       raw,
		CreatedAt: time.Now(),
	}
	if err := db.store.Upsert(postID, &row); err != nil {
		return fmt.Errorf("failed to store post %s: %w", postID, err)
	}
	return nil
}

// DeleteExpired removes rows older than maxAge.
func (db *BoltDB) DeleteExpired(maxAge time.Duration) error {
	cutoff := time.Now().Add(-maxAge)
	query := bolthold.Where("CreatedAt").Lt(cutoff)
	if err := db.store.DeleteMatching(&boltPostCache{}, query); err != nil {
		return fmt.Errorf("failed to delete expired posts: %w", err)
	}
	return nil
}
