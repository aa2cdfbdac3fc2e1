package resultcache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"time"

	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LastResultKey is the well-known slot holding the most recent result.
const LastResultKey = "last_result"

// loadTimeout bounds a shared slot query.
const loadTimeout = 15 * time.Second

// ErrNotFound is returned when a slot holds no result.
var ErrNotFound = errors.New("no cached result")

// Entry is a cached reconciliation result.
type Entry struct {
	NotFollowingBack []string  `json:"not_following_back"`
	NotFollowedBack  []string  `json:"not_followed_back,omitempty"`
	Both             bool      `json:"both"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// Store reads and writes cache slots.
type Store interface {
	// Save overwrites the slot with entry.
	Save(ctx context.Context, key string, entry Entry) error
	// Load returns the entry in the slot or ErrNotFound.
	Load(ctx context.Context, key string) (*Entry, error)
	// Delete empties the slot. Deleting an empty slot is not an error.
	Delete(ctx context.Context, key string) error
}

// GormStore implements Store on a GORM connection.
type GormStore struct {
	db  *gorm.DB
	now func() time.Time
	// sf coalesces concurrent loads of the same slot.
	sf singleflight.Group
}

// NewGormStore creates a store on db. Call Migrate before first use.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db, now: time.Now}
}

// Migrate creates or updates the cache table.
func (s *GormStore) Migrate(ctx context.Context) error {
	if err := s.db.WithContext(ctx).AutoMigrate(&CachedResult{}); err != nil {
		return fmt.Errorf("failed to migrate %s: %w", TableName, err)
	}
	return nil
}

// Save implements Store.
func (s *GormStore) Save(ctx context.Context, key string, entry Entry) error {
	notFollowingBack, err := encodeList(entry.NotFollowingBack)
	if err != nil {
		return err
	}
	notFollowedBack, err := encodeList(entry.NotFollowedBack)
	if err != nil {
		return err
	}

	row := CachedResult{
		Slot:             key,
		NotFollowingBack: notFollowingBack,
		NotFollowedBack:  notFollowedBack,
		BothDirections:   entry.Both,
		UpdatedAt:        s.now().UTC(),
	}

	err = s.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&row).Error
	if err != nil {
		return fmt.Errorf("failed to save cache slot %s: %w", key, err)
	}
	return nil
}

// Load implements Store. Concurrent loads of one slot share a single query
// and each caller receives its own copy.
func (s *GormStore) Load(ctx context.Context, key string) (*Entry, error) {
	// The shared query outlives any single caller; each caller still
	// stops waiting when its own context ends.
	ch := s.sf.DoChan(key, func() (interface{}, error) {
		loadCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), loadTimeout)
		defer cancel()
		return s.load(loadCtx, key)
	})

	var res singleflight.Result
	select {
	case res = <-ch:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	if res.Err != nil {
		return nil, res.Err
	}

	entry := *res.Val.(*Entry)
	entry.NotFollowingBack = slices.Clone(entry.NotFollowingBack)
	entry.NotFollowedBack = slices.Clone(entry.NotFollowedBack)
	return &entry, nil
}

func (s *GormStore) load(ctx context.Context, key string) (*Entry, error) {
	var row CachedResult
	err := s.db.WithContext(ctx).Where("slot = ?", key).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load cache slot %s: %w", key, err)
	}

	entry := &Entry{
		Both:      row.BothDirections,
		UpdatedAt: row.UpdatedAt,
	}
	if entry.NotFollowingBack, err = decodeList(row.NotFollowingBack); err != nil {
		return nil, fmt.Errorf("cache slot %s: %w", key, err)
	}
	if entry.NotFollowedBack, err = decodeList(row.NotFollowedBack); err != nil {
		return nil, fmt.Errorf("cache slot %s: %w", key, err)
	}
	if entry.NotFollowingBack == nil {
		entry.NotFollowingBack = []string{}
	}
	return entry, nil
}

// Delete implements Store.
func (s *GormStore) Delete(ctx context.Context, key string) error {
	err := s.db.WithContext(ctx).Where("slot = ?", key).Delete(&CachedResult{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete cache slot %s: %w", key, err)
	}
	return nil
}

func encodeList(list []string) (string, error) {
	if list == nil {
		return "", nil
	}
	data, err := json.Marshal(list)
	if err != nil {
		return "", fmt.Errorf("failed to encode result list: %w", err)
	}
	return string(data), nil
}

func decodeList(blob string) ([]string, error) {
	if blob == "" {
		return nil, nil
	}
	var list []string
	if err := json.Unmarshal([]byte(blob), &list); err != nil {
		return nil, fmt.Errorf("corrupt result list: %w", err)
	}
	return list, nil
}
