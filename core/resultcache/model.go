package resultcache

import "time"

// TableName of the cache table.
const TableName = "result_cache"

// CachedResult is the row stored for a cache slot.
type CachedResult struct {
	Slot             string    `gorm:"primaryKey;column:slot;type:varchar(64)"`
	NotFollowingBack string    `gorm:"column:not_following_back;type:text;not null"`
	NotFollowedBack  string    `gorm:"column:not_followed_back;type:text"`
	BothDirections   bool      `gorm:"column:both_directions;not null;default:false"`
	UpdatedAt        time.Time `gorm:"column:updated_at"`
}

func (CachedResult) TableName() string {
	return TableName
}
