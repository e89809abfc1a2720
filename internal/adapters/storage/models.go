package storage

import "time"

// KVRecordModel is the GORM model for the kv_records table.
// Revision starts at 1 and increments on every overwrite of the key.
type KVRecordModel struct {
	CreatedAt time.Time
	Name      string `gorm:"primaryKey"`
	Revision  int64  `gorm:"not null;default:1"`
	UpdatedAt time.Time
	Value     string `gorm:"not null;default:''"`
}

// TableName specifies the table name for GORM
func (KVRecordModel) TableName() string { return "kv_records" }
