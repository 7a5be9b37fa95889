package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Run records one generation run and which oracle produced it. Its
// vectors hang off it in position order.
type Run struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    string    `gorm:"type:uuid;index;not null" json:"user_id"`
	Count     int       `gorm:"not null" json:"count"`
	Oracle    string    `gorm:"not null" json:"oracle"`
	Vectors   []Vector  `gorm:"foreignKey:RunID" json:"vectors,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func (r *Run) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

// Vector is one stored test vector. Position 0 is always the known
// answer pair.
type Vector struct {
	ID            int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	RunID         string    `gorm:"type:uuid;index;not null" json:"run_id"`
	Position      int       `gorm:"not null" json:"position"`
	KeyHex        string    `gorm:"size:32;not null" json:"key_hex"`
	PlaintextHex  string    `gorm:"size:32;not null" json:"plaintext_hex"`
	CiphertextHex string    `gorm:"size:32;not null" json:"ciphertext_hex"`
	KnownAnswer   bool      `gorm:"not null;default:false" json:"known_answer"`
	CreatedAt     time.Time `json:"created_at"`
}
