package entity

import (
	"time"

	"github.com/google/uuid"
)

// Otp is a one-time-use token issued to a sales agent together with the
// security question chosen at account creation.
type Otp struct {
	ID        int64      `gorm:"primaryKey;autoIncrement"`
	UserID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	Question  string     `gorm:"type:text;not null"`
	Answer    string     `gorm:"type:text;not null"`
	Token     string     `gorm:"type:varchar(64);uniqueIndex;not null"`
	UsedAt    *time.Time `gorm:"index"`
	CreatedAt time.Time  `gorm:"autoCreateTime"`
}

func (Otp) TableName() string {
	return "otps"
}
