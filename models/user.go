package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// Settings custom type for JSON storage of per-user preferences (currency, theme, etc.)
type Settings map[string]string

func (s Settings) Value() (driver.Value, error) {
	return json.Marshal(s)
}

func (s *Settings) Scan(value interface{}) error {
	if value == nil {
		*s = make(map[string]string)
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}

	return json.Unmarshal(bytes, s)
}

// User represents an account in the system
type User struct {
	ID          string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Email       string     `json:"email" gorm:"uniqueIndex;not null"`
	Password    string     `json:"-" gorm:"not null"` // Password is not exposed in JSON
	DisplayName string     `json:"displayName" gorm:"default:null"`
	Settings    Settings   `json:"settings" gorm:"type:jsonb;default:'{}'"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	LastLoginAt *time.Time `json:"lastLoginAt" gorm:"default:null"`
}
