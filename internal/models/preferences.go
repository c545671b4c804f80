package models

import "time"

// UserPreferences holds per-user state that survives between sessions: when
// the session started and the last selections made in the detail views.
type UserPreferences struct {
	Email        string     `json:"email" gorm:"primaryKey;column:email;type:varchar(255)"`
	SessionStart *time.Time `json:"session_start" gorm:"column:session_start;type:timestamptz"`
	LastInvestor string     `json:"last_investor" gorm:"column:last_investor;type:text"`
	LastSeries   string     `json:"last_series" gorm:"column:last_series;type:text"`
	UpdatedAt    time.Time  `json:"updated_at" gorm:"column:updated_at;type:timestamptz;autoUpdateTime"`
}

func (UserPreferences) TableName() string { return "user_preferences" }
