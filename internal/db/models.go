package db

import (
	"time"

	"sobriety-backend/internal/analysis"
)

// CheckIn is one submitted check-in. Rows are append-only: a correction for a
// day is a new row and the analysis engine decides which one counts. A day
// holds at most one row per status.
type CheckIn struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      string    `gorm:"size:64;uniqueIndex:idx_check_ins_user_day_status" json:"user_id"`
	Date        time.Time `gorm:"uniqueIndex:idx_check_ins_user_day_status" json:"date"`                 // UTC midnight of the day it applies to
	Status      string    `gorm:"size:16;index;uniqueIndex:idx_check_ins_user_day_status" json:"status"` // clean/relapse/skipped
	CheckInTime time.Time `json:"check_in_time"`
	CreatedAt   time.Time `json:"created_at"`
}

func (c CheckIn) ToRecord() analysis.CheckInRecord {
	return analysis.CheckInRecord{
		UserID:      c.UserID,
		Date:        c.Date,
		Status:      analysis.Status(c.Status),
		CheckInTime: c.CheckInTime,
	}
}

// ChatRecord is one message of a coach conversation.
// is_user: true for the user's message, false for the coach's reply
// msg_id: unique id of the message
type ChatRecord struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    string    `gorm:"size:64;index" json:"user_id"`
	Content   string    `gorm:"type:text" json:"content"`
	IsUser    bool      `json:"is_user"`
	CreatedAt time.Time `json:"created_at"`
	MsgID     string    `gorm:"size:64;index" json:"msg_id"`
}

// Resource is a support resource: crisis line, meeting finder, reading.
type Resource struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"size:128" json:"title"`
	Desc      string    `gorm:"type:text" json:"desc"`
	Phone     string    `gorm:"size:32" json:"phone"`
	URL       string    `gorm:"size:256" json:"url"`
	Crisis    bool      `gorm:"index" json:"crisis"`
	CreatedAt time.Time `json:"created_at"`
}
