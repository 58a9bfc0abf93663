package models

import "time"

// DateLayout is the wire format for aliyah dates (ISO 8601 calendar date).
const DateLayout = "2006-01-02"

// Aliyah represents a single Torah-reading honor in the database using
// GORM. It corresponds to the 'aliyot' table. Parsha and Holiday are
// both optional; a weekday reading may carry neither. AliyahNumber is
// stored as text because congregations often record it as a
// Hebrew-letter numeral (א, ב, ...) rather than a digit.
type Aliyah struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Date         time.Time `gorm:"not null" json:"date"`
	Parsha       string    `json:"parsha,omitempty"`
	Holiday      string    `json:"holiday,omitempty"`
	Service      string    `gorm:"not null" json:"service"`
	AliyahNumber string    `gorm:"not null" json:"aliyah_number"`
	Reason       string    `json:"reason,omitempty"`
	PersonID     uint      `gorm:"not null" json:"person_id"`
	CreatedAt    int64     `gorm:"not null" json:"created_at"` // Unix timestamp
	UpdatedAt    int64     `gorm:"not null" json:"updated_at"` // Unix timestamp

	Person *Person `gorm:"foreignKey:PersonID;constraint:OnDelete:RESTRICT" json:"person,omitempty"`
}

// TableName explicitly sets the table name for GORM.
func (Aliyah) TableName() string {
	return "aliyot"
}
