package models

// Relationship represents a directed familial link between two people
// ("son of", "spouse of", ...) in the database using GORM. It
// corresponds to the 'relationships' table. The row is stored once in
// its stated direction; the reverse view is always derived by querying
// on related_person_id, never stored as a second row.
type Relationship struct {
	ID              uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	RelationType    string `gorm:"not null" json:"relation_type"`
	PersonID        uint   `gorm:"not null" json:"person_id"`
	RelatedPersonID uint   `gorm:"not null" json:"related_person_id"`
	CreatedAt       int64  `gorm:"not null" json:"created_at"` // Unix timestamp
	UpdatedAt       int64  `gorm:"not null" json:"updated_at"` // Unix timestamp

	Person        *Person `gorm:"foreignKey:PersonID;constraint:OnDelete:RESTRICT" json:"person,omitempty"`
	RelatedPerson *Person `gorm:"foreignKey:RelatedPersonID;constraint:OnDelete:RESTRICT" json:"related_person,omitempty"`
}

// TableName explicitly sets the table name for GORM.
func (Relationship) TableName() string {
	return "relationships"
}
