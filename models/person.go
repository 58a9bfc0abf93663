package models

// Tribe labels are the three ritual-status categories. They are stored
// as Hebrew text, matching what the congregation's forms use.
const (
	TribeKohen     = "כהן"
	TribeLevi      = "לוי"
	TribeIsraelite = "ישראל"
)

// Tribes lists the accepted tribe labels.
var Tribes = []string{TribeKohen, TribeLevi, TribeIsraelite}

// IsValidTribe reports whether label is one of the accepted tribe labels.
func IsValidTribe(label string) bool {
	for _, t := range Tribes {
		if t == label {
			return true
		}
	}
	return false
}

// Person represents a community member in the database using GORM.
// It corresponds to the 'people' table. Only the ID is a uniqueness
// key; two people may share every name field.
type Person struct {
	ID               uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	FirstName        string `gorm:"not null" json:"first_name"`
	LastName         string `json:"last_name,omitempty"`
	HebrewName       string `json:"hebrew_name,omitempty"`
	FatherHebrewName string `json:"father_hebrew_name,omitempty"`
	Tribe            string `gorm:"not null;default:ישראל" json:"tribe"`
	Notes            string `json:"notes,omitempty"`
	CreatedAt        int64  `gorm:"not null" json:"created_at"` // Unix timestamp
	UpdatedAt        int64  `gorm:"not null" json:"updated_at"` // Unix timestamp

	// Relationships
	// omitempty hides these when they are not preloaded
	Aliyot            []Aliyah       `gorm:"foreignKey:PersonID" json:"aliyot,omitempty"`
	OutgoingRelations []Relationship `gorm:"foreignKey:PersonID" json:"outgoing_relations,omitempty"`
	IncomingRelations []Relationship `gorm:"foreignKey:RelatedPersonID" json:"incoming_relations,omitempty"`
}

// TableName explicitly sets the table name for GORM.
func (Person) TableName() string {
	return "people"
}

// FullName renders "First Last", dropping a missing last name.
func (p Person) FullName() string {
	if p.LastName == "" {
		return p.FirstName
	}
	return p.FirstName + " " + p.LastName
}

// HebrewDisplayName renders the patronymic form used on aliyah cards
// and exports: "<hebrew name> בן <father's hebrew name>". Missing parts
// are substituted with the empty string; when both are missing the
// result is empty.
func (p Person) HebrewDisplayName() string {
	if p.HebrewName == "" && p.FatherHebrewName == "" {
		return ""
	}
	if p.FatherHebrewName == "" {
		return p.HebrewName
	}
	return p.HebrewName + " בן " + p.FatherHebrewName
}
