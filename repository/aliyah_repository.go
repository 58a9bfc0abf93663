package repository

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/shulware/gabbaibackend/models"
	"gorm.io/gorm"
)

// AliyahRepository handles database operations for Aliyah entities
type AliyahRepository struct {
	DB *gorm.DB
}

// NewAliyahRepository creates a new instance of AliyahRepository
func NewAliyahRepository(db *gorm.DB) *AliyahRepository {
	return &AliyahRepository{DB: db}
}

var aliyahUpdatableFields = map[string]fieldCoercer{
	"date": func(value string) (interface{}, error) {
		d, err := time.Parse(models.DateLayout, value)
		if err != nil {
			return nil, ErrInvalidValue
		}
		return d, nil
	},
	"parsha":        coerceText,
	"holiday":       coerceText,
	"service":       coerceRequiredText,
	"aliyah_number": coerceRequiredText,
	"reason":        coerceText,
	"person_id": func(value string) (interface{}, error) {
		id, err := strconv.ParseUint(value, 10, 32)
		if err != nil {
			return nil, ErrInvalidValue
		}
		// existence of the person is left to the foreign key
		return uint(id), nil
	},
}

// Create creates a new aliyah record. The person reference is checked
// by the foreign key, not here; a violation surfaces as an error the
// caller can classify with IsForeignKeyViolation.
func (r *AliyahRepository) Create(aliyah *models.Aliyah) error {
	now := time.Now().Unix()
	if aliyah.CreatedAt == 0 {
		aliyah.CreatedAt = now
	}
	if aliyah.UpdatedAt == 0 {
		aliyah.UpdatedAt = now
	}

	err := r.DB.Create(aliyah).Error
	if err != nil {
		return fmt.Errorf("failed to create aliyah for person ID %d: %w", aliyah.PersonID, err)
	}
	return nil
}

// GetByID retrieves an aliyah by ID, preloading the honored person
func (r *AliyahRepository) GetByID(id uint) (*models.Aliyah, error) {
	var aliyah models.Aliyah
	err := r.DB.Preload("Person").First(&aliyah, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get aliyah by ID %d: %w", id, err)
	}
	return &aliyah, nil
}

// ListAll retrieves all aliyot with the honored person preloaded
func (r *AliyahRepository) ListAll() ([]models.Aliyah, error) {
	var aliyot []models.Aliyah
	err := r.DB.Preload("Person").Find(&aliyot).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list aliyot: %w", err)
	}
	return aliyot, nil
}

// AliyahExportRow is the flattened shape used by the aliyot export: the
// aliyah columns joined with the honored person's Hebrew name parts.
type AliyahExportRow struct {
	Date             time.Time `gorm:"column:date"`
	Parsha           string    `gorm:"column:parsha"`
	Holiday          string    `gorm:"column:holiday"`
	Service          string    `gorm:"column:service"`
	AliyahNumber     string    `gorm:"column:aliyah_number"`
	Reason           string    `gorm:"column:reason"`
	HebrewName       string    `gorm:"column:hebrew_name"`
	FatherHebrewName string    `gorm:"column:father_hebrew_name"`
}

// PersonDisplay renders the honored person as "<hebrew> בן <father>"
// with empty substitution for missing parts.
func (row AliyahExportRow) PersonDisplay() string {
	p := models.Person{HebrewName: row.HebrewName, FatherHebrewName: row.FatherHebrewName}
	return p.HebrewDisplayName()
}

// ListForExport reads every aliyah joined with its person's Hebrew name
// parts, ordered by date.
func (r *AliyahRepository) ListForExport() ([]AliyahExportRow, error) {
	query, args, err := sq.Select(
		"aliyot.date", "aliyot.parsha", "aliyot.holiday", "aliyot.service",
		"aliyot.aliyah_number", "aliyot.reason",
		"people.hebrew_name", "people.father_hebrew_name",
	).
		From("aliyot").
		Join("people ON people.id = aliyot.person_id").
		OrderBy("aliyot.date ASC", "aliyot.id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build aliyot export query: %w", err)
	}

	var rows []AliyahExportRow
	if err := r.DB.Raw(query, args...).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to run aliyot export query: %w", err)
	}
	return rows, nil
}

// UpdateField overwrites a single named column on an existing aliyah.
// See PersonRepository.UpdateField for the contract.
func (r *AliyahRepository) UpdateField(id uint, field, value string) error {
	coerce, ok := aliyahUpdatableFields[field]
	if !ok {
		return fmt.Errorf("aliyah field %q: %w", field, ErrInvalidField)
	}
	typed, err := coerce(value)
	if err != nil {
		return fmt.Errorf("aliyah field %q: %w", field, err)
	}

	result := r.DB.Model(&models.Aliyah{}).Where("id = ?", id).Updates(map[string]interface{}{
		field:        typed,
		"updated_at": time.Now().Unix(),
	})
	if result.Error != nil {
		return fmt.Errorf("failed to update aliyah ID %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
