package repository

import (
	"errors"
	"fmt"
	"time"

	"github.com/shulware/gabbaibackend/models"
	"gorm.io/gorm"
)

// PersonRepository handles database operations for Person entities
type PersonRepository struct {
	DB *gorm.DB
}

// NewPersonRepository creates a new instance of PersonRepository
func NewPersonRepository(db *gorm.DB) *PersonRepository {
	return &PersonRepository{DB: db}
}

// personUpdatableFields is the allow-list for inline person edits.
// Anything else submitted as a field name is rejected up front rather
// than handed to the database.
var personUpdatableFields = map[string]fieldCoercer{
	"first_name":         coerceRequiredText,
	"last_name":          coerceText,
	"hebrew_name":        coerceText,
	"father_hebrew_name": coerceText,
	"notes":              coerceText,
	"tribe": func(value string) (interface{}, error) {
		if !models.IsValidTribe(value) {
			return nil, ErrInvalidValue
		}
		return value, nil
	},
}

// Create creates a new person record in the database. An empty tribe
// defaults to Israelite.
func (r *PersonRepository) Create(person *models.Person) error {
	now := time.Now().Unix()
	if person.CreatedAt == 0 {
		person.CreatedAt = now
	}
	if person.UpdatedAt == 0 {
		person.UpdatedAt = now
	}
	if person.Tribe == "" {
		person.Tribe = models.TribeIsraelite
	}

	err := r.DB.Create(person).Error
	if err != nil {
		return fmt.Errorf("failed to create person %s: %w", person.FirstName, err)
	}
	return nil
}

// GetByID retrieves a person by their ID, preloading their aliyot
func (r *PersonRepository) GetByID(id uint) (*models.Person, error) {
	var person models.Person
	err := r.DB.Preload("Aliyot").First(&person, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get person by ID %d: %w", id, err)
	}
	return &person, nil
}

// ListAll retrieves all people in storage order
func (r *PersonRepository) ListAll() ([]models.Person, error) {
	var people []models.Person
	err := r.DB.Find(&people).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list people: %w", err)
	}
	return people, nil
}

// UpdateField overwrites a single named column on an existing person.
// The field must be in the allow-list and the value must pass its
// coercion; a missing row yields gorm.ErrRecordNotFound with no write.
func (r *PersonRepository) UpdateField(id uint, field, value string) error {
	coerce, ok := personUpdatableFields[field]
	if !ok {
		return fmt.Errorf("person field %q: %w", field, ErrInvalidField)
	}
	typed, err := coerce(value)
	if err != nil {
		return fmt.Errorf("person field %q: %w", field, err)
	}

	result := r.DB.Model(&models.Person{}).Where("id = ?", id).Updates(map[string]interface{}{
		field:        typed,
		"updated_at": time.Now().Unix(),
	})
	if result.Error != nil {
		return fmt.Errorf("failed to update person ID %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
