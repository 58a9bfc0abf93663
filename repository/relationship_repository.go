package repository

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/shulware/gabbaibackend/models"
	"gorm.io/gorm"
)

// RelationshipRepository handles database operations for Relationship entities
type RelationshipRepository struct {
	DB *gorm.DB
}

// NewRelationshipRepository creates a new instance of RelationshipRepository
func NewRelationshipRepository(db *gorm.DB) *RelationshipRepository {
	return &RelationshipRepository{DB: db}
}

var relationshipUpdatableFields = map[string]fieldCoercer{
	"relation_type": coerceRequiredText,
	"person_id": func(value string) (interface{}, error) {
		id, err := strconv.ParseUint(value, 10, 32)
		if err != nil {
			return nil, ErrInvalidValue
		}
		return uint(id), nil
	},
	"related_person_id": func(value string) (interface{}, error) {
		id, err := strconv.ParseUint(value, 10, 32)
		if err != nil {
			return nil, ErrInvalidValue
		}
		return uint(id), nil
	},
}

// Create creates a new relationship record. Both person references are
// enforced by foreign keys; duplicate or contradictory rows are allowed.
func (r *RelationshipRepository) Create(rel *models.Relationship) error {
	now := time.Now().Unix()
	if rel.CreatedAt == 0 {
		rel.CreatedAt = now
	}
	if rel.UpdatedAt == 0 {
		rel.UpdatedAt = now
	}

	err := r.DB.Create(rel).Error
	if err != nil {
		return fmt.Errorf("failed to create relationship %d -> %d: %w", rel.PersonID, rel.RelatedPersonID, err)
	}
	return nil
}

// GetByID retrieves a relationship by ID with both people preloaded
func (r *RelationshipRepository) GetByID(id uint) (*models.Relationship, error) {
	var rel models.Relationship
	err := r.DB.Preload("Person").Preload("RelatedPerson").First(&rel, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get relationship by ID %d: %w", id, err)
	}
	return &rel, nil
}

// ListAll retrieves all relationships with both people preloaded
func (r *RelationshipRepository) ListAll() ([]models.Relationship, error) {
	var rels []models.Relationship
	err := r.DB.Preload("Person").Preload("RelatedPerson").Find(&rels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list relationships: %w", err)
	}
	return rels, nil
}

// ListByPersonID computes the two directional views over the single
// relationships table: rows where the person is the source (outgoing)
// and rows where they are the target (incoming). The reverse view is
// always derived here, never stored.
func (r *RelationshipRepository) ListByPersonID(personID uint) ([]models.Relationship, []models.Relationship, error) {
	var outgoing []models.Relationship
	err := r.DB.Preload("Person").Preload("RelatedPerson").
		Where("person_id = ?", personID).Find(&outgoing).Error
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list outgoing relations for person ID %d: %w", personID, err)
	}

	var incoming []models.Relationship
	err = r.DB.Preload("Person").Preload("RelatedPerson").
		Where("related_person_id = ?", personID).Find(&incoming).Error
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list incoming relations for person ID %d: %w", personID, err)
	}

	return outgoing, incoming, nil
}

// UpdateField overwrites a single named column on an existing
// relationship. See PersonRepository.UpdateField for the contract.
func (r *RelationshipRepository) UpdateField(id uint, field, value string) error {
	coerce, ok := relationshipUpdatableFields[field]
	if !ok {
		return fmt.Errorf("relationship field %q: %w", field, ErrInvalidField)
	}
	typed, err := coerce(value)
	if err != nil {
		return fmt.Errorf("relationship field %q: %w", field, err)
	}

	result := r.DB.Model(&models.Relationship{}).Where("id = ?", id).Updates(map[string]interface{}{
		field:        typed,
		"updated_at": time.Now().Unix(),
	})
	if result.Error != nil {
		return fmt.Errorf("failed to update relationship ID %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
