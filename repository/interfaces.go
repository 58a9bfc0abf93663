package repository

import (
	"github.com/shulware/gabbaibackend/models"
)

// PersonRepositoryInterface defines the methods for person data operations
type PersonRepositoryInterface interface {
	Create(person *models.Person) error
	GetByID(id uint) (*models.Person, error)
	ListAll() ([]models.Person, error)
	UpdateField(id uint, field, value string) error
}

// AliyahRepositoryInterface defines the methods for aliyah data operations
type AliyahRepositoryInterface interface {
	Create(aliyah *models.Aliyah) error
	GetByID(id uint) (*models.Aliyah, error)
	ListAll() ([]models.Aliyah, error)
	ListForExport() ([]AliyahExportRow, error)
	UpdateField(id uint, field, value string) error
}

// RelationshipRepositoryInterface defines the methods for relationship data operations
type RelationshipRepositoryInterface interface {
	Create(rel *models.Relationship) error
	GetByID(id uint) (*models.Relationship, error)
	ListAll() ([]models.Relationship, error)
	ListByPersonID(personID uint) (outgoing []models.Relationship, incoming []models.Relationship, err error)
	UpdateField(id uint, field, value string) error
}
