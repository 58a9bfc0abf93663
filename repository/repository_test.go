package repository

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/shulware/gabbaibackend/database"
	"github.com/shulware/gabbaibackend/models"
)

// newTestDB opens a throwaway SQLite database with foreign keys
// enforced, migrated to the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.InitGormDB(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrateModels(db))
	return db
}

func mustCreatePerson(t *testing.T, repo *PersonRepository, person *models.Person) *models.Person {
	t.Helper()
	require.NoError(t, repo.Create(person))
	return person
}

func TestPersonRepositoryCreateAppliesDefaults(t *testing.T) {
	repo := NewPersonRepository(newTestDB(t))

	created := mustCreatePerson(t, repo, &models.Person{FirstName: "Moshe"})

	assert.NotZero(t, created.ID)
	assert.Equal(t, models.TribeIsraelite, created.Tribe)
	assert.NotZero(t, created.CreatedAt)

	people, err := repo.ListAll()
	require.NoError(t, err)
	require.Len(t, people, 1)
	assert.Equal(t, "Moshe", people[0].FirstName)
	assert.Equal(t, models.TribeIsraelite, people[0].Tribe)
}

func TestPersonRepositoryCreateKeepsExplicitTribe(t *testing.T) {
	repo := NewPersonRepository(newTestDB(t))

	created := mustCreatePerson(t, repo, &models.Person{FirstName: "Aharon", Tribe: models.TribeKohen})

	got, err := repo.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, models.TribeKohen, got.Tribe)
}

func TestPersonRepositoryUpdateFieldChangesOnlyNamedField(t *testing.T) {
	repo := NewPersonRepository(newTestDB(t))
	created := mustCreatePerson(t, repo, &models.Person{
		FirstName:  "Dovid",
		LastName:   "Katz",
		HebrewName: "דוד",
		Notes:      "chazan",
	})

	require.NoError(t, repo.UpdateField(created.ID, "hebrew_name", "דוד לייב"))

	got, err := repo.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "דוד לייב", got.HebrewName)
	assert.Equal(t, "Dovid", got.FirstName)
	assert.Equal(t, "Katz", got.LastName)
	assert.Equal(t, "chazan", got.Notes)
}

func TestPersonRepositoryUpdateFieldNotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewPersonRepository(db)

	err := repo.UpdateField(9999, "first_name", "Nobody")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	var count int64
	require.NoError(t, db.Model(&models.Person{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestPersonRepositoryUpdateFieldRejectsUnknownField(t *testing.T) {
	repo := NewPersonRepository(newTestDB(t))
	created := mustCreatePerson(t, repo, &models.Person{FirstName: "Sara"})

	err := repo.UpdateField(created.ID, "shoe_size", "42")
	assert.ErrorIs(t, err, ErrInvalidField)
}

func TestPersonRepositoryUpdateFieldRejectsInvalidValues(t *testing.T) {
	repo := NewPersonRepository(newTestDB(t))
	created := mustCreatePerson(t, repo, &models.Person{FirstName: "Rivka"})

	assert.ErrorIs(t, repo.UpdateField(created.ID, "tribe", "klingon"), ErrInvalidValue)
	assert.ErrorIs(t, repo.UpdateField(created.ID, "first_name", "   "), ErrInvalidValue)

	got, err := repo.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Rivka", got.FirstName)
	assert.Equal(t, models.TribeIsraelite, got.Tribe)
}

func TestAliyahRepositoryCreateAndList(t *testing.T) {
	db := newTestDB(t)
	personRepo := NewPersonRepository(db)
	repo := NewAliyahRepository(db)

	person := mustCreatePerson(t, personRepo, &models.Person{FirstName: "Yaakov"})

	date, _ := time.Parse(models.DateLayout, "2026-01-17")
	aliyah := &models.Aliyah{
		Date:         date,
		Parsha:       "וארא",
		Service:      "morning",
		AliyahNumber: "ג",
		PersonID:     person.ID,
	}
	require.NoError(t, repo.Create(aliyah))

	aliyot, err := repo.ListAll()
	require.NoError(t, err)
	require.Len(t, aliyot, 1)
	assert.Equal(t, "וארא", aliyot[0].Parsha)
	assert.Equal(t, "ג", aliyot[0].AliyahNumber)
	require.NotNil(t, aliyot[0].Person)
	assert.Equal(t, "Yaakov", aliyot[0].Person.FirstName)
}

func TestAliyahRepositoryCreateRejectsUnknownPerson(t *testing.T) {
	db := newTestDB(t)
	repo := NewAliyahRepository(db)

	date, _ := time.Parse(models.DateLayout, "2026-01-17")
	err := repo.Create(&models.Aliyah{
		Date:         date,
		Service:      "morning",
		AliyahNumber: "1",
		PersonID:     12345,
	})
	require.Error(t, err)
	assert.True(t, IsForeignKeyViolation(err), "expected a foreign key violation, got: %v", err)

	var count int64
	require.NoError(t, db.Model(&models.Aliyah{}).Count(&count).Error)
	assert.Zero(t, count, "no orphan aliyah row may be persisted")
}

func TestAliyahRepositoryUpdateField(t *testing.T) {
	db := newTestDB(t)
	personRepo := NewPersonRepository(db)
	repo := NewAliyahRepository(db)

	person := mustCreatePerson(t, personRepo, &models.Person{FirstName: "Shimon"})
	date, _ := time.Parse(models.DateLayout, "2026-03-03")
	aliyah := &models.Aliyah{Date: date, Service: "morning", AliyahNumber: "1", PersonID: person.ID}
	require.NoError(t, repo.Create(aliyah))

	require.NoError(t, repo.UpdateField(aliyah.ID, "service", "afternoon"))
	got, err := repo.GetByID(aliyah.ID)
	require.NoError(t, err)
	assert.Equal(t, "afternoon", got.Service)
	assert.Equal(t, "1", got.AliyahNumber)

	assert.ErrorIs(t, repo.UpdateField(aliyah.ID, "date", "not-a-date"), ErrInvalidValue)
	assert.ErrorIs(t, repo.UpdateField(aliyah.ID, "id", "7"), ErrInvalidField)
	assert.ErrorIs(t, repo.UpdateField(9999, "service", "musaf"), gorm.ErrRecordNotFound)

	// moving the aliyah to a person that does not exist must trip the FK
	err = repo.UpdateField(aliyah.ID, "person_id", "4242")
	require.Error(t, err)
	assert.True(t, IsForeignKeyViolation(err))
}

func TestAliyahRepositoryListForExport(t *testing.T) {
	db := newTestDB(t)
	personRepo := NewPersonRepository(db)
	repo := NewAliyahRepository(db)

	person := mustCreatePerson(t, personRepo, &models.Person{
		FirstName:        "Levi",
		HebrewName:       "לוי",
		FatherHebrewName: "יעקב",
	})
	date, _ := time.Parse(models.DateLayout, "2026-02-07")
	require.NoError(t, repo.Create(&models.Aliyah{
		Date:         date,
		Parsha:       "יתרו",
		Service:      "morning",
		AliyahNumber: "ב",
		PersonID:     person.ID,
	}))

	rows, err := repo.ListForExport()
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "2026-02-07", rows[0].Date.Format(models.DateLayout))
	assert.Equal(t, "יתרו", rows[0].Parsha)
	assert.Equal(t, "לוי בן יעקב", rows[0].PersonDisplay())
}

func TestRelationshipRepositoryDirectionalViews(t *testing.T) {
	db := newTestDB(t)
	personRepo := NewPersonRepository(db)
	repo := NewRelationshipRepository(db)

	avraham := mustCreatePerson(t, personRepo, &models.Person{FirstName: "Avraham"})
	yitzchak := mustCreatePerson(t, personRepo, &models.Person{FirstName: "Yitzchak"})

	require.NoError(t, repo.Create(&models.Relationship{
		RelationType:    "father of",
		PersonID:        avraham.ID,
		RelatedPersonID: yitzchak.ID,
	}))

	outgoing, incoming, err := repo.ListByPersonID(avraham.ID)
	require.NoError(t, err)
	require.Len(t, outgoing, 1)
	assert.Empty(t, incoming)
	assert.Equal(t, "father of", outgoing[0].RelationType)
	require.NotNil(t, outgoing[0].RelatedPerson)
	assert.Equal(t, "Yitzchak", outgoing[0].RelatedPerson.FirstName)

	outgoing, incoming, err = repo.ListByPersonID(yitzchak.ID)
	require.NoError(t, err)
	assert.Empty(t, outgoing)
	require.Len(t, incoming, 1)
	require.NotNil(t, incoming[0].Person)
	assert.Equal(t, "Avraham", incoming[0].Person.FirstName)
}

func TestRelationshipRepositoryCreateRejectsUnknownPerson(t *testing.T) {
	db := newTestDB(t)
	personRepo := NewPersonRepository(db)
	repo := NewRelationshipRepository(db)

	person := mustCreatePerson(t, personRepo, &models.Person{FirstName: "Chana"})

	err := repo.Create(&models.Relationship{
		RelationType:    "mother of",
		PersonID:        person.ID,
		RelatedPersonID: 777,
	})
	require.Error(t, err)
	assert.True(t, IsForeignKeyViolation(err))

	var count int64
	require.NoError(t, db.Model(&models.Relationship{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestRelationshipRepositoryUpdateField(t *testing.T) {
	db := newTestDB(t)
	personRepo := NewPersonRepository(db)
	repo := NewRelationshipRepository(db)

	a := mustCreatePerson(t, personRepo, &models.Person{FirstName: "Miriam"})
	b := mustCreatePerson(t, personRepo, &models.Person{FirstName: "Devora"})

	rel := &models.Relationship{RelationType: "sister of", PersonID: a.ID, RelatedPersonID: b.ID}
	require.NoError(t, repo.Create(rel))

	require.NoError(t, repo.UpdateField(rel.ID, "relation_type", "cousin of"))
	got, err := repo.GetByID(rel.ID)
	require.NoError(t, err)
	assert.Equal(t, "cousin of", got.RelationType)
	assert.Equal(t, a.ID, got.PersonID)

	assert.ErrorIs(t, repo.UpdateField(rel.ID, "relation_type", ""), ErrInvalidValue)
	assert.ErrorIs(t, repo.UpdateField(rel.ID, "created_at", "0"), ErrInvalidField)
	assert.ErrorIs(t, repo.UpdateField(55555, "relation_type", "uncle of"), gorm.ErrRecordNotFound)
}
