package handlers

import (
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shulware/gabbaibackend/models"
)

// validate checks the creation payloads. Field names in error messages
// come from the form tag so they match what the client submitted.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return v
}

// PersonCreatePayload is the shape of a person creation form.
type PersonCreatePayload struct {
	FirstName        string `form:"first_name" validate:"required"`
	LastName         string `form:"last_name"`
	HebrewName       string `form:"hebrew_name"`
	FatherHebrewName string `form:"father_hebrew_name"`
	Tribe            string `form:"tribe" validate:"omitempty,oneof=כהן לוי ישראל"`
	Notes            string `form:"notes"`
}

// ToModel builds the Person row; the repository applies the tribe default.
func (p PersonCreatePayload) ToModel() *models.Person {
	return &models.Person{
		FirstName:        p.FirstName,
		LastName:         p.LastName,
		HebrewName:       p.HebrewName,
		FatherHebrewName: p.FatherHebrewName,
		Tribe:            p.Tribe,
		Notes:            p.Notes,
	}
}

// AliyahCreatePayload is the shape of an aliyah creation form. Date and
// person_id arrive as text and are validated before conversion.
type AliyahCreatePayload struct {
	Date         string `form:"date" validate:"required,datetime=2006-01-02"`
	Parsha       string `form:"parsha"`
	Holiday      string `form:"holiday"`
	Service      string `form:"service" validate:"required"`
	AliyahNumber string `form:"aliyah_number" validate:"required"`
	Reason       string `form:"reason"`
	PersonID     string `form:"person_id" validate:"required,number"`
}

func (p AliyahCreatePayload) ToModel() (*models.Aliyah, error) {
	date, err := time.Parse(models.DateLayout, p.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", p.Date, err)
	}
	personID, err := strconv.ParseUint(p.PersonID, 10, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid person_id %q: %w", p.PersonID, err)
	}
	return &models.Aliyah{
		Date:         date,
		Parsha:       p.Parsha,
		Holiday:      p.Holiday,
		Service:      p.Service,
		AliyahNumber: p.AliyahNumber,
		Reason:       p.Reason,
		PersonID:     uint(personID),
	}, nil
}

// RelationshipCreatePayload is the shape of a relationship creation form.
type RelationshipCreatePayload struct {
	RelationType    string `form:"relation_type" validate:"required"`
	PersonID        string `form:"person_id" validate:"required,number"`
	RelatedPersonID string `form:"related_person_id" validate:"required,number"`
}

func (p RelationshipCreatePayload) ToModel() (*models.Relationship, error) {
	personID, err := strconv.ParseUint(p.PersonID, 10, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid person_id %q: %w", p.PersonID, err)
	}
	relatedID, err := strconv.ParseUint(p.RelatedPersonID, 10, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid related_person_id %q: %w", p.RelatedPersonID, err)
	}
	return &models.Relationship{
		RelationType:    p.RelationType,
		PersonID:        uint(personID),
		RelatedPersonID: uint(relatedID),
	}, nil
}

// validationDetails flattens validator errors into one message per field.
func validationDetails(err error) []string {
	if errs, ok := err.(validator.ValidationErrors); ok {
		details := make([]string, 0, len(errs))
		for _, fe := range errs {
			switch fe.Tag() {
			case "required":
				details = append(details, fmt.Sprintf("missing required field: %s", fe.Field()))
			case "datetime":
				details = append(details, fmt.Sprintf("field %s must be a date in YYYY-MM-DD format", fe.Field()))
			case "number":
				details = append(details, fmt.Sprintf("field %s must be an integer", fe.Field()))
			case "oneof":
				details = append(details, fmt.Sprintf("field %s must be one of: %s", fe.Field(), strings.Join(models.Tribes, ", ")))
			default:
				details = append(details, fmt.Sprintf("invalid field: %s", fe.Field()))
			}
		}
		return details
	}
	return []string{err.Error()}
}

// checkPayload runs the validator and, on failure, writes the 400
// response itself. Returns false when the request has been handled.
func checkPayload(w http.ResponseWriter, payload interface{}) bool {
	if err := validate.Struct(payload); err != nil {
		WriteValidationError(w, validationDetails(err))
		return false
	}
	return true
}
