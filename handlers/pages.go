package handlers

import (
	"errors"
	"log"
	"net/http"
	"sort"
	"strconv"

	"github.com/facette/natsort"
	"github.com/go-chi/chi/v5"
	"github.com/shulware/gabbaibackend/models"
	"github.com/shulware/gabbaibackend/repository"
	"github.com/shulware/gabbaibackend/web"
	"gorm.io/gorm"
)

// PageHandler renders the HTML list and detail pages.
type PageHandler struct {
	People        repository.PersonRepositoryInterface
	Aliyot        repository.AliyahRepositoryInterface
	Relationships repository.RelationshipRepositoryInterface
}

func renderPage(w http.ResponseWriter, name string, data interface{}) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := web.Templates.ExecuteTemplate(w, name, data); err != nil {
		log.Printf("Error rendering template %s: %v", name, err)
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
	}
}

// Home renders the landing page with a people and aliyot summary.
func (p *PageHandler) Home(w http.ResponseWriter, r *http.Request) {
	people, err := p.People.ListAll()
	if err != nil {
		log.Printf("Error listing people for home page: %v", err)
		http.Error(w, "Failed to load page", http.StatusInternalServerError)
		return
	}
	aliyot, err := p.Aliyot.ListAll()
	if err != nil {
		log.Printf("Error listing aliyot for home page: %v", err)
		http.Error(w, "Failed to load page", http.StatusInternalServerError)
		return
	}
	sortAliyot(aliyot)

	renderPage(w, "index.html", map[string]interface{}{
		"People": people,
		"Aliyot": aliyot,
	})
}

// PeoplePage renders the people list with the creation form.
func (p *PageHandler) PeoplePage(w http.ResponseWriter, r *http.Request) {
	people, err := p.People.ListAll()
	if err != nil {
		log.Printf("Error listing people: %v", err)
		http.Error(w, "Failed to load page", http.StatusInternalServerError)
		return
	}

	renderPage(w, "people.html", map[string]interface{}{
		"People": people,
		"Tribes": models.Tribes,
	})
}

// PersonPage renders one person with their aliyot and both directions
// of their family relations.
func (p *PageHandler) PersonPage(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "person_id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		http.Error(w, "Invalid person ID format", http.StatusBadRequest)
		return
	}

	person, err := p.People.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "Person not found", http.StatusNotFound)
		} else {
			log.Printf("Error getting person %d: %v", id, err)
			http.Error(w, "Failed to load page", http.StatusInternalServerError)
		}
		return
	}

	outgoing, incoming, err := p.Relationships.ListByPersonID(uint(id))
	if err != nil {
		log.Printf("Error listing relations for person %d: %v", id, err)
		http.Error(w, "Failed to load page", http.StatusInternalServerError)
		return
	}

	renderPage(w, "person.html", map[string]interface{}{
		"Person":   person,
		"Outgoing": outgoing,
		"Incoming": incoming,
	})
}

// AliyotPage renders the aliyot list, ordered by date and then by the
// ordinal using natural sort so Hebrew-letter numerals line up, with
// the creation form and its people dropdown.
func (p *PageHandler) AliyotPage(w http.ResponseWriter, r *http.Request) {
	aliyot, err := p.Aliyot.ListAll()
	if err != nil {
		log.Printf("Error listing aliyot: %v", err)
		http.Error(w, "Failed to load page", http.StatusInternalServerError)
		return
	}
	sortAliyot(aliyot)

	people, err := p.People.ListAll()
	if err != nil {
		log.Printf("Error listing people for aliyot page: %v", err)
		http.Error(w, "Failed to load page", http.StatusInternalServerError)
		return
	}

	renderPage(w, "aliyot.html", map[string]interface{}{
		"Aliyot": aliyot,
		"People": people,
	})
}

// RelationshipsPage renders the relationships list with the creation form.
func (p *PageHandler) RelationshipsPage(w http.ResponseWriter, r *http.Request) {
	rels, err := p.Relationships.ListAll()
	if err != nil {
		log.Printf("Error listing relationships: %v", err)
		http.Error(w, "Failed to load page", http.StatusInternalServerError)
		return
	}

	people, err := p.People.ListAll()
	if err != nil {
		log.Printf("Error listing people for relationships page: %v", err)
		http.Error(w, "Failed to load page", http.StatusInternalServerError)
		return
	}

	renderPage(w, "relationships.html", map[string]interface{}{
		"Relationships": rels,
		"People":        people,
	})
}

// sortAliyot orders by date, then naturally by ordinal within a date.
func sortAliyot(aliyot []models.Aliyah) {
	sort.SliceStable(aliyot, func(i, j int) bool {
		if !aliyot[i].Date.Equal(aliyot[j].Date) {
			return aliyot[i].Date.Before(aliyot[j].Date)
		}
		return natsort.Compare(aliyot[i].AliyahNumber, aliyot[j].AliyahNumber)
	})
}
