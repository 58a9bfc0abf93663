package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"github.com/shulware/gabbaibackend/config"
	"github.com/shulware/gabbaibackend/database"
	"github.com/shulware/gabbaibackend/handlers"
	"github.com/shulware/gabbaibackend/hebcal"
	"github.com/shulware/gabbaibackend/repository"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Printf("Info: No .env file found or error loading: %v", err)
	}
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: Failed to load configuration: %v", err)
	}

	db, err := database.InitGormDB(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize database: %v", err)
	}
	if err := database.AutoMigrateModels(db); err != nil {
		log.Fatalf("FATAL: Failed to migrate database: %v", err)
	}

	personRepo := repository.NewPersonRepository(db)
	aliyahRepo := repository.NewAliyahRepository(db)
	relationshipRepo := repository.NewRelationshipRepository(db)

	hebcalClient := hebcal.NewClient(cfg.HebcalBaseURL, time.Duration(cfg.HebcalTimeoutSecs)*time.Second)
	log.Printf("Using Hebcal service at %s (timeout %ds)", cfg.HebcalBaseURL, cfg.HebcalTimeoutSecs)

	r := chi.NewRouter()

	corsOptions := cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	corsHandler := cors.New(corsOptions)

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(corsHandler.Handler)

	pageHandler := &handlers.PageHandler{People: personRepo, Aliyot: aliyahRepo, Relationships: relationshipRepo}
	personHandler := &handlers.PersonHandler{Repo: personRepo}
	aliyahHandler := &handlers.AliyahHandler{Repo: aliyahRepo}
	relationshipHandler := &handlers.RelationshipHandler{Repo: relationshipRepo}
	calendarHandler := &handlers.CalendarHandler{Client: hebcalClient}

	r.Get("/", pageHandler.Home)

	r.Route("/people", func(r chi.Router) {
		r.Get("/", pageHandler.PeoplePage)
		r.Post("/", personHandler.CreatePerson)
		r.Get("/export", personHandler.ExportPeople)
		r.Post("/import", personHandler.ImportPeople)
		r.Route("/{person_id}", func(r chi.Router) {
			r.Get("/", pageHandler.PersonPage)
			r.Post("/field", personHandler.UpdatePersonField)
		})
	})

	r.Route("/aliyot", func(r chi.Router) {
		r.Get("/", pageHandler.AliyotPage)
		r.Post("/", aliyahHandler.CreateAliyah)
		r.Get("/export", aliyahHandler.ExportAliyot)
		r.Post("/{aliyah_id}/field", aliyahHandler.UpdateAliyahField)
	})

	r.Route("/relationships", func(r chi.Router) {
		r.Get("/", pageHandler.RelationshipsPage)
		r.Post("/", relationshipHandler.CreateRelationship)
		r.Post("/{relationship_id}/field", relationshipHandler.UpdateRelationshipField)
	})

	r.Get("/calendar/leyning", calendarHandler.Leyning)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	serverAddr := ":" + port
	log.Printf("Server listening on %s", serverAddr)
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
	log.Fatal(server.ListenAndServe())
}
