package httpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/platefit/platefit/internal/auth"
	"github.com/platefit/platefit/internal/blob"
	"github.com/platefit/platefit/internal/catalog"
	"github.com/platefit/platefit/internal/config"
	"github.com/platefit/platefit/internal/diet"
	"github.com/platefit/platefit/internal/mealplans"
	"github.com/platefit/platefit/internal/profiles"
	"github.com/platefit/platefit/internal/reports"
	"github.com/platefit/platefit/internal/storage"
	"github.com/platefit/platefit/internal/storage/memory"
	"github.com/platefit/platefit/internal/storage/postgres"
	"github.com/platefit/platefit/internal/targets"
)

// Server wires storage, the food catalog, the blob store and all HTTP routes.
type Server struct {
	config         *config.Config
	mux            *http.ServeMux
	storage        storage.Storage
	blobStore      blob.Store
	authMiddleware *auth.Middleware
}

// New creates a server with storage initialized and routes registered.
func New(cfg *config.Config) *Server {
	s := &Server{
		config: cfg,
		mux:    http.NewServeMux(),
	}

	s.initStorage()
	s.initBlobStore()
	s.loadCatalog()
	s.routes()
	return s
}

// initStorage picks the storage backend (Memory or Postgres).
func (s *Server) initStorage() {
	if s.config.DatabaseURL == "" {
		log.Println("INFO storage: using in-memory storage")
		s.storage = memory.New()
		return
	}

	log.Println("INFO storage: connecting to PostgreSQL")
	ctx := context.Background()
	pgStorage, err := postgres.New(ctx, s.config.DatabaseURL)
	if err != nil {
		log.Printf("ERROR storage: PostgreSQL connection failed: %v", err)
		log.Println("INFO storage: falling back to in-memory storage")
		s.storage = memory.New()
		return
	}
	log.Println("INFO storage: PostgreSQL connected")
	s.storage = pgStorage
}

// initBlobStore builds the blob store used for reports and catalog fetches.
// In local mode the store is nil and reports are kept in memory.
func (s *Server) initBlobStore() {
	blobCfg := s.config.Blob
	blobCfg.Mode = s.config.Blob.EffectiveReportsMode()

	store, mode, err := blob.NewBlobStore(blobCfg, log.Default())
	if err != nil {
		log.Fatalf("FATAL blob: failed to initialize store: %v", err)
	}
	log.Printf("INFO blob: reports blob mode: %s", mode)
	s.blobStore = store
}

// loadCatalog seeds the foods storage from the configured catalog source.
// Without an explicit source, foods already present in storage are kept.
func (s *Server) loadCatalog() {
	ctx := context.Background()
	foodsStorage := s.getFoodsStorage()

	explicitSource := s.config.CatalogPath != "" || s.config.CatalogS3Key != ""
	if !explicitSource {
		count, err := foodsStorage.CountFoods(ctx)
		if err != nil {
			log.Printf("ERROR catalog: count foods: %v", err)
		}
		if count > 0 {
			log.Printf("INFO catalog: storage already holds %d foods, skipping seed", count)
			return
		}
	}

	foods, err := catalog.Load(ctx, catalog.LoadOptions{
		Path:   s.config.CatalogPath,
		S3Key:  s.config.CatalogS3Key,
		Blob:   s.blobStore,
		Logger: log.Default(),
	})
	if err != nil {
		log.Fatalf("FATAL catalog: %v", err)
	}

	if err := foodsStorage.ReplaceFoods(ctx, foods); err != nil {
		log.Fatalf("FATAL catalog: seed foods storage: %v", err)
	}
	log.Printf("INFO catalog: loaded %d foods", len(foods))
}

// routes registers all HTTP routes.
func (s *Server) routes() {
	// Health check (no auth required)
	s.mux.HandleFunc("/healthz", s.handleHealthz)

	// Auth API (no auth required)
	authService := auth.NewService(s.config)
	authHandlers := auth.NewHandlers(authService)
	s.authMiddleware = auth.NewMiddleware(s.config, authService)

	// POST /v1/auth/dev-login - local dev token
	s.mux.HandleFunc("POST /v1/auth/dev-login", authHandlers.HandleDevLogin)

	// Profiles API
	profileService := profiles.NewService(s.storage)

	// GET /v1/profiles - list profiles of the current user
	s.mux.HandleFunc("GET /v1/profiles", profiles.HandleList(profileService))

	// POST /v1/profiles - create a profile
	s.mux.HandleFunc("POST /v1/profiles", profiles.HandleCreate(profileService))

	// GET /v1/profiles/{id} - fetch one profile
	s.mux.HandleFunc("GET /v1/profiles/{id}", profiles.HandleGet(profileService))

	// PATCH /v1/profiles/{id} - partial update
	s.mux.HandleFunc("PATCH /v1/profiles/{id}", profiles.HandleUpdate(profileService))

	// DELETE /v1/profiles/{id} - delete a profile
	s.mux.HandleFunc("DELETE /v1/profiles/{id}", profiles.HandleDelete(profileService))

	// Nutrition targets API
	targetService := targets.NewService(s.getNutritionTargetsStorage(), s.storage)

	// POST /v1/targets/compute - compute and store targets for a profile
	s.mux.HandleFunc("POST /v1/targets/compute", targets.HandleCompute(targetService))

	// GET /v1/targets - fetch stored targets for a profile
	s.mux.HandleFunc("GET /v1/targets", targets.HandleGet(targetService))

	// Food catalog / diets API
	dietService := diet.NewService(s.getFoodsStorage())

	// GET /v1/foods - list foods, optionally filtered by diet
	s.mux.HandleFunc("GET /v1/foods", diet.HandleListFoods(dietService))

	// GET /v1/foods/{id}/diets - diets a food is compatible with
	s.mux.HandleFunc("GET /v1/foods/{id}/diets", diet.HandleFoodDiets(dietService))

	// Meal plans API
	planService := mealplans.NewService(
		s.getMealPlansStorage(),
		s.getFoodsStorage(),
		s.getNutritionTargetsStorage(),
		s.storage,
	)

	// POST /v1/plans/generate - build a balanced day plan
	s.mux.HandleFunc("POST /v1/plans/generate", mealplans.HandleGenerate(planService))

	// POST /v1/plans/regenerate-meal - rebuild a single meal in the active plan
	s.mux.HandleFunc("POST /v1/plans/regenerate-meal", mealplans.HandleRegenerateMeal(planService))

	// GET /v1/plans/active - fetch the active plan for a profile
	s.mux.HandleFunc("GET /v1/plans/active", mealplans.HandleGetActive(planService))

	// DELETE /v1/plans/active - drop the active plan for a profile
	s.mux.HandleFunc("DELETE /v1/plans/active", mealplans.HandleDeleteActive(planService))

	// Reports API
	reportService := reports.NewService(
		planService,
		s.storage,
		s.blobStore,
		s.config.Blob.S3.PresignTTLSeconds,
		s.config.Blob.S3.PublicBaseURL,
		s.config.Blob.S3.PreferPublicURL,
	)
	reportHandlers := reports.NewHandlers(reportService)

	// POST /v1/reports/plan - render the active plan as a PDF
	s.mux.HandleFunc("POST /v1/reports/plan", reportHandlers.HandleCreatePlanReport)

	// GET /v1/reports/{id}/download - download a locally stored report
	s.mux.HandleFunc("GET /v1/reports/{id}/download", reportHandlers.HandleDownload)
}

// getNutritionTargetsStorage returns nutrition targets storage based on storage type.
func (s *Server) getNutritionTargetsStorage() storage.NutritionTargetsStorage {
	switch st := s.storage.(type) {
	case *memory.MemoryStorage:
		return st.GetNutritionTargetsStorage()
	case *postgres.PostgresStorage:
		return st.GetNutritionTargetsStorage()
	default:
		panic("unsupported storage type")
	}
}

// getMealPlansStorage returns meal plans storage based on storage type.
func (s *Server) getMealPlansStorage() storage.MealPlansStorage {
	switch st := s.storage.(type) {
	case *memory.MemoryStorage:
		return st.GetMealPlansStorage()
	case *postgres.PostgresStorage:
		return st.GetMealPlansStorage()
	default:
		panic("unsupported storage type")
	}
}

// getFoodsStorage returns foods storage based on storage type.
func (s *Server) getFoodsStorage() storage.FoodsStorage {
	switch st := s.storage.(type) {
	case *memory.MemoryStorage:
		return st.GetFoodsStorage()
	case *postgres.PostgresStorage:
		return st.GetFoodsStorage()
	default:
		panic("unsupported storage type")
	}
}

// handleHealthz reports server status.
func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{
		"status": "ok",
	})
}

// Start runs the HTTP server until it fails.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.config.Port)

	// Build middleware chain (outermost first): CORS -> Rate Limit -> Auth -> Router
	var handler http.Handler = s.mux
	if s.authMiddleware != nil && s.config.AuthMode != "none" {
		if s.config.AuthRequired {
			handler = s.authMiddleware.RequireAuth(handler)
		} else {
			handler = s.authMiddleware.OptionalAuth(handler)
		}
	}
	handler = RateLimitMiddleware(s.config, handler)
	handler = CORSMiddleware(s.config, handler)

	log.Printf("INFO server: listening on http://localhost%s", addr)
	log.Printf("INFO server: health check at http://localhost%s/healthz", addr)

	return http.ListenAndServe(addr, handler)
}

// Close releases storage resources.
func (s *Server) Close() error {
	if s.storage != nil {
		return s.storage.Close()
	}
	return nil
}
