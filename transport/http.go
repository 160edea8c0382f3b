package transport

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	authapp "github.com/rentconnect/rentconnect-api/application/auth"
	resourceapp "github.com/rentconnect/rentconnect-api/application/resource"
	"github.com/rentconnect/rentconnect-api/cmd/config"
	"github.com/rentconnect/rentconnect-api/constant"
	"github.com/rentconnect/rentconnect-api/model"
	validatorx "github.com/rentconnect/rentconnect-api/utils/validator"
	httpSwagger "github.com/swaggo/http-swagger"
)

type RestHandler struct {
	AuthApp     authapp.AuthApp
	ResourceApp resourceapp.ResourceApp
	preparedBy  string
}

func NewTransport(cfg *config.Config, authApp authapp.AuthApp, resourceApp resourceapp.ResourceApp) http.Handler {
	r := mux.NewRouter()

	rh := &RestHandler{
		AuthApp:     authApp,
		ResourceApp: resourceApp,
		preparedBy:  cfg.App.PreparedBy,
	}

	// Swagger UI
	r.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// Public routes
	r.HandleFunc("/login", rh.Login).Methods(http.MethodPost)
	r.HandleFunc("/signup", rh.Signup).Methods(http.MethodPost)

	// Internal routes (API-key guarded, called by the lease-expiration consumer)
	r.Handle("/internal/v1/leases/{id}/release",
		InternalMiddleware(cfg.Internal.APIKey)(http.HandlerFunc(rh.ReleaseLease))).Methods(http.MethodPost)

	// Resource routes
	r.HandleFunc("/{resource}", rh.List).Methods(http.MethodGet)
	r.HandleFunc("/{resource}/{id}", rh.Get).Methods(http.MethodGet)
	r.HandleFunc("/{resource}", rh.Create).Methods(http.MethodPost)
	r.HandleFunc("/{resource}/{id}", rh.Patch).Methods(http.MethodPatch)
	r.HandleFunc("/{resource}", rh.missingID).Methods(http.MethodPatch)
	r.HandleFunc("/{resource}/{id}", rh.Delete).Methods(http.MethodDelete)
	r.HandleFunc("/{resource}", rh.missingID).Methods(http.MethodDelete)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "URL does not exist")
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	// middleware
	r.Use(LoggingMiddleware())
	r.Use(AuthMiddleware(authApp))

	// CORS and recovery wrap the router so OPTIONS preflights, 404/405
	// fallbacks and panics are all covered.
	return RecoverMiddleware(CORSMiddleware(r))
}

// Login handler
// @Summary Login user
// @Description Authenticate with email and password and receive a bearer token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.LoginRequest true "Login Request"
// @Success 200 {object} transport.Envelope
// @Failure 401 {object} transport.Envelope
// @Router /login [post]
func (s *RestHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeEnvelope(w, s.preparedBy, nil, "failed", "Invalid request", http.StatusBadRequest)
		return
	}

	res, err := s.AuthApp.Login(ctx, &req)
	if err != nil {
		s.writeAppError(w, err)
		return
	}

	writeEnvelope(w, s.preparedBy, res, "success", "Logged in successfully", http.StatusOK)
}

// Signup handler
// @Summary Register account
// @Description Create a users row and its Landlord/Tenant detail row atomically
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.RegisterRequest true "Register Request"
// @Success 201 {object} transport.Envelope
// @Failure 400 {object} transport.Envelope
// @Failure 409 {object} transport.Envelope
// @Router /signup [post]
func (s *RestHandler) Signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	res, err := s.AuthApp.Register(ctx, &req)
	if err != nil {
		s.writeAppError(w, err)
		return
	}

	writeEnvelope(w, s.preparedBy, res, "success", "Registration successful", http.StatusCreated)
}

func (s *RestHandler) List(w http.ResponseWriter, r *http.Request) {
	entity, ok := resolveEntity(w, r)
	if !ok {
		return
	}

	payload, message, err := s.ResourceApp.Get(r.Context(), entity, nil)
	if err != nil {
		s.writeAppError(w, err)
		return
	}

	writeEnvelope(w, s.preparedBy, payload, "success", message, http.StatusOK)
}

func (s *RestHandler) Get(w http.ResponseWriter, r *http.Request) {
	entity, ok := resolveEntity(w, r)
	if !ok {
		return
	}
	id := pathID(r)

	payload, message, err := s.ResourceApp.Get(r.Context(), entity, &id)
	if err != nil {
		s.writeAppError(w, err)
		return
	}

	writeEnvelope(w, s.preparedBy, payload, "success", message, http.StatusOK)
}

func (s *RestHandler) Create(w http.ResponseWriter, r *http.Request) {
	entity, ok := resolveEntity(w, r)
	if !ok {
		return
	}

	var body map[string]any
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	payload, message, err := s.ResourceApp.Create(r.Context(), entity, body)
	if err != nil {
		s.writeAppError(w, err)
		return
	}

	writeEnvelope(w, s.preparedBy, payload, "success", message, http.StatusCreated)
}

func (s *RestHandler) Patch(w http.ResponseWriter, r *http.Request) {
	entity, ok := resolveEntity(w, r)
	if !ok {
		return
	}
	id := pathID(r)

	var body map[string]any
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	message, err := s.ResourceApp.Patch(r.Context(), entity, id, body)
	if err != nil {
		s.writeAppError(w, err)
		return
	}

	writeEnvelope(w, s.preparedBy, nil, "success", message, http.StatusOK)
}

func (s *RestHandler) Delete(w http.ResponseWriter, r *http.Request) {
	entity, ok := resolveEntity(w, r)
	if !ok {
		return
	}
	id := pathID(r)

	message, err := s.ResourceApp.Delete(r.Context(), entity, id)
	if err != nil {
		s.writeAppError(w, err)
		return
	}

	writeEnvelope(w, s.preparedBy, nil, "success", message, http.StatusOK)
}

func (s *RestHandler) ReleaseLease(w http.ResponseWriter, r *http.Request) {
	id := pathID(r)

	message, err := s.ResourceApp.ReleaseLease(r.Context(), id)
	if err != nil {
		s.writeAppError(w, err)
		return
	}

	writeEnvelope(w, s.preparedBy, nil, "success", message, http.StatusOK)
}

// missingID answers PATCH/DELETE requests that lack the id path segment.
func (s *RestHandler) missingID(w http.ResponseWriter, r *http.Request) {
	if _, ok := resolveEntity(w, r); !ok {
		return
	}
	writeError(w, http.StatusBadRequest, "ID is required")
}

func resolveEntity(w http.ResponseWriter, r *http.Request) (constant.Entity, bool) {
	entity, ok := constant.ParseEntity(mux.Vars(r)["resource"])
	if !ok {
		writeError(w, http.StatusNotFound, "Invalid endpoint")
		return "", false
	}
	return entity, true
}

// pathID parses the id segment. A non-numeric id resolves to 0, which no
// row ever has, so it falls through to the not-found paths.
func pathID(r *http.Request) uint64 {
	id, _ := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	return id
}
