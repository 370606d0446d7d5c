package rest

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/openbarangay/registry/internal/api/middleware"
	"github.com/openbarangay/registry/internal/domain"
	"github.com/openbarangay/registry/internal/reference"
	"github.com/openbarangay/registry/internal/registrar"
	"github.com/openbarangay/registry/internal/store"
	"github.com/openbarangay/registry/internal/vault"
)

// Handler defines the interface for REST API handlers
// This interface allows for easy mocking and testing
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// CreateHousehold registers a household and assigns its code
	// POST /api/v1/households
	CreateHousehold(c *gin.Context)

	// GetHousehold retrieves a single household by external ID
	// GET /api/v1/households/:id
	GetHousehold(c *gin.Context)

	// UpdateHousehold mutates a household's income or head
	// PATCH /api/v1/households/:id
	UpdateHousehold(c *gin.Context)

	// SearchHouseholds lists households in scope
	// GET /api/v1/households?q=<term>&limit=<limit>&offset=<offset>
	SearchHouseholds(c *gin.Context)

	// DeactivateHousehold retires a household
	// DELETE /api/v1/households/:id
	DeactivateHousehold(c *gin.Context)

	// AddMember attaches a resident to a household
	// POST /api/v1/households/:id/members
	AddMember(c *gin.Context)

	// RemoveMember detaches a resident from a household
	// DELETE /api/v1/households/:id/members/:resident_id
	RemoveMember(c *gin.Context)

	// CreateResident registers a resident
	// POST /api/v1/residents
	CreateResident(c *gin.Context)

	// GetResident retrieves a single resident by external ID
	// GET /api/v1/residents/:id?mode=full|masked
	GetResident(c *gin.Context)

	// UpdateResident replaces a resident's full payload
	// PUT /api/v1/residents/:id
	UpdateResident(c *gin.Context)

	// FindResidents searches residents by exact value on a hash-searchable field
	// GET /api/v1/residents?field=<field>&value=<value>
	FindResidents(c *gin.Context)

	// DeactivateResident retires a resident and ends their membership
	// DELETE /api/v1/residents/:id
	DeactivateResident(c *gin.Context)

	// GetChanges reads the change journal within scope
	// GET /api/v1/changes?subject_type=<type>&subject_id=<id>&limit=<limit>&offset=<offset>
	GetChanges(c *gin.Context)

	// ResolveGeo expands a geography code into its name path
	// GET /api/v1/geo/:code
	ResolveGeo(c *gin.Context)

	// SearchGeo finds geography nodes by name
	// GET /api/v1/geo?q=<term>&level=<level>&parent=<code>&limit=<limit>&offset=<offset>
	SearchGeo(c *gin.Context)

	// ResolveOccupation expands an occupation code into its name path and cross-references
	// GET /api/v1/occupations/:code
	ResolveOccupation(c *gin.Context)

	// SearchOccupation finds occupation groups by name or position title
	// GET /api/v1/occupations?q=<term>&limit=<limit>&offset=<offset>
	SearchOccupation(c *gin.Context)

	// RotateKey provisions the next encryption key version (national scope only)
	// POST /api/v1/admin/keys/rotate
	RotateKey(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	debug     bool
	registrar registrar.Service
	reference reference.Service
	vault     vault.Vault
}

// NewHandler creates a new REST API handler
func NewHandler(debug bool, reg registrar.Service, ref reference.Service, v vault.Vault) Handler {
	return &handler{
		debug:     debug,
		registrar: reg,
		reference: ref,
		vault:     v,
	}
}

// principal pulls the authenticated principal injected by the auth middleware.
// Routes registered without the middleware would hit the zero value, which
// fails every scope check, so this aborts loudly instead.
func principal(c *gin.Context) (domain.Principal, bool) {
	p, ok := middleware.PrincipalFromContext(c)
	if !ok {
		respondInternalError(c, fmt.Errorf("no principal in request context"), "Request is not authenticated")
		return domain.Principal{}, false
	}
	return p, true
}

// CreateHousehold registers a household and assigns its code
func (h *handler) CreateHousehold(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	var req CreateHouseholdRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}
	if err := req.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	result, err := h.registrar.CreateHousehold(c.Request.Context(), p, req.ToInput())
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

// GetHousehold retrieves a single household by external ID
func (h *handler) GetHousehold(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	id := c.Param("id")
	if id == "" {
		respondBadRequest(c, "Household ID is required")
		return
	}

	view, err := h.registrar.GetHousehold(c.Request.Context(), p, id)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// UpdateHousehold mutates a household's income or head
func (h *handler) UpdateHousehold(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	id := c.Param("id")
	if id == "" {
		respondBadRequest(c, "Household ID is required")
		return
	}

	var req UpdateHouseholdRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}
	if err := req.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	result, err := h.registrar.UpdateHousehold(c.Request.Context(), p, id, req.ToInput())
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// SearchHouseholds lists households in scope
func (h *handler) SearchHouseholds(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	params, err := ParsePageParams(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}
	term := c.Query("q")

	views, total, err := h.registrar.SearchHouseholds(c.Request.Context(), p, term, params.Limit, params.Offset)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, HouseholdListResponse{
		Households: views,
		Total:      total,
		Limit:      params.Limit,
		Offset:     params.Offset,
	})
}

// DeactivateHousehold retires a household
func (h *handler) DeactivateHousehold(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	id := c.Param("id")
	if id == "" {
		respondBadRequest(c, "Household ID is required")
		return
	}

	if err := h.registrar.DeactivateHousehold(c.Request.Context(), p, id); err != nil {
		respondDomainError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// AddMember attaches a resident to a household
func (h *handler) AddMember(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	id := c.Param("id")
	if id == "" {
		respondBadRequest(c, "Household ID is required")
		return
	}

	var req AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}
	if err := req.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	result, err := h.registrar.AddMember(c.Request.Context(), p, req.ToInput(id))
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// RemoveMember detaches a resident from a household
func (h *handler) RemoveMember(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	householdID := c.Param("id")
	residentID := c.Param("resident_id")
	if householdID == "" || residentID == "" {
		respondBadRequest(c, "Household ID and resident ID are required")
		return
	}

	result, err := h.registrar.RemoveMember(c.Request.Context(), p, householdID, residentID)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// CreateResident registers a resident
func (h *handler) CreateResident(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	var req ResidentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}
	if err := req.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	result, err := h.registrar.CreateResident(c.Request.Context(), p, req.ToInput())
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

// GetResident retrieves a single resident by external ID
func (h *handler) GetResident(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	id := c.Param("id")
	if id == "" {
		respondBadRequest(c, "Resident ID is required")
		return
	}

	mode := domain.ReadMode(c.DefaultQuery("mode", string(domain.ReadModeMasked)))

	view, err := h.registrar.GetResident(c.Request.Context(), p, id, mode)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// UpdateResident replaces a resident's full payload
func (h *handler) UpdateResident(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	id := c.Param("id")
	if id == "" {
		respondBadRequest(c, "Resident ID is required")
		return
	}

	var req ResidentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}
	if err := req.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	result, err := h.registrar.UpdateResident(c.Request.Context(), p, id, req.ToInput())
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// FindResidents searches residents by exact value on a hash-searchable field
func (h *handler) FindResidents(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	field := c.Query("field")
	value := c.Query("value")
	if field == "" || value == "" {
		respondValidationError(c, "field and value query parameters are required")
		return
	}

	views, err := h.registrar.FindResidents(c.Request.Context(), p, field, value)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, ResidentListResponse{Residents: views})
}

// DeactivateResident retires a resident and ends their membership
func (h *handler) DeactivateResident(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	id := c.Param("id")
	if id == "" {
		respondBadRequest(c, "Resident ID is required")
		return
	}

	if err := h.registrar.DeactivateResident(c.Request.Context(), p, id); err != nil {
		respondDomainError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// GetChanges reads the change journal within scope
func (h *handler) GetChanges(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	filter, err := ParseChangesQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	changes, total, err := h.registrar.GetChanges(c.Request.Context(), p, *filter)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, ChangesResponse{
		Changes: changes,
		Total:   total,
		Limit:   filter.Limit,
		Offset:  filter.Offset,
	})
}

// ResolveGeo expands a geography code into its name path
func (h *handler) ResolveGeo(c *gin.Context) {
	code := domain.GeoCode(c.Param("code"))
	if !code.Valid() {
		respondBadRequest(c, "Invalid geography code")
		return
	}

	path, err := h.reference.ResolveGeo(c.Request.Context(), code)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, GeoResolveResponse{
		Code: string(code),
		Path: path,
	})
}

// SearchGeo finds geography nodes by name
func (h *handler) SearchGeo(c *gin.Context) {
	filter, err := ParseGeoSearchQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	nodes, total, err := h.reference.SearchGeo(c.Request.Context(), *filter)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	views := make([]GeoNodeView, 0, len(nodes))
	for i := range nodes {
		views = append(views, geoNodeView(&nodes[i]))
	}

	c.JSON(http.StatusOK, GeoSearchResponse{
		Nodes:  views,
		Total:  total,
		Limit:  filter.Limit,
		Offset: filter.Offset,
	})
}

// ResolveOccupation expands an occupation code into its name path and
// cross-references
func (h *handler) ResolveOccupation(c *gin.Context) {
	code := domain.OccupationCode(c.Param("code"))
	if !code.Valid() {
		respondBadRequest(c, "Invalid occupation code")
		return
	}

	path, err := h.reference.ResolveOccupation(c.Request.Context(), code)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	crossRefs, err := h.reference.OccupationCrossRefs(c.Request.Context(), code)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, OccupationResolveResponse{
		Code:      string(code),
		Path:      path,
		CrossRefs: crossRefs,
	})
}

// SearchOccupation finds occupation groups by name or position title
func (h *handler) SearchOccupation(c *gin.Context) {
	params, err := ParsePageParams(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	filter := store.OccupationSearchFilter{
		Term:   c.Query("q"),
		Limit:  params.Limit,
		Offset: params.Offset,
	}

	matches, total, err := h.reference.SearchOccupation(c.Request.Context(), filter)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, OccupationSearchResponse{
		Matches: matches,
		Total:   total,
		Limit:   filter.Limit,
		Offset:  filter.Offset,
	})
}

// RotateKey provisions the next encryption key version. Only a national-scope
// principal may rotate; narrower scopes get the same not-found answer as any
// other out-of-jurisdiction request.
func (h *handler) RotateKey(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	if p.Scope.Level != domain.ScopeLevelNational {
		respondNotFound(c, "Record not found")
		return
	}

	version, err := h.vault.Rotate(c.Request.Context())
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, RotateKeyResponse{ActiveVersion: version})
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, HealthCheckResponse{Status: "ok"})
}
