package handler

import (
	"net/http"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/labstack/echo/v4"

	"github.com/soaeast/crm-api/internal/api/metrics"
	"github.com/soaeast/crm-api/internal/core/domain"
	"github.com/soaeast/crm-api/internal/core/ports"
)

// ClientHandler serves the client accounts plus their nested order, deal and
// note sub-resources.
type ClientHandler struct {
	clients ports.ClientRepository
	orders  ports.OrderService
	deals   ports.DealRepository
}

func NewClientHandler(clients ports.ClientRepository, orders ports.OrderService, deals ports.DealRepository) *ClientHandler {
	return &ClientHandler{clients: clients, orders: orders, deals: deals}
}

type createClientRequest struct {
	Name          string `json:"name" validate:"required"`
	Email         string `json:"email" validate:"required,email"`
	Industry      string `json:"industry"`
	Tier          string `json:"tier"`
	Status        string `json:"status"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	City          string `json:"city"`
	State         string `json:"state"`
	ZipCode       string `json:"zip_code"`
	ContactPerson string `json:"contact_person"`
	ContactTitle  string `json:"contact_title"`
	Website       string `json:"website"`
	Notes         string `json:"notes"`
}

type updateClientRequest struct {
	Name          *string `json:"name"`
	Email         *string `json:"email" validate:"omitempty,email"`
	Industry      *string `json:"industry"`
	Tier          *string `json:"tier"`
	Status        *string `json:"status"`
	Phone         *string `json:"phone"`
	Address       *string `json:"address"`
	City          *string `json:"city"`
	State         *string `json:"state"`
	ZipCode       *string `json:"zip_code"`
	ContactPerson *string `json:"contact_person"`
	ContactTitle  *string `json:"contact_title"`
	Website       *string `json:"website"`
	Notes         *string `json:"notes"`
}

type createNoteRequest struct {
	Content  string `json:"content" validate:"required"`
	NoteType string `json:"note_type"`
}

// Create registers a new client account.
//
// @Summary      Create a client
// @Tags         clients
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createClientRequest  true  "Client details"
// @Success      200   {object}  domain.Client
// @Failure      400   {object}  map[string]string
// @Router       /api/clients [post]
func (h *ClientHandler) Create(c echo.Context) error {
	var req createClientRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	status := req.Status
	if status == "" {
		status = "active"
	}
	client := &domain.Client{
		ID:            uuid.Must(uuid.NewV4()).String(),
		Name:          req.Name,
		Email:         req.Email,
		Industry:      req.Industry,
		Tier:          req.Tier,
		Status:        status,
		Phone:         req.Phone,
		Address:       req.Address,
		City:          req.City,
		State:         req.State,
		ZipCode:       req.ZipCode,
		ContactPerson: req.ContactPerson,
		ContactTitle:  req.ContactTitle,
		Website:       req.Website,
		Notes:         req.Notes,
		CreatedAt:     time.Now().UTC(),
	}

	if err := h.clients.Create(c.Request().Context(), client); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, client)
}

// List returns clients, optionally narrowed by status, tier, industry or a
// free-text search over name and email.
//
// @Summary      List clients
// @Tags         clients
// @Produce      json
// @Security     BearerAuth
// @Param        status    query  string  false  "Filter by status"
// @Param        tier      query  string  false  "Filter by tier"
// @Param        industry  query  string  false  "Filter by industry"
// @Param        search    query  string  false  "Search name or email"
// @Success      200  {array}  domain.Client
// @Router       /api/clients [get]
func (h *ClientHandler) List(c echo.Context) error {
	clients, err := h.clients.List(c.Request().Context(), ports.ClientFilter{
		Status:   c.QueryParam("status"),
		Tier:     c.QueryParam("tier"),
		Industry: c.QueryParam("industry"),
		Search:   c.QueryParam("search"),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, clients)
}

func (h *ClientHandler) Get(c echo.Context) error {
	client, err := h.clients.FindByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, client)
}

func (h *ClientHandler) Update(c echo.Context) error {
	var req updateClientRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	client, err := h.clients.UpdateFields(c.Request().Context(), c.Param("id"), domain.ClientPatch{
		Name:          req.Name,
		Email:         req.Email,
		Industry:      req.Industry,
		Tier:          req.Tier,
		Status:        req.Status,
		Phone:         req.Phone,
		Address:       req.Address,
		City:          req.City,
		State:         req.State,
		ZipCode:       req.ZipCode,
		ContactPerson: req.ContactPerson,
		ContactTitle:  req.ContactTitle,
		Website:       req.Website,
		Notes:         req.Notes,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, client)
}

func (h *ClientHandler) Delete(c echo.Context) error {
	if err := h.clients.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	metrics.EntitiesDeletedTotal.WithLabelValues("clients").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "Client deleted"})
}

// Orders lists the orders belonging to one client.
func (h *ClientHandler) Orders(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")
	if _, err := h.clients.FindByID(ctx, id); err != nil {
		return err
	}
	orders, err := h.orders.List(ctx, ports.OrderFilter{ClientID: id})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, orders)
}

// Deals lists the pipeline deals linked to one client.
func (h *ClientHandler) Deals(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")
	if _, err := h.clients.FindByID(ctx, id); err != nil {
		return err
	}
	deals, err := h.deals.List(ctx, ports.DealFilter{ClientID: id})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, deals)
}

// Notes lists the activity-log entries for one client, newest first.
func (h *ClientHandler) Notes(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")
	if _, err := h.clients.FindByID(ctx, id); err != nil {
		return err
	}
	notes, err := h.clients.ListNotes(ctx, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, notes)
}

// CreateNote appends an activity-log entry attributed to the caller.
func (h *ClientHandler) CreateNote(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req createNoteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx := c.Request().Context()
	id := c.Param("id")
	if _, err := h.clients.FindByID(ctx, id); err != nil {
		return err
	}

	noteType := req.NoteType
	if noteType == "" {
		noteType = "general"
	}
	note := &domain.ClientNote{
		ID:            uuid.Must(uuid.NewV4()).String(),
		ClientID:      id,
		Content:       req.Content,
		NoteType:      noteType,
		CreatedBy:     user.ID,
		CreatedByName: user.Name,
		CreatedAt:     time.Now().UTC(),
	}
	if err := h.clients.CreateNote(ctx, note); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, note)
}

func (h *ClientHandler) DeleteNote(c echo.Context) error {
	if err := h.clients.DeleteNote(c.Request().Context(), c.Param("id"), c.Param("noteId")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Note deleted"})
}
