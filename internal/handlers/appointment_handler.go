package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/urbanbarber/api/internal/httperr"
	"github.com/urbanbarber/api/internal/httpresp"
	ucAppointment "github.com/urbanbarber/api/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	create   *ucAppointment.Create
	list     *ucAppointment.List
	get      *ucAppointment.Get
	del      *ucAppointment.Delete
	markPaid *ucAppointment.MarkPaid
}

func NewAppointmentHandler(
	create *ucAppointment.Create,
	list *ucAppointment.List,
	get *ucAppointment.Get,
	del *ucAppointment.Delete,
	markPaid *ucAppointment.MarkPaid,
) *AppointmentHandler {
	return &AppointmentHandler{
		create:   create,
		list:     list,
		get:      get,
		del:      del,
		markPaid: markPaid,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	// Walk-in bundle, required when the request is anonymous and no
	// user_id is given.
	UserID *uint  `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`

	BarberID  uint   `json:"barber_id" binding:"required"`
	ServiceID uint   `json:"service_id" binding:"required"`
	Date      string `json:"date" binding:"required"`
	Time      string `json:"time" binding:"required"`
	Notes     string `json:"notes"`
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	owner := resolveOwnerRef(c, &req)

	ap, err := h.create.Execute(c.Request.Context(), ucAppointment.CreateInput{
		Owner:     owner,
		BarberID:  req.BarberID,
		ServiceID: req.ServiceID,
		Date:      req.Date,
		Time:      req.Time,
		Notes:     req.Notes,
	})
	if err != nil {
		respondBusiness(c, err)
		return
	}

	httpresp.Created(c, gin.H{
		"message":        "Cita creada exitosamente.",
		"appointment_id": ap.ID,
	})
}

// resolveOwnerRef decides who owns the new appointment: authenticated
// callers always book as themselves; anonymous callers may name an
// existing user or supply a walk-in bundle.
func resolveOwnerRef(c *gin.Context, req *CreateAppointmentRequest) ucAppointment.OwnerRef {
	if actor, ok := actorFromContext(c); ok {
		return ucAppointment.OwnerRef{
			Kind:   ucAppointment.OwnerExisting,
			UserID: actor.UserID,
		}
	}

	if req.UserID != nil && *req.UserID != 0 {
		return ucAppointment.OwnerRef{
			Kind:   ucAppointment.OwnerExisting,
			UserID: *req.UserID,
		}
	}

	return ucAppointment.OwnerRef{
		Kind: ucAppointment.OwnerWalkIn,
		WalkIn: ucAppointment.WalkIn{
			Name:  req.Name,
			Phone: req.Phone,
			Email: req.Email,
		},
	}
}

// ======================================================
// READ
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		httperr.Unauthorized(c, "invalid_token", "No autenticado.")
		return
	}

	views, err := h.list.Execute(c.Request.Context(), actor)
	if err != nil {
		respondBusiness(c, err)
		return
	}

	httpresp.List(c, views)
}

func (h *AppointmentHandler) Get(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		httperr.Unauthorized(c, "invalid_token", "No autenticado.")
		return
	}

	id, err := parseID(c)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	view, err := h.get.Execute(c.Request.Context(), actor, id)
	if err != nil {
		respondBusiness(c, err)
		return
	}

	httpresp.OK(c, view)
}

// ======================================================
// MUTATIONS
// ======================================================

func (h *AppointmentHandler) Delete(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		httperr.Unauthorized(c, "invalid_token", "No autenticado.")
		return
	}

	id, err := parseID(c)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	if err := h.del.Execute(c.Request.Context(), actor, id); err != nil {
		respondBusiness(c, err)
		return
	}

	httpresp.OK(c, gin.H{"message": "Cita eliminada exitosamente."})
}

func (h *AppointmentHandler) MarkPaid(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		httperr.Unauthorized(c, "invalid_token", "No autenticado.")
		return
	}

	id, err := parseID(c)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	ap, err := h.markPaid.Execute(c.Request.Context(), actor, id)
	if err != nil {
		respondBusiness(c, err)
		return
	}

	httpresp.OK(c, gin.H{
		"message": "Cita marcada como pagada.",
		"status":  ap.Status,
		"paid":    ap.Paid,
	})
}

func parseID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
