package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	domain "github.com/urbanbarber/api/internal/domain/appointment"
	"github.com/urbanbarber/api/internal/httperr"
	"github.com/urbanbarber/api/internal/middleware"
)

var businessMessages = map[string]string{
	"username_taken":           "El username ya está registrado.",
	"email_taken":              "El correo ya está registrado.",
	"phone_taken":              "El celular ya está registrado.",
	"identity_conflict":        "Los datos de identidad ya están registrados.",
	"user_not_found":           "Usuario no encontrado.",
	"barber_unavailable":       "Barbero no disponible.",
	"service_unavailable":      "Servicio no disponible.",
	"invalid_date":             "Fecha inválida.",
	"invalid_time":             "Hora inválida.",
	"date_in_past":             "La fecha no puede ser anterior a hoy.",
	"outside_business_hours":   "El horario de atención es de 7:00 AM a 10:00 PM.",
	"notes_too_long":           "Las notas superan los 200 caracteres.",
	"owner_invalid":            "Usuario de la cita no encontrado.",
	"walkin_identity_required": "Nombre y celular son obligatorios para reservar sin cuenta.",
	"appointment_not_found":    "Cita no encontrada.",
	"forbidden":                "No tienes permiso sobre esta cita.",
}

// respondBusiness maps a use-case business error onto the HTTP taxonomy.
// Unknown errors fall through as server faults.
func respondBusiness(c *gin.Context, err error) {
	code, ok := httperr.BusinessCode(err)
	if !ok {
		httperr.Internal(c, "internal_error", "Error interno.")
		return
	}

	msg := businessMessages[code]
	if msg == "" {
		msg = code
	}

	switch {
	case code == "forbidden":
		httperr.Forbidden(c, code, msg)
	case strings.HasSuffix(code, "_not_found"):
		httperr.NotFound(c, code, msg)
	default:
		httperr.BadRequest(c, code, msg)
	}
}

func actorFromContext(c *gin.Context) (domain.Actor, bool) {
	idVal, ok := c.Get(middleware.ContextUserID)
	if !ok {
		return domain.Actor{}, false
	}

	userID, ok := idVal.(uint)
	if !ok {
		return domain.Actor{}, false
	}

	role := c.GetString(middleware.ContextUserRole)

	return domain.Actor{UserID: userID, Role: role}, true
}
