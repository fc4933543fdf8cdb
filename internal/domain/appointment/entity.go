package appointment

import "github.com/urbanbarber/api/internal/models"

// ===============================
// Domain Actions
// ===============================

// MarkPaid confirms the appointment and flags it as paid. Calling it on an
// already confirmed appointment is a no-op.
func MarkPaid(ap *models.Appointment) {
	ap.Paid = true
	ap.Status = string(StatusConfirmed)
}
