package request

import (
	"github.com/google/uuid"
)

type GenerateCertificateRequest struct {
	CourseID  uuid.UUID `json:"course_id" binding:"required"`
	StudentID uuid.UUID `json:"student_id" binding:"required"`
	Score     *int      `json:"score,omitempty" binding:"omitempty,min=0,max=100"`
}

// UpdateCertificateStatusRequest mirrors the admin revoke endpoint: the
// status field selects the transition, reason applies to revocation only.
type UpdateCertificateStatusRequest struct {
	Status string `json:"status,omitempty" binding:"omitempty,oneof=active inactive revoked"`
	Reason string `json:"reason,omitempty"`
}
