package certificate

import (
	"time"

	"skillforge/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrAlreadyRevoked  = errs.New("certificate is already revoked")
	ErrAlreadyActive   = errs.New("certificate is already active")
	ErrAlreadyInactive = errs.New("certificate is already inactive")
)

// Certificate attests that a student completed a course. The record is
// never physically deleted; revocation keeps the audit trail intact.
type Certificate struct {
	id             uuid.UUID
	certificateID  ID
	studentID      uuid.UUID
	courseID       uuid.UUID
	instructorID   uuid.UUID
	studentName    string
	courseTitle    string
	instructorName string
	grade          Grade
	score          *Score
	completedAt    time.Time
	issuedAt       time.Time
	status         Status
	revokedAt      *time.Time
	revokedReason  *RevocationReason
	metadata       Metadata
	createdAt      time.Time
	updatedAt      time.Time
}

func ReconstructCertificate(
	id uuid.UUID,
	certificateID ID,
	studentID, courseID, instructorID uuid.UUID,
	studentName, courseTitle, instructorName string,
	grade Grade,
	score *Score,
	completedAt, issuedAt time.Time,
	status Status,
	revokedAt *time.Time,
	revokedReason *RevocationReason,
	metadata Metadata,
	createdAt, updatedAt time.Time,
) *Certificate {
	return &Certificate{
		id:             id,
		certificateID:  certificateID,
		studentID:      studentID,
		courseID:       courseID,
		instructorID:   instructorID,
		studentName:    studentName,
		courseTitle:    courseTitle,
		instructorName: instructorName,
		grade:          grade,
		score:          score,
		completedAt:    completedAt,
		issuedAt:       issuedAt,
		status:         status,
		revokedAt:      revokedAt,
		revokedReason:  revokedReason,
		metadata:       metadata,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

// Revoke transitions Active or Inactive to Revoked. A reason is mandatory.
func (c *Certificate) Revoke(reason RevocationReason, now time.Time) error {
	if c.status == StatusRevoked {
		return ErrAlreadyRevoked
	}
	c.status = StatusRevoked
	c.revokedAt = &now
	c.revokedReason = &reason
	c.updatedAt = now
	return nil
}

// Reactivate transitions Inactive or Revoked back to Active and clears any
// revocation record. Reactivation after revocation is an explicit admin
// action and allowed by design.
func (c *Certificate) Reactivate(now time.Time) error {
	if c.status == StatusActive {
		return ErrAlreadyActive
	}
	c.status = StatusActive
	c.revokedAt = nil
	c.revokedReason = nil
	c.updatedAt = now
	return nil
}

// Deactivate transitions Active or Revoked to Inactive, clearing any
// revocation record.
func (c *Certificate) Deactivate(now time.Time) error {
	if c.status == StatusInactive {
		return ErrAlreadyInactive
	}
	c.status = StatusInactive
	c.revokedAt = nil
	c.revokedReason = nil
	c.updatedAt = now
	return nil
}

// IsVerifiable reports whether the certificate passes public verification.
// Inactive and revoked certificates exist but do not verify.
func (c *Certificate) IsVerifiable() bool {
	return c.status == StatusActive
}

func (c *Certificate) ID() uuid.UUID                    { return c.id }
func (c *Certificate) CertificateID() ID                { return c.certificateID }
func (c *Certificate) StudentID() uuid.UUID             { return c.studentID }
func (c *Certificate) CourseID() uuid.UUID              { return c.courseID }
func (c *Certificate) InstructorID() uuid.UUID          { return c.instructorID }
func (c *Certificate) StudentName() string              { return c.studentName }
func (c *Certificate) CourseTitle() string              { return c.courseTitle }
func (c *Certificate) InstructorName() string           { return c.instructorName }
func (c *Certificate) Grade() Grade                     { return c.grade }
func (c *Certificate) Score() *Score                    { return c.score }
func (c *Certificate) CompletedAt() time.Time           { return c.completedAt }
func (c *Certificate) IssuedAt() time.Time              { return c.issuedAt }
func (c *Certificate) Status() Status                   { return c.status }
func (c *Certificate) RevokedAt() *time.Time            { return c.revokedAt }
func (c *Certificate) RevokedReason() *RevocationReason { return c.revokedReason }
func (c *Certificate) Metadata() Metadata               { return c.metadata }
func (c *Certificate) CreatedAt() time.Time             { return c.createdAt }
func (c *Certificate) UpdatedAt() time.Time             { return c.updatedAt }
