package commands

import (
	"context"
	"time"

	"skillforge/internal/domain/certificate"
	"skillforge/internal/domain/coupon"

	"github.com/google/uuid"
)

// Write-side collaborator ports. Repositories return full aggregates since
// commands need the complete state (redemption log, revocation record) to
// apply domain rules.

type CouponRepository interface {
	FindByCode(ctx context.Context, code coupon.Code) (*coupon.Coupon, error)
	FindByID(ctx context.Context, id uuid.UUID) (*coupon.Coupon, error)
	Create(ctx context.Context, c *coupon.Coupon) error
	Update(ctx context.Context, c *coupon.Coupon) error
	Delete(ctx context.Context, id uuid.UUID) error
	// SaveWithOptimisticRedemption persists the newest redemption and the
	// bumped usage counter, conditional on the counter still being
	// expectedUsedCount in storage. A lost race surfaces as KindConflict.
	SaveWithOptimisticRedemption(ctx context.Context, c *coupon.Coupon, expectedUsedCount int) error
}

type CertificateRepository interface {
	FindActiveOrInactive(ctx context.Context, studentID, courseID uuid.UUID) (*certificate.Certificate, error)
	FindByID(ctx context.Context, id uuid.UUID) (*certificate.Certificate, error)
	// InsertIfAbsent inserts the certificate unless a non-revoked one
	// already exists for the same (student, course); that race surfaces as
	// KindConflict.
	InsertIfAbsent(ctx context.Context, c *certificate.Certificate) error
	Save(ctx context.Context, c *certificate.Certificate) error
}

// Read-only sources owned by the external student/course/identity
// subsystems. Referenced entities may no longer exist; lookups surface
// KindNotFound.

type EnrollmentInfo struct {
	Progress         int
	CompletedAt      *time.Time
	CompletedLessons int
	AverageScore     float64
	TimeSpentMinutes int
}

type CourseInfo struct {
	ID           uuid.UUID
	Title        string
	Category     string
	InstructorID uuid.UUID
	TotalLessons int
}

type UserInfo struct {
	ID          uuid.UUID
	DisplayName string
	Email       string
}

type EnrollmentSource interface {
	GetEnrollment(ctx context.Context, studentID, courseID uuid.UUID) (*EnrollmentInfo, error)
}

type CourseSource interface {
	FindByID(ctx context.Context, id uuid.UUID) (*CourseInfo, error)
}

type IdentitySource interface {
	FindUserByID(ctx context.Context, id uuid.UUID) (*UserInfo, error)
}
