package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read-optimized views, decoupled from domain aggregates.

type CouponView struct {
	ID                   uuid.UUID   `json:"id"`
	Code                 string      `json:"code"`
	Description          string      `json:"description"`
	Kind                 string      `json:"kind"`
	Value                int64       `json:"value"`
	Currency             string      `json:"currency"`
	MinimumAmountCents   *int64      `json:"minimum_amount_cents,omitempty"`
	MaximumDiscountCents *int64      `json:"maximum_discount_cents,omitempty"`
	StartAt              time.Time   `json:"start_at"`
	EndAt                time.Time   `json:"end_at"`
	UsageLimitTotal      *int        `json:"usage_limit_total,omitempty"`
	UsageLimitPerUser    int         `json:"usage_limit_per_user"`
	UsedCount            int         `json:"used_count"`
	ApplicableTo         string      `json:"applicable_to"`
	CourseIDs            []uuid.UUID `json:"course_ids,omitempty"`
	Categories           []string    `json:"categories,omitempty"`
	IsActive             bool        `json:"is_active"`
	CreatedBy            uuid.UUID   `json:"created_by"`
	CreatedAt            time.Time   `json:"created_at"`
	UpdatedAt            time.Time   `json:"updated_at"`
}

type CouponListItem struct {
	ID           uuid.UUID `json:"id"`
	Code         string    `json:"code"`
	Description  string    `json:"description"`
	Kind         string    `json:"kind"`
	Value        int64     `json:"value"`
	StartAt      time.Time `json:"start_at"`
	EndAt        time.Time `json:"end_at"`
	UsedCount    int       `json:"used_count"`
	IsActive     bool      `json:"is_active"`
	ApplicableTo string    `json:"applicable_to"`
	CreatedAt    time.Time `json:"created_at"`
}

type CouponFilters struct {
	Kind   *string
	Status *string // active | inactive | expired
	Search *string
}

type CouponValidationView struct {
	Code          string `json:"code"`
	Kind          string `json:"kind"`
	Value         int64  `json:"value"`
	Description   string `json:"description"`
	DiscountCents int64  `json:"discount_cents"`
	FinalCents    int64  `json:"final_cents"`
	Currency      string `json:"currency"`
}

type CertificateMetadataView struct {
	TotalLessons     int     `json:"total_lessons"`
	CompletedLessons int     `json:"completed_lessons"`
	AverageScore     float64 `json:"average_score"`
	TimeSpentMinutes int     `json:"time_spent_minutes"`
}

type CertificateView struct {
	ID             uuid.UUID               `json:"id"`
	CertificateID  string                  `json:"certificate_id"`
	StudentID      uuid.UUID               `json:"student_id"`
	CourseID       uuid.UUID               `json:"course_id"`
	InstructorID   uuid.UUID               `json:"instructor_id"`
	StudentName    string                  `json:"student_name"`
	CourseTitle    string                  `json:"course_title"`
	InstructorName string                  `json:"instructor_name"`
	Grade          string                  `json:"grade"`
	Score          *int                    `json:"score,omitempty"`
	CompletedAt    time.Time               `json:"completed_at"`
	IssuedAt       time.Time               `json:"issued_at"`
	Status         string                  `json:"status"`
	RevokedAt      *time.Time              `json:"revoked_at,omitempty"`
	RevokedReason  *string                 `json:"revoked_reason,omitempty"`
	Metadata       CertificateMetadataView `json:"metadata"`
	CreatedAt      time.Time               `json:"created_at"`
	UpdatedAt      time.Time               `json:"updated_at"`
}

type CertificateFilters struct {
	CourseID  *uuid.UUID
	StudentID *uuid.UUID
	Status    *string
	Search    *string
}

type PageInfo struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100
)

func NormalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultPageLimit
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}
	return page, limit
}

func NewPageInfo(page, limit int, total int64) PageInfo {
	pages := int((total + int64(limit) - 1) / int64(limit))
	return PageInfo{Page: page, Limit: limit, Total: total, Pages: pages}
}
