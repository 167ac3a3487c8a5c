package request

import (
	"strings"
	"time"

	"skillforge/internal/domain/coupon"
	"skillforge/internal/domain/money"

	"github.com/google/uuid"
)

// Monetary fields are minor units (cents). Percentage values are 0-100.

type CreateCouponRequest struct {
	Code                 string      `json:"code" binding:"required"`
	Description          string      `json:"description" binding:"required,max=500"`
	Kind                 string      `json:"kind" binding:"required,oneof=percentage fixed_amount"`
	Value                int64       `json:"value" binding:"required,min=0"`
	Currency             string      `json:"currency,omitempty"`
	MinimumAmountCents   *int64      `json:"minimum_amount_cents,omitempty"`
	MaximumDiscountCents *int64      `json:"maximum_discount_cents,omitempty"`
	StartAt              time.Time   `json:"start_at" binding:"required"`
	EndAt                time.Time   `json:"end_at" binding:"required"`
	UsageLimitTotal      *int        `json:"usage_limit_total,omitempty"`
	UsageLimitPerUser    int         `json:"usage_limit_per_user,omitempty"`
	ApplicableTo         string      `json:"applicable_to,omitempty" binding:"omitempty,oneof=all_courses specific_courses specific_categories"`
	CourseIDs            []uuid.UUID `json:"course_ids,omitempty"`
	Categories           []string    `json:"categories,omitempty"`
}

func (r CreateCouponRequest) ToDomain(createdBy uuid.UUID, now time.Time) (*coupon.Coupon, error) {
	value, err := buildValue(r.Kind, r.Value, r.Currency)
	if err != nil {
		return nil, err
	}

	window, err := coupon.NewWindow(r.StartAt, r.EndAt)
	if err != nil {
		return nil, err
	}

	limit, err := coupon.NewUsageLimit(r.UsageLimitTotal, r.UsageLimitPerUser)
	if err != nil {
		return nil, err
	}

	scope, err := buildScope(r.ApplicableTo, r.CourseIDs, r.Categories)
	if err != nil {
		return nil, err
	}

	minAmount, err := optionalMoney(r.MinimumAmountCents, r.Currency)
	if err != nil {
		return nil, err
	}
	maxDiscount, err := optionalMoney(r.MaximumDiscountCents, r.Currency)
	if err != nil {
		return nil, err
	}

	return coupon.NewCoupon(
		uuid.Nil,
		r.Code,
		strings.TrimSpace(r.Description),
		value,
		minAmount,
		maxDiscount,
		window,
		limit,
		scope,
		createdBy,
		now,
	)
}

type UpdateCouponRequest struct {
	Description          string      `json:"description" binding:"required,max=500"`
	Kind                 string      `json:"kind" binding:"required,oneof=percentage fixed_amount"`
	Value                int64       `json:"value" binding:"required,min=0"`
	Currency             string      `json:"currency,omitempty"`
	MinimumAmountCents   *int64      `json:"minimum_amount_cents,omitempty"`
	MaximumDiscountCents *int64      `json:"maximum_discount_cents,omitempty"`
	StartAt              time.Time   `json:"start_at" binding:"required"`
	EndAt                time.Time   `json:"end_at" binding:"required"`
	UsageLimitTotal      *int        `json:"usage_limit_total,omitempty"`
	UsageLimitPerUser    int         `json:"usage_limit_per_user,omitempty"`
	ApplicableTo         string      `json:"applicable_to,omitempty" binding:"omitempty,oneof=all_courses specific_courses specific_categories"`
	CourseIDs            []uuid.UUID `json:"course_ids,omitempty"`
	Categories           []string    `json:"categories,omitempty"`
}

type ValidateCouponRequest struct {
	Code              string    `json:"code" binding:"required"`
	CourseID          uuid.UUID `json:"course_id" binding:"required"`
	CourseAmountCents int64     `json:"course_amount_cents" binding:"min=0"`
	Currency          string    `json:"currency,omitempty"`
}

type ApplyCouponRequest struct {
	Code             string    `json:"code" binding:"required"`
	CourseID         uuid.UUID `json:"course_id" binding:"required"`
	OrderID          uuid.UUID `json:"order_id" binding:"required"`
	OrderAmountCents int64     `json:"order_amount_cents" binding:"required,min=0"`
	Currency         string    `json:"currency,omitempty"`
}

func buildValue(kind string, value int64, currency string) (coupon.Value, error) {
	if coupon.Kind(kind) == coupon.KindPercentage {
		return coupon.NewPercentageValue(float64(value))
	}
	amount, err := money.New(value, currency)
	if err != nil {
		return coupon.Value{}, err
	}
	return coupon.NewFixedAmountValue(amount), nil
}

func buildScope(applicableTo string, courseIDs []uuid.UUID, categories []string) (coupon.Scope, error) {
	switch coupon.ScopeKind(applicableTo) {
	case coupon.ScopeSpecificCourses:
		return coupon.NewCoursesScope(courseIDs)
	case coupon.ScopeSpecificCategories:
		return coupon.NewCategoriesScope(categories)
	default:
		return coupon.NewAllCoursesScope(), nil
	}
}

func optionalMoney(cents *int64, currency string) (*money.Money, error) {
	if cents == nil {
		return nil, nil
	}
	m, err := money.New(*cents, currency)
	if err != nil {
		return nil, err
	}
	return &m, nil
}
