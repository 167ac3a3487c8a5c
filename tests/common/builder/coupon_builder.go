//go:build unit

package builder

import (
	"time"

	domcoupon "skillforge/internal/domain/coupon"
	"skillforge/internal/domain/money"
	reqdto "skillforge/internal/handler/dto/request"
	"skillforge/internal/usecase/queries"

	"github.com/google/uuid"
)

type CouponBuilder struct {
	ID                   uuid.UUID
	Code                 string
	Description          string
	Kind                 string
	Value                int64
	Currency             string
	MinimumAmountCents   *int64
	MaximumDiscountCents *int64
	StartAt              time.Time
	EndAt                time.Time
	UsageLimitTotal      *int
	UsageLimitPerUser    int
	UsedCount            int
	ApplicableTo         string
	CourseIDs            []uuid.UUID
	Categories           []string
	IsActive             bool
	CreatedBy            uuid.UUID
	CreatedAt            time.Time
}

func NewCouponBuilder() *CouponBuilder {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return &CouponBuilder{
		ID:                uuid.New(),
		Code:              "SPRING20",
		Description:       "Spring sale discount",
		Kind:              "percentage",
		Value:             20,
		Currency:          money.DefaultCurrency,
		StartAt:           now.Add(-24 * time.Hour),
		EndAt:             now.Add(30 * 24 * time.Hour),
		UsageLimitPerUser: 1,
		ApplicableTo:      "all_courses",
		IsActive:          true,
		CreatedBy:         uuid.New(),
		CreatedAt:         now.Add(-24 * time.Hour),
	}
}

func (b *CouponBuilder) WithCode(code string) *CouponBuilder {
	b.Code = code
	return b
}

func (b *CouponBuilder) WithKind(kind string, value int64) *CouponBuilder {
	b.Kind = kind
	b.Value = value
	return b
}

func (b *CouponBuilder) WithWindow(startAt, endAt time.Time) *CouponBuilder {
	b.StartAt = startAt
	b.EndAt = endAt
	return b
}

func (b *CouponBuilder) WithMinimumAmount(cents int64) *CouponBuilder {
	b.MinimumAmountCents = &cents
	return b
}

func (b *CouponBuilder) WithMaximumDiscount(cents int64) *CouponBuilder {
	b.MaximumDiscountCents = &cents
	return b
}

func (b *CouponBuilder) WithUsageLimitTotal(total int) *CouponBuilder {
	b.UsageLimitTotal = &total
	return b
}

func (b *CouponBuilder) WithUsageLimitPerUser(perUser int) *CouponBuilder {
	b.UsageLimitPerUser = perUser
	return b
}

func (b *CouponBuilder) WithCourseScope(courseIDs ...uuid.UUID) *CouponBuilder {
	b.ApplicableTo = "specific_courses"
	b.CourseIDs = courseIDs
	return b
}

func (b *CouponBuilder) WithCategoryScope(categories ...string) *CouponBuilder {
	b.ApplicableTo = "specific_categories"
	b.Categories = categories
	return b
}

func (b *CouponBuilder) Inactive() *CouponBuilder {
	b.IsActive = false
	return b
}

func (b *CouponBuilder) BuildDomain() (*domcoupon.Coupon, error) {
	req := b.BuildCreateRequestDTO()
	entity, err := req.ToDomain(b.CreatedBy, b.CreatedAt)
	if err != nil {
		return nil, err
	}
	if !b.IsActive {
		entity.SetActive(false, b.CreatedAt)
	}
	return entity, nil
}

func (b *CouponBuilder) BuildCreateRequestDTO() reqdto.CreateCouponRequest {
	return reqdto.CreateCouponRequest{
		Code:                 b.Code,
		Description:          b.Description,
		Kind:                 b.Kind,
		Value:                b.Value,
		Currency:             b.Currency,
		MinimumAmountCents:   b.MinimumAmountCents,
		MaximumDiscountCents: b.MaximumDiscountCents,
		StartAt:              b.StartAt,
		EndAt:                b.EndAt,
		UsageLimitTotal:      b.UsageLimitTotal,
		UsageLimitPerUser:    b.UsageLimitPerUser,
		ApplicableTo:         b.ApplicableTo,
		CourseIDs:            b.CourseIDs,
		Categories:           b.Categories,
	}
}

func (b *CouponBuilder) BuildUpdateRequestDTO() reqdto.UpdateCouponRequest {
	return reqdto.UpdateCouponRequest{
		Description:          b.Description,
		Kind:                 b.Kind,
		Value:                b.Value,
		Currency:             b.Currency,
		MinimumAmountCents:   b.MinimumAmountCents,
		MaximumDiscountCents: b.MaximumDiscountCents,
		StartAt:              b.StartAt,
		EndAt:                b.EndAt,
		UsageLimitTotal:      b.UsageLimitTotal,
		UsageLimitPerUser:    b.UsageLimitPerUser,
		ApplicableTo:         b.ApplicableTo,
		CourseIDs:            b.CourseIDs,
		Categories:           b.Categories,
	}
}

func (b *CouponBuilder) BuildView() *queries.CouponView {
	return &queries.CouponView{
		ID:                   b.ID,
		Code:                 b.Code,
		Description:          b.Description,
		Kind:                 b.Kind,
		Value:                b.Value,
		Currency:             b.Currency,
		MinimumAmountCents:   b.MinimumAmountCents,
		MaximumDiscountCents: b.MaximumDiscountCents,
		StartAt:              b.StartAt,
		EndAt:                b.EndAt,
		UsageLimitTotal:      b.UsageLimitTotal,
		UsageLimitPerUser:    b.UsageLimitPerUser,
		UsedCount:            b.UsedCount,
		ApplicableTo:         b.ApplicableTo,
		CourseIDs:            b.CourseIDs,
		Categories:           b.Categories,
		IsActive:             b.IsActive,
		CreatedBy:            b.CreatedBy,
		CreatedAt:            b.CreatedAt,
		UpdatedAt:            b.CreatedAt,
	}
}

func (b *CouponBuilder) BuildListItem() queries.CouponListItem {
	return queries.CouponListItem{
		ID:           b.ID,
		Code:         b.Code,
		Description:  b.Description,
		Kind:         b.Kind,
		Value:        b.Value,
		StartAt:      b.StartAt,
		EndAt:        b.EndAt,
		UsedCount:    b.UsedCount,
		IsActive:     b.IsActive,
		ApplicableTo: b.ApplicableTo,
		CreatedAt:    b.CreatedAt,
	}
}
