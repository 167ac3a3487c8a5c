package response

import (
	"time"

	"skillforge/internal/usecase/commands"
	"skillforge/internal/usecase/queries"

	"github.com/google/uuid"
)

type CouponResponse struct {
	ID                   uuid.UUID   `json:"id"`
	Code                 string      `json:"code"`
	Description          string      `json:"description"`
	Kind                 string      `json:"kind"`
	Value                int64       `json:"value"`
	Currency             string      `json:"currency"`
	MinimumAmountCents   *int64      `json:"minimumAmountCents,omitempty"`
	MaximumDiscountCents *int64      `json:"maximumDiscountCents,omitempty"`
	StartAt              time.Time   `json:"startAt"`
	EndAt                time.Time   `json:"endAt"`
	UsageLimitTotal      *int        `json:"usageLimitTotal,omitempty"`
	UsageLimitPerUser    int         `json:"usageLimitPerUser"`
	UsedCount            int         `json:"usedCount"`
	ApplicableTo         string      `json:"applicableTo"`
	CourseIDs            []uuid.UUID `json:"courseIds,omitempty"`
	Categories           []string    `json:"categories,omitempty"`
	IsActive             bool        `json:"isActive"`
	CreatedBy            uuid.UUID   `json:"createdBy"`
	CreatedAt            time.Time   `json:"createdAt"`
	UpdatedAt            time.Time   `json:"updatedAt"`
}

type CouponListItemResponse struct {
	ID           uuid.UUID `json:"id"`
	Code         string    `json:"code"`
	Description  string    `json:"description"`
	Kind         string    `json:"kind"`
	Value        int64     `json:"value"`
	StartAt      time.Time `json:"startAt"`
	EndAt        time.Time `json:"endAt"`
	UsedCount    int       `json:"usedCount"`
	IsActive     bool      `json:"isActive"`
	ApplicableTo string    `json:"applicableTo"`
	CreatedAt    time.Time `json:"createdAt"`
}

type PageInfoResponse struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

type CouponListResponse struct {
	Coupons  []CouponListItemResponse `json:"coupons"`
	PageInfo PageInfoResponse         `json:"pageInfo"`
}

type CouponValidationResponse struct {
	Valid         bool   `json:"valid"`
	Code          string `json:"code"`
	Kind          string `json:"kind"`
	Value         int64  `json:"value"`
	Description   string `json:"description"`
	DiscountCents int64  `json:"discountCents"`
	FinalCents    int64  `json:"finalCents"`
	Currency      string `json:"currency"`
}

type ApplyCouponResponse struct {
	CouponID      uuid.UUID `json:"couponId"`
	Code          string    `json:"code"`
	DiscountCents int64     `json:"discountCents"`
	FinalCents    int64     `json:"finalCents"`
	Currency      string    `json:"currency"`
}

func FromCouponView(v *queries.CouponView) *CouponResponse {
	return &CouponResponse{
		ID:                   v.ID,
		Code:                 v.Code,
		Description:          v.Description,
		Kind:                 v.Kind,
		Value:                v.Value,
		Currency:             v.Currency,
		MinimumAmountCents:   v.MinimumAmountCents,
		MaximumDiscountCents: v.MaximumDiscountCents,
		StartAt:              v.StartAt,
		EndAt:                v.EndAt,
		UsageLimitTotal:      v.UsageLimitTotal,
		UsageLimitPerUser:    v.UsageLimitPerUser,
		UsedCount:            v.UsedCount,
		ApplicableTo:         v.ApplicableTo,
		CourseIDs:            v.CourseIDs,
		Categories:           v.Categories,
		IsActive:             v.IsActive,
		CreatedBy:            v.CreatedBy,
		CreatedAt:            v.CreatedAt,
		UpdatedAt:            v.UpdatedAt,
	}
}

func FromCouponList(items []queries.CouponListItem, page queries.PageInfo) *CouponListResponse {
	coupons := make([]CouponListItemResponse, 0, len(items))
	for _, item := range items {
		coupons = append(coupons, CouponListItemResponse{
			ID:           item.ID,
			Code:         item.Code,
			Description:  item.Description,
			Kind:         item.Kind,
			Value:        item.Value,
			StartAt:      item.StartAt,
			EndAt:        item.EndAt,
			UsedCount:    item.UsedCount,
			IsActive:     item.IsActive,
			ApplicableTo: item.ApplicableTo,
			CreatedAt:    item.CreatedAt,
		})
	}
	return &CouponListResponse{
		Coupons:  coupons,
		PageInfo: fromPageInfo(page),
	}
}

func FromCouponValidation(v *queries.CouponValidationView) *CouponValidationResponse {
	return &CouponValidationResponse{
		Valid:         true,
		Code:          v.Code,
		Kind:          v.Kind,
		Value:         v.Value,
		Description:   v.Description,
		DiscountCents: v.DiscountCents,
		FinalCents:    v.FinalCents,
		Currency:      v.Currency,
	}
}

func FromApplyCouponResult(r *commands.ApplyCouponResult) *ApplyCouponResponse {
	return &ApplyCouponResponse{
		CouponID:      r.CouponID,
		Code:          r.Code,
		DiscountCents: r.DiscountCents,
		FinalCents:    r.FinalCents,
		Currency:      r.Currency,
	}
}

func fromPageInfo(p queries.PageInfo) PageInfoResponse {
	return PageInfoResponse{
		Page:  p.Page,
		Limit: p.Limit,
		Total: p.Total,
		Pages: p.Pages,
	}
}
