package queries

import (
	"context"

	"skillforge/internal/domain/coupon"
	"skillforge/internal/domain/money"
	reqdto "skillforge/internal/handler/dto/request"
	"skillforge/internal/infra"
	"skillforge/internal/pkg/clock"
	"skillforge/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrCouponNotFound = errs.New("coupon not found")
	ErrCourseNotFound = errs.New("course not found")
)

type CouponReadStore interface {
	FindViewByID(ctx context.Context, id uuid.UUID) (*CouponView, error)
	List(ctx context.Context, filters CouponFilters, page, limit int) ([]CouponListItem, int64, error)
	// FindEntityByCode loads the full aggregate for read-only eligibility
	// evaluation.
	FindEntityByCode(ctx context.Context, code coupon.Code) (*coupon.Coupon, error)
}

type CourseReadStore interface {
	FindCourseCategory(ctx context.Context, id uuid.UUID) (string, error)
}

type CouponQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*CouponView, error)
	List(ctx context.Context, filters CouponFilters, page, limit int) ([]CouponListItem, PageInfo, error)
	// Validate is the side-effect-free dry run of a redemption: it reports
	// the discount a coupon would yield without recording anything.
	Validate(ctx context.Context, req reqdto.ValidateCouponRequest, userID uuid.UUID) (*CouponValidationView, error)
}

type couponQueriesImpl struct {
	store       CouponReadStore
	courseStore CourseReadStore
	clock       clock.Clock
}

func NewCouponQueries(store CouponReadStore, courseStore CourseReadStore, clock clock.Clock) CouponQueries {
	return &couponQueriesImpl{
		store:       store,
		courseStore: courseStore,
		clock:       clock,
	}
}

func (q *couponQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*CouponView, error) {
	view, err := q.store.FindViewByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCouponNotFound
		}
		return nil, errs.Wrap(err, "failed to load coupon")
	}
	return view, nil
}

func (q *couponQueriesImpl) List(ctx context.Context, filters CouponFilters, page, limit int) ([]CouponListItem, PageInfo, error) {
	page, limit = NormalizePage(page, limit)
	items, total, err := q.store.List(ctx, filters, page, limit)
	if err != nil {
		return nil, PageInfo{}, errs.Wrap(err, "failed to list coupons")
	}
	return items, NewPageInfo(page, limit, total), nil
}

func (q *couponQueriesImpl) Validate(ctx context.Context, req reqdto.ValidateCouponRequest, userID uuid.UUID) (*CouponValidationView, error) {
	code, err := coupon.NewCode(req.Code)
	if err != nil {
		return nil, err
	}

	entity, err := q.store.FindEntityByCode(ctx, code)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCouponNotFound
		}
		return nil, errs.Wrap(err, "failed to find coupon")
	}

	category, err := q.courseStore.FindCourseCategory(ctx, req.CourseID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, errs.Wrap(err, "failed to resolve course")
	}

	amount, err := money.New(req.CourseAmountCents, req.Currency)
	if err != nil {
		return nil, err
	}

	pc := coupon.PurchaseContext{
		UserID:         userID,
		CourseID:       req.CourseID,
		CourseCategory: category,
		PurchaseAmount: amount,
		Now:            q.clock.Now(),
	}
	if err := entity.CheckEligibility(pc); err != nil {
		return nil, err
	}

	discount := entity.ComputeDiscount(amount)
	final := amount.SubClamped(discount)

	var value int64
	if entity.Value().Kind() == coupon.KindPercentage {
		value = int64(entity.Value().Percent())
	} else {
		value = entity.Value().Amount().Amount()
	}

	return &CouponValidationView{
		Code:          entity.Code().String(),
		Kind:          entity.Value().Kind().String(),
		Value:         value,
		Description:   entity.Description(),
		DiscountCents: discount.Amount(),
		FinalCents:    final.Amount(),
		Currency:      amount.Currency(),
	}, nil
}
