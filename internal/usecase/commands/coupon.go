package commands

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
	ErrCouponNotFound     = errs.New("coupon not found")
	ErrCouponCodeTaken    = errs.New("coupon code already exists")
	ErrCourseNotFound     = errs.New("course not found")
	ErrInvalidCouponInput = errs.New("invalid coupon input")
	ErrRedemptionConflict = errs.New("coupon redemption conflict")
)

// A lost optimistic write is retried once against the refreshed record
// before the conflict is surfaced to the caller.
const maxRedeemAttempts = 2

type ApplyCouponResult struct {
	CouponID      uuid.UUID
	Code          string
	DiscountCents int64
	FinalCents    int64
	Currency      string
}

type CouponCommands interface {
	Create(ctx context.Context, req reqdto.CreateCouponRequest, createdBy uuid.UUID) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateCouponRequest) error
	Delete(ctx context.Context, id uuid.UUID) error
	ToggleStatus(ctx context.Context, id uuid.UUID) (bool, error)
	Apply(ctx context.Context, req reqdto.ApplyCouponRequest, userID uuid.UUID) (*ApplyCouponResult, error)
}

type couponCommandsImpl struct {
	couponRepo   CouponRepository
	courseSource CourseSource
	clock        clock.Clock
}

func NewCouponCommands(couponRepo CouponRepository, courseSource CourseSource, clock clock.Clock) CouponCommands {
	return &couponCommandsImpl{
		couponRepo:   couponRepo,
		courseSource: courseSource,
		clock:        clock,
	}
}

func (u *couponCommandsImpl) Create(ctx context.Context, req reqdto.CreateCouponRequest, createdBy uuid.UUID) (uuid.UUID, error) {
	entity, err := req.ToDomain(createdBy, u.clock.Now())
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidCouponInput)
	}

	if err := u.couponRepo.Create(ctx, entity); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return uuid.Nil, ErrCouponCodeTaken
		}
		return uuid.Nil, errs.Wrap(err, "failed to create coupon")
	}
	return entity.ID(), nil
}

func (u *couponCommandsImpl) Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateCouponRequest) error {
	entity, err := u.findByID(ctx, id)
	if err != nil {
		return err
	}

	create := reqdto.CreateCouponRequest{
		Code:                 entity.Code().String(),
		Description:          req.Description,
		Kind:                 req.Kind,
		Value:                req.Value,
		Currency:             req.Currency,
		MinimumAmountCents:   req.MinimumAmountCents,
		MaximumDiscountCents: req.MaximumDiscountCents,
		StartAt:              req.StartAt,
		EndAt:                req.EndAt,
		UsageLimitTotal:      req.UsageLimitTotal,
		UsageLimitPerUser:    req.UsageLimitPerUser,
		ApplicableTo:         req.ApplicableTo,
		CourseIDs:            req.CourseIDs,
		Categories:           req.Categories,
	}
	draft, err := create.ToDomain(entity.CreatedBy(), u.clock.Now())
	if err != nil {
		return errs.Mark(err, ErrInvalidCouponInput)
	}

	if err := entity.UpdateDetails(
		draft.Description(),
		draft.Value(),
		draft.MinimumAmount(),
		draft.MaximumDiscount(),
		draft.Window(),
		draft.UsageLimit(),
		draft.Scope(),
		u.clock.Now(),
	); err != nil {
		return errs.Mark(err, ErrInvalidCouponInput)
	}

	if err := u.couponRepo.Update(ctx, entity); err != nil {
		return errs.Wrap(err, "failed to update coupon")
	}
	return nil
}

func (u *couponCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := u.findByID(ctx, id); err != nil {
		return err
	}
	if err := u.couponRepo.Delete(ctx, id); err != nil {
		return errs.Wrap(err, "failed to delete coupon")
	}
	return nil
}

func (u *couponCommandsImpl) ToggleStatus(ctx context.Context, id uuid.UUID) (bool, error) {
	entity, err := u.findByID(ctx, id)
	if err != nil {
		return false, err
	}

	entity.SetActive(!entity.IsActive(), u.clock.Now())
	if err := u.couponRepo.Update(ctx, entity); err != nil {
		return false, errs.Wrap(err, "failed to toggle coupon status")
	}
	return entity.IsActive(), nil
}

// Apply validates and redeems in one read-check-write cycle. The write is
// conditional on the usage count read in the same cycle; a lost race
// refreshes the coupon and re-runs eligibility before retrying.
func (u *couponCommandsImpl) Apply(ctx context.Context, req reqdto.ApplyCouponRequest, userID uuid.UUID) (*ApplyCouponResult, error) {
	code, err := coupon.NewCode(req.Code)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidCouponInput)
	}

	course, err := u.courseSource.FindByID(ctx, req.CourseID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, errs.Wrap(err, "failed to resolve course")
	}

	orderAmount, err := money.New(req.OrderAmountCents, req.Currency)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidCouponInput)
	}

	for attempt := 0; attempt < maxRedeemAttempts; attempt++ {
		entity, err := u.couponRepo.FindByCode(ctx, code)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, ErrCouponNotFound
			}
			return nil, errs.Wrap(err, "failed to find coupon")
		}

		now := u.clock.Now()
		pc := coupon.PurchaseContext{
			UserID:         userID,
			CourseID:       course.ID,
			CourseCategory: course.Category,
			PurchaseAmount: orderAmount,
			Now:            now,
		}
		if err := entity.CheckEligibility(pc); err != nil {
			return nil, err
		}

		discount := entity.ComputeDiscount(orderAmount)
		expected := entity.UsedCount()
		entity.Redeem(userID, req.OrderID, discount, now)

		err = u.couponRepo.SaveWithOptimisticRedemption(ctx, entity, expected)
		if err == nil {
			final := orderAmount.SubClamped(discount)
			return &ApplyCouponResult{
				CouponID:      entity.ID(),
				Code:          entity.Code().String(),
				DiscountCents: discount.Amount(),
				FinalCents:    final.Amount(),
				Currency:      orderAmount.Currency(),
			}, nil
		}
		if !infra.IsKind(err, infra.KindConflict) {
			return nil, errs.Wrap(err, "failed to record redemption")
		}
	}

	return nil, ErrRedemptionConflict
}

func (u *couponCommandsImpl) findByID(ctx context.Context, id uuid.UUID) (*coupon.Coupon, error) {
	entity, err := u.couponRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCouponNotFound
		}
		return nil, errs.Wrap(err, "failed to find coupon")
	}
	return entity, nil
}
