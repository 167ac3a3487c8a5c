package coupon

import (
	"time"

	"skillforge/internal/domain/money"
	"skillforge/internal/pkg/errs"

	"github.com/google/uuid"
)

// Eligibility failure reasons, checked in a fixed order with the first
// failure short-circuiting the rest.
var (
	ErrInactive                = errs.New("coupon is inactive")
	ErrNotYetActive            = errs.New("coupon is not yet active")
	ErrExpired                 = errs.New("coupon has expired")
	ErrGlobalLimitReached      = errs.New("coupon usage limit reached")
	ErrUserLimitReached        = errs.New("coupon usage limit per user reached")
	ErrNotApplicableToCourse   = errs.New("coupon not applicable to this course")
	ErrNotApplicableToCategory = errs.New("coupon not applicable to this course category")
	ErrBelowMinimumAmount      = errs.New("purchase amount is below the coupon minimum")
)

// PurchaseContext carries everything an eligibility check needs. Now is
// passed explicitly so the check is a pure function.
type PurchaseContext struct {
	UserID         uuid.UUID
	CourseID       uuid.UUID
	CourseCategory string
	PurchaseAmount money.Money
	Now            time.Time
}

// Redemption is one successful application of the coupon. The log is
// append-only; refunds are a separate concern and never shrink it.
type Redemption struct {
	UserID         uuid.UUID
	OrderID        uuid.UUID
	DiscountAmount money.Money
	UsedAt         time.Time
}

type Coupon struct {
	id              uuid.UUID
	code            Code
	description     string
	value           Value
	minimumAmount   *money.Money
	maximumDiscount *money.Money
	window          Window
	usageLimit      UsageLimit
	scope           Scope
	active          bool
	usedCount       int
	redemptions     []Redemption
	createdBy       uuid.UUID
	createdAt       time.Time
	updatedAt       time.Time
}

func NewCoupon(
	id uuid.UUID,
	code string,
	description string,
	value Value,
	minimumAmount, maximumDiscount *money.Money,
	window Window,
	usageLimit UsageLimit,
	scope Scope,
	createdBy uuid.UUID,
	now time.Time,
) (*Coupon, error) {
	couponCode, err := NewCode(code)
	if err != nil {
		return nil, err
	}
	if len(description) > MaxDescriptionLength {
		return nil, ErrDescriptionTooLong
	}
	if id == uuid.Nil {
		id = uuid.New()
	}

	return &Coupon{
		id:              id,
		code:            couponCode,
		description:     description,
		value:           value,
		minimumAmount:   minimumAmount,
		maximumDiscount: maximumDiscount,
		window:          window,
		usageLimit:      usageLimit,
		scope:           scope,
		active:          true,
		createdBy:       createdBy,
		createdAt:       now,
		updatedAt:       now,
	}, nil
}

func ReconstructCoupon(
	id uuid.UUID,
	code Code,
	description string,
	value Value,
	minimumAmount, maximumDiscount *money.Money,
	window Window,
	usageLimit UsageLimit,
	scope Scope,
	active bool,
	usedCount int,
	redemptions []Redemption,
	createdBy uuid.UUID,
	createdAt, updatedAt time.Time,
) *Coupon {
	return &Coupon{
		id:              id,
		code:            code,
		description:     description,
		value:           value,
		minimumAmount:   minimumAmount,
		maximumDiscount: maximumDiscount,
		window:          window,
		usageLimit:      usageLimit,
		scope:           scope,
		active:          active,
		usedCount:       usedCount,
		redemptions:     redemptions,
		createdBy:       createdBy,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

// CheckEligibility runs the ordered rule chain against a proposed purchase.
// It is side-effect free: calling it twice with the same inputs yields the
// same result.
func (c *Coupon) CheckEligibility(pc PurchaseContext) error {
	if !c.active {
		return ErrInactive
	}
	if pc.Now.Before(c.window.startAt) {
		return ErrNotYetActive
	}
	if pc.Now.After(c.window.endAt) {
		return ErrExpired
	}
	if total := c.usageLimit.Total(); total != nil && c.usedCount >= *total {
		return ErrGlobalLimitReached
	}
	if c.redemptionCountBy(pc.UserID) >= c.usageLimit.PerUser() {
		return ErrUserLimitReached
	}
	if !c.scope.CoversCourse(pc.CourseID) {
		return ErrNotApplicableToCourse
	}
	if !c.scope.CoversCategory(pc.CourseCategory) {
		return ErrNotApplicableToCategory
	}
	if c.minimumAmount != nil && pc.PurchaseAmount.LessThan(*c.minimumAmount) {
		return ErrBelowMinimumAmount
	}
	return nil
}

// ComputeDiscount returns the discount for a purchase amount. The result is
// always within [0, purchaseAmount].
func (c *Coupon) ComputeDiscount(purchaseAmount money.Money) money.Money {
	switch c.value.Kind() {
	case KindPercentage:
		raw := int64(float64(purchaseAmount.Amount()) * c.value.Percent() / 100.0)
		discount := money.MustNew(raw, purchaseAmount.Currency())
		if c.maximumDiscount != nil {
			discount = discount.Min(*c.maximumDiscount)
		}
		return discount.Min(purchaseAmount)
	default:
		return c.value.Amount().Min(purchaseAmount)
	}
}

// Redeem appends a redemption and bumps the usage counter. The caller must
// have confirmed eligibility against this same snapshot; the persistence
// layer enforces the counter with a conditional write keyed on the usage
// count it read.
func (c *Coupon) Redeem(userID, orderID uuid.UUID, discountAmount money.Money, now time.Time) Redemption {
	r := Redemption{
		UserID:         userID,
		OrderID:        orderID,
		DiscountAmount: discountAmount,
		UsedAt:         now,
	}
	c.redemptions = append(c.redemptions, r)
	c.usedCount++
	c.updatedAt = now
	return r
}

func (c *Coupon) SetActive(active bool, now time.Time) {
	c.active = active
	c.updatedAt = now
}

// UpdateDetails changes the mutable attributes. The code and the redemption
// log are immutable after creation.
func (c *Coupon) UpdateDetails(
	description string,
	value Value,
	minimumAmount, maximumDiscount *money.Money,
	window Window,
	usageLimit UsageLimit,
	scope Scope,
	now time.Time,
) error {
	if len(description) > MaxDescriptionLength {
		return ErrDescriptionTooLong
	}
	c.description = description
	c.value = value
	c.minimumAmount = minimumAmount
	c.maximumDiscount = maximumDiscount
	c.window = window
	c.usageLimit = usageLimit
	c.scope = scope
	c.updatedAt = now
	return nil
}

func (c *Coupon) redemptionCountBy(userID uuid.UUID) int {
	count := 0
	for _, r := range c.redemptions {
		if r.UserID == userID {
			count++
		}
	}
	return count
}

func (c *Coupon) ID() uuid.UUID                 { return c.id }
func (c *Coupon) Code() Code                    { return c.code }
func (c *Coupon) Description() string           { return c.description }
func (c *Coupon) Value() Value                  { return c.value }
func (c *Coupon) MinimumAmount() *money.Money   { return c.minimumAmount }
func (c *Coupon) MaximumDiscount() *money.Money { return c.maximumDiscount }
func (c *Coupon) Window() Window                { return c.window }
func (c *Coupon) UsageLimit() UsageLimit        { return c.usageLimit }
func (c *Coupon) Scope() Scope                  { return c.scope }
func (c *Coupon) IsActive() bool                { return c.active }
func (c *Coupon) UsedCount() int                { return c.usedCount }
func (c *Coupon) Redemptions() []Redemption     { return c.redemptions }
func (c *Coupon) CreatedBy() uuid.UUID          { return c.createdBy }
func (c *Coupon) CreatedAt() time.Time          { return c.createdAt }
func (c *Coupon) UpdatedAt() time.Time          { return c.updatedAt }
