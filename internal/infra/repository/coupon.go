package repository

import (
	"context"
	"errors"
	"time"

	"skillforge/internal/domain/coupon"
	"skillforge/internal/domain/money"
	"skillforge/internal/infra"
	"skillforge/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

const pgErrCodeUniqueViolation = "23505"

type CouponRepository struct {
	db *pgxpool.Pool
}

func NewCouponRepository(db *pgxpool.Pool) *CouponRepository {
	return &CouponRepository{db: db}
}

const couponColumns = `
	id, code, description, kind, percent_value, amount_cents, currency,
	minimum_amount_cents, maximum_discount_cents, start_at, end_at,
	usage_limit_total, usage_limit_per_user, used_count, applicable_to,
	course_ids, categories, is_active, created_by, created_at, updated_at`

func (r *CouponRepository) FindByCode(ctx context.Context, code coupon.Code) (*coupon.Coupon, error) {
	return r.findOne(ctx, `SELECT`+couponColumns+` FROM coupons WHERE code = $1`, code.String())
}

func (r *CouponRepository) FindByID(ctx context.Context, id uuid.UUID) (*coupon.Coupon, error) {
	return r.findOne(ctx, `SELECT`+couponColumns+` FROM coupons WHERE id = $1`, id)
}

func (r *CouponRepository) Create(ctx context.Context, c *coupon.Coupon) error {
	row := toCouponRow(c)
	_, err := r.db.Exec(ctx, `
		INSERT INTO coupons (`+couponColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)`,
		row.id, row.code, row.description, row.kind, row.percentValue, row.amountCents, row.currency,
		row.minimumAmountCents, row.maximumDiscountCents, row.startAt, row.endAt,
		row.usageLimitTotal, row.usageLimitPerUser, row.usedCount, row.applicableTo,
		row.courseIDs, row.categories, row.isActive, row.createdBy, row.createdAt, row.updatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return infra.WrapRepoErr("coupon code already exists", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to insert coupon", err)
	}
	return nil
}

func (r *CouponRepository) Update(ctx context.Context, c *coupon.Coupon) error {
	row := toCouponRow(c)
	tag, err := r.db.Exec(ctx, `
		UPDATE coupons SET
			description = $2, kind = $3, percent_value = $4, amount_cents = $5,
			currency = $6, minimum_amount_cents = $7, maximum_discount_cents = $8,
			start_at = $9, end_at = $10, usage_limit_total = $11,
			usage_limit_per_user = $12, applicable_to = $13, course_ids = $14,
			categories = $15, is_active = $16, updated_at = $17
		WHERE id = $1`,
		row.id, row.description, row.kind, row.percentValue, row.amountCents,
		row.currency, row.minimumAmountCents, row.maximumDiscountCents,
		row.startAt, row.endAt, row.usageLimitTotal,
		row.usageLimitPerUser, row.applicableTo, row.courseIDs,
		row.categories, row.isActive, row.updatedAt,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update coupon", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("coupon not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *CouponRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM coupons WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete coupon", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("coupon not found", nil, infra.KindNotFound)
	}
	return nil
}

// SaveWithOptimisticRedemption commits the redemption appended by the domain
// layer. The counter bump is conditional on the usage count the caller read;
// losing that race reports KindConflict so the caller can re-check and retry.
func (r *CouponRepository) SaveWithOptimisticRedemption(ctx context.Context, c *coupon.Coupon, expectedUsedCount int) error {
	redemptions := c.Redemptions()
	if len(redemptions) == 0 {
		return infra.WrapRepoErr("no redemption to persist", nil)
	}
	latest := redemptions[len(redemptions)-1]

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return infra.WrapRepoErr("failed to begin transaction", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	tag, err := tx.Exec(ctx, `
		UPDATE coupons SET used_count = used_count + 1, updated_at = $3
		WHERE id = $1 AND used_count = $2`,
		c.ID(), expectedUsedCount, c.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to increment usage count", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("concurrent redemption detected", nil, infra.KindConflict)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO coupon_redemptions (coupon_id, user_id, order_id, discount_cents, currency, used_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		c.ID(), latest.UserID, latest.OrderID, latest.DiscountAmount.Amount(), latest.DiscountAmount.Currency(), latest.UsedAt,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert redemption", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return infra.WrapRepoErr("failed to commit redemption", err)
	}
	return nil
}

func (r *CouponRepository) findOne(ctx context.Context, query string, arg any) (*coupon.Coupon, error) {
	var row couponRow
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&row.id, &row.code, &row.description, &row.kind, &row.percentValue, &row.amountCents, &row.currency,
		&row.minimumAmountCents, &row.maximumDiscountCents, &row.startAt, &row.endAt,
		&row.usageLimitTotal, &row.usageLimitPerUser, &row.usedCount, &row.applicableTo,
		&row.courseIDs, &row.categories, &row.isActive, &row.createdBy, &row.createdAt, &row.updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("coupon not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find coupon", err)
	}

	redemptions, err := r.loadRedemptions(ctx, row.id)
	if err != nil {
		return nil, err
	}
	return rowToCoupon(row, redemptions)
}

func (r *CouponRepository) loadRedemptions(ctx context.Context, couponID uuid.UUID) ([]coupon.Redemption, error) {
	rows, err := r.db.Query(ctx, `
		SELECT user_id, order_id, discount_cents, currency, used_at
		FROM coupon_redemptions WHERE coupon_id = $1 ORDER BY used_at, id`,
		couponID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load redemptions", err)
	}
	defer rows.Close()

	var result []coupon.Redemption
	for rows.Next() {
		var (
			userID, orderID uuid.UUID
			discountCents   int64
			currency        string
			usedAt          time.Time
		)
		if err := rows.Scan(&userID, &orderID, &discountCents, &currency, &usedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan redemption", err)
		}
		amount, err := money.New(discountCents, currency)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid redemption amount", err)
		}
		result = append(result, coupon.Redemption{
			UserID:         userID,
			OrderID:        orderID,
			DiscountAmount: amount,
			UsedAt:         usedAt,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate redemptions", err)
	}
	return result, nil
}

type couponRow struct {
	id                   uuid.UUID
	code                 string
	description          string
	kind                 string
	percentValue         float64
	amountCents          int64
	currency             string
	minimumAmountCents   pgtype.Int8
	maximumDiscountCents pgtype.Int8
	startAt              time.Time
	endAt                time.Time
	usageLimitTotal      pgtype.Int4
	usageLimitPerUser    int
	usedCount            int
	applicableTo         string
	courseIDs            []string
	categories           []string
	isActive             bool
	createdBy            uuid.UUID
	createdAt            time.Time
	updatedAt            time.Time
}

func toCouponRow(c *coupon.Coupon) couponRow {
	row := couponRow{
		id:                c.ID(),
		code:              c.Code().String(),
		description:       c.Description(),
		kind:              c.Value().Kind().String(),
		startAt:           c.Window().StartAt(),
		endAt:             c.Window().EndAt(),
		usageLimitTotal:   pgconv.IntPtrToPgtype(c.UsageLimit().Total()),
		usageLimitPerUser: c.UsageLimit().PerUser(),
		usedCount:         c.UsedCount(),
		applicableTo:      c.Scope().Kind().String(),
		isActive:          c.IsActive(),
		createdBy:         c.CreatedBy(),
		createdAt:         c.CreatedAt(),
		updatedAt:         c.UpdatedAt(),
	}

	if c.Value().Kind() == coupon.KindPercentage {
		row.percentValue = c.Value().Percent()
		row.currency = money.DefaultCurrency
	} else {
		row.amountCents = c.Value().Amount().Amount()
		row.currency = c.Value().Amount().Currency()
	}

	if m := c.MinimumAmount(); m != nil {
		v := m.Amount()
		row.minimumAmountCents = pgconv.Int64PtrToPgtype(&v)
	}
	if m := c.MaximumDiscount(); m != nil {
		v := m.Amount()
		row.maximumDiscountCents = pgconv.Int64PtrToPgtype(&v)
	}

	for _, id := range c.Scope().Courses() {
		row.courseIDs = append(row.courseIDs, id.String())
	}
	row.categories = c.Scope().Categories()
	return row
}

func rowToCoupon(row couponRow, redemptions []coupon.Redemption) (*coupon.Coupon, error) {
	var value coupon.Value
	if coupon.Kind(row.kind) == coupon.KindPercentage {
		value = coupon.ReconstructValue(coupon.KindPercentage, row.percentValue, money.Money{})
	} else {
		amount, err := money.New(row.amountCents, row.currency)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid coupon amount", err)
		}
		value = coupon.ReconstructValue(coupon.KindFixedAmount, 0, amount)
	}

	minAmount, err := moneyPtrFromCents(pgconv.Int64PtrFromPgtype(row.minimumAmountCents), row.currency)
	if err != nil {
		return nil, err
	}
	maxDiscount, err := moneyPtrFromCents(pgconv.Int64PtrFromPgtype(row.maximumDiscountCents), row.currency)
	if err != nil {
		return nil, err
	}

	courseIDs := make([]uuid.UUID, 0, len(row.courseIDs))
	for _, raw := range row.courseIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid course id in coupon scope", err)
		}
		courseIDs = append(courseIDs, id)
	}

	return coupon.ReconstructCoupon(
		row.id,
		coupon.Code(row.code),
		row.description,
		value,
		minAmount,
		maxDiscount,
		coupon.ReconstructWindow(row.startAt, row.endAt),
		coupon.ReconstructUsageLimit(pgconv.IntPtrFromPgtype(row.usageLimitTotal), row.usageLimitPerUser),
		coupon.ReconstructScope(coupon.ScopeKind(row.applicableTo), courseIDs, row.categories),
		row.isActive,
		row.usedCount,
		redemptions,
		row.createdBy,
		row.createdAt,
		row.updatedAt,
	), nil
}

func moneyPtrFromCents(cents *int64, currency string) (*money.Money, error) {
	if cents == nil {
		return nil, nil
	}
	m, err := money.New(*cents, currency)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid money amount", err)
	}
	return &m, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgErrCodeUniqueViolation
}
