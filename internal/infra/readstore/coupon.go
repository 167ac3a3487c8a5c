package readstore

import (
	"context"
	"fmt"
	"strings"
	"time"

	"skillforge/internal/domain/coupon"
	"skillforge/internal/infra"
	"skillforge/internal/infra/repository"
	"skillforge/internal/pkg/clock"
	"skillforge/internal/pkg/pgconv"
	"skillforge/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CouponReadStore struct {
	db    *pgxpool.Pool
	repo  *repository.CouponRepository
	clock clock.Clock
}

func NewCouponReadStore(db *pgxpool.Pool, repo *repository.CouponRepository, clk clock.Clock) *CouponReadStore {
	return &CouponReadStore{db: db, repo: repo, clock: clk}
}

func (s *CouponReadStore) FindViewByID(ctx context.Context, id uuid.UUID) (*queries.CouponView, error) {
	var (
		view                 queries.CouponView
		percentValue         float64
		amountCents          int64
		minimumAmountCents   pgtype.Int8
		maximumDiscountCents pgtype.Int8
		usageLimitTotal      pgtype.Int4
		courseIDs            []string
	)
	err := s.db.QueryRow(ctx, `
		SELECT id, code, description, kind, percent_value, amount_cents, currency,
		       minimum_amount_cents, maximum_discount_cents, start_at, end_at,
		       usage_limit_total, usage_limit_per_user, used_count, applicable_to,
		       course_ids, categories, is_active, created_by, created_at, updated_at
		FROM coupons WHERE id = $1`,
		id,
	).Scan(
		&view.ID, &view.Code, &view.Description, &view.Kind, &percentValue, &amountCents, &view.Currency,
		&minimumAmountCents, &maximumDiscountCents, &view.StartAt, &view.EndAt,
		&usageLimitTotal, &view.UsageLimitPerUser, &view.UsedCount, &view.ApplicableTo,
		&courseIDs, &view.Categories, &view.IsActive, &view.CreatedBy, &view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("coupon not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find coupon", err)
	}

	view.Value = couponValueColumn(view.Kind, percentValue, amountCents)
	view.MinimumAmountCents = pgconv.Int64PtrFromPgtype(minimumAmountCents)
	view.MaximumDiscountCents = pgconv.Int64PtrFromPgtype(maximumDiscountCents)
	view.UsageLimitTotal = pgconv.IntPtrFromPgtype(usageLimitTotal)
	for _, raw := range courseIDs {
		cid, err := uuid.Parse(raw)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid course id in coupon scope", err)
		}
		view.CourseIDs = append(view.CourseIDs, cid)
	}
	return &view, nil
}

func (s *CouponReadStore) List(ctx context.Context, filters queries.CouponFilters, page, limit int) ([]queries.CouponListItem, int64, error) {
	where, args := buildCouponFilter(filters, s.clock.Now())

	var total int64
	if err := s.db.QueryRow(ctx, `SELECT COUNT(*) FROM coupons`+where, args...).Scan(&total); err != nil {
		return nil, 0, infra.WrapRepoErr("failed to count coupons", err)
	}

	args = append(args, limit, (page-1)*limit)
	rows, err := s.db.Query(ctx, fmt.Sprintf(`
		SELECT id, code, description, kind, percent_value, amount_cents,
		       start_at, end_at, used_count, is_active, applicable_to, created_at
		FROM coupons%s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d`, where, len(args)-1, len(args)),
		args...,
	)
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to list coupons", err)
	}
	defer rows.Close()

	items := make([]queries.CouponListItem, 0, limit)
	for rows.Next() {
		var (
			item         queries.CouponListItem
			percentValue float64
			amountCents  int64
		)
		if err := rows.Scan(
			&item.ID, &item.Code, &item.Description, &item.Kind, &percentValue, &amountCents,
			&item.StartAt, &item.EndAt, &item.UsedCount, &item.IsActive, &item.ApplicableTo, &item.CreatedAt,
		); err != nil {
			return nil, 0, infra.WrapRepoErr("failed to scan coupon row", err)
		}
		item.Value = couponValueColumn(item.Kind, percentValue, amountCents)
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, infra.WrapRepoErr("failed to iterate coupons", err)
	}
	return items, total, nil
}

func (s *CouponReadStore) FindEntityByCode(ctx context.Context, code coupon.Code) (*coupon.Coupon, error) {
	return s.repo.FindByCode(ctx, code)
}

func couponValueColumn(kind string, percentValue float64, amountCents int64) int64 {
	if coupon.Kind(kind) == coupon.KindPercentage {
		return int64(percentValue)
	}
	return amountCents
}

func buildCouponFilter(filters queries.CouponFilters, now time.Time) (string, []any) {
	var (
		conds []string
		args  []any
	)
	if filters.Kind != nil {
		args = append(args, *filters.Kind)
		conds = append(conds, fmt.Sprintf("kind = $%d", len(args)))
	}
	if filters.Status != nil {
		switch *filters.Status {
		case "active":
			args = append(args, now)
			conds = append(conds, fmt.Sprintf("is_active AND end_at >= $%d", len(args)))
		case "inactive":
			conds = append(conds, "NOT is_active")
		case "expired":
			args = append(args, now)
			conds = append(conds, fmt.Sprintf("end_at < $%d", len(args)))
		}
	}
	if filters.Search != nil && *filters.Search != "" {
		args = append(args, "%"+strings.ToUpper(*filters.Search)+"%", "%"+*filters.Search+"%")
		conds = append(conds, fmt.Sprintf("(code LIKE $%d OR description ILIKE $%d)", len(args)-1, len(args)))
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

type CourseReadStore struct {
	db *pgxpool.Pool
}

func NewCourseReadStore(db *pgxpool.Pool) *CourseReadStore {
	return &CourseReadStore{db: db}
}

func (s *CourseReadStore) FindCourseCategory(ctx context.Context, id uuid.UUID) (string, error) {
	var category string
	err := s.db.QueryRow(ctx, `SELECT category FROM courses WHERE id = $1`, id).Scan(&category)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return "", infra.WrapRepoErr("course not found", err, infra.KindNotFound)
		}
		return "", infra.WrapRepoErr("failed to find course", err)
	}
	return category, nil
}
