//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"skillforge/internal/domain/coupon"
	reqdto "skillforge/internal/handler/dto/request"
	"skillforge/internal/infra"
	"skillforge/internal/pkg/clock"
	"skillforge/internal/usecase/queries"
	"skillforge/tests/common/builder"
	queriesmock "skillforge/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

type couponQueriesFixture struct {
	store   *queriesmock.MockCouponReadStore
	courses *queriesmock.MockCourseReadStore
	uc      queries.CouponQueries
}

func newCouponQueriesFixture(t *testing.T) *couponQueriesFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockCouponReadStore(ctrl)
	courses := queriesmock.NewMockCourseReadStore(ctrl)
	return &couponQueriesFixture{
		store:   store,
		courses: courses,
		uc:      queries.NewCouponQueries(store, courses, clock.NewMockClock(testNow)),
	}
}

func TestCouponQueries_Validate(t *testing.T) {
	courseID := uuid.New()
	userID := uuid.New()
	req := reqdto.ValidateCouponRequest{
		Code:              "SPRING20",
		CourseID:          courseID,
		CourseAmountCents: 10000,
		Currency:          "USD",
	}

	t.Run("reports the would-be discount without redeeming", func(t *testing.T) {
		f := newCouponQueriesFixture(t)
		entity, err := builder.NewCouponBuilder().BuildDomain()
		require.NoError(t, err)

		f.store.EXPECT().FindEntityByCode(gomock.Any(), gomock.Any()).Return(entity, nil)
		f.courses.EXPECT().FindCourseCategory(gomock.Any(), courseID).Return("programming", nil)

		view, err := f.uc.Validate(context.Background(), req, userID)
		require.NoError(t, err)
		assert.Equal(t, "SPRING20", view.Code)
		assert.Equal(t, "percentage", view.Kind)
		assert.Equal(t, int64(20), view.Value)
		assert.Equal(t, int64(2000), view.DiscountCents)
		assert.Equal(t, int64(8000), view.FinalCents)
		assert.Equal(t, "USD", view.Currency)
		assert.Equal(t, 0, entity.UsedCount())
	})

	t.Run("unknown code maps to ErrCouponNotFound", func(t *testing.T) {
		f := newCouponQueriesFixture(t)

		f.store.EXPECT().FindEntityByCode(gomock.Any(), gomock.Any()).
			Return(nil, infra.WrapRepoErr("not found", nil, infra.KindNotFound))

		_, err := f.uc.Validate(context.Background(), req, userID)
		assert.ErrorIs(t, err, queries.ErrCouponNotFound)
	})

	t.Run("unknown course maps to ErrCourseNotFound", func(t *testing.T) {
		f := newCouponQueriesFixture(t)
		entity, err := builder.NewCouponBuilder().BuildDomain()
		require.NoError(t, err)

		f.store.EXPECT().FindEntityByCode(gomock.Any(), gomock.Any()).Return(entity, nil)
		f.courses.EXPECT().FindCourseCategory(gomock.Any(), courseID).
			Return("", infra.WrapRepoErr("not found", nil, infra.KindNotFound))

		_, err = f.uc.Validate(context.Background(), req, userID)
		assert.ErrorIs(t, err, queries.ErrCourseNotFound)
	})

	t.Run("malformed code fails before any lookup", func(t *testing.T) {
		f := newCouponQueriesFixture(t)
		bad := req
		bad.Code = "bad code!"

		_, err := f.uc.Validate(context.Background(), bad, userID)
		assert.ErrorIs(t, err, coupon.ErrInvalidCode)
	})

	t.Run("eligibility failures pass through", func(t *testing.T) {
		f := newCouponQueriesFixture(t)
		entity, err := builder.NewCouponBuilder().
			WithCategoryScope("design").
			BuildDomain()
		require.NoError(t, err)

		f.store.EXPECT().FindEntityByCode(gomock.Any(), gomock.Any()).Return(entity, nil)
		f.courses.EXPECT().FindCourseCategory(gomock.Any(), courseID).Return("programming", nil)

		_, err = f.uc.Validate(context.Background(), req, userID)
		assert.ErrorIs(t, err, coupon.ErrNotApplicableToCategory)
	})
}

func TestCouponQueries_List(t *testing.T) {
	f := newCouponQueriesFixture(t)
	items := []queries.CouponListItem{
		builder.NewCouponBuilder().BuildListItem(),
		builder.NewCouponBuilder().WithCode("SUMMER10").BuildListItem(),
	}

	f.store.EXPECT().List(gomock.Any(), queries.CouponFilters{}, 1, queries.DefaultPageLimit).
		Return(items, int64(42), nil)

	got, pageInfo, err := f.uc.List(context.Background(), queries.CouponFilters{}, 0, 0)
	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, queries.PageInfo{Page: 1, Limit: queries.DefaultPageLimit, Total: 42, Pages: 3}, pageInfo)
}
