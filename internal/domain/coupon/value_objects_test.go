//go:build unit

package coupon_test

import (
	"testing"
	"time"

	"skillforge/internal/domain/coupon"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCode(t *testing.T) {
	cases := []struct {
		name  string
		raw   string
		want  string
		errIs error
	}{
		{name: "plain uppercase", raw: "SPRING20", want: "SPRING20"},
		{name: "lowercase normalized", raw: "spring20", want: "SPRING20"},
		{name: "surrounding whitespace trimmed", raw: "  SAVE10  ", want: "SAVE10"},
		{name: "underscore and hyphen allowed", raw: "BLACK_FRIDAY-2026", want: "BLACK_FRIDAY-2026"},
		{name: "empty rejected", raw: "", errIs: coupon.ErrInvalidCode},
		{name: "inner space rejected", raw: "SAVE 10", errIs: coupon.ErrInvalidCode},
		{name: "symbols rejected", raw: "SAVE10%", errIs: coupon.ErrInvalidCode},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, err := coupon.NewCode(tc.raw)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, code.String())
		})
	}
}

func TestNewWindow(t *testing.T) {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	t.Run("end after start", func(t *testing.T) {
		w, err := coupon.NewWindow(start, start.Add(time.Hour))
		require.NoError(t, err)
		assert.True(t, w.Contains(start))
		assert.True(t, w.Contains(start.Add(time.Hour)))
		assert.False(t, w.Contains(start.Add(2*time.Hour)))
	})

	t.Run("end equal to start rejected", func(t *testing.T) {
		_, err := coupon.NewWindow(start, start)
		assert.ErrorIs(t, err, coupon.ErrInvalidWindow)
	})

	t.Run("end before start rejected", func(t *testing.T) {
		_, err := coupon.NewWindow(start, start.Add(-time.Hour))
		assert.ErrorIs(t, err, coupon.ErrInvalidWindow)
	})
}

func TestNewUsageLimit(t *testing.T) {
	t.Run("per-user defaults to one", func(t *testing.T) {
		l, err := coupon.NewUsageLimit(nil, 0)
		require.NoError(t, err)
		assert.Equal(t, coupon.DefaultPerUserLimit, l.PerUser())
		assert.Nil(t, l.Total())
	})

	t.Run("negative per-user rejected", func(t *testing.T) {
		_, err := coupon.NewUsageLimit(nil, -1)
		assert.ErrorIs(t, err, coupon.ErrInvalidPerUserLimit)
	})

	t.Run("zero total rejected", func(t *testing.T) {
		zero := 0
		_, err := coupon.NewUsageLimit(&zero, 1)
		assert.ErrorIs(t, err, coupon.ErrInvalidTotalLimit)
	})
}

func TestScope(t *testing.T) {
	t.Run("all courses covers everything", func(t *testing.T) {
		s := coupon.NewAllCoursesScope()
		assert.True(t, s.CoversCourse(uuid.New()))
		assert.True(t, s.CoversCategory("anything"))
	})

	t.Run("course scope ignores category check", func(t *testing.T) {
		courseID := uuid.New()
		s, err := coupon.NewCoursesScope([]uuid.UUID{courseID})
		require.NoError(t, err)
		assert.True(t, s.CoversCourse(courseID))
		assert.False(t, s.CoversCourse(uuid.New()))
		assert.True(t, s.CoversCategory("anything"))
	})

	t.Run("category scope ignores course check", func(t *testing.T) {
		s, err := coupon.NewCategoriesScope([]string{"design"})
		require.NoError(t, err)
		assert.True(t, s.CoversCategory("design"))
		assert.False(t, s.CoversCategory("programming"))
		assert.True(t, s.CoversCourse(uuid.New()))
	})

	t.Run("empty course list rejected", func(t *testing.T) {
		_, err := coupon.NewCoursesScope(nil)
		assert.ErrorIs(t, err, coupon.ErrEmptyScopeCourses)
	})

	t.Run("empty category list rejected", func(t *testing.T) {
		_, err := coupon.NewCategoriesScope(nil)
		assert.ErrorIs(t, err, coupon.ErrEmptyScopeCategories)
	})
}

func TestNewPercentageValue(t *testing.T) {
	for _, percent := range []float64{0, 50, 100} {
		_, err := coupon.NewPercentageValue(percent)
		assert.NoError(t, err)
	}
	for _, percent := range []float64{-1, 100.5} {
		_, err := coupon.NewPercentageValue(percent)
		assert.ErrorIs(t, err, coupon.ErrInvalidPercentValue)
	}
}
