//go:build unit

package certificate_test

import (
	"regexp"
	"testing"
	"time"

	"skillforge/internal/domain/certificate"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completedEnrollment(completedAt time.Time) certificate.EnrollmentSnapshot {
	return certificate.EnrollmentSnapshot{
		Progress:         100,
		CompletedAt:      completedAt,
		CompletedLessons: 24,
		AverageScore:     93.5,
		TimeSpentMinutes: 1440,
	}
}

func TestIssuerIssue(t *testing.T) {
	now := time.Date(2026, 2, 15, 9, 0, 0, 0, time.UTC)
	issuer := certificate.NewIssuer(certificate.NewRandomIDGenerator())
	course := certificate.CourseSnapshot{
		ID:           uuid.New(),
		Title:        "Go Fundamentals",
		InstructorID: uuid.New(),
		TotalLessons: 24,
	}
	student := certificate.PartyRef{ID: uuid.New(), DisplayName: "Ada Lovelace"}
	instructor := certificate.PartyRef{ID: course.InstructorID, DisplayName: "Rob Pike"}

	t.Run("issues active certificate with snapshot metadata", func(t *testing.T) {
		score, err := certificate.NewScore(95)
		require.NoError(t, err)

		cert, err := issuer.Issue(completedEnrollment(now.Add(-time.Hour)), course, student, instructor, &score, now)
		require.NoError(t, err)

		assert.Equal(t, certificate.StatusActive, cert.Status())
		assert.Equal(t, student.ID, cert.StudentID())
		assert.Equal(t, course.ID, cert.CourseID())
		assert.Equal(t, "Ada Lovelace", cert.StudentName())
		assert.Equal(t, "Go Fundamentals", cert.CourseTitle())
		assert.Equal(t, "Rob Pike", cert.InstructorName())
		assert.Equal(t, certificate.GradeA, cert.Grade())
		assert.Equal(t, now, cert.IssuedAt())
		assert.Equal(t, now.Add(-time.Hour), cert.CompletedAt())
		want := certificate.Metadata{
			TotalLessons:     24,
			CompletedLessons: 24,
			AverageScore:     93.5,
			TimeSpentMinutes: 1440,
		}
		assert.Empty(t, cmp.Diff(want, cert.Metadata()))
	})

	t.Run("no score yields Pass grade", func(t *testing.T) {
		cert, err := issuer.Issue(completedEnrollment(now.Add(-time.Hour)), course, student, instructor, nil, now)
		require.NoError(t, err)

		assert.Equal(t, certificate.GradePass, cert.Grade())
		assert.Nil(t, cert.Score())
	})

	t.Run("incomplete course is rejected", func(t *testing.T) {
		enrollment := completedEnrollment(now.Add(-time.Hour))
		enrollment.Progress = 99

		_, err := issuer.Issue(enrollment, course, student, instructor, nil, now)
		assert.ErrorIs(t, err, certificate.ErrCourseNotCompleted)
	})

	t.Run("completion in the future is rejected", func(t *testing.T) {
		_, err := issuer.Issue(completedEnrollment(now.Add(time.Minute)), course, student, instructor, nil, now)
		assert.ErrorIs(t, err, certificate.ErrCompletionInFuture)
	})
}

func TestGradeFromScore(t *testing.T) {
	cases := []struct {
		score int
		want  certificate.Grade
	}{
		{100, certificate.GradeAPlus},
		{97, certificate.GradeAPlus},
		{96, certificate.GradeA},
		{93, certificate.GradeA},
		{92, certificate.GradeBPlus},
		{87, certificate.GradeBPlus},
		{86, certificate.GradeB},
		{83, certificate.GradeB},
		{82, certificate.GradeCPlus},
		{77, certificate.GradeCPlus},
		{76, certificate.GradeC},
		{70, certificate.GradeC},
		{69, certificate.GradePass},
		{0, certificate.GradePass},
	}

	for _, tc := range cases {
		score, err := certificate.NewScore(tc.score)
		require.NoError(t, err)
		assert.Equal(t, tc.want, certificate.GradeFromScore(score), "score %d", tc.score)
	}
}

func TestRandomIDGenerator(t *testing.T) {
	gen := certificate.NewRandomIDGenerator()
	now := time.Date(2026, 2, 15, 9, 0, 0, 0, time.UTC)
	format := regexp.MustCompile(`^CERT-[0-9A-Z]+-[0-9A-Z]{5}$`)

	seen := make(map[certificate.ID]struct{})
	for i := 0; i < 100; i++ {
		id := gen.NewCertificateID(now)
		assert.Regexp(t, format, id.String())
		seen[id] = struct{}{}
	}
	assert.Greater(t, len(seen), 1, "ids should not all collide")
}

func TestNewID(t *testing.T) {
	t.Run("normalizes case and whitespace", func(t *testing.T) {
		id, err := certificate.NewID("  cert-lx2k9m4p-a3f7b ")
		require.NoError(t, err)
		assert.Equal(t, "CERT-LX2K9M4P-A3F7B", id.String())
	})

	for _, raw := range []string{"", "LX2K9M4P-A3F7B", "CERT-LX2K9M4P", "CERT-LX2K9M4P-A3F", "CERT--A3F7B"} {
		_, err := certificate.NewID(raw)
		assert.ErrorIs(t, err, certificate.ErrInvalidCertificateID, "raw %q", raw)
	}
}

func TestNewRevocationReason(t *testing.T) {
	t.Run("trims input", func(t *testing.T) {
		reason, err := certificate.NewRevocationReason("  fraud ")
		require.NoError(t, err)
		assert.Equal(t, "fraud", reason.String())
	})

	t.Run("blank rejected", func(t *testing.T) {
		_, err := certificate.NewRevocationReason("   ")
		assert.ErrorIs(t, err, certificate.ErrEmptyRevocationReason)
	})

	t.Run("over length limit rejected", func(t *testing.T) {
		long := make([]byte, certificate.MaxReasonLength+1)
		for i := range long {
			long[i] = 'x'
		}
		_, err := certificate.NewRevocationReason(string(long))
		assert.ErrorIs(t, err, certificate.ErrReasonTooLong)
	})
}

func TestNewScore(t *testing.T) {
	for _, v := range []int{0, 100} {
		_, err := certificate.NewScore(v)
		assert.NoError(t, err)
	}
	for _, v := range []int{-1, 101} {
		_, err := certificate.NewScore(v)
		assert.ErrorIs(t, err, certificate.ErrInvalidScore)
	}
}
