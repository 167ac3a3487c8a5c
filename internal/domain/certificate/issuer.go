package certificate

import (
	"time"

	"skillforge/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrCourseNotCompleted = errs.New("student has not completed this course")
	ErrCompletionInFuture = errs.New("completion time is in the future")
)

const completedProgress = 100

// EnrollmentSnapshot is the slice of the external enrollment record the
// issuer needs. Progress is a percentage in [0,100].
type EnrollmentSnapshot struct {
	Progress         int
	CompletedAt      time.Time
	CompletedLessons int
	AverageScore     float64
	TimeSpentMinutes int
}

// CourseSnapshot and PartyRef carry display data resolved from the external
// course and identity stores at issuance time.
type CourseSnapshot struct {
	ID           uuid.UUID
	Title        string
	InstructorID uuid.UUID
	TotalLessons int
}

type PartyRef struct {
	ID          uuid.UUID
	DisplayName string
}

// Issuer decides completion eligibility and constructs the immutable
// issuance record. It performs no I/O; uniqueness across (student, course)
// is checked by the caller against the registry and enforced by storage.
type Issuer struct {
	idGen IDGenerator
}

func NewIssuer(idGen IDGenerator) *Issuer {
	return &Issuer{idGen: idGen}
}

func (i *Issuer) Issue(
	enrollment EnrollmentSnapshot,
	course CourseSnapshot,
	student PartyRef,
	instructor PartyRef,
	score *Score,
	now time.Time,
) (*Certificate, error) {
	if enrollment.Progress != completedProgress {
		return nil, ErrCourseNotCompleted
	}
	if enrollment.CompletedAt.After(now) {
		return nil, ErrCompletionInFuture
	}

	grade := GradePass
	if score != nil {
		grade = GradeFromScore(*score)
	}

	return &Certificate{
		id:             uuid.New(),
		certificateID:  i.idGen.NewCertificateID(now),
		studentID:      student.ID,
		courseID:       course.ID,
		instructorID:   instructor.ID,
		studentName:    student.DisplayName,
		courseTitle:    course.Title,
		instructorName: instructor.DisplayName,
		grade:          grade,
		score:          score,
		completedAt:    enrollment.CompletedAt,
		issuedAt:       now,
		status:         StatusActive,
		metadata: Metadata{
			TotalLessons:     course.TotalLessons,
			CompletedLessons: enrollment.CompletedLessons,
			AverageScore:     enrollment.AverageScore,
			TimeSpentMinutes: enrollment.TimeSpentMinutes,
		},
		createdAt: now,
		updatedAt: now,
	}, nil
}

func GradeFromScore(score Score) Grade {
	switch {
	case score >= 97:
		return GradeAPlus
	case score >= 93:
		return GradeA
	case score >= 87:
		return GradeBPlus
	case score >= 83:
		return GradeB
	case score >= 77:
		return GradeCPlus
	case score >= 70:
		return GradeC
	default:
		return GradePass
	}
}
