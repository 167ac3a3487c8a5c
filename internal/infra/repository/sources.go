package repository

import (
	"context"

	"skillforge/internal/infra"
	"skillforge/internal/pkg/pgconv"
	"skillforge/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Read-only adapters over tables owned by the enrollment, catalog and
// identity subsystems.

type EnrollmentSource struct {
	db *pgxpool.Pool
}

func NewEnrollmentSource(db *pgxpool.Pool) *EnrollmentSource {
	return &EnrollmentSource{db: db}
}

func (s *EnrollmentSource) GetEnrollment(ctx context.Context, studentID, courseID uuid.UUID) (*commands.EnrollmentInfo, error) {
	var (
		info        commands.EnrollmentInfo
		completedAt pgtype.Timestamptz
	)
	err := s.db.QueryRow(ctx, `
		SELECT progress, completed_at, completed_lessons, average_score, time_spent_minutes
		FROM enrollments WHERE student_id = $1 AND course_id = $2`,
		studentID, courseID,
	).Scan(&info.Progress, &completedAt, &info.CompletedLessons, &info.AverageScore, &info.TimeSpentMinutes)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("enrollment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find enrollment", err)
	}
	info.CompletedAt = pgconv.TimePtrFromPgtype(completedAt)
	return &info, nil
}

type CourseSource struct {
	db *pgxpool.Pool
}

func NewCourseSource(db *pgxpool.Pool) *CourseSource {
	return &CourseSource{db: db}
}

func (s *CourseSource) FindByID(ctx context.Context, id uuid.UUID) (*commands.CourseInfo, error) {
	var info commands.CourseInfo
	err := s.db.QueryRow(ctx, `
		SELECT id, title, category, instructor_id, total_lessons
		FROM courses WHERE id = $1`,
		id,
	).Scan(&info.ID, &info.Title, &info.Category, &info.InstructorID, &info.TotalLessons)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("course not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find course", err)
	}
	return &info, nil
}

type IdentitySource struct {
	db *pgxpool.Pool
}

func NewIdentitySource(db *pgxpool.Pool) *IdentitySource {
	return &IdentitySource{db: db}
}

func (s *IdentitySource) FindUserByID(ctx context.Context, id uuid.UUID) (*commands.UserInfo, error) {
	var info commands.UserInfo
	err := s.db.QueryRow(ctx, `
		SELECT id, display_name, email FROM users WHERE id = $1`,
		id,
	).Scan(&info.ID, &info.DisplayName, &info.Email)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user", err)
	}
	return &info, nil
}
