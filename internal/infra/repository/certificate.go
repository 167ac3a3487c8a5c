package repository

import (
	"context"
	"time"

	"skillforge/internal/domain/certificate"
	"skillforge/internal/infra"
	"skillforge/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CertificateRepository struct {
	db *pgxpool.Pool
}

func NewCertificateRepository(db *pgxpool.Pool) *CertificateRepository {
	return &CertificateRepository{db: db}
}

const certificateColumns = `
	id, certificate_id, student_id, course_id, instructor_id,
	student_name, course_title, instructor_name, grade, score,
	completed_at, issued_at, status, revoked_at, revoked_reason,
	total_lessons, completed_lessons, average_score, time_spent_minutes,
	created_at, updated_at`

// FindActiveOrInactive returns the live certificate for a student and course.
// Revoked certificates are excluded so a fresh one can be issued after
// revocation.
func (r *CertificateRepository) FindActiveOrInactive(ctx context.Context, studentID, courseID uuid.UUID) (*certificate.Certificate, error) {
	return r.findOne(ctx,
		`SELECT`+certificateColumns+` FROM certificates
		 WHERE student_id = $1 AND course_id = $2 AND status <> 'revoked'`,
		studentID, courseID,
	)
}

func (r *CertificateRepository) FindByID(ctx context.Context, id uuid.UUID) (*certificate.Certificate, error) {
	return r.findOne(ctx, `SELECT`+certificateColumns+` FROM certificates WHERE id = $1`, id)
}

// InsertIfAbsent persists a freshly issued certificate. The partial unique
// index on (student_id, course_id) for non-revoked rows turns a concurrent
// issuance into KindConflict; the caller then fetches the winning row.
func (r *CertificateRepository) InsertIfAbsent(ctx context.Context, c *certificate.Certificate) error {
	row := toCertificateRow(c)
	_, err := r.db.Exec(ctx, `
		INSERT INTO certificates (`+certificateColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)`,
		row.id, row.certificateID, row.studentID, row.courseID, row.instructorID,
		row.studentName, row.courseTitle, row.instructorName, row.grade, row.score,
		row.completedAt, row.issuedAt, row.status, row.revokedAt, row.revokedReason,
		row.totalLessons, row.completedLessons, row.averageScore, row.timeSpentMinutes,
		row.createdAt, row.updatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return infra.WrapRepoErr("certificate already issued for enrollment", err, infra.KindConflict)
		}
		return infra.WrapRepoErr("failed to insert certificate", err)
	}
	return nil
}

func (r *CertificateRepository) Save(ctx context.Context, c *certificate.Certificate) error {
	row := toCertificateRow(c)
	tag, err := r.db.Exec(ctx, `
		UPDATE certificates SET
			status = $2, revoked_at = $3, revoked_reason = $4, updated_at = $5
		WHERE id = $1`,
		row.id, row.status, row.revokedAt, row.revokedReason, row.updatedAt,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update certificate", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("certificate not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *CertificateRepository) findOne(ctx context.Context, query string, args ...any) (*certificate.Certificate, error) {
	var row certificateRow
	err := r.db.QueryRow(ctx, query, args...).Scan(
		&row.id, &row.certificateID, &row.studentID, &row.courseID, &row.instructorID,
		&row.studentName, &row.courseTitle, &row.instructorName, &row.grade, &row.score,
		&row.completedAt, &row.issuedAt, &row.status, &row.revokedAt, &row.revokedReason,
		&row.totalLessons, &row.completedLessons, &row.averageScore, &row.timeSpentMinutes,
		&row.createdAt, &row.updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("certificate not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find certificate", err)
	}
	return rowToCertificate(row), nil
}

type certificateRow struct {
	id               uuid.UUID
	certificateID    string
	studentID        uuid.UUID
	courseID         uuid.UUID
	instructorID     uuid.UUID
	studentName      string
	courseTitle      string
	instructorName   string
	grade            string
	score            pgtype.Int4
	completedAt      time.Time
	issuedAt         time.Time
	status           string
	revokedAt        pgtype.Timestamptz
	revokedReason    pgtype.Text
	totalLessons     int
	completedLessons int
	averageScore     float64
	timeSpentMinutes int
	createdAt        time.Time
	updatedAt        time.Time
}

func toCertificateRow(c *certificate.Certificate) certificateRow {
	row := certificateRow{
		id:               c.ID(),
		certificateID:    c.CertificateID().String(),
		studentID:        c.StudentID(),
		courseID:         c.CourseID(),
		instructorID:     c.InstructorID(),
		studentName:      c.StudentName(),
		courseTitle:      c.CourseTitle(),
		instructorName:   c.InstructorName(),
		grade:            c.Grade().String(),
		completedAt:      c.CompletedAt(),
		issuedAt:         c.IssuedAt(),
		status:           c.Status().String(),
		revokedAt:        pgconv.TimePtrToPgtype(c.RevokedAt()),
		totalLessons:     c.Metadata().TotalLessons,
		completedLessons: c.Metadata().CompletedLessons,
		averageScore:     c.Metadata().AverageScore,
		timeSpentMinutes: c.Metadata().TimeSpentMinutes,
		createdAt:        c.CreatedAt(),
		updatedAt:        c.UpdatedAt(),
	}
	if s := c.Score(); s != nil {
		v := int(*s)
		row.score = pgconv.IntPtrToPgtype(&v)
	}
	if reason := c.RevokedReason(); reason != nil {
		v := reason.String()
		row.revokedReason = pgconv.StringPtrToPgtype(&v)
	}
	return row
}

func rowToCertificate(row certificateRow) *certificate.Certificate {
	var score *certificate.Score
	if v := pgconv.IntPtrFromPgtype(row.score); v != nil {
		s := certificate.Score(*v)
		score = &s
	}
	var reason *certificate.RevocationReason
	if v := pgconv.StringPtrFromPgtype(row.revokedReason); v != nil {
		r := certificate.RevocationReason(*v)
		reason = &r
	}

	return certificate.ReconstructCertificate(
		row.id,
		certificate.ID(row.certificateID),
		row.studentID,
		row.courseID,
		row.instructorID,
		row.studentName,
		row.courseTitle,
		row.instructorName,
		certificate.Grade(row.grade),
		score,
		row.completedAt,
		row.issuedAt,
		certificate.Status(row.status),
		pgconv.TimePtrFromPgtype(row.revokedAt),
		reason,
		certificate.Metadata{
			TotalLessons:     row.totalLessons,
			CompletedLessons: row.completedLessons,
			AverageScore:     row.averageScore,
			TimeSpentMinutes: row.timeSpentMinutes,
		},
		row.createdAt,
		row.updatedAt,
	)
}
