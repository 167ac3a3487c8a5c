package readstore

import (
	"context"
	"fmt"
	"strings"

	"skillforge/internal/domain/certificate"
	"skillforge/internal/infra"
	"skillforge/internal/pkg/pgconv"
	"skillforge/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CertificateReadStore struct {
	db *pgxpool.Pool
}

func NewCertificateReadStore(db *pgxpool.Pool) *CertificateReadStore {
	return &CertificateReadStore{db: db}
}

const certificateViewColumns = `
	id, certificate_id, student_id, course_id, instructor_id,
	student_name, course_title, instructor_name, grade, score,
	completed_at, issued_at, status, revoked_at, revoked_reason,
	total_lessons, completed_lessons, average_score, time_spent_minutes,
	created_at, updated_at`

func (s *CertificateReadStore) FindViewByID(ctx context.Context, id uuid.UUID) (*queries.CertificateView, error) {
	return s.findOne(ctx, `SELECT`+certificateViewColumns+` FROM certificates WHERE id = $1`, id)
}

func (s *CertificateReadStore) FindViewByCertificateID(ctx context.Context, certID certificate.ID) (*queries.CertificateView, error) {
	return s.findOne(ctx, `SELECT`+certificateViewColumns+` FROM certificates WHERE certificate_id = $1`, certID.String())
}

func (s *CertificateReadStore) List(ctx context.Context, filters queries.CertificateFilters, page, limit int) ([]queries.CertificateView, int64, error) {
	where, args := buildCertificateFilter(filters)

	var total int64
	if err := s.db.QueryRow(ctx, `SELECT COUNT(*) FROM certificates`+where, args...).Scan(&total); err != nil {
		return nil, 0, infra.WrapRepoErr("failed to count certificates", err)
	}

	args = append(args, limit, (page-1)*limit)
	rows, err := s.db.Query(ctx, fmt.Sprintf(`
		SELECT%s
		FROM certificates%s
		ORDER BY issued_at DESC
		LIMIT $%d OFFSET $%d`, certificateViewColumns, where, len(args)-1, len(args)),
		args...,
	)
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to list certificates", err)
	}
	defer rows.Close()

	items := make([]queries.CertificateView, 0, limit)
	for rows.Next() {
		view, err := scanCertificateView(rows.Scan)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, *view)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, infra.WrapRepoErr("failed to iterate certificates", err)
	}
	return items, total, nil
}

func (s *CertificateReadStore) findOne(ctx context.Context, query string, arg any) (*queries.CertificateView, error) {
	view, err := scanCertificateView(s.db.QueryRow(ctx, query, arg).Scan)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("certificate not found", err, infra.KindNotFound)
		}
		return nil, err
	}
	return view, nil
}

func scanCertificateView(scan func(dest ...any) error) (*queries.CertificateView, error) {
	var (
		view          queries.CertificateView
		score         pgtype.Int4
		revokedAt     pgtype.Timestamptz
		revokedReason pgtype.Text
	)
	err := scan(
		&view.ID, &view.CertificateID, &view.StudentID, &view.CourseID, &view.InstructorID,
		&view.StudentName, &view.CourseTitle, &view.InstructorName, &view.Grade, &score,
		&view.CompletedAt, &view.IssuedAt, &view.Status, &revokedAt, &revokedReason,
		&view.Metadata.TotalLessons, &view.Metadata.CompletedLessons, &view.Metadata.AverageScore, &view.Metadata.TimeSpentMinutes,
		&view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, err
		}
		return nil, infra.WrapRepoErr("failed to scan certificate row", err)
	}
	view.Score = pgconv.IntPtrFromPgtype(score)
	view.RevokedAt = pgconv.TimePtrFromPgtype(revokedAt)
	view.RevokedReason = pgconv.StringPtrFromPgtype(revokedReason)
	return &view, nil
}

func buildCertificateFilter(filters queries.CertificateFilters) (string, []any) {
	var (
		conds []string
		args  []any
	)
	if filters.CourseID != nil {
		args = append(args, *filters.CourseID)
		conds = append(conds, fmt.Sprintf("course_id = $%d", len(args)))
	}
	if filters.StudentID != nil {
		args = append(args, *filters.StudentID)
		conds = append(conds, fmt.Sprintf("student_id = $%d", len(args)))
	}
	if filters.Status != nil {
		args = append(args, *filters.Status)
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	if filters.Search != nil && *filters.Search != "" {
		args = append(args, "%"+*filters.Search+"%")
		p := len(args)
		conds = append(conds, fmt.Sprintf("(student_name ILIKE $%d OR course_title ILIKE $%d OR certificate_id ILIKE $%d)", p, p, p))
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}
