//go:build unit

package builder

import (
	"time"

	domcert "skillforge/internal/domain/certificate"
	reqdto "skillforge/internal/handler/dto/request"
	"skillforge/internal/usecase/commands"
	"skillforge/internal/usecase/queries"

	"github.com/google/uuid"
)

type CertificateBuilder struct {
	ID             uuid.UUID
	CertificateID  string
	StudentID      uuid.UUID
	CourseID       uuid.UUID
	InstructorID   uuid.UUID
	StudentName    string
	CourseTitle    string
	InstructorName string
	Grade          string
	Score          *int
	CompletedAt    time.Time
	IssuedAt       time.Time
	Status         string
	RevokedAt      *time.Time
	RevokedReason  *string
	TotalLessons   int
	Completed      int
	AverageScore   float64
	TimeSpent      int
}

func NewCertificateBuilder() *CertificateBuilder {
	issuedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	score := 95
	return &CertificateBuilder{
		ID:             uuid.New(),
		CertificateID:  "CERT-LX2K9M4P-A3F7B",
		StudentID:      uuid.New(),
		CourseID:       uuid.New(),
		InstructorID:   uuid.New(),
		StudentName:    "Test Student",
		CourseTitle:    "Advanced Go Programming",
		InstructorName: "Test Instructor",
		Grade:          "A",
		Score:          &score,
		CompletedAt:    issuedAt.Add(-time.Hour),
		IssuedAt:       issuedAt,
		Status:         "active",
		TotalLessons:   24,
		Completed:      24,
		AverageScore:   93.5,
		TimeSpent:      1440,
	}
}

func (b *CertificateBuilder) WithStatus(status string) *CertificateBuilder {
	b.Status = status
	return b
}

func (b *CertificateBuilder) WithGrade(grade string) *CertificateBuilder {
	b.Grade = grade
	return b
}

func (b *CertificateBuilder) WithScore(score int) *CertificateBuilder {
	b.Score = &score
	return b
}

func (b *CertificateBuilder) Revoked(reason string, at time.Time) *CertificateBuilder {
	b.Status = "revoked"
	b.RevokedAt = &at
	b.RevokedReason = &reason
	return b
}

func (b *CertificateBuilder) BuildDomain() *domcert.Certificate {
	var score *domcert.Score
	if b.Score != nil {
		s := domcert.Score(*b.Score)
		score = &s
	}
	var reason *domcert.RevocationReason
	if b.RevokedReason != nil {
		r := domcert.RevocationReason(*b.RevokedReason)
		reason = &r
	}
	return domcert.ReconstructCertificate(
		b.ID,
		domcert.ID(b.CertificateID),
		b.StudentID,
		b.CourseID,
		b.InstructorID,
		b.StudentName,
		b.CourseTitle,
		b.InstructorName,
		domcert.Grade(b.Grade),
		score,
		b.CompletedAt,
		b.IssuedAt,
		domcert.Status(b.Status),
		b.RevokedAt,
		reason,
		domcert.Metadata{
			TotalLessons:     b.TotalLessons,
			CompletedLessons: b.Completed,
			AverageScore:     b.AverageScore,
			TimeSpentMinutes: b.TimeSpent,
		},
		b.IssuedAt,
		b.IssuedAt,
	)
}

func (b *CertificateBuilder) BuildGenerateRequestDTO() reqdto.GenerateCertificateRequest {
	return reqdto.GenerateCertificateRequest{
		CourseID:  b.CourseID,
		StudentID: b.StudentID,
		Score:     b.Score,
	}
}

func (b *CertificateBuilder) BuildView() *queries.CertificateView {
	return &queries.CertificateView{
		ID:             b.ID,
		CertificateID:  b.CertificateID,
		StudentID:      b.StudentID,
		CourseID:       b.CourseID,
		InstructorID:   b.InstructorID,
		StudentName:    b.StudentName,
		CourseTitle:    b.CourseTitle,
		InstructorName: b.InstructorName,
		Grade:          b.Grade,
		Score:          b.Score,
		CompletedAt:    b.CompletedAt,
		IssuedAt:       b.IssuedAt,
		Status:         b.Status,
		RevokedAt:      b.RevokedAt,
		RevokedReason:  b.RevokedReason,
		Metadata: queries.CertificateMetadataView{
			TotalLessons:     b.TotalLessons,
			CompletedLessons: b.Completed,
			AverageScore:     b.AverageScore,
			TimeSpentMinutes: b.TimeSpent,
		},
		CreatedAt: b.IssuedAt,
		UpdatedAt: b.IssuedAt,
	}
}

func (b *CertificateBuilder) BuildEnrollment() *commands.EnrollmentInfo {
	completedAt := b.CompletedAt
	return &commands.EnrollmentInfo{
		Progress:         100,
		CompletedAt:      &completedAt,
		CompletedLessons: b.Completed,
		AverageScore:     b.AverageScore,
		TimeSpentMinutes: b.TimeSpent,
	}
}

func (b *CertificateBuilder) BuildCourse() *commands.CourseInfo {
	return &commands.CourseInfo{
		ID:           b.CourseID,
		Title:        b.CourseTitle,
		Category:     "programming",
		InstructorID: b.InstructorID,
		TotalLessons: b.TotalLessons,
	}
}

func (b *CertificateBuilder) BuildStudent() *commands.UserInfo {
	return &commands.UserInfo{
		ID:          b.StudentID,
		DisplayName: b.StudentName,
		Email:       "student@example.com",
	}
}

func (b *CertificateBuilder) BuildInstructor() *commands.UserInfo {
	return &commands.UserInfo{
		ID:          b.InstructorID,
		DisplayName: b.InstructorName,
		Email:       "instructor@example.com",
	}
}
