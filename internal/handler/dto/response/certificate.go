package response

import (
	"time"

	"skillforge/internal/domain/certificate"
	"skillforge/internal/usecase/queries"

	"github.com/google/uuid"
)

type CertificateMetadataResponse struct {
	TotalLessons     int     `json:"totalLessons"`
	CompletedLessons int     `json:"completedLessons"`
	AverageScore     float64 `json:"averageScore"`
	TimeSpentMinutes int     `json:"timeSpentMinutes"`
}

type CertificateResponse struct {
	ID             uuid.UUID                   `json:"id"`
	CertificateID  string                      `json:"certificateId"`
	StudentID      uuid.UUID                   `json:"studentId"`
	CourseID       uuid.UUID                   `json:"courseId"`
	InstructorID   uuid.UUID                   `json:"instructorId"`
	StudentName    string                      `json:"studentName"`
	CourseTitle    string                      `json:"courseTitle"`
	InstructorName string                      `json:"instructorName"`
	Grade          string                      `json:"grade"`
	Score          *int                        `json:"score,omitempty"`
	CompletedAt    time.Time                   `json:"completedAt"`
	IssuedAt       time.Time                   `json:"issuedAt"`
	Status         string                      `json:"status"`
	RevokedAt      *time.Time                  `json:"revokedAt,omitempty"`
	RevokedReason  *string                     `json:"revokedReason,omitempty"`
	Metadata       CertificateMetadataResponse `json:"metadata"`
	CreatedAt      time.Time                   `json:"createdAt"`
	UpdatedAt      time.Time                   `json:"updatedAt"`
}

type GenerateCertificateResponse struct {
	Certificate   *CertificateResponse `json:"certificate"`
	AlreadyIssued bool                 `json:"alreadyIssued"`
}

type CertificateListResponse struct {
	Certificates []CertificateResponse `json:"certificates"`
	PageInfo     PageInfoResponse      `json:"pageInfo"`
}

type VerifyCertificateResponse struct {
	Valid       bool                 `json:"valid"`
	Certificate *CertificateResponse `json:"certificate"`
}

func FromCertificate(c *certificate.Certificate) *CertificateResponse {
	resp := &CertificateResponse{
		ID:             c.ID(),
		CertificateID:  c.CertificateID().String(),
		StudentID:      c.StudentID(),
		CourseID:       c.CourseID(),
		InstructorID:   c.InstructorID(),
		StudentName:    c.StudentName(),
		CourseTitle:    c.CourseTitle(),
		InstructorName: c.InstructorName(),
		Grade:          c.Grade().String(),
		CompletedAt:    c.CompletedAt(),
		IssuedAt:       c.IssuedAt(),
		Status:         c.Status().String(),
		RevokedAt:      c.RevokedAt(),
		Metadata: CertificateMetadataResponse{
			TotalLessons:     c.Metadata().TotalLessons,
			CompletedLessons: c.Metadata().CompletedLessons,
			AverageScore:     c.Metadata().AverageScore,
			TimeSpentMinutes: c.Metadata().TimeSpentMinutes,
		},
		CreatedAt: c.CreatedAt(),
		UpdatedAt: c.UpdatedAt(),
	}
	if s := c.Score(); s != nil {
		v := int(*s)
		resp.Score = &v
	}
	if r := c.RevokedReason(); r != nil {
		v := r.String()
		resp.RevokedReason = &v
	}
	return resp
}

func FromCertificateView(v *queries.CertificateView) *CertificateResponse {
	return &CertificateResponse{
		ID:             v.ID,
		CertificateID:  v.CertificateID,
		StudentID:      v.StudentID,
		CourseID:       v.CourseID,
		InstructorID:   v.InstructorID,
		StudentName:    v.StudentName,
		CourseTitle:    v.CourseTitle,
		InstructorName: v.InstructorName,
		Grade:          v.Grade,
		Score:          v.Score,
		CompletedAt:    v.CompletedAt,
		IssuedAt:       v.IssuedAt,
		Status:         v.Status,
		RevokedAt:      v.RevokedAt,
		RevokedReason:  v.RevokedReason,
		Metadata: CertificateMetadataResponse{
			TotalLessons:     v.Metadata.TotalLessons,
			CompletedLessons: v.Metadata.CompletedLessons,
			AverageScore:     v.Metadata.AverageScore,
			TimeSpentMinutes: v.Metadata.TimeSpentMinutes,
		},
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
}

func FromCertificateList(items []queries.CertificateView, page queries.PageInfo) *CertificateListResponse {
	certificates := make([]CertificateResponse, 0, len(items))
	for i := range items {
		certificates = append(certificates, *FromCertificateView(&items[i]))
	}
	return &CertificateListResponse{
		Certificates: certificates,
		PageInfo:     fromPageInfo(page),
	}
}
