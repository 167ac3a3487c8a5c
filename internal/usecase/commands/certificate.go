package commands

import (
	"context"

	"skillforge/internal/domain/certificate"
	reqdto "skillforge/internal/handler/dto/request"
	"skillforge/internal/infra"
	"skillforge/internal/pkg/clock"
	"skillforge/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrCertificateNotFound = errs.New("certificate not found")
	ErrEnrollmentNotFound  = errs.New("enrollment not found")
	ErrReferenceNotFound   = errs.New("course or student not found")
	ErrInvalidScoreInput   = errs.New("invalid score")
	ErrInvalidReasonInput  = errs.New("invalid revocation reason")
	ErrInvalidStatusInput  = errs.New("invalid certificate status")
)

// IssueCertificateResult reports the certificate and whether it pre-existed.
// Issuance is idempotent: asking again for an already-certified completion
// returns the existing record instead of failing.
type IssueCertificateResult struct {
	Certificate   *certificate.Certificate
	AlreadyIssued bool
}

type CertificateCommands interface {
	Issue(ctx context.Context, req reqdto.GenerateCertificateRequest) (*IssueCertificateResult, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, req reqdto.UpdateCertificateStatusRequest) (*certificate.Certificate, error)
}

type certificateCommandsImpl struct {
	certRepo         CertificateRepository
	enrollmentSource EnrollmentSource
	courseSource     CourseSource
	identitySource   IdentitySource
	issuer           *certificate.Issuer
	clock            clock.Clock
}

func NewCertificateCommands(
	certRepo CertificateRepository,
	enrollmentSource EnrollmentSource,
	courseSource CourseSource,
	identitySource IdentitySource,
	issuer *certificate.Issuer,
	clock clock.Clock,
) CertificateCommands {
	return &certificateCommandsImpl{
		certRepo:         certRepo,
		enrollmentSource: enrollmentSource,
		courseSource:     courseSource,
		identitySource:   identitySource,
		issuer:           issuer,
		clock:            clock,
	}
}

func (u *certificateCommandsImpl) Issue(ctx context.Context, req reqdto.GenerateCertificateRequest) (*IssueCertificateResult, error) {
	enrollment, err := u.enrollmentSource.GetEnrollment(ctx, req.StudentID, req.CourseID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrEnrollmentNotFound
		}
		return nil, errs.Wrap(err, "failed to load enrollment")
	}
	if enrollment.Progress != 100 {
		return nil, certificate.ErrCourseNotCompleted
	}

	existing, err := u.findActiveOrInactive(ctx, req.StudentID, req.CourseID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return &IssueCertificateResult{Certificate: existing, AlreadyIssued: true}, nil
	}

	course, student, instructor, err := u.resolveReferences(ctx, req.CourseID, req.StudentID)
	if err != nil {
		return nil, err
	}

	var score *certificate.Score
	if req.Score != nil {
		s, err := certificate.NewScore(*req.Score)
		if err != nil {
			return nil, errs.Mark(err, ErrInvalidScoreInput)
		}
		score = &s
	}

	now := u.clock.Now()
	completedAt := now
	if enrollment.CompletedAt != nil {
		completedAt = *enrollment.CompletedAt
	}

	cert, err := u.issuer.Issue(
		certificate.EnrollmentSnapshot{
			Progress:         enrollment.Progress,
			CompletedAt:      completedAt,
			CompletedLessons: enrollment.CompletedLessons,
			AverageScore:     enrollment.AverageScore,
			TimeSpentMinutes: enrollment.TimeSpentMinutes,
		},
		certificate.CourseSnapshot{
			ID:           course.ID,
			Title:        course.Title,
			InstructorID: course.InstructorID,
			TotalLessons: course.TotalLessons,
		},
		certificate.PartyRef{ID: student.ID, DisplayName: student.DisplayName},
		certificate.PartyRef{ID: instructor.ID, DisplayName: instructor.DisplayName},
		score,
		now,
	)
	if err != nil {
		return nil, err
	}

	if err := u.certRepo.InsertIfAbsent(ctx, cert); err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			// Lost the issuance race; the winner's certificate is the result.
			winner, findErr := u.findActiveOrInactive(ctx, req.StudentID, req.CourseID)
			if findErr != nil {
				return nil, findErr
			}
			if winner != nil {
				return &IssueCertificateResult{Certificate: winner, AlreadyIssued: true}, nil
			}
		}
		return nil, errs.Wrap(err, "failed to insert certificate")
	}

	return &IssueCertificateResult{Certificate: cert}, nil
}

// UpdateStatus applies the admin lifecycle transition selected by the
// request's status field, defaulting to revocation.
func (u *certificateCommandsImpl) UpdateStatus(ctx context.Context, id uuid.UUID, req reqdto.UpdateCertificateStatusRequest) (*certificate.Certificate, error) {
	cert, err := u.certRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCertificateNotFound
		}
		return nil, errs.Wrap(err, "failed to find certificate")
	}

	now := u.clock.Now()
	status := certificate.Status(req.Status)
	if req.Status == "" {
		status = certificate.StatusRevoked
	}

	switch status {
	case certificate.StatusRevoked:
		reason, err := certificate.NewRevocationReason(req.Reason)
		if err != nil {
			return nil, errs.Mark(err, ErrInvalidReasonInput)
		}
		if err := cert.Revoke(reason, now); err != nil {
			return nil, err
		}
	case certificate.StatusActive:
		if err := cert.Reactivate(now); err != nil {
			return nil, err
		}
	case certificate.StatusInactive:
		if err := cert.Deactivate(now); err != nil {
			return nil, err
		}
	default:
		return nil, ErrInvalidStatusInput
	}

	if err := u.certRepo.Save(ctx, cert); err != nil {
		return nil, errs.Wrap(err, "failed to save certificate")
	}
	return cert, nil
}

func (u *certificateCommandsImpl) findActiveOrInactive(ctx context.Context, studentID, courseID uuid.UUID) (*certificate.Certificate, error) {
	existing, err := u.certRepo.FindActiveOrInactive(ctx, studentID, courseID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil
		}
		return nil, errs.Wrap(err, "failed to check existing certificate")
	}
	return existing, nil
}

func (u *certificateCommandsImpl) resolveReferences(ctx context.Context, courseID, studentID uuid.UUID) (*CourseInfo, *UserInfo, *UserInfo, error) {
	course, err := u.courseSource.FindByID(ctx, courseID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil, nil, ErrReferenceNotFound
		}
		return nil, nil, nil, errs.Wrap(err, "failed to resolve course")
	}

	student, err := u.identitySource.FindUserByID(ctx, studentID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil, nil, ErrReferenceNotFound
		}
		return nil, nil, nil, errs.Wrap(err, "failed to resolve student")
	}

	instructor, err := u.identitySource.FindUserByID(ctx, course.InstructorID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil, nil, ErrReferenceNotFound
		}
		return nil, nil, nil, errs.Wrap(err, "failed to resolve instructor")
	}

	return course, student, instructor, nil
}
