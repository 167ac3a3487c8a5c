package queries

import (
	"context"

	"skillforge/internal/domain/certificate"
	"skillforge/internal/infra"
	"skillforge/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrCertificateNotFound = errs.New("certificate not found")

type CertificateReadStore interface {
	FindViewByID(ctx context.Context, id uuid.UUID) (*CertificateView, error)
	FindViewByCertificateID(ctx context.Context, certID certificate.ID) (*CertificateView, error)
	List(ctx context.Context, filters CertificateFilters, page, limit int) ([]CertificateView, int64, error)
}

type CertificateQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*CertificateView, error)
	List(ctx context.Context, filters CertificateFilters, page, limit int) ([]CertificateView, PageInfo, error)
	// Verify is the public check: only an Active certificate verifies.
	// Inactive and revoked records exist but report not found.
	Verify(ctx context.Context, rawCertificateID string) (*CertificateView, error)
}

type certificateQueriesImpl struct {
	store CertificateReadStore
}

func NewCertificateQueries(store CertificateReadStore) CertificateQueries {
	return &certificateQueriesImpl{store: store}
}

func (q *certificateQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*CertificateView, error) {
	view, err := q.store.FindViewByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCertificateNotFound
		}
		return nil, errs.Wrap(err, "failed to load certificate")
	}
	return view, nil
}

func (q *certificateQueriesImpl) List(ctx context.Context, filters CertificateFilters, page, limit int) ([]CertificateView, PageInfo, error) {
	page, limit = NormalizePage(page, limit)
	items, total, err := q.store.List(ctx, filters, page, limit)
	if err != nil {
		return nil, PageInfo{}, errs.Wrap(err, "failed to list certificates")
	}
	return items, NewPageInfo(page, limit, total), nil
}

func (q *certificateQueriesImpl) Verify(ctx context.Context, rawCertificateID string) (*CertificateView, error) {
	certID, err := certificate.NewID(rawCertificateID)
	if err != nil {
		return nil, ErrCertificateNotFound
	}

	view, err := q.store.FindViewByCertificateID(ctx, certID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCertificateNotFound
		}
		return nil, errs.Wrap(err, "failed to load certificate")
	}
	if view.Status != certificate.StatusActive.String() {
		return nil, ErrCertificateNotFound
	}
	return view, nil
}
