//go:build unit

package queries_test

import (
	"context"
	"testing"

	"skillforge/internal/domain/certificate"
	"skillforge/internal/infra"
	"skillforge/internal/usecase/queries"
	"skillforge/tests/common/builder"
	queriesmock "skillforge/tests/mock/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newCertificateQueriesFixture(t *testing.T) (*queriesmock.MockCertificateReadStore, queries.CertificateQueries) {
	t.Helper()
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockCertificateReadStore(ctrl)
	return store, queries.NewCertificateQueries(store)
}

func TestCertificateQueries_Verify(t *testing.T) {
	t.Run("active certificate verifies", func(t *testing.T) {
		store, uc := newCertificateQueriesFixture(t)
		view := builder.NewCertificateBuilder().BuildView()

		store.EXPECT().FindViewByCertificateID(gomock.Any(), certificate.ID("CERT-LX2K9M4P-A3F7B")).
			Return(view, nil)

		got, err := uc.Verify(context.Background(), "cert-lx2k9m4p-a3f7b")
		require.NoError(t, err)
		assert.Same(t, view, got)
	})

	t.Run("revoked certificate reports not found", func(t *testing.T) {
		store, uc := newCertificateQueriesFixture(t)
		view := builder.NewCertificateBuilder().WithStatus("revoked").BuildView()

		store.EXPECT().FindViewByCertificateID(gomock.Any(), gomock.Any()).Return(view, nil)

		_, err := uc.Verify(context.Background(), "CERT-LX2K9M4P-A3F7B")
		assert.ErrorIs(t, err, queries.ErrCertificateNotFound)
	})

	t.Run("inactive certificate reports not found", func(t *testing.T) {
		store, uc := newCertificateQueriesFixture(t)
		view := builder.NewCertificateBuilder().WithStatus("inactive").BuildView()

		store.EXPECT().FindViewByCertificateID(gomock.Any(), gomock.Any()).Return(view, nil)

		_, err := uc.Verify(context.Background(), "CERT-LX2K9M4P-A3F7B")
		assert.ErrorIs(t, err, queries.ErrCertificateNotFound)
	})

	t.Run("malformed id fails without a lookup", func(t *testing.T) {
		_, uc := newCertificateQueriesFixture(t)

		_, err := uc.Verify(context.Background(), "not-a-certificate-id")
		assert.ErrorIs(t, err, queries.ErrCertificateNotFound)
	})

	t.Run("unknown id reports not found", func(t *testing.T) {
		store, uc := newCertificateQueriesFixture(t)

		store.EXPECT().FindViewByCertificateID(gomock.Any(), gomock.Any()).
			Return(nil, infra.WrapRepoErr("not found", nil, infra.KindNotFound))

		_, err := uc.Verify(context.Background(), "CERT-LX2K9M4P-A3F7B")
		assert.ErrorIs(t, err, queries.ErrCertificateNotFound)
	})
}

func TestCertificateQueries_GetByID(t *testing.T) {
	store, uc := newCertificateQueriesFixture(t)
	view := builder.NewCertificateBuilder().BuildView()

	store.EXPECT().FindViewByID(gomock.Any(), view.ID).Return(view, nil)

	got, err := uc.GetByID(context.Background(), view.ID)
	require.NoError(t, err)
	assert.Same(t, view, got)
}
