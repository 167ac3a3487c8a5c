//go:build unit

package certificate_test

import (
	"testing"
	"time"

	"skillforge/internal/domain/certificate"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var issuedAt = time.Date(2026, 2, 15, 9, 0, 0, 0, time.UTC)

func activeCertificate(t *testing.T) *certificate.Certificate {
	t.Helper()
	score, err := certificate.NewScore(95)
	require.NoError(t, err)
	return certificate.ReconstructCertificate(
		uuid.New(),
		certificate.ID("CERT-LX2K9M4P-A3F7B"),
		uuid.New(), uuid.New(), uuid.New(),
		"Ada Lovelace", "Go Fundamentals", "Rob Pike",
		certificate.GradeA,
		&score,
		issuedAt.Add(-time.Hour), issuedAt,
		certificate.StatusActive,
		nil, nil,
		certificate.Metadata{TotalLessons: 24, CompletedLessons: 24, AverageScore: 93.5, TimeSpentMinutes: 1440},
		issuedAt, issuedAt,
	)
}

func TestRevoke(t *testing.T) {
	reason, err := certificate.NewRevocationReason("academic misconduct")
	require.NoError(t, err)
	now := issuedAt.Add(48 * time.Hour)

	t.Run("active certificate is revoked with audit fields", func(t *testing.T) {
		cert := activeCertificate(t)

		require.NoError(t, cert.Revoke(reason, now))

		assert.Equal(t, certificate.StatusRevoked, cert.Status())
		require.NotNil(t, cert.RevokedAt())
		assert.Equal(t, now, *cert.RevokedAt())
		require.NotNil(t, cert.RevokedReason())
		assert.Equal(t, reason, *cert.RevokedReason())
		assert.False(t, cert.IsVerifiable())
	})

	t.Run("revoking twice fails", func(t *testing.T) {
		cert := activeCertificate(t)
		require.NoError(t, cert.Revoke(reason, now))

		assert.ErrorIs(t, cert.Revoke(reason, now.Add(time.Hour)), certificate.ErrAlreadyRevoked)
	})
}

func TestReactivate(t *testing.T) {
	now := issuedAt.Add(72 * time.Hour)

	t.Run("revoked certificate clears revocation record", func(t *testing.T) {
		cert := activeCertificate(t)
		reason, _ := certificate.NewRevocationReason("clerical error")
		require.NoError(t, cert.Revoke(reason, issuedAt.Add(time.Hour)))

		require.NoError(t, cert.Reactivate(now))

		assert.Equal(t, certificate.StatusActive, cert.Status())
		assert.Nil(t, cert.RevokedAt())
		assert.Nil(t, cert.RevokedReason())
		assert.True(t, cert.IsVerifiable())
	})

	t.Run("already active fails", func(t *testing.T) {
		cert := activeCertificate(t)
		assert.ErrorIs(t, cert.Reactivate(now), certificate.ErrAlreadyActive)
	})
}

func TestDeactivate(t *testing.T) {
	now := issuedAt.Add(72 * time.Hour)

	t.Run("active certificate becomes inactive", func(t *testing.T) {
		cert := activeCertificate(t)

		require.NoError(t, cert.Deactivate(now))

		assert.Equal(t, certificate.StatusInactive, cert.Status())
		assert.False(t, cert.IsVerifiable())
	})

	t.Run("already inactive fails", func(t *testing.T) {
		cert := activeCertificate(t)
		require.NoError(t, cert.Deactivate(now))

		assert.ErrorIs(t, cert.Deactivate(now.Add(time.Hour)), certificate.ErrAlreadyInactive)
	})
}
