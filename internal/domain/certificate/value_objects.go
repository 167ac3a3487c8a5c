package certificate

import (
	"crypto/rand"
	"errors"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	ErrInvalidCertificateID  = errors.New("invalid certificate id format")
	ErrEmptyRevocationReason = errors.New("revocation reason is required")
	ErrReasonTooLong         = errors.New("revocation reason cannot exceed 500 characters")
	ErrInvalidScore          = errors.New("score must be between 0 and 100")
	ErrInvalidGrade          = errors.New("invalid grade")
)

const MaxReasonLength = 500

var certificateIDRegex = regexp.MustCompile(`^CERT-[0-9A-Z]+-[0-9A-Z]{5}$`)

// ID is the human-shareable certificate identifier, e.g.
// CERT-MBQW8K2J-X7P3M. Lookups normalize to upper case.
type ID string

func NewID(raw string) (ID, error) {
	normalized := strings.ToUpper(strings.TrimSpace(raw))
	if !certificateIDRegex.MatchString(normalized) {
		return "", ErrInvalidCertificateID
	}
	return ID(normalized), nil
}

func (id ID) String() string {
	return string(id)
}

// IDGenerator produces fresh certificate ids. Generation is best-effort
// collision resistance; the unique constraint in storage is authoritative.
type IDGenerator interface {
	NewCertificateID(now time.Time) ID
}

const suffixAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
const suffixLength = 5

type RandomIDGenerator struct{}

func NewRandomIDGenerator() *RandomIDGenerator {
	return &RandomIDGenerator{}
}

func (g *RandomIDGenerator) NewCertificateID(now time.Time) ID {
	timestamp := strings.ToUpper(strconv.FormatInt(now.UnixMilli(), 36))

	buf := make([]byte, suffixLength)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand failing means the platform is broken; fall back to
		// the timestamp's low bits rather than returning an error nobody
		// can act on.
		for i := range buf {
			buf[i] = byte(now.UnixNano() >> (i * 8))
		}
	}
	suffix := make([]byte, suffixLength)
	for i, b := range buf {
		suffix[i] = suffixAlphabet[int(b)%len(suffixAlphabet)]
	}

	return ID("CERT-" + timestamp + "-" + string(suffix))
}

// RevocationReason is required and bounded when revoking a certificate.
type RevocationReason string

func NewRevocationReason(raw string) (RevocationReason, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", ErrEmptyRevocationReason
	}
	if len(trimmed) > MaxReasonLength {
		return "", ErrReasonTooLong
	}
	return RevocationReason(trimmed), nil
}

func (r RevocationReason) String() string {
	return string(r)
}

// Score is an optional quantitative result in [0,100].
type Score int

func NewScore(value int) (Score, error) {
	if value < 0 || value > 100 {
		return 0, ErrInvalidScore
	}
	return Score(value), nil
}

func (s Score) Int() int {
	return int(s)
}

// Metadata is a snapshot of the learner's progress captured at issuance.
// A certificate is a point-in-time attestation: these values are never
// recomputed afterwards.
type Metadata struct {
	TotalLessons     int
	CompletedLessons int
	AverageScore     float64
	TimeSpentMinutes int
}
