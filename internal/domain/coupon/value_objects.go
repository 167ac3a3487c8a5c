package coupon

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"skillforge/internal/domain/money"

	"github.com/google/uuid"
)

var (
	ErrInvalidCode          = errors.New("invalid coupon code format")
	ErrInvalidWindow        = errors.New("coupon end date must be after start date")
	ErrInvalidPercentValue  = errors.New("percentage value must be between 0 and 100")
	ErrInvalidPerUserLimit  = errors.New("per-user usage limit must be positive")
	ErrInvalidTotalLimit    = errors.New("total usage limit must be positive")
	ErrEmptyScopeCourses    = errors.New("course-scoped coupon requires at least one course")
	ErrEmptyScopeCategories = errors.New("category-scoped coupon requires at least one category")
	ErrDescriptionTooLong   = errors.New("description cannot exceed 500 characters")
)

const MaxDescriptionLength = 500

var codeRegex = regexp.MustCompile(`^[A-Z0-9_-]+$`)

// Code is a normalized coupon code: trimmed, upper-cased, immutable.
type Code string

func NewCode(raw string) (Code, error) {
	normalized := strings.ToUpper(strings.TrimSpace(raw))
	if !codeRegex.MatchString(normalized) {
		return "", ErrInvalidCode
	}
	return Code(normalized), nil
}

func (c Code) String() string {
	return string(c)
}

// Window is the validity interval of a coupon, inclusive on both ends.
type Window struct {
	startAt time.Time
	endAt   time.Time
}

func NewWindow(startAt, endAt time.Time) (Window, error) {
	if !endAt.After(startAt) {
		return Window{}, ErrInvalidWindow
	}
	return Window{startAt: startAt, endAt: endAt}, nil
}

func (w Window) StartAt() time.Time { return w.startAt }
func (w Window) EndAt() time.Time   { return w.endAt }

func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.startAt) && !t.After(w.endAt)
}

// UsageLimit caps redemptions globally and per user. A nil total means
// unlimited; per-user defaults to one redemption.
type UsageLimit struct {
	total   *int
	perUser int
}

const DefaultPerUserLimit = 1

func NewUsageLimit(total *int, perUser int) (UsageLimit, error) {
	if perUser == 0 {
		perUser = DefaultPerUserLimit
	}
	if perUser < 0 {
		return UsageLimit{}, ErrInvalidPerUserLimit
	}
	if total != nil && *total <= 0 {
		return UsageLimit{}, ErrInvalidTotalLimit
	}
	return UsageLimit{total: total, perUser: perUser}, nil
}

func (l UsageLimit) Total() *int  { return l.total }
func (l UsageLimit) PerUser() int { return l.perUser }

// Scope restricts which purchases a coupon applies to. Course ids are
// populated only for course scope, categories only for category scope,
// so contradictory combinations cannot be represented.
type Scope struct {
	kind       ScopeKind
	courses    []uuid.UUID
	categories []string
}

func NewAllCoursesScope() Scope {
	return Scope{kind: ScopeAllCourses}
}

func NewCoursesScope(courses []uuid.UUID) (Scope, error) {
	if len(courses) == 0 {
		return Scope{}, ErrEmptyScopeCourses
	}
	return Scope{kind: ScopeSpecificCourses, courses: courses}, nil
}

func NewCategoriesScope(categories []string) (Scope, error) {
	if len(categories) == 0 {
		return Scope{}, ErrEmptyScopeCategories
	}
	return Scope{kind: ScopeSpecificCategories, categories: categories}, nil
}

func (s Scope) Kind() ScopeKind      { return s.kind }
func (s Scope) Courses() []uuid.UUID { return s.courses }
func (s Scope) Categories() []string { return s.categories }

func (s Scope) CoversCourse(courseID uuid.UUID) bool {
	if s.kind != ScopeSpecificCourses {
		return true
	}
	for _, id := range s.courses {
		if id == courseID {
			return true
		}
	}
	return false
}

func (s Scope) CoversCategory(category string) bool {
	if s.kind != ScopeSpecificCategories {
		return true
	}
	for _, c := range s.categories {
		if c == category {
			return true
		}
	}
	return false
}

// Value is the discount magnitude: a percentage in [0,100] or a fixed
// money amount, depending on the coupon kind.
type Value struct {
	kind    Kind
	percent float64
	amount  money.Money
}

func NewPercentageValue(percent float64) (Value, error) {
	if percent < 0 || percent > 100 {
		return Value{}, ErrInvalidPercentValue
	}
	return Value{kind: KindPercentage, percent: percent}, nil
}

func NewFixedAmountValue(amount money.Money) Value {
	return Value{kind: KindFixedAmount, amount: amount}
}

func (v Value) Kind() Kind          { return v.kind }
func (v Value) Percent() float64    { return v.percent }
func (v Value) Amount() money.Money { return v.amount }

// Unchecked constructors for rehydrating persisted rows. Validation happened
// at creation time; storage is trusted.

func ReconstructWindow(startAt, endAt time.Time) Window {
	return Window{startAt: startAt, endAt: endAt}
}

func ReconstructUsageLimit(total *int, perUser int) UsageLimit {
	return UsageLimit{total: total, perUser: perUser}
}

func ReconstructScope(kind ScopeKind, courses []uuid.UUID, categories []string) Scope {
	return Scope{kind: kind, courses: courses, categories: categories}
}

func ReconstructValue(kind Kind, percent float64, amount money.Money) Value {
	return Value{kind: kind, percent: percent, amount: amount}
}
