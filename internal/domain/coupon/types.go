package coupon

type Kind string

const (
	KindPercentage  Kind = "percentage"
	KindFixedAmount Kind = "fixed_amount"
)

func (k Kind) String() string {
	return string(k)
}

func (k Kind) IsValid() bool {
	switch k {
	case KindPercentage, KindFixedAmount:
		return true
	default:
		return false
	}
}

type ScopeKind string

const (
	ScopeAllCourses         ScopeKind = "all_courses"
	ScopeSpecificCourses    ScopeKind = "specific_courses"
	ScopeSpecificCategories ScopeKind = "specific_categories"
)

func (s ScopeKind) String() string {
	return string(s)
}

func (s ScopeKind) IsValid() bool {
	switch s {
	case ScopeAllCourses, ScopeSpecificCourses, ScopeSpecificCategories:
		return true
	default:
		return false
	}
}
