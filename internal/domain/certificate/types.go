package certificate

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
	StatusRevoked  Status = "revoked"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusInactive, StatusRevoked:
		return true
	default:
		return false
	}
}

type Grade string

const (
	GradeAPlus Grade = "A+"
	GradeA     Grade = "A"
	GradeBPlus Grade = "B+"
	GradeB     Grade = "B"
	GradeCPlus Grade = "C+"
	GradeC     Grade = "C"
	GradePass  Grade = "Pass"
)

func (g Grade) String() string {
	return string(g)
}

func (g Grade) IsValid() bool {
	switch g {
	case GradeAPlus, GradeA, GradeBPlus, GradeB, GradeCPlus, GradeC, GradePass:
		return true
	default:
		return false
	}
}
