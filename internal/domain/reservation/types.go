package reservation

import "errors"

var ErrInvalidPermitType = errors.New("invalid permit type")

type PermitType string

const (
	PermitStudent PermitType = "Student"
	PermitFaculty PermitType = "Faculty"
	PermitVisitor PermitType = "Visitor"
	PermitEvent   PermitType = "Event"
)

func PermitTypes() []PermitType {
	return []PermitType{PermitStudent, PermitFaculty, PermitVisitor, PermitEvent}
}

func NewPermitType(s string) (PermitType, error) {
	p := PermitType(s)
	if !p.IsValid() {
		return "", ErrInvalidPermitType
	}
	return p, nil
}

func (p PermitType) IsValid() bool {
	switch p {
	case PermitStudent, PermitFaculty, PermitVisitor, PermitEvent:
		return true
	default:
		return false
	}
}

func (p PermitType) String() string {
	return string(p)
}
