package domain

import (
	"fmt"
	"strings"
)

type Class string

const (
	ClassFirst      Class = "first"
	ClassBusiness   Class = "business"
	ClassRestricted Class = "restricted"
	ClassEconomy    Class = "economy"
)

// Classes returns all cabin classes in cabin order, front to back.
// Row numbering relies on this order.
func Classes() []Class {
	return []Class{ClassFirst, ClassBusiness, ClassRestricted, ClassEconomy}
}

func ParseClass(s string) (Class, error) {
	switch Class(strings.ToLower(strings.TrimSpace(s))) {
	case ClassFirst:
		return ClassFirst, nil
	case ClassBusiness:
		return ClassBusiness, nil
	case ClassRestricted:
		return ClassRestricted, nil
	case ClassEconomy:
		return ClassEconomy, nil
	default:
		return "", fmt.Errorf("%w: unknown class %q", ErrValidation, s)
	}
}

func (c Class) String() string {
	return string(c)
}
