package employee

import (
	"strings"

	"github.com/BruksfildServices01/employee-portal/internal/httperr"
)

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

func InitialStatus() Status {
	return StatusActive
}

func ParseStatus(s string) (Status, error) {
	switch st := Status(strings.ToLower(strings.TrimSpace(s))); st {
	case StatusActive, StatusInactive:
		return st, nil
	default:
		return "", httperr.ErrValidation("Status must be one of: active, inactive")
	}
}
