package project

import "strings"

// ValidateCreateInput validates fields required to create a project.
func ValidateCreateInput(req CreateRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return ErrInvalidInput
	}
	if strings.TrimSpace(req.Client) == "" {
		return ErrInvalidInput
	}
	if strings.TrimSpace(req.Sector) == "" {
		return ErrInvalidInput
	}
	if req.Type != TypeRD && req.Type != TypeService {
		return ErrInvalidInput
	}
	return nil
}
