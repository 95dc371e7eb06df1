package handler

import (
	"agora/internal/membership/models"
	dErrors "agora/pkg/domain-errors"
)

type VerifyResidencyRequest struct {
	Verification string `json:"verification"`

	kind models.Verification
}

func (r *VerifyResidencyRequest) Validate() error {
	kind, err := models.ParseVerification(r.Verification)
	if err != nil {
		return err
	}
	r.kind = kind
	return nil
}

type GrantCapabilityRequest struct {
	Type string `json:"type"`
	Note string `json:"note,omitempty"`

	capType models.CapabilityType
}

func (r *GrantCapabilityRequest) Validate() error {
	capType, err := models.ParseCapabilityType(r.Type)
	if err != nil {
		return err
	}
	if len(r.Note) > 500 {
		return dErrors.New(dErrors.CodeValidation, "note must be at most 500 characters")
	}
	r.capType = capType
	return nil
}

type GrantPermissionRequest struct {
	Type string `json:"type"`

	permType models.PermissionType
}

func (r *GrantPermissionRequest) Validate() error {
	permType, err := models.ParsePermissionType(r.Type)
	if err != nil {
		return err
	}
	r.permType = permType
	return nil
}
