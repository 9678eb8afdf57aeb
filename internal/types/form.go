// Package types provides type definitions for structured data used throughout the resume-drafter system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "github.com/go-playground/validator/v10"

// WorkAuthorization describes the candidate's right to work
type WorkAuthorization struct {
	Status   string `json:"status" validate:"omitempty,oneof='Citizen' 'Permanent Resident' 'Not Applicable' 'Work Visa'"`
	VisaType string `json:"visaType,omitempty"`
	Expiry   string `json:"expiry,omitempty"`
}

// Basics holds the candidate's identity and contact details
type Basics struct {
	FullName  string             `json:"fullName"`
	Email     string             `json:"email" validate:"omitempty,email"`
	Phone     string             `json:"phone,omitempty"`
	Location  string             `json:"location,omitempty"`
	Headline  string             `json:"headline,omitempty"`
	Summary   string             `json:"summary,omitempty"`
	LinkedIn  string             `json:"linkedin,omitempty"`
	GitHub    string             `json:"github,omitempty"`
	Portfolio string             `json:"portfolio,omitempty"`
	WorkAuth  *WorkAuthorization `json:"workAuth,omitempty" validate:"omitempty"`
}

// Instructions holds the free-text guidance the user gave for the draft
type Instructions struct {
	Goals       []string `json:"goals"`
	Keywords    []string `json:"keywords,omitempty"`
	Constraints []string `json:"constraints,omitempty"`
	Prompt      string   `json:"prompt,omitempty"`
}

// Attachments holds text already decoded from uploaded or pasted documents
type Attachments struct {
	ExistingResumeText string `json:"existingResumeText,omitempty"`
	JobDescriptionText string `json:"jobDescriptionText,omitempty"`
}

// FormState is the structured form data collected from the user
type FormState struct {
	Basics         Basics             `json:"basics"`
	Experience     []ExperienceRecord `json:"experience"`
	Projects       []ProjectRecord    `json:"projects"`
	Education      []EducationRecord  `json:"education,omitempty"`
	Skills         []string           `json:"skills,omitempty"`
	Attachments    Attachments        `json:"attachments"`
	Instructions   Instructions       `json:"instructions"`
	PreserveStrict bool               `json:"preserveStrict,omitempty"`
}

// Validate validates the FormState using the validator.
func (f *FormState) Validate() error {
	validate := validator.New()
	return validate.Struct(f)
}
