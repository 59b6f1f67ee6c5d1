package domain

// ValidationIssue is one finding from the configuration validator.
type ValidationIssue struct {
	Code    string `json:"code"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

// ValidationResult is ordinary domain data attached by an external
// validator. IsValid false is not an error condition; it only gates the
// review step.
type ValidationResult struct {
	IsValid  bool              `json:"is_valid"`
	Errors   []ValidationIssue `json:"errors"`
	Warnings []ValidationIssue `json:"warnings"`
}

// Clone returns an independent copy.
func (v *ValidationResult) Clone() *ValidationResult {
	if v == nil {
		return nil
	}
	out := ValidationResult{IsValid: v.IsValid}
	if v.Errors != nil {
		out.Errors = make([]ValidationIssue, len(v.Errors))
		copy(out.Errors, v.Errors)
	}
	if v.Warnings != nil {
		out.Warnings = make([]ValidationIssue, len(v.Warnings))
		copy(out.Warnings, v.Warnings)
	}
	return &out
}
