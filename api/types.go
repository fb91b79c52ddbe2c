package api

import "margin-suggest/core/types"

// SuggestRequest is the body of POST /api/v1/suggestions
type SuggestRequest struct {
	Product types.Product `json:"product"`
	Options types.Options `json:"options"`
}

// BatchRequest is the body of POST /api/v1/suggestions/batch
type BatchRequest struct {
	Products []types.Product `json:"products"`
	Options  types.Options   `json:"options"`
}

// BatchResponse carries batch results in input order
type BatchResponse struct {
	Results    []*types.Suggestions `json:"results"`
	Count      int                  `json:"count"`
	DurationMs int64                `json:"duration_ms"`
}

// ErrorEnvelope is the body of every error response
type ErrorEnvelope struct {
	Error ErrorBody `json:"error"`
}

// ErrorBody describes a failed request
type ErrorBody struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

// Error codes
const (
	CodeInvalidJSON    = "INVALID_JSON"
	CodeValidation     = "VALIDATION_ERROR"
	CodeInvalidProduct = "INVALID_PRODUCT"
	CodeBodyTooLarge   = "BODY_TOO_LARGE"
	CodeCancelled      = "REQUEST_CANCELLED"
	CodeNotFound       = "NOT_FOUND"
	CodeInternal       = "INTERNAL_ERROR"
)
