// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	validation "github.com/jellydator/validation"
)

// ProcessRequest contains the text to transform.
type ProcessRequest struct {
	Text string `json:"text"`
}

// Validate checks if the process request is valid.
func (r *ProcessRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Text,
			validation.Required,
			validation.Length(1, 10000),
		),
	)
}
