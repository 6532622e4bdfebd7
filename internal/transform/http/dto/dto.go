// Package dto provides data transfer objects for the transform service wire format.
package dto

import (
	validation "github.com/jellydator/validation"
)

// TransformRequest contains the text to transform.
type TransformRequest struct {
	Text string `json:"text"`
}

// Validate checks if the transform request is valid.
func (r *TransformRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Text,
			validation.Required,
		),
	)
}

// TransformResponse contains the transformed text.
type TransformResponse struct {
	Result string `json:"result"`
}
