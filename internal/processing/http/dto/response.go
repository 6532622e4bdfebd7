// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	"time"

	"github.com/winwin/textproc/internal/processing/domain"
)

// ProcessResponse contains the transformed text.
type ProcessResponse struct {
	Result string `json:"result"`
}

// ProcessingLogResponse represents a single processing log entry.
type ProcessingLogResponse struct {
	ID         string    `json:"id"`
	InputText  string    `json:"input_text"`
	OutputText string    `json:"output_text"`
	CreatedAt  time.Time `json:"created_at"`
}

// HistoryResponse contains a page of processing log entries.
type HistoryResponse struct {
	Logs []ProcessingLogResponse `json:"logs"`
}

// MapLogsToHistoryResponse maps processing log entries to the list response.
func MapLogsToHistoryResponse(logs []*domain.ProcessingLog) HistoryResponse {
	response := HistoryResponse{
		Logs: make([]ProcessingLogResponse, 0, len(logs)),
	}
	for _, log := range logs {
		response.Logs = append(response.Logs, ProcessingLogResponse{
			ID:         log.ID.String(),
			InputText:  log.InputText,
			OutputText: log.OutputText,
			CreatedAt:  log.CreatedAt,
		})
	}
	return response
}
