package request

import (
	"strings"

	"github.com/NeuralTrust/ToolFinder/pkg/domain"
	"github.com/google/uuid"
)

type CreateToolRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	URL         string   `json:"url"`
	CategoryID  string   `json:"category_id"`
	Tags        []string `json:"tags"`
}

// Validate checks the shape of the request. Field rules shared with the
// stored tool are enforced when the tool is built.
func (r *CreateToolRequest) Validate() error {
	if strings.TrimSpace(r.CategoryID) == "" {
		return domain.NewValidationError("category_id", "is required")
	}
	if _, err := uuid.Parse(strings.TrimSpace(r.CategoryID)); err != nil {
		return domain.NewValidationError("category_id", "must be a valid UUID")
	}
	return nil
}
