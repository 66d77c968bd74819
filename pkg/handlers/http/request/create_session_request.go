package request

import (
	"strings"

	"github.com/NeuralTrust/ToolFinder/pkg/domain"
)

type CreateSessionRequest struct {
	Password string `json:"password"`
}

func (r *CreateSessionRequest) Validate() error {
	if strings.TrimSpace(r.Password) == "" {
		return domain.NewValidationError("password", "is required")
	}
	return nil
}
