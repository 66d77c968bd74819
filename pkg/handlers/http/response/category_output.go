package response

import (
	"github.com/NeuralTrust/ToolFinder/pkg/domain/category"
	"github.com/NeuralTrust/ToolFinder/pkg/domain/tool"
)

type CategoryOutput struct {
	category.Category
	Tools []tool.Tool `json:"tools"`
}

// NonNilTools keeps empty lists serialised as [] rather than null.
func NonNilTools(tools []tool.Tool) []tool.Tool {
	if tools == nil {
		return []tool.Tool{}
	}
	return tools
}
