package response

import "github.com/NeuralTrust/ToolFinder/pkg/domain/tool"

type SearchOutput struct {
	Tools   []tool.Tool `json:"tools"`
	Mode    string      `json:"mode"`
	Message string      `json:"message"`
}
