package embedding

import (
	"errors"
	"time"
)

var (
	ErrProviderNonOKResponse = errors.New("non-OK response from embeddings provider")
	ErrEmptyEmbedding        = errors.New("empty embedding returned by provider")
	ErrMissingCredentials    = errors.New("embeddings provider credentials not configured")
)

type Embedding struct {
	EntityID  string    `json:"entity_id"`
	Value     []float64 `json:"value"`
	Model     string    `json:"model"`
	CreatedAt time.Time `json:"created_at"`
}

type Task string

const (
	TaskQuery    Task = "query"
	TaskDocument Task = "document"
)

// Config carries what a provider needs to produce one embedding.
type Config struct {
	Provider    string
	Model       string
	Dimensions  int
	Task        Task
	Credentials Credentials
}

// WithTask returns a copy of c for the given task.
func (c Config) WithTask(task Task) *Config {
	c.Task = task
	return &c
}

type Credentials struct {
	ApiKey       string
	AWSRegion    string
	AWSAccessKey string
	AWSSecretKey string
	AWSSession   string
}
