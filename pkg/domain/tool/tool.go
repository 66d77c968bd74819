package tool

import (
	"errors"
	"net/url"
	"strings"
	"time"

	"github.com/NeuralTrust/ToolFinder/pkg/domain"
	"github.com/NeuralTrust/ToolFinder/pkg/infra/database/types"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const MaxTags = 5

var ErrDuplicateTag = errors.New("duplicate tag")

// Tool is a catalogued AI tool. The embedding vector lives in the same table
// but is only touched through the repository's embedding methods.
type Tool struct {
	ID          uuid.UUID     `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string        `json:"name" gorm:"type:text;not null"`
	Description string        `json:"description" gorm:"type:text;not null"`
	URL         string        `json:"url" gorm:"column:url;type:text;not null"`
	CategoryID  uuid.UUID     `json:"category_id" gorm:"type:uuid;not null;index"`
	Tags        types.TagList `json:"tags" gorm:"type:text[]"`
	IsTrending  bool          `json:"is_trending" gorm:"not null;default:false"`
	Order       int           `json:"order" gorm:"column:order;not null;default:0"`
	CreatedAt   time.Time     `json:"created_at"`
}

func (t *Tool) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now()
	}
	if t.Tags == nil {
		t.Tags = types.TagList{}
	}
	return nil
}

func (t *Tool) TableName() string {
	return "tools"
}

// Validate checks the fields an admin must provide when adding a tool.
func (t *Tool) Validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return domain.NewValidationError("name", "is required")
	}
	if strings.TrimSpace(t.Description) == "" {
		return domain.NewValidationError("description", "is required")
	}
	if err := validateURL(t.URL); err != nil {
		return err
	}
	if t.CategoryID == uuid.Nil {
		return domain.NewValidationError("category_id", "is required")
	}
	return ValidateTags(t.Tags)
}

func validateURL(raw string) error {
	if strings.TrimSpace(raw) == "" {
		return domain.NewValidationError("url", "is required")
	}
	u, err := url.ParseRequestURI(raw)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return domain.NewValidationError("url", "must be a valid http(s) URL")
	}
	return nil
}

// ValidateTags requires between one and MaxTags non-empty, distinct tags.
func ValidateTags(tags []string) error {
	if len(tags) == 0 {
		return domain.NewValidationError("tags", "must contain at least one tag")
	}
	if len(tags) > MaxTags {
		return domain.NewValidationError("tags", "must contain at most 5 tags")
	}
	seen := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		if strings.TrimSpace(tag) == "" {
			return domain.NewValidationError("tags", "must not contain empty values")
		}
		if _, ok := seen[tag]; ok {
			return domain.NewValidationError("tags", ErrDuplicateTag.Error()+" '"+tag+"'")
		}
		seen[tag] = struct{}{}
	}
	return nil
}

// NormalizeTags trims every tag and drops empty ones, keeping order.
func NormalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		if tag = strings.TrimSpace(tag); tag != "" {
			out = append(out, tag)
		}
	}
	return out
}

// EmbeddingText is the text indexed for semantic search.
func (t *Tool) EmbeddingText(categoryName string) string {
	var b strings.Builder
	b.WriteString(t.Name)
	b.WriteString(": ")
	b.WriteString(t.Description)
	b.WriteString(".")
	if categoryName != "" {
		b.WriteString(" Category: ")
		b.WriteString(categoryName)
		b.WriteString(".")
	}
	b.WriteString(" Tags: ")
	b.WriteString(strings.Join(t.Tags, ", "))
	return b.String()
}
