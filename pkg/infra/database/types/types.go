package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/lib/pq"
)

// TagList maps a Postgres text[] column. NULL reads back as an empty list.
type TagList []string

func (t TagList) Value() (driver.Value, error) {
	if t == nil {
		return pq.Array([]string{}).Value()
	}
	return pq.Array([]string(t)).Value()
}

func (t *TagList) Scan(value interface{}) error {
	if value == nil {
		*t = TagList{}
		return nil
	}

	var strs []string
	if err := pq.Array(&strs).Scan(value); err != nil {
		return fmt.Errorf("failed to scan tag list: %w", err)
	}
	if strs == nil {
		strs = []string{}
	}

	*t = strs
	return nil
}

var ErrInvalidVector = errors.New("invalid vector literal")

// Vector maps a pgvector column using its text representation, "[1,2,3]".
type Vector []float64

func (v Vector) Value() (driver.Value, error) {
	if v == nil {
		return nil, nil
	}
	return v.String(), nil
}

func (v Vector) String() string {
	var b strings.Builder
	b.Grow(len(v)*10 + 2)
	b.WriteByte('[')
	for i, f := range v {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatFloat(f, 'f', -1, 32))
	}
	b.WriteByte(']')
	return b.String()
}

func (v *Vector) Scan(value interface{}) error {
	var raw string
	switch val := value.(type) {
	case nil:
		*v = nil
		return nil
	case string:
		raw = val
	case []byte:
		raw = string(val)
	default:
		return fmt.Errorf("%w: unsupported type %T", ErrInvalidVector, value)
	}

	raw = strings.TrimSpace(raw)
	if len(raw) < 2 || raw[0] != '[' || raw[len(raw)-1] != ']' {
		return fmt.Errorf("%w: %q", ErrInvalidVector, raw)
	}
	body := raw[1 : len(raw)-1]
	if body == "" {
		*v = Vector{}
		return nil
	}

	parts := strings.Split(body, ",")
	out := make(Vector, len(parts))
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidVector, err)
		}
		out[i] = f
	}
	*v = out
	return nil
}
