package features

import (
	"errors"
	"fmt"
)

// Schema is the ordered list of feature columns a trained model expects.
// It is immutable once built and safe for concurrent use.
type Schema struct {
	columns []string
	index   map[string]int
}

func NewSchema(columns []string) (*Schema, error) {
	if len(columns) == 0 {
		return nil, errors.New("schema has no columns")
	}
	index := make(map[string]int, len(columns))
	for i, name := range columns {
		if name == "" {
			return nil, fmt.Errorf("schema column %d has an empty name", i)
		}
		if _, dup := index[name]; dup {
			return nil, fmt.Errorf("schema column %q is duplicated", name)
		}
		index[name] = i
	}
	return &Schema{
		columns: append([]string(nil), columns...),
		index:   index,
	}, nil
}

func (s *Schema) Len() int {
	return len(s.columns)
}

func (s *Schema) Columns() []string {
	return append([]string(nil), s.columns...)
}

func (s *Schema) Index(name string) (int, bool) {
	i, ok := s.index[name]
	return i, ok
}
