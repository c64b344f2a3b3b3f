package gamedata

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Load decodes a JSON table from the embedded filesystem into T. Unknown
// fields are rejected so a misspelt stat fails at startup instead of
// silently reading as zero.
func Load[T any](filename string) (T, error) {
	var result T

	content, err := dataFS.ReadFile(filename)
	if err != nil {
		return result, fmt.Errorf("read embedded table %s: %w", filename, err)
	}

	dec := json.NewDecoder(bytes.NewReader(content))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&result); err != nil {
		return result, fmt.Errorf("parse table %s: %w", filename, err)
	}

	return result, nil
}

// row is a table row that can check itself.
type row[R any] interface {
	*R
	Validate() error
}

// validateRows validates every row of a loaded table.
func validateRows[R any, P row[R]](filename string, rows []R) error {
	if len(rows) == 0 {
		return fmt.Errorf("table %s: no rows", filename)
	}
	for i := range rows {
		if err := P(&rows[i]).Validate(); err != nil {
			return fmt.Errorf("table %s: %w", filename, err)
		}
	}
	return nil
}
