package common

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// ParseJSON parses a JSON string into v, rejecting trailing data so a
// corrupt record never half-decodes silently.
func ParseJSON(data string, v interface{}) error {
	dec := json.NewDecoder(strings.NewReader(data))
	if err := dec.Decode(v); err != nil {
		return err
	}

	for {
		t, err := dec.Token()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if t != nil {
			return fmt.Errorf("unexpected trailing data in JSON input: %v", t)
		}
	}
}
