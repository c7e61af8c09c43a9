package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/CosmoTheDev/gdnotify/models"
)

// readEvent loads an event fixture from path ("-" for stdin). JSON is passed
// through untouched; anything else is decoded as YAML and re-encoded.
func readEvent(path string) (json.RawMessage, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path) // #nosec G304 -- path is an operator-supplied fixture
	}
	if err != nil {
		return nil, fmt.Errorf("reading event: %w", err)
	}
	return normaliseEvent(data)
}

func normaliseEvent(data []byte) (json.RawMessage, error) {
	if json.Valid(data) {
		return json.RawMessage(data), nil
	}
	var evt models.FindingEvent
	if err := yaml.Unmarshal(data, &evt); err != nil {
		return nil, fmt.Errorf("event is neither JSON nor YAML: %w", err)
	}
	b, err := json.Marshal(&evt)
	if err != nil {
		return nil, fmt.Errorf("re-encoding event: %w", err)
	}
	return b, nil
}
