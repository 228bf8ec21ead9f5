package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// payloadFlags holds the --data and --file flags of create and update commands
type payloadFlags struct {
	data string
	file string
}

func (p *payloadFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&p.data, "data", "", "request body as inline JSON or YAML")
	cmd.Flags().StringVar(&p.file, "file", "", "read the request body from a JSON or YAML file (- for stdin)")
	cmd.MarkFlagsMutuallyExclusive("data", "file")
}

// decode fills out from whichever of --data or --file was given
func (p *payloadFlags) decode(cmd *cobra.Command, out any) error {
	var raw []byte
	switch {
	case p.data != "":
		raw = []byte(p.data)
	case p.file == "-":
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
		raw = data
	case p.file != "":
		data, err := os.ReadFile(p.file)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", p.file, err)
		}
		raw = data
	default:
		return fmt.Errorf("a request body is required, use --data or --file")
	}
	return decodePayload(raw, out)
}

// decodePayload parses JSON or YAML into out. Field names are the API's
// JSON names, and unknown fields are rejected.
func decodePayload(raw []byte, out any) error {
	var doc any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	if doc == nil {
		return fmt.Errorf("request body is empty")
	}
	if _, ok := doc.(map[string]any); !ok {
		return fmt.Errorf("request body must be an object")
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(out); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}
