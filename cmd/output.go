package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/s0up4200/pageblade/pageblade"
)

// writeOutput renders v as JSON or YAML. YAML keys follow the JSON field
// names so both formats describe the same document.
func writeOutput(w io.Writer, format string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}

	switch format {
	case "", "json":
		_, err = fmt.Fprintln(w, string(data))
		return err
	case "yaml":
		var doc any
		if err := json.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("failed to encode output: %w", err)
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("failed to encode output: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

// printResult writes v to stdout in the configured format
func printResult(w io.Writer, v any) error {
	return writeOutput(w, cfg.Output.Format, v)
}

// batchSummary is the printable form of a BatchResult
type batchSummary struct {
	Requested int            `json:"requested"`
	Succeeded []string       `json:"succeeded"`
	Failed    []batchFailure `json:"failed,omitempty"`
}

type batchFailure struct {
	ID     string `json:"id"`
	Status int    `json:"status,omitempty"`
	Error  string `json:"error"`
}

func summarizeBatch(result pageblade.BatchResult) batchSummary {
	summary := batchSummary{
		Requested: result.Requested,
		Succeeded: result.Succeeded,
	}
	if summary.Succeeded == nil {
		summary.Succeeded = []string{}
	}
	for _, f := range result.Failed {
		failure := batchFailure{ID: f.ID, Error: f.Err.Error()}
		if apiErr, ok := pageblade.AsError(f.Err); ok {
			failure.Status = apiErr.Code
		}
		summary.Failed = append(summary.Failed, failure)
	}
	return summary
}
