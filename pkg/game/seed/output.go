package seed

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Format names an output encoding for SeedData.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// Write encodes data to out.
func Write(out io.Writer, data *SeedData, format Format) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(data); err != nil {
			return fmt.Errorf("encode seed yaml: %w", err)
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(data); err != nil {
			return fmt.Errorf("encode seed json: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("seed: unknown output format %q", format)
	}
}

// Read decodes SeedData written by Write. The decoded worlds carry no graph.
func Read(in io.Reader, format Format) (*SeedData, error) {
	var data SeedData
	var err error
	switch format {
	case FormatYAML:
		err = yaml.NewDecoder(in).Decode(&data)
	case FormatJSON:
		err = json.NewDecoder(in).Decode(&data)
	default:
		return nil, fmt.Errorf("seed: unknown output format %q", format)
	}
	if err != nil {
		return nil, fmt.Errorf("decode seed %s: %w", format, err)
	}
	return &data, nil
}
