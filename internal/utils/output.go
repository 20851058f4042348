package utils

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// OutputJSON marshals the provided data as indented JSON and writes it to w.
// Returns an error if marshaling or writing fails.
func OutputJSON(w io.Writer, data interface{}) error {
	jsonData, err := MarshalJSON(data)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(jsonData))
	return err
}

// OutputYAML marshals the provided data as YAML and writes it to w.
// Returns an error if marshaling or writing fails.
func OutputYAML(w io.Writer, data interface{}) error {
	yamlData, err := MarshalYAML(data)
	if err != nil {
		return err
	}
	_, err = w.Write(yamlData)
	return err
}

// MarshalJSON marshals the provided data as indented JSON.
// Returns the JSON bytes or an error if marshaling fails.
func MarshalJSON(data interface{}) ([]byte, error) {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return jsonData, nil
}

// MarshalYAML marshals the provided data as YAML.
// Returns the YAML bytes or an error if marshaling fails.
func MarshalYAML(data interface{}) ([]byte, error) {
	yamlData, err := yaml.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal YAML: %w", err)
	}
	return yamlData, nil
}
