package question

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadBank reads, parses, and validates a question bank file.
func LoadBank(path string) (Bank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Bank{}, fmt.Errorf("read question bank: %w", err)
	}
	bank, err := parseBank(data, path)
	if err != nil {
		return Bank{}, err
	}
	return NormalizeBank(bank)
}

// SaveBank writes a question bank as YAML, or JSON when the path ends in .json.
func SaveBank(path string, bank Bank) error {
	if bank.Version == 0 {
		bank.Version = 1
	}
	var (
		data []byte
		err  error
	)
	if isJSON(path) {
		data, err = json.MarshalIndent(bank, "", "  ")
	} else {
		data, err = yaml.Marshal(bank)
	}
	if err != nil {
		return fmt.Errorf("encode question bank: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write question bank: %w", err)
	}
	return nil
}

func isJSON(path string) bool {
	return strings.ToLower(filepath.Ext(path)) == ".json"
}

func parseBank(data []byte, path string) (Bank, error) {
	if isJSON(path) {
		return parseJSONBank(data)
	}
	return parseYAMLBank(data)
}

func parseJSONBank(data []byte) (Bank, error) {
	var bank Bank
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&bank); err != nil {
		return Bank{}, fmt.Errorf("parse json: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return Bank{}, fmt.Errorf("parse json: multiple documents are not supported")
		}
		return Bank{}, fmt.Errorf("parse json: %w", err)
	}
	return bank, nil
}

func parseYAMLBank(data []byte) (Bank, error) {
	var bank Bank
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&bank); err != nil {
		return Bank{}, fmt.Errorf("parse yaml: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return Bank{}, fmt.Errorf("parse yaml: multiple documents are not supported")
		}
		return Bank{}, fmt.Errorf("parse yaml: %w", err)
	}
	return bank, nil
}
