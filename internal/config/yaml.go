package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

type yamlGraphFile struct {
	Edges []struct {
		From string  `yaml:"from"`
		To   string  `yaml:"to"`
		Cost float64 `yaml:"cost"`
	} `yaml:"edges"`
	Heuristics map[string]float64 `yaml:"heuristics"`
	Search     *struct {
		Start string `yaml:"start"`
		Goal  string `yaml:"goal"`
	} `yaml:"search"`
}

func decodeYAMLGraph(path string) (*GraphFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading graph file %s: %w", path, err)
	}
	return decodeYAMLBytes(path, data)
}

func decodeYAMLBytes(path string, data []byte) (*GraphFile, error) {
	var parsed yamlGraphFile
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&parsed); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("error parsing YAML graph file %s: %w", path, err)
	}

	file := &GraphFile{
		Path:       path,
		Edges:      make([]EdgeDefinition, 0, len(parsed.Edges)),
		Heuristics: map[string]float64{},
	}
	for _, edge := range parsed.Edges {
		file.Edges = append(file.Edges, EdgeDefinition{From: edge.From, To: edge.To, Cost: edge.Cost})
	}
	for name, value := range parsed.Heuristics {
		file.Heuristics[name] = value
	}
	if parsed.Search != nil {
		file.Start = parsed.Search.Start
		file.Goal = parsed.Search.Goal
	}
	return file, nil
}
