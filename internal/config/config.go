package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the top-level fluxo.yaml configuration. It is built
// once at startup and passed into the ingestion pipeline; nothing in the
// pipeline mutates it.
type Config struct {
	Scan    ScanConfig    `yaml:"scan"`
	Labels  LabelsConfig  `yaml:"labels"`
	Reports ReportsConfig `yaml:"reports"`
	Logging LoggingConfig `yaml:"logging"`
}

// ScanConfig controls folder discovery and column normalization.
type ScanConfig struct {
	// FolderKeywords match statement directories by substring, case-insensitive.
	FolderKeywords []string `yaml:"folder_keywords"`
	// ColumnSynonyms maps lowercased trimmed headers to canonical fields
	// ("date", "amount", "description").
	ColumnSynonyms map[string]string `yaml:"column_synonyms"`
}

// LabelsConfig holds the constant labels stamped onto every ledger row.
type LabelsConfig struct {
	DescriptionDefault string `yaml:"description_default"`
	TransactionType    string `yaml:"transaction_type"`
	Category           string `yaml:"category"`
	// ExcludedType is left out of the category distribution.
	ExcludedType string `yaml:"excluded_type"`
}

// ReportsConfig holds aggregation knobs.
type ReportsConfig struct {
	TopPayees     int `yaml:"top_payees"`
	HistogramBins int `yaml:"histogram_bins"`
}

// LoggingConfig controls diagnostic output.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// Canonical field names produced by column normalization.
const (
	FieldDate        = "date"
	FieldAmount      = "amount"
	FieldDescription = "description"
)

// Load reads a fluxo.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns the configuration matching the Nubank-style statement
// exports the tool was written for.
func Default() *Config {
	return &Config{
		Scan: ScanConfig{
			FolderKeywords: []string{"extrato", "fatura"},
			ColumnSynonyms: map[string]string{
				"data":        FieldDate,
				"date":        FieldDate,
				"valor":       FieldAmount,
				"amount":      FieldAmount,
				"descrição":   FieldDescription,
				"descriçao":   FieldDescription,
				"descriã§ã£o": FieldDescription, // mojibake from UTF-8 read as Latin-1
				"descricao":   FieldDescription,
				"description": FieldDescription,
				"title":       FieldDescription,
			},
		},
		Labels: LabelsConfig{
			DescriptionDefault: "N/A",
			TransactionType:    "Movimentação",
			Category:           "N/A",
			ExcludedType:       "Pagamento",
		},
		Reports: ReportsConfig{
			TopPayees:     10,
			HistogramBins: 30,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// LoadOrDefault reads path if it exists, otherwise returns Default.
func LoadOrDefault(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}
	return Load(path)
}
