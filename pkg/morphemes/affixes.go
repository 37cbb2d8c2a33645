package morphemes

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// AffixTable maps prefixes and suffixes to short glosses.
type AffixTable struct {
	Prefixes map[string]string `yaml:"prefixes"`
	Suffixes map[string]string `yaml:"suffixes"`
}

// DefaultAffixes returns the built-in English affix tables.
func DefaultAffixes() AffixTable {
	return AffixTable{
		Prefixes: map[string]string{
			"un":    "not",
			"re":    "again",
			"dis":   "not, opposite of",
			"pre":   "before",
			"post":  "after",
			"anti":  "against",
			"sub":   "under",
			"inter": "between",
			"trans": "across",
			"super": "above",
		},
		Suffixes: map[string]string{
			"ing":  "continuous action",
			"ed":   "past tense",
			"ly":   "in a manner of",
			"tion": "act or process",
			"ment": "state of",
			"ness": "state of being",
			"able": "capable of",
			"ible": "capable of",
			"ful":  "full of",
			"less": "without",
		},
	}
}

// LoadAffixes reads an affix table from a YAML file. Missing sections fall
// back to the built-in tables.
func LoadAffixes(path string) (AffixTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return AffixTable{}, fmt.Errorf("failed to read affix table: %w", err)
	}

	var table AffixTable
	if err := yaml.Unmarshal(data, &table); err != nil {
		return AffixTable{}, fmt.Errorf("failed to parse affix table: %w", err)
	}

	defaults := DefaultAffixes()
	if len(table.Prefixes) == 0 {
		table.Prefixes = defaults.Prefixes
	}
	if len(table.Suffixes) == 0 {
		table.Suffixes = defaults.Suffixes
	}
	return table, nil
}
