package adapter

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	m "aledit.dev/pkg/aledit/internal/model"
)

// equalitiesFile is the on-disk shape of an equality-pair definition:
//
//	pairs:
//	  - A=N
//	  - G=X
type equalitiesFile struct {
	Pairs []string `yaml:"pairs"`
}

// LoadEqualities reads equality pairs from a YAML file.
func LoadEqualities(path string) ([]m.EqualityPair, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read equalities file: %w", err)
	}

	var file equalitiesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse equalities file %s: %w", path, err)
	}

	pairs := make([]m.EqualityPair, 0, len(file.Pairs))
	for _, s := range file.Pairs {
		pair, err := m.ParseEqualityPair(s)
		if err != nil {
			return nil, fmt.Errorf("equalities file %s: %w", path, err)
		}

		pairs = append(pairs, pair)
	}

	return pairs, nil
}
