package gnupg

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/jinzhu/copier"
	"gopkg.in/yaml.v2"
)

// LoadConfig returns configuration loaded from a file. Files with a
// .json extension are parsed as JSON, everything else as YAML.
func LoadConfig(file string) (*Config, error) {
	b, err := os.ReadFile(file)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	var cfg Config
	if strings.HasSuffix(file, ".json") {
		if err = json.Unmarshal(b, &cfg); err != nil {
			return nil, errors.WithMessagef(err, "unable to unmarshal JSON: %q", file)
		}
	} else {
		if err = yaml.Unmarshal(b, &cfg); err != nil {
			return nil, errors.WithMessagef(err, "unable to unmarshal YAML: %q", file)
		}
	}
	return &cfg, nil
}

// Clone returns a deep copy, so a caller can derive a variant config
// without mutating the one shared across invocations.
func (c *Config) Clone() *Config {
	var out Config
	_ = copier.CopyWithOption(&out, c, copier.Option{DeepCopy: true})
	return &out
}
