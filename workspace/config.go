package workspace

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

var errUnknownType = errors.New("workspace: unknown repo type")

// ParseConfig decodes a YAML repo config. The "type" field selects the
// configuration shape: "preexisting", "local", or "github".
func ParseConfig(data []byte) (Repo, error) {
	var head struct {
		Type string `yaml:"type"`
	}
	if err := yaml.Unmarshal(data, &head); err != nil {
		return nil, fmt.Errorf("workspace: parse config: %w", err)
	}

	switch head.Type {
	case "preexisting":
		r := PreExistingRepo{Reset: true}
		if err := yaml.Unmarshal(data, &r); err != nil {
			return nil, fmt.Errorf("workspace: parse config: %w", err)
		}
		return r, nil
	case "local":
		var r LocalRepo
		if err := yaml.Unmarshal(data, &r); err != nil {
			return nil, fmt.Errorf("workspace: parse config: %w", err)
		}
		return r, nil
	case "github":
		var r GitHubRepo
		if err := yaml.Unmarshal(data, &r); err != nil {
			return nil, fmt.Errorf("workspace: parse config: %w", err)
		}
		return r, nil
	default:
		return nil, fmt.Errorf("%w: %q", errUnknownType, head.Type)
	}
}

// FromInput builds a repo config from a bare path or GitHub URL,
// detecting which one it is.
func FromInput(input, base string) Repo {
	if strings.HasPrefix(input, "https://github.com/") {
		return GitHubRepo{URL: input, Base: base}
	}
	return LocalRepo{Path: input, Base: base}
}
