package config

import (
	"errors"
	"fmt"
	"maps"

	"dario.cat/mergo"
	"github.com/spf13/pflag"
)

// configBuilder collects configuration sources as flat KEY=VALUE layers.
// Layers are merged in the order they were added; a later layer overrides
// any key set by an earlier one, including with "false" or "0". Empty
// values are dropped, so they never override an earlier layer.
type configBuilder struct {
	layers []map[string]string
	err    error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		layers: make([]map[string]string, 0, 4),
	}
}

func (b *configBuilder) build() (map[string]string, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	merged := make(map[string]string)
	for _, layer := range b.layers {
		if err := mergo.Merge(&merged, nonEmpty(layer), mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return merged, nil
}

// withDotenv adds the contents of a dotenv file. When path is empty the
// default files are tried and silently skipped if missing; an explicit path
// must exist.
func (b *configBuilder) withDotenv(path string) *configBuilder {
	layer, err := readDotenv(path)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.layers = append(b.layers, layer)
	return b
}

func (b *configBuilder) withEnv(environ []string) *configBuilder {
	b.layers = append(b.layers, environToMap(environ))
	return b
}

// withJSON adds a JSON config file. The path is taken from jsonPath or,
// when empty, from the CONFIG key of the layers collected so far.
func (b *configBuilder) withJSON(jsonPath string) *configBuilder {
	if jsonPath == "" {
		jsonPath = b.lookup(jsonPathKey)
	}
	if jsonPath == "" {
		return b
	}

	layer, err := parseJSON(jsonPath)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.layers = append(b.layers, layer)
	return b
}

func (b *configBuilder) withFlags(fs *pflag.FlagSet) *configBuilder {
	if fs == nil {
		return b
	}

	layer, err := flagLayer(fs)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.layers = append(b.layers, layer)
	return b
}

// withValues adds a fixed layer. Used for tests and programmatic overrides.
func (b *configBuilder) withValues(values map[string]string) *configBuilder {
	if len(values) > 0 {
		b.layers = append(b.layers, maps.Clone(values))
	}
	return b
}

// lookup returns the value of key from the topmost layer that sets it.
func (b *configBuilder) lookup(key string) string {
	for i := len(b.layers) - 1; i >= 0; i-- {
		if v := b.layers[i][key]; v != "" {
			return v
		}
	}
	return ""
}

func nonEmpty(layer map[string]string) map[string]string {
	out := maps.Clone(layer)
	maps.DeleteFunc(out, func(_, v string) bool { return v == "" })
	return out
}
