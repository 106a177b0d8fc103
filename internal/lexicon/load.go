package lexicon

import (
	"fmt"

	"github.com/spf13/viper"
)

// LoadFile reads a YAML, JSON or TOML lexicon file and merges it onto the
// default tables. Sections missing from the file keep their defaults.
// The result is not validated; pass it to Compile.
func LoadFile(path string) (Raw, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return Raw{}, fmt.Errorf("reading lexicon %s: %w", path, err)
	}

	var override Raw
	if err := v.Unmarshal(&override); err != nil {
		return Raw{}, fmt.Errorf("decoding lexicon %s: %w", path, err)
	}
	return Merge(Default(), override), nil
}

// Load compiles the lexicon at path, or the built-in default when path is empty.
func Load(path string) (*Lexicon, error) {
	raw := Default()
	if path != "" {
		var err error
		if raw, err = LoadFile(path); err != nil {
			return nil, err
		}
	}
	return Compile(raw)
}
