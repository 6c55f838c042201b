package file

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/custodia-labs/membank/internal/core/domain"
)

// Config is the on-disk configuration.
type Config struct {
	// DataDir overrides the default database location (~/.membank/data).
	DataDir string `toml:"data_dir"`

	// SourceTables overrides the built-in source table registry. When empty,
	// the default registry applies.
	SourceTables []TableConfig `toml:"source_table"`
}

// TableConfig is one [[source_table]] entry.
type TableConfig struct {
	Name          string `toml:"name"`
	TitleField    string `toml:"title_field"`
	ContentField  string `toml:"content_field"`
	KeyField      string `toml:"key_field"`
	ModifiedField string `toml:"modified_field"`
	Tag           string `toml:"tag"`
	Rank          int    `toml:"rank"`
}

// Load reads config.toml from configDir. If configDir is empty, defaults to
// ~/.membank. A missing file yields an empty Config.
func Load(configDir string) (*Config, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		configDir = filepath.Join(home, ".membank")
	}

	path := filepath.Join(configDir, "config.toml")
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Config{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %v", domain.ErrInvalidConfig, path, err)
	}
	return &cfg, nil
}

// Registry builds the source table registry from the configuration, falling
// back to the built-in registry when no tables are configured. Descriptor
// validation happens here, at startup, so a bad config refuses to serve.
func (c *Config) Registry() (*domain.Registry, error) {
	if len(c.SourceTables) == 0 {
		return domain.DefaultRegistry(), nil
	}

	tables := make([]domain.SourceTable, len(c.SourceTables))
	for i, tc := range c.SourceTables {
		modified := tc.ModifiedField
		if modified == "" {
			modified = "updated_at"
		}
		tables[i] = domain.SourceTable{
			Name:          tc.Name,
			TitleField:    tc.TitleField,
			ContentField:  tc.ContentField,
			KeyField:      tc.KeyField,
			ModifiedField: modified,
			Tag:           tc.Tag,
			Rank:          tc.Rank,
		}
	}
	return domain.NewRegistry(tables)
}
