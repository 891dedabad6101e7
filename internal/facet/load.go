package facet

import (
	"errors"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type fileConfig struct {
	Facets map[string]int `koanf:"facets"`
}

// Load builds the catalog. With an empty path the built-in defaults are
// used; otherwise the YAML file replaces the facet set wholesale:
//
//	facets:
//	  daily_quiet_time: 5
//	  team_call_attendance: 15
func Load(path string) (*Catalog, error) {
	if path == "" {
		return NewCatalog(builtin), nil
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, err
	}

	var cfg fileConfig
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, err
	}
	if len(cfg.Facets) == 0 {
		return nil, errors.New("facet config defines no facets")
	}
	return NewCatalog(cfg.Facets), nil
}
