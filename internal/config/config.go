package config

import "github.com/caarlos0/env/v9"

type Config struct {
	Port string `env:"PORT" envDefault:"8080"`

	// MySQL is used when DBHost is set; otherwise the service falls back
	// to a local sqlite file at SQLitePath.
	DBUser     string `env:"DB_USER"`
	DBPassword string `env:"DB_PASSWORD"`
	DBHost     string `env:"DB_HOST"` // e.g. tcp(host:3306) or unix(/cloudsql/instance)
	DBName     string `env:"DB_NAME"`
	DBPort     string `env:"DB_PORT" envDefault:"3306"`
	SQLitePath string `env:"SQLITE_PATH" envDefault:"data/leaderboard.db"`

	// Optional YAML file overriding the built-in facet catalog.
	FacetsConfig string `env:"FACETS_CONFIG"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
