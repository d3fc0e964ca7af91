package config

import (
	"os"

	"github.com/apex/log"
)

// MustLoadFromDotenv loads path, falling back to $ATTACKDB_DOTENV_PATH when
// path is blank. With neither set only the environment is consulted.
func MustLoadFromDotenv(path string) *DotenvConfig {
	if path == "" {
		path = os.Getenv(DotenvPathEnvVar)
	}

	c := NewDotenvConfig(path)
	if err := c.Load(); err != nil {
		log.Fatalf("Failed loading configuration file %s: %s", path, err)
	}

	return c
}
