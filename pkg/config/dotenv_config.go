package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/apex/log"
	"github.com/subosito/gotenv"
)

// DotenvPathEnvVar names the variable that points at the dotenv file used when
// no path is given explicitly.
const DotenvPathEnvVar = "ATTACKDB_DOTENV_PATH"

type DotenvConfig struct {
	DotenvPath string
}

func NewDotenvConfig(path string) *DotenvConfig {
	return &DotenvConfig{DotenvPath: path}
}

// Load reads DotenvPath into the environment. Variables that are already set
// win over the file. An empty path means the environment is used as is.
func (c *DotenvConfig) Load() error {
	if c.DotenvPath == "" {
		return nil
	}

	return gotenv.Load(c.DotenvPath)
}

func (c *DotenvConfig) GetKey(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}

func (c *DotenvConfig) MustGetKey(key string) string {
	val := c.GetKey(key)
	if val == "" {
		log.Fatalf("No such required config key: '%s'", key)
	}

	return val
}

func (c *DotenvConfig) GetKeyWithDefault(key, defaultValue string) string {
	if val := c.GetKey(key); val != "" {
		return val
	}

	return defaultValue
}

func (c *DotenvConfig) GetIntKeyWithDefault(key string, defaultValue int) int {
	intVal, err := strconv.Atoi(c.GetKey(key))
	if err != nil {
		return defaultValue
	}

	return intVal
}
