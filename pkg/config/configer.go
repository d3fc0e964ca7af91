package config

// Configer reads string and int settings. DotenvConfig backs it with the
// process environment, MapConfig with a fixed map for tests.
type Configer interface {
	Load() error
	GetKey(key string) string
	MustGetKey(key string) string
	GetKeyWithDefault(key, defaultValue string) string
	GetIntKeyWithDefault(key string, defaultValue int) int
}
