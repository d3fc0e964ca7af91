// Package tutil holds helpers shared by tests.
package tutil

import (
	"os"
	"strings"
	"testing"
)

// IsIntegrationTest reports whether ATTACKDB_TEST is set to "integration".
// Integration tests need a real database described by the DB_* variables.
func IsIntegrationTest() bool {
	return strings.ToLower(os.Getenv("ATTACKDB_TEST")) == "integration"
}

// SkipUnlessIntegration skips t when IsIntegrationTest is false.
func SkipUnlessIntegration(t *testing.T) {
	t.Helper()
	if !IsIntegrationTest() {
		t.Skip("set ATTACKDB_TEST=integration to run against a real database")
	}
}
