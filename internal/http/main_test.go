//go:build integration

package http

import (
	"context"
	"os"
	"testing"

	"github.com/guttosm/grimoire-service/internal/testutil"
)

// TestMain shares one MongoDB container; each deck test stores into its own database.
func TestMain(m *testing.M) {
	os.Exit(testutil.RunWithContainers(context.Background(), m, testutil.WithMongoDB()))
}

func getSharedContainerURI() string {
	return testutil.SharedMongoURI()
}

func sanitizeDBNameForHTTP(testName string) string {
	return testutil.UniqueDBName(testName)
}
