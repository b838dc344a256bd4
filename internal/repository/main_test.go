//go:build integration

package repository

import (
	"context"
	"os"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/grimoire-service/internal/testutil"
)

// TestMain shares one MongoDB and one Redis container across the package.
func TestMain(m *testing.M) {
	os.Exit(testutil.RunWithContainers(context.Background(), m, testutil.WithMongoDB(), testutil.WithRedis()))
}

func getSharedContainerURI() string {
	return testutil.SharedMongoURI()
}

func sanitizeDBName(testName string) string {
	return testutil.UniqueDBName(testName)
}

// setupTestDBFromSharedContainer connects to a database named after the test.
func setupTestDBFromSharedContainer(t *testing.T) *MongoDB {
	db, err := NewMongoDB(getSharedContainerURI(), sanitizeDBName(t.Name()))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Database.Drop(context.Background())
		_ = db.Close(context.Background())
	})
	return db
}

// setupTestRedis connects to a freshly flushed logical database on the shared Redis.
func setupTestRedis(t *testing.T) *redis.Client {
	ctx := context.Background()
	client, err := NewRedisClient(ctx, testutil.SharedRedisAddr(), "", testutil.NextRedisDB())
	require.NoError(t, err)
	require.NoError(t, client.FlushDB(ctx).Err())
	t.Cleanup(func() {
		_ = client.Close()
	})
	return client
}
