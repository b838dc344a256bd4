//go:build integration

package testutil

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

// redisDatabases is the number of logical databases in a default Redis server.
const redisDatabases = 16

type sharedSpec struct {
	mongo bool
	redis bool
}

// SharedOption selects a container started by RunWithContainers.
type SharedOption func(*sharedSpec)

// WithMongoDB starts a shared MongoDB container.
func WithMongoDB() SharedOption {
	return func(s *sharedSpec) { s.mongo = true }
}

// WithRedis starts a shared Redis container.
func WithRedis() SharedOption {
	return func(s *sharedSpec) { s.redis = true }
}

var (
	sharedMu    sync.RWMutex
	sharedMongo *MongoDBContainer
	sharedRedis *RedisContainer
	nextRedisDB atomic.Int32
)

// RunWithContainers starts the selected containers, runs the package tests and
// terminates the containers afterwards.
//
//	func TestMain(m *testing.M) {
//		os.Exit(testutil.RunWithContainers(context.Background(), m, testutil.WithMongoDB()))
//	}
func RunWithContainers(ctx context.Context, m *testing.M, opts ...SharedOption) int {
	spec := sharedSpec{}
	for _, opt := range opts {
		opt(&spec)
	}

	if err := startShared(ctx, spec); err != nil {
		stopShared(ctx)
		fmt.Fprintf(os.Stderr, "integration containers: %v\n", err)
		return 1
	}

	code := m.Run()
	stopShared(ctx)
	return code
}

func startShared(ctx context.Context, spec sharedSpec) error {
	sharedMu.Lock()
	defer sharedMu.Unlock()

	if spec.mongo {
		mongoContainer, err := SetupMongoDB(ctx)
		if err != nil {
			return err
		}
		sharedMongo = mongoContainer
	}
	if spec.redis {
		redisContainer, err := SetupRedis(ctx)
		if err != nil {
			return err
		}
		sharedRedis = redisContainer
	}
	return nil
}

func stopShared(ctx context.Context) {
	sharedMu.Lock()
	defer sharedMu.Unlock()

	if sharedMongo != nil {
		if err := sharedMongo.Cleanup(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to cleanup MongoDB container: %v\n", err)
		}
		sharedMongo = nil
	}
	if sharedRedis != nil {
		if err := sharedRedis.Cleanup(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to cleanup Redis container: %v\n", err)
		}
		sharedRedis = nil
	}
}

// SharedMongoURI returns the URI of the shared MongoDB container.
// Panics if RunWithContainers was not called WithMongoDB.
func SharedMongoURI() string {
	sharedMu.RLock()
	defer sharedMu.RUnlock()

	if sharedMongo == nil {
		panic("shared MongoDB container not started - use testutil.WithMongoDB in TestMain")
	}
	return sharedMongo.URI
}

// SharedRedisAddr returns the host:port of the shared Redis container.
// Panics if RunWithContainers was not called WithRedis.
func SharedRedisAddr() string {
	sharedMu.RLock()
	defer sharedMu.RUnlock()

	if sharedRedis == nil {
		panic("shared Redis container not started - use testutil.WithRedis in TestMain")
	}
	return sharedRedis.Addr
}

// NextRedisDB hands out logical Redis databases round robin so parallel tests
// rarely share a keyspace.
func NextRedisDB() int {
	return int(nextRedisDB.Add(1)-1) % redisDatabases
}

// UniqueDBName turns a test name into a unique, valid MongoDB database name.
func UniqueDBName(testName string) string {
	sanitized := strings.NewReplacer("/", "_", "\\", "_", " ", "_", ".", "_", "\"", "_", "$", "_").Replace(testName)
	if len(sanitized) > 50 {
		sanitized = sanitized[:50]
	}
	return fmt.Sprintf("%s_%d", sanitized, time.Now().UnixNano()%1000000)
}
