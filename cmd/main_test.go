package main

import (
	"bytes"
	"catalog_service/config"
	"catalog_service/internal/testutil"
	"context"
	"errors"
	"fmt"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type okPinger struct{}

func (okPinger) PingContext(context.Context) error { return nil }

// recordListen swaps the package listener for one that notes every bind,
// along with how many products had been saved at that moment.
func recordListen(t *testing.T, repo *testutil.MemoryProductRepository) *[]string {
	t.Helper()
	var mu sync.Mutex
	binds := []string{}
	orig := listen
	listen = func(network, addr string) (net.Listener, error) {
		mu.Lock()
		binds = append(binds, fmt.Sprintf("%s saved=%d", addr, len(repo.Created)))
		mu.Unlock()
		return net.Listen(network, "127.0.0.1:0")
	}
	t.Cleanup(func() { listen = orig })
	return &binds
}

func testConfig() *config.Config {
	return &config.Config{
		HTTPPort:       "127.0.0.1:18080",
		GrpcPort:       "127.0.0.1:15051",
		SeedSampleData: true,
	}
}

func TestRunAbortsBeforeListeningWhenSeedingFails(t *testing.T) {
	gin.SetMode(gin.TestMode)
	repo := testutil.NewMemoryProductRepository()
	repo.FailOnCreate = 1
	repo.CreateErr = errors.New("connection refused")
	binds := recordListen(t, repo)
	var out bytes.Buffer

	err := run(context.Background(), testConfig(), testutil.QuietLogger(), okPinger{}, repo, &out, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, repo.CreateErr)
	assert.Empty(t, *binds)
	assert.Len(t, repo.Created, 1)
	assert.Empty(t, out.String())
}

func TestRunSeedsBeforeListening(t *testing.T) {
	gin.SetMode(gin.TestMode)
	repo := testutil.NewMemoryProductRepository()
	binds := recordListen(t, repo)
	var out bytes.Buffer

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- run(ctx, testConfig(), testutil.QuietLogger(), okPinger{}, repo, &out, []string{"--profile=dev"})
	}()

	require.Eventually(t, func() bool {
		products, _ := repo.ListProducts()
		return len(products) == 4
	}, 5*time.Second, 10*time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(15 * time.Second):
		t.Fatal("run did not return after cancellation")
	}
	assert.Equal(t, []string{"127.0.0.1:15051 saved=4", "127.0.0.1:18080 saved=4"}, *binds)
	assert.Equal(t, "Sample data has been loaded!\n", out.String())
}

func TestRunSkipsSeedingWhenDisabled(t *testing.T) {
	gin.SetMode(gin.TestMode)
	repo := testutil.NewMemoryProductRepository()
	recordListen(t, repo)
	cfg := testConfig()
	cfg.SeedSampleData = false

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(t, run(ctx, cfg, testutil.QuietLogger(), okPinger{}, repo, &bytes.Buffer{}, nil))
	assert.Empty(t, repo.Created)
}
