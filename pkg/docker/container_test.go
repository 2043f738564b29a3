package docker_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/pseudomuto/sqlshell/pkg/docker"
	"github.com/stretchr/testify/require"
)

func skipIfNoDocker(t *testing.T) {
	t.Helper()

	if testing.Short() {
		t.Skip("Skipping Docker tests in short mode")
	}

	if !docker.Available() {
		t.Skip("Docker not available")
	}
}

func TestContainer_StartStop(t *testing.T) {
	skipIfNoDocker(t)

	container := docker.New(docker.Options{Version: "25.7", Database: "shell"})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()
	defer func() { _ = container.Stop(ctx) }()

	require.NoError(t, container.Start(ctx))
	require.True(t, container.IsRunning())
	require.Error(t, container.Start(ctx), "second start should fail")

	url, err := container.URL(ctx)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(url, "clickhouse://"), url)
	require.Contains(t, url, "/shell")

	require.NoError(t, container.Stop(ctx))
	require.False(t, container.IsRunning())
}

func TestContainer_NotRunning(t *testing.T) {
	container := docker.New(docker.Options{})

	require.False(t, container.IsRunning())
	require.NoError(t, container.Stop(context.Background()))

	_, err := container.URL(context.Background())
	require.EqualError(t, err, "container is not running")
}
