package docker

import (
	"context"
	"fmt"
	"os/exec"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/pkg/errors"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/clickhouse"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	// DefaultVersion is the ClickHouse image tag used when none is given
	DefaultVersion = "latest"

	httpPort = nat.Port("8123/tcp")
)

type (
	// Options configure the ClickHouse container.
	Options struct {
		// Version is the ClickHouse version to run (default: latest)
		Version string

		// Database is created on start-up and used in the URL (default: default)
		Database string
	}

	// Container is a ClickHouse server running in Docker.
	Container struct {
		options   Options
		container *clickhouse.ClickHouseContainer
	}
)

// New returns a stopped container.
func New(opts Options) *Container {
	return &Container{options: opts}
}

// Available reports whether a Docker daemon can be reached.
func Available() bool {
	if _, err := exec.LookPath("docker"); err != nil {
		return false
	}

	return exec.Command("docker", "ps").Run() == nil
}

// Start runs the container and waits until the server answers HTTP requests.
func (c *Container) Start(ctx context.Context) error {
	if c.container != nil {
		return errors.New("container is already running")
	}

	version := c.options.Version
	if version == "" {
		version = DefaultVersion
	}

	customizers := []testcontainers.ContainerCustomizer{
		clickhouse.WithUsername("default"),
		clickhouse.WithPassword(""),
		testcontainers.WithEnv(map[string]string{"CLICKHOUSE_DEFAULT_ACCESS_MANAGEMENT": "1"}),
		testcontainers.WithWaitStrategyAndDeadline(
			5*time.Minute,
			wait.
				NewHTTPStrategy("/").
				WithPort(httpPort).
				WithStatusCodeMatcher(func(status int) bool {
					return status == 200
				}),
		),
	}

	if c.options.Database != "" {
		customizers = append(customizers, clickhouse.WithDatabase(c.options.Database))
	}

	container, err := clickhouse.Run(ctx,
		fmt.Sprintf("clickhouse/clickhouse-server:%s-alpine", version),
		customizers...,
	)
	if err != nil {
		return errors.Wrap(err, "failed to start ClickHouse container")
	}

	c.container = container
	return nil
}

// Stop terminates the container. Stopping a stopped container is a no-op.
func (c *Container) Stop(ctx context.Context) error {
	if c.container == nil {
		return nil
	}

	err := c.container.Terminate(ctx)
	c.container = nil

	if err != nil {
		return errors.Wrap(err, "failed to stop ClickHouse container")
	}

	return nil
}

// URL returns the clickhouse:// URL of the native protocol port.
func (c *Container) URL(ctx context.Context) (string, error) {
	if c.container == nil {
		return "", errors.New("container is not running")
	}

	url, err := c.container.ConnectionString(ctx)
	if err != nil {
		return "", errors.Wrap(err, "failed to get connection string")
	}

	return url, nil
}

// IsRunning returns true if the container is currently running
func (c *Container) IsRunning() bool {
	return c.container != nil
}
