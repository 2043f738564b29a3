// Package docker runs throwaway ClickHouse servers for integration tests.
//
// Tests that need a real server (rather than the in-memory SQLite database
// the unit tests use) start a container, connect to its URL with
// database.Open, and stop it when done:
//
//	container := docker.New(docker.Options{Version: "25.7"})
//	if err := container.Start(ctx); err != nil {
//		t.Fatal(err)
//	}
//	defer container.Stop(ctx)
//
//	url, _ := container.URL(ctx)
//	db, err := database.Open(ctx, url)
//
// Docker must be available; see Available.
package docker
