//go:build integration
// +build integration

package repository

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"testing"

	"app-builder-backend/internal/testutils"
)

// TestMain purges the shared Postgres container after the run, and on Ctrl+C
func TestMain(m *testing.M) {
	interrupted := make(chan os.Signal, 1)
	signal.Notify(interrupted, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-interrupted
		log.Println("Repository tests interrupted, purging Postgres container")
		testutils.CleanupSharedContainer()
		os.Exit(1)
	}()

	code := m.Run()
	testutils.CleanupSharedContainer()
	os.Exit(code)
}
