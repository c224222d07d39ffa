package main

import (
	"net"
	"net/http"
	"os"
	"syscall"
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestServeReturnsListenError(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer busy.Close()

	server := &http.Server{Addr: busy.Addr().String(), Handler: http.NotFoundHandler()}
	stop := make(chan os.Signal)

	done := make(chan error, 1)
	go func() { done <- serve(server, stop, time.Second, zap.NewNop()) }()

	select {
	case err := <-done:
		if err == nil {
			t.Fatalf("expected an error for an address already in use")
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("serve did not return after the listener failed")
	}
}

func TestServeStopsOnSignal(t *testing.T) {
	server := &http.Server{Addr: "127.0.0.1:0", Handler: http.NotFoundHandler()}
	stop := make(chan os.Signal, 1)

	done := make(chan error, 1)
	go func() { done <- serve(server, stop, time.Second, zap.NewNop()) }()

	stop <- syscall.SIGTERM
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("expected clean shutdown, got %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("serve did not return after a stop signal")
	}
}
