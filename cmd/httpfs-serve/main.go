package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"

	"dqx0.com/go/webserve/httpfs"
	"dqx0.com/go/webserve/internal/obs"
)

func main() {
	if len(os.Args) != 3 {
		fmt.Fprintln(os.Stderr, "usage: httpfs-serve <port> <document_root>")
		os.Exit(1)
	}
	port, err := strconv.Atoi(os.Args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, "error: port must be an integer")
		os.Exit(1)
	}
	root := os.Args[2]
	if fi, err := os.Stat(root); err != nil || !fi.IsDir() {
		fmt.Fprintf(os.Stderr, "error: document root %q is not a directory\n", root)
		os.Exit(1)
	}

	logger := obs.StdLogger{L: log.New(os.Stderr, "", log.LstdFlags), Min: obs.Debug}
	s := &httpfs.Server{
		Addr:   ":" + strconv.Itoa(port),
		Root:   root,
		Logger: logger,
		Meter:  obs.ExpvarMeter{},
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		logger.Logf(obs.Info, "shutting down")
		_ = s.Shutdown(context.Background())
	}()

	abs, _ := filepath.Abs(root)
	logger.Logf(obs.Info, "serving HTTP on port %d with document root %q", port, abs)
	if err := s.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to bind or listen on port %d: %v\n", port, err)
		os.Exit(1)
	}
}
