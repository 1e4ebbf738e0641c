//go:build !js

package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"
)

// Serves index.html, main.wasm and wasm_exec.js. Build the module with
//
//	GOOS=js GOARCH=wasm go build -o cmd/wasm-demo/main.wasm ./cmd/wasm-app
//	cp "$(go env GOROOT)/lib/wasm/wasm_exec.js" cmd/wasm-demo/
func main() {
	addr := flag.String("addr", ":8080", "listen address")
	baseDir := flag.String("dir", filepath.Join("cmd", "wasm-demo"), "directory with index.html, main.wasm and wasm_exec.js")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	srv := &http.Server{Addr: *addr, Handler: logRequests(logger, newHandler(*baseDir))}

	go func() {
		logger.Info("serving", "url", "http://localhost"+*addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("listen failed", "error", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("shutdown failed", "error", err)
	}
}

func newHandler(baseDir string) http.Handler {
	mux := http.NewServeMux()
	fs := http.FileServer(http.Dir(baseDir))
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/" {
			http.ServeFile(w, r, filepath.Join(baseDir, "index.html"))
			return
		}
		fs.ServeHTTP(w, r)
	})
	return mux
}

func logRequests(logger *slog.Logger, h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Debug("request", "method", r.Method, "path", r.URL.Path)
		h.ServeHTTP(w, r)
	})
}
