// terrasky-server serves terrasky over SSH. Every connection plays its own
// island; nothing is shared between players. Build:
//
//	go build -o terrasky-server ./cmd/server
//
// Usage:
//
//	./terrasky-server [-port 2222] [-key server_host_key] [-config terrasky.yaml]
//
// Connect with:
//
//	ssh -t -p 2222 localhost
package main

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"terrasky/internal/config"
	"terrasky/internal/remote"

	gossh "github.com/gliderlabs/ssh"
	xssh "golang.org/x/crypto/ssh"
)

func main() {
	port := flag.Int("port", 2222, "SSH server port")
	keyFile := flag.String("key", "server_host_key", "Path to the PEM-encoded host key (auto-generated if absent)")
	cfgPath := flag.String("config", "", "Path to a YAML config file")
	maxSessions := flag.Int("max-sessions", 32, "Maximum concurrent games (0 for no limit)")
	saveRuns := flag.Bool("save-runs", true, "Append a summary of each finished session to runs.jsonl")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	if err := run(*port, *keyFile, *cfgPath, *maxSessions, *saveRuns, logger); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run(port int, keyFile, cfgPath string, maxSessions int, saveRuns bool, logger *slog.Logger) error {
	cfg := config.Default()
	if cfgPath != "" {
		var err error
		if cfg, err = config.Load(cfgPath); err != nil {
			return err
		}
	}
	signer, err := loadOrCreateHostKey(keyFile, logger)
	if err != nil {
		return err
	}

	games := remote.NewServer(cfg, maxSessions, logger)
	games.SaveRuns = saveRuns
	srv := &gossh.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: games.Handle,
		// Accept PTY requests from any client.
		PtyCallback: func(_ gossh.Context, _ gossh.Pty) bool { return true },
		// Accept any authentication. Add gossh.PublicKeyAuth or
		// gossh.PasswordAuth options for real auth.
		HostSigners: []gossh.Signer{signer},
	}

	logger.Info("listening", "addr", srv.Addr, "max_sessions", maxSessions)
	logger.Info(fmt.Sprintf("connect with: ssh -t -p %d -o StrictHostKeyChecking=no localhost", port))
	return srv.ListenAndServe()
}

// loadOrCreateHostKey loads a PEM private key from path, or generates and
// persists a new ed25519 key if the file is absent or unreadable.
func loadOrCreateHostKey(path string, logger *slog.Logger) (gossh.Signer, error) {
	if data, err := os.ReadFile(path); err == nil {
		if signer, err := xssh.ParsePrivateKey(data); err == nil {
			logger.Info("loaded host key", "path", path)
			return signer, nil
		}
	}

	logger.Info("generating ed25519 host key", "path", path)
	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generate host key: %w", err)
	}
	signer, err := xssh.NewSignerFromKey(key)
	if err != nil {
		return nil, fmt.Errorf("create signer: %w", err)
	}
	// Persisting is best effort; the server runs with the in-memory key.
	pemBlock, err := xssh.MarshalPrivateKey(key, "terrasky server")
	if err == nil {
		err = os.WriteFile(path, pem.EncodeToMemory(pemBlock), 0600)
	}
	if err != nil {
		logger.Warn("host key not saved", "path", path, "error", err)
	}
	return signer, nil
}
