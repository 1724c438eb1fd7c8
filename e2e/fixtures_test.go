//go:build e2e && unix

package main

import (
	"fmt"
	"net"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"time"
)

const citiesConfig = `
version = 1
log_file = "typeahead.log"
log_level = "debug"

[[inputs]]
id = "city"
label = "City"
items = ["Prague", "Brno", "Ostrava", "Olomouc"]

[[inputs]]
id = "airport"
label = "Airport"
min_length = 0
items = [
  { value = "PRG", label = "Václav Havel Prague" },
  { value = "BRQ", label = "Brno-Tuřany" },
]
`

// WriteConfig stores content as config.toml in the workspace
func (tf *TUITestFramework) WriteConfig(content string) (string, error) {
	path := filepath.Join(tf.Workspace(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", err
	}
	return path, nil
}

// StartSuggestd runs the suggestion endpoint on a free port and returns its
// base URL once it answers health checks
func (tf *TUITestFramework) StartSuggestd() (string, error) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return "", err
	}
	addr := l.Addr().String()
	l.Close()

	cmd := exec.Command(suggestdPath, "-addr", addr, "-log-level", "warn")
	if err := cmd.Start(); err != nil {
		return "", fmt.Errorf("failed to start suggestd: %w", err)
	}
	tf.t.Cleanup(func() {
		_ = cmd.Process.Kill()
		_, _ = cmd.Process.Wait()
	})

	base := "http://" + addr
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		resp, err := http.Get(base + "/healthz")
		if err == nil {
			resp.Body.Close()
			return base, nil
		}
		time.Sleep(25 * time.Millisecond)
	}
	return "", fmt.Errorf("suggestd did not become healthy on %s", addr)
}
