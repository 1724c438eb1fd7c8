//go:build e2e && unix

package main

import (
	"fmt"
	"os"
	"os/exec"
	"testing"
)

func TestMain(m *testing.M) {
	// Get the absolute path to the e2e directory
	e2eDir, err := os.Getwd()
	if err != nil {
		fmt.Printf("Failed to get working directory: %v\n", err)
		os.Exit(1)
	}

	binPath = e2eDir + "/typeahead_e2e"
	suggestdPath = e2eDir + "/suggestd_e2e"

	fmt.Println("Building test binaries from main project...")
	for _, b := range []struct{ out, pkg string }{
		{binPath, "."},
		{suggestdPath, "./cmd/suggestd"},
	} {
		cmd := exec.Command("go", "build", "-o", b.out, b.pkg)
		cmd.Dir = ".." // Run from parent directory
		if out, err := cmd.CombinedOutput(); err != nil {
			fmt.Printf("Failed to build %s: %v\n%s\n", b.pkg, err, out)
			os.Exit(1)
		}
	}

	// Run tests
	code := m.Run()

	// Cleanup
	os.Remove(binPath)
	os.Remove(suggestdPath)
	os.Exit(code)
}
