// Package opener hands a file to the desktop's default application.
package opener

import (
	"os/exec"
	"runtime"
)

// Command returns the launcher invocation for path on goos.
func Command(goos, path string) (string, []string) {
	switch goos {
	case "darwin":
		return "open", []string{path}
	case "windows":
		return "cmd", []string{"/c", "start", "", path}
	default:
		return "xdg-open", []string{path}
	}
}

// Open launches the default application for path without waiting for it.
func Open(path string) error {
	name, args := Command(runtime.GOOS, path)
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() { _ = cmd.Wait() }()
	return nil
}
