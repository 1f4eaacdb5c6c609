package platform

import (
	"fmt"
	"net/url"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
)

// File permissions
const (
	DefaultDirPermissions = 0755
)

// Command constants
const (
	OpenCommand     = "open"
	XDGOpenCommand  = "xdg-open"
	RundllCommand   = "rundll32"
	RundllURLParams = "url.dll,FileProtocolHandler"
)

// Linux browsers tried when xdg-open is missing
var (
	LinuxBrowsers = []string{"sensible-browser", "x-www-browser", "firefox", "chromium"}
)

// commandRunner runs an external command; replaced in tests
var commandRunner = func(name string, args ...string) error {
	return exec.Command(name, args...).Start()
}

// lookPath finds an executable; replaced in tests
var lookPath = exec.LookPath

// OpenURL opens an http(s) URL in the default browser
func OpenURL(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("invalid url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("refusing to open non-http url: %s", rawURL)
	}
	return openWithSystem(runtime.GOOS, u.String())
}

// OpenFileWithDefaultApp opens a local file with the default system application
func OpenFileWithDefaultApp(filePath string) error {
	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %w", err)
	}
	if _, err := os.Stat(absPath); err != nil {
		return fmt.Errorf("file does not exist: %w", err)
	}
	return openWithSystem(runtime.GOOS, absPath)
}

// openWithSystem dispatches to the platform opener
func openWithSystem(goos, target string) error {
	switch goos {
	case OSDarwin:
		return commandRunner(OpenCommand, target)
	case OSWindows:
		return commandRunner(RundllCommand, RundllURLParams, target)
	case OSLinux:
		return openLinux(target)
	default:
		return fmt.Errorf("unsupported operating system: %s", goos)
	}
}

// openLinux tries xdg-open first, then common browsers
func openLinux(target string) error {
	if _, err := lookPath(XDGOpenCommand); err == nil {
		return commandRunner(XDGOpenCommand, target)
	}

	for _, b := range LinuxBrowsers {
		if _, err := lookPath(b); err == nil {
			return commandRunner(b, target)
		}
	}

	return fmt.Errorf("no suitable opener found")
}

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}
