package env

import (
	"os"
	"path/filepath"
)

// WorkDir returns the tool's cache root, <UserCacheDir>/.prebuild.
func WorkDir() (string, error) {
	userCacheDir, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(userCacheDir, ".prebuild"), nil
}

// HooksDir returns the directory where shared hook collections are
// stored, creating it with 0700 permissions if needed.
func HooksDir() (string, error) {
	workDir, err := WorkDir()
	if err != nil {
		return "", err
	}
	hooksDir := filepath.Join(workDir, "hooks")
	if err := os.MkdirAll(hooksDir, 0700); err != nil {
		return "", err
	}
	return hooksDir, nil
}
