package core

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/blackcoderx/weburl/pkg/environment"
	"github.com/blackcoderx/weburl/pkg/storage"
)

const WorkspaceFolderName = ".weburl"

// InitializeWorkspace creates the .weburl directory under dir and writes the
// default settings and environment files when they don't exist. It reports
// whether anything was created.
func InitializeWorkspace(dir string) (bool, error) {
	folder := filepath.Join(dir, WorkspaceFolderName)
	created := false

	if _, err := os.Stat(folder); os.IsNotExist(err) {
		if err := os.Mkdir(folder, 0755); err != nil {
			return false, fmt.Errorf("failed to create %s folder: %w", WorkspaceFolderName, err)
		}
		created = true
	}

	settingsPath := storage.GetSettingsPath(folder)
	if !exists(settingsPath) {
		if err := storage.SaveSettings(storage.DefaultSettings(), settingsPath); err != nil {
			return created, err
		}
		created = true
	}

	envPath := storage.GetEnvironmentsPath(folder)
	if !exists(envPath) {
		if err := storage.SaveConfig(environment.NewConfig(), envPath); err != nil {
			return created, err
		}
		created = true
	}

	return created, nil
}

// WorkspacePath returns the .weburl folder under dir.
func WorkspacePath(dir string) string {
	return filepath.Join(dir, WorkspaceFolderName)
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
