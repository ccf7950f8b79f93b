package platform

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestCreateDirectoryIfNotExists(t *testing.T) {
	// Create temporary directory for testing
	tempDir := t.TempDir()
	testDir := filepath.Join(tempDir, "nested", "data")

	if _, err := os.Stat(testDir); !os.IsNotExist(err) {
		t.Fatalf("Test directory already exists: %s", testDir)
	}

	if err := CreateDirectoryIfNotExists(testDir); err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}

	if _, err := os.Stat(testDir); os.IsNotExist(err) {
		t.Fatalf("Directory was not created: %s", testDir)
	}

	// Second call should not fail
	if err := CreateDirectoryIfNotExists(testDir); err != nil {
		t.Fatalf("Failed to handle existing directory: %v", err)
	}
}

func TestCreateDirectoryIfNotExists_EmptyPath(t *testing.T) {
	if err := CreateDirectoryIfNotExists(" "); err == nil {
		t.Error("Expected error for empty path")
	}
}

func TestGetAppDataDir(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	dir, err := GetAppDataDir()
	if err != nil {
		t.Fatalf("Failed to get app data directory: %v", err)
	}
	if filepath.Base(dir) != AppDirName {
		t.Errorf("Expected directory to end with '%s', got: %s", AppDirName, dir)
	}
}

func TestDefaultDatabasePath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	path, err := DefaultDatabasePath()
	if err != nil {
		t.Fatalf("Failed to get database path: %v", err)
	}
	if filepath.Base(path) != DatabaseFileName {
		t.Errorf("Expected '%s', got: %s", DatabaseFileName, path)
	}
	if _, err := os.Stat(filepath.Dir(path)); err != nil {
		t.Errorf("Expected data directory to exist: %v", err)
	}
}

func TestOpenFolder_NonExistent(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing")

	if err := OpenFolder(missing); err == nil {
		t.Error("Expected error for non-existent folder")
	}
}

func TestIsAndroid_EnvMarker(t *testing.T) {
	t.Setenv("ANDROID_DATA", "/data")

	if !IsAndroid() {
		t.Error("Expected ANDROID_DATA to mark an Android runtime")
	}
}

func TestOpenFolder_Android(t *testing.T) {
	t.Setenv("ANDROID_ROOT", "/system")

	if err := OpenFolder(t.TempDir()); !errors.Is(err, ErrNoFileManager) {
		t.Errorf("Expected ErrNoFileManager on Android, got: %v", err)
	}
}
