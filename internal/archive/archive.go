// Package archive creates timestamped backups of the notebook data file
// before destructive operations like reset or import.
package archive

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// ArchiveDataFile copies the data file into a backups directory next to
// it, named with a timestamp. The live file is left in place. Returns
// the path of the backup.
func ArchiveDataFile(dataFile string) (string, error) {
	// Check if the data file exists
	if _, err := os.Stat(dataFile); os.IsNotExist(err) {
		return "", fmt.Errorf("data file does not exist: %s", dataFile)
	}

	// Get parent directory and create backup path
	parentDir := filepath.Dir(dataFile)
	backupDir := filepath.Join(parentDir, "backups")

	// Create backup directory if it doesn't exist
	if err := os.MkdirAll(backupDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	// Generate timestamp
	timestamp := time.Now().Format("20060102-150405")
	backupName := fmt.Sprintf("appdata-%s.json", timestamp)
	backupPath := filepath.Join(backupDir, backupName)

	// Check if backup already exists (unlikely but possible)
	if _, err := os.Stat(backupPath); err == nil {
		// Add microseconds to make it unique
		timestamp = time.Now().Format("20060102-150405.000000")
		backupName = fmt.Sprintf("appdata-%s.json", timestamp)
		backupPath = filepath.Join(backupDir, backupName)
	}

	if err := copyFile(dataFile, backupPath); err != nil {
		return "", fmt.Errorf("failed to back up data file: %w", err)
	}

	fmt.Printf("Data file backed up to: %s\n", backupPath)
	return backupPath, nil
}

func copyFile(src, dst string) error {
	srcFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer srcFile.Close()

	dstFile, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer dstFile.Close()

	if _, err := io.Copy(dstFile, srcFile); err != nil {
		return err
	}
	return dstFile.Chmod(0600)
}
