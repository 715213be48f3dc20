package scenario

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// ScenesDir is the default directory scene files are written to and
// discovered in.
const ScenesDir = "scenes"

// GenerateScenePath creates a timestamped scene filename.
func GenerateScenePath() string {
	timestamp := time.Now().Format("2006-01-02_15-04-05")
	return filepath.Join(ScenesDir, fmt.Sprintf("scene_%s.yaml", timestamp))
}

// FindLatestScene finds the most recent scene file in the scenes directory.
func FindLatestScene(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("failed to read scenes directory: %w", err)
	}

	var scenes []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".yaml") {
			scenes = append(scenes, filepath.Join(dir, entry.Name()))
		}
	}

	if len(scenes) == 0 {
		return "", fmt.Errorf("no scene files found in %s", dir)
	}

	// Sort by modification time (newest first)
	sort.Slice(scenes, func(i, j int) bool {
		infoI, _ := os.Stat(scenes[i])
		infoJ, _ := os.Stat(scenes[j])
		return infoI.ModTime().After(infoJ.ModTime())
	})

	return scenes[0], nil
}
