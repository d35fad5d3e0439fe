package export

import (
	"fmt"
	"os"
	"path/filepath"

	"cin7export/internal/logger"
)

// Environment keys a downstream workflow step reads the report location
// from.
const (
	envFileKey     = "ENV_CUSTOM_DATE_FILE"
	envFileNameKey = "ENV_CUSTOM_DATE_FILE_NAME"
)

// PublishToGithubEnv appends the report's absolute path and base name to the
// GITHUB_ENV key/value file for the next workflow step. An unset GITHUB_ENV
// means the run is outside CI; that is a warning, not a failure.
func PublishToGithubEnv(outputPath string) error {
	const op = "PublishToGithubEnv"

	log := logger.WithComponent("github-env")

	envPath := os.Getenv("GITHUB_ENV")
	if envPath == "" {
		log.Warn().Msg("GITHUB_ENV not set; report path not exported to workflow")
		return nil
	}

	absPath, err := filepath.Abs(outputPath)
	if err != nil {
		return fmt.Errorf("%s: failed to resolve output path: %w", op, err)
	}

	envFile, err := os.OpenFile(envPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("%s: failed to open GITHUB_ENV file: %w", op, err)
	}
	defer envFile.Close()

	_, err = fmt.Fprintf(envFile, "%s=%s\n%s=%s\n",
		envFileKey, absPath,
		envFileNameKey, filepath.Base(absPath))
	if err != nil {
		return fmt.Errorf("%s: failed to write GITHUB_ENV file: %w", op, err)
	}

	log.Info().
		Str(envFileKey, absPath).
		Str(envFileNameKey, filepath.Base(absPath)).
		Msg("Report location exported to workflow environment")

	return nil
}
