// Package iofs prepares directories and files cc0photos needs before
// the pipeline starts.
// This is an impure I/O package.
package iofs

import (
	"bytes"
	"os"

	"github.com/gnames/cc0photos/pkg/config"
	"gopkg.in/yaml.v3"
)

const configHeader = `# cc0photos configuration.
#
# Values can be overridden by CC0PHOTOS_* environment variables
# (for example CC0PHOTOS_CHUNK_SIZE) and by command line flags.
# Relative paths are resolved from the working directory.

`

// EnsureDirs creates configuration and log directories in homeDir.
func EnsureDirs(homeDir string) error {
	dirs := []string{
		config.ConfigDir(homeDir),
		config.LogDir(homeDir),
	}
	for _, v := range dirs {
		if err := touchDir(v); err != nil {
			return err
		}
	}
	return nil
}

// EnsureOutputDir creates the directory for generated CSV files.
func EnsureOutputDir(dir string) error {
	return touchDir(dir)
}

func touchDir(dir string) error {
	info, err := os.Stat(dir)
	if err == nil && info.IsDir() {
		return nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return CreateDirError(dir, err)
	}

	return nil
}

// DefaultConfigYAML renders default settings as a config.yaml document.
func DefaultConfigYAML() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(configHeader)

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(config.New()); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// EnsureConfigFile writes config.yaml with default settings unless
// the file already exists.
func EnsureConfigFile(homeDir string) error {
	configPath := config.ConfigFilePath(homeDir)

	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	bs, err := DefaultConfigYAML()
	if err != nil {
		return CopyFileError(configPath, err)
	}

	if err := os.WriteFile(configPath, bs, 0644); err != nil {
		return CopyFileError(configPath, err)
	}

	return nil
}
