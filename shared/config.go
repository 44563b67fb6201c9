package shared

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/magiconair/properties"

	"filepickers-sample/choices"
)

// Keys read from env.properties.
const (
	KeyBackend              = "PICKER_BACKEND"
	KeyCommitButtonText     = "COMMIT_BUTTON_TEXT"
	KeyFileTypeFilter       = "FILE_TYPE_FILTER"
	KeyOpenChoices          = "OPEN_CHOICES"
	KeySaveChoices          = "SAVE_CHOICES"
	KeyChoicesFile          = "CHOICES_FILE"
	KeySuggestedFileName    = "SUGGESTED_FILE_NAME"
	KeyDefaultFileExtension = "DEFAULT_FILE_EXTENSION"
	KeySuggestedFolder      = "SUGGESTED_FOLDER"
	KeySuggestedStartFolder = "SUGGESTED_START_FOLDER"
)

// ConfigEnvVar overrides the location of env.properties.
const ConfigEnvVar = "FILEPICKERS_CONFIG"

const (
	defaultCommitButtonText = "Pick"
	defaultFileTypeFilter   = ".txt, .png, .jpg"
	defaultChoices          = `{"Images": ["*.png", "*.jpg"], "Text": ["*.txt", "*.md"], "All files": ["*"]}`
	defaultSaveChoices      = `{"Text": ["*.txt"], "Markdown": ["*.md"]}`
	defaultFileName         = "untitled"
	defaultFileExtension    = ".txt"
)

// Config wraps the loaded properties. A nil *Config answers with defaults.
type Config struct {
	props *properties.Properties
	path  string
}

// GetInstallDir returns the per-user directory for config and lock files.
func GetInstallDir() string {
	switch GetGoos() {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "filepickers-sample")
	case "darwin":
		return filepath.Join(os.Getenv("HOME"), "Library", "Application Support", "filepickers-sample")
	case "linux":
		return filepath.Join(os.Getenv("HOME"), ".local", "share", "filepickers-sample")
	default:
		return "./filepickers-sample"
	}
}

// ConfigPath returns where env.properties is read from.
func ConfigPath() string {
	if p := strings.TrimSpace(os.Getenv(ConfigEnvVar)); p != "" {
		return p
	}
	return filepath.Join(GetInstallDir(), "env.properties")
}

// LoadConfig reads the properties at path. A missing file is not an error:
// every getter falls back to its default. Nothing is written back.
func LoadConfig(path string) (*Config, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		log.Printf("No configuration at %s, using defaults", path)
		return &Config{props: properties.NewProperties(), path: path}, nil
	}
	props, err := properties.LoadFile(path, properties.UTF8)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}

	log.Printf("Loaded properties from %s:", path)
	for _, key := range props.Keys() {
		value, _ := props.Get(key)
		log.Printf("  %s = %s", key, value)
	}
	return &Config{props: props, path: path}, nil
}

// Path returns the file the config was loaded from.
func (c *Config) Path() string {
	if c == nil {
		return ""
	}
	return c.path
}

func (c *Config) get(key, def string) string {
	if c == nil || c.props == nil {
		return def
	}
	v, ok := c.props.Get(key)
	if !ok {
		return def
	}
	return v
}

// Backend returns the configured picker backend, or def.
func (c *Config) Backend(def string) string {
	return c.get(KeyBackend, def)
}

// CommitButtonText returns the initial commit button label.
func (c *Config) CommitButtonText() string {
	return c.get(KeyCommitButtonText, defaultCommitButtonText)
}

// FileTypeFilter returns the initial comma separated filter.
func (c *Config) FileTypeFilter() string {
	return c.get(KeyFileTypeFilter, defaultFileTypeFilter)
}

// SuggestedFileName returns the initial save file name.
func (c *Config) SuggestedFileName() string {
	return c.get(KeySuggestedFileName, defaultFileName)
}

// DefaultFileExtension returns the initial default extension for saves.
func (c *Config) DefaultFileExtension() string {
	return c.get(KeyDefaultFileExtension, defaultFileExtension)
}

// SuggestedFolder returns the initial suggested folder.
func (c *Config) SuggestedFolder() string {
	return c.get(KeySuggestedFolder, "")
}

// SuggestedStartFolder returns the initial suggested start folder.
func (c *Config) SuggestedStartFolder() string {
	return c.get(KeySuggestedStartFolder, "")
}

// OpenChoices returns the initial JSON for the open picker choices.
// CHOICES_FILE, when set, takes precedence over OPEN_CHOICES.
func (c *Config) OpenChoices() (string, error) {
	return c.choicesText(KeyOpenChoices, defaultChoices)
}

// SaveChoices returns the initial JSON for the save picker choices.
// CHOICES_FILE, when set, takes precedence over SAVE_CHOICES.
func (c *Config) SaveChoices() (string, error) {
	return c.choicesText(KeySaveChoices, defaultSaveChoices)
}

func (c *Config) choicesText(key, def string) (string, error) {
	file := strings.TrimSpace(c.get(KeyChoicesFile, ""))
	if file == "" {
		return c.get(key, def), nil
	}
	if !filepath.IsAbs(file) && c.Path() != "" {
		file = filepath.Join(filepath.Dir(c.Path()), file)
	}
	set, err := choices.LoadFile(file)
	if err != nil {
		return def, fmt.Errorf("%s: %w", KeyChoicesFile, err)
	}
	data, err := set.MarshalJSON()
	if err != nil {
		return def, err
	}
	return string(data), nil
}
