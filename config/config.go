// Package config loads and validates the per-project manifest (emberc.toml),
// grounded on depm.LoadModule's TOML-unmarshal-then-validate shape.
package config

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml"

	"emberc/report"
	"emberc/util"
)

// validLogLevels are the log-level names accepted in a manifest's
// log-level field.
var validLogLevels = []string{"silent", "error", "warn", "verbose"}

// ManifestFileName is the fixed name of a project's manifest file, sitting
// at the root of its module directory.
const ManifestFileName = "emberc.toml"

// EmberVersion is the compiler's own version, compared against a project's
// declared ember-version to produce a compatibility warning.
const EmberVersion = "0.1.0"

// tomlManifest mirrors the manifest's on-disk TOML shape.
type tomlManifest struct {
	Name         string `toml:"name"`
	EmberVersion string `toml:"ember-version"`
	Entry        string `toml:"entry"`
	Output       string `toml:"output"`
	LogLevel     string `toml:"log-level"`
}

// Manifest is a validated project manifest.
type Manifest struct {
	AbsPath  string // the directory containing the manifest file
	Name     string
	Entry    string // path to the entry source file, relative to AbsPath
	Output   string // path to the build output, relative to AbsPath
	LogLevel string
}

// Load reads and validates the manifest file in the module directory at
// absPath.
func Load(absPath string) (*Manifest, error) {
	f, err := os.Open(filepath.Join(absPath, ManifestFileName))
	if err != nil {
		return nil, fmt.Errorf("unable to open manifest at %q: %w", absPath, err)
	}
	defer f.Close()

	buf, err := ioutil.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("error reading manifest at %q: %w", absPath, err)
	}

	tm := &tomlManifest{}
	if err := toml.Unmarshal(buf, tm); err != nil {
		return nil, fmt.Errorf("error parsing manifest at %q: %w", absPath, err)
	}

	mod := &Manifest{AbsPath: absPath}
	if err := validate(mod, tm); err != nil {
		return nil, err
	}
	return mod, nil
}

func validate(mod *Manifest, tm *tomlManifest) error {
	if tm.Name == "" {
		return fmt.Errorf("manifest at %q is missing a project name", mod.AbsPath)
	}
	if !isValidIdentifier(tm.Name) {
		return fmt.Errorf("project name %q must be a valid identifier", tm.Name)
	}

	if tm.EmberVersion != "" && tm.EmberVersion != EmberVersion {
		report.Warn(nil, "project %q declares ember-version %s, compiler is %s", tm.Name, tm.EmberVersion, EmberVersion)
	}

	entry := tm.Entry
	if entry == "" {
		entry = "main.mbr"
	}
	output := tm.Output
	if output == "" {
		output = tm.Name
	}
	logLevel := tm.LogLevel
	if logLevel == "" {
		logLevel = "verbose"
	} else if !util.Contains(validLogLevels, logLevel) {
		return fmt.Errorf("manifest at %q has unrecognized log-level %q", mod.AbsPath, logLevel)
	}

	mod.Name = tm.Name
	mod.Entry = entry
	mod.Output = output
	mod.LogLevel = logLevel
	return nil
}

func isValidIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, c := range s {
		switch {
		case c == '_' || c == '-':
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}

// Init writes a fresh manifest to the module directory at absPath, failing
// if one already exists there.
func Init(name, absPath string) error {
	path := filepath.Join(absPath, ManifestFileName)
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("manifest already exists at %q", path)
	}

	tm := tomlManifest{Name: name, EmberVersion: EmberVersion, Entry: "main.mbr", Output: name, LogLevel: "verbose"}
	buf, err := toml.Marshal(tm)
	if err != nil {
		return fmt.Errorf("error encoding manifest: %w", err)
	}
	return ioutil.WriteFile(path, buf, 0644)
}
