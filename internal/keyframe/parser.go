package keyframe

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LibraryFile is the root structure of a clip library YAML file.
// A library maps opaque numeric clip identifiers to clip definitions.
type LibraryFile struct {
	// Version is the library format version, currently "1"
	Version string `yaml:"version"`

	// Clips maps a numeric clip identifier to its definition.
	// Identifiers are assigned by the content pipeline and have no
	// meaning beyond lookup.
	Clips map[int]ClipDef `yaml:"clips"`
}

// ClipDef is a single clip entry in a library file.
type ClipDef struct {
	// Name is the clip name used for registration and lookup,
	// e.g. "walk", "idle"
	Name string `yaml:"name"`

	// Keyframes is the ordered keyframe sequence of the clip's track
	Keyframes []Keyframe `yaml:"keyframes"`
}

// ParseLibrary parses clip library data and validates every entry.
//
// Returns an error if the YAML is malformed, a clip has an empty name,
// or a clip's track violates the track invariants (empty or unsorted).
func ParseLibrary(data []byte) (*LibraryFile, error) {
	var lib LibraryFile
	if err := yaml.Unmarshal(data, &lib); err != nil {
		return nil, fmt.Errorf("failed to parse clip library: %w", err)
	}

	for id, def := range lib.Clips {
		if def.Name == "" {
			return nil, fmt.Errorf("clip %d has no name", id)
		}
		track := Track{Keyframes: def.Keyframes}
		if err := track.Validate(); err != nil {
			return nil, fmt.Errorf("clip %d (%s): %w", id, def.Name, err)
		}
	}

	return &lib, nil
}

// ParseLibraryFile reads and parses a clip library YAML file.
//
// Example:
//
//	lib, err := keyframe.ParseLibraryFile("assets/clips/library.yaml")
//	if err != nil {
//	    log.Fatalf("Failed to load clip library: %v", err)
//	}
func ParseLibraryFile(path string) (*LibraryFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read clip library '%s': %w", path, err)
	}
	return ParseLibrary(data)
}

// BuildTrack builds the Track for a clip definition.
// The returned track references the definition's keyframe slice directly;
// callers must treat it as immutable.
func (d ClipDef) BuildTrack() *Track {
	return &Track{Keyframes: d.Keyframes}
}
