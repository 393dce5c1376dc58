// Package skins loads user style overrides from ~/.tavern/skins.
//
// A skin is either a raw stylesheet (*.css) or a JSON manifest
// (*.tavern-skin) with a required "css" string and an optional "name".
package skins

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/goccy/go-json"
)

const (
	extCSS      = "css"
	extManifest = "tavern-skin"
)

var (
	ErrMalformedSkin = errors.New("malformed skin")
	ErrInvalidUTF8   = errors.New("skin file is not valid UTF-8")
)

// MalformedSkinError reports a manifest without a usable css field.
type MalformedSkinError struct {
	Path string
}

func (e *MalformedSkinError) Error() string {
	return fmt.Sprintf("skin manifest missing css field: %s", e.Path)
}

func (e *MalformedSkinError) Is(target error) bool {
	return target == ErrMalformedSkin
}

type Entry struct {
	Name string `json:"name"`
	CSS  string `json:"css"`
}

// Dir returns the per-user skins directory. ok is false when no home
// directory can be determined.
func Dir() (dir string, ok bool) {
	home := os.Getenv("HOME")
	if home == "" {
		home = os.Getenv("USERPROFILE")
	}
	if home == "" {
		return "", false
	}
	return filepath.Join(home, ".tavern", "skins"), true
}

// List reads every skin directly inside dir. A missing directory yields no
// skins. Any read or parse failure aborts the listing.
func List(dir string) ([]Entry, error) {
	if dir == "" {
		return []Entry{}, nil
	}
	if _, err := os.Stat(dir); errors.Is(err, os.ErrNotExist) {
		return []Entry{}, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	skins := []Entry{}
	for _, e := range entries {
		path := filepath.Join(dir, e.Name())
		ext := extension(e.Name())
		if ext != extCSS && ext != extManifest {
			continue
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if !utf8.Valid(content) {
			return nil, fmt.Errorf("reading %s: %w", path, ErrInvalidUTF8)
		}

		if ext == extCSS {
			skins = append(skins, Entry{Name: e.Name(), CSS: string(content)})
			continue
		}

		entry, err := parseManifest(path, e.Name(), content)
		if err != nil {
			return nil, err
		}
		skins = append(skins, entry)
	}
	return skins, nil
}

func parseManifest(path, fileName string, content []byte) (Entry, error) {
	var doc any
	if err := json.Unmarshal(content, &doc); err != nil {
		return Entry{}, fmt.Errorf("parsing %s: %w", path, err)
	}

	// Non-object documents and non-string fields count as absent.
	fields, _ := doc.(map[string]any)
	css, ok := fields["css"].(string)
	if !ok {
		return Entry{}, &MalformedSkinError{Path: path}
	}
	name := fileName
	if n, ok := fields["name"].(string); ok {
		name = n
	}
	return Entry{Name: name, CSS: css}, nil
}

// extension returns the text after the last dot, or "" for names without
// one (and for dotfiles like ".css").
func extension(name string) string {
	ext := filepath.Ext(name)
	if ext == "" || ext == name {
		return ""
	}
	return ext[1:]
}
