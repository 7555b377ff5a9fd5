package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// ErrConfigExists is returned by WriteDefault when the target file exists.
var ErrConfigExists = errors.New("config file already exists")

const fileHeader = "# dumbhint configuration. `dumbhint config schema` prints the JSON schema.\n\n"

var sectionHeader = regexp.MustCompile(`^\s*\[([^\]]+)\]\s*$`)

// WriteConfigOrdered writes cfg as TOML with sections sorted by name, so
// repeated writes of the same config produce the same file.
func WriteConfigOrdered(cfg *Config, path string) error {
	data, err := Marshal(cfg)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, data, filePerm); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// WriteDefault writes the default configuration to path. An existing file is
// left untouched unless force is set.
func WriteDefault(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%w: %s", ErrConfigExists, path)
		}
	}
	return WriteConfigOrdered(DefaultConfig(), path)
}

// Marshal encodes cfg the way WriteConfigOrdered writes it.
func Marshal(cfg *Config) ([]byte, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}

	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(cfg); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return []byte(fileHeader + sortSections(buf.String())), nil
}

// sortSections reorders TOML tables alphabetically, keeping top-level keys first.
func sortSections(content string) string {
	type section struct {
		name  string
		lines []string
	}

	var preamble []string
	var sections []section
	for _, line := range strings.Split(content, "\n") {
		if m := sectionHeader.FindStringSubmatch(line); m != nil {
			sections = append(sections, section{name: m[1], lines: []string{line}})
			continue
		}
		if len(sections) == 0 {
			preamble = append(preamble, line)
			continue
		}
		last := &sections[len(sections)-1]
		last.lines = append(last.lines, line)
	}

	sort.SliceStable(sections, func(i, j int) bool { return sections[i].name < sections[j].name })

	var out strings.Builder
	writeBlock := func(lines []string) {
		block := strings.TrimRight(strings.Join(lines, "\n"), "\n ")
		if block == "" {
			return
		}
		if out.Len() > 0 {
			out.WriteString("\n\n")
		}
		out.WriteString(block)
	}
	writeBlock(preamble)
	for _, s := range sections {
		writeBlock(s.lines)
	}
	if out.Len() == 0 {
		return ""
	}
	return out.String() + "\n"
}
