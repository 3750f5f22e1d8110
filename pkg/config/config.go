// Package config parses INI-style machine settings files and provides
// typed option access with defaults and access tracking, so unknown or
// misspelled options can be reported back to the operator.
package config

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Config holds the sections of a parsed settings file.
type Config struct {
	sections map[string]*Section
	order    []string
}

// New creates an empty Config.
func New() *Config {
	return &Config{sections: make(map[string]*Section)}
}

// Load reads a settings file.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: unable to open %s: %w", path, err)
	}
	defer f.Close()

	c := New()
	if err := c.parse(bufio.NewScanner(f)); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return c, nil
}

// LoadString parses settings from a string.
func LoadString(data string) (*Config, error) {
	c := New()
	if err := c.parse(bufio.NewScanner(strings.NewReader(data))); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) parse(scanner *bufio.Scanner) error {
	var current *Section
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if idx := strings.IndexAny(line, "#;"); idx >= 0 {
			line = strings.TrimSpace(line[:idx])
			if line == "" {
				continue
			}
		}

		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			name := strings.TrimSpace(line[1 : len(line)-1])
			if name == "" {
				return fmt.Errorf("empty section header at line %d", lineNum)
			}
			current = c.section(name)
			continue
		}

		// Options before the first section header are silently skipped,
		// same as the rest of the malformed-line policy below.
		if current == nil {
			continue
		}

		kv := strings.SplitN(line, ":", 2)
		if len(kv) != 2 {
			kv = strings.SplitN(line, "=", 2)
		}
		if len(kv) != 2 {
			continue
		}
		key := strings.TrimSpace(kv[0])
		if key == "" {
			continue
		}
		current.set(key, strings.TrimSpace(kv[1]))
	}
	return scanner.Err()
}

// section returns the named section, creating it if needed. Re-opened
// sections merge into the existing one.
func (c *Config) section(name string) *Section {
	if sec, ok := c.sections[name]; ok {
		return sec
	}
	sec := newSection(name)
	c.sections[name] = sec
	c.order = append(c.order, name)
	return sec
}

// GetSection returns a section by name, or an error if absent.
func (c *Config) GetSection(name string) (*Section, error) {
	sec, ok := c.sections[name]
	if !ok {
		return nil, ErrMissingSection(name)
	}
	return sec, nil
}

// GetSectionOptional returns a section by name, or nil if absent.
func (c *Config) GetSectionOptional(name string) *Section {
	return c.sections[name]
}

// HasSection checks whether a section exists.
func (c *Config) HasSection(name string) bool {
	_, ok := c.sections[name]
	return ok
}

// SectionNames returns the section names in file order.
func (c *Config) SectionNames() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// UnusedOptions reports every "[section] option" that was present in the
// file but never read. Useful for flagging typos after settings are built.
func (c *Config) UnusedOptions() []string {
	var out []string
	for _, name := range c.order {
		for _, opt := range c.sections[name].UnusedOptions() {
			out = append(out, fmt.Sprintf("[%s] %s", name, opt))
		}
	}
	return out
}
