// Package project reads PlatformIO project configuration.
package project

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

// IniFile is the project manifest read from the project root.
const IniFile = "platformio.ini"

// Section holds the options of one ini section. Multi-line options
// keep one entry per line, in file order.
type Section map[string][]string

// Config is a parsed platformio.ini.
type Config struct {
	Sections map[string]Section
}

// Parse reads a platformio.ini from file, or from data when non-nil.
func Parse(file string, data []byte) (*Config, error) {
	var reader io.Reader
	if data != nil {
		reader = bytes.NewReader(data)
	} else {
		f, err := os.Open(file)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		reader = f
	}

	cfg := &Config{Sections: make(map[string]Section)}
	var (
		section Section
		lastKey string
		lineno  int
	)

	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		lineno++
		raw := scanner.Text()
		line := strings.TrimSpace(raw)
		if line == "" || line[0] == ';' || line[0] == '#' {
			continue
		}

		// Indented lines continue the previous option (PlatformIO's
		// multi-line value syntax, used by build_flags, lib_deps, ...).
		if raw[0] == ' ' || raw[0] == '\t' {
			if section == nil || lastKey == "" {
				return nil, fmt.Errorf("%s:%d: continuation line outside an option", file, lineno)
			}
			section[lastKey] = append(section[lastKey], line)
			continue
		}

		if line[0] == '[' {
			if line[len(line)-1] != ']' {
				return nil, fmt.Errorf("%s:%d: malformed section header %q", file, lineno, line)
			}
			name := strings.TrimSpace(line[1 : len(line)-1])
			if name == "" {
				return nil, fmt.Errorf("%s:%d: empty section header", file, lineno)
			}
			if _, ok := cfg.Sections[name]; !ok {
				cfg.Sections[name] = make(Section)
			}
			section = cfg.Sections[name]
			lastKey = ""
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			return nil, fmt.Errorf("%s:%d: expected key = value, got %q", file, lineno, line)
		}
		if section == nil {
			return nil, fmt.Errorf("%s:%d: option outside a section", file, lineno)
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		lastKey = key
		if value == "" {
			// Values start on the following indented lines.
			section[key] = nil
			continue
		}
		section[key] = append(section[key], value)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Get returns the joined value of an option, lines separated by a
// single space.
func (c *Config) Get(section, key string) (string, bool) {
	s, ok := c.Sections[section]
	if !ok {
		return "", false
	}
	v, ok := s[key]
	if !ok {
		return "", false
	}
	return strings.Join(v, " "), true
}

// EnvNames returns all configured environment names, sorted.
func (c *Config) EnvNames() []string {
	var names []string
	for name := range c.Sections {
		if env, ok := strings.CutPrefix(name, "env:"); ok {
			names = append(names, env)
		}
	}
	sort.Strings(names)
	return names
}

// DefaultEnvs returns [platformio] default_envs, or all environments
// when unset.
func (c *Config) DefaultEnvs() []string {
	v, ok := c.Get("platformio", "default_envs")
	if !ok {
		return c.EnvNames()
	}
	return splitList(v)
}

// envSection returns the merged view of [env] and [env:<name>], with
// the named section taking precedence.
func (c *Config) envSection(name string) Section {
	merged := make(Section)
	for k, v := range c.Sections["env"] {
		merged[k] = v
	}
	for k, v := range c.Sections["env:"+name] {
		merged[k] = v
	}
	return merged
}

// BuildFlags returns the build_flags of an environment, one flag per
// element.
func (c *Config) BuildFlags(env string) []string {
	var flags []string
	for _, line := range c.envSection(env)["build_flags"] {
		flags = append(flags, strings.Fields(line)...)
	}
	return flags
}

// ExtraScripts returns the extra_scripts of an environment, with any
// pre:/post: phase prefix preserved.
func (c *Config) ExtraScripts(env string) []string {
	var scripts []string
	for _, line := range c.envSection(env)["extra_scripts"] {
		scripts = append(scripts, splitList(line)...)
	}
	return scripts
}

// SrcDir returns [platformio] src_dir, defaulting to "src".
func (c *Config) SrcDir() string {
	if v, ok := c.Get("platformio", "src_dir"); ok {
		return v
	}
	return "src"
}

// IncludeDir returns [platformio] include_dir, defaulting to "include".
func (c *Config) IncludeDir() string {
	if v, ok := c.Get("platformio", "include_dir"); ok {
		return v
	}
	return "include"
}

// splitList splits a PlatformIO list value on commas and whitespace.
func splitList(s string) []string {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	out := fields[:0]
	for _, f := range fields {
		if f != "" {
			out = append(out, f)
		}
	}
	return out
}
