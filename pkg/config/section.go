package config

import (
	"sort"
	"strconv"
	"strings"
)

// Section provides typed access to one settings section. Getters take a
// variadic fallback so callers can make any option optional; a getter
// without a fallback reports a missing-option error instead.
type Section struct {
	name     string
	options  map[string]string
	order    []string
	accessed map[string]struct{}
}

func newSection(name string) *Section {
	return &Section{
		name:     name,
		options:  make(map[string]string),
		accessed: make(map[string]struct{}),
	}
}

// Name returns the section name.
func (s *Section) Name() string {
	return s.name
}

func (s *Section) set(key, value string) {
	k := strings.ToLower(key)
	if _, ok := s.options[k]; !ok {
		s.order = append(s.order, k)
	}
	s.options[k] = value
}

// HasOption checks whether an option is present.
func (s *Section) HasOption(option string) bool {
	_, ok := s.options[strings.ToLower(option)]
	return ok
}

// Options returns the option names in file order.
func (s *Section) Options() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// UnusedOptions returns the options that were never read, sorted.
func (s *Section) UnusedOptions() []string {
	var out []string
	for _, opt := range s.order {
		if _, ok := s.accessed[opt]; !ok {
			out = append(out, opt)
		}
	}
	sort.Strings(out)
	return out
}

func (s *Section) lookup(option string) (string, bool) {
	k := strings.ToLower(option)
	s.accessed[k] = struct{}{}
	v, ok := s.options[k]
	return v, ok
}

// Get returns a string option.
func (s *Section) Get(option string, fallback ...string) (string, error) {
	if v, ok := s.lookup(option); ok {
		return v, nil
	}
	if len(fallback) > 0 {
		return fallback[0], nil
	}
	return "", ErrMissingOption(s.name, option)
}

// GetFloat returns a float option.
func (s *Section) GetFloat(option string, fallback ...float64) (float64, error) {
	if v, ok := s.lookup(option); ok {
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, ErrInvalidValue(s.name, option, v, "number")
		}
		return f, nil
	}
	if len(fallback) > 0 {
		return fallback[0], nil
	}
	return 0, ErrMissingOption(s.name, option)
}

// GetInt returns an integer option.
func (s *Section) GetInt(option string, fallback ...int) (int, error) {
	if v, ok := s.lookup(option); ok {
		i, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, ErrInvalidValue(s.name, option, v, "integer")
		}
		return i, nil
	}
	if len(fallback) > 0 {
		return fallback[0], nil
	}
	return 0, ErrMissingOption(s.name, option)
}

// GetBool returns a boolean option. Accepts true/false, yes/no, on/off, 1/0.
func (s *Section) GetBool(option string, fallback ...bool) (bool, error) {
	if v, ok := s.lookup(option); ok {
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "true", "yes", "on", "1":
			return true, nil
		case "false", "no", "off", "0":
			return false, nil
		}
		return false, ErrInvalidValue(s.name, option, v, "boolean")
	}
	if len(fallback) > 0 {
		return fallback[0], nil
	}
	return false, ErrMissingOption(s.name, option)
}

// FloatMap reads every option of the section as a float table, keyed by the
// uppercased option name in file order. Used for the numbered-side lookup
// table, where the option names themselves are data ("Y10: 10.0").
func (s *Section) FloatMap() (map[string]float64, error) {
	out := make(map[string]float64, len(s.order))
	for _, key := range s.order {
		f, err := s.GetFloat(key)
		if err != nil {
			return nil, err
		}
		out[strings.ToUpper(key)] = f
	}
	return out, nil
}
