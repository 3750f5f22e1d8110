package config

import "fmt"

// Error is a configuration error with section/option context.
type Error struct {
	Section string
	Option  string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Option != "" {
		return fmt.Sprintf("option '%s' in section '%s': %s", e.Option, e.Section, e.Message)
	}
	if e.Section != "" {
		return fmt.Sprintf("section '%s': %s", e.Section, e.Message)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// ErrMissingSection returns an error for a missing section.
func ErrMissingSection(section string) *Error {
	return &Error{Section: section, Message: "section not found"}
}

// ErrMissingOption returns an error for a required but missing option.
func ErrMissingOption(section, option string) *Error {
	return &Error{Section: section, Option: option, Message: "must be specified"}
}

// ErrInvalidValue returns an error for a malformed option value.
func ErrInvalidValue(section, option, value, expected string) *Error {
	return &Error{
		Section: section,
		Option:  option,
		Message: fmt.Sprintf("invalid value '%s', expected %s", value, expected),
	}
}
