package profile

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Decode reads the profile-builder hand-off: a JSON array of profile
// objects whose "sections" member maps side labels to hole X positions.
//
// encoding/json maps would lose the side order the builder produced, so the
// sections object is walked token by token and its key order is kept.
// Non-numeric hole entries are skipped (numeric strings are accepted);
// unknown members are ignored.
func Decode(r io.Reader) ([]Spec, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	if err := expectDelim(dec, '['); err != nil {
		return nil, fmt.Errorf("profiles: %w", err)
	}
	var specs []Spec
	for dec.More() {
		sp, err := decodeSpec(dec)
		if err != nil {
			return nil, fmt.Errorf("profiles: entry %d: %w", len(specs), err)
		}
		specs = append(specs, sp)
	}
	if err := expectDelim(dec, ']'); err != nil {
		return nil, fmt.Errorf("profiles: %w", err)
	}
	return specs, nil
}

func decodeSpec(dec *json.Decoder) (Spec, error) {
	var sp Spec
	if err := expectDelim(dec, '{'); err != nil {
		return sp, err
	}
	for dec.More() {
		key, err := stringToken(dec)
		if err != nil {
			return sp, err
		}
		switch strings.ToLower(key) {
		case "name":
			sp.Name, err = stringValue(dec)
		case "type", "ptype":
			sp.Type, err = stringValue(dec)
		case "length_mm":
			sp.LengthMM, err = floatValue(dec)
		case "tool_diam":
			sp.ToolDiam, err = floatValue(dec)
		case "sections":
			err = decodeSections(dec, &sp)
		default:
			err = skipValue(dec)
		}
		if err != nil {
			return sp, fmt.Errorf("member %q: %w", key, err)
		}
	}
	return sp, expectDelim(dec, '}')
}

func decodeSections(dec *json.Decoder, sp *Spec) error {
	if err := expectDelim(dec, '{'); err != nil {
		return err
	}
	for dec.More() {
		side, err := stringToken(dec)
		if err != nil {
			return err
		}
		if err := expectDelim(dec, '['); err != nil {
			return fmt.Errorf("side %q: %w", side, err)
		}
		holes := []float64{}
		for dec.More() {
			tok, err := dec.Token()
			if err != nil {
				return err
			}
			if x, ok := asFloat(tok); ok {
				holes = append(holes, x)
				continue
			}
			// Malformed hole value: drop just this entry.
			if d, ok := tok.(json.Delim); ok && (d == '{' || d == '[') {
				if err := skipCompound(dec, d); err != nil {
					return err
				}
			}
		}
		if err := expectDelim(dec, ']'); err != nil {
			return err
		}
		sp.AddHoles(side, holes...)
	}
	return expectDelim(dec, '}')
}

func asFloat(tok json.Token) (float64, bool) {
	switch v := tok.(type) {
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return f, err == nil
	}
	return 0, false
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != want {
		return fmt.Errorf("expected %q, got %v", want.String(), tok)
	}
	return nil
}

func stringToken(dec *json.Decoder) (string, error) {
	tok, err := dec.Token()
	if err != nil {
		return "", err
	}
	s, ok := tok.(string)
	if !ok {
		return "", fmt.Errorf("expected string, got %v", tok)
	}
	return s, nil
}

func stringValue(dec *json.Decoder) (string, error) {
	tok, err := dec.Token()
	if err != nil {
		return "", err
	}
	switch v := tok.(type) {
	case string:
		return v, nil
	case json.Number:
		return v.String(), nil
	case nil:
		return "", nil
	}
	return "", fmt.Errorf("expected string, got %v", tok)
}

func floatValue(dec *json.Decoder) (float64, error) {
	tok, err := dec.Token()
	if err != nil {
		return 0, err
	}
	if tok == nil {
		return 0, nil
	}
	if f, ok := asFloat(tok); ok {
		return f, nil
	}
	return 0, fmt.Errorf("expected number, got %v", tok)
}

// skipValue consumes one JSON value of any shape.
func skipValue(dec *json.Decoder) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); ok && (d == '{' || d == '[') {
		return skipCompound(dec, d)
	}
	return nil
}

// skipCompound consumes the remainder of an object or array whose opening
// delimiter has already been read.
func skipCompound(dec *json.Decoder, open json.Delim) error {
	for dec.More() {
		if open == '{' {
			if _, err := dec.Token(); err != nil { // key
				return err
			}
		}
		if err := skipValue(dec); err != nil {
			return err
		}
	}
	_, err := dec.Token() // closing delimiter
	return err
}
