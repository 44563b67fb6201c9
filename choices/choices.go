// Package choices parses file-type choices ("label" -> list of extension patterns)
// while keeping the order in which labels appear in the source text.
//
// A picker presents its type choices in the order they were added, so the first
// label of the document becomes the default choice. Decoding into a Go map would
// lose that order, which is why the parser walks the token stream instead.
package choices

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Entry is one file-type choice.
type Entry struct {
	Label      string
	Extensions []string
}

// Set is the ordered result of one parse. Labels are not deduplicated.
type Set []Entry

// Labels returns the labels in order.
func (s Set) Labels() []string {
	labels := make([]string, 0, len(s))
	for _, e := range s {
		labels = append(labels, e.Label)
	}
	return labels
}

// MarshalJSON writes the set as a JSON object with members in set order.
func (s Set) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range s {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(e.Label)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		exts := e.Extensions
		if exts == nil {
			exts = []string{}
		}
		value, err := json.Marshal(exts)
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// ShapeError reports input that is valid JSON but not an object of string arrays.
// Label is empty when the top-level value itself is the problem.
type ShapeError struct {
	Label  string
	Reason string
}

func (e *ShapeError) Error() string {
	if e.Label == "" {
		return "choices: " + e.Reason
	}
	return fmt.Sprintf("choices: %q: %s", e.Label, e.Reason)
}

// SyntaxError reports input that is not well-formed.
type SyntaxError struct {
	Offset int64
	Err    error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("choices: malformed document at offset %d: %v", e.Offset, e.Err)
}

func (e *SyntaxError) Unwrap() error { return e.Err }

// Observer receives each parsed entry. It is advisory only.
type Observer func(label string, extensions []string)

// Option configures a parse.
type Option func(*parseOptions)

type parseOptions struct {
	observer Observer
}

// WithObserver registers fn to be called once per entry after a successful parse.
func WithObserver(fn Observer) Option {
	return func(o *parseOptions) {
		o.observer = fn
	}
}

func newParseOptions(opts []Option) parseOptions {
	var o parseOptions
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// notify runs the observer over a finished set. The observer gets its own copy
// of each extension list.
func (o parseOptions) notify(set Set) {
	if o.observer == nil {
		return
	}
	for _, e := range set {
		o.observer(e.Label, append([]string(nil), e.Extensions...))
	}
}

// Parse converts a JSON object of string arrays into an ordered Set.
// Empty or whitespace-only input yields an empty Set.
func Parse(text string, opts ...Option) (Set, error) {
	o := newParseOptions(opts)
	if strings.TrimSpace(text) == "" {
		return Set{}, nil
	}

	// Validate the whole document first so a malformed tail is reported as a
	// syntax error rather than as whatever shape problem precedes it.
	if err := checkSyntax(text); err != nil {
		return nil, err
	}

	dec := json.NewDecoder(strings.NewReader(text))
	set, err := decodeObject(dec)
	if err != nil {
		return nil, err
	}
	o.notify(set)
	return set, nil
}

func checkSyntax(text string) error {
	var raw json.RawMessage
	dec := json.NewDecoder(strings.NewReader(text))
	if err := dec.Decode(&raw); err != nil {
		return syntaxError(dec, err)
	}
	if _, err := dec.Token(); err != io.EOF {
		if err == nil {
			err = errors.New("unexpected data after top-level value")
		}
		return syntaxError(dec, err)
	}
	return nil
}

func syntaxError(dec *json.Decoder, err error) error {
	var se *json.SyntaxError
	if errors.As(err, &se) {
		return &SyntaxError{Offset: se.Offset, Err: err}
	}
	return &SyntaxError{Offset: dec.InputOffset(), Err: err}
}

func decodeObject(dec *json.Decoder) (Set, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, syntaxError(dec, err)
	}
	if tok != json.Delim('{') {
		return nil, &ShapeError{Reason: "expected an object of choices"}
	}

	set := Set{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, syntaxError(dec, err)
		}
		label, _ := tok.(string)

		exts, err := decodeExtensions(dec, label)
		if err != nil {
			return nil, err
		}
		set = append(set, Entry{Label: label, Extensions: exts})
	}
	if _, err := dec.Token(); err != nil {
		return nil, syntaxError(dec, err)
	}
	return set, nil
}

func decodeExtensions(dec *json.Decoder, label string) ([]string, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, syntaxError(dec, err)
	}
	if tok != json.Delim('[') {
		return nil, &ShapeError{Label: label, Reason: "value must be an array of strings"}
	}

	exts := []string{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, syntaxError(dec, err)
		}
		ext, ok := tok.(string)
		if !ok {
			return nil, &ShapeError{Label: label, Reason: "all extensions must be strings"}
		}
		if isBlank(ext) {
			continue
		}
		exts = append(exts, ext)
	}
	if _, err := dec.Token(); err != nil {
		return nil, syntaxError(dec, err)
	}
	return exts, nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
