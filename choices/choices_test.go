package choices

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Set
	}{
		{"empty", "", Set{}},
		{"whitespace", "   ", Set{}},
		{"newlines and tabs", "\n\t \r\n", Set{}},
		{"empty object", "{}", Set{}},
		{"single entry", `{"Images": ["*.png", "*.jpg"]}`,
			Set{{Label: "Images", Extensions: []string{"*.png", "*.jpg"}}}},
		{"blanks dropped", `{"Images": ["*.png", "", "  ", "*.jpg"]}`,
			Set{{Label: "Images", Extensions: []string{"*.png", "*.jpg"}}}},
		{"all blank", `{"Nothing": ["", " "]}`,
			Set{{Label: "Nothing", Extensions: []string{}}}},
		{"empty array", `{"Nothing": []}`,
			Set{{Label: "Nothing", Extensions: []string{}}}},
		{"source order not lexical", `{"B": ["*.b"], "A": ["*.a"]}`,
			Set{{Label: "B", Extensions: []string{"*.b"}}, {Label: "A", Extensions: []string{"*.a"}}}},
		{"duplicate labels kept", `{"A": ["*.1"], "B": ["*.2"], "A": ["*.3"]}`,
			Set{
				{Label: "A", Extensions: []string{"*.1"}},
				{Label: "B", Extensions: []string{"*.2"}},
				{Label: "A", Extensions: []string{"*.3"}},
			}},
		{"extensions not trimmed", `{"Text": [" *.txt "]}`,
			Set{{Label: "Text", Extensions: []string{" *.txt "}}}},
		{"escaped label", `{"Café \"docs\"": ["*.odt"]}`,
			Set{{Label: `Café "docs"`, Extensions: []string{"*.odt"}}}},
		{"surrounding whitespace", "\n  {\"Text\": [\"*.txt\"]}  \n",
			Set{{Label: "Text", Extensions: []string{"*.txt"}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.input, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Parse(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestParseShapeErrors(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantLabel string
	}{
		{"array at top level", `["not", "an", "object"]`, ""},
		{"string at top level", `"text"`, ""},
		{"number at top level", `42`, ""},
		{"null at top level", `null`, ""},
		{"value not an array", `{"X": "not-an-array"}`, "X"},
		{"value is an object", `{"X": {"a": ["*.a"]}}`, "X"},
		{"value is null", `{"X": null}`, "X"},
		{"numbers in array", `{"X": [1, 2]}`, "X"},
		{"nested array", `{"X": [["*.x"]]}`, "X"},
		{"null element", `{"X": ["*.x", null]}`, "X"},
		{"bool element", `{"X": [true]}`, "X"},
		{"second member bad", `{"A": ["*.a"], "B": 3}`, "B"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if got != nil {
				t.Errorf("Parse(%q) returned partial result %v", tt.input, got)
			}
			var shapeErr *ShapeError
			if !errors.As(err, &shapeErr) {
				t.Fatalf("Parse(%q) error = %v, want *ShapeError", tt.input, err)
			}
			if shapeErr.Label != tt.wantLabel {
				t.Errorf("Parse(%q) label = %q, want %q", tt.input, shapeErr.Label, tt.wantLabel)
			}
			if tt.wantLabel == "" && shapeErr.Reason != "expected an object of choices" {
				t.Errorf("Parse(%q) reason = %q, want %q", tt.input, shapeErr.Reason, "expected an object of choices")
			}
			if tt.wantLabel != "" && !strings.Contains(err.Error(), tt.wantLabel) {
				t.Errorf("error %q does not name %q", err.Error(), tt.wantLabel)
			}
		})
	}
}

func TestParseSyntaxErrors(t *testing.T) {
	inputs := []string{
		`{`,
		`{"A": ["*.a"]`,
		`{"A": ["*.a",]}`,
		`{A: ["*.a"]}`,
		`{"A": ["*.a"]} trailing`,
		`{} {}`,
		`["x", 1 2]`,
	}
	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			got, err := Parse(input)
			if got != nil {
				t.Errorf("Parse(%q) returned partial result %v", input, got)
			}
			var syntaxErr *SyntaxError
			if !errors.As(err, &syntaxErr) {
				t.Fatalf("Parse(%q) error = %v, want *SyntaxError", input, err)
			}
			var shapeErr *ShapeError
			if errors.As(err, &shapeErr) {
				t.Errorf("Parse(%q) reported a shape error for malformed input", input)
			}
		})
	}
}

func TestParseObserver(t *testing.T) {
	type call struct {
		Label      string
		Extensions []string
	}
	var calls []call
	observer := WithObserver(func(label string, extensions []string) {
		calls = append(calls, call{label, extensions})
	})

	set, err := Parse(`{"Images": ["*.png", " ", "*.gif"], "Text": ["*.txt"]}`, observer)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := []call{
		{"Images", []string{"*.png", "*.gif"}},
		{"Text", []string{"*.txt"}},
	}
	if diff := cmp.Diff(want, calls); diff != "" {
		t.Errorf("observer calls mismatch (-want +got):\n%s", diff)
	}

	// Mutating what the observer received must not reach the result.
	calls[0].Extensions[0] = "changed"
	if set[0].Extensions[0] != "*.png" {
		t.Errorf("observer shares storage with result: %v", set[0].Extensions)
	}
}

func TestParseObserverNotCalledOnError(t *testing.T) {
	called := 0
	_, err := Parse(`{"A": ["*.a"], "B": [1]}`, WithObserver(func(string, []string) { called++ }))
	if err == nil {
		t.Fatal("expected error")
	}
	if called != 0 {
		t.Errorf("observer called %d times for a failed parse", called)
	}
}

func TestParseDeterministic(t *testing.T) {
	input := `{"Z": ["*.z"], "M": ["*.m", "*.mm"], "A": []}`
	first, err := Parse(input)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	var wg sync.WaitGroup
	results := make([]Set, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = Parse(input)
		}(i)
	}
	wg.Wait()

	for i, got := range results {
		if diff := cmp.Diff(first, got); diff != "" {
			t.Errorf("parse %d differs (-first +got):\n%s", i, diff)
		}
	}
}

func TestSetMarshalJSONRoundTrip(t *testing.T) {
	set := Set{
		{Label: "Zip", Extensions: []string{"*.zip"}},
		{Label: "All \"files\"", Extensions: []string{"*"}},
		{Label: "Empty"},
	}
	data, err := set.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON: %v", err)
	}
	if want := `{"Zip":["*.zip"],"All \"files\"":["*"],"Empty":[]}`; string(data) != want {
		t.Errorf("MarshalJSON = %s, want %s", data, want)
	}

	back, err := Parse(string(data))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if diff := cmp.Diff(set.Labels(), back.Labels()); diff != "" {
		t.Errorf("labels mismatch (-want +got):\n%s", diff)
	}
}
