// Package script reads action scripts for `tada run` and writes the
// resulting state as JSON.
//
// A script is a JSON document {"actions": [...]} checked against an
// embedded JSON Schema before any step is applied.
package script

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/Makepad-fr/tada/internal/model"
	"github.com/Makepad-fr/tada/internal/store"
)

const schemaURL = "https://tada.local/action-script.schema.json"

//go:embed schema.json
var schemaJSON []byte

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

// Step is one action as written in a script. Item-targeting steps name
// their item either by ID or by 1-based Index into the current view.
type Step struct {
	Type   string  `json:"type"`
	Text   *string `json:"text,omitempty"`
	Filter string  `json:"filter,omitempty"`
	Index  int     `json:"index,omitempty"`
	ID     string  `json:"id,omitempty"`
}

// Script is an ordered list of steps.
type Script struct {
	Actions []Step `json:"actions"`
}

// ValidationError points at the part of a script that broke the schema.
type ValidationError struct {
	Path    string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s", e.Path, e.Message)
	}
	return e.Message
}

// ValidationErrors collects every schema violation of a script.
type ValidationErrors []*ValidationError

func (es ValidationErrors) Error() string {
	msgs := make([]string, 0, len(es))
	for _, e := range es {
		msgs = append(msgs, e.Error())
	}
	return "invalid script: " + strings.Join(msgs, "; ")
}

// LoadFile reads a script from path.
func LoadFile(path string) (*Script, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open script: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Load reads, validates and decodes a script.
func Load(r io.Reader) (*Script, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if err := validate(raw); err != nil {
		return nil, err
	}
	var sc Script
	if err := json.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("decode script: %w", err)
	}
	return &sc, nil
}

func schema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, bytes.NewReader(schemaJSON)); err != nil {
			compileErr = fmt.Errorf("add schema: %w", err)
			return
		}
		compiled, compileErr = c.Compile(schemaURL)
		if compileErr != nil {
			compileErr = fmt.Errorf("compile schema: %w", compileErr)
		}
	})
	return compiled, compileErr
}

func validate(raw interface{}) error {
	sch, err := schema()
	if err != nil {
		return err
	}
	err = sch.Validate(raw)
	if err == nil {
		return nil
	}
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return fmt.Errorf("validate script: %w", err)
	}
	var out ValidationErrors
	collect(ve, &out)
	if len(out) == 0 {
		out = append(out, &ValidationError{Message: ve.Message})
	}
	return out
}

// collect walks the cause tree and keeps the leaves.
func collect(ve *jsonschema.ValidationError, out *ValidationErrors) {
	if len(ve.Causes) == 0 {
		*out = append(*out, &ValidationError{
			Path:    pointerToPath(ve.InstanceLocation),
			Message: ve.Message,
		})
		return
	}
	for _, c := range ve.Causes {
		collect(c, out)
	}
}

// pointerToPath turns "/actions/2/type" into "actions[2].type".
func pointerToPath(ptr string) string {
	ptr = strings.TrimPrefix(strings.TrimPrefix(ptr, "#"), "/")
	if ptr == "" {
		return ""
	}
	var b strings.Builder
	for _, part := range strings.Split(ptr, "/") {
		part = strings.ReplaceAll(strings.ReplaceAll(part, "~1", "/"), "~0", "~")
		if _, err := strconv.Atoi(part); err == nil {
			b.WriteString("[" + part + "]")
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(part)
	}
	return b.String()
}

// IndexError reports a view index outside the visible items.
type IndexError struct {
	Have, Got int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("index out of range: have %d, got %d", e.Have, e.Got)
}

// Action converts a step into a store action, resolving indexes against
// the view of s.
func (st Step) Action(s model.State) (store.Action, error) {
	text := ""
	if st.Text != nil {
		text = *st.Text
	}
	switch st.Type {
	case "set_draft":
		return store.SetDraft{Text: text}, nil
	case "submit":
		return store.Submit{}, nil
	case "set_filter":
		f, err := model.ParseFilter(st.Filter)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", store.ErrInvalidAction, err)
		}
		return store.SetFilter{Filter: f}, nil
	case "empty_trash":
		return store.EmptyTrash{}, nil
	case "edit_text", "toggle_done", "toggle_deleted":
	default:
		return nil, fmt.Errorf("%w: unknown type %q", store.ErrInvalidAction, st.Type)
	}

	id, err := st.target(s)
	if err != nil {
		return nil, err
	}
	switch st.Type {
	case "edit_text":
		return store.EditText{ID: id, Text: text}, nil
	case "toggle_done":
		return store.ToggleDone{ID: id}, nil
	}
	return store.ToggleDeleted{ID: id}, nil
}

func (st Step) target(s model.State) (string, error) {
	if st.ID != "" {
		return st.ID, nil
	}
	visible := store.Visible(s)
	if st.Index < 1 || st.Index > len(visible) {
		return "", &IndexError{Have: len(visible), Got: st.Index}
	}
	return visible[st.Index-1].ID, nil
}
