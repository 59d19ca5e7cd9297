package design

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"
	"sort"
	"time"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/grindlemire/go-flexui/internal/layout"
)

// File is the decoded content of one design file.
type File struct {
	Name    string
	Designs []*Node
}

// Registry builds a registry from the file's designs.
func (f *File) Registry() (*Registry, error) {
	return NewRegistry(f.Designs...)
}

// rawNode mirrors one design mapping before conversion. Keys that are not
// structural end up in Props and are decoded as style properties.
type rawNode struct {
	Class       string           `mapstructure:"class"`
	Part        string           `mapstructure:"part"`
	Kind        string           `mapstructure:"kind"`
	Orientation string           `mapstructure:"orientation"`
	Alignment   string           `mapstructure:"alignment"`
	Text        string           `mapstructure:"text"`
	ItemIndex   int              `mapstructure:"item_index"`
	Transitions []rawTransition  `mapstructure:"transitions"`
	Styles      []map[string]any `mapstructure:"styles"`
	Contents    []map[string]any `mapstructure:"contents"`
	Props       map[string]any   `mapstructure:",remain"`
}

type rawTransition struct {
	Property string        `mapstructure:"property"`
	Duration time.Duration `mapstructure:"duration"`
	Delay    time.Duration `mapstructure:"delay"`
	Easing   string        `mapstructure:"easing"`
}

type rawFile struct {
	Designs []map[string]any `yaml:"designs"`
}

// LoadFile reads and decodes the design file at path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{File: path, Err: err}
	}
	return Load(bytes.NewReader(data), path)
}

// Load decodes a YAML design document. name is used in error messages.
// Every decoded design is validated.
func Load(r io.Reader, name string) (*File, error) {
	var raw rawFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		return nil, &LoadError{File: name, Err: err}
	}

	f := &File{Name: name}
	for i, m := range raw.Designs {
		path := fmt.Sprintf("designs[%d]", i)
		n, err := decodeNode(m)
		if err != nil {
			return nil, &LoadError{File: name, Path: path, Err: err}
		}
		if n.IsPart() {
			return nil, &LoadError{File: name, Path: path, Err: fmt.Errorf("top-level design cannot be a part")}
		}
		if err := Validate(n); err != nil {
			return nil, &LoadError{File: name, Path: path, Err: err}
		}
		f.Designs = append(f.Designs, n)
	}
	return f, nil
}

// durationHook lets durations be written either as Go duration strings
// ("250ms") or as plain numbers of milliseconds.
var durationHook mapstructure.DecodeHookFuncType = func(from, to reflect.Type, data any) (any, error) {
	if to != reflect.TypeOf(time.Duration(0)) {
		return data, nil
	}
	switch v := data.(type) {
	case int:
		return time.Duration(v) * time.Millisecond, nil
	case float64:
		return time.Duration(v * float64(time.Millisecond)), nil
	}
	return data, nil
}

func decodeRaw(m map[string]any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			durationHook,
			mapstructure.StringToTimeDurationHookFunc(),
		),
		Result: out,
	})
	if err != nil {
		return err
	}
	return dec.Decode(m)
}

func decodeNode(m map[string]any) (*Node, error) {
	var raw rawNode
	if err := decodeRaw(m, &raw); err != nil {
		return nil, err
	}

	if raw.Part != "" {
		if len(m) != 1 {
			return nil, fmt.Errorf("part %q may not carry other keys", raw.Part)
		}
		return NewPart(raw.Part), nil
	}

	n := &Node{
		Class:     raw.Class,
		Kind:      Kind(raw.Kind),
		Text:      raw.Text,
		ItemIndex: raw.ItemIndex,
	}
	var err error
	if n.Orientation, err = layout.ParseOrientation(raw.Orientation); err != nil {
		return nil, err
	}
	if n.Alignment, err = layout.ParseAlignment(raw.Alignment); err != nil {
		return nil, err
	}
	if n.Style, err = decodeStyle(raw.Props); err != nil {
		return nil, err
	}

	for _, t := range raw.Transitions {
		n.Transitions = append(n.Transitions, Transition{
			Property: Property(t.Property),
			Duration: t.Duration,
			Delay:    t.Delay,
			Easing:   t.Easing,
		})
	}

	for i, sm := range raw.Styles {
		state, _ := sm["state"].(string)
		if state == "" {
			return nil, fmt.Errorf("styles[%d]: missing state", i)
		}
		props := make(map[string]any, len(sm))
		for k, v := range sm {
			if k != "state" {
				props[k] = v
			}
		}
		style, err := decodeStyle(props)
		if err != nil {
			return nil, fmt.Errorf("styles[%d]: %w", i, err)
		}
		n.Variants = append(n.Variants, Variant{State: state, Style: style})
	}

	for i, cm := range raw.Contents {
		child, err := decodeNode(cm)
		if err != nil {
			return nil, fmt.Errorf("contents[%d]: %w", i, err)
		}
		n.Children = append(n.Children, child)
	}
	return n, nil
}

// propertyAliases maps design-file shorthands onto numeric properties.
var propertyAliases = map[string]Property{
	"left": X,
	"top":  Y,
}

// decodeStyle converts the free-form property keys of a mapping.
// Keys are processed in sorted order so errors are deterministic.
func decodeStyle(props map[string]any) (Style, error) {
	var s Style
	keys := make([]string, 0, len(props))
	for k := range props {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		v := props[k]
		switch k {
		case "margin", "padding":
			t, err := decodeThickness(v)
			if err != nil {
				return s, fmt.Errorf("%s: %w", k, err)
			}
			if k == "margin" {
				s.MarginTop, s.MarginRight, s.MarginBottom, s.MarginLeft = t[0], t[1], t[2], t[3]
			} else {
				s.PaddingTop, s.PaddingRight, s.PaddingBottom, s.PaddingLeft = t[0], t[1], t[2], t[3]
			}
		case "windowskin":
			str, ok := v.(string)
			if !ok {
				return s, fmt.Errorf("windowskin: want string, got %T", v)
			}
			s.Windowskin = Some(str)
		case "frameVisible":
			b, ok := v.(bool)
			if !ok {
				return s, fmt.Errorf("frameVisible: want bool, got %T", v)
			}
			s.FrameVisible = Some(b)
		case "colorTone":
			tone, err := decodeTone(v)
			if err != nil {
				return s, fmt.Errorf("colorTone: %w", err)
			}
			s.ColorTone = Some(tone)
		default:
			p, ok := propertyAliases[k]
			if !ok {
				p = Property(k)
			}
			if !p.Numeric() {
				return s, fmt.Errorf("unknown property %q", k)
			}
			n, err := decodeNumber(v)
			if err != nil {
				return s, fmt.Errorf("%s: %w", k, err)
			}
			s.Set(p, n)
		}
	}
	return s, nil
}

func decodeNumber(v any) (Number, error) {
	switch x := v.(type) {
	case int:
		return Lit(float64(x)), nil
	case int64:
		return Lit(float64(x)), nil
	case float64:
		if !isFinite(x) {
			return Number{}, fmt.Errorf("number %v is not finite", x)
		}
		return Lit(x), nil
	case string:
		return ParseNumber(x)
	}
	return Number{}, fmt.Errorf("want number or expression, got %T", v)
}

// decodeThickness accepts a single value for all sides, or a list of two
// (vertical, horizontal) or four (top, right, bottom, left) values.
func decodeThickness(v any) ([4]Number, error) {
	list, ok := v.([]any)
	if !ok {
		n, err := decodeNumber(v)
		return [4]Number{n, n, n, n}, err
	}
	nums := make([]Number, len(list))
	for i, item := range list {
		n, err := decodeNumber(item)
		if err != nil {
			return [4]Number{}, err
		}
		nums[i] = n
	}
	switch len(nums) {
	case 2:
		return [4]Number{nums[0], nums[1], nums[0], nums[1]}, nil
	case 4:
		return [4]Number{nums[0], nums[1], nums[2], nums[3]}, nil
	}
	return [4]Number{}, fmt.Errorf("want 1, 2 or 4 values, got %d", len(nums))
}

func decodeTone(v any) (Tone, error) {
	list, ok := v.([]any)
	if !ok || len(list) != 4 {
		return Tone{}, fmt.Errorf("want a list of 4 numbers")
	}
	var t Tone
	for i, item := range list {
		n, err := decodeNumber(item)
		if err != nil {
			return Tone{}, err
		}
		if n.IsComputed() {
			return Tone{}, fmt.Errorf("tone channels must be literals")
		}
		t[i] = n.Eval(nil)
	}
	return t, nil
}

// LoadFiles loads several design files into one File, preserving order.
func LoadFiles(paths ...string) (*File, error) {
	out := &File{}
	for _, path := range paths {
		f, err := LoadFile(path)
		if err != nil {
			return nil, err
		}
		out.Designs = append(out.Designs, f.Designs...)
	}
	if len(paths) == 1 {
		out.Name = paths[0]
	}
	return out, nil
}
