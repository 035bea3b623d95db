// Package script decodes pull-to-refresh gesture scripts and replays them
// against a refresh.Layout on a fake frame clock.
package script

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"time"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/pullrefresh/pkg/refresh"
)

// CurrentVersion is the newest script format this package understands.
const CurrentVersion = "v1.0.0"

// DefaultStepDelay is the time that passes before a step that sets no after.
const DefaultStepDelay = 16 * time.Millisecond

// Defaults for omitted script sections.
const (
	DefaultHeaderHeight = 100
	DefaultViewport     = 600
	DefaultExtent       = 2000
)

// ErrInvalidScript is wrapped by every validation error.
var ErrInvalidScript = errors.New("invalid script")

// Script is a decoded gesture script.
type Script struct {
	Version string         `yaml:"version"`
	Config  refresh.Config `yaml:"config"`
	Header  Header         `yaml:"header"`
	Content Content        `yaml:"content"`
	// AutoComplete ends each refresh this long after it starts. Zero leaves
	// refreshes running until a refreshing step ends them.
	AutoComplete time.Duration `yaml:"auto_complete"`
	Steps        []Step        `yaml:"steps"`
}

// Header describes the indicator view.
type Header struct {
	Height int `yaml:"height"`
}

// Content describes the scrollable content below the header.
type Content struct {
	Extent   int  `yaml:"extent"`
	Viewport int  `yaml:"viewport"`
	Scroll   int  `yaml:"scroll"`
	Nested   bool `yaml:"nested"`
}

// Point is a pointer position. ID zero selects a default pointer.
type Point struct {
	ID int64   `yaml:"id"`
	X  float64 `yaml:"x"`
	Y  float64 `yaml:"y"`
}

// Action identifies what a step does.
type Action int

const (
	ActionNone Action = iota
	ActionDown
	ActionMove
	ActionUp
	ActionCancel
	ActionPointerDown
	ActionPointerUp
	ActionWait
	ActionRefreshing
)

func (a Action) String() string {
	switch a {
	case ActionDown:
		return "down"
	case ActionMove:
		return "move"
	case ActionUp:
		return "up"
	case ActionCancel:
		return "cancel"
	case ActionPointerDown:
		return "pointer_down"
	case ActionPointerUp:
		return "pointer_up"
	case ActionWait:
		return "wait"
	case ActionRefreshing:
		return "refreshing"
	default:
		return "none"
	}
}

// Step is one scripted input. Exactly one action field is set.
type Step struct {
	// After is the time that passes before the step. Defaults to DefaultStepDelay.
	After *time.Duration `yaml:"after"`

	Down        *Point         `yaml:"down"`
	Move        *Point         `yaml:"move"`
	Up          *Point         `yaml:"up"`
	Cancel      *Point         `yaml:"cancel"`
	PointerDown *Point         `yaml:"pointer_down"`
	PointerUp   *Point         `yaml:"pointer_up"`
	Wait        *time.Duration `yaml:"wait"`
	Refreshing  *bool          `yaml:"refreshing"`
}

// UnmarshalYAML decodes a step and treats a bare key such as "up:" as a
// present action with no coordinates.
func (s *Step) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: step must be a mapping", node.Line)
	}
	// node.Decode starts a fresh decoder, so unknown keys are checked here.
	if err := checkKeys(node, stepKeys); err != nil {
		return err
	}
	for i := 1; i < len(node.Content); i += 2 {
		value := node.Content[i]
		if value.Kind == yaml.MappingNode && slices.Contains(pointKeyOwners, node.Content[i-1].Value) {
			if err := checkKeys(value, pointKeys); err != nil {
				return err
			}
		}
	}
	type plain Step
	if err := node.Decode((*plain)(s)); err != nil {
		return err
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		if value.Tag != "!!null" {
			continue
		}
		switch key.Value {
		case "down":
			s.Down = &Point{}
		case "move":
			s.Move = &Point{}
		case "up":
			s.Up = &Point{}
		case "cancel":
			s.Cancel = &Point{}
		case "pointer_down":
			s.PointerDown = &Point{}
		case "pointer_up":
			s.PointerUp = &Point{}
		}
	}
	return nil
}

var (
	stepKeys       = []string{"after", "down", "move", "up", "cancel", "pointer_down", "pointer_up", "wait", "refreshing"}
	pointKeyOwners = []string{"down", "move", "up", "cancel", "pointer_down", "pointer_up"}
	pointKeys      = []string{"id", "x", "y"}
)

func checkKeys(node *yaml.Node, known []string) error {
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i]
		if !slices.Contains(known, key.Value) {
			return fmt.Errorf("%w: line %d: unknown key %q", ErrInvalidScript, key.Line, key.Value)
		}
	}
	return nil
}

// Action returns the step's single action.
func (s Step) Action() (Action, error) {
	found := ActionNone
	set := func(present bool, a Action) error {
		if !present {
			return nil
		}
		if found != ActionNone {
			return fmt.Errorf("%w: step sets both %s and %s", ErrInvalidScript, found, a)
		}
		found = a
		return nil
	}
	for _, err := range []error{
		set(s.Down != nil, ActionDown),
		set(s.Move != nil, ActionMove),
		set(s.Up != nil, ActionUp),
		set(s.Cancel != nil, ActionCancel),
		set(s.PointerDown != nil, ActionPointerDown),
		set(s.PointerUp != nil, ActionPointerUp),
		set(s.Wait != nil, ActionWait),
		set(s.Refreshing != nil, ActionRefreshing),
	} {
		if err != nil {
			return ActionNone, err
		}
	}
	if found == ActionNone {
		return ActionNone, fmt.Errorf("%w: step has no action", ErrInvalidScript)
	}
	return found, nil
}

// Delay returns the time that passes before the step.
func (s Step) Delay() time.Duration {
	if s.After == nil {
		return DefaultStepDelay
	}
	return *s.After
}

// Point returns the coordinates of a pointer action.
func (s Step) Point() Point {
	for _, p := range []*Point{s.Down, s.Move, s.Up, s.Cancel, s.PointerDown, s.PointerUp} {
		if p != nil {
			return *p
		}
	}
	return Point{}
}

// Load reads and validates a script file.
func Load(path string) (*Script, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open script: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// Decode parses and validates a script. Unknown keys are rejected.
func Decode(r io.Reader) (*Script, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var s Script
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty script", ErrInvalidScript)
		}
		return nil, fmt.Errorf("failed to parse script: %w", err)
	}
	s.applyDefaults()
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Script) applyDefaults() {
	if s.Header.Height == 0 {
		s.Header.Height = DefaultHeaderHeight
	}
	if s.Content.Viewport == 0 {
		s.Content.Viewport = DefaultViewport
	}
	if s.Content.Extent == 0 {
		s.Content.Extent = DefaultExtent
	}
}

// Validate checks the version, the layout setup and that every step has
// exactly one action.
func (s *Script) Validate() error {
	if err := checkVersion(s.Version); err != nil {
		return err
	}
	if err := s.Config.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidScript, err)
	}
	switch {
	case s.Header.Height < 0:
		return fmt.Errorf("%w: header.height must not be negative", ErrInvalidScript)
	case s.Content.Extent < 0, s.Content.Viewport < 0:
		return fmt.Errorf("%w: content sizes must not be negative", ErrInvalidScript)
	case s.Content.Scroll < 0:
		return fmt.Errorf("%w: content.scroll must not be negative", ErrInvalidScript)
	case s.AutoComplete < 0:
		return fmt.Errorf("%w: auto_complete must not be negative", ErrInvalidScript)
	}
	for i, step := range s.Steps {
		if _, err := step.Action(); err != nil {
			return fmt.Errorf("step %d: %w", i+1, err)
		}
		if step.After != nil && *step.After < 0 {
			return fmt.Errorf("step %d: %w: after must not be negative", i+1, ErrInvalidScript)
		}
		if step.Wait != nil && *step.Wait < 0 {
			return fmt.Errorf("step %d: %w: wait must not be negative", i+1, ErrInvalidScript)
		}
		if (step.Up != nil && *step.Up != (Point{})) || (step.Cancel != nil && *step.Cancel != (Point{})) {
			return fmt.Errorf("step %d: %w: up and cancel lift where the pointer is, move it first", i+1, ErrInvalidScript)
		}
	}
	return nil
}

func checkVersion(v string) error {
	switch {
	case v == "":
		return fmt.Errorf("%w: version is required", ErrInvalidScript)
	case !semver.IsValid(v):
		return fmt.Errorf("%w: version %q is not a semantic version", ErrInvalidScript, v)
	case semver.Major(v) != semver.Major(CurrentVersion):
		return fmt.Errorf("%w: version %s is not supported, want %s", ErrInvalidScript, v, semver.Major(CurrentVersion))
	case semver.Compare(v, CurrentVersion) > 0:
		return fmt.Errorf("%w: version %s is newer than %s", ErrInvalidScript, v, CurrentVersion)
	}
	return nil
}
