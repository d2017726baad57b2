package headless

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/valerio/go-holdevent/hold/input"
	"gopkg.in/yaml.v3"
)

var ErrInvalidStep = errors.New("invalid script step")

// Script is a timed sequence of input to replay.
type Script struct {
	Steps []Step `yaml:"steps"`

	// Tail is how long to keep running after the last step.
	Tail time.Duration `yaml:"tail"`
}

// Step is one input event at an offset from the start of the run.
type Step struct {
	At              time.Duration `yaml:"at"`
	Event           string        `yaml:"event"` // pointer-down, pointer-up, key-down, key-up, blur
	Pointer         int64         `yaml:"pointer"`
	X               int           `yaml:"x"`
	Y               int           `yaml:"y"`
	Code            string        `yaml:"code"`
	Repeat          bool          `yaml:"repeat"`
	Target          string        `yaml:"target"` // element kind the key event is delivered to
	ContentEditable bool          `yaml:"content_editable"`
}

// LoadScript reads and validates a YAML script.
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}
	return ParseScript(data)
}

// ParseScript decodes and validates a YAML script. Steps are sorted by time.
func ParseScript(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse script: %w", err)
	}

	for i, step := range s.Steps {
		if err := step.validate(); err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}
	}
	sort.SliceStable(s.Steps, func(i, j int) bool {
		return s.Steps[i].At < s.Steps[j].At
	})
	return &s, nil
}

// Duration returns the time of the last step plus the tail.
func (s *Script) Duration() time.Duration {
	if len(s.Steps) == 0 {
		return s.Tail
	}
	return s.Steps[len(s.Steps)-1].At + s.Tail
}

func (s Step) validate() error {
	if s.At < 0 {
		return fmt.Errorf("%w: negative time %v", ErrInvalidStep, s.At)
	}
	switch s.Event {
	case input.PointerDown.String(), input.PointerUp.String(), input.Blur.String():
	case input.KeyDown.String(), input.KeyUp.String():
		if s.Code == "" {
			return fmt.Errorf("%w: %s needs a code", ErrInvalidStep, s.Event)
		}
	default:
		return fmt.Errorf("%w: unknown event %q", ErrInvalidStep, s.Event)
	}
	if _, ok := input.ParseKind(s.Target); !ok {
		return fmt.Errorf("%w: unknown target %q", ErrInvalidStep, s.Target)
	}
	return nil
}

func (s Step) target() input.Target {
	kind, _ := input.ParseKind(s.Target)
	return input.Target{Name: s.Target, Kind: kind, ContentEditable: s.ContentEditable}
}
