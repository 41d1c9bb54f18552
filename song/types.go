package song

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/counterpoint/scale"
	"github.com/katalvlaran/counterpoint/search"
)

var (
	// ErrInvalidSong indicates a song file that fails validation.
	ErrInvalidSong = errors.New("song: invalid song")

	// ErrUnknownSection indicates a form or solo entry with no matching section.
	ErrUnknownSection = errors.New("song: unknown section")
)

// DefaultConcurrency bounds parallel section solving when neither the song
// nor the caller sets it.
const DefaultConcurrency = 4

// Song is the parsed song file.
type Song struct {
	Title       string             `yaml:"title"`
	Key         string             `yaml:"key" validate:"required"`
	Mode        string             `yaml:"mode" validate:"required"`
	Target      int                `yaml:"target" validate:"gte=0"`
	Concurrency int                `yaml:"concurrency" validate:"gte=0"`
	Window      *Window            `yaml:"window"`
	Beats       []bool             `yaml:"beats"`
	Sections    map[string]Pitches `yaml:"sections" validate:"required,min=1,dive,min=1"`
	Form        []string           `yaml:"form" validate:"required,min=1,dive,required"`
	Solo        []string           `yaml:"solo" validate:"dive,required"`
}

// Window overrides the candidate interval window for every section.
type Window struct {
	Min int `yaml:"min" validate:"gte=0"`
	Max int `yaml:"max" validate:"gtefield=Min"`
}

// Pitches is a cantus phrase. In YAML it is either a sequence of MIDI numbers
// and note names, or a single string of them separated by spaces or commas.
type Pitches []int

// UnmarshalYAML implements yaml.Unmarshaler.
func (p *Pitches) UnmarshalYAML(node *yaml.Node) error {
	var words []string
	switch node.Kind {
	case yaml.SequenceNode:
		words = make([]string, 0, len(node.Content))
		for _, n := range node.Content {
			if n.Kind != yaml.ScalarNode {
				return fmt.Errorf("line %d: %w: nested value in pitch list", n.Line, scale.ErrInvalidPitch)
			}
			words = append(words, n.Value)
		}
	case yaml.ScalarNode:
		words = strings.FieldsFunc(node.Value, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t'
		})
	default:
		return fmt.Errorf("line %d: %w: expected a list of pitches", node.Line, scale.ErrInvalidPitch)
	}

	ps, err := scale.ParsePitches(words)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*p = ps

	return nil
}

// Recorder receives the outcome of every section solve. Implementations must
// be safe for concurrent use.
type Recorder interface {
	RecordSolve(section string, elapsed time.Duration, res *search.Result, err error)
}

// Option configures Compose.
type Option func(*composeOptions)

type composeOptions struct {
	log         *zap.Logger
	search      []search.Option
	concurrency int
	runID       string
	recorder    Recorder
}

// WithLogger sets the logger. A nil logger has no effect.
func WithLogger(log *zap.Logger) Option {
	return func(o *composeOptions) {
		if log != nil {
			o.log = log
		}
	}
}

// WithSearchOptions sets base search options. Settings in the song file
// (target, window, beats) are applied after them and win. Any observer
// installed here is shared by concurrent solves and must be safe for that.
func WithSearchOptions(opts ...search.Option) Option {
	return func(o *composeOptions) {
		o.search = append(o.search, opts...)
	}
}

// WithConcurrency overrides the song's concurrency. n < 1 has no effect.
func WithConcurrency(n int) Option {
	return func(o *composeOptions) {
		if n > 0 {
			o.concurrency = n
		}
	}
}

// WithRunID fixes the run identifier instead of generating a UUID.
func WithRunID(id string) Option {
	return func(o *composeOptions) {
		o.runID = id
	}
}

// WithRecorder installs a Recorder for per-section solve outcomes.
func WithRecorder(r Recorder) Option {
	return func(o *composeOptions) {
		o.recorder = r
	}
}

// Arrangement is the composed song: both voices in full plus where each
// section of the form landed.
type Arrangement struct {
	RunID             string      `yaml:"run_id"`
	Title             string      `yaml:"title,omitempty"`
	Key               string      `yaml:"key"`
	Cantus            []int       `yaml:"cantus,flow"`
	Counterpoint      []int       `yaml:"counterpoint,flow"`
	CantusNames       []string    `yaml:"cantus_names,flow"`
	CounterpointNames []string    `yaml:"counterpoint_names,flow"`
	Sections          []Placement `yaml:"sections"`
}

// Placement describes one form entry within the arrangement. Start and End
// index the full voices, End exclusive.
type Placement struct {
	Name      string `yaml:"name"`
	Start     int    `yaml:"start"`
	End       int    `yaml:"end"`
	Solo      bool   `yaml:"solo,omitempty"`
	Fallback  bool   `yaml:"fallback,omitempty"`
	Score     int    `yaml:"score"`
	Solutions int    `yaml:"solutions"`
	Exhausted bool   `yaml:"exhausted"`
	// Contour is the normalized DTW distance between the two voices' interval
	// contours; 0 for sections shorter than two notes.
	Contour float64 `yaml:"contour"`
}
