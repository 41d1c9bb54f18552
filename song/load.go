package song

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/counterpoint/scale"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Load reads and parses a song file.
func Load(path string) (*Song, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read song %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return s, nil
}

// Parse decodes a YAML song, fills defaults (mode "major") and validates it.
// Unknown fields are rejected.
func Parse(data []byte) (*Song, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var s Song
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidSong)
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidSong, err)
	}
	if s.Mode == "" {
		s.Mode = scale.Major.String()
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	return &s, nil
}

// Validate checks field constraints, the key spelling and that every form
// and solo entry names a section.
func (s *Song) Validate() error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSong, err)
	}
	if _, err := scale.ParseKey(s.Key, s.Mode); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSong, err)
	}
	for _, name := range s.Form {
		if _, ok := s.Sections[name]; !ok {
			return fmt.Errorf("%w: form entry %q", ErrUnknownSection, name)
		}
	}
	for _, name := range s.Solo {
		if _, ok := s.Sections[name]; !ok {
			return fmt.Errorf("%w: solo entry %q", ErrUnknownSection, name)
		}
	}

	return nil
}
