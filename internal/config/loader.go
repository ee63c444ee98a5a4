package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/bindflow/bindflow/internal/bind"
	"github.com/bindflow/bindflow/internal/bind/token"
)

// Format identifies a declaration file format.
type Format int

const (
	FormatYAML Format = iota
	FormatTOML
	FormatJSON
)

// File is a loaded binding declaration document. Each entry of
// Bindings is an independent declaration stream in the surface syntax;
// options set in one entry never leak into the next.
type File struct {
	// DWIM enables positional inference for every stream in the file.
	DWIM bool `yaml:"dwim" toml:"dwim" json:"dwim"`

	// Strict makes unmatched positional runs a hard error.
	Strict bool `yaml:"strict" toml:"strict" json:"strict"`

	// Bindings are declaration streams, parsed in document order.
	Bindings []string `yaml:"bindings" toml:"bindings" json:"bindings"`
}

// Load reads a declaration file, picking the format from the
// extension: .yaml/.yml, .toml or .json.
func Load(path string) (*File, error) {
	format, err := formatForPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening declaration file: %w", err)
	}
	defer f.Close()

	file, err := LoadReader(f, format)
	if err != nil {
		var perr *ParseError
		if errors.As(err, &perr) {
			perr.Path = path
		}
		return nil, err
	}
	return file, nil
}

// LoadReader reads a declaration document from a reader.
func LoadReader(r io.Reader, format Format) (*File, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading declaration file: %w", err)
	}

	var file File
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &file)
	case FormatTOML:
		err = toml.Unmarshal(data, &file)
	case FormatJSON:
		err = json.Unmarshal(data, &file)
	default:
		return nil, ErrUnknownFormat
	}
	if err != nil {
		return nil, &ParseError{Path: "<reader>", Message: err.Error(), Err: err}
	}
	return &file, nil
}

// Parser builds a stream parser configured by the file's flags.
func (f *File) Parser() *bind.Parser {
	return bind.New().WithDWIM(f.DWIM).WithStrict(f.Strict)
}

// Tokens lexes every declaration stream into one combined stream.
// Streams are joined with reset separators so defaults stay scoped to
// the entry that set them.
func (f *File) Tokens() ([]token.Token, error) {
	var toks []token.Token
	for i, src := range f.Bindings {
		entry, err := token.Lex(src)
		if err != nil {
			return nil, fmt.Errorf("bindings entry %d: %w", i, err)
		}
		if len(toks) > 0 {
			toks = append(toks, token.Reset())
		}
		toks = append(toks, entry...)
	}
	return toks, nil
}

// Groups parses the file's declarations into resolved groups.
func (f *File) Groups() ([]bind.Group, error) {
	toks, err := f.Tokens()
	if err != nil {
		return nil, err
	}
	return f.Parser().ParseAll(toks)
}

// EmitTo parses the file and installs every group.
func (f *File) EmitTo(inst bind.Installer) error {
	toks, err := f.Tokens()
	if err != nil {
		return err
	}
	return f.Parser().Emit(inst, toks)
}

// formatForPath maps a file extension to its Format.
func formatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}
}
