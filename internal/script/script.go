// Package script loads seqctl scripts: YAML files describing the logging
// setup, the initial named sequences and the steps to run against them.
package script

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/geofduf/string-sequence/internal/logger"
	"github.com/geofduf/string-sequence/sequence"
)

// Step operations.
const (
	OpInsert = "insert"
	OpRemove = "remove"
	OpAppend = "append"
	OpFilter = "filter"
	OpDedup  = "dedup"
	OpDelete = "delete"
)

// Filter matchers.
const (
	MatchEquals    = "equals"
	MatchNotEquals = "not_equals"
	MatchPrefix    = "prefix"
	MatchSuffix    = "suffix"
	MatchContains  = "contains"
)

var ops = map[string]uint8{
	OpInsert: sequence.StatementInsert,
	OpRemove: sequence.StatementRemove,
	OpAppend: sequence.StatementAppend,
	OpFilter: sequence.StatementFilter,
	OpDedup:  sequence.StatementDedup,
	OpDelete: sequence.StatementDelete,
}

type (
	// Script is the decoded content of a script file.
	Script struct {
		Logging   logger.Config       `yaml:"logging"`
		Sequences map[string][]string `yaml:"sequences"`
		Steps     []Step              `yaml:"steps"`
	}

	// Step is one operation on a named sequence. Position is required by
	// remove; an insert without position appends.
	Step struct {
		Key      string `yaml:"key"`
		Op       string `yaml:"op"`
		Position *int   `yaml:"position"`
		Value    string `yaml:"value"`
		Source   string `yaml:"source"`
		Match    string `yaml:"match"`
		Negate   bool   `yaml:"negate"`
		Create   bool   `yaml:"create"`
	}
)

// Load reads and decodes the script at path, then checks every step.
func Load(path string) (*Script, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "can't open script file")
	}
	defer f.Close()

	s := Script{Logging: logger.DefaultConfig()}
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return nil, errors.Wrap(err, "can't decode script file")
	}

	if _, err := s.Statements(); err != nil {
		return nil, err
	}

	return &s, nil
}

// Statements translates the steps into store statements.
func (s *Script) Statements() ([]sequence.Statement, error) {
	statements := make([]sequence.Statement, 0, len(s.Steps))
	for i, step := range s.Steps {
		st, err := step.statement()
		if err != nil {
			return nil, errors.WithMessagef(err, "step %d", i)
		}
		statements = append(statements, st)
	}
	return statements, nil
}

// Seed adds the initial sequences of the script to store.
func (s *Script) Seed(store *sequence.Store) {
	for key, values := range s.Sequences {
		store.Add(key, sequence.NewFromValues(values...))
	}
}

func (st Step) statement() (sequence.Statement, error) {
	if st.Key == "" {
		return sequence.Statement{}, errors.New("missing key")
	}

	typ, ok := ops[st.Op]
	if !ok {
		return sequence.Statement{}, errors.Errorf("unknown op %q", st.Op)
	}

	statement := sequence.Statement{
		Key:               st.Key,
		Type:              typ,
		Position:          sequence.End,
		Value:             st.Value,
		Source:            st.Source,
		CreateIfNotExists: st.Create,
	}

	if st.Position != nil {
		if *st.Position < 0 {
			return sequence.Statement{}, errors.Errorf("negative position %d", *st.Position)
		}
		statement.Position = *st.Position
	}

	switch st.Op {
	case OpRemove:
		if st.Position == nil {
			return sequence.Statement{}, errors.New("remove requires a position")
		}
	case OpAppend:
		if st.Source == "" {
			return sequence.Statement{}, errors.New("append requires a source")
		}
	case OpFilter:
		keep, err := matcher(st.Match, st.Value)
		if err != nil {
			return sequence.Statement{}, err
		}
		if st.Negate {
			statement.Keep = func(v string) bool { return !keep(v) }
		} else {
			statement.Keep = keep
		}
	}

	return statement, nil
}

func matcher(match, value string) (func(string) bool, error) {
	switch match {
	case MatchEquals:
		return func(v string) bool { return v == value }, nil
	case MatchNotEquals:
		return func(v string) bool { return v != value }, nil
	case MatchPrefix:
		return func(v string) bool { return strings.HasPrefix(v, value) }, nil
	case MatchSuffix:
		return func(v string) bool { return strings.HasSuffix(v, value) }, nil
	case MatchContains:
		return func(v string) bool { return strings.Contains(v, value) }, nil
	}
	return nil, errors.Errorf("unknown match %q", match)
}
