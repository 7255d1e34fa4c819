package sequence

import (
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Statement types.
const (
	StatementInsert uint8 = iota
	StatementRemove
	StatementAppend
	StatementFilter
	StatementDedup
	StatementDelete
	statementUnknown
)

// End used as a Statement position inserts at the end of the sequence.
const End = -1

var statementNames = [...]string{
	StatementInsert: "insert",
	StatementRemove: "remove",
	StatementAppend: "append",
	StatementFilter: "filter",
	StatementDedup:  "dedup",
	StatementDelete: "delete",
}

// A Statement represents an operation to perform on a store.
type Statement struct {
	Key               string
	Type              uint8
	Position          int
	Value             string
	Source            string
	Keep              func(string) bool
	CreateIfNotExists bool
}

// A StoreOption configures a Store.
type StoreOption func(*Store)

// WithLogger sets the logger used by the store. By default the store does
// not log.
func WithLogger(l *zap.Logger) StoreOption {
	return func(s *Store) {
		s.logger = l
	}
}

// A Store represents a collection of Sequences. A Store can be used simultaneously
// from multiple goroutines.
type Store struct {
	m      map[string]*Sequence
	mu     sync.RWMutex
	logger *zap.Logger
}

// NewStore creates and intializes a new Store.
func NewStore(opts ...StoreOption) *Store {
	s := &Store{
		m:      make(map[string]*Sequence),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// New creates and adds a new empty Sequence to the store using key as its
// identifier. If a Sequence already exists for the identifier it is silently
// replaced with the new Sequence.
func (s *Store) New(key string) {
	s.mu.Lock()
	s.m[key] = New()
	s.mu.Unlock()
}

// Add adds a copy of x to the store using key as its identifier.
// If a Sequence already exists for the identifier it is silently replaced with the new
// Sequence. It panics if x is nil.
func (s *Store) Add(key string, x *Sequence) {
	if x == nil {
		nilArgument("add")
	}
	s.mu.Lock()
	s.m[key] = x.Clone()
	s.mu.Unlock()
}

// Delete removes the Sequence associated to key, if any.
func (s *Store) Delete(key string) {
	s.mu.Lock()
	delete(s.m, key)
	s.mu.Unlock()
}

// Get returns a copy of the Sequence associated to key. The second return value is
// true if the key exists in the store and false if not.
func (s *Store) Get(key string) (*Sequence, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	x, ok := s.m[key]
	if !ok {
		return nil, false
	}
	return x.Clone(), true
}

// Keys returns the identifiers known in the store in ascending order.
func (s *Store) Keys() []string {
	s.mu.RLock()
	keys := maps.Keys(s.m)
	s.mu.RUnlock()
	slices.Sort(keys)
	return keys
}

// Execute executes a statement against the store, returning an error if the
// statement cannot be executed.
func (s *Store) Execute(statement Statement) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.executeUnsafe(statement)
}

// Batch executes multiple statements against the store. Individual errors are non
// blocking: every statement is executed and the method returns the errors of the
// failed ones combined, each annotated with the statement index. Use
// multierr.Errors to access them individually.
func (s *Store) Batch(statements []Statement) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	var err error
	for i, v := range statements {
		if e := s.executeUnsafe(v); e != nil {
			s.logger.Warn("statement failed",
				zap.Int("index", i),
				zap.String("key", v.Key),
				zap.String("type", statementName(v.Type)),
				zap.Error(e),
			)
			err = multierr.Append(err, errors.WithMessagef(e, "at index %d", i))
		}
	}
	return err
}

// executeUnsafe executes a statement against the store, returning an error if the
// statement cannot be executed.
// This method is not goroutine-safe. The caller is responsible for properly
// acquiring / releasing the lock on the store.
func (s *Store) executeUnsafe(statement Statement) error {
	if statement.Type >= statementUnknown {
		return errors.Wrapf(ErrUnknownStatement, "type %d", statement.Type)
	}
	x, exists := s.m[statement.Key]
	if !exists {
		if !statement.CreateIfNotExists || statement.Type == StatementDelete {
			return errors.Wrap(ErrKeyNotFound, statement.Key)
		}
		x = New()
	}
	switch statement.Type {
	case StatementInsert:
		pos := statement.Position
		if pos == End {
			pos = x.Len()
		}
		if !x.slots().contains(pos) {
			return errors.Wrapf(ErrOutOfRange, "insert: position %d, length %d", pos, x.Len())
		}
		x.Insert(pos, statement.Value)
	case StatementRemove:
		if !x.elements().contains(statement.Position) {
			return errors.Wrapf(ErrOutOfRange, "remove: position %d, length %d", statement.Position, x.Len())
		}
		x.Remove(statement.Position)
	case StatementAppend:
		src, ok := s.m[statement.Source]
		if statement.Source == statement.Key {
			src, ok = x, true
		}
		if !ok {
			return errors.Wrap(ErrKeyNotFound, statement.Source)
		}
		x.Append(src)
	case StatementFilter:
		if statement.Keep == nil {
			return errors.Wrap(ErrNilArgument, "filter")
		}
		x.Filter(statement.Keep)
	case StatementDedup:
		x.RemoveDuplicates()
	case StatementDelete:
		delete(s.m, statement.Key)
	}
	// A sequence created for a missing key is only stored once the
	// statement succeeded.
	if !exists {
		s.m[statement.Key] = x
	}
	s.logger.Debug("statement executed",
		zap.String("key", statement.Key),
		zap.String("type", statementName(statement.Type)),
		zap.Int("length", x.Len()),
	)
	return nil
}

// statementName returns a human-readable name for a statement type.
func statementName(t uint8) string {
	if t >= statementUnknown {
		return "unknown"
	}
	return statementNames[t]
}
