package sequence

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"golang.org/x/exp/slices"
)

func TestStoreNew(t *testing.T) {
	store := NewStore()
	store.New("s1")
	got, ok := store.m["s1"]
	if !ok {
		t.Fatalf("key should exist in store")
	}
	if !got.Equal(New()) {
		t.Fatalf("got %s, want []", got)
	}
}

func TestStoreAdd(t *testing.T) {
	store := NewStore()
	want := NewFromValues(testValues...)
	store.Add("s1", want)
	got, ok := store.m["s1"]
	if !ok {
		t.Fatalf("key should exist in store")
	}
	if got == want {
		t.Fatalf("pointer values should not be equal")
	}
	if !got.Equal(want) {
		t.Fatalf("\ngot  %s\nwant %s", got, want)
	}
}

func TestStoreDelete(t *testing.T) {
	store := NewStore()
	store.New("s1")
	store.Delete("s1")
	if _, ok := store.m["s1"]; ok {
		t.Fatalf("key should not exist in store")
	}
}

func TestStoreGet(t *testing.T) {
	store := NewStore()
	want := NewFromValues(testValues...)
	store.Add("s1", want)
	got, ok := store.Get("s1")
	if !ok {
		t.Fatalf("got %t, want true", ok)
	}
	if got == store.m["s1"] {
		t.Fatalf("pointer values should not be equal")
	}
	if !got.Equal(want) {
		t.Fatalf("\ngot  %s\nwant %s", got, want)
	}
	if _, ok = store.Get("s2"); ok {
		t.Fatalf("got %t, want false", ok)
	}
}

func TestStoreKeys(t *testing.T) {
	store := NewStore()
	store.New("k2")
	store.New("k1")
	store.New("k3")
	if got, want := store.Keys(), []string{"k1", "k2", "k3"}; !slices.Equal(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestStoreExecute(t *testing.T) {
	store := NewStore()
	store.Add("s1", NewFromValues("a", "b"))
	store.Add("s2", NewFromValues("b", "c"))
	tests := []struct {
		id        int
		statement Statement
		key       string
		want      string
	}{
		{1, Statement{Key: "s1", Type: StatementInsert, Position: 0, Value: "x"}, "s1", "[x,a,b]"},
		{2, Statement{Key: "s1", Type: StatementInsert, Position: End, Value: "y"}, "s1", "[x,a,b,y]"},
		{3, Statement{Key: "s1", Type: StatementRemove, Position: 0}, "s1", "[a,b,y]"},
		{4, Statement{Key: "s1", Type: StatementAppend, Source: "s2"}, "s1", "[a,b,y,b,c]"},
		{5, Statement{Key: "s1", Type: StatementDedup}, "s1", "[a,b,y,c]"},
		{6, Statement{Key: "s1", Type: StatementFilter, Keep: func(v string) bool { return v != "y" }}, "s1", "[a,b,c]"},
		{7, Statement{Key: "s3", Type: StatementInsert, Position: End, Value: "z", CreateIfNotExists: true}, "s3", "[z]"},
		{8, Statement{Key: "s2", Type: StatementAppend, Source: "s2"}, "s2", "[b,c,b,c]"},
	}
	for _, tt := range tests {
		if err := store.Execute(tt.statement); err != nil {
			t.Fatalf("test %d: got error %s, want error nil", tt.id, err)
		}
		x, ok := store.Get(tt.key)
		if !ok {
			t.Fatalf("test %d: key %s should exist in store", tt.id, tt.key)
		}
		if got := x.String(); got != tt.want {
			t.Fatalf("test %d: got %s, want %s", tt.id, got, tt.want)
		}
	}
	if err := store.Execute(Statement{Key: "s3", Type: StatementDelete}); err != nil {
		t.Fatalf("got error %s, want error nil", err)
	}
	if _, ok := store.Get("s3"); ok {
		t.Fatalf("key s3 should not exist in store")
	}
}

func TestStoreExecuteErrors(t *testing.T) {
	store := NewStore()
	store.Add("s1", NewFromValues("a"))
	tests := []struct {
		id        int
		statement Statement
		want      error
	}{
		{1, Statement{Key: "s1", Type: statementUnknown}, ErrUnknownStatement},
		{2, Statement{Key: "s2", Type: StatementDedup}, ErrKeyNotFound},
		{3, Statement{Key: "s1", Type: StatementInsert, Position: 2}, ErrOutOfRange},
		{4, Statement{Key: "s1", Type: StatementInsert, Position: -2}, ErrOutOfRange},
		{5, Statement{Key: "s1", Type: StatementRemove, Position: 1}, ErrOutOfRange},
		{6, Statement{Key: "s1", Type: StatementRemove, Position: End}, ErrOutOfRange},
		{7, Statement{Key: "s1", Type: StatementAppend, Source: "s2"}, ErrKeyNotFound},
		{8, Statement{Key: "s1", Type: StatementFilter}, ErrNilArgument},
		{9, Statement{Key: "s2", Type: StatementDelete, CreateIfNotExists: true}, ErrKeyNotFound},
	}
	for _, tt := range tests {
		if err := store.Execute(tt.statement); !errors.Is(err, tt.want) {
			t.Fatalf("test %d: got %v, want %v", tt.id, err, tt.want)
		}
	}
	x, _ := store.Get("s1")
	if got := x.String(); got != "[a]" {
		t.Fatalf("got %s, want [a]", got)
	}
	if _, ok := store.Get("s2"); ok {
		t.Fatalf("key s2 should not exist in store")
	}
}

func TestStoreExecuteFailureCreatesNothing(t *testing.T) {
	store := NewStore()
	tests := []struct {
		id        int
		statement Statement
		want      error
	}{
		{1, Statement{Key: "t", Type: StatementAppend, Source: "missing", CreateIfNotExists: true}, ErrKeyNotFound},
		{2, Statement{Key: "t", Type: StatementRemove, Position: 0, CreateIfNotExists: true}, ErrOutOfRange},
		{3, Statement{Key: "t", Type: StatementInsert, Position: 1, CreateIfNotExists: true}, ErrOutOfRange},
		{4, Statement{Key: "t", Type: StatementFilter, CreateIfNotExists: true}, ErrNilArgument},
	}
	for _, tt := range tests {
		if err := store.Execute(tt.statement); !errors.Is(err, tt.want) {
			t.Fatalf("test %d: got %v, want %v", tt.id, err, tt.want)
		}
		if _, ok := store.Get("t"); ok {
			t.Fatalf("test %d: key t should not exist in store", tt.id)
		}
	}
	if err := store.Execute(Statement{Key: "t", Type: StatementAppend, Source: "t", CreateIfNotExists: true}); err != nil {
		t.Fatalf("got error %s, want error nil", err)
	}
	if _, ok := store.Get("t"); !ok {
		t.Fatalf("key t should exist in store")
	}
}

func TestStoreAddNil(t *testing.T) {
	store := NewStore()
	if err := recoverError(func() { store.Add("s1", nil) }); !errors.Is(err, ErrNilArgument) {
		t.Fatalf("got %v, want %v", err, ErrNilArgument)
	}
	if _, ok := store.Get("s1"); ok {
		t.Fatalf("key s1 should not exist in store")
	}
}

func TestStoreBatch(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	store := NewStore(WithLogger(zap.New(core)))
	statements := []Statement{
		{Key: "s1", Type: StatementInsert, Position: End, Value: "a", CreateIfNotExists: true},
		{Key: "s1", Type: StatementRemove, Position: 3},
		{Key: "s1", Type: StatementInsert, Position: End, Value: "b"},
		{Key: "s2", Type: StatementDedup},
		{Key: "s1", Type: StatementInsert, Position: End, Value: "a"},
	}
	err := store.Batch(statements)
	if err == nil {
		t.Fatalf("got error nil, want an error")
	}
	errs := multierr.Errors(err)
	if n := len(errs); n != 2 {
		t.Fatalf("got %d errors, want 2", n)
	}
	if !errors.Is(errs[0], ErrOutOfRange) || !errors.Is(errs[1], ErrKeyNotFound) {
		t.Fatalf("got %v", errs)
	}
	for i, idx := range []int{1, 3} {
		if want := fmt.Sprintf("at index %d", idx); !strings.Contains(errs[i].Error(), want) {
			t.Fatalf("error %q should mention %q", errs[i], want)
		}
	}
	if n := logs.FilterMessage("statement failed").Len(); n != 2 {
		t.Fatalf("got %d log entries, want 2", n)
	}
	x, _ := store.Get("s1")
	if got := x.String(); got != "[a,b,a]" {
		t.Fatalf("got %s, want [a,b,a]", got)
	}
	if err := store.Batch(statements[:1]); err != nil {
		t.Fatalf("got error %s, want error nil", err)
	}
}

func TestStoreConcurrentUse(t *testing.T) {
	store := NewStore()
	store.New("s1")
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = store.Execute(Statement{Key: "s1", Type: StatementInsert, Position: End, Value: fmt.Sprint(i)})
				store.Get("s1")
			}
		}(i)
	}
	wg.Wait()
	x, _ := store.Get("s1")
	if n := x.Len(); n != 800 {
		t.Fatalf("got %d, want 800", n)
	}
}
