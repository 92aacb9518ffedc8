// Package testsupport holds fixture and diff helpers shared by the package
// tests.
package testsupport

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/goliatone/go-collections/pkg/config"
	"github.com/goliatone/go-collections/pkg/fields"
	"github.com/goliatone/go-collections/pkg/registry"
)

// CompareFields diffs two field structures, ignoring access predicates
// (functions are not comparable) and treating empty and nil collections as
// equal.
func CompareFields(want, got any) string {
	return cmp.Diff(want, got,
		cmpopts.IgnoreFields(fields.Field{}, "Access"),
		cmpopts.EquateEmpty(),
	)
}

// MustLoadCollections parses a collection definition fixture.
func MustLoadCollections(t *testing.T, path string) []registry.Config {
	t.Helper()

	configs, err := config.LoadFile(path)
	if err != nil {
		t.Fatalf("load collections: %v", err)
	}
	return configs
}

// MustLoadDocument reads a JSON document fixture into a map.
func MustLoadDocument(t *testing.T, path string) map[string]any {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read document: %v", err)
	}
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("unmarshal document: %v", err)
	}
	return doc
}
