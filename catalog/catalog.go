// Package catalog holds display metadata for every algorithm stepviz can
// animate: name, description, complexity and typical use.
//
// The data ships embedded as YAML. Default parses it once; Load parses a
// caller-supplied document of the same shape.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

//go:embed algorithms.yaml
var embedded []byte

// Sentinel errors.
var (
	// ErrNotFound is returned by Lookup for an unknown family/key pair.
	ErrNotFound = errors.New("catalog: algorithm not found")
	// ErrInvalid wraps parse and validation failures from Load.
	ErrInvalid = errors.New("catalog: invalid document")
)

// Family groups algorithms by the generator package that runs them.
type Family string

const (
	FamilySort     Family = "sort"
	FamilySearch   Family = "search"
	FamilyPathfind Family = "pathfind"
	FamilyGraph    Family = "graph"
)

// Families returns every family in presentation order.
func Families() []Family {
	return []Family{FamilySort, FamilySearch, FamilyPathfind, FamilyGraph}
}

// Complexity describes asymptotic cost in human-readable form.
type Complexity struct {
	Time  string `yaml:"time" json:"time" validate:"required"`
	Space string `yaml:"space" json:"space" validate:"required"`
	Best  string `yaml:"best" json:"best"`
	Worst string `yaml:"worst" json:"worst"`
}

// Entry describes one algorithm.
type Entry struct {
	Key         string     `yaml:"key" json:"key" validate:"required"`
	Family      Family     `yaml:"family" json:"family" validate:"required,oneof=sort search pathfind graph"`
	Name        string     `yaml:"name" json:"name" validate:"required"`
	Description string     `yaml:"description" json:"description" validate:"required"`
	Complexity  Complexity `yaml:"complexity" json:"complexity"`
	UseCase     string     `yaml:"use_case" json:"useCase"`
}

type document struct {
	Algorithms []Entry `yaml:"algorithms" validate:"required,min=1,dive"`
}

var validate = validator.New()

// Catalog is an immutable, ordered set of entries.
type Catalog struct {
	entries []Entry
	index   map[Family]map[string]int
}

// Load parses and validates a YAML catalog document.
// Duplicate family/key pairs are rejected.
func Load(data []byte) (*Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if err := validate.Struct(doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	c := &Catalog{entries: doc.Algorithms, index: make(map[Family]map[string]int)}
	for i, e := range c.entries {
		if c.index[e.Family] == nil {
			c.index[e.Family] = make(map[string]int)
		}
		if _, dup := c.index[e.Family][e.Key]; dup {
			return nil, fmt.Errorf("%w: duplicate %s/%s", ErrInvalid, e.Family, e.Key)
		}
		c.index[e.Family][e.Key] = i
	}

	return c, nil
}

var defaultCatalog = sync.OnceValue(func() *Catalog {
	c, err := Load(embedded)
	if err != nil {
		panic(err)
	}
	return c
})

// Default returns the embedded catalog.
func Default() *Catalog { return defaultCatalog() }

// All returns every entry in document order.
func (c *Catalog) All() []Entry { return append([]Entry(nil), c.entries...) }

// ByFamily returns the entries of one family in document order.
func (c *Catalog) ByFamily(f Family) []Entry {
	var out []Entry
	for _, e := range c.entries {
		if e.Family == f {
			out = append(out, e)
		}
	}

	return out
}

// Lookup returns the entry for key within family f.
func (c *Catalog) Lookup(f Family, key string) (Entry, error) {
	i, ok := c.index[f][key]
	if !ok {
		return Entry{}, fmt.Errorf("%w: %s/%s", ErrNotFound, f, key)
	}

	return c.entries[i], nil
}
