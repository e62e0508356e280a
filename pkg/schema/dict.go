package schema

import (
	"fmt"
	"strings"
)

// Dict holds uniquely named schemas in the order they were added.
type Dict struct {
	names   []string
	schemas map[string]Schema
}

func NewDict() *Dict {
	return &Dict{schemas: map[string]Schema{}}
}

func (d *Dict) Add(name string, s Schema) error {
	if len(strings.TrimSpace(name)) == 0 {
		return wrapf(InvalidName, ErrInvalidName, "schema name must not be blank")
	}
	if _, exists := d.schemas[name]; exists {
		return wrapf(DuplicateName, ErrDuplicateName, "schema %s already exists", name)
	}
	d.names = append(d.names, name)
	d.schemas[name] = s
	return nil
}

func (d *Dict) Get(name string) (Schema, bool) {
	s, ok := d.schemas[name]
	return s, ok
}

func (d *Dict) Names() []string {
	names := make([]string, len(d.names))
	copy(names, d.names)
	return names
}

func (d *Dict) Len() int {
	return len(d.names)
}

func (d *Dict) String() string {
	entries := make([]string, len(d.names))
	for i, name := range d.names {
		entries[i] = fmt.Sprintf("%s: %s", name, d.schemas[name])
	}
	return "SchemaDict{" + strings.Join(entries, ", ") + "}"
}
