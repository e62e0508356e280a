// Package catalog persists schema descriptors per dataset in a sqlite
// database, so that datasets can recover how their samples were described.
package catalog

import (
	"errors"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/mattn/go-sqlite3"
	"github.com/tauraamui/hubschema/pkg/catalog/models"
	"github.com/tauraamui/hubschema/pkg/catalog/repos"
	"github.com/tauraamui/hubschema/pkg/log"
	"github.com/tauraamui/hubschema/pkg/schema"
	"github.com/tauraamui/hubschema/pkg/schemadef"
	"github.com/tauraamui/xerror"
)

var ErrNotFound = repos.ErrDescriptorNotFound

type Catalog struct {
	repo repos.DescriptorRepository
}

func New(db repos.GormWrapper) *Catalog {
	return &Catalog{repo: repos.DescriptorRepository{DB: db}}
}

// Register stores s under name for the dataset and returns the
// descriptor's generated UUID.
func (c *Catalog) Register(dataset, name string, s schema.Schema) (string, error) {
	if len(strings.TrimSpace(dataset)) == 0 {
		return "", xerror.Errorf("%w: dataset name must not be blank", schema.ErrInvalidName).AsKind(schema.InvalidName)
	}
	if len(strings.TrimSpace(name)) == 0 {
		return "", xerror.Errorf("%w: schema name must not be blank", schema.ErrInvalidName).AsKind(schema.InvalidName)
	}

	_, err := c.repo.FindByName(dataset, name)
	if err == nil {
		return "", alreadyRegistered(dataset, name)
	}
	if !errors.Is(err, repos.ErrDescriptorNotFound) {
		return "", err
	}

	definition, err := sonic.Marshal(schemadef.FromSchema(name, s))
	if err != nil {
		return "", xerror.Errorf("unable to encode schema %s: %w", name, err)
	}

	descriptor := models.Descriptor{
		Dataset:    dataset,
		Name:       name,
		Kind:       string(s.Kind()),
		Definition: string(definition),
	}
	if err := c.repo.Create(&descriptor); err != nil {
		if isUniqueViolation(err) {
			return "", alreadyRegistered(dataset, name)
		}
		return "", xerror.Errorf("unable to register schema %s: %w", name, err)
	}

	log.Debug("Registered %s for dataset %s as %s", s, dataset, descriptor.UUID)
	return descriptor.UUID, nil
}

func (c *Catalog) Lookup(dataset, name string) (schema.Schema, error) {
	descriptor, err := c.repo.FindByName(dataset, name)
	if err != nil {
		return nil, err
	}
	return decode(descriptor)
}

func (c *Catalog) LookupByUUID(uuid string) (schema.Schema, error) {
	descriptor, err := c.repo.FindByUUID(uuid)
	if err != nil {
		return nil, err
	}
	return decode(descriptor)
}

// List rebuilds every schema registered for dataset, in registration order.
func (c *Catalog) List(dataset string) (*schema.Dict, error) {
	descriptors, err := c.repo.FindByDataset(dataset)
	if err != nil {
		return nil, err
	}

	dict := schema.NewDict()
	for _, descriptor := range descriptors {
		s, err := decode(descriptor)
		if err != nil {
			return nil, err
		}
		if err := dict.Add(descriptor.Name, s); err != nil {
			return nil, err
		}
	}
	return dict, nil
}

func alreadyRegistered(dataset, name string) error {
	return xerror.Errorf(
		"%w: %s is already registered for dataset %s", schema.ErrDuplicateName, name, dataset,
	).AsKind(schema.DuplicateName)
}

// isUniqueViolation reports whether err came from a concurrent insert
// losing the race on the dataset/name unique index.
func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	return errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
}

func decode(descriptor models.Descriptor) (schema.Schema, error) {
	def := schemadef.TensorDef{}
	if err := sonic.UnmarshalString(descriptor.Definition, &def); err != nil {
		return nil, xerror.Errorf("unable to decode descriptor %s: %w", descriptor.UUID, err)
	}
	return def.Build()
}
