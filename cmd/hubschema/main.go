package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/tauraamui/hubschema/pkg/catalog"
	"github.com/tauraamui/hubschema/pkg/log"
	"github.com/tauraamui/hubschema/pkg/schema"
	"github.com/tauraamui/hubschema/pkg/schemadef"
	"github.com/tauraamui/hubschema/pkg/schemafile"
)

const usage = "Usage: hubschema setup | remove-setup | validate | register | list"

type cli struct {
	resolver  schemafile.Resolver
	creator   schemafile.Creator
	destroyer schemafile.Destroyer
}

// Setup writes the default schema file and creates the catalog database.
func (c cli) Setup() (string, error) {
	log.Info("Setting up hubschema...")

	err := c.creator.Create()
	if err != nil {
		if !errors.Is(err, schemadef.ErrSchemaFileAlreadyExists) {
			return "", err
		}
		log.Error("%v", err)
	}

	err = catalog.Setup()
	if err != nil {
		if !errors.Is(err, catalog.ErrDBAlreadyExists) {
			return "", err
		}
		log.Error("%v", err)
	}

	return "Setup successful...", nil
}

func (c cli) RemoveSetup() (string, error) {
	log.Info("Removing setup for hubschema...")
	if err := c.destroyer.Destroy(); err != nil {
		log.Error("unable to delete schema file: %s", err.Error())
	}

	if err := catalog.Destroy(); err != nil {
		log.Error("unable to delete database file: %s", err.Error())
	}

	return "Removing setup successful...", nil
}

func (c cli) Validate() (string, error) {
	values, dict, err := c.resolve()
	if err != nil {
		return "", err
	}

	return describe(values.Dataset, dict), nil
}

func (c cli) Register() (string, error) {
	values, dict, err := c.resolve()
	if err != nil {
		return "", err
	}

	db, err := catalog.Connect()
	if err != nil {
		return "", err
	}
	cat := catalog.New(db)

	registered := 0
	for _, name := range dict.Names() {
		s, _ := dict.Get(name)
		id, err := cat.Register(values.Dataset, name, s)
		if err != nil {
			if errors.Is(err, schema.ErrDuplicateName) {
				log.Warn("%v", err)
				continue
			}
			return "", err
		}
		registered++
		log.Info("Registered %s as %s", name, id)
	}

	return fmt.Sprintf("Registered %d schemas for dataset %s", registered, values.Dataset), nil
}

func (c cli) List() (string, error) {
	values, err := c.resolver.Resolve()
	if err != nil {
		return "", err
	}

	db, err := catalog.Connect()
	if err != nil {
		return "", err
	}

	dict, err := catalog.New(db).List(values.Dataset)
	if err != nil {
		return "", err
	}

	return describe(values.Dataset, dict), nil
}

func (c cli) resolve() (schemadef.Values, *schema.Dict, error) {
	values, err := c.resolver.Resolve()
	if err != nil {
		return schemadef.Values{}, nil, err
	}

	dict, err := values.Build()
	if err != nil {
		return schemadef.Values{}, nil, err
	}
	return values, dict, nil
}

func describe(dataset string, dict *schema.Dict) string {
	sb := strings.Builder{}
	sb.WriteString(fmt.Sprintf("Dataset %s:", dataset))
	for _, name := range dict.Names() {
		s, _ := dict.Get(name)
		sb.WriteString(fmt.Sprintf("\n  %s: %s", name, s))
	}
	return sb.String()
}

func (c cli) Manage(args []string) (string, error) {
	if len(args) == 0 {
		return usage, nil
	}

	switch args[0] {
	case "setup":
		return c.Setup()
	case "remove-setup":
		return c.RemoveSetup()
	case "validate":
		return c.Validate()
	case "register":
		return c.Register()
	case "list":
		return c.List()
	default:
		return usage, nil
	}
}

func init() {
	log.SetLevel(os.Getenv("HUB_SCHEMA_LOGGING_LEVEL"))
}

func main() {
	c := cli{
		resolver:  schemafile.DefaultResolver(),
		creator:   schemafile.DefaultCreator(),
		destroyer: schemafile.DefaultDestroyer(),
	}

	status, err := c.Manage(os.Args[1:])
	if err != nil {
		log.Error("%v", err)
		os.Exit(1)
	}

	fmt.Println(status)
}
