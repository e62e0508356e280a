package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matryer/is"
	"github.com/tacusci/logging/v2"
	"github.com/tauraamui/hubschema/pkg/log"
	"github.com/tauraamui/hubschema/pkg/schemadef"
)

type testResolver struct {
	values schemadef.Values
	err    error
}

func (r testResolver) Resolve() (schemadef.Values, error) {
	return r.values, r.err
}

type testCreator struct {
	err   error
	calls int
}

func (c *testCreator) Create() error {
	c.calls++
	return c.err
}

type testDestroyer struct {
	err   error
	calls int
}

func (d *testDestroyer) Destroy() error {
	d.calls++
	return d.err
}

func silenceLogging(t *testing.T) {
	existing := logging.CurrentLoggingLevel
	logging.CurrentLoggingLevel = logging.SilentLevel
	t.Cleanup(func() { logging.CurrentLoggingLevel = existing })
}

func useTempCatalog(t *testing.T) string {
	dbPath := filepath.Join(t.TempDir(), "catalog.db")
	t.Setenv("HUB_SCHEMA_DB", dbPath)
	return dbPath
}

func trafficCamValues() schemadef.Values {
	return schemadef.Values{
		Dataset: "traffic-cams",
		Schemas: []schemadef.TensorDef{
			{Name: "footage", Kind: "video"},
			{Name: "labels", Kind: "tensor", Shape: []*int{intPtr(1)}, Dtype: "int32"},
		},
	}
}

func intPtr(i int) *int {
	return &i
}

func TestManageWithoutArgsGivesUsage(t *testing.T) {
	is := is.New(t)

	status, err := cli{}.Manage(nil)
	is.NoErr(err)
	is.Equal(status, usage)

	status, err = cli{}.Manage([]string{"frobnicate"})
	is.NoErr(err)
	is.Equal(status, usage)
}

func TestValidateDescribesEverySchema(t *testing.T) {
	is := is.New(t)
	logging.CurrentLoggingLevel = logging.SilentLevel
	defer func() { logging.CurrentLoggingLevel = logging.WarnLevel }()

	c := cli{resolver: testResolver{values: schemadef.Values{
		Dataset: "traffic-cams",
		Schemas: []schemadef.TensorDef{
			{Name: "footage", Kind: "video"},
			{Name: "labels", Kind: "tensor", Shape: []*int{intPtr(1)}, Dtype: "int32"},
		},
	}}}

	status, err := c.Manage([]string{"validate"})
	is.NoErr(err)
	is.Equal(status, strings.Join([]string{
		"Dataset traffic-cams:",
		"  footage: Video(shape=(None, None, None, 3), dtype=uint8, compressor=lz4)",
		"  labels: Tensor(shape=(1), dtype=int32, compressor=lz4)",
	}, "\n"))
}

func TestValidateFailsOnInvalidVideoShape(t *testing.T) {
	is := is.New(t)

	c := cli{resolver: testResolver{values: schemadef.Values{
		Dataset: "traffic-cams",
		Schemas: []schemadef.TensorDef{
			{Name: "footage", Kind: "video", Shape: []*int{nil, nil, nil, intPtr(2)}},
		},
	}}}

	_, err := c.Manage([]string{"validate"})
	is.True(err != nil)
	is.True(strings.HasPrefix(err.Error(), "schema footage: Kind: INVALID_SHAPE | invalid shape: wrong video shape"))
}

func TestValidateForwardsResolverErrors(t *testing.T) {
	is := is.New(t)

	c := cli{resolver: testResolver{err: errors.New("no schema file")}}
	_, err := c.Manage([]string{"validate"})
	is.Equal(err.Error(), "no schema file")
}

func TestSetupCreatesSchemaFileAndCatalog(t *testing.T) {
	is := is.New(t)
	silenceLogging(t)
	dbPath := useTempCatalog(t)

	creator := &testCreator{}
	c := cli{creator: creator}

	status, err := c.Manage([]string{"setup"})
	is.NoErr(err)
	is.Equal(status, "Setup successful...")
	is.Equal(creator.calls, 1)

	_, err = os.Stat(dbPath)
	is.NoErr(err)
}

func TestSetupToleratesExistingSchemaFileAndCatalog(t *testing.T) {
	is := is.New(t)
	silenceLogging(t)
	useTempCatalog(t)

	c := cli{creator: &testCreator{err: schemadef.ErrSchemaFileAlreadyExists}}

	_, err := c.Manage([]string{"setup"})
	is.NoErr(err)
	_, err = c.Manage([]string{"setup"})
	is.NoErr(err)
}

func TestSetupFailsOnSchemaFileCreateError(t *testing.T) {
	is := is.New(t)
	silenceLogging(t)
	useTempCatalog(t)

	c := cli{creator: &testCreator{err: errors.New("read-only file system")}}

	_, err := c.Manage([]string{"setup"})
	is.Equal(err.Error(), "read-only file system")
}

func TestRemoveSetupDestroysSchemaFileAndCatalog(t *testing.T) {
	is := is.New(t)
	silenceLogging(t)
	dbPath := useTempCatalog(t)

	destroyer := &testDestroyer{err: errors.New("schema file missing")}
	c := cli{creator: &testCreator{}, destroyer: destroyer}

	_, err := c.Manage([]string{"setup"})
	is.NoErr(err)

	status, err := c.Manage([]string{"remove-setup"})
	is.NoErr(err)
	is.Equal(status, "Removing setup successful...")
	is.Equal(destroyer.calls, 1)

	_, err = os.Stat(dbPath)
	is.True(errors.Is(err, os.ErrNotExist))
}

func TestRegisterThenListCatalogSchemas(t *testing.T) {
	is := is.New(t)
	silenceLogging(t)
	useTempCatalog(t)

	c := cli{resolver: testResolver{values: trafficCamValues()}}

	status, err := c.Manage([]string{"register"})
	is.NoErr(err)
	is.Equal(status, "Registered 2 schemas for dataset traffic-cams")

	status, err = c.Manage([]string{"list"})
	is.NoErr(err)
	is.Equal(status, strings.Join([]string{
		"Dataset traffic-cams:",
		"  footage: Video(shape=(None, None, None, 3), dtype=uint8, compressor=lz4)",
		"  labels: Tensor(shape=(1), dtype=int32, compressor=lz4)",
	}, "\n"))
}

func TestRegisterSkipsAlreadyRegisteredSchemas(t *testing.T) {
	is := is.New(t)
	silenceLogging(t)
	useTempCatalog(t)

	values := trafficCamValues()
	c := cli{resolver: testResolver{values: schemadef.Values{
		Dataset: values.Dataset,
		Schemas: values.Schemas[:1],
	}}}

	_, err := c.Manage([]string{"register"})
	is.NoErr(err)

	c.resolver = testResolver{values: values}
	status, err := c.Manage([]string{"register"})
	is.NoErr(err)
	is.Equal(status, "Registered 1 schemas for dataset traffic-cams")

	status, err = c.Manage([]string{"register"})
	is.NoErr(err)
	is.Equal(status, "Registered 0 schemas for dataset traffic-cams")
}

func TestListOfUnregisteredDatasetIsEmpty(t *testing.T) {
	is := is.New(t)
	silenceLogging(t)
	useTempCatalog(t)

	c := cli{resolver: testResolver{values: trafficCamValues()}}

	status, err := c.Manage([]string{"list"})
	is.NoErr(err)
	is.Equal(status, "Dataset traffic-cams:")
}

func overloadWarnLog(overload func(string, ...interface{})) func() {
	logWarnRef := log.Warn
	log.Warn = overload
	return func() { log.Warn = logWarnRef }
}

func TestRegisterLogsSkippedSchemaNamesVerbatim(t *testing.T) {
	is := is.New(t)
	silenceLogging(t)
	useTempCatalog(t)

	var warnLogs []string
	resetLogWarn := overloadWarnLog(func(format string, a ...interface{}) {
		warnLogs = append(warnLogs, fmt.Sprintf(format, a...))
	})
	defer resetLogWarn()

	c := cli{resolver: testResolver{values: schemadef.Values{
		Dataset: "traffic-cams",
		Schemas: []schemadef.TensorDef{{Name: "100%d-footage", Kind: "video"}},
	}}}

	_, err := c.Manage([]string{"register"})
	is.NoErr(err)
	_, err = c.Manage([]string{"register"})
	is.NoErr(err)

	is.Equal(len(warnLogs), 1)
	is.True(strings.Contains(warnLogs[0], "100%d-footage is already registered for dataset traffic-cams"))
}
