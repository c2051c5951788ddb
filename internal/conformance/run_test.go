package conformance

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunAll_TestdataCases(t *testing.T) {
	loader := NewDirLoader("testdata/cases")

	report, err := RunAll(loader)
	require.NoError(t, err)

	assert.NotEmpty(t, report.RunID)
	require.NotEmpty(t, report.Cases)
	for _, res := range report.Cases {
		assert.True(t, res.Pass, "case %s failed: %v", res.Name, res.Failures)
	}
	assert.True(t, report.Pass)
}

func TestRunAll_DistinctRunIDs(t *testing.T) {
	loader := NewDirLoader("testdata/cases")

	first, err := RunAll(loader)
	require.NoError(t, err)
	second, err := RunAll(loader)
	require.NoError(t, err)

	assert.NotEqual(t, first.RunID, second.RunID)
}

func TestRun_DocumentMismatchFailsCase(t *testing.T) {
	c, err := ParseCase([]byte(minimalCase))
	require.NoError(t, err)
	c.Expect.Document = `{"name":"nut"}`

	res, err := Run(c)
	require.NoError(t, err, "a mismatch is an outcome, not a run error")
	assert.False(t, res.Pass)
	require.Len(t, res.Failures, 1)
	assert.Contains(t, res.Failures[0], "document mismatch")
}

func TestRun_ExpectedErrorMatchesCode(t *testing.T) {
	c, err := ParseCase([]byte(minimalCase))
	require.NoError(t, err)
	// Flip the expectation to an error the case does not produce.
	c.Expect = ExpectSpec{Error: "INVALID_KEY"}

	res, err := Run(c)
	require.NoError(t, err)
	assert.False(t, res.Pass)
	require.Len(t, res.Failures, 1)
	assert.Contains(t, res.Failures[0], "expected error INVALID_KEY")
}

func TestRun_UnbuildableCaseIsAnError(t *testing.T) {
	c, err := ParseCase([]byte(minimalCase))
	require.NoError(t, err)
	c.Model.Fields[0].Type = "blob"

	_, err = Run(c)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown field type")
}

func TestFSLoader(t *testing.T) {
	fsys := fstest.MapFS{
		"b_case.yaml":  {Data: []byte(minimalCase)},
		"a_case.yml":   {Data: []byte(minimalCase)},
		"ignored.json": {Data: []byte("{}")},
	}
	loader := NewFSLoader(fsys)

	names, err := loader.Names()
	require.NoError(t, err)
	assert.Equal(t, []string{"a_case", "b_case"}, names, "deterministic order, yaml and yml only")

	c, err := loader.Load("a_case")
	require.NoError(t, err)
	assert.Equal(t, "minimal", c.Name)

	_, err = loader.Load("missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "case not found")
}

func TestFSLoader_MalformedCase(t *testing.T) {
	fsys := fstest.MapFS{
		"bad.yaml": {Data: []byte("name: [unclosed")},
	}
	_, err := NewFSLoader(fsys).Load("bad")
	require.Error(t, err)
}
