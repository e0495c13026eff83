package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dusk-indust/userstore/registry"
)

func TestLoad_FromTestdata(t *testing.T) {
	sc, err := Load("testdata")
	require.NoError(t, err)
	require.Len(t, sc.Users, 3)

	assert.Equal(t, "Ada Lovelace", sc.Users[0].Name)
	assert.False(t, sc.Users[0].Inactive)
	assert.True(t, sc.Users[2].Inactive)
}

func TestLoad_MissingFileReturnsZeroValue(t *testing.T) {
	sc, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, sc.Users)
}

func TestLoad_MalformedYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "userstore.yml")
	require.NoError(t, os.WriteFile(path, []byte("users: [unclosed"), 0o644))

	_, err := Load(dir)
	require.Error(t, err)
}

func TestLoad_YamlExtensionFallback(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "userstore.yaml")
	require.NoError(t, os.WriteFile(path, []byte("users:\n  - name: Solo\n    email: solo@test.com\n"), 0o644))

	sc, err := Load(dir)
	require.NoError(t, err)
	require.Len(t, sc.Users, 1)
	assert.Equal(t, "Solo", sc.Users[0].Name)
}

func TestScenario_Apply(t *testing.T) {
	sc, err := Load("testdata")
	require.NoError(t, err)

	r := registry.New()
	require.NoError(t, sc.Apply(r))
	require.Equal(t, 3, r.CountUsers())

	// Creation normalizes seeds the same way as direct calls.
	ada, ok := r.GetUserByEmail("ada@example.com")
	require.True(t, ok)
	assert.Equal(t, 1, ada.ID)
	assert.Equal(t, "ada@example.com", ada.Email)

	grace, err := r.GetUser(2)
	require.NoError(t, err)
	assert.Equal(t, "Grace Hopper", grace.Name)

	active := r.ListUsers(true)
	require.Len(t, active, 2)
	assert.Equal(t, "Ada Lovelace", active[0].Name)
	assert.Equal(t, "Grace Hopper", active[1].Name)
}

func TestScenario_Apply_StopsOnInvalidSeed(t *testing.T) {
	sc := &Scenario{Users: []SeedUser{
		{Name: "Good", Email: "good@test.com"},
		{Name: "Bad", Email: "no-at-sign"},
		{Name: "Never", Email: "never@test.com"},
	}}

	r := registry.New()
	err := sc.Apply(r)
	require.Error(t, err)

	var verr *registry.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, 1, r.CountUsers())
}
