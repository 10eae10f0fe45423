package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tavolagroup/resto-insights-api/internal/config"
)

func writeCatalogFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func newTestConfig(hawthornFile, richmondFile string) *config.Config {
	cfg := &config.Config{}
	cfg.Catalog.HawthornFile = hawthornFile
	cfg.Catalog.RichmondFile = richmondFile
	return cfg
}

func TestService_Load(t *testing.T) {
	dir := t.TempDir()

	hawthorn := writeCatalogFile(t, dir, "hawthorn.json", `[
		{"Id": 101, "Name": "Garlic Bread", "SalePrice": 9.50, "CostPrice": 2.10},
		{"Id": 102, "Name": "Margherita Pizza", "SalePrice": 22.00, "CostPrice": 6.80}
	]`)
	richmond := writeCatalogFile(t, dir, "richmond.json", `[
		{"Id": 101, "Name": "Bruschetta", "SalePrice": 12.00, "CostPrice": 3.40}
	]`)

	service := NewService(newTestConfig(hawthorn, richmond))
	require.NoError(t, service.Load())

	// O mesmo id de produto resolve por partição, nunca globalmente
	item, ok := service.Lookup(1, 101)
	require.True(t, ok)
	assert.Equal(t, "Garlic Bread", item.Name)
	assert.Equal(t, 9.50, item.SalePrice)

	item, ok = service.Lookup(2, 101)
	require.True(t, ok)
	assert.Equal(t, "Bruschetta", item.Name)

	_, ok = service.Lookup(1, 999)
	assert.False(t, ok)

	_, ok = service.Lookup(42, 101)
	assert.False(t, ok)

	assert.False(t, service.LoadedAt().IsZero())
}

func TestService_Load_MissingFileDegrades(t *testing.T) {
	dir := t.TempDir()

	richmond := writeCatalogFile(t, dir, "richmond.json", `[
		{"Id": 201, "Name": "Tiramisu", "SalePrice": 11.00, "CostPrice": 3.00}
	]`)

	service := NewService(newTestConfig(filepath.Join(dir, "nao-existe.json"), richmond))
	require.NoError(t, service.Load())

	// A partição ausente fica vazia, a outra segue servindo
	_, ok := service.Lookup(1, 201)
	assert.False(t, ok)

	item, ok := service.Lookup(2, 201)
	require.True(t, ok)
	assert.Equal(t, "Tiramisu", item.Name)
}

func TestService_Load_InvalidJSONDegrades(t *testing.T) {
	dir := t.TempDir()

	hawthorn := writeCatalogFile(t, dir, "hawthorn.json", `{"nao": "é um array"}`)
	richmond := writeCatalogFile(t, dir, "richmond.json", `[]`)

	service := NewService(newTestConfig(hawthorn, richmond))
	require.NoError(t, service.Load())

	assert.Zero(t, service.snapshot.Load().Size())
}

func TestService_Load_ReplacesSnapshot(t *testing.T) {
	dir := t.TempDir()

	hawthorn := writeCatalogFile(t, dir, "hawthorn.json", `[
		{"Id": 101, "Name": "Old Name", "SalePrice": 10.00, "CostPrice": 3.00}
	]`)
	richmond := writeCatalogFile(t, dir, "richmond.json", `[]`)

	service := NewService(newTestConfig(hawthorn, richmond))
	require.NoError(t, service.Load())

	item, ok := service.Lookup(1, 101)
	require.True(t, ok)
	assert.Equal(t, "Old Name", item.Name)

	writeCatalogFile(t, dir, "hawthorn.json", `[
		{"Id": 102, "Name": "New Item", "SalePrice": 15.00, "CostPrice": 4.00}
	]`)
	require.NoError(t, service.Load())

	// O snapshot antigo é substituído por inteiro: o item removido some
	_, ok = service.Lookup(1, 101)
	assert.False(t, ok)

	item, ok = service.Lookup(1, 102)
	require.True(t, ok)
	assert.Equal(t, "New Item", item.Name)
}

func TestService_LookupBeforeLoad(t *testing.T) {
	service := NewService(newTestConfig("a.json", "b.json"))

	_, ok := service.Lookup(1, 101)
	assert.False(t, ok)
}
