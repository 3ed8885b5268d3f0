package catalog_test

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/lunch-orders/pkg/catalog"
)

func TestDefault_DatosCompletos(t *testing.T) {
	c := catalog.Default()
	assert.NotEmpty(t, c.Directory.Units)
	assert.NotEmpty(t, c.Menu.Vendors)

	names := c.Directory.UnitNames()
	assert.Equal(t, "Suyogya", names[0], "el orden de declaración se conserva")
	assert.Contains(t, names, "Others")
}

func TestAllItems_UnionOrdenadaSinDuplicados(t *testing.T) {
	m := catalog.MenuCatalog{Vendors: []catalog.Vendor{
		{Name: "V1", Items: []string{"Momo Veg", "Burger Chi"}},
		{Name: "V2", Items: []string{"Momo Veg", "Khana set"}},
	}}

	items := m.AllItems()
	assert.Equal(t, []string{"Burger Chi", "Khana set", "Momo Veg"}, items)
	assert.True(t, sort.StringsAreSorted(items))
}

func TestLoad_SinPathUsaEmbebido(t *testing.T) {
	c, err := catalog.Load("")
	require.NoError(t, err)
	assert.Equal(t, catalog.Default().Directory.UnitNames(), c.Directory.UnitNames())
}

func TestLoad_DesdeArchivoJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	data := `{
		"directory": {"units": [{"name": "QA", "leaders": [{"name": "Lena", "members": ["Lena", "Mia"]}]}]},
		"menu": {"vendors": [{"name": "V1", "items": ["Dal Bhat"]}]}
	}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	c, err := catalog.Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"QA"}, c.Directory.UnitNames())
	assert.Equal(t, []string{"Dal Bhat"}, c.Menu.AllItems())
}

func TestLoad_ArchivoInvalido(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(`{no es json`), 0o600))

	_, err := catalog.Load(path)
	assert.Error(t, err)
}

func TestLoad_ArchivoVacioDeDatos(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"directory":{"units":[]},"menu":{"vendors":[]}}`), 0o600))

	_, err := catalog.Load(path)
	assert.Error(t, err, "un catálogo sin unidades o proveedores no es utilizable")
}
