// Package catalog contiene la configuración estática del directorio de equipos
// (unidad → líder → miembros) y el catálogo de menús por proveedor.
// Se construye una sola vez al arrancar el proceso y nunca se muta: cualquier
// cambio de datos implica un redeploy (o un nuevo archivo vía CATALOG_PATH).
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

// Leader un líder y sus miembros, en orden de declaración.
type Leader struct {
	Name    string   `json:"name"`
	Members []string `json:"members"`
}

// Unit una unidad organizacional (DOC) con sus líderes en orden.
type Unit struct {
	Name    string   `json:"name"`
	Leaders []Leader `json:"leaders"`
}

// Directory el directorio completo de unidades. El orden de las unidades
// determina el orden de las hojas por-unidad en el reporte resumen.
type Directory struct {
	Units []Unit `json:"units"`
}

// Vendor un proveedor y su lista ordenada de ítems de menú.
type Vendor struct {
	Name  string   `json:"name"`
	Items []string `json:"items"`
}

// MenuCatalog el catálogo de menús por proveedor.
type MenuCatalog struct {
	Vendors []Vendor `json:"vendors"`
}

// Catalog agrupa directorio y menús; es lo que se inyecta a handlers y reportes.
type Catalog struct {
	Directory Directory   `json:"directory"`
	Menu      MenuCatalog `json:"menu"`
}

// UnitNames nombres de unidad en orden de declaración.
func (d Directory) UnitNames() []string {
	names := make([]string, 0, len(d.Units))
	for _, u := range d.Units {
		names = append(names, u.Name)
	}
	return names
}

// AllItems unión ordenada alfabéticamente de los ítems de todos los proveedores.
// Es el conjunto canónico de columnas del reporte pivote.
func (m MenuCatalog) AllItems() []string {
	seen := make(map[string]bool)
	for _, v := range m.Vendors {
		for _, it := range v.Items {
			seen[it] = true
		}
	}
	items := make([]string, 0, len(seen))
	for it := range seen {
		items = append(items, it)
	}
	sort.Strings(items)
	return items
}

// ItemsByVendor mapa proveedor → ítems, para poblar el formulario de pedido.
func (m MenuCatalog) ItemsByVendor() map[string][]string {
	out := make(map[string][]string, len(m.Vendors))
	for _, v := range m.Vendors {
		out[v.Name] = v.Items
	}
	return out
}

// Load devuelve el catálogo: si path no es vacío lo lee de un archivo JSON con
// la misma forma que Default(); si es vacío usa los datos embebidos.
func Load(path string) (Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("read catalog file: %w", err)
	}
	var c Catalog
	if err := json.Unmarshal(data, &c); err != nil {
		return Catalog{}, fmt.Errorf("parse catalog file: %w", err)
	}
	if len(c.Directory.Units) == 0 || len(c.Menu.Vendors) == 0 {
		return Catalog{}, fmt.Errorf("catalog file: directorio o menú vacío")
	}
	return c, nil
}
