package catalog

import (
	"embed"
	"fmt"
	"sync"
)

//go:embed data/sales_flow.yaml
var dataFS embed.FS

var (
	loadOnce sync.Once
	loaded   *Catalog
	loadErr  error
)

// Load parses the embedded sales script. The catalog is parsed once and
// shared; it is immutable after loading.
func Load() (*Catalog, error) {
	loadOnce.Do(func() {
		data, err := dataFS.ReadFile("data/sales_flow.yaml")
		if err != nil {
			loadErr = fmt.Errorf("reading embedded script: %w", err)
			return
		}
		loaded, loadErr = Parse(data)
	})
	return loaded, loadErr
}

// MustLoad is Load for callers where a broken embedded script is fatal.
func MustLoad() *Catalog {
	c, err := Load()
	if err != nil {
		panic(err)
	}
	return c
}
