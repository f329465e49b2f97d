// Package loader loads host condition tables from Lua files. The Lua
// VM is discarded after loading; no Lua runs at conversion time.
package loader

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	lua "github.com/yuin/gopher-lua"
)

// entry is one declared condition mapping before compilation.
type entry struct {
	name string
	id   string
	file string
}

// collector accumulates Lua declarations during file execution.
type collector struct {
	entries []entry
	file    string
}

// Table maps lowercased condition names to host identifiers. Its
// Resolve method satisfies the converter's resolver contract.
type Table struct {
	ids map[string]string
}

// Resolve returns the identifier for a lowercased condition name.
func (t *Table) Resolve(name string) (string, bool) {
	id, ok := t.ids[strings.ToLower(name)]
	return id, ok
}

// Len returns the number of known conditions.
func (t *Table) Len() int { return len(t.ids) }

// Default returns a table holding only the built-in fallback mappings.
func Default() *Table {
	ids := make(map[string]string, len(fallbackIDs))
	for name, id := range fallbackIDs {
		ids[name] = id
	}
	return &Table{ids: ids}
}

// Load reads all .lua files from dir, executes them in a sandboxed VM,
// and returns the built-in table with the declared mappings merged on
// top. Declarations in later files override earlier ones.
func Load(dir string) (*Table, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading conditions directory %s: %w", dir, err)
	}

	var luaFiles []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".lua") {
			luaFiles = append(luaFiles, e.Name())
		}
	}
	if len(luaFiles) == 0 {
		return nil, fmt.Errorf("no .lua files found in %s", dir)
	}
	sort.Strings(luaFiles)

	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	defer L.Close()

	openSafeLibs(L)
	sandbox(L)

	coll := &collector{}
	registerAPI(L, coll)

	for _, f := range luaFiles {
		coll.file = f
		if err := L.DoFile(filepath.Join(dir, f)); err != nil {
			return nil, fmt.Errorf("executing %s: %w", f, err)
		}
	}

	table := Default()
	for _, e := range coll.entries {
		if err := validateEntry(e); err != nil {
			return nil, err
		}
		table.ids[strings.ToLower(e.name)] = e.id
	}
	return table, nil
}

func validateEntry(e entry) error {
	if strings.TrimSpace(e.name) == "" {
		return fmt.Errorf("%s: condition with empty name", e.file)
	}
	if strings.TrimSpace(e.id) == "" {
		return fmt.Errorf("%s: condition %q has an empty identifier", e.file, e.name)
	}
	return nil
}

// openSafeLibs opens only the safe subset of Lua standard libraries.
func openSafeLibs(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
}

// sandbox removes dangerous globals.
func sandbox(L *lua.LState) {
	dangerous := []string{
		"dofile", "loadfile", "load", "loadstring",
		"rawset", "rawget", "rawequal",
		"collectgarbage",
	}
	for _, name := range dangerous {
		L.SetGlobal(name, lua.LNil)
	}
}
