package loader

import (
	"os"
	"path/filepath"
	"testing"
)

func writeLua(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestDefault(t *testing.T) {
	table := Default()
	if table.Len() != len(fallbackIDs) {
		t.Errorf("Len() = %d, want %d", table.Len(), len(fallbackIDs))
	}
	id, ok := table.Resolve("frightened")
	if !ok || id != fallbackIDs["frightened"] {
		t.Errorf("Resolve(frightened) = %q, %v", id, ok)
	}
	if _, ok := table.Resolve("not-a-condition"); ok {
		t.Error("Resolve should fail for unknown names")
	}
}

func TestResolve_CaseInsensitive(t *testing.T) {
	table := Default()
	for _, name := range []string{"Frightened", "FRIGHTENED", "frightened"} {
		if _, ok := table.Resolve(name); !ok {
			t.Errorf("Resolve(%q) failed", name)
		}
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	writeLua(t, dir, "conditions.lua", `
Condition "frightened" "Compendium.custom.Item.AAA1"

Conditions {
	["off-guard"] = "Compendium.custom.Item.BBB2",
	prone = "Compendium.custom.Item.CCC3",
}
`)

	table, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	tests := []struct {
		name string
		want string
	}{
		{"frightened", "Compendium.custom.Item.AAA1"}, // declared entries override builtins
		{"off-guard", "Compendium.custom.Item.BBB2"},
		{"prone", "Compendium.custom.Item.CCC3"},
		{"blinded", fallbackIDs["blinded"]}, // untouched builtin survives
	}
	for _, tt := range tests {
		id, ok := table.Resolve(tt.name)
		if !ok || id != tt.want {
			t.Errorf("Resolve(%q) = %q, %v; want %q", tt.name, id, ok, tt.want)
		}
	}
}

func TestLoad_LaterFileWins(t *testing.T) {
	dir := t.TempDir()
	writeLua(t, dir, "a.lua", `Condition "prone" "Compendium.custom.Item.FIRST"`)
	writeLua(t, dir, "b.lua", `Condition "prone" "Compendium.custom.Item.SECOND"`)

	table, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if id, _ := table.Resolve("prone"); id != "Compendium.custom.Item.SECOND" {
		t.Errorf("Resolve(prone) = %q, want the later file's entry", id)
	}
}

func TestLoad_NoLuaFiles(t *testing.T) {
	if _, err := Load(t.TempDir()); err == nil {
		t.Error("expected an error for a directory without .lua files")
	}
}

func TestLoad_MissingDir(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent")); err == nil {
		t.Error("expected an error for a missing directory")
	}
}

func TestLoad_SyntaxError(t *testing.T) {
	dir := t.TempDir()
	writeLua(t, dir, "bad.lua", `Condition "x" `+"\n"+`this is not lua`)
	if _, err := Load(dir); err == nil {
		t.Error("expected an error for invalid Lua")
	}
}

func TestLoad_ValidatesEntries(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"empty name", `Condition "" "Compendium.custom.Item.X"`},
		{"empty id", `Condition "prone" ""`},
		{"blank id", `Condition "prone" "   "`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeLua(t, dir, "bad.lua", tt.body)
			if _, err := Load(dir); err == nil {
				t.Error("expected a validation error")
			}
		})
	}
}

func TestLoad_Sandboxed(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"dofile removed", `dofile("other.lua")`},
		{"loadstring removed", `loadstring("return 1")`},
		{"os missing", `os.exit(1)`},
		{"io missing", `io.open("/etc/passwd")`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeLua(t, dir, "evil.lua", tt.body)
			if _, err := Load(dir); err == nil {
				t.Error("expected the sandbox to reject the call")
			}
		})
	}
}

func TestLoad_IgnoresNonLuaFiles(t *testing.T) {
	dir := t.TempDir()
	writeLua(t, dir, "notes.txt", `Condition "prone" "Compendium.custom.Item.NOPE"`)
	writeLua(t, dir, "ok.lua", `Condition "prone" "Compendium.custom.Item.YES"`)

	table, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if id, _ := table.Resolve("prone"); id != "Compendium.custom.Item.YES" {
		t.Errorf("Resolve(prone) = %q, non-lua files must be ignored", id)
	}
}
