package loader

import (
	lua "github.com/yuin/gopher-lua"
)

// registerAPI registers the Lua declaration constructors as globals.
func registerAPI(L *lua.LState, coll *collector) {
	// Condition "name" "identifier" is curried: Condition("name")
	// returns a function that takes the identifier.
	L.SetGlobal("Condition", L.NewFunction(func(L *lua.LState) int {
		name := L.CheckString(1)
		file := coll.file
		L.Push(L.NewFunction(func(L *lua.LState) int {
			id := L.CheckString(1)
			coll.entries = append(coll.entries, entry{name: name, id: id, file: file})
			return 0
		}))
		return 1
	}))

	// Conditions { name = "identifier", ... } is the bulk form. Hyphenated
	// names need bracket keys: ["off-guard"] = "...".
	L.SetGlobal("Conditions", L.NewFunction(func(L *lua.LState) int {
		tbl := L.CheckTable(1)
		file := coll.file
		tbl.ForEach(func(k, v lua.LValue) {
			ks, ok := k.(lua.LString)
			if !ok {
				return
			}
			vs, ok := v.(lua.LString)
			if !ok {
				return
			}
			coll.entries = append(coll.entries, entry{name: string(ks), id: string(vs), file: file})
		})
		return 0
	}))
}
