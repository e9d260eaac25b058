package loader

import (
	"bytes"
	"context"
	"time"

	lua "github.com/yuin/gopher-lua"
)

// luaTimeout bounds how long a Lua rule file may run.
const luaTimeout = 2 * time.Second

// decodeLua runs a Lua chunk in a sandboxed state and converts the table
// it returns.
func decodeLua(source string, data []byte) (map[string]any, error) {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	defer L.Close()

	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)
	for _, name := range []string{"dofile", "loadfile", "load", "loadstring", "require"} {
		L.SetGlobal(name, lua.LNil)
	}

	ctx, cancel := context.WithTimeout(context.Background(), luaTimeout)
	defer cancel()
	L.SetContext(ctx)

	fn, err := L.Load(bytes.NewReader(data), source)
	if err != nil {
		return nil, parseError(source, err)
	}
	L.Push(fn)
	if err := L.PCall(0, 1, nil); err != nil {
		return nil, parseError(source, err)
	}

	tbl, ok := L.Get(-1).(*lua.LTable)
	if !ok {
		return nil, malformed(source, "chunk must return a table, got %s", L.Get(-1).Type())
	}
	m, ok := fromLua(tbl, make(map[*lua.LTable]bool)).(map[string]any)
	if !ok {
		return nil, malformed(source, "chunk must return a table with string keys")
	}
	return m, nil
}

// fromLua converts a Lua value to Go. Tables with keys 1..n become
// slices; other tables become maps keyed by string. A table that
// contains itself decodes as nil at the point of recursion.
func fromLua(lv lua.LValue, visited map[*lua.LTable]bool) any {
	switch v := lv.(type) {
	case lua.LBool:
		return bool(v)
	case lua.LNumber:
		return float64(v)
	case lua.LString:
		return string(v)
	case *lua.LTable:
		if visited[v] {
			return nil
		}
		visited[v] = true
		defer delete(visited, v)
		if n := v.MaxN(); n > 0 && n == countKeys(v) {
			out := make([]any, n)
			for i := 1; i <= n; i++ {
				out[i-1] = fromLua(v.RawGetInt(i), visited)
			}
			return out
		}
		out := make(map[string]any)
		v.ForEach(func(k, val lua.LValue) {
			if ks, ok := k.(lua.LString); ok {
				out[string(ks)] = fromLua(val, visited)
			}
		})
		return out
	default:
		return nil
	}
}

func countKeys(t *lua.LTable) int {
	n := 0
	t.ForEach(func(_, _ lua.LValue) { n++ })
	return n
}
