// Package script runs the small Starlark snippets the HUD action bar can
// bind to its slots.
package script

import (
	"fmt"

	"go.starlark.net/starlark"
)

// Run executes src with the given values predeclared as globals and
// returns the snippet's own exported globals converted back to native Go
// values. Unsupported global types are an error rather than silently
// dropped.
func Run(name, src string, globals map[string]interface{}) (map[string]interface{}, error) {
	thread := &starlark.Thread{
		Name:  name,
		Print: func(_ *starlark.Thread, msg string) { fmt.Println(msg) },
	}

	predeclared := starlark.StringDict{}
	for k, v := range globals {
		val, err := toStarlark(v)
		if err != nil {
			return nil, fmt.Errorf("global %q: %w", k, err)
		}
		predeclared[k] = val
	}

	out, err := starlark.ExecFile(thread, name, src, predeclared)
	if err != nil {
		return nil, err
	}

	result := make(map[string]interface{}, len(out))
	for k, v := range out {
		result[k] = fromStarlark(v)
	}
	return result, nil
}

func toStarlark(v interface{}) (starlark.Value, error) {
	if v == nil {
		return starlark.None, nil
	}
	switch val := v.(type) {
	case string:
		return starlark.String(val), nil
	case int:
		return starlark.MakeInt(val), nil
	case float64:
		return starlark.Float(val), nil
	case bool:
		return starlark.Bool(val), nil
	}
	return starlark.None, fmt.Errorf("unsupported type %T", v)
}

func fromStarlark(v starlark.Value) interface{} {
	switch val := v.(type) {
	case starlark.String:
		return string(val)
	case starlark.Int:
		i, _ := val.Int64()
		return int(i)
	case starlark.Float:
		return float64(val)
	case starlark.Bool:
		return bool(val)
	}
	return nil
}
