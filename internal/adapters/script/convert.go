package script

import (
	"go.starlark.net/starlark"
	"go.starlark.net/starlarkstruct"
	"go.trai.ch/mcvm/internal/core/domain"
	"go.trai.ch/zerr"
)

// inputStruct exposes the evaluation input to evaluate(input).
func inputStruct(in *domain.EvalInput) *starlarkstruct.Struct {
	c := in.Constants
	if c == nil {
		c = &domain.EvalConstants{}
	}
	return starlarkstruct.FromStringDict(starlarkstruct.Default, starlark.StringDict{
		"version":       starlark.String(c.Version),
		"versions":      stringList(c.Versions),
		"modloader":     starlark.String(c.Modloader),
		"plugin_loader": starlark.String(c.PluginLoader),
		"os":            starlark.String(c.OS),
		"language":      starlark.String(c.Language),
		"side":          starlark.String(in.Params.Side),
		"features":      stringList(in.Params.Features),
		"stability":     starlark.String(in.Params.Stability),
		"permissions":   starlark.String(in.Params.Permissions),
		"worlds":        stringList(in.Params.Worlds),
	})
}

func stringList(s []string) *starlark.List {
	elems := make([]starlark.Value, len(s))
	for i, v := range s {
		elems[i] = starlark.String(v)
	}
	return starlark.NewList(elems)
}

// fromStarlarkValue converts a Starlark value to plain Go data.
func fromStarlarkValue(v starlark.Value) (any, error) {
	switch val := v.(type) {
	case starlark.NoneType:
		return nil, nil
	case starlark.Bool:
		return bool(val), nil
	case starlark.Int:
		i, ok := val.Int64()
		if !ok {
			return nil, zerr.New("integer too large")
		}
		return i, nil
	case starlark.Float:
		return float64(val), nil
	case starlark.String:
		return string(val), nil
	case *starlark.List:
		return fromIterable(val, val.Len())
	case starlark.Tuple:
		return fromIterable(val, val.Len())
	case *starlark.Dict:
		dict := make(map[string]any, val.Len())
		for _, item := range val.Items() {
			key, ok := item[0].(starlark.String)
			if !ok {
				return nil, zerr.With(zerr.New("dict key must be a string"), "key", item[0].String())
			}
			value, err := fromStarlarkValue(item[1])
			if err != nil {
				return nil, err
			}
			dict[string(key)] = value
		}
		return dict, nil
	case *starlarkstruct.Struct:
		dict := make(map[string]any)
		for _, name := range val.AttrNames() {
			attr, err := val.Attr(name)
			if err != nil {
				return nil, err
			}
			value, err := fromStarlarkValue(attr)
			if err != nil {
				return nil, err
			}
			dict[name] = value
		}
		return dict, nil
	default:
		return nil, zerr.With(zerr.New("unsupported script value"), "type", v.Type())
	}
}

func fromIterable(it starlark.Indexable, n int) ([]any, error) {
	list := make([]any, n)
	for i := range n {
		item, err := fromStarlarkValue(it.Index(i))
		if err != nil {
			return nil, err
		}
		list[i] = item
	}
	return list, nil
}
