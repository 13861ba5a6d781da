package tools

import (
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/roivaz/uitdb-mcp/internal/uitdb"
)

// parseParams maps tool arguments onto search parameters. Unknown arguments
// are ignored; callers pass raw upstream parameters through "params".
func parseParams(args map[string]any) (uitdb.Params, error) {
	var p uitdb.Params
	var err error

	if p.Q, err = stringArg(args, "q"); err != nil {
		return p, err
	}
	if p.Start, err = stringArg(args, "start"); err != nil {
		return p, err
	}
	if p.End, err = stringArg(args, "end"); err != nil {
		return p, err
	}
	if p.City, err = stringArg(args, "city"); err != nil {
		return p, err
	}
	if p.Limit, err = positiveIntArgument(args, "limit"); err != nil {
		return p, err
	}
	if p.Page, err = positiveIntArgument(args, "page"); err != nil {
		return p, err
	}
	if v, ok := args["embed"]; ok && v != nil {
		b, ok := v.(bool)
		if !ok {
			return p, fmt.Errorf("embed must be a boolean")
		}
		p.Embed = &b
	}
	if p.Extra, err = extraParams(args["params"]); err != nil {
		return p, err
	}
	return p, nil
}

func stringArg(args map[string]any, name string) (string, error) {
	v, ok := args[name]
	if !ok || v == nil {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%s must be a string", name)
	}
	return s, nil
}

// positiveIntArgument returns 0 when name is absent so defaults apply downstream.
func positiveIntArgument(args map[string]any, name string) (int, error) {
	v, ok := args[name]
	if !ok || v == nil {
		return 0, nil
	}
	var n int
	switch t := v.(type) {
	case float64:
		if t > math.MaxInt32 || t < math.MinInt32 {
			return 0, fmt.Errorf("%s is out of range", name)
		}
		if t != float64(int(t)) {
			return 0, fmt.Errorf("%s must be a whole number", name)
		}
		n = int(t)
	case int:
		n = t
	case string:
		parsed, err := strconv.Atoi(strings.TrimSpace(t))
		if err != nil {
			return 0, fmt.Errorf("%s must be a number", name)
		}
		n = parsed
	default:
		return 0, fmt.Errorf("%s must be a number", name)
	}
	if n <= 0 {
		return 0, fmt.Errorf("%s must be positive", name)
	}
	return n, nil
}

func extraParams(v any) (url.Values, error) {
	if v == nil {
		return nil, nil
	}
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("params must be an object")
	}
	values := url.Values{}
	for key, raw := range obj {
		switch t := raw.(type) {
		case nil:
		case []any:
			for _, item := range t {
				s, err := scalarString(key, item)
				if err != nil {
					return nil, err
				}
				values.Add(key, s)
			}
		default:
			s, err := scalarString(key, t)
			if err != nil {
				return nil, err
			}
			values.Set(key, s)
		}
	}
	return values, nil
}

func scalarString(key string, v any) (string, error) {
	switch t := v.(type) {
	case string:
		return t, nil
	case bool:
		return strconv.FormatBool(t), nil
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), nil
	case int:
		return strconv.Itoa(t), nil
	default:
		return "", fmt.Errorf("params.%s: unsupported value type %T", key, v)
	}
}
