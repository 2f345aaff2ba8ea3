package geojson

import (
	"encoding/json"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/katalvlaran/indoornav/core"
)

// props reads loosely typed feature properties.
type props map[string]interface{}

func (p props) str(key, def string) string {
	switch v := p[key].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case json.Number:
		return v.String()
	case nil:
		return def
	default:
		return fmt.Sprint(v)
	}
}

func (p props) floatPtr(key string) *float64 {
	var f float64
	switch v := p[key].(type) {
	case float64:
		f = v
	case int:
		f = float64(v)
	case json.Number:
		n, err := v.Float64()
		if err != nil {
			return nil
		}
		f = n
	case string:
		n, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return nil
		}
		f = n
	default:
		return nil
	}

	return &f
}

func (p props) float(key string, def float64) float64 {
	if f := p.floatPtr(key); f != nil {
		return *f
	}

	return def
}

func (p props) intPtr(key string) *int {
	f := p.floatPtr(key)
	if f == nil {
		return nil
	}
	n := int(*f)

	return &n
}

func (p props) int(key string, def int) int {
	if n := p.intPtr(key); n != nil {
		return *n
	}

	return def
}

func (p props) boolPtr(key string) *bool {
	var b bool
	switch v := p[key].(type) {
	case bool:
		b = v
	case string:
		parsed, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return nil
		}
		b = parsed
	case float64:
		b = v != 0
	default:
		return nil
	}

	return &b
}

// extra returns the properties not named in known, or nil.
func (p props) extra(known ...string) core.Attributes {
	var out core.Attributes
	for k, v := range p {
		if slices.Contains(known, k) {
			continue
		}
		if out == nil {
			out = make(core.Attributes)
		}
		out[k] = v
	}

	return out
}
