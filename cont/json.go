package cont

import (
	"errors"
	"fmt"

	"github.com/michaelolof/formrules/rules"

	"github.com/valyala/fastjson"
)

var (
	parserPool fastjson.ParserPool
	arenaPool  fastjson.ArenaPool
)

var ErrNotObject = errors.New("json body must be an object")

// DecodeRecord parses a JSON object into a Record. Strings stay strings, whole numbers
// that fit become int64, other numbers float64, arrays []any and nested objects Record.
func DecodeRecord(bs []byte) (rules.Record, error) {
	p := parserPool.Get()
	defer parserPool.Put(p)

	pv, err := p.ParseBytes(bs)
	if err != nil {
		return nil, err
	}
	if pv.Type() != fastjson.TypeObject {
		return nil, ErrNotObject
	}

	// Values borrowed from the parser are only valid until it goes back to the pool,
	// so the whole tree is copied out here.
	v, err := toAny(pv)
	if err != nil {
		return nil, err
	}
	return v.(rules.Record), nil
}

func toAny(v *fastjson.Value) (any, error) {
	switch v.Type() {
	case fastjson.TypeNull:
		return nil, nil
	case fastjson.TypeTrue:
		return true, nil
	case fastjson.TypeFalse:
		return false, nil
	case fastjson.TypeString:
		sb, err := v.StringBytes()
		if err != nil {
			return nil, err
		}
		return string(sb), nil
	case fastjson.TypeNumber:
		if i, err := v.Int64(); err == nil {
			return i, nil
		}
		f, err := v.Float64()
		if err != nil {
			return nil, err
		}
		return f, nil
	case fastjson.TypeArray:
		items, err := v.Array()
		if err != nil {
			return nil, err
		}
		arr := make([]any, 0, len(items))
		for _, item := range items {
			iv, err := toAny(item)
			if err != nil {
				return nil, err
			}
			arr = append(arr, iv)
		}
		return arr, nil
	case fastjson.TypeObject:
		obj, err := v.Object()
		if err != nil {
			return nil, err
		}
		rec := make(rules.Record, obj.Len())
		var verr error
		obj.Visit(func(key []byte, val *fastjson.Value) {
			if verr != nil {
				return
			}
			iv, err := toAny(val)
			if err != nil {
				verr = fmt.Errorf("%s: %w", key, err)
				return
			}
			rec[string(key)] = iv
		})
		return rec, verr
	default:
		return nil, fmt.Errorf("unsupported json type '%s'", v.Type())
	}
}

// MarshalErrors writes field messages as a JSON object in the order given by keys.
func MarshalErrors(dst []byte, keys []string, messages map[string]string) []byte {
	a := arenaPool.Get()
	defer arenaPool.Put(a)

	return errorsObject(a, keys, messages).MarshalTo(dst)
}

// MarshalResult writes {"valid":bool,"errors":{...}} with the errors object in the order
// given by keys.
func MarshalResult(dst []byte, keys []string, messages map[string]string) []byte {
	a := arenaPool.Get()
	defer arenaPool.Put(a)

	out := a.NewObject()
	if len(keys) == 0 {
		out.Set("valid", a.NewTrue())
	} else {
		out.Set("valid", a.NewFalse())
	}
	out.Set("errors", errorsObject(a, keys, messages))
	return out.MarshalTo(dst)
}

func errorsObject(a *fastjson.Arena, keys []string, messages map[string]string) *fastjson.Value {
	obj := a.NewObject()
	for _, k := range keys {
		obj.Set(k, a.NewString(messages[k]))
	}
	return obj
}
