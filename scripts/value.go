package scripts

import (
	"fmt"
	"reflect"
	"time"

	"go.starlark.net/starlark"

	"github.com/reusee/starlarkutil"
)

func ToStarlark(value any) starlark.Value {
	switch value := value.(type) {

	case nil:
		return starlark.None

	case bool:
		return starlark.Bool(value)

	case int:
		return starlark.MakeInt(value)
	case int64:
		return starlark.MakeInt64(value)
	case uint64:
		return starlark.MakeUint64(value)

	case float64:
		return starlark.Float(value)

	case string:
		return starlark.String(value)

	case []byte:
		return starlark.Bytes(value)

	case time.Duration:
		return starlark.Float(float64(value) / float64(time.Millisecond))

	case []any:
		elems := make([]starlark.Value, 0, len(value))
		for _, elem := range value {
			elems = append(elems, ToStarlark(elem))
		}
		return starlark.NewList(elems)

	case map[string]any:
		dict := starlark.NewDict(len(value))
		for key, elem := range value {
			if err := dict.SetKey(starlark.String(key), ToStarlark(elem)); err != nil {
				panic(err)
			}
		}
		return dict

	case starlark.Value:
		return value

	default:
		v := reflect.ValueOf(value)
		if v.Kind() == reflect.Func {
			return starlarkutil.MakeFunc("", value)
		}
		panic(fmt.Errorf("scripts: cannot convert %T to script value", value))
	}
}

func FromStarlark(value starlark.Value) any {
	switch value := value.(type) {

	case starlark.NoneType:
		return nil

	case starlark.Bool:
		return bool(value)

	case starlark.Int:
		if i, ok := value.Int64(); ok {
			return int(i)
		}
		return value.String()

	case starlark.Float:
		return float64(value)

	case starlark.String:
		return string(value)

	case *starlark.List:
		elems := make([]any, 0, value.Len())
		for i := 0; i < value.Len(); i++ {
			elems = append(elems, FromStarlark(value.Index(i)))
		}
		return elems

	case starlark.Tuple:
		elems := make([]any, 0, len(value))
		for _, elem := range value {
			elems = append(elems, FromStarlark(elem))
		}
		return elems

	case *starlark.Dict:
		ret := make(map[string]any, value.Len())
		for _, item := range value.Items() {
			key, ok := item[0].(starlark.String)
			if !ok {
				panic(fmt.Errorf("scripts: non-string dict key %s", item[0].Type()))
			}
			ret[string(key)] = FromStarlark(item[1])
		}
		return ret

	default:
		return value
	}
}
