package calldata

import (
	"encoding/json"
	"fmt"
	"github.com/joeycumines/go-utilpkg/jsonenc"
	"strconv"
)

// AppendJSON appends the fields to dst, as a JSON object, in field order,
// returning the extended buffer. Integer, float, boolean, and string values
// are encoded directly; anything else is marshalled via [encoding/json],
// with any marshalling error encoded as a string, in its place.
func (x *Data) AppendJSON(dst []byte) []byte {
	dst = append(dst, '{')
	for i := range x.fields {
		if i != 0 {
			dst = append(dst, ',')
		}
		dst = jsonenc.AppendString(dst, x.fields[i].name)
		dst = append(dst, ':')
		dst = appendValue(dst, x.fields[i].value)
	}
	return append(dst, '}')
}

// MarshalJSON implements [encoding/json.Marshaler], in terms of AppendJSON.
func (x *Data) MarshalJSON() ([]byte, error) {
	return x.AppendJSON(nil), nil
}

func appendValue(dst []byte, value any) []byte {
	switch value := value.(type) {
	case nil:
		dst = append(dst, `null`...)
	case bool:
		dst = strconv.AppendBool(dst, value)
	case int64:
		dst = strconv.AppendInt(dst, value, 10)
	case float64:
		dst = jsonenc.AppendFloat64(dst, value)
	case string:
		dst = jsonenc.AppendString(dst, value)
	default:
		if b, err := json.Marshal(value); err != nil {
			dst = jsonenc.AppendString(dst, fmt.Sprintf(`marshaling error: %v`, err))
		} else {
			dst = append(dst, b...)
		}
	}
	return dst
}
