package jsontree

import (
	"fmt"

	"github.com/valyala/fastjson"
)

// Parse builds a Node tree from raw JSON. Object key order and number
// formatting are taken verbatim from the input.
func Parse(data []byte) (Node, error) {
	var parser fastjson.Parser
	value, err := parser.ParseBytes(data)
	if err != nil {
		return nil, err
	}
	return convert(value)
}

func convert(value *fastjson.Value) (Node, error) {
	switch value.Type() {
	case fastjson.TypeObject:
		obj, err := value.Object()
		if err != nil {
			return nil, err
		}

		entries := make([]objectEntry, 0)
		obj.Visit(func(key []byte, v *fastjson.Value) {
			child, convErr := convert(v)
			if convErr != nil {
				err = convErr
				return
			}
			entries = append(entries, objectEntry{key: string(key), value: child})
		})
		if err != nil {
			return nil, err
		}

		return &objectNode{entries: entries}, nil
	case fastjson.TypeArray:
		values, err := value.Array()
		if err != nil {
			return nil, err
		}

		nodes := make([]Node, 0, len(values))
		for _, item := range values {
			child, convErr := convert(item)
			if convErr != nil {
				return nil, convErr
			}
			nodes = append(nodes, child)
		}

		return &arrayNode{values: nodes}, nil
	case fastjson.TypeString:
		return &valueNode{kind: kindString, str: string(value.GetStringBytes())}, nil
	case fastjson.TypeNumber:
		return &valueNode{kind: kindNumber, num: value.String()}, nil
	case fastjson.TypeTrue:
		return &valueNode{kind: kindBool, b: true}, nil
	case fastjson.TypeFalse:
		return &valueNode{kind: kindBool, b: false}, nil
	case fastjson.TypeNull:
		return &valueNode{kind: kindNull}, nil
	default:
		return nil, fmt.Errorf("unexpected fastjson type %v", value.Type())
	}
}
