package pawlist

import (
	"fmt"
	"strings"
)

// FormatList formats a list as a paren group like (1, "a", nil). Holes
// print as an underscore and a list nested inside itself prints as (...).
func FormatList(l *List) string {
	return formatList(l, make(map[*List]bool))
}

// FormatValue formats a single value the way it appears inside a list
func FormatValue(v Value) string {
	return formatValue(v, make(map[*List]bool))
}

func formatList(l *List, seen map[*List]bool) string {
	if l == nil || l.store.length == 0 {
		return "()"
	}
	if seen[l] {
		return "(...)"
	}
	seen[l] = true
	defer delete(seen, l)

	parts := make([]string, l.store.length)
	for i, item := range l.store.slots[:l.store.length] {
		if item == nil {
			parts[i] = "_"
			continue
		}
		parts[i] = formatValue(item, seen)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func formatValue(v Value, seen map[*List]bool) string {
	if v == nil {
		return "_"
	}
	if v.IsMissing() {
		return "missing"
	}
	obj, ok := v.(*Object)
	if !ok {
		if s, ok := v.(fmt.Stringer); ok {
			return s.String()
		}
		return fmt.Sprintf("%v", v)
	}
	switch obj.typ {
	case ObjNil:
		return "nil"
	case ObjString:
		s, _ := obj.AsString()
		escaped := strings.ReplaceAll(s, "\\", "\\\\")
		escaped = strings.ReplaceAll(escaped, "\"", "\\\"")
		return "\"" + escaped + "\""
	case ObjList:
		return formatList(obj.Contents(), seen)
	case ObjInstance:
		return fmt.Sprintf("<%s #%d>", obj.Class(), obj.id)
	default:
		return fmt.Sprintf("%v", obj.data)
	}
}
