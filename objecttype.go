package pawlist

import "strings"

// ObjectType identifies the type of a heap object
type ObjectType int

const (
	ObjNone ObjectType = iota // Zero value - invalid/no object
	ObjNil
	ObjBool
	ObjInt
	ObjFloat
	ObjString
	ObjList
	ObjInstance
)

// String returns the string representation of an ObjectType
func (t ObjectType) String() string {
	switch t {
	case ObjNone:
		return "none"
	case ObjNil:
		return "nil"
	case ObjBool:
		return "bool"
	case ObjInt:
		return "int"
	case ObjFloat:
		return "float"
	case ObjString:
		return "string"
	case ObjList:
		return "list"
	case ObjInstance:
		return "instance"
	default:
		return "unknown"
	}
}

// ObjectTypeFromString converts a string to ObjectType
func ObjectTypeFromString(s string) ObjectType {
	switch strings.ToLower(s) {
	case "nil":
		return ObjNil
	case "bool", "boolean":
		return ObjBool
	case "int", "integer":
		return ObjInt
	case "float", "number":
		return ObjFloat
	case "string", "str":
		return ObjString
	case "list":
		return ObjList
	case "instance", "object":
		return ObjInstance
	default:
		return ObjNone
	}
}
