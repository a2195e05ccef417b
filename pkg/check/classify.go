package check

import (
	"math"
	"math/big"
	"reflect"
	"strings"
)

// Tag identifies the classified runtime type of a value.
type Tag string

// The closed set of tags Classify can return.
const (
	TagArray    Tag = "array"
	TagNaN      Tag = "NaN"
	TagNull     Tag = "null"
	TagString   Tag = "string"
	TagNumber   Tag = "number"
	TagBigInt   Tag = "bigint"
	TagBoolean  Tag = "boolean"
	TagFunction Tag = "function"
	TagObject   Tag = "object"
)

// Classify returns the Tag describing the runtime type of value. Arrays are
// detected ahead of objects, NaN ahead of numbers and nil (including typed
// nil pointers, maps and channels) ahead of objects.
func Classify(value any) Tag {
	if value == nil {
		return TagNull
	}
	if _, ok := value.(*big.Int); ok {
		return TagBigInt
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return TagArray
	case reflect.String:
		return TagString
	case reflect.Bool:
		return TagBoolean
	case reflect.Func:
		if rv.IsNil() {
			return TagNull
		}
		return TagFunction
	case reflect.Float32, reflect.Float64:
		if math.IsNaN(rv.Float()) {
			return TagNaN
		}
		return TagNumber
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return TagNumber
	case reflect.Pointer, reflect.Map, reflect.Chan, reflect.Interface:
		if rv.IsNil() {
			return TagNull
		}
		return TagObject
	default:
		return TagObject
	}
}

// Article returns the indefinite article for word: "an" when the first
// character is a vowel, "a" otherwise. Deliberately not linguistically
// complete; there is no exception list.
func Article(word string) string {
	if word == "" {
		return "a"
	}
	if strings.ContainsRune("aeiouAEIOU", rune(word[0])) {
		return "an"
	}
	return "a"
}

// Enumerate joins words with ", " and replaces the final separator with
// " or ", e.g. ["x","y","z"] becomes "x, y or z". A single word is returned
// bare.
func Enumerate(words ...string) string {
	if len(words) <= 1 {
		return strings.Join(words, "")
	}
	return strings.Join(words[:len(words)-1], ", ") + " or " + words[len(words)-1]
}
