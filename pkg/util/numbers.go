package util

import (
	"reflect"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// Number is any integer or floating point kind IsNumber can validate against
type Number interface {
	constraints.Integer | constraints.Float
}

// IsNumber returns true if the whole text parses as a value of T.
//
// Leading ASCII whitespace is skipped before the numeric token, trailing characters of any kind
// (whitespace included) make the text invalid. In strict mode any whitespace anywhere rejects
// the text. The value must also fit in T, so "300" is not a valid int8.
func IsNumber[T Number](text string, strict bool) bool {
	if text == "" {
		return false
	}
	if strict && strings.ContainsAny(text, ASCIIWhitespace) {
		return false
	}
	token := TrimLeft(text)
	if token == "" {
		return false
	}

	var zero T
	typ := reflect.TypeOf(zero)
	switch typ.Kind() {
	case reflect.Float32, reflect.Float64:
		if scanFloat(token) != len(token) {
			return false
		}
		_, err := strconv.ParseFloat(token, typ.Bits())
		return err == nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if scanInteger(token, true) != len(token) {
			return false
		}
		_, err := strconv.ParseInt(token, 10, typ.Bits())
		return err == nil
	default:
		if scanInteger(token, false) != len(token) {
			return false
		}
		_, err := strconv.ParseUint(strings.TrimPrefix(token, "+"), 10, typ.Bits())
		return err == nil
	}
}

// scanInteger returns how many bytes of s form an optionally signed run of decimal digits,
// or -1 if s does not start with one
func scanInteger(s string, signed bool) int {
	i := 0
	if i < len(s) && (s[i] == '+' || (signed && s[i] == '-')) {
		i++
	}
	digits := scanDigits(s, i)
	if digits == 0 {
		return -1
	}
	return i + digits
}

// scanFloat returns how many bytes of s form a decimal floating point literal, or -1 if s does not
// start with one. An exponent without digits is not consumed.
func scanFloat(s string) int {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	mantissa := scanDigits(s, i)
	i += mantissa
	if i < len(s) && s[i] == '.' {
		i++
		fraction := scanDigits(s, i)
		i += fraction
		mantissa += fraction
	}
	if mantissa == 0 {
		return -1
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		if exponent := scanDigits(s, j); exponent > 0 {
			i = j + exponent
		}
	}
	return i
}

func scanDigits(s string, from int) int {
	n := 0
	for from+n < len(s) && s[from+n] >= '0' && s[from+n] <= '9' {
		n++
	}
	return n
}

// NumberKinds maps a numeric type name to the IsNumber instantiation for that type
var NumberKinds = map[string]func(text string, strict bool) bool{
	"int":     IsNumber[int],
	"int8":    IsNumber[int8],
	"int16":   IsNumber[int16],
	"int32":   IsNumber[int32],
	"int64":   IsNumber[int64],
	"uint":    IsNumber[uint],
	"uint8":   IsNumber[uint8],
	"uint16":  IsNumber[uint16],
	"uint32":  IsNumber[uint32],
	"uint64":  IsNumber[uint64],
	"float32": IsNumber[float32],
	"float64": IsNumber[float64],
}

// NumberKindNames returns the sorted keys of NumberKinds
func NumberKindNames() []string {
	answer := []string{}
	for k := range NumberKinds {
		answer = append(answer, k)
	}
	sort.Strings(answer)
	return answer
}
