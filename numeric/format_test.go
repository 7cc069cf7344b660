package numeric

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected string
	}{
		{name: "char", value: Format[int8]('A'), expected: "65"},
		{name: "negative char", value: Format[int8](math.MinInt8), expected: "-128"},
		{name: "unsigned char", value: Format[byte]('z'), expected: "122"},
		{name: "wide char", value: Format[rune]('é'), expected: "233"},
		{name: "short", value: Format[int16](-6553), expected: "-6553"},
		{name: "long long", value: Format[int64](math.MaxInt64), expected: "9223372036854775807"},
		{name: "unsigned long long", value: Format[uint64](math.MaxUint64), expected: "18446744073709551615"},
		{name: "unsigned", value: Format[uint32](0), expected: "0"},
		{name: "float", value: Format[float32](math.MaxFloat32), expected: "3.4028235e+38"},
		{name: "float fraction", value: Format[float32](0.1), expected: "0.1"},
		{name: "double", value: Format[float64](math.MaxFloat64), expected: "1.7976931348623157e+308"},
		{name: "double lowest", value: Format[float64](-math.MaxFloat64), expected: "-1.7976931348623157e+308"},
		{name: "double integer", value: Format[float64](2.5), expected: "2.5"},
		{name: "zero", value: Format[float64](0), expected: "0"},
		{name: "float smallest normal", value: Format(Min[float32]()), expected: "1.1754944e-38"},
		{name: "double smallest normal", value: Format(Min[float64]()), expected: "2.2250738585072014e-308"},
		{name: "long", value: Format[int](-1), expected: "-1"},
		{name: "unsigned long", value: Format[uint](math.MaxUint32), expected: "4294967295"},
		{name: "unsigned short", value: Format[uint16](math.MaxUint16), expected: "65535"},
	}
	for i := range tests {
		test := tests[i]
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, test.value)
		})
	}
}
