package utils_test

import (
	"testing"

	"github.com/pseudomuto/sqlshell/pkg/utils"
	"github.com/stretchr/testify/require"
)

func TestIsIntegerValue(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"123", true},
		{"-42", true},
		{"+7", true},
		{"0", true},
		{"1.0", false},
		{"1e3", false},
		{"abc", false},
		{"", false},
		{"99999999999999999999", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			require.Equal(t, tt.expected, utils.IsIntegerValue(tt.input))
		})
	}
}

func TestIsNumericValue(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{name: "positive integer", input: "123", expected: true},
		{name: "negative float", input: "-123.45", expected: true},
		{name: "float without integer part", input: ".123", expected: true},
		{name: "scientific notation", input: "1.23e-4", expected: true},
		{name: "multiple decimal points", input: "1.2.3", expected: false},
		{name: "letters", input: "abc", expected: false},
		{name: "empty string", input: "", expected: false},
		{name: "just a dot", input: ".", expected: false},
		{name: "not a number", input: "NaN", expected: false},
		{name: "infinity", input: "Inf", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, utils.IsNumericValue(tt.input))
		})
	}
}
