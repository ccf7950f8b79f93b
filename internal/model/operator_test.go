package model

import (
	"math"
	"testing"
)

func TestOperator_Apply(t *testing.T) {
	tests := []struct {
		op       Operator
		first    float64
		second   float64
		expected float64
	}{
		{OperatorAdd, 5, 3, 8},
		{OperatorSubtract, 10, 3, 7},
		{OperatorMultiply, 6, 7, 42},
		{OperatorDivide, 8, 2, 4},
		{OperatorNone, 8, 2, 2},
	}

	for _, test := range tests {
		result := test.op.Apply(test.first, test.second)
		if result != test.expected {
			t.Errorf("Operator(%q).Apply(%v, %v) = %v, expected %v", test.op, test.first, test.second, result, test.expected)
		}
	}
}

func TestOperator_ApplyDivideByZero(t *testing.T) {
	if r := OperatorDivide.Apply(8, 0); !math.IsInf(r, 1) {
		t.Errorf("8/0 = %v, expected +Inf", r)
	}
	if r := OperatorDivide.Apply(-8, 0); !math.IsInf(r, -1) {
		t.Errorf("-8/0 = %v, expected -Inf", r)
	}
	if r := OperatorDivide.Apply(0, 0); !math.IsNaN(r) {
		t.Errorf("0/0 = %v, expected NaN", r)
	}
}

func TestOperator_IsValid(t *testing.T) {
	tests := []struct {
		op       Operator
		expected bool
	}{
		{OperatorNone, false},
		{OperatorAdd, true},
		{OperatorSubtract, true},
		{OperatorMultiply, true},
		{OperatorDivide, true},
		{Operator("%"), false},
	}

	for _, test := range tests {
		if result := test.op.IsValid(); result != test.expected {
			t.Errorf("Operator(%q).IsValid() = %v, expected %v", test.op, result, test.expected)
		}
	}
}

func TestParseOperator(t *testing.T) {
	tests := []struct {
		symbol   string
		expected Operator
		ok       bool
	}{
		{"+", OperatorAdd, true},
		{"-", OperatorSubtract, true},
		{"*", OperatorMultiply, true},
		{"×", OperatorMultiply, true},
		{"/", OperatorDivide, true},
		{"÷", OperatorDivide, true},
		{"=", OperatorNone, false},
	}

	for _, test := range tests {
		op, ok := ParseOperator(test.symbol)
		if op != test.expected || ok != test.ok {
			t.Errorf("ParseOperator(%q) = (%q, %v), expected (%q, %v)", test.symbol, op, ok, test.expected, test.ok)
		}
	}
}
