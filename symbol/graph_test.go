package symbol

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGraph_TypeInterning(t *testing.T) {
	graph := NewGraph()

	first := graph.Type("io.viant.inspector.RuleSpec")
	second := graph.Type("io.viant.inspector.RuleSpec")
	other := graph.Type("io.viant.inspector.Rule")

	assert.Same(t, first, second)
	assert.NotSame(t, first, other)
	assert.EqualValues(t, "io.viant.inspector.RuleSpec", first.QualifiedName())
}

func TestGraph_Extend(t *testing.T) {
	testCases := []struct {
		name     string
		child    string
		base     string
		expected string
	}{
		{
			name:     "base recorded",
			child:    "com.example.JavaRule",
			base:     "io.viant.inspector.RuleSpec",
			expected: "io.viant.inspector.RuleSpec",
		},
		{
			name:     "empty base leaves chain open",
			child:    "com.example.Orphan",
			base:     "",
			expected: "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			graph := NewGraph()
			def := graph.Extend(tc.child, tc.base)
			if tc.expected == "" {
				assert.Nil(t, def.Base())
				return
			}
			assert.EqualValues(t, tc.expected, def.Base().QualifiedName())
		})
	}
}

func TestGraph_ResolveType(t *testing.T) {
	graph := NewGraph()
	graph.Type("com.example.FooRule")

	assert.NotNil(t, graph.ResolveType("com.example.FooRule"))
	assert.Nil(t, graph.ResolveType("com.example.Missing"))
}

func TestGraph_AddReference(t *testing.T) {
	graph := NewGraph()
	graph.AddReference("io.viant/inspector-java")
	graph.AddReference("org.junit/junit")
	graph.AddReference("io.viant/inspector-java")

	assert.EqualValues(t, []string{"io.viant/inspector-java", "org.junit/junit"}, graph.References())
}

func TestTypeSymbol_Name(t *testing.T) {
	testCases := []struct {
		name      string
		qualified string
		expected  string
	}{
		{name: "dotted", qualified: "com.example.FooRule", expected: "FooRule"},
		{name: "slashed", qualified: "github.com/acme/rules.Checker", expected: "Checker"},
		{name: "simple", qualified: "FooRule", expected: "FooRule"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			graph := NewGraph()
			sym := NewTypeSymbol(graph.Type(tc.qualified), false)
			assert.EqualValues(t, tc.expected, sym.Name())
		})
	}
}

func TestAppliedAnnotation_Location(t *testing.T) {
	graph := NewGraph()
	at := Location{Path: "src/FooRule.java", Line: 3, Column: 1}
	anno := NewAppliedAnnotation(graph.Type("io.viant.inspector.RuleSpec"), nil, at)

	loc, err := anno.Location(context.Background())
	assert.NoError(t, err)
	assert.EqualValues(t, at, loc)

	cancelled, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = anno.Location(cancelled)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestValue_StringValue(t *testing.T) {
	testCases := []struct {
		name     string
		value    Value
		expected string
		ok       bool
	}{
		{name: "primitive string", value: PrimitiveValue("Java"), expected: "Java", ok: true},
		{name: "primitive bool", value: PrimitiveValue(true), ok: false},
		{name: "other", value: OtherValue("LanguageNames.JAVA"), ok: false},
		{name: "array", value: ArrayValue(PrimitiveValue("Go")), ok: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual, ok := tc.value.StringValue()
			assert.EqualValues(t, tc.ok, ok)
			assert.EqualValues(t, tc.expected, actual)
		})
	}
}
