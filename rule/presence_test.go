package rule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/viant/annolint/diag"
	"github.com/viant/annolint/symbol"
)

const markerName = "io.viant.inspector.RuleSpec"

var (
	declLoc = symbol.Location{Path: "src/FooRule.java", Line: 3, Column: 1}
	annoLoc = symbol.Location{Path: "src/FooRule.java", Line: 2, Column: 1}
)

func TestMarkerPresence_Evaluate(t *testing.T) {
	testCases := []struct {
		name       string
		build      func(g *symbol.Graph) *symbol.TypeSymbol
		references []string
		expected   []diag.Diagnostic
	}{
		{
			name: "concrete type without marker",
			build: func(g *symbol.Graph) *symbol.TypeSymbol {
				sym := symbol.NewTypeSymbol(g.Type("com.example.FooRule"), false)
				sym.AddLocation(declLoc)
				return sym
			},
			expected: []diag.Diagnostic{
				{Rule: "AL1001", Severity: diag.SevAdvisory, Location: declLoc, Args: []string{"FooRule"}},
			},
		},
		{
			name: "unrelated annotation does not count",
			build: func(g *symbol.Graph) *symbol.TypeSymbol {
				sym := symbol.NewTypeSymbol(g.Type("com.example.FooRule"), false)
				sym.AddLocation(declLoc)
				sym.Annotate(symbol.NewAppliedAnnotation(g.Type("java.lang.Deprecated"), nil, annoLoc))
				return sym
			},
			expected: []diag.Diagnostic{
				{Rule: "AL1001", Severity: diag.SevAdvisory, Location: declLoc, Args: []string{"FooRule"}},
			},
		},
		{
			name: "abstract type is exempt",
			build: func(g *symbol.Graph) *symbol.TypeSymbol {
				sym := symbol.NewTypeSymbol(g.Type("com.example.AbstractRule"), true)
				sym.AddLocation(declLoc)
				return sym
			},
			expected: nil,
		},
		{
			name: "marker applied without arguments",
			build: func(g *symbol.Graph) *symbol.TypeSymbol {
				sym := symbol.NewTypeSymbol(g.Type("com.example.FooRule"), false)
				sym.AddLocation(declLoc)
				sym.Annotate(symbol.NewAppliedAnnotation(g.Type(markerName), nil, annoLoc))
				return sym
			},
			expected: nil,
		},
		{
			name: "marker found through derived annotation",
			build: func(g *symbol.Graph) *symbol.TypeSymbol {
				g.Extend("com.example.JavaRule", markerName)
				sym := symbol.NewTypeSymbol(g.Type("com.example.FooRule"), false)
				sym.AddLocation(declLoc)
				sym.Annotate(symbol.NewAppliedAnnotation(g.Type("com.example.JavaRule"), []symbol.Value{symbol.PrimitiveValue("Java")}, annoLoc))
				return sym
			},
			references: []string{"io.viant/inspector-golang"},
			expected:   nil,
		},
		{
			name: "two markers stay silent",
			build: func(g *symbol.Graph) *symbol.TypeSymbol {
				g.Extend("com.example.JavaRule", markerName)
				sym := symbol.NewTypeSymbol(g.Type("com.example.FooRule"), false)
				sym.AddLocation(declLoc)
				sym.Annotate(symbol.NewAppliedAnnotation(g.Type(markerName), []symbol.Value{symbol.PrimitiveValue("Go")}, annoLoc))
				sym.Annotate(symbol.NewAppliedAnnotation(g.Type("com.example.JavaRule"), []symbol.Value{symbol.PrimitiveValue("Java")}, annoLoc))
				return sym
			},
			expected: nil,
		},
		{
			name: "go only rule without java engine",
			build: func(g *symbol.Graph) *symbol.TypeSymbol {
				sym := symbol.NewTypeSymbol(g.Type("com.example.FooRule"), false)
				sym.AddLocation(declLoc)
				sym.Annotate(symbol.NewAppliedAnnotation(g.Type(markerName), []symbol.Value{symbol.PrimitiveValue("Go")}, annoLoc))
				return sym
			},
			references: []string{"org.junit/junit", "io.viant/inspector-golang"},
			expected: []diag.Diagnostic{
				{Rule: "AL1002", Severity: diag.SevAdvisory, Location: annoLoc, Args: []string{"FooRule", "Java"}},
			},
		},
		{
			name: "java only rule without go engine",
			build: func(g *symbol.Graph) *symbol.TypeSymbol {
				sym := symbol.NewTypeSymbol(g.Type("com.example.FooRule"), false)
				sym.AddLocation(declLoc)
				sym.Annotate(symbol.NewAppliedAnnotation(g.Type(markerName), []symbol.Value{symbol.PrimitiveValue("Java")}, annoLoc))
				return sym
			},
			references: []string{"io.viant/inspector-java"},
			expected: []diag.Diagnostic{
				{Rule: "AL1002", Severity: diag.SevAdvisory, Location: annoLoc, Args: []string{"FooRule", "Go"}},
			},
		},
		{
			name: "complementary engine referenced",
			build: func(g *symbol.Graph) *symbol.TypeSymbol {
				sym := symbol.NewTypeSymbol(g.Type("com.example.FooRule"), false)
				sym.AddLocation(declLoc)
				sym.Annotate(symbol.NewAppliedAnnotation(g.Type(markerName), []symbol.Value{symbol.PrimitiveValue("Go")}, annoLoc))
				return sym
			},
			references: []string{"libs/INSPECTOR-JAVA.JAR"},
			expected:   nil,
		},
		{
			name: "both engines referenced",
			build: func(g *symbol.Graph) *symbol.TypeSymbol {
				sym := symbol.NewTypeSymbol(g.Type("com.example.FooRule"), false)
				sym.AddLocation(declLoc)
				sym.Annotate(symbol.NewAppliedAnnotation(g.Type(markerName), []symbol.Value{symbol.PrimitiveValue("Java")}, annoLoc))
				return sym
			},
			references: []string{"io.viant/inspector-java", "io.viant/inspector-golang"},
			expected:   nil,
		},
		{
			name: "unknown language stays silent",
			build: func(g *symbol.Graph) *symbol.TypeSymbol {
				sym := symbol.NewTypeSymbol(g.Type("com.example.FooRule"), false)
				sym.AddLocation(declLoc)
				sym.Annotate(symbol.NewAppliedAnnotation(g.Type(markerName), []symbol.Value{symbol.PrimitiveValue("Rust")}, annoLoc))
				return sym
			},
			expected: nil,
		},
		{
			name: "no string argument stays silent",
			build: func(g *symbol.Graph) *symbol.TypeSymbol {
				sym := symbol.NewTypeSymbol(g.Type("com.example.FooRule"), false)
				sym.AddLocation(declLoc)
				sym.Annotate(symbol.NewAppliedAnnotation(g.Type(markerName), []symbol.Value{
					symbol.PrimitiveValue(true),
					symbol.OtherValue("LanguageNames.GO"),
				}, annoLoc))
				return sym
			},
			expected: nil,
		},
		{
			name: "first string argument wins over earlier non strings",
			build: func(g *symbol.Graph) *symbol.TypeSymbol {
				sym := symbol.NewTypeSymbol(g.Type("com.example.FooRule"), false)
				sym.AddLocation(declLoc)
				sym.Annotate(symbol.NewAppliedAnnotation(g.Type(markerName), []symbol.Value{
					symbol.PrimitiveValue(int64(3)),
					symbol.PrimitiveValue("Go"),
				}, annoLoc))
				return sym
			},
			expected: []diag.Diagnostic{
				{Rule: "AL1002", Severity: diag.SevAdvisory, Location: annoLoc, Args: []string{"FooRule", "Java"}},
			},
		},
		{
			name: "malformed references never match",
			build: func(g *symbol.Graph) *symbol.TypeSymbol {
				sym := symbol.NewTypeSymbol(g.Type("com.example.FooRule"), false)
				sym.AddLocation(declLoc)
				sym.Annotate(symbol.NewAppliedAnnotation(g.Type(markerName), []symbol.Value{symbol.PrimitiveValue("Go")}, annoLoc))
				return sym
			},
			references: []string{"", "   ", "inspector-java-1.4.2.jar"},
			expected: []diag.Diagnostic{
				{Rule: "AL1002", Severity: diag.SevAdvisory, Location: annoLoc, Args: []string{"FooRule", "Java"}},
			},
		},
		{
			name: "missing marker without declaration location",
			build: func(g *symbol.Graph) *symbol.TypeSymbol {
				return symbol.NewTypeSymbol(g.Type("com.example.FooRule"), false)
			},
			expected: []diag.Diagnostic{
				{Rule: "AL1001", Severity: diag.SevAdvisory, Args: []string{"FooRule"}},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			graph := symbol.NewGraph()
			sym := tc.build(graph)
			actual, err := MarkerPresence{}.Evaluate(context.Background(), sym, graph.Type(markerName), tc.references)
			assert.NoError(t, err)
			assert.EqualValues(t, tc.expected, actual)
		})
	}
}

func TestMarkerPresence_NilInputs(t *testing.T) {
	graph := symbol.NewGraph()
	marker := graph.Type(markerName)
	sym := symbol.NewTypeSymbol(graph.Type("com.example.FooRule"), false)

	diags, err := MarkerPresence{}.Evaluate(context.Background(), nil, marker, nil)
	assert.NoError(t, err)
	assert.Nil(t, diags)

	diags, err = MarkerPresence{}.Evaluate(context.Background(), sym, nil, nil)
	assert.NoError(t, err)
	assert.Nil(t, diags)
}

// slowAnnotation resolves its location only when the context allows it
type slowAnnotation struct {
	def  symbol.TypeRef
	args []symbol.Value
}

func (a slowAnnotation) Type() symbol.TypeRef      { return a.def }
func (a slowAnnotation) Arguments() []symbol.Value { return a.args }

func (a slowAnnotation) Location(ctx context.Context) (symbol.Location, error) {
	select {
	case <-ctx.Done():
		return symbol.Location{}, ctx.Err()
	case <-time.After(10 * time.Millisecond):
		return symbol.Location{Path: "slow.java", Line: 1, Column: 1}, nil
	}
}

func TestMarkerPresence_Cancellation(t *testing.T) {
	graph := symbol.NewGraph()
	marker := graph.Type(markerName)
	sym := symbol.NewTypeSymbol(graph.Type("com.example.FooRule"), false)
	sym.AddLocation(declLoc)
	sym.Annotate(slowAnnotation{def: marker, args: []symbol.Value{symbol.PrimitiveValue("Go")}})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	diags, err := MarkerPresence{}.Evaluate(ctx, sym, marker, nil)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, diags)
}

func TestDerivesFrom(t *testing.T) {
	testCases := []struct {
		name     string
		build    func(g *symbol.Graph) (symbol.TypeRef, symbol.TypeRef)
		expected bool
	}{
		{
			name: "identity",
			build: func(g *symbol.Graph) (symbol.TypeRef, symbol.TypeRef) {
				return g.Type(markerName), g.Type(markerName)
			},
			expected: true,
		},
		{
			name: "two level chain",
			build: func(g *symbol.Graph) (symbol.TypeRef, symbol.TypeRef) {
				g.Extend("com.example.AstRule", markerName)
				g.Extend("com.example.JavaAstRule", "com.example.AstRule")
				return g.Type("com.example.JavaAstRule"), g.Type(markerName)
			},
			expected: true,
		},
		{
			name: "unrelated",
			build: func(g *symbol.Graph) (symbol.TypeRef, symbol.TypeRef) {
				return g.Type("java.lang.Deprecated"), g.Type(markerName)
			},
			expected: false,
		},
		{
			name: "cyclic hierarchy terminates",
			build: func(g *symbol.Graph) (symbol.TypeRef, symbol.TypeRef) {
				g.Extend("com.example.A", "com.example.B")
				g.Extend("com.example.B", "com.example.A")
				return g.Type("com.example.A"), g.Type(markerName)
			},
			expected: false,
		},
		{
			name: "nil candidate",
			build: func(g *symbol.Graph) (symbol.TypeRef, symbol.TypeRef) {
				return nil, g.Type(markerName)
			},
			expected: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			graph := symbol.NewGraph()
			candidate, target := tc.build(graph)
			assert.EqualValues(t, tc.expected, DerivesFrom(candidate, target))
		})
	}
}

func TestReferencesModule(t *testing.T) {
	testCases := []struct {
		name     string
		displays []string
		module   string
		expected bool
	}{
		{name: "maven style path", displays: []string{"io.viant/inspector-java"}, module: "inspector-java", expected: true},
		{name: "jar with extension", displays: []string{"libs/inspector-java.jar"}, module: "inspector-java", expected: true},
		{name: "case insensitive", displays: []string{"IO.VIANT/Inspector-Java"}, module: "inspector-java", expected: true},
		{name: "go module path", displays: []string{"github.com/viant/inspector-golang"}, module: "inspector-golang", expected: true},
		{name: "versioned file name", displays: []string{"inspector-java-1.4.2.jar"}, module: "inspector-java", expected: false},
		{name: "empty displays", displays: []string{"", "  "}, module: "inspector-java", expected: false},
		{name: "no references", displays: nil, module: "inspector-java", expected: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.EqualValues(t, tc.expected, referencesModule(tc.displays, tc.module))
		})
	}
}

func TestRegistry(t *testing.T) {
	registered, ok := Lookup("marker-presence")
	assert.True(t, ok)
	assert.EqualValues(t, "marker-presence", registered.Name())

	var ids []string
	for _, desc := range Descriptors() {
		ids = append(ids, desc.ID)
		assert.False(t, desc.Enabled)
		assert.EqualValues(t, diag.SevAdvisory, desc.Severity)
		assert.True(t, desc.HasTag(diag.TagTelemetry))
	}
	assert.EqualValues(t, []string{"AL1001", "AL1002"}, ids)
}
