package hcl_adapter

import (
	"context"
	"testing"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/seedling/internal/config"
	"github.com/zclconf/go-cty/cty"
)

type testInput struct {
	Label string `seed:"label"`
	Count int    `seed:"count"`
}

func testDefs() map[string]*config.AttributeDefinition {
	defaultCount := cty.NumberIntVal(1)
	return map[string]*config.AttributeDefinition{
		"label": {Name: "label", Type: cty.String},
		"count": {Name: "count", Type: cty.Number, Default: &defaultCount, Optional: true},
	}
}

// expr parses a single HCL expression from source.
func expr(t *testing.T, src string) hcl.Expression {
	t.Helper()
	e, diags := hclsyntax.ParseExpression([]byte(src), "test.hcl", hcl.InitialPos)
	require.False(t, diags.HasErrors(), "failed to parse expression %q: %s", src, diags)
	return e
}

func TestDecodeArguments(t *testing.T) {
	t.Parallel()

	args := map[string]hcl.Expression{
		"label": expr(t, `"Basil"`),
		"count": expr(t, `3`),
	}

	var target testInput
	err := NewConverter().DecodeArguments(context.Background(), &target, args, testDefs())

	require.NoError(t, err)
	assert.Equal(t, "Basil", target.Label)
	assert.Equal(t, 3, target.Count)
}

func TestDecodeArguments_AppliesDefault(t *testing.T) {
	t.Parallel()

	args := map[string]hcl.Expression{
		"label": expr(t, `"Basil"`),
	}

	var target testInput
	err := NewConverter().DecodeArguments(context.Background(), &target, args, testDefs())

	require.NoError(t, err)
	assert.Equal(t, 1, target.Count, "absent optional attribute must take its default")
}

func TestDecodeArguments_MissingRequired(t *testing.T) {
	t.Parallel()

	args := map[string]hcl.Expression{
		"count": expr(t, `3`),
	}

	var target testInput
	err := NewConverter().DecodeArguments(context.Background(), &target, args, testDefs())

	require.Error(t, err)
	assert.Contains(t, err.Error(), `missing required argument "label"`)
}

func TestDecodeArguments_UnsupportedArgument(t *testing.T) {
	t.Parallel()

	args := map[string]hcl.Expression{
		"label":  expr(t, `"Basil"`),
		"colour": expr(t, `"green"`),
	}

	var target testInput
	err := NewConverter().DecodeArguments(context.Background(), &target, args, testDefs())

	require.Error(t, err)
	assert.Contains(t, err.Error(), `unsupported argument "colour"`)
}

func TestDecodeArguments_TypeConversion(t *testing.T) {
	t.Parallel()

	// HCL permits a number literal where a string is declared; conversion
	// must apply the declared type.
	args := map[string]hcl.Expression{
		"label": expr(t, `42`),
	}

	var target testInput
	err := NewConverter().DecodeArguments(context.Background(), &target, args, testDefs())

	require.NoError(t, err)
	assert.Equal(t, "42", target.Label)
}

func TestDecodeArguments_BadType(t *testing.T) {
	t.Parallel()

	args := map[string]hcl.Expression{
		"label": expr(t, `"Basil"`),
		"count": expr(t, `"not-a-number"`),
	}

	var target testInput
	err := NewConverter().DecodeArguments(context.Background(), &target, args, testDefs())

	require.Error(t, err)
	assert.Contains(t, err.Error(), `argument "count"`)
}
