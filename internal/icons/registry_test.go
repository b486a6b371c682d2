package icons

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegistry_CopiesTable(t *testing.T) {
	handle := &Icon{Name: "SiTerraform", Class: "icon icon-terraform", Label: "Terraform"}
	table := map[string]*Icon{"SiTerraform": handle}

	registry := NewRegistry(table)

	// Mutating the source table after construction must not leak into the registry.
	table["SiTerraform"] = nil
	table["Injected"] = &Icon{Name: "Injected"}

	got, ok := registry.Lookup("SiTerraform")
	require.True(t, ok)
	assert.Same(t, handle, got)

	_, ok = registry.Lookup("Injected")
	assert.False(t, ok)
}

func TestNewRegistry_SkipsNilHandles(t *testing.T) {
	registry := NewRegistry(map[string]*Icon{
		"Valid": {Name: "Valid"},
		"Nil":   nil,
	})

	assert.Equal(t, 1, registry.Len())
	_, ok := registry.Lookup("Nil")
	assert.False(t, ok)
}

func TestBuiltin_KnownTokens(t *testing.T) {
	registry := Builtin()

	tokens := []string{
		"SiTerraform", "SiOpentofu", "CiCloudOn",
		"FaAws",
		"SiAmazonecs", "SiAmazons3", "SiAwslambda", "SiAmazonapigateway",
		"SiAmazonroute53", "SiAmazoncloudwatch",
		"SiDatadog",
		"SiScalr", "FaSquareGithub", "SiSeed",
		"AiOutlineOpenAI", "RiAnthropicFill", "SiCursor", "SiAmazonbedrock",
	}

	for _, token := range tokens {
		t.Run(token, func(t *testing.T) {
			handle, ok := registry.Lookup(token)
			require.True(t, ok, "builtin registry should contain %s", token)
			assert.NotEmpty(t, handle.Name)
			assert.NotEmpty(t, handle.Class)
			assert.NotEmpty(t, handle.Label)
		})
	}

	assert.Equal(t, len(tokens), registry.Len())
}

func TestBuiltin_StableHandles(t *testing.T) {
	registry := Builtin()

	first, ok := registry.Lookup("SiDatadog")
	require.True(t, ok)
	second, ok := registry.Lookup("SiDatadog")
	require.True(t, ok)
	assert.Same(t, first, second)
}
