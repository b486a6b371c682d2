package icons

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_BlankTokens(t *testing.T) {
	resolver := NewResolver(Builtin())

	tests := []struct {
		name  string
		token string
	}{
		{"Empty string", ""},
		{"Whitespace only", "   "},
		{"Tab", "\t"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handle := resolver.Resolve(tt.token)
			assert.Same(t, Default, handle)
		})
	}

	// Blank tokens bypass the cache entirely.
	assert.Equal(t, 0, resolver.CachedTokens())
}

func TestResolve_KnownToken(t *testing.T) {
	resolver := NewResolver(Builtin())

	handle := resolver.Resolve("SiTerraform")
	require.NotNil(t, handle)
	assert.Equal(t, "SiTerraform", handle.Name)
	assert.NotSame(t, Default, handle)

	// Idempotence: the second call returns the identical handle.
	again := resolver.Resolve("SiTerraform")
	assert.Same(t, handle, again)
}

func TestResolve_UnknownToken(t *testing.T) {
	resolver := NewResolver(Builtin())

	first := resolver.Resolve("SiDoesNotExist")
	assert.Same(t, Default, first)

	// Unknown tokens are cached as Default so repeated lookups return the
	// same handle without hitting the registry again.
	second := resolver.Resolve("SiDoesNotExist")
	assert.Same(t, Default, second)
	assert.Equal(t, 1, resolver.CachedTokens())
}

func TestResolve_ExactCaseMatching(t *testing.T) {
	resolver := NewResolver(Builtin())

	assert.NotSame(t, Default, resolver.Resolve("SiTerraform"))
	assert.Same(t, Default, resolver.Resolve("siterraform"))
	assert.Same(t, Default, resolver.Resolve("SITERRAFORM"))
}

func TestResolve_RegistryFallbackSubstitutions(t *testing.T) {
	resolver := NewResolver(Builtin())

	tests := []struct {
		token string
		glyph string
	}{
		{"SiScalr", "SiAmazon"},
		{"SiSeed", "SiOctopusdeploy"},
		{"SiCursor", "BiCode"},
		{"SiAmazonbedrock", "FaRobot"},
		{"FaSquareGithub", "FaGithubSquare"},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			handle := resolver.Resolve(tt.token)
			require.NotNil(t, handle)
			// Substitutions are baked into the registry, not aliased at
			// lookup time, so the resolved handle is not the Default.
			assert.NotSame(t, Default, handle)
			assert.Equal(t, tt.glyph, handle.Name)
		})
	}
}

func TestResolve_CustomRegistry(t *testing.T) {
	custom := &Icon{Name: "GoGopher", Class: "icon icon-gopher", Label: "Go"}
	resolver := NewResolver(NewRegistry(map[string]*Icon{"GoGopher": custom}))

	assert.Same(t, custom, resolver.Resolve("GoGopher"))
	assert.Same(t, Default, resolver.Resolve("SiTerraform"))
}

func TestResolve_ConcurrentAccess(t *testing.T) {
	resolver := NewResolver(Builtin())

	var wg sync.WaitGroup
	results := make([]*Icon, 32)
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = resolver.Resolve("SiDatadog")
		}(i)
	}
	wg.Wait()

	// Racing writes are redundant but identical; every caller sees the same handle.
	for i := 1; i < len(results); i++ {
		assert.Same(t, results[0], results[i])
	}
}

func TestResolve_CacheGrowthBounded(t *testing.T) {
	resolver := NewResolver(Builtin())

	for round := 0; round < 3; round++ {
		for i := 0; i < 10; i++ {
			resolver.Resolve(fmt.Sprintf("Token%d", i))
		}
	}

	assert.Equal(t, 10, resolver.CachedTokens())
}
