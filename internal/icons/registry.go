// Package icons resolves symbolic icon tokens to renderable icon handles.
package icons

// Icon is an opaque handle for a renderable glyph. Handles are immutable and
// shared: resolving the same token always yields the same pointer.
type Icon struct {
	Name  string `json:"name"`  // canonical glyph name in the icon set
	Class string `json:"class"` // CSS class emitted by the renderer
	Label string `json:"label"` // accessible label
}

// Default is the handle returned for empty or unknown tokens.
var Default = &Icon{Name: "FaQuestion", Class: "icon icon-question", Label: "unknown"}

// Registry is an immutable mapping from icon tokens to handles, populated once
// at startup. All aliasing (tokens standing in for glyphs that do not exist in
// the icon set) is baked in at construction time; lookups are exact-case with
// no normalization or fuzzy matching.
type Registry struct {
	handles map[string]*Icon
}

// NewRegistry builds a registry from a token to handle table. The table is
// copied, so later mutation of the argument does not affect the registry.
func NewRegistry(handles map[string]*Icon) *Registry {
	copied := make(map[string]*Icon, len(handles))
	for token, handle := range handles {
		if handle == nil {
			continue
		}
		copied[token] = handle
	}
	return &Registry{handles: copied}
}

// Lookup returns the handle registered for token, or (nil, false) if the
// token is unknown.
func (r *Registry) Lookup(token string) (*Icon, bool) {
	handle, ok := r.handles[token]
	return handle, ok
}

// Len returns the number of registered tokens.
func (r *Registry) Len() int {
	return len(r.handles)
}

// Builtin returns the registry for the stock icon set used by the portfolio
// skills sections. Tokens without an exact glyph in the set map to a stand-in
// handle here rather than being aliased at lookup time.
func Builtin() *Registry {
	return NewRegistry(map[string]*Icon{
		// Infrastructure as code
		"SiTerraform": {Name: "SiTerraform", Class: "icon icon-terraform", Label: "Terraform"},
		"SiOpentofu":  {Name: "SiOpentofu", Class: "icon icon-opentofu", Label: "OpenTofu"},
		"CiCloudOn":   {Name: "CiCloudOn", Class: "icon icon-cloud", Label: "Cloud"},

		// Cloud providers
		"FaAws": {Name: "FaAws", Class: "icon icon-aws", Label: "AWS"},

		// AWS services
		"SiAmazonecs":        {Name: "SiAmazonecs", Class: "icon icon-ecs", Label: "Amazon ECS"},
		"SiAmazons3":         {Name: "SiAmazons3", Class: "icon icon-s3", Label: "Amazon S3"},
		"SiAwslambda":        {Name: "SiAwslambda", Class: "icon icon-lambda", Label: "AWS Lambda"},
		"SiAmazonapigateway": {Name: "SiAmazonapigateway", Class: "icon icon-api-gateway", Label: "API Gateway"},
		"SiAmazonroute53":    {Name: "SiAmazonroute53", Class: "icon icon-route53", Label: "Route 53"},
		"SiAmazoncloudwatch": {Name: "SiAmazoncloudwatch", Class: "icon icon-cloudwatch", Label: "CloudWatch"},

		// Monitoring
		"SiDatadog": {Name: "SiDatadog", Class: "icon icon-datadog", Label: "Datadog"},

		// CI/CD and DevOps. Scalr and SEED have no glyph in the set, so they
		// carry stand-in handles; the GitHub token's glyph is actually named
		// FaGithubSquare.
		"SiScalr":        {Name: "SiAmazon", Class: "icon icon-amazon", Label: "Scalr"},
		"FaSquareGithub": {Name: "FaGithubSquare", Class: "icon icon-github", Label: "GitHub Actions"},
		"SiSeed":         {Name: "SiOctopusdeploy", Class: "icon icon-deploy", Label: "SEED"},

		// AI / LLM. Cursor and Bedrock have no glyph in the set.
		"AiOutlineOpenAI": {Name: "AiOutlineOpenAI", Class: "icon icon-openai", Label: "OpenAI"},
		"RiAnthropicFill": {Name: "RiAnthropicFill", Class: "icon icon-anthropic", Label: "Anthropic"},
		"SiCursor":        {Name: "BiCode", Class: "icon icon-code", Label: "Cursor"},
		"SiAmazonbedrock": {Name: "FaRobot", Class: "icon icon-robot", Label: "Bedrock"},
	})
}
