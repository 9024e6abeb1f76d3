package domain

// MutationKind identifies the class of a mutation for dependency lookup.
type MutationKind string

const (
	MutationCreate        MutationKind = "create"
	MutationUpdate        MutationKind = "update"
	MutationSoftDelete    MutationKind = "softDelete"
	MutationUndoDelete    MutationKind = "undoDelete"
	MutationExecuteAction MutationKind = "executeAction"
	// MutationGeneration covers a completed generation job landing new
	// personas or focus groups on the server.
	MutationGeneration MutationKind = "generation"
)

// ResourceKind identifies the resource a mutation targets.
type ResourceKind string

const (
	ResourceProject    ResourceKind = "project"
	ResourcePersona    ResourceKind = "persona"
	ResourceFocusGroup ResourceKind = "focusGroup"
	ResourceDashboard  ResourceKind = "dashboard"
)

// DependencyEdge declares, statically and once per mutation type, the cache
// key patterns that must be invalidated when a mutation of that type
// succeeds against a resource of that kind.
type DependencyEdge struct {
	Mutation  MutationKind
	Resource  ResourceKind
	Dependent []CacheKey
}

// CacheEdge is a cache-level dependency: invalidating any key covered by
// Source also invalidates every key covered by the Dependent patterns.
type CacheEdge struct {
	Source    CacheKey
	Dependent []CacheKey
}

// edges is the static mutation dependency table. Undo re-invalidates the
// same set as the original delete so collections re-include the restored
// resource.
var edges = []DependencyEdge{
	{
		Mutation: MutationCreate,
		Resource: ResourceProject,
		Dependent: []CacheKey{
			KeyProjects(), KeyAllDashboard(),
		},
	},
	{
		Mutation: MutationUpdate,
		Resource: ResourceProject,
		Dependent: []CacheKey{
			KeyProjects(), KeyAllDashboard(),
		},
	},
	{
		Mutation: MutationSoftDelete,
		Resource: ResourceProject,
		Dependent: []CacheKey{
			KeyProjects(), KeyAllPersonas(), KeyAllFocusGroups(), KeyAllDashboard(),
		},
	},
	{
		Mutation: MutationUndoDelete,
		Resource: ResourceProject,
		Dependent: []CacheKey{
			KeyProjects(), KeyAllPersonas(), KeyAllFocusGroups(), KeyAllDashboard(),
		},
	},
	{
		Mutation: MutationSoftDelete,
		Resource: ResourceFocusGroup,
		Dependent: []CacheKey{
			KeyAllFocusGroups(), KeyAllDashboard(),
		},
	},
	{
		Mutation: MutationUndoDelete,
		Resource: ResourceFocusGroup,
		Dependent: []CacheKey{
			KeyAllFocusGroups(), KeyAllDashboard(),
		},
	},
	{
		Mutation: MutationExecuteAction,
		Resource: ResourceDashboard,
		Dependent: []CacheKey{
			KeyAllDashboard(),
		},
	},
	{
		Mutation: MutationGeneration,
		Resource: ResourcePersona,
		Dependent: []CacheKey{
			KeyAllPersonas(), KeyProjects(), KeyAllDashboard(),
		},
	},
	{
		Mutation: MutationGeneration,
		Resource: ResourceFocusGroup,
		Dependent: []CacheKey{
			KeyAllFocusGroups(), KeyProjects(), KeyAllDashboard(),
		},
	},
}

// DependentsFor returns the cache key patterns to invalidate for a
// successful mutation. The returned slice is shared; callers must not
// modify it.
func DependentsFor(mutation MutationKind, resource ResourceKind) []CacheKey {
	for _, e := range edges {
		if e.Mutation == mutation && e.Resource == resource {
			return e.Dependent
		}
	}
	return nil
}

// DefaultCacheEdges returns the cache-level dependency graph: collection
// keys whose staleness implies stale dashboard counters.
func DefaultCacheEdges() []CacheEdge {
	return []CacheEdge{
		{Source: KeyProjects(), Dependent: []CacheKey{KeyAllDashboard()}},
		{Source: CacheKey{"personas", Wildcard}, Dependent: []CacheKey{KeyAllDashboard()}},
		{Source: CacheKey{"focus-groups", Wildcard}, Dependent: []CacheKey{KeyAllDashboard()}},
	}
}
