// Package redirect resolves server-issued redirect paths into local
// navigation targets. Unknown or unparseable paths resolve to the projects
// list; resolution never fails.
package redirect

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/JakWdo/Symulacja-sub006/internal/core/domain"
	"github.com/JakWdo/Symulacja-sub006/internal/core/ports"
	"github.com/JakWdo/Symulacja-sub006/internal/engine/cache"
)

// Resolver maps redirect paths onto views. Resources named by a path are
// prefetched through the cache so the target view renders without a blank
// loading state.
type Resolver struct {
	api    ports.APIClient
	store  *cache.Store
	logger ports.Logger
}

// NewResolver creates a Resolver.
func NewResolver(api ports.APIClient, store *cache.Store, logger ports.Logger) *Resolver {
	return &Resolver{api: api, store: store, logger: logger}
}

// defaultTarget is the safe fallback for anything unrecognized.
func defaultTarget() domain.RedirectTarget {
	return domain.RedirectTarget{View: domain.ViewProjects}
}

// Resolve maps a server-issued path to a local navigation target. The
// shape is /<kind>[/<id>[/<subaction>]]. Anything that does not parse, or
// names a resource the server no longer has, resolves to the projects
// list rather than an error.
func (r *Resolver) Resolve(ctx context.Context, path string) domain.RedirectTarget {
	trimmed := strings.Trim(strings.TrimSpace(path), "/")
	if trimmed == "" {
		return defaultTarget()
	}
	segments := strings.Split(trimmed, "/")

	switch segments[0] {
	case "projects":
		return r.resolveProject(ctx, segments[1:])
	case "personas":
		if len(segments) == 2 {
			return domain.RedirectTarget{View: domain.ViewPersonaDetail, ResourceID: segments[1]}
		}
	case "focus-groups":
		if len(segments) == 2 {
			return domain.RedirectTarget{View: domain.ViewFocusGroupDetail, ResourceID: segments[1]}
		}
	case "dashboard":
		if len(segments) == 1 {
			return domain.RedirectTarget{View: domain.ViewDashboard}
		}
	}

	r.logger.Warn(fmt.Sprintf("unrecognized redirect path %q, falling back to projects", path))
	return defaultTarget()
}

// resolveProject handles the /projects subtree.
func (r *Resolver) resolveProject(ctx context.Context, rest []string) domain.RedirectTarget {
	switch len(rest) {
	case 0:
		return defaultTarget()
	case 1:
		if r.prefetchProject(ctx, rest[0]) {
			return domain.RedirectTarget{View: domain.ViewProjectDetail, ResourceID: rest[0]}
		}
		return defaultTarget()
	case 2:
		switch rest[1] {
		case "focus-groups":
			if r.prefetchProject(ctx, rest[0]) {
				return domain.RedirectTarget{
					View:       domain.ViewFocusGroupBuilder,
					ResourceID: rest[0],
					Panel:      "focus-groups",
				}
			}
			return defaultTarget()
		case "personas":
			if r.prefetchProject(ctx, rest[0]) {
				return domain.RedirectTarget{
					View:       domain.ViewProjectDetail,
					ResourceID: rest[0],
					Panel:      "personas",
				}
			}
			return defaultTarget()
		default:
			// An unknown subaction under a known project lands on the
			// project's detail view, not the top-level list.
			r.logger.Warn(fmt.Sprintf("unknown project subaction %q, opening project detail", rest[1]))
			if r.prefetchProject(ctx, rest[0]) {
				return domain.RedirectTarget{View: domain.ViewProjectDetail, ResourceID: rest[0]}
			}
			return defaultTarget()
		}
	}
	return defaultTarget()
}

// prefetchProject warms the cache for the target view. A missing project
// downgrades the navigation to the default target; transport failures do
// not, the target view retries its own fetch.
func (r *Resolver) prefetchProject(ctx context.Context, id string) bool {
	_, err := r.store.Fetch(ctx, domain.KeyProject(id), func(ctx context.Context) (any, error) {
		return r.api.GetProject(ctx, id)
	})
	if err == nil {
		return true
	}
	if errors.Is(err, domain.ErrResourceNotFound) {
		r.logger.Warn(fmt.Sprintf("redirect target project %s no longer exists", id))
		return false
	}
	return true
}
