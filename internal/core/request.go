package core

type RequestAction int

const (
	ActionRenderPage RequestAction = iota
	ActionServeAsset
	ActionRedirect
	ActionNotFound
)

type RequestInput struct {
	Path          string
	BaseURL       string
	TrailingSlash bool
	HasRoute      func(route string) bool
	HasAsset      func(rel string) bool
}

type RequestDecision struct {
	Action   RequestAction
	Route    string
	AssetRel string
	Location string
}

// DecideRequest picks how the preview server answers a request path. Pages
// win over assets; a path that only differs from a page by its trailing slash
// is redirected to the canonical form.
func DecideRequest(in RequestInput) RequestDecision {
	base := JoinRoute(in.BaseURL)
	if base != "/" && !hasRoutePrefix(in.Path, base) {
		return RequestDecision{Action: ActionNotFound}
	}

	route := NormalizePath(in.Path)
	if route == base {
		home := base
		if base != "/" {
			home = base + "/"
		}
		if in.Path != home {
			return RequestDecision{Action: ActionRedirect, Location: home}
		}
		return RequestDecision{Action: ActionRenderPage, Route: home}
	}

	if in.HasRoute != nil && in.HasRoute(route) {
		canonical := CanonicalRoute(route, in.TrailingSlash)
		if in.Path != canonical {
			return RequestDecision{Action: ActionRedirect, Location: canonical}
		}
		return RequestDecision{Action: ActionRenderPage, Route: route}
	}

	rel := route[len(base):]
	if base == "/" {
		rel = route[1:]
	}
	rel = trimLeftSlash(rel)
	if rel != "" && in.HasAsset != nil && in.HasAsset(rel) {
		return RequestDecision{Action: ActionServeAsset, AssetRel: rel}
	}

	return RequestDecision{Action: ActionNotFound}
}

func hasRoutePrefix(p, base string) bool {
	if p == base {
		return true
	}
	return len(p) > len(base) && p[:len(base)] == base && p[len(base)] == '/'
}

func trimLeftSlash(s string) string {
	for len(s) > 0 && s[0] == '/' {
		s = s[1:]
	}
	return s
}
