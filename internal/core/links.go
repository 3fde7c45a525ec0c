package core

// LinkPolicy controls what a build does when it finds a link to a page that
// does not exist.
type LinkPolicy string

const (
	LinkPolicyIgnore LinkPolicy = "ignore"
	LinkPolicyLog    LinkPolicy = "log"
	LinkPolicyWarn   LinkPolicy = "warn"
	LinkPolicyThrow  LinkPolicy = "throw"
)

type LinkAction int

const (
	LinkActionNone LinkAction = iota
	LinkActionLog
	LinkActionWarn
	LinkActionFail
)

// BrokenLink is an internal link whose target is not part of the site.
type BrokenLink struct {
	Page   string
	Href   string
	Target string
}

func DecideBrokenLinks(policy LinkPolicy, broken int) LinkAction {
	if broken == 0 {
		return LinkActionNone
	}

	switch policy {
	case LinkPolicyIgnore:
		return LinkActionNone
	case LinkPolicyLog:
		return LinkActionLog
	case LinkPolicyThrow:
		return LinkActionFail
	default:
		return LinkActionWarn
	}
}
