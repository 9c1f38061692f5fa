package role

import (
	"errors"
	"strings"
)

// Role is a canonical EchoAway user role.
type Role string

const (
	// Visitor is the unauthenticated / lowest-privilege role. It is the
	// canonical default when no user is present.
	Visitor Role = "visitor"
	// Guest is an authenticated traveller account.
	Guest Role = "guest"
	// Host is an accommodation owner account.
	Host Role = "host"
	// Admin is the highest-privilege role.
	Admin Role = "admin"
)

// Default is the role reported for an absent user.
const Default = Visitor

// ErrUnknown is returned by [Normalize] for role strings outside the
// canonical vocabulary and its known aliases.
var ErrUnknown = errors.New("unknown role")

// aliases folds role names from older backend revisions into the canonical
// vocabulary. The three-role scheme shipped "user" where "guest" is today.
var aliases = map[string]Role{
	"user":      Guest,
	"traveller": Guest,
}

var privilege = map[Role]int{
	Visitor: 0,
	Guest:   1,
	Host:    2,
	Admin:   3,
}

// Normalize maps a raw role string onto the canonical vocabulary. Matching is
// case-insensitive and folds known legacy aliases. Unknown strings return
// [ErrUnknown]; an empty string normalizes to [Default].
func Normalize(raw string) (Role, error) {
	name := strings.ToLower(strings.TrimSpace(raw))
	if name == "" {
		return Default, nil
	}
	if alias, ok := aliases[name]; ok {
		return alias, nil
	}
	r := Role(name)
	if _, ok := privilege[r]; !ok {
		return "", ErrUnknown
	}
	return r, nil
}

// Valid reports whether r is a member of the canonical vocabulary.
func Valid(r Role) bool {
	_, ok := privilege[r]
	return ok
}

// AtLeast reports whether r carries at least the privilege of min.
// Admin satisfies every level; host satisfies host and below.
func (r Role) AtLeast(min Role) bool {
	rp, ok := privilege[r]
	if !ok {
		return false
	}
	mp, ok := privilege[min]
	if !ok {
		return false
	}
	return rp >= mp
}

func (r Role) String() string { return string(r) }

// Registry is an immutable allow-list of roles accepted at the decode
// boundary. A zero allow-list admits the full canonical vocabulary.
type Registry struct {
	allowed map[Role]struct{}
}

// NewRegistry builds a [Registry] from the given allow-list. Every entry must
// normalize to a canonical role. An empty list admits all canonical roles.
func NewRegistry(allowList []string) (*Registry, error) {
	allowed := make(map[Role]struct{}, len(allowList))
	if len(allowList) == 0 {
		for r := range privilege {
			allowed[r] = struct{}{}
		}
		return &Registry{allowed: allowed}, nil
	}
	for _, raw := range allowList {
		r, err := Normalize(raw)
		if err != nil {
			return nil, err
		}
		allowed[r] = struct{}{}
	}
	return &Registry{allowed: allowed}, nil
}

// Resolve normalizes raw and checks it against the allow-list. It is the
// single entry point for role strings arriving from the wire or from durable
// storage.
func (reg *Registry) Resolve(raw string) (Role, error) {
	r, err := Normalize(raw)
	if err != nil {
		return "", err
	}
	if _, ok := reg.allowed[r]; !ok {
		return "", ErrUnknown
	}
	return r, nil
}

// Allows reports whether r is admitted by the allow-list.
func (reg *Registry) Allows(r Role) bool {
	_, ok := reg.allowed[r]
	return ok
}

// labels are the user-facing display names for each role, carried over from
// the EchoAway front end.
var labels = map[Role]string{
	Visitor: "Visiteur",
	Guest:   "Voyageur",
	Host:    "Hôte",
	Admin:   "Administrateur",
}

// Label returns the display name for r. Unknown roles echo their raw value.
func Label(r Role) string {
	if l, ok := labels[r]; ok {
		return l
	}
	return string(r)
}

// FromLabel maps a display name back to its canonical role.
func FromLabel(label string) (Role, bool) {
	for r, l := range labels {
		if l == label {
			return r, true
		}
	}
	return "", false
}
