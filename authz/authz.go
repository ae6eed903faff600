package authz

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"matchday/models"
)

var (
	// ErrUnauthenticated means no bearer credential was presented.
	ErrUnauthenticated = errors.New("access token required")
	// ErrInvalidCredential means the credential is garbled, expired, or its
	// subject no longer exists.
	ErrInvalidCredential = errors.New("invalid or expired token")
	// ErrProfileMissing means a COACH authenticated but has no coach profile
	// row. The token itself is valid, so this is a permission failure.
	ErrProfileMissing = errors.New("coach profile not found")
	// ErrAccessDenied means the principal is authenticated but the policy
	// forbids the action. Deliberately generic: it carries no detail about
	// which check failed.
	ErrAccessDenied = errors.New("access denied: insufficient permissions")
)

// Principal is the resolved identity attached to an authenticated request.
// Coach is present exactly when User.Role is COACH and carries the
// authoritative team scope.
type Principal struct {
	User  *models.User
	Coach *models.Coach
}

func (p *Principal) IsAdmin() bool {
	return p != nil && p.User != nil && p.User.Role == models.RoleAdmin
}

func (p *Principal) IsCoach() bool {
	return p != nil && p.User != nil && p.User.Role == models.RoleCoach
}

// TeamID returns the coach's team scope. ok is false for admins, for coaches
// whose profile has no team, and for unresolved principals.
func (p *Principal) TeamID() (uint, bool) {
	if !p.IsCoach() || p.Coach == nil || p.Coach.TeamID == nil {
		return 0, false
	}
	return *p.Coach.TeamID, true
}

type Resource string

const (
	ResourceTeam    Resource = "team"
	ResourcePlayer  Resource = "player"
	ResourceCoach   Resource = "coach"
	ResourceReferee Resource = "referee"
	ResourceVenue   Resource = "venue"
	ResourceLeague  Resource = "league"
	ResourceFixture Resource = "fixture"
	ResourceResult  Resource = "result"
	ResourceUser    Resource = "user"
)

type Action string

const (
	ActionList   Action = "list"
	ActionRead   Action = "read"
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// Decision is the outcome of an authorization check. AllowOwnTeam grants the
// action only within the principal's team scope: list operations must be
// narrowed to that team, and id-targeted operations must compare the target's
// team_id against it.
type Decision int

const (
	Deny Decision = iota
	Allow
	AllowOwnTeam
)

// Authorize decides whether principal p may perform action on resource.
// Admins are unrestricted. Coaches get team-scoped access to teams and
// players, read access to the fixture calendar entities, and nothing else.
// Any other role is denied outright.
func Authorize(p *Principal, action Action, resource Resource) Decision {
	if p == nil || p.User == nil {
		return Deny
	}

	switch p.User.Role {
	case models.RoleAdmin:
		return Allow
	case models.RoleCoach:
		return authorizeCoach(action, resource)
	}
	return Deny
}

func authorizeCoach(action Action, resource Resource) Decision {
	switch resource {
	case ResourceTeam:
		switch action {
		case ActionList, ActionRead, ActionUpdate:
			return AllowOwnTeam
		}
		return Deny
	case ResourcePlayer:
		return AllowOwnTeam
	case ResourceReferee, ResourceVenue, ResourceLeague, ResourceFixture, ResourceResult:
		switch action {
		case ActionList, ActionRead:
			return Allow
		}
		return Deny
	}
	// Coach management and user accounts are admin territory; the coach
	// self-dashboard is a dedicated action that never reaches Authorize.
	return Deny
}

// RequireTeamAccess enforces an AllowOwnTeam decision against a concrete
// team. A coach with no resolved team never matches any team id.
func RequireTeamAccess(p *Principal, teamID uint) error {
	if p.IsAdmin() {
		return nil
	}
	own, ok := p.TeamID()
	if !ok || own != teamID {
		return ErrAccessDenied
	}
	return nil
}

// PlayerAccessAllowed checks a coach's access to a player row, read or
// write: the row must be on the coach's team and a write payload must not
// move it to another team. Admins pass unconditionally.
func PlayerAccessAllowed(p *Principal, current *models.Player, payloadTeamID *uint) error {
	if p.IsAdmin() {
		return nil
	}
	own, ok := p.TeamID()
	if !ok {
		return ErrAccessDenied
	}
	if current != nil && current.TeamID != own {
		return ErrAccessDenied
	}
	if payloadTeamID != nil && *payloadTeamID != own {
		return ErrAccessDenied
	}
	return nil
}

const principalKey = "principal"

// Attach stores the resolved principal on the request for downstream
// handlers.
func Attach(c *fiber.Ctx, p *Principal) {
	c.Locals(principalKey, p)
}

// FromCtx retrieves the principal resolved by the auth middleware. It returns
// nil on unauthenticated requests.
func FromCtx(c *fiber.Ctx) *Principal {
	p, ok := c.Locals(principalKey).(*Principal)
	if !ok {
		return nil
	}
	return p
}
