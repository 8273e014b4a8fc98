// Package session models the active user for a foodshare run. Picking a
// role yields a canned profile; there are no credentials and nothing here
// is ever persisted.
package session

import (
	"fmt"
	"strings"
)

// AnonymousName is attributed to items posted with no active profile.
const AnonymousName = "Anonymous"

// Role identifies what kind of participant the user is acting as.
type Role string

const (
	RoleDonor    Role = "donor"
	RoleReceiver Role = "receiver"
	RoleNGO      Role = "ngo"
)

// Roles returns all roles in display order.
func Roles() []Role {
	return []Role{RoleDonor, RoleReceiver, RoleNGO}
}

// ParseRole normalizes and validates a role string.
func ParseRole(s string) (Role, error) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleDonor:
		return RoleDonor, nil
	case RoleReceiver:
		return RoleReceiver, nil
	case RoleNGO:
		return RoleNGO, nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

// String returns the wire form of the role.
func (r Role) String() string { return string(r) }

// Label returns the human-facing name of the role.
func (r Role) Label() string {
	switch r {
	case RoleDonor:
		return "Donor"
	case RoleReceiver:
		return "Receiver"
	case RoleNGO:
		return "NGO"
	}
	return string(r)
}

// Profile is the signed-in actor. Values are fixed per role; profiles are
// created on login and discarded on logout.
type Profile struct {
	Name        string
	Role        Role
	Description string
	Contact     string
}

// ProfileFor returns the canned profile for a role. The result is a pure
// function of the role; no state from a previous session leaks in.
func ProfileFor(role Role) Profile {
	switch role {
	case RoleDonor:
		return Profile{
			Name:        "Sarah's Kitchen",
			Role:        RoleDonor,
			Description: "Local restaurant sharing surplus meals with the neighborhood.",
			Contact:     "sarah@sarahskitchen.example",
		}
	case RoleReceiver:
		return Profile{
			Name:        "Alex Rivera",
			Role:        RoleReceiver,
			Description: "Community member looking for available food donations nearby.",
			Contact:     "alex.rivera@mail.example",
		}
	case RoleNGO:
		return Profile{
			Name:        "City Food Bank",
			Role:        RoleNGO,
			Description: "Nonprofit collecting and redistributing donations across the city.",
			Contact:     "intake@cityfoodbank.example",
		}
	}
	return Profile{Name: AnonymousName, Role: role}
}
