package permission

import (
	"context"
	"strings"

	"github.com/slperm/cli/internal/softlayer"
)

// MatchUser returns the first user whose first name contains firstName and
// whose last name contains lastName. Matching is case-sensitive and follows
// the order of users.
func MatchUser(users []softlayer.User, firstName, lastName string) (*softlayer.User, bool) {
	for i := range users {
		u := &users[i]
		if strings.Contains(u.FirstName, firstName) && strings.Contains(u.LastName, lastName) {
			return u, true
		}
	}
	return nil, false
}

// FindUserID looks up an account user by name. The boolean is false when no
// user matches.
func (m *Manager) FindUserID(ctx context.Context, firstName, lastName string) (*softlayer.User, bool, error) {
	users, err := m.svc.AccountUsers(ctx)
	if err != nil {
		return nil, false, err
	}
	u, ok := MatchUser(users, firstName, lastName)
	m.logger.V(1).Info("user lookup", "candidates", len(users), "found", ok)
	return u, ok, nil
}
