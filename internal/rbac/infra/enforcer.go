package infra

import "github.com/casbin/casbin/v2"

// NewEnforcer loads the domain RBAC model. Policies are not loaded here;
// the service pushes them per company from the roles tables.
func NewEnforcer(modelPath string) (*casbin.Enforcer, error) {
	return casbin.NewEnforcer(modelPath)
}
