package authz

import (
	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
)

const modelText = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == p.sub && r.obj == p.obj && r.act == p.act
`

// rolePolicies is the closed role/action matrix. Ownership is enforced
// separately by the gate; casbin only answers whether the role may attempt
// the action at all.
var rolePolicies = [][]string{
	{"admin", "leave", "create"},
	{"admin", "leave", "read"},
	{"admin", "leave", "read_all"},
	{"admin", "leave", "update"},
	{"admin", "leave", "approve"},
	{"admin", "leave", "reject"},
	{"admin", "leave", "cancel"},
	{"admin", "leave", "summary"},
	{"admin", "notification", "read"},
	{"admin", "notification", "read_all"},
	{"admin", "notification", "manage"},

	{"employee", "leave", "create"},
	{"employee", "leave", "read"},
	{"employee", "leave", "update"},
	{"employee", "leave", "cancel"},
	{"employee", "leave", "summary"},
	{"employee", "notification", "read"},
	{"employee", "notification", "manage"},
}

// NewEnforcer builds a casbin enforcer from the embedded model and policy.
// The policy is static: roles are a closed set, so nothing is loaded from
// storage.
func NewEnforcer() (*casbin.Enforcer, error) {
	m, err := model.NewModelFromString(modelText)
	if err != nil {
		return nil, err
	}

	e, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, err
	}

	for _, p := range rolePolicies {
		if _, err := e.AddPolicy(p[0], p[1], p[2]); err != nil {
			return nil, err
		}
	}

	return e, nil
}
