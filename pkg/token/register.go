package token

import "sync/atomic"

// nextTokenID tracks the next available dynamic token ID.
// Dynamic tokens start after maxBuiltin (999).
var nextTokenID = int32(maxBuiltin)

// dynamicTokens maps registered dynamic tokens to their names.
// Registration happens at init() time in the packages that own the
// node kinds, so no locking beyond the ID counter is needed.
var dynamicTokens = make(map[Type]string)

// Register registers a new dynamic token with the given name. The parser
// uses this for tree-node kinds that have no single source token of their
// own (subqueries, aliases, function calls).
func Register(name string) Type {
	id := atomic.AddInt32(&nextTokenID, 1)
	t := Type(id)
	dynamicTokens[t] = name
	return t
}

// getDynamicName returns the name of a dynamic token.
func getDynamicName(t Type) (string, bool) {
	name, ok := dynamicTokens[t]
	return name, ok
}

// IsDynamic returns true if the token type is a dynamically registered token.
func IsDynamic(t Type) bool {
	return t > maxBuiltin
}
