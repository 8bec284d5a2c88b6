package interp

import (
	"github.com/midbel/computor/internal/angle"
	"github.com/midbel/computor/internal/bind"
	"github.com/midbel/computor/internal/value"
)

// Environment bundles the identifier → Value scope with the process-wide
// angle mode the trig built-ins consult.
type Environment struct {
	scope *bind.Env[value.Value]
	angle *angle.Mode
}

// NewEnvironment creates a root session environment.
func NewEnvironment(mode *angle.Mode) *Environment {
	return &Environment{scope: bind.New[value.Value](), angle: mode}
}

// Child creates a scope that shadows only names it defines, delegating
// every other lookup to e. It is used for user function calls.
func (e *Environment) Child() *Environment {
	return &Environment{scope: bind.Enclosed(e.scope), angle: e.angle}
}

// Define binds name to val in this scope.
func (e *Environment) Define(name string, val value.Value) {
	e.scope.Define(name, val)
}

// Resolve looks up name, delegating to parent scopes.
func (e *Environment) Resolve(name string) (value.Value, error) {
	return e.scope.Resolve(name)
}

// IsDefined satisfies parser.Resolver.
func (e *Environment) IsDefined(name string) bool {
	return e.scope.IsDefined(name)
}

// AngleMode returns the shared angle mode.
func (e *Environment) AngleMode() *angle.Mode {
	return e.angle
}

// Bindings returns a snapshot of this scope's local name → Value bindings,
// covering both variables and user-defined functions (they share one
// scope). Used by the REPL's vars/display/show command.
func (e *Environment) Bindings() map[string]value.Value {
	return e.scope.Snapshot()
}

// snapshot captures this scope's local bindings so a failed statement can
// be rolled back ("a failed evaluation leaves the Environment
// unchanged").
func (e *Environment) snapshot() map[string]value.Value {
	return e.scope.Snapshot()
}

func (e *Environment) restore(snap map[string]value.Value) {
	e.scope.Restore(snap)
}
