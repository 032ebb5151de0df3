// SPDX-License-Identifier: MPL-2.0

package validate

import (
	"fmt"
	"strings"
)

type (
	// Validator is one independent validation unit. Implementations must be
	// stateless across runs; anything worth sharing goes through
	// Context.Shared.
	Validator interface {
		// Name identifies the validator. Unique within a registry.
		Name() string
		// DependsOn lists the names of validators that must run first.
		DependsOn() []string
		// Validate inspects the spec and returns every finding. It must not
		// stop at the first problem.
		Validate(ctx *Context) []Diagnostic
	}

	// Hinter marks a validator that only produces optimization hints.
	// Hint validators run in development mode only.
	Hinter interface {
		HintOnly() bool
	}

	// CycleError indicates that validator dependency declarations form a
	// cycle, preventing a topological execution order.
	CycleError struct {
		// Cycle contains validator names involved in the cycle (enough of
		// them to identify the problem, not necessarily all).
		Cycle []string
	}

	// UnknownDependencyError indicates that a validator depends on a name
	// no registered validator carries.
	UnknownDependencyError struct {
		Validator  string
		Dependency string
	}

	// Registry holds validators and their computed execution order.
	// It is a per-build value; construct one with NewRegistry, register
	// validators, then call Run.
	Registry struct {
		validators map[string]Validator
		// order is the topological execution order, recomputed on every
		// successful registration.
		order []string
		// added tracks registration order for deterministic tie-breaking.
		added []string
	}
)

// Error implements the error interface.
func (e *CycleError) Error() string {
	return fmt.Sprintf("validator dependency cycle detected: %s", strings.Join(e.Cycle, " -> "))
}

// Error implements the error interface.
func (e *UnknownDependencyError) Error() string {
	return fmt.Sprintf("validator %q depends on unregistered validator %q", e.Validator, e.Dependency)
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{validators: make(map[string]Validator)}
}

// NewDefaultRegistry creates a Registry with the built-in validators.
func NewDefaultRegistry() (*Registry, error) {
	r := NewRegistry()
	builtins := []Validator{
		&StructureValidator{},
		&TypeValidator{},
		&DefaultValueValidator{},
		&HookValidator{},
		&DepthValidator{},
		&ParameterHintValidator{},
	}
	for _, v := range builtins {
		if err := r.Register(v); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register adds a validator and recomputes the execution order. A duplicate
// name, a dependency on an unregistered validator, or a dependency cycle is a
// configuration error reported here, not deferred to run time.
//
// Registration order is part of the contract: a validator's dependencies must
// already be registered, so a forward reference is rejected as unknown even
// when a later registration would complete the graph. Register dependencies
// first; a rejected validator can be registered again once they are in.
func (r *Registry) Register(v Validator) error {
	name := v.Name()
	if _, exists := r.validators[name]; exists {
		return fmt.Errorf("validator %q already registered", name)
	}

	r.validators[name] = v
	r.added = append(r.added, name)

	order, err := r.computeOrder()
	if err != nil {
		// Roll back so the registry stays usable.
		delete(r.validators, name)
		r.added = r.added[:len(r.added)-1]
		return err
	}
	r.order = order
	return nil
}

// ExecutionOrder returns the topological order validators run in.
func (r *Registry) ExecutionOrder() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Run executes every validator in dependency order and aggregates the result.
// A critical diagnostic never halts sibling validators; the full set of
// findings is always collected before Valid is decided against the mode's
// threshold.
func (r *Registry) Run(ctx *Context) Result {
	var diags []Diagnostic
	for _, name := range r.order {
		v := r.validators[name]
		if h, ok := v.(Hinter); ok && h.HintOnly() && !ctx.Mode.IncludesHints() {
			continue
		}
		diags = append(diags, v.Validate(ctx)...)
	}

	threshold := ctx.Mode.Threshold()
	valid := true
	for _, d := range diags {
		if d.Severity >= threshold {
			valid = false
			break
		}
	}

	return Result{Diagnostics: diags, Valid: valid}
}

// computeOrder runs Kahn's algorithm over the dependency graph. Validators
// with no ordering constraint between them keep registration order, so runs
// are deterministic across identical registries.
func (r *Registry) computeOrder() ([]string, error) {
	// A depends-on edge dep -> name means dep runs before name.
	inDegree := make(map[string]int, len(r.added))
	dependents := make(map[string][]string, len(r.added))
	for _, name := range r.added {
		inDegree[name] = 0
	}
	for _, name := range r.added {
		for _, dep := range r.validators[name].DependsOn() {
			if _, ok := r.validators[dep]; !ok {
				return nil, &UnknownDependencyError{Validator: name, Dependency: dep}
			}
			dependents[dep] = append(dependents[dep], name)
			inDegree[name]++
		}
	}

	queue := make([]string, 0, len(r.added))
	for _, name := range r.added {
		if inDegree[name] == 0 {
			queue = append(queue, name)
		}
	}

	order := make([]string, 0, len(r.added))
	for len(queue) > 0 {
		name := queue[0]
		queue = queue[1:]
		order = append(order, name)

		for _, next := range dependents[name] {
			inDegree[next]--
			if inDegree[next] == 0 {
				queue = append(queue, next)
			}
		}
	}

	if len(order) != len(r.added) {
		// Remaining nodes with non-zero in-degree form the cycle.
		var cycle []string
		for _, name := range r.added {
			if inDegree[name] > 0 {
				cycle = append(cycle, name)
			}
		}
		return nil, &CycleError{Cycle: cycle}
	}

	return order, nil
}
