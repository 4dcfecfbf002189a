// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package emit

import (
	"errors"
	"fmt"
	"sync"

	"github.com/Mattlk13/pulumi/internal/schema"
)

// PlanPackage plans and synthesizes every object type in the package.
// Independent types are processed concurrently; the result slice follows
// schema declaration order by fixed indexing, never scheduling order.
//
// Failures are isolated to the smallest affected unit: a failing type is
// dropped from the result while unrelated types still plan, and the returned
// error joins every failure so one run reports them all. The driver decides
// whether to abort or continue with the partial result.
func PlanPackage(pkg *schema.Package) ([]*EmissionPlan, error) {
	resolver := NewResolver(pkg)
	types := pkg.ObjectTypes()

	plans := make([]*EmissionPlan, len(types))
	errs := make([]error, len(types))

	var wg sync.WaitGroup
	for i, ot := range types {
		wg.Add(1)
		go func() {
			defer wg.Done()
			planned, err := Plan(resolver, ot)
			if err != nil {
				errs[i] = fmt.Errorf("%s: %w", qualifiedName(ot), err)
				return
			}
			plans[i] = Synthesize(ot, planned)
		}()
	}
	wg.Wait()

	// Import sets are complete only after every type has planned; attach the
	// per-namespace snapshot now.
	result := make([]*EmissionPlan, 0, len(plans))
	for _, plan := range plans {
		if plan == nil {
			continue
		}
		imports := resolver.Imports(plan.Namespace)
		plan.Imports = Imports{
			Namespaces: imports.Namespaces(),
			Packages:   imports.Packages(),
		}
		result = append(result, plan)
	}

	return result, errors.Join(errs...)
}

// ModulePlan groups the emission plans of one namespace for a target emitter,
// which typically writes one source file per namespace.
type ModulePlan struct {
	Namespace string
	Imports   Imports
	Plans     []*EmissionPlan
}

// Modules groups plans by namespace, preserving declaration order of both
// namespaces and types.
func Modules(plans []*EmissionPlan) []*ModulePlan {
	var modules []*ModulePlan
	index := make(map[string]*ModulePlan)

	for _, plan := range plans {
		module, ok := index[plan.Namespace]
		if !ok {
			module = &ModulePlan{Namespace: plan.Namespace, Imports: plan.Imports}
			index[plan.Namespace] = module
			modules = append(modules, module)
		}
		module.Plans = append(module.Plans, plan)
	}

	return modules
}

func qualifiedName(ot *schema.ObjectType) string {
	if ot.Namespace == "" {
		return ot.Name
	}
	return ot.Namespace + "/" + ot.Name
}
