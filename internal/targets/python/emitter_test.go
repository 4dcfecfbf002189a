// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package python

import (
	"strings"
	"testing"

	"github.com/Mattlk13/pulumi/internal/emit"
	"github.com/Mattlk13/pulumi/internal/schema"
)

func planModules(t *testing.T, pkg *schema.Package) map[string]*emit.ModulePlan {
	t.Helper()
	plans, err := emit.PlanPackage(pkg)
	if err != nil {
		t.Fatalf("PlanPackage() error = %v", err)
	}
	modules := make(map[string]*emit.ModulePlan)
	for _, module := range emit.Modules(plans) {
		modules[module.Namespace] = module
	}
	return modules
}

func TestEmitCrossNamespaceModule(t *testing.T) {
	pkg := &schema.Package{
		Name: "core",
		Namespaces: []*schema.Namespace{
			{
				Path: "mod1",
				Types: []*schema.ObjectType{
					{
						Name:      "Widget",
						Namespace: "mod1",
						Properties: []*schema.Property{
							{Name: "size", Type: schema.TypeSpec{Name: "integer"}, Required: true},
						},
					},
				},
			},
			{
				Path: "mod2",
				Types: []*schema.ObjectType{
					{
						Name:        "Gadget",
						Namespace:   "mod2",
						Description: "A gadget.",
						Properties: []*schema.Property{
							{Name: "name", Type: schema.TypeSpec{Name: "string"}, Required: true},
							{Name: "val", Type: schema.TypeSpec{Name: "string"}, Default: &schema.DefaultValue{Value: "mod2"}},
							{Name: "widget", Type: schema.TypeSpec{Ref: "mod1/Widget"}},
						},
					},
				},
			},
		},
	}

	modules := planModules(t, pkg)
	e := &Emitter{}

	out, err := e.Emit(pkg.Name, modules["mod2"])
	if err != nil {
		t.Fatalf("Emit() error = %v", err)
	}
	code := string(out)

	wantCode := []string{
		"# *** WARNING: this file was generated by sdkgen. ***",
		"from .. import mod1 as _mod1",
		"    'GadgetArgs',",
		"    'GadgetArgsDict',",
		"class GadgetArgsDict(TypedDict):",
		"    name: _builtins.str",
		"    val: NotRequired[_builtins.str]",
		"    widget: NotRequired['_mod1.WidgetArgsDict']",
		"class GadgetArgs:",
		"                 name: _builtins.str,",
		"                 val: Optional[_builtins.str] = None,",
		"                 widget: Optional['_mod1.WidgetArgs'] = None):",
		"        if val is None:\n            val = 'mod2'",
		"        _set(__self__, 'name', name)",
		"        if val is not None:\n            _set(__self__, 'val', val)",
		"    @property\n    def name(self) -> _builtins.str:",
		"    @name.setter",
	}
	for _, want := range wantCode {
		if !strings.Contains(code, want) {
			t.Errorf("generated code missing %q\n\n%s", want, code)
		}
	}

	// A default never turns into an unconditional overwrite.
	if strings.Count(code, "val = 'mod2'") != 1 {
		t.Errorf("default injected more than once:\n%s", code)
	}
}

func TestEmitLocalReferenceIsQuoted(t *testing.T) {
	pkg := &schema.Package{
		Name: "core",
		Namespaces: []*schema.Namespace{
			{
				Path: "",
				Types: []*schema.ObjectType{
					{
						Name:      "Node",
						Namespace: "",
						Properties: []*schema.Property{
							{Name: "next", Type: schema.TypeSpec{Ref: "Node"}},
						},
					},
				},
			},
		},
	}

	modules := planModules(t, pkg)
	e := &Emitter{}

	out, err := e.Emit(pkg.Name, modules[""])
	if err != nil {
		t.Fatalf("Emit() error = %v", err)
	}
	code := string(out)

	// A self-reference stays local: quoted forward reference, no import.
	if !strings.Contains(code, "next: NotRequired['NodeArgsDict']") {
		t.Errorf("missing quoted self-reference:\n%s", code)
	}
	if strings.Contains(code, "import node") {
		t.Errorf("self-reference produced an import:\n%s", code)
	}
}

func TestEmitRootNamespaceReference(t *testing.T) {
	pkg := &schema.Package{
		Name: "core",
		Namespaces: []*schema.Namespace{
			{
				Path: "",
				Types: []*schema.ObjectType{
					{
						Name:      "Base",
						Namespace: "",
						Properties: []*schema.Property{
							{Name: "id", Type: schema.TypeSpec{Name: "string"}, Required: true},
						},
					},
				},
			},
			{
				Path: "mod1",
				Types: []*schema.ObjectType{
					{
						Name:      "Child",
						Namespace: "mod1",
						Properties: []*schema.Property{
							{Name: "base", Type: schema.TypeSpec{Ref: "Base"}},
						},
					},
				},
			},
		},
	}

	modules := planModules(t, pkg)
	e := &Emitter{}

	out, err := e.Emit(pkg.Name, modules["mod1"])
	if err != nil {
		t.Fatalf("Emit() error = %v", err)
	}
	code := string(out)

	// Root-namespace types live in the types module at the package root;
	// the import must name that module, never an empty identifier.
	wantCode := []string{
		"from .. import types as _root",
		"    base: NotRequired['_root.BaseArgsDict']",
		"                 base: Optional['_root.BaseArgs'] = None):",
	}
	for _, want := range wantCode {
		if !strings.Contains(code, want) {
			t.Errorf("generated code missing %q\n\n%s", want, code)
		}
	}
	if strings.Contains(code, "import  as") {
		t.Errorf("import with empty module name:\n%s", code)
	}
}

func TestPackageFiles(t *testing.T) {
	e := &Emitter{}

	files, err := e.PackageFiles("core", &emit.ModulePlan{Namespace: "mod1"})
	if err != nil {
		t.Fatalf("PackageFiles() error = %v", err)
	}

	init, ok := files["__init__.py"]
	if !ok {
		t.Fatalf("PackageFiles() = %v, want __init__.py", files)
	}
	if !strings.Contains(string(init), "from .types import *") {
		t.Errorf("__init__.py does not re-export the types module:\n%s", init)
	}
}

func TestEmitEmptyType(t *testing.T) {
	pkg := &schema.Package{
		Name: "core",
		Namespaces: []*schema.Namespace{
			{Path: "", Types: []*schema.ObjectType{{Name: "Empty", Namespace: ""}}},
		},
	}

	modules := planModules(t, pkg)
	e := &Emitter{}

	out, err := e.Emit(pkg.Name, modules[""])
	if err != nil {
		t.Fatalf("Emit() error = %v", err)
	}
	code := string(out)

	for _, want := range []string{
		"class EmptyArgsDict(TypedDict):\n    pass",
		"def __init__(__self__):",
	} {
		if !strings.Contains(code, want) {
			t.Errorf("generated code missing %q\n\n%s", want, code)
		}
	}
}

func TestEmitDeprecationWarning(t *testing.T) {
	pkg := &schema.Package{
		Name: "core",
		Namespaces: []*schema.Namespace{
			{
				Path: "",
				Types: []*schema.ObjectType{
					{
						Name:      "Legacy",
						Namespace: "",
						Properties: []*schema.Property{
							{
								Name:               "old",
								Type:               schema.TypeSpec{Name: "string"},
								DeprecationMessage: "use new instead",
							},
						},
					},
				},
			},
		},
	}

	modules := planModules(t, pkg)
	e := &Emitter{}

	out, err := e.Emit(pkg.Name, modules[""])
	if err != nil {
		t.Fatalf("Emit() error = %v", err)
	}
	if !strings.Contains(string(out), `warnings.warn("""use new instead""", DeprecationWarning)`) {
		t.Errorf("missing deprecation warning:\n%s", out)
	}
}
