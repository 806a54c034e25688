// Package adapter defines the capability contract persistence backends must
// satisfy to power the admin runtime, and the registry used to look them up.
package adapter

import (
	"context"
	"fmt"
	"reflect"
	"strings"
	"unicode"
)

// Adapter is the pluggable persistence-backend binding. The runtime only
// checks that the query primitives exist; their execution is entirely
// delegated to the backend.
type Adapter interface {
	// Name identifies the adapter in the registry
	Name() string

	// ModelModules returns the adapter-provided model module names
	ModelModules() []string

	// Bindings returns the required system model and enum bindings
	Bindings() Bindings

	// ImportModules registers the given model modules with the backend.
	// Importing the same module list twice must have no additional effect.
	ImportModules(ctx context.Context, modules []string) error

	// Init opens backend connections during process startup
	Init(ctx context.Context) error

	// Shutdown closes backend connections during process shutdown
	Shutdown(ctx context.Context) error

	Querier
}

// Querier is the query-primitive surface of an adapter. Only its existence
// is verified here; semantics belong to the backend.
type Querier interface {
	Create(ctx context.Context, model string, fields map[string]any) (any, error)
	Get(ctx context.Context, model string, filters map[string]any) (any, error)
	Filter(ctx context.Context, model string, filters map[string]any) ([]any, error)
	Order(ctx context.Context, model string, filters map[string]any, orderBy ...string) ([]any, error)
	Save(ctx context.Context, obj any) error
	Delete(ctx context.Context, obj any) error
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// Bindings holds the eight required system bindings an adapter must expose.
// Model fields carry prototype values of the backing model types; enum
// fields carry the full value set of the backing enumeration.
type Bindings struct {
	UserModel            any
	UserPermissionModel  any
	GroupModel           any
	GroupPermissionModel any
	ContentTypeModel     any
	SystemSettingModel   any
	PermActions          []string
	SettingValueTypes    []string
}

// ModelName derives the canonical query name of a model prototype: the
// snake_cased struct type name. Adapters key their model tables by this
// name so callers can address bound models without knowing the backend.
func ModelName(proto any) string {
	t := reflect.TypeOf(proto)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil {
		return ""
	}
	name := t.Name()
	var b strings.Builder
	for i, r := range name {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Validate checks that every required binding is present. All missing
// bindings are collected and reported in one error naming the adapter and
// each missing binding's human label; it never stops at the first gap.
func (b Bindings) Validate(adapterName string) error {
	var missing []string
	if b.UserModel == nil {
		missing = append(missing, "user model")
	}
	if b.UserPermissionModel == nil {
		missing = append(missing, "user permission model")
	}
	if b.GroupModel == nil {
		missing = append(missing, "group model")
	}
	if b.GroupPermissionModel == nil {
		missing = append(missing, "group permission model")
	}
	if b.ContentTypeModel == nil {
		missing = append(missing, "content type model")
	}
	if b.SystemSettingModel == nil {
		missing = append(missing, "system setting model")
	}
	if len(b.PermActions) == 0 {
		missing = append(missing, "permission action enumeration")
	}
	if len(b.SettingValueTypes) == 0 {
		missing = append(missing, "setting value enumeration")
	}

	if len(missing) > 0 {
		return fmt.Errorf(
			"adapter %q is missing required system components: %s",
			adapterName, strings.Join(missing, ", "),
		)
	}
	return nil
}
