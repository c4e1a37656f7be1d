package fixture

import (
	"fmt"
	"reflect"

	"github.com/compozy/fixturegen/pkg/attrpath"
	"github.com/compozy/fixturegen/pkg/constraint"
	"github.com/compozy/fixturegen/pkg/logger"
)

// generation is the state of one top-level call: the overrides, the item
// count and the set of struct types on the current path.
type generation struct {
	engine    *Engine
	overrides attrpath.Overrides
	itemCount int
	visited   map[reflect.Type]struct{}
	log       logger.Logger
}

func (g *generation) run(t reflect.Type) (v reflect.Value, err error) {
	defer func() {
		if r := recover(); r != nil {
			v = reflect.Value{}
			err = g.engine.fail(t, fmt.Errorf("panic during generation: %v", r))
		}
	}()
	out, ok, err := g.value(t, constraint.Set{}, attrpath.Root)
	if err != nil {
		return reflect.Value{}, g.engine.fail(t, err)
	}
	if !ok {
		g.log.Debug("type is not supported, returning its zero value", "type", t.String())
		return reflect.New(t).Elem(), nil
	}
	return out, nil
}

func (g *generation) visit(t reflect.Type) {
	g.visited[t] = struct{}{}
}

func (g *generation) leave(t reflect.Type) {
	delete(g.visited, t)
}

func (g *generation) visiting(t reflect.Type) bool {
	_, ok := g.visited[t]
	return ok
}
