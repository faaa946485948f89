package core

import (
	"context"
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"galogen/internal/types"
)

// DefaultBootstrapTypes are declared before anything else. GLDEBUGPROC
// uses them without a requires edge in the registry.
var DefaultBootstrapTypes = []string{"GLenum", "GLuint", "GLsizei", "GLchar"}

type visitState uint8

const (
	stateUnvisited visitState = iota
	stateVisiting
	stateDone
)

// TypeClosure orders types so every type follows the type it requires.
type TypeClosure struct {
	Store     *EntityStore
	Bootstrap []string
}

func NewTypeClosure(store *EntityStore) TypeClosure {
	return TypeClosure{
		Store:     store,
		Bootstrap: DefaultBootstrapTypes,
	}
}

// typeGraph assigns each type an index on first sight.
type typeGraph struct {
	store *EntityStore
	index map[string]int
	nodes []types.TypeInfo
	state []visitState
}

type frame struct {
	node int
	deps []int
	next int
}

// Order returns the bootstrap types followed by the closure of selected,
// each type appearing once and after its dependencies. Selected names are
// visited in the given order.
func (c TypeClosure) Order(ctx context.Context, selected []string) ([]types.TypeInfo, error) {
	graph := &typeGraph{store: c.Store, index: map[string]int{}}
	var ordered []types.TypeInfo
	roots := append(append([]string(nil), c.Bootstrap...), selected...)
	for _, root := range roots {
		start, err := graph.node(root)
		if err != nil {
			return nil, err
		}
		if graph.state[start] == stateDone {
			continue
		}
		stack, err := graph.enter(nil, start)
		if err != nil {
			return nil, err
		}
		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			if top.next < len(top.deps) {
				dep := top.deps[top.next]
				top.next++
				switch graph.state[dep] {
				case stateVisiting:
					return nil, graph.cycleError(stack, dep)
				case stateUnvisited:
					if stack, err = graph.enter(stack, dep); err != nil {
						return nil, err
					}
				}
				continue
			}
			graph.state[top.node] = stateDone
			ordered = append(ordered, graph.nodes[top.node])
			stack = stack[:len(stack)-1]
		}
	}
	log.Ctx(ctx).Debug().Int("types", len(ordered)).Msg("type closure ordered")
	return ordered, nil
}

func (g *typeGraph) node(name string) (int, error) {
	if idx, ok := g.index[name]; ok {
		return idx, nil
	}
	info, err := g.store.Type(name)
	if err != nil {
		return 0, err
	}
	idx := len(g.nodes)
	g.index[name] = idx
	g.nodes = append(g.nodes, info)
	g.state = append(g.state, stateUnvisited)
	return idx, nil
}

// enter marks idx as in progress and pushes it with its resolved edges.
func (g *typeGraph) enter(stack []frame, idx int) ([]frame, error) {
	var deps []int
	if requires := g.nodes[idx].Requires; requires != "" {
		dep, err := g.node(requires)
		if err != nil {
			return nil, err
		}
		deps = append(deps, dep)
	}
	g.state[idx] = stateVisiting
	return append(stack, frame{node: idx, deps: deps}), nil
}

func (g *typeGraph) cycleError(stack []frame, dep int) error {
	var path []string
	inCycle := false
	for _, f := range stack {
		if f.node == dep {
			inCycle = true
		}
		if inCycle {
			path = append(path, g.nodes[f.node].Name)
		}
	}
	path = append(path, g.nodes[dep].Name)
	return errbuilder.New().
		WithCode(errbuilder.CodeFailedPrecondition).
		WithMsg(fmt.Sprintf("type dependency cycle: %s", strings.Join(path, " -> ")))
}
