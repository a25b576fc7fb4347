package harness

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// Scenario is one self-contained end-to-end exercise of the contract. Every
// run gets its own Env, so scenarios can be executed in any order and in
// parallel without sharing chain state.
type Scenario struct {
	Name string
	Desc string

	// Params overrides the deployment parameters; nil keeps DefaultParams.
	Params *Params

	Run func(ctx context.Context, env *Env) error
}

// scenarioMap keeps a global registry of scenarios keyed by name. Scenarios
// register themselves from init funcs; the CLI and tests look them up here.
var scenarioMap sync.Map // map[string]*Scenario

// Register adds a scenario to the registry. Registering a nil scenario, an
// unnamed one or a duplicate name is a programming error and panics.
func Register(s *Scenario) {
	if s == nil || s.Name == "" || s.Run == nil {
		panic("harness: incomplete scenario registration")
	}
	if _, dup := scenarioMap.LoadOrStore(s.Name, s); dup {
		panic(fmt.Sprintf("harness: duplicate scenario %q", s.Name))
	}
}

// Lookup fetches a scenario by name. The boolean return value signals
// whether the name was found.
func Lookup(name string) (*Scenario, bool) {
	if v, ok := scenarioMap.Load(name); ok {
		return v.(*Scenario), true
	}
	return nil, false
}

// Scenarios returns all registered scenarios sorted by name.
func Scenarios() []*Scenario {
	var out []*Scenario
	scenarioMap.Range(func(_, v interface{}) bool {
		out = append(out, v.(*Scenario))
		return true
	})
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// DeployParams resolves the constructor params a scenario runs with.
func (s *Scenario) DeployParams() Params {
	if s.Params != nil {
		return *s.Params
	}
	return DefaultParams()
}
