// Package search sizes a sandwich beam by an exhaustive layup-pair
// selection followed by a tabular value-learning walk over discretized
// core-thickness / height / width grids.
package search

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"

	"github.com/alexiusacademia/goscb/internal/laminate"
	"github.com/alexiusacademia/goscb/internal/material"
	"github.com/alexiusacademia/goscb/internal/section"
)

// ErrNoFeasibleLayup is returned when no flange/web pair in the pool
// meets the deflection limit at the seed geometry, so the grid search
// has nothing to work with.
var ErrNoFeasibleLayup = errors.New("no layup pair in the pool satisfies the deflection limit")

// Config holds every knob of one search run.
type Config struct {
	Topology section.Topology
	Load     section.LoadCase

	// Pool is the layup candidate set for the pairwise selection.
	Pool []laminate.Stack

	// Seed geometry used while comparing layup pairs.
	SeedCoreThickness float64
	SeedHeight        float64
	SeedWidth         float64

	// DeflectionLimit is the hard feasibility constraint (mm) on the
	// layup selection.
	DeflectionLimit float64

	// Learning parameters
	Alpha        float64
	Gamma        float64
	Epsilon      float64
	EpsilonMin   float64
	EpsilonDecay float64
	Episodes     int

	// Design variable grids (mm)
	CoreGrid   []float64
	HeightGrid []float64
	WidthGrid  []float64

	// Trace, when set, is called after every episode with the sampled
	// geometry and its reward.
	Trace func(episode int, coreThickness, height, width, reward float64, props *section.Properties)
}

// DefaultConfig returns the standard run: 4 kN over 450 mm, the full
// candidate pool, a 6x6x5 grid and 5000 episodes.
func DefaultConfig(top section.Topology) Config {
	return Config{
		Topology:          top,
		Load:              section.DefaultLoadCase(),
		Pool:              DefaultPool(),
		SeedCoreThickness: 4.0,
		SeedHeight:        35.0,
		SeedWidth:         20.0,
		DeflectionLimit:   3.8,
		Alpha:             0.1,
		Gamma:             0.95,
		Epsilon:           1.0,
		EpsilonMin:        0.05,
		EpsilonDecay:      0.99,
		Episodes:          5000,
		CoreGrid:          floats.Span(make([]float64, 6), 4, 14),
		HeightGrid:        floats.Span(make([]float64, 6), 30, 55),
		WidthGrid:         floats.Span(make([]float64, 5), 20, 40),
	}
}

// State indexes one cell of the (core thickness, height, width) grids.
type State [3]int

// LayupSelection is the outcome of the exhaustive pairwise scan.
type LayupSelection struct {
	Flange laminate.Stack
	Web    laminate.Stack

	FlangeThickness float64
	WebThickness    float64

	Reward float64
}

// Result is the best design observed across a full run. The JSON shape
// matches what the dashboard layer persists and reloads.
type Result struct {
	Topology int `json:"case"`

	CoreThickness float64 `json:"t_foam"`
	Height        float64 `json:"h"`
	Width         float64 `json:"b"`

	FlangeThickness float64 `json:"t_flange"`
	SideThickness   float64 `json:"t_side"`
	WebThickness    float64 `json:"t_web"`

	FlangeLayup laminate.Stack `json:"flange_layup"`
	WebLayup    laminate.Stack `json:"web_layup"`

	Mass          float64 `json:"mass"`
	MaxDeflection float64 `json:"max_deflection"`
	EI            float64 `json:"EI"`
	Stiffness     float64 `json:"stiffness"` // EI/1e3 (N/mm)

	MassFlange float64 `json:"mass_flange"`
	MassCore   float64 `json:"mass_core"`
	MassSide   float64 `json:"mass_side"`

	Force float64 `json:"force"`
	Span  float64 `json:"span"`

	BestReward float64 `json:"best_reward"`
	BestState  State   `json:"best_state"`

	Properties *section.Properties `json:"properties"`
}

// Engine runs the two-phase design search. The random source is
// injected so runs are reproducible under a fixed seed; concurrent
// runs need independent engines.
type Engine struct {
	cfg     Config
	section *section.Engine
	lam     *laminate.Analyzer
	rng     *rand.Rand
}

// New builds an engine for one search run. A nil rng panics early
// instead of falling back to a hidden global source.
func New(m material.Properties, cfg Config, rng *rand.Rand) *Engine {
	if rng == nil {
		panic("search: nil random source")
	}
	return &Engine{
		cfg:     cfg,
		section: section.NewEngine(m),
		lam:     laminate.NewAnalyzer(m),
		rng:     rng,
	}
}

// SelectLayups scans every ordered (flange, web) pair in the pool,
// scores each at the seed geometry and keeps the highest-reward pair
// whose deflection stays within the limit. Ties keep the first pair
// seen.
func (e *Engine) SelectLayups() (*LayupSelection, error) {
	best := LayupSelection{Reward: math.Inf(-1)}
	found := false

	for _, flange := range e.cfg.Pool {
		fp, err := e.lam.Homogenize(flange)
		if err != nil {
			return nil, fmt.Errorf("pool flange layup: %w", err)
		}
		for _, web := range e.cfg.Pool {
			wp, err := e.lam.Homogenize(web)
			if err != nil {
				return nil, fmt.Errorf("pool web layup: %w", err)
			}

			props, err := e.section.Analyze(e.cfg.Topology, section.Geometry{
				Height:            e.cfg.SeedHeight,
				Width:             e.cfg.SeedWidth,
				FlangeThickness:   fp.Thickness,
				WebThickness:      wp.Thickness,
				SideThickness:     wp.Thickness,
				CoreWebThickness:  e.cfg.SeedCoreThickness,
				CoreSideThickness: wp.Thickness,
			}, e.cfg.Load)
			if err != nil {
				return nil, err
			}

			r := Reward(props.Mass, props.MaxDeflection)
			if r > best.Reward && props.MaxDeflection <= e.cfg.DeflectionLimit {
				best = LayupSelection{
					Flange:          flange,
					Web:             web,
					FlangeThickness: fp.Thickness,
					WebThickness:    wp.Thickness,
					Reward:          r,
				}
				found = true
			}
		}
	}

	if !found {
		return nil, ErrNoFeasibleLayup
	}
	return &best, nil
}

// Run executes both phases and returns the best design observed.
func (e *Engine) Run() (*Result, error) {
	sel, err := e.SelectLayups()
	if err != nil {
		return nil, err
	}

	nCore := len(e.cfg.CoreGrid)
	nHeight := len(e.cfg.HeightGrid)
	nWidth := len(e.cfg.WidthGrid)
	if nCore == 0 || nHeight == 0 || nWidth == 0 {
		return nil, fmt.Errorf("empty design grid: %dx%dx%d", nCore, nHeight, nWidth)
	}
	if e.cfg.Episodes < 1 {
		return nil, fmt.Errorf("invalid episode count: %d", e.cfg.Episodes)
	}

	table := make([]float64, nCore*nHeight*nWidth)
	for i := range table {
		table[i] = e.rng.Float64()*2 - 1
	}

	epsilon := e.cfg.Epsilon
	bestReward := math.Inf(-1)
	var bestState State
	var bestProps *section.Properties

	for episode := 0; episode < e.cfg.Episodes; episode++ {
		state := e.randomState()
		reward, props, err := e.step(sel, state)
		if err != nil {
			return nil, err
		}

		next := e.chooseNext(table, epsilon)
		cur := e.index(state)
		table[cur] = (1-e.cfg.Alpha)*table[cur] +
			e.cfg.Alpha*(reward+e.cfg.Gamma*table[e.index(next)])

		if reward > bestReward {
			bestReward = reward
			bestState = state
			bestProps = props
		}

		if e.cfg.Trace != nil {
			e.cfg.Trace(episode,
				e.cfg.CoreGrid[state[0]], e.cfg.HeightGrid[state[1]], e.cfg.WidthGrid[state[2]],
				reward, props)
		}

		if epsilon > e.cfg.EpsilonMin {
			epsilon *= e.cfg.EpsilonDecay
		}
	}

	return &Result{
		Topology:        int(e.cfg.Topology),
		CoreThickness:   e.cfg.CoreGrid[bestState[0]],
		Height:          e.cfg.HeightGrid[bestState[1]],
		Width:           e.cfg.WidthGrid[bestState[2]],
		FlangeThickness: sel.FlangeThickness,
		SideThickness:   sel.WebThickness,
		WebThickness:    bestProps.WebThickness,
		FlangeLayup:     sel.Flange,
		WebLayup:        sel.Web,
		Mass:            bestProps.Mass,
		MaxDeflection:   bestProps.MaxDeflection,
		EI:              bestProps.EI,
		Stiffness:       bestProps.EI / 1e3,
		MassFlange:      bestProps.MassFlange,
		MassCore:        bestProps.MassCore,
		MassSide:        bestProps.MassSide,
		Force:           e.cfg.Load.Force,
		Span:            e.cfg.Load.Span,
		BestReward:      bestReward,
		BestState:       bestState,
		Properties:      bestProps,
	}, nil
}

// step evaluates the section at one grid cell with the fixed layups.
func (e *Engine) step(sel *LayupSelection, s State) (float64, *section.Properties, error) {
	props, err := e.section.Analyze(e.cfg.Topology, section.Geometry{
		Height:            e.cfg.HeightGrid[s[1]],
		Width:             e.cfg.WidthGrid[s[2]],
		FlangeThickness:   sel.FlangeThickness,
		WebThickness:      sel.WebThickness,
		SideThickness:     sel.WebThickness,
		CoreWebThickness:  e.cfg.CoreGrid[s[0]],
		CoreSideThickness: sel.WebThickness,
	}, e.cfg.Load)
	if err != nil {
		return 0, nil, err
	}
	return Reward(props.Mass, props.MaxDeflection), props, nil
}

// chooseNext is the epsilon-greedy policy: a uniformly random state
// with probability epsilon, otherwise the cell with the highest value
// estimate in the whole table.
func (e *Engine) chooseNext(table []float64, epsilon float64) State {
	if e.rng.Float64() < epsilon {
		return e.randomState()
	}
	return e.unravel(floats.MaxIdx(table))
}

func (e *Engine) randomState() State {
	return State{
		e.rng.Intn(len(e.cfg.CoreGrid)),
		e.rng.Intn(len(e.cfg.HeightGrid)),
		e.rng.Intn(len(e.cfg.WidthGrid)),
	}
}

func (e *Engine) index(s State) int {
	return (s[0]*len(e.cfg.HeightGrid)+s[1])*len(e.cfg.WidthGrid) + s[2]
}

func (e *Engine) unravel(i int) State {
	nW := len(e.cfg.WidthGrid)
	nH := len(e.cfg.HeightGrid)
	return State{i / (nH * nW), (i / nW) % nH, i % nW}
}
