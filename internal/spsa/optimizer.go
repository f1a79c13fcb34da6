// Package spsa implements the scheduler and update engine described in
// the SPSA core: it generates perturbations, dispatches paired matches
// to a worker pool, accumulates gradient estimates, applies plain-SGD
// or Adam updates, clips to range and advances the global iteration
// counter under a single mutex.
package spsa

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"sync"
	"time"

	"spsatune/internal/elo"
	"spsatune/internal/model"
	"spsatune/internal/params"
)

// matchRunner is the subset of *match.Supervisor the optimizer needs.
// Defined here so tests can substitute a fake runner without shelling
// out to a real match-runner binary.
type matchRunner interface {
	RunPaired(ctx context.Context, plus, minus map[string]int) (wins, losses, draws int, err error)
	RunSelfPlay(ctx context.Context, theta map[string]int, rounds int) (wins, losses, draws int, err error)
}

// Adam hyperparameters, fixed per spec.
const (
	adamBeta1 = 0.9
	adamBeta2 = 0.999
	adamEps   = 1e-8
	adamLR    = 1e-3
)

// Config holds the SPSA schedule and run-shape parameters.
type Config struct {
	Iterations  int
	A           float64
	Gamma       float64 // standard schedule: 0.101
	Alpha       float64 // standard schedule: 0.602
	Concurrency int
	SaveStep    int
	UseAdam     bool
	TestRounds  int
}

// Optimizer holds the process-local optimizer state described in the
// data model: theta, the Adam accumulators, the monotone counters and
// the precomputed SPSA schedule constants.
type Optimizer struct {
	cfg Config
	reg params.Registry

	mu         sync.Mutex
	theta      map[string]float64
	a0, c0     map[string]float64
	m, v       map[string]float64
	adamT      int
	globalIter int

	sup  matchRunner
	warn func(error)
}

// New builds an Optimizer from a loaded registry, precomputing a0/c0
// for every updating parameter. warn is called with a non-nil error
// whenever a match-runner call fails; a nil warn is replaced with a
// no-op.
func New(reg params.Registry, cfg Config, sup matchRunner, warn func(error)) *Optimizer {
	if warn == nil {
		warn = func(error) {}
	}
	o := &Optimizer{
		cfg:   cfg,
		reg:   reg,
		theta: make(map[string]float64, len(reg)),
		a0:    make(map[string]float64),
		c0:    make(map[string]float64),
		m:     make(map[string]float64),
		v:     make(map[string]float64),
		sup:   sup,
		warn:  warn,
	}

	n := float64(cfg.Iterations)
	for name, d := range reg {
		o.theta[name] = d.Default
		if !d.Update {
			continue
		}
		c0 := d.CEnd * math.Pow(n, cfg.Gamma)
		aEnd := d.REnd * d.CEnd * d.CEnd
		a0 := aEnd * math.Pow(cfg.A+n, cfg.Alpha)
		o.c0[name] = c0
		o.a0[name] = a0
		o.m[name] = 0
		o.v[name] = 0
	}

	return o
}

// GlobalIter returns the current monotone iteration counter.
func (o *Optimizer) GlobalIter() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.globalIter
}

// Snapshot returns a copy of the current parameter vector.
func (o *Optimizer) Snapshot() map[string]float64 {
	o.mu.Lock()
	defer o.mu.Unlock()
	out := make(map[string]float64, len(o.theta))
	for k, v := range o.theta {
		out[k] = v
	}
	return out
}

// claimNext reserves the next iteration index for the running phase.
// It returns ok=false once the phase or the whole run is exhausted.
func (o *Optimizer) claimNext(phaseEnd int) (i int, ok bool) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.globalIter >= o.cfg.Iterations || o.globalIter+1 > phaseEnd {
		return 0, false
	}
	o.globalIter++
	return o.globalIter, true
}

// Run drives the dispatcher: phases of cfg.SaveStep iterations, each
// followed by an evaluation match and a checkpoint published to
// onCheckpoint. Run returns when globalIter reaches cfg.Iterations or
// ctx is cancelled; on cancellation the in-flight phase's workers are
// joined and one final checkpoint is still emitted before returning.
func (o *Optimizer) Run(ctx context.Context, onCheckpoint func(model.CheckpointEvent)) error {
	nextSave := o.cfg.SaveStep
	if nextSave <= 0 || nextSave > o.cfg.Iterations {
		nextSave = o.cfg.Iterations
	}

	for {
		o.runPhase(ctx, nextSave)

		event, err := o.evaluate(ctx)
		if err == nil {
			onCheckpoint(event)
		}

		done := o.GlobalIter() >= o.cfg.Iterations
		interrupted := ctx.Err() != nil
		if done || interrupted {
			return ctx.Err()
		}

		nextSave += o.cfg.SaveStep
		if nextSave > o.cfg.Iterations {
			nextSave = o.cfg.Iterations
		}
	}
}

// runPhase spawns cfg.Concurrency workers, each claiming iteration
// indices until the phase boundary or the whole run is exhausted, or
// ctx is cancelled. It blocks until every worker exits.
func (o *Optimizer) runPhase(ctx context.Context, phaseEnd int) {
	var wg sync.WaitGroup
	for w := 0; w < o.cfg.Concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			o.worker(ctx, phaseEnd)
		}()
	}
	wg.Wait()
}

func (o *Optimizer) worker(ctx context.Context, phaseEnd int) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		i, ok := o.claimNext(phaseEnd)
		if !ok {
			return
		}

		o.step(ctx, i)
	}
}

// step runs one SPSA work unit at iteration i: draw a perturbation,
// play the paired plus/minus match, and apply the resulting gradient
// estimate.
func (o *Optimizer) step(ctx context.Context, i int) {
	cVals, aVals := o.schedule(i)
	snap := o.Snapshot()

	plus := make(map[string]int, len(o.reg))
	minus := make(map[string]int, len(o.reg))
	delta := make(map[string]float64, len(o.reg))

	for name, d := range o.reg {
		base := snap[name]
		if !d.Update {
			plus[name] = int(math.Round(base))
			minus[name] = int(math.Round(base))
			continue
		}

		sign := 1.0
		if rand.Intn(2) == 0 {
			sign = -1.0
		}
		c := cVals[name]

		vPlus := d.Clip(base + c*sign)
		vMinus := d.Clip(base - c*sign)

		plus[name] = int(math.Round(vPlus))
		minus[name] = int(math.Round(vMinus))
		delta[name] = sign
	}

	// The paired match is not cut short by cancelling ctx: an in-flight
	// match runs to completion, bounded only by the supervisor's timeout.
	wins, losses, _, err := o.sup.RunPaired(context.WithoutCancel(ctx), plus, minus)
	score := 0.0
	if err != nil {
		o.warn(fmt.Errorf("paired match at iteration %d: %w", i, err))
	} else {
		score = float64(wins - losses)
	}
	// A SubprocessError yields score 0: the iteration still counts
	// against the budget (claimNext already consumed it), it simply
	// contributes no gradient signal.

	o.applyGradient(i, score, delta, cVals, aVals)
}

// applyGradient performs the locked update step: gradient estimate,
// plain-SGD or Adam update, and clipping, for every updating parameter.
func (o *Optimizer) applyGradient(i int, score float64, delta, cVals, aVals map[string]float64) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.adamT++

	for name, d := range o.reg {
		if !d.Update {
			continue
		}

		c := cVals[name]
		dlt := delta[name]
		// g = (y/Δ) / (2c); 1/Δ ≡ Δ for Δ ∈ {±1}, so this is
		// equivalent to the product form y·Δ/(2c).
		g := (score / dlt) / (2 * c)

		if !o.cfg.UseAdam {
			o.theta[name] += aVals[name] * g
		} else {
			o.m[name] = adamBeta1*o.m[name] + (1-adamBeta1)*g
			o.v[name] = adamBeta2*o.v[name] + (1-adamBeta2)*g*g
			mHat := o.m[name] / (1 - math.Pow(adamBeta1, float64(o.adamT)))
			vHat := o.v[name] / (1 - math.Pow(adamBeta2, float64(o.adamT)))
			o.theta[name] += adamLR * (mHat / (math.Sqrt(vHat) + adamEps))
		}

		o.theta[name] = d.Clip(o.theta[name])
	}
}

// schedule computes c_i and a_i for every updating parameter at
// iteration i.
func (o *Optimizer) schedule(i int) (cVals, aVals map[string]float64) {
	cVals = make(map[string]float64, len(o.c0))
	aVals = make(map[string]float64, len(o.a0))

	fi := float64(i)
	for name, c0 := range o.c0 {
		cVals[name] = c0 / math.Pow(fi, o.cfg.Gamma)
		aVals[name] = o.a0[name] / math.Pow(o.cfg.A+fi, o.cfg.Alpha)
	}
	return cVals, aVals
}

// evaluate runs the self-consistency evaluation match of the current
// parameter vector against itself and builds the resulting checkpoint
// event.
func (o *Optimizer) evaluate(ctx context.Context) (model.CheckpointEvent, error) {
	snap := o.Snapshot()

	rounded := make(map[string]int, len(snap))
	for name, v := range snap {
		rounded[name] = int(math.Round(v))
	}

	wins, losses, draws, err := o.sup.RunSelfPlay(ctx, rounded, o.cfg.TestRounds)
	if err != nil {
		o.warn(fmt.Errorf("evaluation self-play: %w", err))
		wins, losses, draws = 0, 0, 0
	}

	eloVal, sigma2 := elo.Estimate(wins, losses, draws)

	return model.CheckpointEvent{
		Iteration: o.GlobalIter(),
		Elo:       eloVal,
		Elo2Sigma: sigma2,
		Time:      time.Now().Unix(),
		Params:    snap,
	}, nil
}
