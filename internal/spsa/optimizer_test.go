package spsa

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"spsatune/internal/model"
	"spsatune/internal/params"
)

// fakeRunner is a deterministic stand-in for the real match runner.
// pairedFn/selfPlayFn may be nil, in which case every match is a draw.
type fakeRunner struct {
	mu         sync.Mutex
	paired     int
	selfPlay   int
	pairedFn   func(plus, minus map[string]int) (wins, losses, draws int, err error)
	selfPlayFn func(theta map[string]int, rounds int) (wins, losses, draws int, err error)
}

func (f *fakeRunner) RunPaired(ctx context.Context, plus, minus map[string]int) (int, int, int, error) {
	f.mu.Lock()
	f.paired++
	f.mu.Unlock()
	if f.pairedFn != nil {
		return f.pairedFn(plus, minus)
	}
	return 0, 0, 2, nil
}

func (f *fakeRunner) RunSelfPlay(ctx context.Context, theta map[string]int, rounds int) (int, int, int, error) {
	f.mu.Lock()
	f.selfPlay++
	f.mu.Unlock()
	if f.selfPlayFn != nil {
		return f.selfPlayFn(theta, rounds)
	}
	return 0, 0, rounds * 2, nil
}

func testRegistry() params.Registry {
	return params.Registry{
		"A":     {Name: "A", Lo: 0, Hi: 100, Default: 50, CEnd: 2, REnd: 0.2, Origin: params.OriginInfo, Update: true},
		"B":     {Name: "B", Lo: -50, Hi: 50, Default: 0, CEnd: 1, REnd: 0.1, Origin: params.OriginTC, Update: true},
		"Fixed": {Name: "Fixed", Lo: 0, Hi: 10, Default: 5, Origin: params.OriginInfo, Update: false},
	}
}

func baseConfig(iterations int) Config {
	return Config{
		Iterations:  iterations,
		A:           float64(iterations) * 0.1,
		Gamma:       0.101,
		Alpha:       0.602,
		Concurrency: 2,
		SaveStep:    iterations,
		TestRounds:  4,
	}
}

func noop(model.CheckpointEvent) {}

func TestNewPrecomputesScheduleOnlyForUpdatingParams(t *testing.T) {
	reg := testRegistry()
	opt := New(reg, baseConfig(100), &fakeRunner{}, nil)

	require.Contains(t, opt.a0, "A")
	require.Contains(t, opt.a0, "B")
	require.NotContains(t, opt.a0, "Fixed")
	require.Equal(t, reg["A"].Default, opt.theta["A"])
	require.Equal(t, reg["Fixed"].Default, opt.theta["Fixed"])
}

func TestRunAdvancesGlobalIterToCompletion(t *testing.T) {
	reg := testRegistry()
	opt := New(reg, baseConfig(20), &fakeRunner{}, nil)

	require.NoError(t, opt.Run(context.Background(), noop))
	require.Equal(t, 20, opt.GlobalIter())
}

func TestRunAllDrawsKeepsParamsInRange(t *testing.T) {
	reg := testRegistry()
	opt := New(reg, baseConfig(40), &fakeRunner{}, nil)

	var lastEvent model.CheckpointEvent
	err := opt.Run(context.Background(), func(e model.CheckpointEvent) { lastEvent = e })
	require.NoError(t, err)
	require.Equal(t, 40, opt.GlobalIter())

	for name, d := range reg {
		if !d.Update {
			continue
		}
		v := opt.Snapshot()[name]
		require.GreaterOrEqual(t, v, d.Lo)
		require.LessOrEqual(t, v, d.Hi)
	}
	require.Equal(t, 40, lastEvent.Iteration)
}

func TestRunAlwaysPlusWinsMovesTheta(t *testing.T) {
	reg := params.Registry{
		"A": {Name: "A", Lo: 0, Hi: 1000, Default: 500, CEnd: 5, REnd: 0.5, Origin: params.OriginInfo, Update: true},
	}
	runner := &fakeRunner{
		pairedFn: func(plus, minus map[string]int) (int, int, int, error) {
			return 10, 0, 0, nil
		},
	}
	opt := New(reg, baseConfig(60), runner, nil)

	require.NoError(t, opt.Run(context.Background(), noop))
	// A nonzero score on every step gives a nonzero gradient each time,
	// which must move theta away from its initial default over 60 steps.
	require.NotEqual(t, 500.0, opt.Snapshot()["A"])
}

func TestRunRespectsContextCancellation(t *testing.T) {
	reg := testRegistry()
	cfg := baseConfig(100000)
	cfg.SaveStep = 10
	opt := New(reg, cfg, &fakeRunner{}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(5*time.Millisecond, cancel)

	err := opt.Run(ctx, noop)
	require.Error(t, err)
	require.Less(t, opt.GlobalIter(), 100000)
}

func TestRunEmitsCheckpointAtEveryPhaseBoundary(t *testing.T) {
	reg := testRegistry()
	cfg := baseConfig(30)
	cfg.SaveStep = 10
	opt := New(reg, cfg, &fakeRunner{}, nil)

	var n int
	require.NoError(t, opt.Run(context.Background(), func(model.CheckpointEvent) { n++ }))
	require.Equal(t, 3, n)
}

func TestScheduleShrinksOverIterations(t *testing.T) {
	reg := testRegistry()
	opt := New(reg, baseConfig(1000), &fakeRunner{}, nil)

	cEarly, _ := opt.schedule(1)
	cLate, _ := opt.schedule(999)
	require.Greater(t, cEarly["A"], cLate["A"])
}

func TestAdamAndSGDBothClip(t *testing.T) {
	reg := params.Registry{
		"A": {Name: "A", Lo: 10, Hi: 20, Default: 15, CEnd: 50, REnd: 50, Origin: params.OriginInfo, Update: true},
	}
	runner := &fakeRunner{pairedFn: func(plus, minus map[string]int) (int, int, int, error) {
		return 100, 0, 0, nil
	}}

	for _, useAdam := range []bool{false, true} {
		cfg := baseConfig(20)
		cfg.UseAdam = useAdam
		opt := New(reg, cfg, runner, nil)
		require.NoError(t, opt.Run(context.Background(), noop))
		v := opt.Snapshot()["A"]
		require.GreaterOrEqual(t, v, 10.0)
		require.LessOrEqual(t, v, 20.0)
	}
}

func TestAllDrawsNeverMoveTheta(t *testing.T) {
	// A zero-score gradient (wins == losses) must never perturb theta,
	// regardless of the perturbation signs drawn along the way.
	reg := testRegistry()
	for i := 0; i < 3; i++ {
		opt := New(reg, baseConfig(50), &fakeRunner{}, nil)
		require.NoError(t, opt.Run(context.Background(), noop))
		require.Equal(t, 50.0, opt.Snapshot()["A"])
		require.Equal(t, 0.0, opt.Snapshot()["B"])
	}
}

func TestSubprocessErrorContributesZeroGradient(t *testing.T) {
	reg := testRegistry()
	runner := &fakeRunner{pairedFn: func(plus, minus map[string]int) (int, int, int, error) {
		return 0, 0, 0, &fakeSubprocessError{}
	}}
	opt := New(reg, baseConfig(20), runner, nil)

	require.NoError(t, opt.Run(context.Background(), noop))
	require.Equal(t, 20, opt.GlobalIter())
	require.Equal(t, 50.0, opt.Snapshot()["A"])
}

func TestSubprocessErrorIsWarned(t *testing.T) {
	reg := testRegistry()
	runner := &fakeRunner{pairedFn: func(plus, minus map[string]int) (int, int, int, error) {
		return 0, 0, 0, &fakeSubprocessError{}
	}}

	var mu sync.Mutex
	var warnings int
	warn := func(err error) {
		mu.Lock()
		defer mu.Unlock()
		warnings++
	}
	opt := New(reg, baseConfig(20), runner, warn)

	require.NoError(t, opt.Run(context.Background(), noop))

	mu.Lock()
	defer mu.Unlock()
	require.Positive(t, warnings)
}

type fakeSubprocessError struct{}

func (e *fakeSubprocessError) Error() string { return "fake subprocess failure" }
