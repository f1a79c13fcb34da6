package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"spsatune/internal/broadcast"
	"spsatune/internal/bus"
	"spsatune/internal/logger"
	"spsatune/internal/match"
	"spsatune/internal/model"
	"spsatune/internal/params"
	"spsatune/internal/spsa"
	"spsatune/internal/state"
)

const historyBufferSize = 4096

func main() {
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	var (
		target       = flag.String("spsa-target", "info", "which parameter group to tune: both, info, tc")
		jsonInfo     = flag.String("json-info", "", "path to a JSON override file for the info parameter group")
		jsonTC       = flag.String("json-tc", "", "path to a JSON override file for the tc parameter group")
		iterations   = flag.Int("iterations", 100000, "total number of SPSA iterations")
		concurrency  = flag.Int("concurrency", 4, "number of concurrent SPSA workers")
		saveStep     = flag.Int("save-step", 200, "iterations between checkpoint evaluations")
		testRounds   = flag.Int("test-rounds", 200, "rounds played in each checkpoint evaluation match")
		useAdam      = flag.Bool("use-adam", false, "use the Adam update rule instead of plain SGD")
		aConst       = flag.Float64("A", 0, "SPSA stability constant; 0 selects 0.1*iterations")
		liveAddr     = flag.String("live-addr", "", "address to serve the live telemetry broadcaster on, e.g. :8080 (empty disables it)")
		matchTimeout = flag.Duration("match-timeout", 0, "hard per-match subprocess deadline, 0 disables it")
		logDir       = flag.String("log-dir", "log", "directory for checkpoint log files")

		runnerPath   = flag.String("runner", "cutechess-cli", "path to the match-runner executable")
		enginePath   = flag.String("engine", "", "path to the engine binary under test")
		timeControl  = flag.Int("tc", 1, "seconds per side passed to the match runner")
		games        = flag.Int("games", 2, "games per SPSA work unit")
		runnerConc   = flag.Int("runner-concurrency", 1, "-concurrency passed to the match runner itself")
		openings     = flag.String("openings", "", "path to the EPD openings book")
		resignScore  = flag.Int("resign-score", 0, "resign score threshold, 0 disables resign")
		resignMoves  = flag.Int("resign-moves", 0, "resign movecount threshold")
		drawMoveNum  = flag.Int("draw-movenumber", 0, "draw adjudication movenumber threshold")
		drawMoves    = flag.Int("draw-movecount", 0, "draw adjudication movecount threshold")
		drawScore    = flag.Int("draw-score", 0, "draw adjudication score threshold")
	)
	flag.Parse()

	if *enginePath == "" {
		log.Fatal("spsatune: -engine is required")
	}

	ctx, cancel := context.WithCancel(context.Background())

	warn := func(err error) { log.Printf("[params] %v", err) }

	overrides := make(map[string]map[string]float64)
	if ov, err := params.LoadOverrideFile(*jsonInfo); err != nil {
		warn(err)
	} else if ov != nil {
		overrides[*jsonInfo] = ov
	}
	if ov, err := params.LoadOverrideFile(*jsonTC); err != nil {
		warn(err)
	} else if ov != nil {
		overrides[*jsonTC] = ov
	}

	reg := params.Load(overrides, params.Group(*target), warn)
	log.Printf("[params] loaded %d parameters, %d updating", len(reg.Names()), len(reg.UpdatingNames()))

	sup := match.New(match.Settings{
		RunnerPath:   *runnerPath,
		EnginePath:   *enginePath,
		TimeControl:  *timeControl,
		Games:        *games,
		Concurrency:  *runnerConc,
		OpeningsFile: *openings,
		ResignScore:  *resignScore,
		ResignMoves:  *resignMoves,
		DrawMoveNum:  *drawMoveNum,
		DrawMoves:    *drawMoves,
		DrawScore:    *drawScore,
		Timeout:      *matchTimeout,
	})

	A := *aConst
	if A <= 0 {
		A = 0.1 * float64(*iterations)
	}

	opt := spsa.New(reg, spsa.Config{
		Iterations:  *iterations,
		A:           A,
		Gamma:       0.101,
		Alpha:       0.602,
		Concurrency: *concurrency,
		SaveStep:    *saveStep,
		UseAdam:     *useAdam,
		TestRounds:  *testRounds,
	}, sup, func(err error) { log.Printf("[spsa] %v", err) })

	// Read the previous run's history before logger.New creates this
	// run's empty log file, which would otherwise sort as the latest.
	var priorHistory []model.CheckpointEvent
	if *liveAddr != "" {
		priorHistory = state.LoadFromLog(*logDir, historyBufferSize)
	}

	checkpointLog, err := logger.New(*logDir)
	if err != nil {
		log.Fatalf("spsatune: %v", err)
	}
	defer checkpointLog.Close()

	eventBus := bus.NewBus()
	logCh := eventBus.Subscribe(16)
	go func() {
		for event := range logCh {
			if err := checkpointLog.Log(event); err != nil {
				log.Printf("[logger] failed to write checkpoint: %v", err)
			}
		}
	}()

	if *liveAddr != "" {
		history := state.NewRingBuffer(historyBufferSize)
		for _, event := range priorHistory {
			history.Add(event)
		}

		liveCh := eventBus.Subscribe(16)
		liveCh2 := make(chan model.CheckpointEvent, 16)
		go func() {
			for event := range liveCh {
				history.Add(event)
				select {
				case liveCh2 <- event:
				default:
				}
			}
		}()

		broadcaster := broadcast.NewBroadcaster(liveCh2, history)
		go func() {
			if err := broadcaster.Start(ctx, *liveAddr); err != nil {
				log.Printf("[live] broadcaster stopped: %v", err)
			}
		}()
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Println("spsatune: received interrupt, finishing in-flight phase...")
		cancel()
	}()

	log.Printf("spsatune: starting %d iterations, concurrency=%d, save-step=%d, adam=%v", *iterations, *concurrency, *saveStep, *useAdam)

	err = opt.Run(ctx, func(event model.CheckpointEvent) {
		log.Printf("[checkpoint] iteration=%d elo=%.2f ±%.2f", event.Iteration, event.Elo, event.Elo2Sigma)
		eventBus.Publish(event)
	})
	if err != nil && err != context.Canceled {
		log.Printf("spsatune: run ended with error: %v", err)
	}

	log.Printf("spsatune: stopped at iteration %d, log written to %s", opt.GlobalIter(), checkpointLog.Path())
}
