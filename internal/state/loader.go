package state

import (
	"bufio"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"spsatune/internal/model"
)

// LoadFromLog reads the most recent run's log file under logDir and
// replays it into up to `limit` checkpoint events (most recent first
// order is not required; callers Add them in file order). This only
// hydrates the live broadcaster's display history. It never feeds the
// optimizer's own state, which is always reinitialized from the
// parameter registry.
func LoadFromLog(logDir string, limit int) []model.CheckpointEvent {
	pattern := filepath.Join(logDir, "*.log")
	files, err := filepath.Glob(pattern)
	if err != nil || len(files) == 0 {
		log.Printf("[Loader] No log files found in %s", logDir)
		return nil
	}

	sort.Strings(files)
	latest := files[len(files)-1]
	log.Printf("[Loader] Replaying history from %s", latest)

	f, err := os.Open(latest)
	if err != nil {
		log.Printf("[Loader] Failed to open %s: %v", latest, err)
		return nil
	}
	defer f.Close()

	events := parseLog(bufio.NewScanner(f))
	if len(events) > limit {
		events = events[len(events)-limit:]
	}

	log.Printf("[Loader] Parsed %d checkpoint events from %s", len(events), latest)
	return events
}

// parseLog scans the checkpoint log format:
//
//	Iteration <i>: Elo=<x.xx> ±<y.yy>
//	Parameters:
//	  <name>: <value3dp>
//	  ...
func parseLog(sc *bufio.Scanner) []model.CheckpointEvent {
	var events []model.CheckpointEvent
	var cur *model.CheckpointEvent

	for sc.Scan() {
		line := sc.Text()

		switch {
		case strings.HasPrefix(line, "Iteration "):
			if cur != nil {
				events = append(events, *cur)
			}
			cur = parseIterationLine(line)
		case cur != nil && strings.HasPrefix(line, "  "):
			name, val, ok := parseParamLine(line)
			if ok {
				cur.Params[name] = val
			}
		}
	}
	if cur != nil {
		events = append(events, *cur)
	}
	return events
}

func parseIterationLine(line string) *model.CheckpointEvent {
	// "Iteration 2000: Elo=1.23 ±4.56"
	rest := strings.TrimPrefix(line, "Iteration ")
	parts := strings.SplitN(rest, ":", 2)
	if len(parts) != 2 {
		return nil
	}
	iter, _ := strconv.Atoi(strings.TrimSpace(parts[0]))

	eloPart := strings.TrimSpace(parts[1])
	eloPart = strings.TrimPrefix(eloPart, "Elo=")
	fields := strings.SplitN(eloPart, "±", 2)
	elo, _ := strconv.ParseFloat(strings.TrimSpace(fields[0]), 64)
	var sigma float64
	if len(fields) == 2 {
		sigma, _ = strconv.ParseFloat(strings.TrimSpace(fields[1]), 64)
	}

	return &model.CheckpointEvent{
		Iteration: iter,
		Elo:       elo,
		Elo2Sigma: sigma,
		Params:    make(map[string]float64),
	}
}

func parseParamLine(line string) (name string, val float64, ok bool) {
	trimmed := strings.TrimSpace(line)
	parts := strings.SplitN(trimmed, ":", 2)
	if len(parts) != 2 {
		return "", 0, false
	}
	name = strings.TrimSpace(parts[0])
	v, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return "", 0, false
	}
	return name, v, true
}
