// Package model holds the value types shared across the optimizer,
// the checkpoint logger and the live telemetry broadcaster.
package model

import (
	"math"
	"sort"
)

// CheckpointEvent is the unit published at every SPSA checkpoint
// boundary: a snapshot of the current parameter vector together with
// the Elo estimate of its latest self-consistency evaluation match.
type CheckpointEvent struct {
	Iteration int
	Elo       float64
	Elo2Sigma float64
	Time      int64 // unix seconds

	// Params is a name->value snapshot copied from the optimizer's state.
	// The bus hands the same map to every subscriber, so publishers must
	// not mutate a map after handing it to the bus.
	Params map[string]float64
}

// SortedNames returns the parameter names of the event in stable,
// alphabetical order, used by both the log writer and the MsgPack
// encoder so that consumers see a deterministic field order.
func (e *CheckpointEvent) SortedNames() []string {
	names := make([]string, 0, len(e.Params))
	for name := range e.Params {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// AppendMsgPack appends the MsgPack representation of the event to the
// provided buffer. Format: FixMap-or-Map16 with keys
// "iteration","elo","elo2sigma","time","params" where params is itself
// a map of name -> float64.
func (e *CheckpointEvent) AppendMsgPack(b []byte) []byte {
	b = appendMapHeader(b, 5)

	b = appendStr(b, "iteration")
	b = appendInt64(b, int64(e.Iteration))

	b = appendStr(b, "elo")
	b = appendFloat64(b, e.Elo)

	b = appendStr(b, "elo2sigma")
	b = appendFloat64(b, e.Elo2Sigma)

	b = appendStr(b, "time")
	b = appendInt64(b, e.Time)

	b = appendStr(b, "params")
	names := e.SortedNames()
	b = appendMapHeader(b, len(names))
	for _, name := range names {
		b = appendStr(b, name)
		b = appendFloat64(b, e.Params[name])
	}

	return b
}

func appendMapHeader(b []byte, n int) []byte {
	if n <= 15 {
		return append(b, 0x80|byte(n))
	}
	// Map16
	b = append(b, 0xde, byte(n>>8), byte(n))
	return b
}

func appendStr(b []byte, s string) []byte {
	n := len(s)
	if n <= 31 {
		b = append(b, 0xa0|byte(n))
	} else {
		b = append(b, 0xda, byte(n>>8), byte(n))
	}
	return append(b, s...)
}

func appendFloat64(b []byte, v float64) []byte {
	b = append(b, 0xcb)
	bits := math.Float64bits(v)
	return append(b, byte(bits>>56), byte(bits>>48), byte(bits>>40), byte(bits>>32),
		byte(bits>>24), byte(bits>>16), byte(bits>>8), byte(bits))
}

func appendInt64(b []byte, v int64) []byte {
	if v >= 0 && v <= 127 {
		return append(b, byte(v))
	}
	if v < 0 && v >= -32 {
		return append(b, byte(v))
	}
	b = append(b, 0xd3)
	return append(b, byte(v>>56), byte(v>>48), byte(v>>40), byte(v>>32),
		byte(v>>24), byte(v>>16), byte(v>>8), byte(v))
}
