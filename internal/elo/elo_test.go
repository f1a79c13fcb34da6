package elo

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEstimateEvenScore(t *testing.T) {
	e, sigma := Estimate(50, 50, 0)
	require.InDelta(t, 0, e, 1e-9)
	require.Greater(t, sigma, 0.0)
}

func TestEstimateAllWins(t *testing.T) {
	e, sigma := Estimate(100, 0, 0)
	require.Greater(t, e, 0.0)
	require.False(t, isNaN(e))
	require.False(t, isNaN(sigma))
}

func TestEstimateAllLosses(t *testing.T) {
	e, _ := Estimate(0, 100, 0)
	require.Less(t, e, 0.0)
}

func TestEstimateNoGames(t *testing.T) {
	e, sigma := Estimate(0, 0, 0)
	require.Equal(t, 0.0, e)
	require.Equal(t, 0.0, sigma)
}

func TestEstimateAllDraws(t *testing.T) {
	e, _ := Estimate(0, 0, 40)
	require.InDelta(t, 0, e, 1e-9)
}

func TestEstimateMonotonic(t *testing.T) {
	eLow, _ := Estimate(40, 60, 0)
	eHigh, _ := Estimate(60, 40, 0)
	require.Less(t, eLow, eHigh)
}

func isNaN(f float64) bool { return f != f }
