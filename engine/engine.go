package engine

import "cephalopod/experiments/metrics"

type Engine interface {
	// Run reads a board, solves it and writes the hash
	Run() (hash uint32, metric metrics.SolveMetric, err error)
}
