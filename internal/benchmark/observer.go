// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package benchmark

import "time"

// EventKind identifies a progress event emitted by the Runner.
type EventKind int

const (
	EventRunStarted EventKind = iota
	EventTrialStarted
	EventSearchStarted
	EventSearchFinished
	EventSortStarted
	EventSortFinished
	EventTrialFinished
	EventRunFinished
)

// TargetKind distinguishes the two targets searched per trial.
type TargetKind string

const (
	TargetExisting TargetKind = "existing"
	TargetMissing  TargetKind = "missing"
)

// Event describes a step of a run. Only the fields relevant to Kind are
// set. Events are never emitted while a measurement is in progress.
type Event struct {
	Kind EventKind

	// Run
	Sizes  []int
	Seed   uint64
	Report *Report

	// Trial
	Size int

	// Search / sort
	Algorithm  Algorithm
	Target     int
	TargetKind TargetKind
	Index      int
	Elapsed    time.Duration
}

// Observer receives progress events.
type Observer interface {
	Observe(Event)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(Event)

// Observe calls f(e).
func (f ObserverFunc) Observe(e Event) { f(e) }

// Observers fans an event out to several observers in order.
type Observers []Observer

// Observe forwards e to every observer.
func (o Observers) Observe(e Event) {
	for _, obs := range o {
		if obs != nil {
			obs.Observe(e)
		}
	}
}

type nopObserver struct{}

func (nopObserver) Observe(Event) {}
