package model

// Package model defines domain data structures shared across the app: the
// rendering parameter set, copy feedback states and preview requests.
// Structures are plain values with explicit state transitions.
