// Package models holds the data shapes shared by the tournament engine:
// players, matches, and the small enums that describe a tournament's
// configuration and lifecycle.
package models

// Format selects which tournament engine drives pairing and routing.
type Format int

const (
	SingleElimination Format = iota
	DoubleElimination
	Swiss
	RoundRobin
	DoubleRoundRobin
)

// SortOrder controls the optional pre-start seed sort.
type SortOrder int

const (
	SortNone SortOrder = iota
	SortAscending
	SortDescending
)

// Status is the tournament's lifecycle state.
type Status int

const (
	Registration Status = iota
	Active
	Playoffs
	Aborted
	Finished
)

// Outcome is a single match's result from one participant's side.
type Outcome int

const (
	OutcomeWin Outcome = iota
	OutcomeLoss
	OutcomeDraw
	OutcomeBye
)

// CutType selects how players are trimmed before an elimination playoff.
type CutType int

const (
	CutNone CutType = iota
	CutRank
	CutPoints
)

// PlayoffFormat is the elimination stage appended after Swiss/round-robin.
type PlayoffFormat int

const (
	PlayoffNone PlayoffFormat = iota
	PlayoffSingleElimination
	PlayoffDoubleElimination
)

// LateEntryMode governs the catch-up entries a late Swiss registrant
// receives for rounds already played.
type LateEntryMode int

const (
	LateEntryByes LateEntryMode = iota
	LateEntryLosses
)

// TiebreakerKind names one of the nine core statistics (plus the
// opponent-cumulative variant) that can be placed in a tournament's
// tiebreaker precedence list.
type TiebreakerKind int

const (
	GameWinPercent TiebreakerKind = iota
	MatchWinPercent
	OpponentMatchWinPercent
	OpponentGameWinPercent
	OpponentOpponentMatchWinPercent
	Solkoff
	MedianBuchholz
	SonnebornBerger
	Cumulative
	OpponentCumulative
)
