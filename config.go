package sesdiff

import "github.com/fishan/sesdiff/internal/engconf"

// AnchorSearchMode selects which anchors the anchor finder keeps after
// scoring (spec.md §4.4, "Type filter").
type AnchorSearchMode int

const (
	// Combo keeps all anchors regardless of drift.
	Combo AnchorSearchMode = iota
	// Floating keeps only anchors with drift beyond PositionalAnchorMaxDrift.
	Floating
	// Positional keeps only anchors within PositionalAnchorMaxDrift.
	Positional
)

// Config collects every tunable the engine recognizes (spec.md §3).
// The zero value is not ready to use; start from DefaultConfig and
// override only what you need, the same way the teacher's Option
// functions layer onto defaultOptions (dacharyc-diffx/diffx.go).
type Config struct {
	StrategyName string

	MinMatchLength      int
	QuickDiffThreshold  int
	HugeDiffThreshold   int
	Lookahead           int
	CorridorWidth       int
	SkipTrimming        bool
	JumpStep            int
	HuntChunkSize       int
	MinAnchorConfidence float64
	UseAnchors          bool
	LocalLookahead      int
	AnchorSearchMode    AnchorSearchMode

	PositionalAnchorMaxDrift int
	RarityThreshold          int
	AllowPreShiftGuard       bool
}

// DefaultConfig returns the spec.md §3 default configuration.
func DefaultConfig() Config {
	return fromInternal(engconf.Default)
}

func (c Config) toInternal() engconf.Config {
	return engconf.Config{
		StrategyName:             c.StrategyName,
		MinMatchLength:           c.MinMatchLength,
		QuickDiffThreshold:       c.QuickDiffThreshold,
		HugeDiffThreshold:        c.HugeDiffThreshold,
		Lookahead:                c.Lookahead,
		CorridorWidth:            c.CorridorWidth,
		SkipTrimming:             c.SkipTrimming,
		JumpStep:                 c.JumpStep,
		HuntChunkSize:            c.HuntChunkSize,
		MinAnchorConfidence:      c.MinAnchorConfidence,
		UseAnchors:               c.UseAnchors,
		LocalLookahead:           c.LocalLookahead,
		AnchorSearchMode:         engconf.AnchorSearchMode(c.AnchorSearchMode),
		PositionalAnchorMaxDrift: c.PositionalAnchorMaxDrift,
		RarityThreshold:          c.RarityThreshold,
		AllowPreShiftGuard:       c.AllowPreShiftGuard,
	}
}

func fromInternal(cfg engconf.Config) Config {
	return Config{
		StrategyName:             cfg.StrategyName,
		MinMatchLength:           cfg.MinMatchLength,
		QuickDiffThreshold:       cfg.QuickDiffThreshold,
		HugeDiffThreshold:        cfg.HugeDiffThreshold,
		Lookahead:                cfg.Lookahead,
		CorridorWidth:            cfg.CorridorWidth,
		SkipTrimming:             cfg.SkipTrimming,
		JumpStep:                 cfg.JumpStep,
		HuntChunkSize:            cfg.HuntChunkSize,
		MinAnchorConfidence:      cfg.MinAnchorConfidence,
		UseAnchors:               cfg.UseAnchors,
		LocalLookahead:           cfg.LocalLookahead,
		AnchorSearchMode:         AnchorSearchMode(cfg.AnchorSearchMode),
		PositionalAnchorMaxDrift: cfg.PositionalAnchorMaxDrift,
		RarityThreshold:          cfg.RarityThreshold,
		AllowPreShiftGuard:       cfg.AllowPreShiftGuard,
	}
}

// merged implements spec.md §4.10 step 1 ("merge the caller's config
// over the defaults") field-by-field, the same contract znkr-diff's
// Option functions and the teacher's defaultOptions() place on their
// own callers: an override field left at its zero value falls back to
// DefaultConfig()'s value for that field; a nil override means "use
// the defaults outright".
//
// Bool and AnchorSearchMode fields are the one exception: Go has no
// way to tell "left unset" apart from "explicitly set to false/Combo",
// so those four fields are taken from override verbatim rather than
// merged. Callers who only want to flip one of them should still start
// from DefaultConfig() and change just that field, as documented on
// Config.
func merged(override *Config) Config {
	base := DefaultConfig()
	if override == nil {
		return base
	}

	out := base
	if override.StrategyName != "" {
		out.StrategyName = override.StrategyName
	}
	if override.MinMatchLength != 0 {
		out.MinMatchLength = override.MinMatchLength
	}
	if override.QuickDiffThreshold != 0 {
		out.QuickDiffThreshold = override.QuickDiffThreshold
	}
	if override.HugeDiffThreshold != 0 {
		out.HugeDiffThreshold = override.HugeDiffThreshold
	}
	if override.Lookahead != 0 {
		out.Lookahead = override.Lookahead
	}
	if override.CorridorWidth != 0 {
		out.CorridorWidth = override.CorridorWidth
	}
	if override.JumpStep != 0 {
		out.JumpStep = override.JumpStep
	}
	if override.HuntChunkSize != 0 {
		out.HuntChunkSize = override.HuntChunkSize
	}
	if override.MinAnchorConfidence != 0 {
		out.MinAnchorConfidence = override.MinAnchorConfidence
	}
	if override.LocalLookahead != 0 {
		out.LocalLookahead = override.LocalLookahead
	}
	if override.PositionalAnchorMaxDrift != 0 {
		out.PositionalAnchorMaxDrift = override.PositionalAnchorMaxDrift
	}
	if override.RarityThreshold != 0 {
		out.RarityThreshold = override.RarityThreshold
	}

	out.SkipTrimming = override.SkipTrimming
	out.UseAnchors = override.UseAnchors
	out.AnchorSearchMode = override.AnchorSearchMode
	out.AllowPreShiftGuard = override.AllowPreShiftGuard

	return out
}
