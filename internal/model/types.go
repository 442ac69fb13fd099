// Package model defines shared data structures.
package model

import "time"

// Config defines scan settings.
type Config struct {
	Roots       []string
	Output      string
	ChineseOnly bool
	KeepOutput  bool
	Record      bool
	Verbose     bool
	Extensions  []string
	Exclude     []string
}

// RunSummary captures a completed inventory run.
type RunSummary struct {
	ID               int64
	StartedAt        time.Time
	EndedAt          time.Time
	OutputPath       string
	ChineseOnly      bool
	FilesScanned     int
	FilesSkipped     int
	UniqueChars      int
	TotalOccurrences int
}

// CharCount stores the occurrence count of one character.
type CharCount struct {
	Char  rune
	Count int
}
