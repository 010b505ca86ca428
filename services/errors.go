package services

import "errors"

// Errors shared across the service layer and mapped to HTTP statuses by the
// handlers. Engine sentinel errors stay wrapped underneath these so callers
// can still errors.Is against the precise cause.
var (
	ErrSnapshotInvalid        = errors.New("snapshot failed a precondition")
	ErrBracketGeneration      = errors.New("bracket generation failed")
	ErrGroupAssignment        = errors.New("group assignment failed")
	ErrFixtureGeneration      = errors.New("fixture generation failed")
	ErrStandingsComputeFailed = errors.New("standings computation failed")
	ErrQualifierExtraction    = errors.New("qualifier extraction failed")
	ErrStageClose             = errors.New("stage close pipeline failed")
)
