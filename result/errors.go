// Package result defines the closed error-kind taxonomy shared by every
// GraphBox package. It has no Option-style helpers: APIs that need to
// distinguish "absent" from "zero value" use Go's own (value, ok) returns or
// nil pointers.
//
// Every fallible GraphBox operation returns a plain Go error. Callers that
// need to branch on the failure kind use errors.As against *Error and
// inspect its Kind; callers that only care about recognizing one specific
// failure continue to use errors.Is against the package-level sentinels,
// exactly as the rest of this module's packages do.
package result

import (
	"errors"
	"fmt"
)

// Kind is a closed tag identifying the category of a GraphBox failure.
type Kind string

// The closed set of error kinds. Do not add a new Kind without updating
// this list and sentinelByKind below in lockstep.
const (
	DuplicateNode   Kind = "duplicate-node"
	InvalidInput    Kind = "invalid-input"
	NodeNotFound    Kind = "node-not-found"
	NegativeWeight  Kind = "negative-weight"
	InvalidWeight   Kind = "invalid-weight"
	CycleDetected   Kind = "cycle-detected"
	InvalidRadius   Kind = "invalid-radius"
	InvalidFilter   Kind = "invalid-filter"
	InvalidTruss    Kind = "invalid-truss"
	DuplicateEdge   Kind = "duplicate-edge"
)

// sentinels allow errors.Is(err, result.ErrDuplicateNode) style checks
// without requiring callers to import the Kind constants.
var (
	ErrDuplicateNode  = errors.New(string(DuplicateNode))
	ErrInvalidInput   = errors.New(string(InvalidInput))
	ErrNodeNotFound   = errors.New(string(NodeNotFound))
	ErrNegativeWeight = errors.New(string(NegativeWeight))
	ErrInvalidWeight  = errors.New(string(InvalidWeight))
	ErrCycleDetected  = errors.New(string(CycleDetected))
	ErrInvalidRadius  = errors.New(string(InvalidRadius))
	ErrInvalidFilter  = errors.New(string(InvalidFilter))
	ErrInvalidTruss   = errors.New(string(InvalidTruss))
	ErrDuplicateEdge  = errors.New(string(DuplicateEdge))
)

var sentinelByKind = map[Kind]error{
	DuplicateNode:  ErrDuplicateNode,
	InvalidInput:   ErrInvalidInput,
	NodeNotFound:   ErrNodeNotFound,
	NegativeWeight: ErrNegativeWeight,
	InvalidWeight:  ErrInvalidWeight,
	CycleDetected:  ErrCycleDetected,
	InvalidRadius:  ErrInvalidRadius,
	InvalidFilter:  ErrInvalidFilter,
	InvalidTruss:   ErrInvalidTruss,
	DuplicateEdge:  ErrDuplicateEdge,
}

// Error is the structured failure value carried at GraphBox API boundaries.
// It attaches the closed Kind plus optional context fields (NodeID, EdgeID,
// Weight, Input, CyclePath) relevant to that failure kind.
type Error struct {
	Kind      Kind
	Message   string
	NodeID    string
	EdgeID    string
	Weight    float64
	Input     string
	CyclePath []string
}

// New builds an *Error of the given kind with a formatted message.
func New(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// WithNode attaches a node ID to the error and returns the receiver for chaining.
func (e *Error) WithNode(id string) *Error { e.NodeID = id; return e }

// WithEdge attaches an edge ID to the error and returns the receiver for chaining.
func (e *Error) WithEdge(id string) *Error { e.EdgeID = id; return e }

// WithWeight attaches the offending weight value and returns the receiver for chaining.
func (e *Error) WithWeight(w float64) *Error { e.Weight = w; return e }

// WithCycle attaches a discovered cycle path and returns the receiver for chaining.
func (e *Error) WithCycle(path []string) *Error { e.CyclePath = append([]string(nil), path...); return e }

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Message == "" {
		return string(e.Kind)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap allows errors.Is(err, result.ErrXxx) to succeed against the
// package-level sentinel matching e.Kind, and errors.Is(err, anotherErr)
// to fall through normally when the kinds differ.
func (e *Error) Unwrap() error {
	return sentinelByKind[e.Kind]
}

// Is reports whether target is the sentinel for e.Kind, making
// errors.Is(err, result.ErrInvalidInput) work without an explicit Unwrap chain.
func (e *Error) Is(target error) bool {
	return sentinelByKind[e.Kind] == target
}
