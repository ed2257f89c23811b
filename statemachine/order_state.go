package statemachine

import (
	"strings"

	"github.com/pkg/errors"

	"campus-food-api/apperrors"
	"campus-food-api/models"
)

// Actor identifies who is driving a transition
type Actor string

const (
	ActorAdmin  Actor = "admin"
	ActorUser   Actor = "user"
	ActorSystem Actor = "system"
)

// Transition defines a valid state change and who can perform it
type Transition struct {
	From  models.OrderStatus `json:"from"`
	To    models.OrderStatus `json:"to"`
	Actor Actor              `json:"actor"`
}

// validTransitions is the authoritative state machine definition
var validTransitions = []Transition{
	// Kitchen marks the order ready, or hands it over straight away
	{From: models.StatusPending, To: models.StatusReady, Actor: ActorAdmin},
	{From: models.StatusPending, To: models.StatusCompleted, Actor: ActorAdmin},
	{From: models.StatusReady, To: models.StatusCompleted, Actor: ActorAdmin},
	// Only pending orders are cancellable; the store also enforces the cancel window
	{From: models.StatusPending, To: models.StatusCancelled, Actor: ActorUser},
	{From: models.StatusPending, To: models.StatusCancelled, Actor: ActorAdmin},
	{From: models.StatusPending, To: models.StatusCancelled, Actor: ActorSystem},
}

type transitionKey struct {
	From  models.OrderStatus
	To    models.OrderStatus
	Actor Actor
}

var transitionMap = func() map[transitionKey]bool {
	m := make(map[transitionKey]bool)
	for _, t := range validTransitions {
		m[transitionKey{t.From, t.To, t.Actor}] = true
	}
	return m
}()

// ValidTransitionsFrom returns all valid next states from a given state
func ValidTransitionsFrom(status models.OrderStatus) []models.OrderStatus {
	var nexts []models.OrderStatus
	seen := map[models.OrderStatus]bool{}
	for _, t := range validTransitions {
		if t.From == status && !seen[t.To] {
			nexts = append(nexts, t.To)
			seen[t.To] = true
		}
	}
	return nexts
}

// TransitionError reports a rejected transition. It matches apperrors.ErrInvalidTransition.
type TransitionError struct {
	From   models.OrderStatus
	To     models.OrderStatus
	Actor  Actor
	Reason string
}

func (e *TransitionError) Error() string {
	msg := "invalid transition: " + string(e.From) + " → " + string(e.To) +
		" is not allowed for actor '" + string(e.Actor) + "'"
	if e.Reason != "" {
		return msg + ": " + e.Reason
	}
	return msg + ". Valid transitions from " + string(e.From) + " are: " + describeValidFrom(e.From)
}

func (e *TransitionError) Is(target error) bool {
	return target == apperrors.ErrInvalidTransition
}

// CanTransition checks if a given actor can move from one state to another
func CanTransition(from, to models.OrderStatus, actor Actor) error {
	if transitionMap[transitionKey{From: from, To: to, Actor: actor}] {
		return nil
	}
	return &TransitionError{From: from, To: to, Actor: actor}
}

// Rejected builds a TransitionError for a transition the table allows but a guard refused
func Rejected(from, to models.OrderStatus, actor Actor, reason string) error {
	return &TransitionError{From: from, To: to, Actor: actor, Reason: reason}
}

// AsTransitionError extracts a TransitionError from err's chain
func AsTransitionError(err error) (*TransitionError, bool) {
	var te *TransitionError
	if errors.As(err, &te) {
		return te, true
	}
	return nil, false
}

func describeValidFrom(status models.OrderStatus) string {
	nexts := ValidTransitionsFrom(status)
	if len(nexts) == 0 {
		return "none (terminal state)"
	}
	names := make([]string, len(nexts))
	for i, s := range nexts {
		names[i] = string(s)
	}
	return strings.Join(names, ", ")
}

// GetAllTransitions returns the full state machine for documentation
func GetAllTransitions() []Transition {
	return append([]Transition(nil), validTransitions...)
}
