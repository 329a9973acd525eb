package domain

import (
	"fmt"
	"slices"

	"github.com/benfrussell/AutoCopilot/pkg/schema"
)

// ActionKind identifies the command an Action carries.
type ActionKind string

// Action kinds. The string values are part of the serialized tree format.
const (
	// ActionLog writes a message to the executor log.
	// Parameters: [text string]
	ActionLog ActionKind = "Log"

	// ActionSetMavlinkServo sets a servo output through the flight controller.
	// Parameters: [channel int, pwm int]
	ActionSetMavlinkServo ActionKind = "SetMavlinkServo"

	// ActionSetRPIPWM drives a PWM pin on the companion computer.
	// Parameters: [pin int, duty float]
	ActionSetRPIPWM ActionKind = "SetRPIPWM"

	// ActionSetRPIGPIO sets a GPIO pin on the companion computer.
	// Parameters: [pin int, high bool]
	ActionSetRPIGPIO ActionKind = "SetRPIGPIO"

	// ActionStartTimer, ActionStopTimer and ActionResetTimer control a named timer.
	// Parameters: [name string]
	ActionStartTimer ActionKind = "StartTimer"
	ActionStopTimer  ActionKind = "StopTimer"
	ActionResetTimer ActionKind = "ResetTimer"

	// ActionInitiateReturnHome asks the vehicle to return to launch.
	ActionInitiateReturnHome ActionKind = "InitiateReturnHome"

	// ActionFinishInstruction marks the enclosing instruction as complete.
	ActionFinishInstruction ActionKind = "FinishInstruction"

	// ActionSetFlag sets a named boolean flag.
	// Parameters: [name string, value bool]
	ActionSetFlag ActionKind = "SetFlag"

	// ActionSetCopilotStage moves the copilot to a named stage.
	// Parameters: [stage string]
	ActionSetCopilotStage ActionKind = "SetCopilotStage"
)

// Hardware limits used by the parameter shapes.
const (
	MavlinkServoChannels = 16
	MaxServoPWM          = 65535
	MaxRPIPin            = 27
)

var actionKinds = []ActionKind{
	ActionLog,
	ActionSetMavlinkServo,
	ActionSetRPIPWM,
	ActionSetRPIGPIO,
	ActionStartTimer,
	ActionStopTimer,
	ActionResetTimer,
	ActionInitiateReturnHome,
	ActionFinishInstruction,
	ActionSetFlag,
	ActionSetCopilotStage,
}

var actionParams = map[ActionKind]schema.Params{
	ActionLog:                {schema.String()},
	ActionSetMavlinkServo:    {schema.IntRange(1, MavlinkServoChannels), schema.IntRange(0, MaxServoPWM)},
	ActionSetRPIPWM:          {schema.IntRange(0, MaxRPIPin), schema.FloatRange(0, 1)},
	ActionSetRPIGPIO:         {schema.IntRange(0, MaxRPIPin), schema.Bool()},
	ActionStartTimer:         {schema.NonEmptyString()},
	ActionStopTimer:          {schema.NonEmptyString()},
	ActionResetTimer:         {schema.NonEmptyString()},
	ActionInitiateReturnHome: {},
	ActionFinishInstruction:  {},
	ActionSetFlag:            {schema.NonEmptyString(), schema.Bool()},
	ActionSetCopilotStage:    {schema.NonEmptyString()},
}

// Kinds returns every action kind in declaration order.
func Kinds() []ActionKind {
	return slices.Clone(actionKinds)
}

// ParseActionKind maps a kind name to its ActionKind.
func ParseActionKind(name string) (ActionKind, error) {
	k := ActionKind(name)
	if _, ok := actionParams[k]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownActionKind, name)
	}
	return k, nil
}

// KindSpec describes the parameter shape of one action kind.
type KindSpec struct {
	Kind       ActionKind    `json:"kind" yaml:"kind"`
	Parameters schema.Params `json:"parameters" yaml:"-"`
}

// ActionCatalog returns the parameter shape of every action kind, in declaration order.
func ActionCatalog() []KindSpec {
	specs := make([]KindSpec, 0, len(actionKinds))
	for _, k := range actionKinds {
		specs = append(specs, KindSpec{Kind: k, Parameters: actionParams[k]})
	}
	return specs
}

// Action is an immutable command attached to an Instruction.
type Action struct {
	kind   ActionKind
	params []any
}

// NewAction builds an action of the given kind after checking params against the kind's shape.
func NewAction(kind ActionKind, params ...any) (Action, error) {
	shape, ok := actionParams[kind]
	if !ok {
		return Action{}, fmt.Errorf("%w: %q", ErrUnknownActionKind, kind)
	}
	if err := schema.Validate(shape, params); err != nil {
		return Action{}, fmt.Errorf("%w for %s: %w", ErrInvalidParameters, kind, err)
	}
	return Action{kind: kind, params: slices.Clone(params)}, nil
}

// MustAction panics if err is non-nil. Intended for literal mission definitions.
func MustAction(a Action, err error) Action {
	if err != nil {
		panic(err)
	}
	return a
}

// Kind returns the action kind.
func (a Action) Kind() ActionKind { return a.kind }

// Parameters returns a copy of the action parameters.
func (a Action) Parameters() []any {
	if a.params == nil {
		return []any{}
	}
	return slices.Clone(a.params)
}

func (a Action) String() string {
	return fmt.Sprintf("%s%v", a.kind, a.Parameters())
}

// --- Builders ---

// Log builds a Log action whose only parameter is text.
func Log(text string) Action {
	return Action{kind: ActionLog, params: []any{text}}
}

// SetMavlinkServo builds a servo command for channel (1-16) with a pwm value in microseconds.
func SetMavlinkServo(channel, pwm int) (Action, error) {
	return NewAction(ActionSetMavlinkServo, channel, pwm)
}

// SetRPIPWM builds a PWM command for a BCM pin with duty in [0, 1].
func SetRPIPWM(pin int, duty float64) (Action, error) {
	return NewAction(ActionSetRPIPWM, pin, duty)
}

// SetRPIGPIO builds a GPIO write for a BCM pin.
func SetRPIGPIO(pin int, high bool) (Action, error) {
	return NewAction(ActionSetRPIGPIO, pin, high)
}

// StartTimer builds a command starting the named timer.
func StartTimer(name string) (Action, error) {
	return NewAction(ActionStartTimer, name)
}

// StopTimer builds a command stopping the named timer.
func StopTimer(name string) (Action, error) {
	return NewAction(ActionStopTimer, name)
}

// ResetTimer builds a command resetting the named timer.
func ResetTimer(name string) (Action, error) {
	return NewAction(ActionResetTimer, name)
}

// InitiateReturnHome builds a return-to-launch command.
func InitiateReturnHome() Action {
	return Action{kind: ActionInitiateReturnHome}
}

// FinishInstruction builds a directive completing the current instruction.
func FinishInstruction() Action {
	return Action{kind: ActionFinishInstruction}
}

// SetFlag builds a command setting the named flag.
func SetFlag(name string, value bool) (Action, error) {
	return NewAction(ActionSetFlag, name, value)
}

// SetCopilotStage builds a command moving the copilot to stage.
func SetCopilotStage(stage string) (Action, error) {
	return NewAction(ActionSetCopilotStage, stage)
}
