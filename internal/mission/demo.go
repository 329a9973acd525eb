// Package mission holds built-in mission trees used by the CLI.
package mission

import "github.com/benfrussell/AutoCopilot/pkg/domain"

// Nested returns the three-log tree: one top-level instruction and a nested
// group with two more.
func Nested() *domain.Group {
	return domain.NewGroup("Root",
		domain.NewInstruction(domain.Log("One")),
		domain.NewGroup("",
			domain.NewInstruction(domain.Log("Two")),
			domain.NewInstruction(domain.Log("Three")),
		),
	)
}

// Demo returns a small payload-drop mission exercising every action kind.
func Demo() *domain.Group {
	must := domain.MustAction

	preflight := domain.NewGroup("Preflight",
		domain.NewNamedInstruction("arm",
			domain.Log("arming payload release"),
			must(domain.SetRPIGPIO(17, true)),
			must(domain.SetFlag("armed", true)),
		),
		domain.NewNamedInstruction("stage",
			must(domain.SetCopilotStage("cruise")),
			must(domain.StartTimer("mission")),
		),
	)

	drop := domain.NewGroup("Drop",
		domain.NewNamedInstruction("open",
			must(domain.SetMavlinkServo(9, 1900)),
			must(domain.SetRPIPWM(18, 0.75)),
			domain.FinishInstruction(),
		),
		domain.NewNamedInstruction("close",
			must(domain.SetMavlinkServo(9, 1100)),
			must(domain.SetRPIPWM(18, 0)),
		),
	)

	recovery := domain.NewGroup("Recovery",
		domain.NewNamedInstruction("rtl",
			must(domain.StopTimer("mission")),
			must(domain.ResetTimer("mission")),
			domain.InitiateReturnHome(),
		),
	)

	return domain.NewGroup("Root", preflight, drop, recovery)
}

// ByName returns the named built-in mission.
func ByName(name string) (*domain.Group, bool) {
	switch name {
	case "demo", "":
		return Demo(), true
	case "nested":
		return Nested(), true
	}
	return nil, false
}

// Names lists the built-in missions.
func Names() []string {
	return []string{"demo", "nested"}
}
