package autocopilot_test

import (
	"fmt"

	autocopilot "github.com/benfrussell/AutoCopilot"
	"github.com/benfrussell/AutoCopilot/pkg/domain"
)

func ExampleCopilot_SetInstructions() {
	cp := autocopilot.New()

	drop := domain.NewNamedInstruction("drop",
		domain.MustAction(domain.SetMavlinkServo(9, 1900)),
		domain.Log("payload released"),
	)
	cp.SetInstructions(domain.NewGroup("Mission",
		drop,
		domain.NewGroup("Recovery",
			domain.NewInstruction(domain.InitiateReturnHome()),
		),
	))

	domain.Walk(cp.Instructions(), func(o domain.Object, depth int) bool {
		fmt.Printf("%*s%s %q\n", depth*2, "", o.Kind(), o.Name())
		return true
	})
	// Output:
	// group "Mission"
	//   instruction "drop"
	//   group "Recovery"
	//     instruction ""
}
