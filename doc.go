/*
Package autocopilot models the mission script of an autonomous vehicle copilot.

A mission is a tree of instruction objects (see package domain): Instructions
are leaves carrying ordered Actions such as log messages, servo and GPIO
commands, timer control or flow-control directives, and Groups nest other
instruction objects to any depth. The Copilot owns the root Group, replaces it
wholesale and serializes it for the executor that actually drives the vehicle.

This module only models intent. Sending MAVLink commands, toggling Raspberry Pi
pins and running timers is the job of an external executor, which receives the
serialized tree through a ports.Publisher or reads it over HTTP/MCP.

# Usage

	package main

	import (
		"fmt"
		"log"

		"github.com/benfrussell/AutoCopilot"
		"github.com/benfrussell/AutoCopilot/pkg/domain"
	)

	func main() {
		cp := autocopilot.New()

		cp.SetInstructions(domain.NewGroup("Root",
			domain.NewInstruction(domain.Log("One")),
			domain.NewGroup("",
				domain.NewInstruction(domain.Log("Two")),
				domain.NewInstruction(domain.Log("Three")),
			),
		))

		out, err := cp.SerializeInstructions()
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(out)
	}

# Serialized Format

See package codec for the document layout. Output is deterministic for an
unchanged tree, and groups always list their children in insertion order.
*/
package autocopilot
