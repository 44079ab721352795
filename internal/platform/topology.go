package platform

import (
	"fmt"
	"strings"
)

// Topology is the link structure of a LinkedList.
type Topology uint8

const (
	Singly Topology = iota
	Circular
	Doubly
)

func (t Topology) String() string {
	switch t {
	case Singly:
		return "singly"
	case Circular:
		return "circular"
	case Doubly:
		return "doubly"
	default:
		return fmt.Sprintf("Topology(%d)", uint8(t))
	}
}

// ParseTopology is the inverse of Topology.String, ignoring case.
func ParseTopology(s string) (Topology, bool) {
	switch strings.ToLower(s) {
	case "singly":
		return Singly, true
	case "circular":
		return Circular, true
	case "doubly":
		return Doubly, true
	default:
		return 0, false
	}
}
