// Package catalog holds the immutable sales-script catalog: the conversation
// nodes of the training script and the directed edges between them.
package catalog

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Phase identifies one of the five ordered stages of a sales call.
type Phase string

const (
	PhaseOpening  Phase = "opening"
	PhaseHearing  Phase = "hearing"
	PhaseProposal Phase = "proposal"
	PhaseClosing  Phase = "closing"
	PhaseFollowup Phase = "followup"
)

// Phases lists every phase in canonical call order.
var Phases = []Phase{PhaseOpening, PhaseHearing, PhaseProposal, PhaseClosing, PhaseFollowup}

// Label returns a display name for the phase.
func (p Phase) Label() string {
	switch p {
	case PhaseOpening:
		return "Opening"
	case PhaseHearing:
		return "Hearing"
	case PhaseProposal:
		return "Proposal"
	case PhaseClosing:
		return "Closing"
	case PhaseFollowup:
		return "Follow-up"
	default:
		return string(p)
	}
}

// QA is a single anticipated question and its model answer.
type QA struct {
	Question string `yaml:"question"`
	Answer   string `yaml:"answer"`
}

// Action is an outgoing transition from a node to the next step of the call.
type Action struct {
	Label      string `yaml:"label"`
	NextNodeID string `yaml:"next"`
	Style      string `yaml:"style"` // primary, secondary, warning
}

// Script holds the talk track for a node.
type Script struct {
	Main string   `yaml:"main"`
	Tips []string `yaml:"tips,omitempty"`
}

// Position is the node's 2D layout coordinate in the flow canvas.
type Position struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// Node is one step of the sales script.
type Node struct {
	ID          string   `yaml:"id"`
	Phase       Phase    `yaml:"phase"`
	Title       string   `yaml:"title"`
	Duration    string   `yaml:"duration"`
	Script      Script   `yaml:"script"`
	Checkpoints []string `yaml:"checkpoints"`
	QA          []QA     `yaml:"qa"`
	Actions     []Action `yaml:"actions"`
	Position    Position `yaml:"position"`
	Resources   []string `yaml:"resources,omitempty"`
}

// Edge is a directed connection between two nodes, denormalized from node
// actions for rendering. Not independently authoritative.
type Edge struct {
	Source   string
	Target   string
	Label    string
	Animated bool
}

// Catalog is the loaded, validated script.
type Catalog struct {
	nodes []Node
	byID  map[string]*Node
	edges []Edge
}

type scriptFile struct {
	Nodes []Node `yaml:"nodes"`
}

// Parse decodes and validates a YAML script document.
func Parse(data []byte) (*Catalog, error) {
	var file scriptFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing script: %w", err)
	}

	c := &Catalog{
		nodes: file.Nodes,
		byID:  make(map[string]*Node, len(file.Nodes)),
	}
	for i := range c.nodes {
		n := &c.nodes[i]
		if n.ID == "" {
			return nil, fmt.Errorf("node %d: missing id", i)
		}
		if _, dup := c.byID[n.ID]; dup {
			return nil, fmt.Errorf("duplicate node id: %s", n.ID)
		}
		if !validPhase(n.Phase) {
			return nil, fmt.Errorf("node %s: unknown phase %q", n.ID, n.Phase)
		}
		c.byID[n.ID] = n
	}

	// Every action must point at an existing node.
	for i := range c.nodes {
		n := &c.nodes[i]
		for _, a := range n.Actions {
			if _, ok := c.byID[a.NextNodeID]; !ok {
				return nil, fmt.Errorf("node %s: action %q targets unknown node %s", n.ID, a.Label, a.NextNodeID)
			}
			c.edges = append(c.edges, Edge{
				Source: n.ID,
				Target: a.NextNodeID,
				Label:  a.Label,
			})
		}
	}

	return c, nil
}

func validPhase(p Phase) bool {
	for _, known := range Phases {
		if p == known {
			return true
		}
	}
	return false
}

// Nodes returns all nodes in catalog order.
func (c *Catalog) Nodes() []Node {
	return c.nodes
}

// ByID returns the node with the given id, or nil if unknown.
func (c *Catalog) ByID(id string) *Node {
	return c.byID[id]
}

// Edges returns the directed edges derived from node actions.
func (c *Catalog) Edges() []Edge {
	return c.edges
}

// CheckpointCount returns the number of checkpoints on the given node,
// or 0 if the node is unknown.
func (c *Catalog) CheckpointCount(id string) int {
	n := c.byID[id]
	if n == nil {
		return 0
	}
	return len(n.Checkpoints)
}

// NodesInPhase returns the nodes belonging to the given phase, in catalog order.
func (c *Catalog) NodesInPhase(phase Phase) []Node {
	var out []Node
	for _, n := range c.nodes {
		if n.Phase == phase {
			out = append(out, n)
		}
	}
	return out
}

// NextNodes returns the nodes reachable from id via its actions, in action order.
func (c *Catalog) NextNodes(id string) []Node {
	n := c.byID[id]
	if n == nil {
		return nil
	}
	var out []Node
	for _, a := range n.Actions {
		if next := c.byID[a.NextNodeID]; next != nil {
			out = append(out, *next)
		}
	}
	return out
}

// AllQA returns every Q&A pair from every node, in catalog order.
func (c *Catalog) AllQA() []QA {
	var out []QA
	for _, n := range c.nodes {
		out = append(out, n.QA...)
	}
	return out
}

// TotalCheckpoints returns the number of checkpoints across the whole script.
func (c *Catalog) TotalCheckpoints() int {
	total := 0
	for _, n := range c.nodes {
		total += len(n.Checkpoints)
	}
	return total
}
