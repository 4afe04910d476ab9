package algorithm

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"faultmesh/internal/algorithm/constant"
	"faultmesh/internal/algorithm/define"
)

// Three line-oriented, whitespace-separated text formats, one record
// per line. Empty lines are skipped silently; lines with fewer than
// three fields or an id that does not parse are logged as
// InputParseError and skipped. A missing file, a non-numeric size,
// capacity, groupId, arriveTime or weight, a negative task size, or a
// non-positive capacity or weight is fatal and returned as an error.

// LoadTasks parses a task file: "id size arriveTime" per line.
func LoadTasks(path string) ([]*define.Task, error) {
	lines, err := readLines(path)
	if err != nil {
		return nil, err
	}

	var tasks []*define.Task
	for lineNo, line := range lines {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if len(fields) < 3 {
			log.Print(&InputParseError{File: path, Line: lineNo + 1, Text: line})
			continue
		}

		id, err := strconv.Atoi(fields[0])
		if err != nil {
			log.Print(&InputParseError{File: path, Line: lineNo + 1, Text: line})
			continue
		}
		size, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("tasks file %s: line %d: non-numeric size: %w", path, lineNo+1, err)
		}
		if size < 0 {
			return nil, fmt.Errorf("tasks file %s: line %d: negative size %g", path, lineNo+1, size)
		}
		arrive, err := strconv.Atoi(fields[2])
		if err != nil {
			return nil, fmt.Errorf("tasks file %s: line %d: non-numeric arriveTime: %w", path, lineNo+1, err)
		}

		tasks = append(tasks, &define.Task{ID: id, Size: size, ArriveTime: arrive})
	}

	return tasks, nil
}

// LoadAgents parses an agent file: "id capacity groupId" per line.
func LoadAgents(path string) ([]*define.Agent, error) {
	lines, err := readLines(path)
	if err != nil {
		return nil, err
	}

	var agents []*define.Agent
	for lineNo, line := range lines {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if len(fields) < 3 {
			log.Print(&InputParseError{File: path, Line: lineNo + 1, Text: line})
			continue
		}

		id, err := strconv.Atoi(fields[0])
		if err != nil {
			log.Print(&InputParseError{File: path, Line: lineNo + 1, Text: line})
			continue
		}
		capacity, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("agents file %s: line %d: non-numeric capacity: %w", path, lineNo+1, err)
		}
		if capacity <= 0 {
			return nil, fmt.Errorf("agents file %s: line %d: non-positive capacity %g", path, lineNo+1, capacity)
		}
		groupID, err := strconv.Atoi(fields[2])
		if err != nil {
			return nil, fmt.Errorf("agents file %s: line %d: non-numeric groupId: %w", path, lineNo+1, err)
		}

		agents = append(agents, &define.Agent{
			ID:       id,
			Capacity: capacity,
			GroupID:  groupID,
		})
	}

	return agents, nil
}

// LoadGraph parses a graph file: "u v weight" per line, undirected.
// Duplicate edges keep the first weight read.
func LoadGraph(path string) (*Graph, error) {
	lines, err := readLines(path)
	if err != nil {
		return nil, err
	}

	var edges []Edge
	for lineNo, line := range lines {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if len(fields) < 3 {
			log.Print(&InputParseError{File: path, Line: lineNo + 1, Text: line})
			continue
		}

		u, err := strconv.Atoi(fields[0])
		if err != nil {
			log.Print(&InputParseError{File: path, Line: lineNo + 1, Text: line})
			continue
		}
		v, err := strconv.Atoi(fields[1])
		if err != nil {
			log.Print(&InputParseError{File: path, Line: lineNo + 1, Text: line})
			continue
		}
		weight, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return nil, fmt.Errorf("graph file %s: line %d: non-numeric weight: %w", path, lineNo+1, err)
		}
		if weight <= 0 {
			return nil, fmt.Errorf("graph file %s: line %d: non-positive weight %g", path, lineNo+1, weight)
		}

		edges = append(edges, Edge{U: u, V: v, Weight: weight})
	}

	g := NewGraph(edges)
	bridgeDisconnectedComponents(g)
	return g, nil
}

// bridgeDisconnectedComponents enforces the "graph is connected"
// invariant by wiring a low-weight bridge edge between the first node
// of each component and the first node of the component before it.
// DisconnectedAgent (an agent id with no edges at all) is handled
// separately by World.NewWorld via Graph.EnsureNode, which is why this
// only needs to reason about components of 2+ nodes.
func bridgeDisconnectedComponents(g *Graph) {
	comps := g.Components()
	for i := 1; i < len(comps); i++ {
		if len(comps[i]) == 0 || len(comps[i-1]) == 0 {
			continue
		}
		g.AddLeaderBridge(comps[i-1][0], comps[i][0], constant.BridgeWeight)
	}
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil && err != io.EOF {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return lines, nil
}
