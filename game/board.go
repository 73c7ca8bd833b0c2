package game

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"
)

// Location is a numbered node on the board. 0 is never a real location; it
// stands for "unknown" when the fugitive has not been revealed yet.
type Location int

// Edge is one way out of a location.
type Edge struct {
	To Location
	By Transport
}

// Board is what the engine needs from a map: who are my neighbours, and by
// what transport.
type Board interface {
	Neighbours(from Location) []Edge
}

type boardNode struct {
	Links []string `json:"links"`
}

type boardData struct {
	Nodes map[string]boardNode `json:"nodes"`
}

// GraphBoard is a Board backed by an adjacency table loaded from JSON.
// Links are written once in the data file, e.g. "t:8" for a taxi link to
// node 8, and made two-way on load.
type GraphBoard struct {
	links map[Location][]Edge
}

var linkModes = map[byte]Transport{
	't': TransportTaxi,
	'b': TransportBus,
	'u': TransportUnderground,
	'f': TransportFerry,
}

// ParseBoard reads board JSON into a GraphBoard.
func ParseBoard(jsdata []byte) (*GraphBoard, error) {
	var data boardData
	if err := json.Unmarshal(jsdata, &data); err != nil {
		return nil, fmt.Errorf("bad board data: %w", err)
	}

	links := map[Location][]Edge{}

	appendIfMissing := func(list []Edge, e Edge) []Edge {
		for _, x := range list {
			if x == e {
				return list
			}
		}
		return append(list, e)
	}

	for id, node := range data.Nodes {
		n, err := strconv.Atoi(id)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("bad node id: %s", id)
		}
		from := Location(n)
		if _, ok := links[from]; !ok {
			links[from] = nil
		}
		for _, l := range node.Links {
			if len(l) < 3 || l[1] != ':' {
				return nil, fmt.Errorf("bad link %s at node %s", l, id)
			}
			mode, ok := linkModes[l[0]]
			if !ok {
				return nil, fmt.Errorf("bad link mode %s at node %s", l, id)
			}
			t, err := strconv.Atoi(l[2:])
			if err != nil {
				return nil, fmt.Errorf("bad link target %s at node %s", l, id)
			}
			if _, ok := data.Nodes[l[2:]]; !ok {
				return nil, fmt.Errorf("link to unknown node %s", l)
			}
			to := Location(t)
			links[from] = appendIfMissing(links[from], Edge{To: to, By: mode})
			// make the link 2-way
			links[to] = appendIfMissing(links[to], Edge{To: from, By: mode})
		}
	}

	return &GraphBoard{links: links}, nil
}

// LoadBoard reads a board JSON file.
func LoadBoard(path string) (*GraphBoard, error) {
	jsdata, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseBoard(jsdata)
}

// Neighbours implements Board.
func (b *GraphBoard) Neighbours(from Location) []Edge {
	return b.links[from]
}

// Locations lists every node on the board, in order.
func (b *GraphBoard) Locations() []Location {
	var out []Location
	for l := range b.links {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
