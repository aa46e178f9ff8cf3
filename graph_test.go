package scan_test

import (
	"reflect"
	"strings"
	"testing"

	"github.com/avr0id/scan"
)

func TestGraphUndirected(t *testing.T) {
	s := scan.New(strings.NewReader("1 2\n2 3\n1 3"))
	adj := s.Graph(3, 3, false)
	want := [][]int{{}, {2, 3}, {1, 3}, {2, 1}}
	if !reflect.DeepEqual(adj, want) {
		t.Errorf("expected %v, got %v", want, adj)
	}
}

func TestGraphDirected(t *testing.T) {
	s := scan.New(strings.NewReader("1 2\n1 3"))
	adj := s.Graph(3, 2, true)
	want := [][]int{{}, {2, 3}, {}, {}}
	if !reflect.DeepEqual(adj, want) {
		t.Errorf("expected %v, got %v", want, adj)
	}
}

// Neighbor order within a list is the edge read order, a guaranteed part of
// the contract, not an accident of the representation.
func TestGraphNeighborOrder(t *testing.T) {
	s := scan.New(strings.NewReader("2 4 2 1 2 3"))
	adj := s.Graph(4, 3, true)
	if want := []int{4, 1, 3}; !reflect.DeepEqual(adj[2], want) {
		t.Errorf("expected %v, got %v", want, adj[2])
	}
}

func TestGraphSelfLoopAndParallel(t *testing.T) {
	s := scan.New(strings.NewReader("1 1\n1 2\n1 2"))
	adj := s.Graph(2, 3, false)
	want := [][]int{{}, {1, 1, 2, 2}, {1, 1}}
	if !reflect.DeepEqual(adj, want) {
		t.Errorf("expected %v, got %v", want, adj)
	}
}

func TestGraphVertexRange(t *testing.T) {
	s := scan.New(strings.NewReader("1 9"))
	e := catch(func() { s.Graph(3, 1, false) })
	if e == nil {
		t.Fatal("expected a panic on an out-of-range vertex id")
	}
	if e.Kind != scan.Range {
		t.Errorf("expected kind %v, got %v", scan.Range, e.Kind)
	}
	if e.Tok != "9" {
		t.Errorf("expected offending id 9, got %q", e.Tok)
	}
}

func TestGraphShortInput(t *testing.T) {
	s := scan.New(strings.NewReader("1 2\n2"))
	e := catch(func() { s.Graph(3, 2, false) })
	if e == nil {
		t.Fatal("expected a panic when edges are missing")
	}
	if e.Kind != scan.EOS {
		t.Errorf("expected kind %v, got %v", scan.EOS, e.Kind)
	}
}

func TestGraphEmpty(t *testing.T) {
	s := scan.New(strings.NewReader(""))
	adj := s.Graph(2, 0, false)
	want := [][]int{{}, {}, {}}
	if !reflect.DeepEqual(adj, want) {
		t.Errorf("expected %v, got %v", want, adj)
	}
}

func TestTryGraph(t *testing.T) {
	s := scan.New(strings.NewReader("1 2\nx 3"))
	if _, err := s.TryGraph(3, 2, false); err == nil {
		t.Fatal("expected an error on a non-numeric vertex id")
	}
}
