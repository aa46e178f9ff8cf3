// Copyright 2025 Artem Voronov <avr0id@tuta.io>
//
// Permission is hereby granted, free of charge, to any person obtaining a copy of
// this software and associated documentation files (the "Software"), to deal in
// the Software without restriction, including without limitation the rights to
// use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies of
// the Software, and to permit persons to whom the Software is furnished to do so,
// subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS
// FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR
// COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER
// IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN
// CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.

package scan

// TryGraph reads m edges as "u v" pairs and returns the adjacency lists of a
// graph on vertices 1..n. See Graph.
func (s *Scanner) TryGraph(n, m int, directed bool) ([][]int, error) {
	if n < 0 {
		n = 0
	}
	adj := make([][]int, n+1)
	for i := range adj {
		adj[i] = []int{}
	}
	for i := 0; i < m; i++ {
		u, err := TryToken[int](s)
		if err != nil {
			return nil, err
		}
		if u < 1 || u > n {
			return nil, s.errRange(u, n)
		}
		v, err := TryToken[int](s)
		if err != nil {
			return nil, err
		}
		if v < 1 || v > n {
			return nil, s.errRange(v, n)
		}
		adj[u] = append(adj[u], v)
		if !directed {
			adj[v] = append(adj[v], u)
		}
	}
	return adj, nil
}

// Graph reads m edges as "u v" pairs and returns the adjacency lists of a
// graph on vertices 1..n. The result has length n+1 with index 0 unused so
// that vertex ids index it directly. Each edge appends v to adj[u] and,
// unless directed, u to adj[v]; neighbor order within a list is the order
// the edges were read in.
//
// Graph panics with a *Error if fewer than 2·m valid tokens remain or if an
// edge names a vertex outside [1, n].
func (s *Scanner) Graph(n, m int, directed bool) [][]int {
	return must(s.TryGraph(n, m, directed))
}
