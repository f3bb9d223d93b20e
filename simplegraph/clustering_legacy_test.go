package simplegraph

import "testing"

// TestClusteringByVertexIndex pins the historical index-weighted estimator
// against the pair-count ratio on a fixture where the two diverge: vertex 0
// carries weight zero, so its closed pair is later diluted by vertex 1's
// open pairs.
func TestClusteringByVertexIndex(t *testing.T) {
	g, err := New(4, []Edge{{U: 0, V: 1}, {U: 0, V: 2}, {U: 1, V: 2}, {U: 1, V: 3}})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	if got := g.ClusteringCoefficient(); got != 0.6 {
		t.Errorf("ClusteringCoefficient = %v; want 0.6", got)
	}
	if got := g.clusteringByVertexIndex(); got != 0.5 {
		t.Errorf("clusteringByVertexIndex = %v; want 0.5", got)
	}
}

// TestClusteringByVertexIndex_Triangle verifies both estimators agree when
// every pair closes.
func TestClusteringByVertexIndex_Triangle(t *testing.T) {
	g, err := New(3, []Edge{{U: 0, V: 1}, {U: 0, V: 2}, {U: 1, V: 2}})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	if got := g.clusteringByVertexIndex(); got != 1.0 {
		t.Errorf("clusteringByVertexIndex = %v; want 1", got)
	}
	if got := g.ClusteringCoefficient(); got != 1.0 {
		t.Errorf("ClusteringCoefficient = %v; want 1", got)
	}
}

// TestClusteringByVertexIndex_Cycle: with every pair open the recurrence
// only ever multiplies by i/(i+1), so the estimate stays at zero.
func TestClusteringByVertexIndex_Cycle(t *testing.T) {
	g, err := RingLattice(6, 1)
	if err != nil {
		t.Fatalf("RingLattice error: %v", err)
	}
	if got := g.clusteringByVertexIndex(); got != 0.0 {
		t.Errorf("clusteringByVertexIndex = %v; want 0", got)
	}
}
