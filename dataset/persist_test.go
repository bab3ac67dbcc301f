package dataset_test

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/kul-sudo/graphs/dataset"
	"github.com/stretchr/testify/require"
)

func TestEncodeClass_Shape(t *testing.T) {
	d := &dataset.Dataset{
		Meta: dataset.Meta{NodeCount: 3, TargetEdgeCount: 3, GraphsPerClass: 1},
		Hamiltonian: [][][]bool{{
			{false, true, true},
			{true, false, true},
			{true, true, false},
		}},
	}

	var buf bytes.Buffer
	require.NoError(t, d.EncodeClass(&buf, true))

	var doc struct {
		Info struct {
			NodesN  int `json:"nodes_n"`
			EdgesN  int `json:"edges_n"`
			GraphsN int `json:"graphs_n"`
		} `json:"info"`
		Graphs [][][]bool `json:"graphs"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	require.Equal(t, 3, doc.Info.NodesN)
	require.Equal(t, 3, doc.Info.EdgesN)
	require.Equal(t, 1, doc.Info.GraphsN)
	require.Equal(t, d.Hamiltonian, doc.Graphs)
}

func TestWriteFiles_RoundTrip(t *testing.T) {
	cfg := dataset.Config{
		NodeCount:       5,
		TargetEdgeCount: 6,
		GraphsPerClass:  3,
		Seed:            7,
	}
	d, err := dataset.Build(context.Background(), cfg)
	require.NoError(t, err)

	dir := t.TempDir()
	require.NoError(t, d.WriteFiles(dir))

	meta, graphs, err := dataset.ReadClassFile(filepath.Join(dir, dataset.HamiltonianFile))
	require.NoError(t, err)
	require.Equal(t, d.Meta, meta)
	require.Equal(t, d.Hamiltonian, graphs)

	meta, graphs, err = dataset.ReadClassFile(filepath.Join(dir, dataset.NonHamiltonianFile))
	require.NoError(t, err)
	require.Equal(t, d.Meta, meta)
	require.Equal(t, d.NonHamiltonian, graphs)
}

func TestReadClassFile_MissingFile(t *testing.T) {
	_, _, err := dataset.ReadClassFile(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
}
