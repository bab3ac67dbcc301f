package dataset

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// On-disk names of the two class files, one JSON document per class.
const (
	HamiltonianFile    = "hamiltonian_graphs.json"
	NonHamiltonianFile = "non_hamiltonian_graphs.json"
)

// classDocument is the serialized form of one class: the parameterization
// metadata followed by the ordered adjacency matrices. The layout is
// whitespace-tolerant JSON with booleans nested per row in node-index
// order, so it round-trips the matrices faithfully for any consumer.
type classDocument struct {
	Info   Meta       `json:"info"`
	Graphs [][][]bool `json:"graphs"`
}

// EncodeClass writes one class of d as pretty-printed JSON to w.
// hamiltonian selects which bucket is written.
func (d *Dataset) EncodeClass(w io.Writer, hamiltonian bool) error {
	graphs := d.NonHamiltonian
	if hamiltonian {
		graphs = d.Hamiltonian
	}
	doc := classDocument{Info: d.Meta, Graphs: graphs}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return errors.Wrap(err, "dataset: encode class")
	}

	return nil
}

// WriteFiles persists both classes under dir, creating it if needed.
// It is the post-loop persistence step: Build has already satisfied both
// quotas by the time this runs, so no partial dataset can be written.
func (d *Dataset) WriteFiles(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrapf(err, "dataset: create %s", dir)
	}
	for _, class := range []struct {
		name        string
		hamiltonian bool
	}{
		{HamiltonianFile, true},
		{NonHamiltonianFile, false},
	} {
		path := filepath.Join(dir, class.name)
		f, err := os.Create(path)
		if err != nil {
			return errors.Wrapf(err, "dataset: create %s", path)
		}
		if err = d.EncodeClass(f, class.hamiltonian); err != nil {
			_ = f.Close()
			return err
		}
		if err = f.Close(); err != nil {
			return errors.Wrapf(err, "dataset: close %s", path)
		}
	}

	return nil
}

// ReadClassFile loads one previously written class document. It is the
// inverse of EncodeClass and exists mainly for consumers and tests.
func ReadClassFile(path string) (Meta, [][][]bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return Meta{}, nil, errors.Wrapf(err, "dataset: open %s", path)
	}
	defer f.Close()

	var doc classDocument
	if err = json.NewDecoder(f).Decode(&doc); err != nil {
		return Meta{}, nil, errors.Wrapf(err, "dataset: decode %s", path)
	}

	return doc.Info, doc.Graphs, nil
}
