package main

import (
	"io"
	"os"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// batchFile is the YAML layout read by the batch task:
//
//	real: [x]
//	systems:
//	  - name: window
//	    inequalities: ["x > 1", "x**2 < 9"]
//	  - name: parametric
//	    symbols: [x]
//	    assume: ["Q.positive(y)"]
//	    inequalities: ["y*x > 2*y"]
//
// Top-level real, assume and symbols lists apply to every system and are
// extended by the lists of the system itself.
type batchFile struct {
	config  `yaml:",inline"`
	Systems []batchSystem `yaml:"systems"`
}

type batchSystem struct {
	config       `yaml:",inline"`
	Name         string   `yaml:"name"`
	Inequalities []string `yaml:"inequalities"`
}

func loadBatch(path string) (batchFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return batchFile{}, err
	}
	defer f.Close()
	return readBatch(f)
}

func readBatch(r io.Reader) (b batchFile, err error) {
	dec := yaml.NewDecoder(r)
	dec.SetStrict(true)
	if err = dec.Decode(&b); err != nil && err != io.EOF {
		return b, errors.Wrap(err, "reading batch file")
	}
	for i, sys := range b.Systems {
		if sys.Name == "" {
			b.Systems[i].Name = "system " + strconv.Itoa(i+1)
		}
	}
	return b, nil
}

// merge extends the shared configuration with the one of a system.
func (c config) merge(o config) config {
	return config{
		Reals:      append(append([]string{}, c.Reals...), o.Reals...),
		Assume:     append(append([]string{}, c.Assume...), o.Assume...),
		Symbols:    append(append([]string{}, c.Symbols...), o.Symbols...),
		Relational: c.Relational,
	}
}

// runBatch reduces every system of the batch. Failing systems are reported
// and do not stop the batch.
func runBatch(out io.Writer, b batchFile, shared config) *batchMetrics {
	m := newBatchMetrics()
	shared = shared.merge(b.config)

	for _, sys := range b.Systems {
		start := time.Now()

		pl, err := newPipeline(out, shared.merge(sys.config))
		pl.printf("%s: ", sys.Name)
		if err == nil {
			err = pl.reduceTask(sys.Inequalities)
		}

		if err != nil {
			pl.printf("%s\n", colorError(err))
		}
		m.record(sys.Name, err, time.Since(start))
	}
	return m
}
