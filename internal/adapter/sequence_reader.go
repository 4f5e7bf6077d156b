// Package adapter implements the file-backed inputs of the aligner: raw and
// FASTA sequence files plus equality-pair definitions.
package adapter

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"strings"

	m "aledit.dev/pkg/aledit/internal/model"
)

// SequenceReader loads sequences from disk.
type SequenceReader interface {
	// ReadSequence loads a single sequence. FASTA files contribute their
	// first record; anything else is taken as one raw sequence.
	ReadSequence(path string) ([]byte, error)

	// ReadRecords loads all records of a FASTA file. A file without a
	// header is treated as a single anonymous record.
	ReadRecords(path string) ([]m.SequenceRecord, error)
}

// NewLocalSequenceReader creates a SequenceReader over the local filesystem.
func NewLocalSequenceReader() SequenceReader {
	return &localSequenceReader{}
}

type localSequenceReader struct{}

func (r *localSequenceReader) ReadSequence(path string) ([]byte, error) {
	records, err := r.ReadRecords(path)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("no sequence in %s", path)
	}

	return records[0].Seq, nil
}

func (r *localSequenceReader) ReadRecords(path string) ([]m.SequenceRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open sequence file: %w", err)
	}
	defer f.Close()

	var records []m.SequenceRecord
	var current *m.SequenceRecord

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 64*1024*1024)

	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		if line[0] == '>' {
			id := strings.Fields(string(line[1:]))
			records = append(records, m.SequenceRecord{})
			current = &records[len(records)-1]
			if len(id) > 0 {
				current.ID = id[0]
			}

			continue
		}

		if current == nil {
			records = append(records, m.SequenceRecord{})
			current = &records[len(records)-1]
		}

		current.Seq = append(current.Seq, line...)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read sequence file: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("no sequence in %s", path)
	}

	return records, nil
}
