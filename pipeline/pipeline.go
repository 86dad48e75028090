package pipeline

import (
	"bytes"
	"errors"
	"fmt"
	"os"
)

// ErrNoOutput indicates a producer that reported success without writing
// its output file.
var ErrNoOutput = errors.New("pipeline: producer wrote no output")

// backupSuffix is appended to the output path for the snapshot.
const backupSuffix = ".bak"

// Producer writes the output file at path. It must either write the file
// or return an error.
type Producer func(path string) error

// Outcome classifies a regeneration relative to the previous output.
type Outcome int

const (
	// New means no previous output existed.
	New Outcome = iota
	// Unchanged means the fresh output is byte-identical to the snapshot.
	Unchanged
	// Changed means the fresh output differs from the snapshot.
	Changed
)

func (o Outcome) String() string {
	switch o {
	case New:
		return "new"
	case Unchanged:
		return "unchanged"
	case Changed:
		return "changed"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Snapshot moves a prior output file aside and returns the backup path.
// Returns "" when no prior output exists.
func Snapshot(path string) (string, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}

		return "", fmt.Errorf("pipeline: stat %s: %w", path, err)
	}

	backup := path + backupSuffix
	if err := os.Rename(path, backup); err != nil {
		return "", fmt.Errorf("pipeline: snapshot %s: %w", path, err)
	}

	return backup, nil
}

// Generate runs the producer and verifies it left a non-empty file at
// path.
func Generate(path string, produce Producer) error {
	if err := produce(path); err != nil {
		return err
	}

	info, err := os.Stat(path)
	if err != nil || info.Size() == 0 {
		return fmt.Errorf("%w: %s", ErrNoOutput, path)
	}

	return nil
}

// Compare diffs the output at path against its snapshot. An empty backup
// path means there was nothing to compare against.
func Compare(path, backup string) (Outcome, error) {
	if backup == "" {
		return New, nil
	}

	fresh, err := os.ReadFile(path)
	if err != nil {
		return New, fmt.Errorf("pipeline: read %s: %w", path, err)
	}
	prior, err := os.ReadFile(backup)
	if err != nil {
		return New, fmt.Errorf("pipeline: read %s: %w", backup, err)
	}

	if bytes.Equal(fresh, prior) {
		return Unchanged, nil
	}

	return Changed, nil
}

// Persist finalizes a regeneration. With keep true the snapshot is
// deleted; with keep false the snapshot is restored over the output.
// A missing snapshot is a no-op.
func Persist(path, backup string, keep bool) error {
	if backup == "" {
		return nil
	}

	if keep {
		if err := os.Remove(backup); err != nil {
			return fmt.Errorf("pipeline: drop snapshot %s: %w", backup, err)
		}

		return nil
	}

	if err := os.Rename(backup, path); err != nil {
		return fmt.Errorf("pipeline: restore %s: %w", path, err)
	}

	return nil
}

// Run regenerates path via produce with snapshot protection: the prior
// output is restored when production fails, and dropped when it succeeds.
// The returned Outcome tells the caller whether the output changed.
func Run(path string, produce Producer) (Outcome, error) {
	backup, err := Snapshot(path)
	if err != nil {
		return New, err
	}

	if err = Generate(path, produce); err != nil {
		if restoreErr := Persist(path, backup, false); restoreErr != nil {
			return New, errors.Join(err, restoreErr)
		}

		return New, err
	}

	outcome, err := Compare(path, backup)
	if err != nil {
		return outcome, err
	}
	if err = Persist(path, backup, true); err != nil {
		return outcome, err
	}

	return outcome, nil
}
