package pipeline_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rsolari/valentines-cards/pipeline"
)

// writeProducer returns a Producer that writes content at the target path.
func writeProducer(content string) pipeline.Producer {
	return func(path string) error {
		return os.WriteFile(path, []byte(content), 0o644)
	}
}

func TestSnapshot(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "card.png")

	t.Run("no prior output", func(t *testing.T) {
		backup, err := pipeline.Snapshot(out)
		require.NoError(t, err)
		assert.Empty(t, backup)
	})

	t.Run("prior output moved aside", func(t *testing.T) {
		require.NoError(t, os.WriteFile(out, []byte("v1"), 0o644))

		backup, err := pipeline.Snapshot(out)
		require.NoError(t, err)
		assert.Equal(t, out+".bak", backup)

		_, err = os.Stat(out)
		assert.True(t, os.IsNotExist(err))
		data, err := os.ReadFile(backup)
		require.NoError(t, err)
		assert.Equal(t, "v1", string(data))
	})
}

func TestGenerate(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "card.png")

	t.Run("producer error passes through", func(t *testing.T) {
		boom := errors.New("boom")
		err := pipeline.Generate(out, func(string) error { return boom })
		assert.ErrorIs(t, err, boom)
	})

	t.Run("missing output detected", func(t *testing.T) {
		err := pipeline.Generate(out, func(string) error { return nil })
		assert.ErrorIs(t, err, pipeline.ErrNoOutput)
	})

	t.Run("empty output detected", func(t *testing.T) {
		err := pipeline.Generate(out, writeProducer(""))
		assert.ErrorIs(t, err, pipeline.ErrNoOutput)
	})

	t.Run("success", func(t *testing.T) {
		err := pipeline.Generate(out, writeProducer("v1"))
		assert.NoError(t, err)
	})
}

func TestCompare(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "card.png")
	bak := filepath.Join(dir, "card.png.bak")

	t.Run("no snapshot means new", func(t *testing.T) {
		outcome, err := pipeline.Compare(out, "")
		require.NoError(t, err)
		assert.Equal(t, pipeline.New, outcome)
	})

	require.NoError(t, os.WriteFile(out, []byte("v2"), 0o644))
	require.NoError(t, os.WriteFile(bak, []byte("v1"), 0o644))

	t.Run("different content", func(t *testing.T) {
		outcome, err := pipeline.Compare(out, bak)
		require.NoError(t, err)
		assert.Equal(t, pipeline.Changed, outcome)
	})

	t.Run("identical content", func(t *testing.T) {
		require.NoError(t, os.WriteFile(bak, []byte("v2"), 0o644))
		outcome, err := pipeline.Compare(out, bak)
		require.NoError(t, err)
		assert.Equal(t, pipeline.Unchanged, outcome)
	})
}

func TestPersist(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "card.png")
	bak := filepath.Join(dir, "card.png.bak")

	t.Run("keep drops the snapshot", func(t *testing.T) {
		require.NoError(t, os.WriteFile(out, []byte("v2"), 0o644))
		require.NoError(t, os.WriteFile(bak, []byte("v1"), 0o644))

		require.NoError(t, pipeline.Persist(out, bak, true))
		_, err := os.Stat(bak)
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("restore moves the snapshot back", func(t *testing.T) {
		require.NoError(t, os.WriteFile(bak, []byte("v1"), 0o644))

		require.NoError(t, pipeline.Persist(out, bak, false))
		data, err := os.ReadFile(out)
		require.NoError(t, err)
		assert.Equal(t, "v1", string(data))
	})

	t.Run("no snapshot is a no-op", func(t *testing.T) {
		assert.NoError(t, pipeline.Persist(out, "", true))
	})
}

func TestRun(t *testing.T) {
	t.Run("first generation", func(t *testing.T) {
		out := filepath.Join(t.TempDir(), "card.png")

		outcome, err := pipeline.Run(out, writeProducer("v1"))
		require.NoError(t, err)
		assert.Equal(t, pipeline.New, outcome)
	})

	t.Run("regeneration with change", func(t *testing.T) {
		out := filepath.Join(t.TempDir(), "card.png")
		require.NoError(t, os.WriteFile(out, []byte("v1"), 0o644))

		outcome, err := pipeline.Run(out, writeProducer("v2"))
		require.NoError(t, err)
		assert.Equal(t, pipeline.Changed, outcome)

		data, err := os.ReadFile(out)
		require.NoError(t, err)
		assert.Equal(t, "v2", string(data))
		_, err = os.Stat(out + ".bak")
		assert.True(t, os.IsNotExist(err), "snapshot must be dropped")
	})

	t.Run("regeneration without change", func(t *testing.T) {
		out := filepath.Join(t.TempDir(), "card.png")
		require.NoError(t, os.WriteFile(out, []byte("v1"), 0o644))

		outcome, err := pipeline.Run(out, writeProducer("v1"))
		require.NoError(t, err)
		assert.Equal(t, pipeline.Unchanged, outcome)
	})

	t.Run("failed generation restores prior output", func(t *testing.T) {
		out := filepath.Join(t.TempDir(), "card.png")
		require.NoError(t, os.WriteFile(out, []byte("v1"), 0o644))

		boom := errors.New("boom")
		_, err := pipeline.Run(out, func(string) error { return boom })
		assert.ErrorIs(t, err, boom)

		data, err := os.ReadFile(out)
		require.NoError(t, err)
		assert.Equal(t, "v1", string(data), "prior output must survive")
	})
}

func TestOutcome_String(t *testing.T) {
	assert.Equal(t, "new", pipeline.New.String())
	assert.Equal(t, "unchanged", pipeline.Unchanged.String())
	assert.Equal(t, "changed", pipeline.Changed.String())
}
