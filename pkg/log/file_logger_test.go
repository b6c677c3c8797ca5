package log

import (
	"io"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bella-notify/bella-go/pkg/duration"
)

func TestFileLoggerCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audit.blog")

	logger, err := NewFileLogger(path)
	require.NoError(t, err)
	defer logger.Close()

	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestFileLoggerRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audit.blog")

	logger, err := NewFileLogger(path)
	require.NoError(t, err)

	logger.Log(Event{Timestamp: time.Now(), RequestID: "a", Outcome: OutcomeAccepted, Raw: 1000, Tier: tierPtr(duration.Short)})
	logger.Log(Event{Timestamp: time.Now(), RequestID: "b", Outcome: OutcomeRejected, Raw: 7})
	require.NoError(t, logger.Close())

	reader, err := NewReader(path)
	require.NoError(t, err)
	defer reader.Close()

	first, err := reader.Next()
	require.NoError(t, err)
	assert.Equal(t, "a", first.RequestID)
	require.NotNil(t, first.Tier)
	assert.Equal(t, duration.Short, *first.Tier)

	second, err := reader.Next()
	require.NoError(t, err)
	assert.Equal(t, "b", second.RequestID)
	assert.Nil(t, second.Tier)

	_, err = reader.Next()
	assert.Equal(t, io.EOF, err)
}

func TestFileLoggerAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audit.blog")

	for _, id := range []string{"first", "second"} {
		logger, err := NewFileLogger(path)
		require.NoError(t, err)
		logger.Log(Event{Timestamp: time.Now(), RequestID: id})
		require.NoError(t, logger.Close())
	}

	reader, err := NewReader(path)
	require.NoError(t, err)
	defer reader.Close()

	var ids []string
	for {
		e, err := reader.Next()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		ids = append(ids, e.RequestID)
	}
	assert.Equal(t, []string{"first", "second"}, ids)
}

func TestFileLoggerCloseIdempotent(t *testing.T) {
	logger, err := NewFileLogger(filepath.Join(t.TempDir(), "audit.blog"))
	require.NoError(t, err)

	require.NoError(t, logger.Close())
	assert.NoError(t, logger.Close())

	// Logging after close is ignored.
	logger.Log(Event{RequestID: "late"})
}

func TestFileLoggerConcurrent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audit.blog")
	logger, err := NewFileLogger(path)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 20; j++ {
				logger.Log(Event{Timestamp: time.Now(), Raw: 1000, Tier: tierPtr(duration.Short)})
			}
		}()
	}
	wg.Wait()
	require.NoError(t, logger.Close())

	reader, err := NewReader(path)
	require.NoError(t, err)
	defer reader.Close()

	count := 0
	for {
		_, err := reader.Next()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		count++
	}
	assert.Equal(t, 200, count)
}

func TestNewFileLoggerBadPath(t *testing.T) {
	_, err := NewFileLogger(filepath.Join(t.TempDir(), "missing", "audit.blog"))
	assert.Error(t, err)
}
