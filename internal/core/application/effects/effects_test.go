package effects_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"repairshop/internal/core/application/effects"
	"repairshop/internal/core/domain/model/history"
	"repairshop/internal/core/domain/model/kernel"
	"repairshop/internal/core/ports"
	"repairshop/internal/core/ports/mocks"
	"repairshop/internal/pkg/logger"
	"repairshop/internal/pkg/worker"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)

// inlineQueue runs tasks as they are submitted and keeps their errors.
type inlineQueue struct {
	errs []error
	full bool
}

func (q *inlineQueue) Submit(_ string, task worker.Task) error {
	if q.full {
		return worker.ErrQueueFull
	}
	q.errs = append(q.errs, task(context.Background()))
	return nil
}

func TestHistoryRecorder_Record(t *testing.T) {
	t.Run("should append an entry stamped at record time", func(t *testing.T) {
		repo := new(mocks.HistoryRepository)
		queue := &inlineQueue{}
		repo.On("Append", mock.Anything, mock.MatchedBy(func(e *history.Entry) bool {
			return e.OrderID() == 42 && e.Actor() == "taller" && e.Action() == history.Reopened &&
				e.Note() == "Vuelve" && e.CreatedAt().Equal(now)
		})).Return(nil).Once()

		recorder := effects.NewHistoryRecorder(repo, queue, kernel.NewFixedClock(now), logger.NewNop())
		recorder.Record(42, "taller", history.Reopened, "Vuelve")

		repo.AssertExpectations(t)
		require.Len(t, queue.errs, 1)
		assert.NoError(t, queue.errs[0])
	})

	t.Run("should default the actor", func(t *testing.T) {
		repo := new(mocks.HistoryRepository)
		repo.On("Append", mock.Anything, mock.MatchedBy(func(e *history.Entry) bool {
			return e.Actor() == history.DefaultActor
		})).Return(nil).Once()

		effects.NewHistoryRecorder(repo, &inlineQueue{}, kernel.NewFixedClock(now), logger.NewNop()).
			Record(42, " ", history.Finished, "")

		repo.AssertExpectations(t)
	})

	t.Run("should hand append failures to the worker", func(t *testing.T) {
		repo := new(mocks.HistoryRepository)
		queue := &inlineQueue{}
		boom := errors.New("relation order_history does not exist")
		repo.On("Append", mock.Anything, mock.Anything).Return(boom).Once()

		effects.NewHistoryRecorder(repo, queue, kernel.NewFixedClock(now), logger.NewNop()).
			Record(42, "", history.Finished, "")

		require.Len(t, queue.errs, 1)
		assert.ErrorIs(t, queue.errs[0], boom)
	})

	t.Run("should drop invalid entries and full queues silently", func(t *testing.T) {
		repo := new(mocks.HistoryRepository)
		recorder := effects.NewHistoryRecorder(repo, &inlineQueue{full: true}, kernel.NewFixedClock(now), logger.NewNop())

		assert.NotPanics(t, func() {
			recorder.Record(0, "", history.Finished, "")
			recorder.Record(42, "", history.Action("deleted"), "")
			recorder.Record(42, "", history.Finished, "")
		})
		repo.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
	})
}

func TestDocumentDispatcher(t *testing.T) {
	doc := ports.OrderDocument{Number: 42, ClientName: "Juan Perez"}

	t.Run("should load, stamp and render", func(t *testing.T) {
		source := new(mocks.OrderDocumentSource)
		renderer := new(mocks.DocumentRenderer)
		queue := &inlineQueue{}
		source.On("LoadOrderDocument", mock.Anything, int64(42)).Return(doc, nil).Once()
		renderer.On("Render", mock.Anything, mock.MatchedBy(func(d ports.OrderDocument) bool {
			return d.Number == 42 && d.GeneratedAt.Equal(now)
		})).Return("/tmp/Orden_42.html", nil).Once()

		dispatcher := effects.NewDocumentDispatcher(source, renderer, queue, kernel.NewFixedClock(now), logger.NewNop())
		dispatcher.Publish(42)

		require.Len(t, queue.errs, 1)
		require.NoError(t, queue.errs[0])
		assert.Empty(t, dispatcher.Pending())
		source.AssertExpectations(t)
		renderer.AssertExpectations(t)
	})

	t.Run("should keep failed renders for a retry", func(t *testing.T) {
		source := new(mocks.OrderDocumentSource)
		renderer := new(mocks.DocumentRenderer)
		queue := &inlineQueue{}
		source.On("LoadOrderDocument", mock.Anything, int64(42)).Return(doc, nil).Twice()
		renderer.On("Render", mock.Anything, mock.Anything).Return("", errors.New("disk full")).Once()
		renderer.On("Render", mock.Anything, mock.Anything).Return("/tmp/Orden_42.html", nil).Once()

		dispatcher := effects.NewDocumentDispatcher(source, renderer, queue, kernel.NewFixedClock(now), logger.NewNop())
		dispatcher.Publish(42)

		require.Error(t, queue.errs[0])
		assert.Equal(t, []int64{42}, dispatcher.Pending())

		done, err := dispatcher.RetryPending(t.Context())
		require.NoError(t, err)
		assert.Equal(t, 1, done)
		assert.Empty(t, dispatcher.Pending())
	})

	t.Run("should defer renders when the queue is full", func(t *testing.T) {
		source := new(mocks.OrderDocumentSource)
		renderer := new(mocks.DocumentRenderer)
		dispatcher := effects.NewDocumentDispatcher(
			source, renderer, &inlineQueue{full: true}, kernel.NewFixedClock(now), logger.NewNop())

		dispatcher.Publish(7)
		dispatcher.Publish(3)

		assert.Equal(t, []int64{3, 7}, dispatcher.Pending())
		source.AssertNotCalled(t, "LoadOrderDocument", mock.Anything, mock.Anything)
	})

	t.Run("should report load failures on retry and keep the order pending", func(t *testing.T) {
		source := new(mocks.OrderDocumentSource)
		renderer := new(mocks.DocumentRenderer)
		dispatcher := effects.NewDocumentDispatcher(
			source, renderer, &inlineQueue{full: true}, kernel.NewFixedClock(now), logger.NewNop())
		source.On("LoadOrderDocument", mock.Anything, int64(5)).
			Return(ports.OrderDocument{}, errors.New("connection refused")).Once()

		dispatcher.Publish(5)
		done, err := dispatcher.RetryPending(t.Context())

		require.ErrorContains(t, err, "connection refused")
		assert.Zero(t, done)
		assert.Equal(t, []int64{5}, dispatcher.Pending())
	})
}
