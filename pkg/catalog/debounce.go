package catalog

import (
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/partshelf/partshelf/pkg/types"
)

// widthKey identifies one debounced column: a category and a field.
type widthKey struct {
	typeID int64
	field  string
}

// WidthSaver debounces column width persistence during interactive
// resizing. Each notification records the new width in memory and arms a
// cancellable delayed save keyed by column; a newer notification for the
// same column before the quiet window elapses supersedes the pending save.
// The net effect is exactly one write per resize gesture, carrying the
// latest width.
//
// This is the only concurrent machinery in the data layer: the delayed
// save fires on a timer goroutine. The mutex guards the pending map, the
// width mutation on the shared Header, and the save itself, so a
// notification arriving while a save is in flight waits for it instead of
// racing it.
type WidthSaver struct {
	quiet time.Duration
	log   zerolog.Logger

	mu      sync.Mutex
	pending map[widthKey]*widthTask
}

type widthTask struct {
	timer  *time.Timer
	set    *HeaderSet
	header *types.Header
}

// NewWidthSaver returns a saver with the given quiet window.
func NewWidthSaver(quiet time.Duration, log zerolog.Logger) *WidthSaver {
	if quiet <= 0 {
		quiet = types.DefaultWidthSaveQuiet
	}
	return &WidthSaver{
		quiet:   quiet,
		log:     log.With().Str("component", "widthsaver").Logger(),
		pending: make(map[widthKey]*widthTask),
	}
}

// Notify records a width change for one column of a category's overlay
// and schedules its persistence after the quiet window. An unchanged
// width is ignored. A pending save for the same column is cancelled and
// replaced.
func (w *WidthSaver) Notify(set *HeaderSet, field string, width int64) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	h, err := set.Header(field)
	if err != nil {
		return err
	}
	if h.Width == width {
		return nil
	}
	h.SetWidth(width)

	key := widthKey{typeID: set.TypeID(), field: field}
	if task, ok := w.pending[key]; ok {
		task.timer.Stop()
	}
	task := &widthTask{set: set, header: h}
	task.timer = time.AfterFunc(w.quiet, func() { w.fire(key) })
	w.pending[key] = task
	return nil
}

// fire persists the pending width for one column after its quiet window.
// The save runs under the mutex so a concurrent Notify cannot mutate the
// header mid-write or have its dirty mark cleared out from under it.
func (w *WidthSaver) fire(key widthKey) {
	w.mu.Lock()
	task, ok := w.pending[key]
	if !ok {
		w.mu.Unlock()
		return
	}
	delete(w.pending, key)
	err := task.set.saveOne(task.header)
	width := task.header.Width
	w.mu.Unlock()

	if err != nil {
		// The timer goroutine has no caller to report to; a failed
		// width save is logged, never swallowed silently.
		w.log.Error().Err(err).Str("field", key.field).Int64("type_id", key.typeID).
			Msg("width save failed")
		return
	}
	w.log.Debug().Str("field", key.field).Int64("type_id", key.typeID).
		Int64("width", width).Msg("saved column width")
}

// Flush cancels all pending timers and persists their widths immediately.
// Used on shutdown.
func (w *WidthSaver) Flush() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	for key, task := range w.pending {
		task.timer.Stop()
		if err := task.set.saveOne(task.header); err != nil {
			return fmt.Errorf("flush width of %s/%d: %w", key.field, key.typeID, err)
		}
		delete(w.pending, key)
	}
	return nil
}
