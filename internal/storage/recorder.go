package storage

import "fmt"

// DefaultBatchSize is how many frames a Recorder buffers before writing.
const DefaultBatchSize = 120

// Recorder buffers frames of one session and writes them in batches.
// It is not safe for concurrent use; each session owns its own Recorder.
type Recorder struct {
	store     *Store
	sessionID int64
	batch     int
	buf       []Frame
}

// NewRecorder starts a session in store and returns a recorder for it.
func NewRecorder(store *Store, frontend, user string, batch int) (*Recorder, error) {
	if batch <= 0 {
		batch = DefaultBatchSize
	}

	id, err := store.BeginSession(frontend, user)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot start recorder: %w", err)
	}

	return &Recorder{
		store:     store,
		sessionID: id,
		batch:     batch,
		buf:       make([]Frame, 0, batch),
	}, nil
}

// SessionID returns the ID of the recorded session.
func (r *Recorder) SessionID() int64 {
	return r.sessionID
}

// Record buffers a frame, flushing when the batch is full.
func (r *Recorder) Record(f Frame) error {
	r.buf = append(r.buf, f)
	if len(r.buf) >= r.batch {
		return r.Flush()
	}
	return nil
}

// Pending returns the number of buffered frames.
func (r *Recorder) Pending() int {
	return len(r.buf)
}

// Flush writes all buffered frames. The buffer is dropped even on error so
// a broken database cannot grow it without bound.
func (r *Recorder) Flush() error {
	if len(r.buf) == 0 {
		return nil
	}
	err := r.store.SaveFrames(r.sessionID, r.buf)
	r.buf = r.buf[:0]
	return err
}

// Close flushes the remaining frames.
func (r *Recorder) Close() error {
	return r.Flush()
}
