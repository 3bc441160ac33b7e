package history

import "time"

// idSequence hands out creation-time ids in milliseconds, bumping past the
// last issued id when the clock has not advanced.
type idSequence struct {
	last int64
	now  func() time.Time
}

func (q *idSequence) next() int64 {
	id := q.now().UnixMilli()
	if id <= q.last {
		id = q.last + 1
	}
	q.last = id
	return id
}

func (q *idSequence) observe(id int64) {
	if id > q.last {
		q.last = id
	}
}
