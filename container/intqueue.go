package container

const defaultQueueCapacity = 16

// IntQueue is a FIFO ring buffer of ints. The entity manager recycles
// deleted IDs through it oldest-first, which spreads reuse across the ID
// space instead of churning the most recently freed ID.
type IntQueue struct {
	buf  []int
	head int
	n    int
}

// Push appends v at the back of the queue.
func (q *IntQueue) Push(v int) {
	if q.n == len(q.buf) {
		q.grow()
	}
	q.buf[(q.head+q.n)%len(q.buf)] = v
	q.n++
}

// Pop removes and returns the front of the queue.
func (q *IntQueue) Pop() (int, bool) {
	if q.n == 0 {
		return 0, false
	}
	v := q.buf[q.head]
	q.head = (q.head + 1) % len(q.buf)
	q.n--
	return v, true
}

// Len reports the number of queued values.
func (q *IntQueue) Len() int {
	return q.n
}

// IsEmpty reports whether the queue holds no values.
func (q *IntQueue) IsEmpty() bool {
	return q.n == 0
}

// Clear discards all queued values, retaining the allocated buffer.
func (q *IntQueue) Clear() {
	q.head = 0
	q.n = 0
}

func (q *IntQueue) grow() {
	newCap := len(q.buf) * 2
	if newCap == 0 {
		newCap = defaultQueueCapacity
	}
	grown := make([]int, newCap)
	for i := 0; i < q.n; i++ {
		grown[i] = q.buf[(q.head+i)%len(q.buf)]
	}
	q.buf = grown
	q.head = 0
}
