package queue

// Queue represents a FIFO queue of pending operations.
type Queue interface {
	Enqueue(item interface{}) error
	ReadAllMessages() ([]interface{}, error)
	Size() int
	Clear()
}
