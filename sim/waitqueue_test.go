package sim

import (
	"testing"
)

func TestWaitQueue_Peek_NonEmpty_ReturnsFront(t *testing.T) {
	// GIVEN a queue with processes [A, B]
	wq := &WaitQueue{}
	procA := &Process{ID: "A"}
	procB := &Process{ID: "B"}
	wq.Enqueue(procA)
	wq.Enqueue(procB)

	// WHEN Peek() is called
	got := wq.Peek()

	// THEN it returns the front element without removing it
	if got != procA {
		t.Errorf("Peek: got process %v, want %v", got.ID, procA.ID)
	}
	if wq.Len() != 2 {
		t.Errorf("Peek modified queue length: got %d, want 2", wq.Len())
	}
}

func TestWaitQueue_Peek_Empty_ReturnsNil(t *testing.T) {
	// GIVEN an empty queue
	wq := &WaitQueue{}

	// WHEN Peek() is called
	got := wq.Peek()

	// THEN it returns nil
	if got != nil {
		t.Errorf("Peek on empty queue: got %v, want nil", got)
	}
}

func TestWaitQueue_Dequeue_PreservesFIFOOrder(t *testing.T) {
	// GIVEN a queue with processes [A, B, C]
	wq := &WaitQueue{}
	wq.Enqueue(&Process{ID: "A"})
	wq.Enqueue(&Process{ID: "B"})
	wq.Enqueue(&Process{ID: "C"})

	// WHEN draining the queue
	ids := make([]string, 0, 3)
	for wq.Len() > 0 {
		ids = append(ids, wq.Dequeue().ID)
	}

	// THEN elements leave in insertion order
	want := []string{"A", "B", "C"}
	for i, id := range ids {
		if id != want[i] {
			t.Errorf("Dequeue order[%d]: got %s, want %s", i, id, want[i])
		}
	}
}

func TestWaitQueue_Dequeue_Empty_ReturnsNil(t *testing.T) {
	wq := &WaitQueue{}
	if got := wq.Dequeue(); got != nil {
		t.Errorf("Dequeue on empty queue: got %v, want nil", got)
	}
}

func TestWaitQueue_IDs_ReturnsCopyInOrder(t *testing.T) {
	// GIVEN a queue with processes [X, Y]
	wq := &WaitQueue{}
	wq.Enqueue(&Process{ID: "X"})
	wq.Enqueue(&Process{ID: "Y"})

	// WHEN IDs() is called and the result is mutated
	ids := wq.IDs()
	ids[0] = "mutated"

	// THEN the queue itself is untouched
	if wq.Peek().ID != "X" {
		t.Errorf("IDs returned internal storage: front is %s, want X", wq.Peek().ID)
	}
}

func TestWaitQueue_Enqueue_NilPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Enqueue(nil) did not panic")
		}
	}()
	wq := &WaitQueue{}
	wq.Enqueue(nil)
}
