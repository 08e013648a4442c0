package queue_test

import (
	"errors"
	"testing"

	"github.com/hermanconnor/dsa-go/queue"
)

func TestNew_NegativeCapacity(t *testing.T) {
	_, err := queue.New[int](queue.WithCapacity(-1))
	if !errors.Is(err, queue.ErrOptionViolation) {
		t.Fatalf("expected ErrOptionViolation, got %v", err)
	}
}

func TestQueue_FIFOOrder(t *testing.T) {
	q, err := queue.New[int]()
	if err != nil {
		t.Fatal(err)
	}

	for i := 1; i <= 5; i++ {
		q.Enqueue(i)
	}
	for want := 1; want <= 5; want++ {
		got, ok := q.Dequeue()
		if !ok || got != want {
			t.Fatalf("Dequeue = %d, %v; want %d, true", got, ok, want)
		}
	}
	if _, ok := q.Dequeue(); ok {
		t.Fatal("Dequeue on empty queue reported ok")
	}
}

func TestQueue_PeekDoesNotRemove(t *testing.T) {
	q, _ := queue.New[string]()
	if _, ok := q.Peek(); ok {
		t.Fatal("Peek on empty queue reported ok")
	}

	q.Enqueue("front")
	q.Enqueue("back")

	for i := 0; i < 3; i++ {
		v, ok := q.Peek()
		if !ok || v != "front" {
			t.Fatalf("Peek = %q, %v; want front, true", v, ok)
		}
	}
	if q.Len() != 2 {
		t.Fatalf("Len = %d after peeks; want 2", q.Len())
	}
}

func TestQueue_GrowthPreservesOrder(t *testing.T) {
	q, err := queue.New[int](queue.WithCapacity(4))
	if err != nil {
		t.Fatal(err)
	}

	// Advance the head so the ring wraps before it grows.
	q.Enqueue(-1)
	q.Enqueue(-2)
	q.Dequeue()
	q.Dequeue()

	const n = 100
	for i := 0; i < n; i++ {
		q.Enqueue(i)
	}
	if q.Len() != n {
		t.Fatalf("Len = %d; want %d", q.Len(), n)
	}
	if q.Cap() < n {
		t.Fatalf("Cap = %d; ring did not grow past %d", q.Cap(), n)
	}

	for want := 0; want < n; want++ {
		got, ok := q.Dequeue()
		if !ok || got != want {
			t.Fatalf("Dequeue = %d, %v; want %d, true", got, ok, want)
		}
	}
}

func TestQueue_Clear(t *testing.T) {
	q, _ := queue.New[int]()
	for i := 0; i < 10; i++ {
		q.Enqueue(i)
	}

	q.Clear()
	if q.Len() != 0 {
		t.Fatalf("Len = %d after Clear; want 0", q.Len())
	}

	// The cleared queue stays usable.
	q.Enqueue(42)
	if v, ok := q.Dequeue(); !ok || v != 42 {
		t.Fatalf("Dequeue = %d, %v after Clear; want 42, true", v, ok)
	}
}

func TestQueue_InterleavedWraparound(t *testing.T) {
	q, err := queue.New[int](queue.WithCapacity(3))
	if err != nil {
		t.Fatal(err)
	}

	next, expect := 0, 0
	for round := 0; round < 50; round++ {
		q.Enqueue(next)
		next++
		q.Enqueue(next)
		next++

		got, ok := q.Dequeue()
		if !ok || got != expect {
			t.Fatalf("round %d: Dequeue = %d, %v; want %d, true", round, got, ok, expect)
		}
		expect++
	}
	if q.Len() != next-expect {
		t.Fatalf("Len = %d; want %d", q.Len(), next-expect)
	}
}
