package pqueue_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mearman/graphbox/pqueue"
)

func TestInsertAndExtractMin_AscendingOrder(t *testing.T) {
	q := pqueue.New()
	assert.True(t, q.IsEmpty())

	assert.NoError(t, q.Insert("c", 3.0))
	assert.NoError(t, q.Insert("a", 1.0))
	assert.NoError(t, q.Insert("b", 2.0))
	assert.Equal(t, 3, q.Len())

	var order []string
	for !q.IsEmpty() {
		elem, _, ok := q.ExtractMin()
		assert.True(t, ok)
		order = append(order, elem)
	}
	assert.Equal(t, []string{"a", "b", "c"}, order)
}

func TestInsert_RejectsDuplicateElement(t *testing.T) {
	q := pqueue.New()
	assert.NoError(t, q.Insert("a", 1.0))
	err := q.Insert("a", 5.0)
	assert.Error(t, err)
}

func TestDecreaseKey_ReordersHeap(t *testing.T) {
	q := pqueue.New()
	assert.NoError(t, q.Insert("a", 10.0))
	assert.NoError(t, q.Insert("b", 20.0))
	assert.NoError(t, q.Insert("c", 30.0))

	assert.NoError(t, q.DecreaseKey("c", 5.0))

	elem, priority, ok := q.ExtractMin()
	assert.True(t, ok)
	assert.Equal(t, "c", elem)
	assert.Equal(t, 5.0, priority)
}

func TestDecreaseKey_RejectsIncrease(t *testing.T) {
	q := pqueue.New()
	assert.NoError(t, q.Insert("a", 10.0))
	err := q.DecreaseKey("a", 20.0)
	assert.Error(t, err)
}

func TestDecreaseKey_RejectsMissingElement(t *testing.T) {
	q := pqueue.New()
	err := q.DecreaseKey("missing", 1.0)
	assert.Error(t, err)
}

func TestPeek_DoesNotRemove(t *testing.T) {
	q := pqueue.New()
	assert.NoError(t, q.Insert("a", 1.0))
	elem, priority, ok := q.Peek()
	assert.True(t, ok)
	assert.Equal(t, "a", elem)
	assert.Equal(t, 1.0, priority)
	assert.Equal(t, 1, q.Len())
}

func TestContains(t *testing.T) {
	q := pqueue.New()
	assert.False(t, q.Contains("a"))
	assert.NoError(t, q.Insert("a", 1.0))
	assert.True(t, q.Contains("a"))
	_, _, _ = q.ExtractMin()
	assert.False(t, q.Contains("a"))
}

func TestExtractMinBatch(t *testing.T) {
	q := pqueue.New()
	assert.NoError(t, q.Insert("b", 2.0))
	assert.NoError(t, q.Insert("a", 1.0))
	assert.NoError(t, q.Insert("c", 3.0))

	batch := q.ExtractMinBatch(2)
	assert.Equal(t, []string{"a", "b"}, batch)
	assert.Equal(t, 1, q.Len())
}
