package rmprint

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEditBufferSplice(t *testing.T) {
	b := newEditBuffer([]byte("abcdef"))
	b.delete(1, 3)
	b.insert(4, "X")

	assert.Equal(t, "adXef", string(b.bytes()))
}

func TestEditBufferMergesOverlap(t *testing.T) {
	b := newEditBuffer([]byte("abcdef"))
	b.delete(0, 4)
	b.delete(2, 5)

	assert.Equal(t, "f", string(b.bytes()))
}

func TestEditBufferInsertAtDeletionStart(t *testing.T) {
	b := newEditBuffer([]byte("abcdef"))
	b.delete(1, 5)
	b.insert(1, "X")

	assert.Equal(t, "aXf", string(b.bytes()))
}

func TestEditBufferNoEdits(t *testing.T) {
	b := newEditBuffer([]byte("abc"))

	assert.Equal(t, "abc", string(b.bytes()))
}
