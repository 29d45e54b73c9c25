package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.grampus.dev/grampus/internal/core/domain"
)

func TestTargetSpec_Variants(t *testing.T) {
	scalar := domain.ScalarTarget("node")
	assert.Equal(t, domain.TargetScalar, scalar.Kind())
	assert.Equal(t, "node", scalar.Name())
	assert.Nil(t, scalar.Elems())

	list := domain.ListTarget([]domain.TargetSpec{
		domain.ScalarTarget("a"),
		domain.ScalarTarget("b"),
	})
	assert.Equal(t, domain.TargetList, list.Kind())
	assert.Len(t, list.Elems(), 2)
	assert.Empty(t, list.Name())

	invalid := domain.InvalidTarget()
	assert.Equal(t, domain.TargetInvalid, invalid.Kind())
}

func TestInjectStats_Add(t *testing.T) {
	total := domain.InjectStats{VerticesCreated: 1, VerticesReused: 2, EdgesCreated: 3}
	total.Add(domain.InjectStats{VerticesCreated: 4, VerticesReused: 5, EdgesCreated: 6})

	assert.Equal(t, domain.InjectStats{VerticesCreated: 5, VerticesReused: 7, EdgesCreated: 9}, total)
}
