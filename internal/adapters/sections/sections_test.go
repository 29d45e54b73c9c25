package sections_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.grampus.dev/grampus/internal/adapters/sections"
	"go.grampus.dev/grampus/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestClassmap(t *testing.T) {
	cases := []struct {
		name    string
		mapping map[string]string
		raw     string
		want    string
	}{
		{
			name:    "mapped name resolves",
			mapping: map[string]string{"app": "com.example.Application"},
			raw:     "app",
			want:    "com.example.Application",
		},
		{
			name:    "unmapped name resolves to itself",
			mapping: map[string]string{"app": "com.example.Application"},
			raw:     "db",
			want:    "db",
		},
		{
			name: "nil mapping is identity",
			raw:  "anything",
			want: "anything",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := sections.NewClassmap(tc.mapping)
			assert.Equal(t, tc.want, c.ResolveVertex(tc.raw))
			assert.Equal(t, tc.want, c.ResolveEdge(tc.raw))
		})
	}
}

func TestVertices_Apply(t *testing.T) {
	ctrl := gomock.NewController(t)
	vertex := mocks.NewMockVertex(ctrl)
	vertex.EXPECT().SetProperty(gomock.Any(), "name", "shop").Return(nil)
	vertex.EXPECT().SetProperty(gomock.Any(), "tier", "frontend").Return(nil)

	s := sections.NewVertices(map[string]map[string]any{
		"app": {"tier": "frontend", "name": "shop"},
	})
	require.NoError(t, s.Apply(context.Background(), "app", vertex))
}

func TestVertices_ApplyUndeclaredNameIsNoOp(t *testing.T) {
	ctrl := gomock.NewController(t)
	vertex := mocks.NewMockVertex(ctrl)

	s := sections.NewVertices(map[string]map[string]any{
		"app": {"tier": "frontend"},
	})
	require.NoError(t, s.Apply(context.Background(), "db", vertex))
}

func TestVertices_ApplyNilSectionIsNoOp(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := sections.NewVertices(nil)
	require.NoError(t, s.Apply(context.Background(), "app", mocks.NewMockVertex(ctrl)))
}

func TestEdges_Apply(t *testing.T) {
	ctrl := gomock.NewController(t)
	edge := mocks.NewMockEdge(ctrl)
	edge.EXPECT().SetProperty(gomock.Any(), "weight", 3).Return(nil)

	s := sections.NewEdges(map[string]map[string]any{
		"uses": {"weight": 3},
	})
	require.NoError(t, s.Apply(context.Background(), "uses", edge))
}

func TestEdges_ApplyUndeclaredLabelIsNoOp(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := sections.NewEdges(map[string]map[string]any{
		"uses": {"weight": 3},
	})
	require.NoError(t, s.Apply(context.Background(), "feeds", mocks.NewMockEdge(ctrl)))
}

func TestHeader(t *testing.T) {
	cases := []struct {
		name        string
		values      map[string]any
		wantName    string
		wantVersion string
	}{
		{
			name:        "declared values",
			values:      map[string]any{"name": "shop", "version": "2"},
			wantName:    "shop",
			wantVersion: "2",
		},
		{
			name:        "numeric version renders as text",
			values:      map[string]any{"version": 2},
			wantVersion: "2",
		},
		{
			name:        "missing values default",
			values:      map[string]any{},
			wantVersion: "1",
		},
		{
			name:        "nil header defaults",
			wantVersion: "1",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := sections.NewHeader(tc.values)
			assert.Equal(t, tc.wantName, h.Name())
			assert.Equal(t, tc.wantVersion, h.Version())
		})
	}
}
