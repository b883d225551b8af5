package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVectorAdd(t *testing.T) {
	a := Vector{1, 2, 3, 4, 5, 6, 7, 8, 9}
	b := Vector{9, 8, 7, 6, 5, 4, 3, 2, 1}

	require.Equal(t, Vector{10, 10, 10, 10, 10, 10, 10, 10, 10}, a.Add(b))
	require.Equal(t, Vector{1, 2, 3, 4, 5, 6, 7, 8, 9}, a, "Add should not modify its receiver")
}

func TestVectorHash(t *testing.T) {
	tests := []struct {
		name   string
		vector Vector
		want   uint32
	}{
		{"digits", Vector{1, 1, 1, 1, 1, 1, 1, 1, 1}, 111111111},
		{"zero", Vector{}, 0},
		// 1110121110 does not fit in 30 bits
		{"masked", Vector{10, 10, 10, 1, 1, 10, 10, 10, 10}, 36379286},
		// 6706690706 wraps around 32 bits before the mask
		{"wrapped", Vector{66, 4, 66, 4, 28, 4, 66, 4, 66}, 264239762},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.vector.Hash()

			require.Equal(t, tt.want, got)
			require.Less(t, got, uint32(1<<HashWidth))
		})
	}
}
