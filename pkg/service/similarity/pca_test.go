package similarity

import (
	"math"
	"testing"

	"github.com/m-mizutani/gt"
)

func near(a, b float64) bool {
	return math.Abs(a-b) <= 1e-9
}

func TestProject(t *testing.T) {
	t.Run("collinear points land on the first axis", func(t *testing.T) {
		coords := project([][3]float64{
			{0, 0, 0},
			{1, 1, 0},
			{2, 2, 0},
			{3, 3, 0},
		})

		want := []float64{-3 / math.Sqrt2, -1 / math.Sqrt2, 1 / math.Sqrt2, 3 / math.Sqrt2}
		for i, w := range want {
			gt.True(t, near(coords[i][0], w))
			gt.True(t, near(coords[i][1], 0))
		}
	})

	t.Run("axis-aligned variance keeps raw offsets", func(t *testing.T) {
		coords := project([][3]float64{
			{9, 4, 7},
			{5, 4, 7},
			{1, 4, 7},
		})

		gt.True(t, near(coords[0][0], 4))
		gt.True(t, near(coords[1][0], 0))
		gt.True(t, near(coords[2][0], -4))
		for i := range coords {
			gt.True(t, near(coords[i][1], 0))
		}
	})

	t.Run("planar square projects onto itself", func(t *testing.T) {
		coords := project([][3]float64{
			{0, 0, 5},
			{0, 10, 5},
			{10, 0, 5},
			{10, 10, 5},
		})

		want := [][2]float64{{-5, -5}, {-5, 5}, {5, -5}, {5, 5}}
		for i, w := range want {
			gt.True(t, near(coords[i][0], w[0]))
			gt.True(t, near(coords[i][1], w[1]))
		}
	})

	t.Run("sign convention points toward the dominant coefficient", func(t *testing.T) {
		coords := project([][3]float64{
			{0, 10, 0},
			{5, 5, 0},
			{10, 0, 0},
		})

		// The first axis has equal-magnitude achievement and power
		// coefficients; the tie is fixed on achievement, so X grows
		// with achievement.
		gt.True(t, near(coords[0][0], -math.Sqrt(50)))
		gt.True(t, near(coords[1][0], 0))
		gt.True(t, near(coords[2][0], math.Sqrt(50)))
		for i := range coords {
			gt.True(t, near(coords[i][1], 0))
		}
	})

	t.Run("identical vectors collapse to the origin", func(t *testing.T) {
		coords := project([][3]float64{
			{4, 4, 4},
			{4, 4, 4},
			{4, 4, 4},
		})

		for i := range coords {
			gt.True(t, near(coords[i][0], 0))
			gt.True(t, near(coords[i][1], 0))
		}
	})

	t.Run("equal inputs produce equal outputs", func(t *testing.T) {
		vecs := [][3]float64{
			{1, 7, 3},
			{8, 2, 6},
			{4, 9, 1},
			{5, 5, 5},
			{2, 3, 8},
		}

		first := project(vecs)
		second := project(vecs)
		gt.Equal(t, first, second)
	})

	t.Run("empty input", func(t *testing.T) {
		gt.Equal(t, len(project(nil)), 0)
	})
}

func TestEigenSym3(t *testing.T) {
	t.Run("diagonal matrix is its own decomposition", func(t *testing.T) {
		vals, vecs := eigenSym3([3][3]float64{{3, 0, 0}, {0, 2, 0}, {0, 0, 1}})

		gt.True(t, near(vals[0], 3))
		gt.True(t, near(vals[1], 2))
		gt.True(t, near(vals[2], 1))
		gt.Equal(t, vecs, [3][3]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}})
	})

	t.Run("known symmetric matrix", func(t *testing.T) {
		// Eigenvalues of [[2,1,0],[1,2,0],[0,0,5]] are 5, 3 and 1.
		vals, vecs := eigenSym3([3][3]float64{{2, 1, 0}, {1, 2, 0}, {0, 0, 5}})

		got := []float64{vals[0], vals[1], vals[2]}
		sortDesc(got)
		gt.True(t, near(got[0], 5))
		gt.True(t, near(got[1], 3))
		gt.True(t, near(got[2], 1))

		// Columns stay orthonormal.
		for i := 0; i < 3; i++ {
			var norm float64
			for r := 0; r < 3; r++ {
				norm += vecs[r][i] * vecs[r][i]
			}
			gt.True(t, near(norm, 1))
		}
	})
}

func sortDesc(vals []float64) {
	for i := 0; i < len(vals); i++ {
		for j := i + 1; j < len(vals); j++ {
			if vals[j] > vals[i] {
				vals[i], vals[j] = vals[j], vals[i]
			}
		}
	}
}
