package similarity

import (
	"math"
	"sort"
)

// project maps 3-column trait vectors onto their two principal axes.
// Columns are mean-centered without variance scaling, the covariance
// matrix is decomposed with cyclic Jacobi rotations, and the two axes
// with the largest eigenvalues become X and Y. Each axis is sign-fixed
// so its largest-magnitude coefficient is positive (first index wins
// ties), which keeps equal inputs producing identical outputs.
func project(vecs [][3]float64) [][2]float64 {
	n := len(vecs)
	coords := make([][2]float64, n)
	if n == 0 {
		return coords
	}

	var mean [3]float64
	for _, v := range vecs {
		for c := 0; c < 3; c++ {
			mean[c] += v[c]
		}
	}
	for c := 0; c < 3; c++ {
		mean[c] /= float64(n)
	}

	centered := make([][3]float64, n)
	for i, v := range vecs {
		for c := 0; c < 3; c++ {
			centered[i][c] = v[c] - mean[c]
		}
	}

	var cov [3][3]float64
	if n > 1 {
		for _, v := range centered {
			for r := 0; r < 3; r++ {
				for c := 0; c < 3; c++ {
					cov[r][c] += v[r] * v[c]
				}
			}
		}
		for r := 0; r < 3; r++ {
			for c := 0; c < 3; c++ {
				cov[r][c] /= float64(n - 1)
			}
		}
	}

	vals, eig := eigenSym3(cov)

	order := []int{0, 1, 2}
	sort.SliceStable(order, func(i, j int) bool {
		return vals[order[i]] > vals[order[j]]
	})

	var axes [2][3]float64
	for k := 0; k < 2; k++ {
		col := order[k]
		for r := 0; r < 3; r++ {
			axes[k][r] = eig[r][col]
		}
		fixSign(&axes[k])
	}

	for i, v := range centered {
		for k := 0; k < 2; k++ {
			coords[i][k] = v[0]*axes[k][0] + v[1]*axes[k][1] + v[2]*axes[k][2]
		}
	}
	return coords
}

func fixSign(axis *[3]float64) {
	maxIdx := 0
	for r := 1; r < 3; r++ {
		if math.Abs(axis[r]) > math.Abs(axis[maxIdx]) {
			maxIdx = r
		}
	}
	if axis[maxIdx] < 0 {
		for r := 0; r < 3; r++ {
			axis[r] = -axis[r]
		}
	}
}

// eigenSym3 decomposes a symmetric 3x3 matrix with cyclic Jacobi
// rotations. Eigenvectors come back as the columns of vecs. A handful
// of sweeps is enough at this size; the off-diagonal mass shrinks
// quadratically.
func eigenSym3(m [3][3]float64) (vals [3]float64, vecs [3][3]float64) {
	a := m
	vecs = [3][3]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}

	for sweep := 0; sweep < 64; sweep++ {
		off := a[0][1]*a[0][1] + a[0][2]*a[0][2] + a[1][2]*a[1][2]
		if off < 1e-24 {
			break
		}
		for p := 0; p < 2; p++ {
			for q := p + 1; q < 3; q++ {
				if math.Abs(a[p][q]) < 1e-30 {
					continue
				}
				rotate(&a, &vecs, p, q)
			}
		}
	}

	for i := 0; i < 3; i++ {
		vals[i] = a[i][i]
	}
	return vals, vecs
}

// rotate applies one Jacobi rotation zeroing a[p][q], accumulating the
// rotation into v.
func rotate(a, v *[3][3]float64, p, q int) {
	apq := a[p][q]
	theta := (a[q][q] - a[p][p]) / (2 * apq)
	t := 1 / (math.Abs(theta) + math.Sqrt(theta*theta+1))
	if theta < 0 {
		t = -t
	}
	c := 1 / math.Sqrt(t*t+1)
	s := t * c
	tau := s / (1 + c)

	a[p][p] -= t * apq
	a[q][q] += t * apq
	a[p][q] = 0
	a[q][p] = 0

	for r := 0; r < 3; r++ {
		if r == p || r == q {
			continue
		}
		arp := a[r][p]
		arq := a[r][q]
		a[r][p] = arp - s*(arq+tau*arp)
		a[p][r] = a[r][p]
		a[r][q] = arq + s*(arp-tau*arq)
		a[q][r] = a[r][q]
	}

	for r := 0; r < 3; r++ {
		vrp := v[r][p]
		vrq := v[r][q]
		v[r][p] = vrp - s*(vrq+tau*vrp)
		v[r][q] = vrq + s*(vrp-tau*vrq)
	}
}
