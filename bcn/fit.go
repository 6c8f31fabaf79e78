package bcn

import "math"

// fitEndpoints picks two RGB endpoint colors for a 4x4 block of pixels
// via principal-axis projection followed by a small number of
// two-cluster refinement passes. More iterations (higher quality
// levels) converge closer to a true least-squares fit; this is the
// same style of iterative endpoint refinement libsquish-class BC1
// encoders use, simplified to avoid a full SVD.
func fitEndpoints(px [16][3]uint8, iterations int) (c0, c1 rgb565) {
	var mean [3]float64
	for _, p := range px {
		mean[0] += float64(p[0])
		mean[1] += float64(p[1])
		mean[2] += float64(p[2])
	}
	for i := range mean {
		mean[i] /= 16
	}

	// Principal axis via power iteration on the covariance matrix.
	var cov [3][3]float64
	for _, p := range px {
		d := [3]float64{float64(p[0]) - mean[0], float64(p[1]) - mean[1], float64(p[2]) - mean[2]}
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				cov[i][j] += d[i] * d[j]
			}
		}
	}
	axis := [3]float64{1, 1, 1}
	for iter := 0; iter < 8; iter++ {
		var next [3]float64
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				next[i] += cov[i][j] * axis[j]
			}
		}
		norm := vecnorm(next)
		if norm < 1e-9 {
			break
		}
		axis = [3]float64{next[0] / norm, next[1] / norm, next[2] / norm}
	}

	var lo, hi [3]float64
	minT, maxT := 0.0, 0.0
	first := true
	for _, p := range px {
		t := (float64(p[0])-mean[0])*axis[0] + (float64(p[1])-mean[1])*axis[1] + (float64(p[2])-mean[2])*axis[2]
		if first || t < minT {
			minT = t
		}
		if first || t > maxT {
			maxT = t
		}
		first = false
	}
	for i := 0; i < 3; i++ {
		lo[i] = mean[i] + axis[i]*minT
		hi[i] = mean[i] + axis[i]*maxT
	}
	c0 = rgb565{lo[0], lo[1], lo[2]}
	c1 = rgb565{hi[0], hi[1], hi[2]}

	for iter := 0; iter < iterations; iter++ {
		var sumA, sumB [3]float64
		var nA, nB int
		for _, p := range px {
			da := dist2(c0, p[0], p[1], p[2])
			db := dist2(c1, p[0], p[1], p[2])
			if da <= db {
				sumA[0] += float64(p[0])
				sumA[1] += float64(p[1])
				sumA[2] += float64(p[2])
				nA++
			} else {
				sumB[0] += float64(p[0])
				sumB[1] += float64(p[1])
				sumB[2] += float64(p[2])
				nB++
			}
		}
		if nA > 0 {
			c0 = rgb565{sumA[0] / float64(nA), sumA[1] / float64(nA), sumA[2] / float64(nA)}
		}
		if nB > 0 {
			c1 = rgb565{sumB[0] / float64(nB), sumB[1] / float64(nB), sumB[2] / float64(nB)}
		}
	}
	return c0, c1
}

func vecnorm(v [3]float64) float64 {
	return math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
}
