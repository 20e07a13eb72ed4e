package tracker

import (
	"errors"
)

// largeCost is the sentinel cost used by the solver, it must exceed any real
// entry in the cost matrix
const largeCost = 1000000.0

// solveLap solves the dense Linear Assignment Problem with the
// Jonker-Volgenant algorithm.  cost is an n x n matrix, on return rowSol[i]
// holds the column assigned to row i and colSol[j] the row assigned to
// column j.
func solveLap(n int, cost [][]float64, rowSol, colSol []int) error {

	freeRows := make([]int, n)
	v := make([]float64, n)

	free := columnReduction(n, cost, freeRows, rowSol, colSol, v)

	for i := 0; free > 0 && i < 2; i++ {
		free = augmentingRowReduction(n, cost, free, freeRows, rowSol, colSol, v)
	}

	if free > 0 {
		return augment(n, cost, free, freeRows, rowSol, colSol, v)
	}

	return nil
}

// columnReduction performs column reduction and reduction transfer, and
// returns the number of rows left unassigned
func columnReduction(n int, cost [][]float64, freeRows, rowSol, colSol []int,
	v []float64) int {

	unique := make([]bool, n)

	for i := 0; i < n; i++ {
		rowSol[i] = -1
		v[i] = largeCost
		colSol[i] = 0
	}

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if c := cost[i][j]; c < v[j] {
				v[j] = c
				colSol[j] = i
			}
		}
	}

	for i := 0; i < n; i++ {
		unique[i] = true
	}

	for j := n - 1; j >= 0; j-- {
		i := colSol[j]
		if rowSol[i] < 0 {
			rowSol[i] = j
		} else {
			unique[i] = false
			colSol[j] = -1
		}
	}

	nFree := 0

	for i := 0; i < n; i++ {

		if rowSol[i] < 0 {
			freeRows[nFree] = i
			nFree++

		} else if unique[i] {

			j := rowSol[i]
			minVal := largeCost

			for j2 := 0; j2 < n; j2++ {
				if j2 == j {
					continue
				}

				if c := cost[i][j2] - v[j2]; c < minVal {
					minVal = c
				}
			}

			v[j] -= minVal
		}
	}

	return nFree
}

// augmentingRowReduction assigns free rows by alternating over the two
// smallest reduced costs per row, and returns the rows still unassigned
func augmentingRowReduction(n int, cost [][]float64, nFreeRows int, freeRows,
	rowSol, colSol []int, v []float64) int {

	current := 0
	newFreeRows := 0
	rrCnt := 0

	for current < nFreeRows {

		rrCnt++
		freeI := freeRows[current]
		current++

		// find the two columns with the smallest reduced cost for this row
		j1 := 0
		v1 := cost[freeI][0] - v[0]
		j2 := -1
		v2 := largeCost

		for j := 1; j < n; j++ {
			c := cost[freeI][j] - v[j]
			if c < v2 {
				if c >= v1 {
					v2 = c
					j2 = j
				} else {
					v2 = v1
					v1 = c
					j2 = j1
					j1 = j
				}
			}
		}

		i0 := colSol[j1]
		v1New := v[j1] - (v2 - v1)
		v1Lowers := v1New < v[j1]

		if rrCnt < current*n {
			if v1Lowers {
				v[j1] = v1New
			} else if i0 >= 0 && j2 >= 0 {
				j1 = j2
				i0 = colSol[j2]
			}

			if i0 >= 0 {
				if v1Lowers {
					current--
					freeRows[current] = i0
				} else {
					freeRows[newFreeRows] = i0
					newFreeRows++
				}
			}
		} else {
			if i0 >= 0 {
				freeRows[newFreeRows] = i0
				newFreeRows++
			}
		}

		rowSol[freeI] = j1
		colSol[j1] = freeI
	}

	return newFreeRows
}

// findMinCols moves the columns with minimum d[j] onto the SCAN list and
// returns the new list bound
func findMinCols(n, lo int, d []float64, cols []int) int {

	hi := lo + 1
	mind := d[cols[lo]]

	for k := hi; k < n; k++ {

		j := cols[k]

		if d[j] <= mind {
			if d[j] < mind {
				hi = lo
				mind = d[j]
			}

			cols[k] = cols[hi]
			cols[hi] = j
			hi++
		}
	}

	return hi
}

// scanCols scans the TODO columns trying to lower their d using the SCAN
// columns, returning an unassigned column when one becomes reachable at the
// current minimum, or -1
func scanCols(n int, cost [][]float64, lo, hi *int, d []float64,
	cols, pred, colSol []int, v []float64) int {

	for *lo != *hi {

		j := cols[*lo]
		*lo++
		i := colSol[j]
		mind := d[j]
		h := cost[i][j] - v[j] - mind

		for k := *hi; k < n; k++ {
			j = cols[k]
			cred := cost[i][j] - v[j] - h

			if cred < d[j] {
				d[j] = cred
				pred[j] = i

				if cred == mind {
					if colSol[j] < 0 {
						return j
					}

					cols[k] = cols[*hi]
					cols[*hi] = j
					(*hi)++
				}
			}
		}
	}

	return -1
}

// findPath runs one iteration of the modified Dijkstra shortest augmenting
// path search from startI and returns the end column of the path
func findPath(n int, cost [][]float64, startI int, colSol []int, v []float64,
	pred []int) int {

	lo := 0
	hi := 0
	finalJ := -1
	nReady := 0
	cols := make([]int, n)
	d := make([]float64, n)

	for i := 0; i < n; i++ {
		cols[i] = i
		pred[i] = startI
		d[i] = cost[startI][i] - v[i]
	}

	for finalJ == -1 {

		if lo == hi {
			nReady = lo
			hi = findMinCols(n, lo, d, cols)

			for k := lo; k < hi; k++ {
				if j := cols[k]; colSol[j] < 0 {
					finalJ = j
				}
			}
		}

		if finalJ == -1 {
			finalJ = scanCols(n, cost, &lo, &hi, d, cols, pred, colSol, v)
		}
	}

	// update column prices of the READY columns
	mind := d[cols[lo]]

	for k := 0; k < nReady; k++ {
		j := cols[k]
		v[j] += d[j] - mind
	}

	return finalJ
}

// augment finds augmenting paths for all remaining free rows
func augment(n int, cost [][]float64, nFreeRows int, freeRows,
	rowSol, colSol []int, v []float64) error {

	pred := make([]int, n)

	for _, freeI := range freeRows[:nFreeRows] {

		i := -1
		k := 0

		j := findPath(n, cost, freeI, colSol, v, pred)

		if j < 0 || j >= n {
			return errors.New("augmenting path ended on an invalid column")
		}

		// walk the path back, flipping assignments along the way
		for i != freeI {

			i = pred[j]
			colSol[j] = i
			j, rowSol[i] = rowSol[i], j
			k++

			if k >= n {
				return errors.New("augmenting path longer than the matrix size")
			}
		}
	}

	return nil
}
