package genetic

import "math/rand"

// randomChromosome builds a uniformly random permutation of n task indices.
func randomChromosome(rng *rand.Rand, n int) Chromosome {
	return Chromosome(rng.Perm(n))
}

// Clone returns an independent copy.
func (c Chromosome) Clone() Chromosome {
	out := make(Chromosome, len(c))
	copy(out, c)
	return out
}

// Valid reports whether c is a permutation of 0..n-1.
func (c Chromosome) Valid(n int) bool {
	if len(c) != n {
		return false
	}
	seen := make([]bool, n)
	for _, idx := range c {
		if idx < 0 || idx >= n || seen[idx] {
			return false
		}
		seen[idx] = true
	}
	return true
}

// orderedCrossover recombines two parents with OX: a random segment of a is
// kept in place, the remaining positions are filled with b's genes in b's
// order. The child is always a valid permutation.
func orderedCrossover(rng *rand.Rand, a, b Chromosome) Chromosome {
	n := len(a)
	if n < 2 {
		return a.Clone()
	}

	lo := rng.Intn(n)
	hi := rng.Intn(n)
	if lo > hi {
		lo, hi = hi, lo
	}

	child := make(Chromosome, n)
	inSegment := make([]bool, n)
	for i := lo; i <= hi; i++ {
		child[i] = a[i]
		inSegment[a[i]] = true
	}

	pos := (hi + 1) % n
	for i := 0; i < n; i++ {
		gene := b[(hi+1+i)%n]
		if inSegment[gene] {
			continue
		}
		child[pos] = gene
		pos = (pos + 1) % n
	}

	return child
}

// swapMutate exchanges two random positions in place.
func swapMutate(rng *rand.Rand, c Chromosome) {
	n := len(c)
	if n < 2 {
		return
	}
	i := rng.Intn(n)
	j := rng.Intn(n)
	for j == i {
		j = rng.Intn(n)
	}
	c[i], c[j] = c[j], c[i]
}
