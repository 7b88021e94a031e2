package genetic

import (
	"math/rand"
	"testing"
)

func TestRandomChromosome(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, n := range []int{1, 2, 5, 20} {
		c := randomChromosome(rng, n)
		if !c.Valid(n) {
			t.Errorf("randomChromosome(%d) = %v is not a permutation", n, c)
		}
	}
}

func TestValid(t *testing.T) {
	tests := []struct {
		name  string
		chrom Chromosome
		n     int
		want  bool
	}{
		{name: "Identity", chrom: Chromosome{0, 1, 2}, n: 3, want: true},
		{name: "Shuffled", chrom: Chromosome{2, 0, 1}, n: 3, want: true},
		{name: "Empty", chrom: Chromosome{}, n: 0, want: true},
		{name: "Wrong length", chrom: Chromosome{0, 1}, n: 3, want: false},
		{name: "Duplicate", chrom: Chromosome{0, 0, 2}, n: 3, want: false},
		{name: "Out of range", chrom: Chromosome{0, 1, 3}, n: 3, want: false},
		{name: "Negative", chrom: Chromosome{0, -1, 2}, n: 3, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.chrom.Valid(tt.n); got != tt.want {
				t.Errorf("Valid(%d) = %v, want %v", tt.n, got, tt.want)
			}
		})
	}
}

func TestOrderedCrossoverPreservesPermutation(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	const n = 12

	for trial := 0; trial < 500; trial++ {
		a := randomChromosome(rng, n)
		b := randomChromosome(rng, n)
		child := orderedCrossover(rng, a, b)
		if !child.Valid(n) {
			t.Fatalf("trial %d: child %v is not a permutation of parents %v and %v", trial, child, a, b)
		}
	}
}

func TestOrderedCrossoverSingleGene(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	a := Chromosome{0}
	child := orderedCrossover(rng, a, Chromosome{0})
	if !child.Valid(1) {
		t.Fatalf("child %v invalid", child)
	}
	child[0] = 99
	if a[0] != 0 {
		t.Errorf("child must be independent of parent")
	}
}

func TestSwapMutate(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	const n = 10

	for trial := 0; trial < 200; trial++ {
		c := randomChromosome(rng, n)
		before := c.Clone()
		swapMutate(rng, c)

		if !c.Valid(n) {
			t.Fatalf("trial %d: mutated %v is not a permutation", trial, c)
		}
		changed := 0
		for i := range c {
			if c[i] != before[i] {
				changed++
			}
		}
		if changed != 2 {
			t.Fatalf("trial %d: expected exactly 2 changed positions, got %d", trial, changed)
		}
	}

	single := Chromosome{0}
	swapMutate(rng, single)
	if single[0] != 0 {
		t.Errorf("single-gene chromosome must not change")
	}
}
