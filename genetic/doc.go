// Package genetic provides compact genetic-algorithm primitives: binary
// chromosomes, one-point crossover, bit-flip mutation, tournament
// selection, and a generational evolution loop.
//
// The building blocks compose through small interfaces:
//
//   - Chromosome — anything with a Fitness() (higher is fitter).
//   - Crossover / Mutation — genetic operators over chromosome pairs.
//   - Selection — picks parents from a Population.
//   - StoppingCondition — decides when Evolve returns.
//
// A minimal run:
//
//	rng := rand.New(rand.NewSource(42))
//	pop := genetic.MustPopulation(50, 0.1)
//	// ... seed pop with genetic.NewBinaryChromosome values ...
//	final, err := genetic.Evolve(pop, genetic.FixedGenerations(100),
//	    genetic.WithCrossover(genetic.OnePointCrossover{}, 0.9),
//	    genetic.WithMutation(genetic.BinaryMutation{}, 0.02),
//	    genetic.WithSelection(genetic.TournamentSelection{Arity: 2}),
//	    genetic.WithRand(rng),
//	)
//	if err != nil {
//	    // ...
//	}
//	best := final.Fittest()
//
// All randomness flows through one injected *rand.Rand, so runs with the
// same seed are reproducible.
//
// Errors:
//   - ErrInvalidRate — elitism rate outside [0, 1).
//   - ErrInvalidCapacity — population capacity below 1.
//   - ErrPopulationFull — Add beyond the population capacity.
//   - ErrLengthMismatch — crossover or mutation over chromosomes of
//     incompatible shape.
//   - ErrEmptyPopulation — evolving or selecting from a population with no
//     individuals.
package genetic
