// SPDX-License-Identifier: MIT
// Package builder generates Hamiltonian cycle instances as *matrix.Adjacency
// values, for fixtures, examples and the "hccheck generate" command.
//
// One orchestrator, Build(n, opts, cons...), allocates an n-node adjacency
// and applies Constructors in order; each Constructor only adds edges over
// nodes 1..n. Composition gives the usual fixtures:
//
//	Build(n, nil, Cycle())                       // C_n, identity tour valid
//	Build(n, nil, Path())                        // P_n, Hamiltonian path only
//	Build(n, nil, Complete())                    // K_n, every permutation valid
//	Build(n, nil, Wheel())                       // W_n, hub = node n
//	Build(n, nil, Star())                        // no Hamiltonian cycle for n ≥ 3
//	Build(n, []BuilderOption{WithSeed(7)},
//	      CycleThrough(order), RandomChords(0.1)) // planted tour + noise
//
// Determinism: same n, options, seed and constructor order ⇒ identical matrix.
// Constructors never panic on bad parameters; they return sentinel errors.
// Option constructors panic on programmer errors (nil RNG).
package builder
