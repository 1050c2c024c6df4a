/*
Package rnaup computes the minimum free energy (MFE) interaction site
between two RNA sequences using a full, seed-free dynamic-programming
model in the style of RNAup/IntaRNA's "mfe" predictor.

Given two sequences it finds the single contiguous base-paired window on
each sequence whose total free energy - hybridization energy plus
dangling-end contributions plus accessibility (unpairing) penalties - is
minimal, and reports that optimum together with the base pairs that
realize it.

The package only implements the dynamic-programming engine: allocation of
a sparse 4-dimensional energy tensor, the pruning rules that mark whole
sub-structures infeasible before any arithmetic runs, a two-pass fill
(hybridization energies, then total energies), and a traceback that
reconstructs base pairs from the filled tensor. Thermodynamics, sequence
accessibility, and result formatting are supplied by the caller through
the InteractionEnergy, Accessibility and OutputHandler interfaces - see the rnaup/energy,
rnaup/accessibility, and rnaup/output subpackages for ready-made
implementations.
*/
package rnaup
