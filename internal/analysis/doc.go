// Package analysis provides post-run trajectory analysis.
//
// The package reduces recorded trajectories to summary numbers:
//
//   - [Summarize]: per-component mean, standard deviation and range
//   - [DominantFrequency]: strongest oscillation frequency via the FFT
//     power spectrum
//
// # Oscillation Frequency
//
// For a sampled component with uniform spacing dt:
//
//	freq := analysis.DominantFrequency(rec.Column(0), dt)
package analysis
