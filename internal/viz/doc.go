// Package viz renders synthesized ladder networks for the terminal: an
// ASCII schematic of the series/shunt branches, styled result summaries,
// and the magnitude response of the underlying impedance function.
package viz
