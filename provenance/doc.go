// Package provenance emits the run-metadata document written alongside
// the enumerator's raw record stream: what ran, on which inputs, with
// which resolved options, and how many records came out. Downstream
// tooling consumes it as provenance only; correctness never depends on it.
package provenance
