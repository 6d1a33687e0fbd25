// Package vitals validates free-text vital-sign input against the ranges
// the assessment flow accepts without asking for confirmation.
//
// Every function here is pure. Empty or unparseable input never produces a
// warning; that case is reported by IsFormComplete instead.
package vitals
