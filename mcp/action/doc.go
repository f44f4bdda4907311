// Package action exposes the tally tools as a Fluxor action service so that
// workflows can call them as "tally.<method>" steps.
package action
