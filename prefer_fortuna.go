//go:build secrandom_prefer_fortuna

package secrandom

// preferFortuna is set via the secrandom_prefer_fortuna build tag and makes
// the Fortuna source the mandatory first choice regardless of config.
const preferFortuna = true
