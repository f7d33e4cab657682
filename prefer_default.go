//go:build !secrandom_prefer_fortuna

package secrandom

const preferFortuna = false
