package secrandom

import (
	"fmt"

	"github.com/VictoriaMetrics/metrics"
	"github.com/hashicorp/go-multierror"
)

// outcome is the tri-state result of a single source attempt.
type outcome uint8

const (
	outcomeSuccess outcome = iota
	// outcomeFailure means the source was attempted and a genuine error
	// occurred. The accompanying error carries the underlying cause.
	outcomeFailure
	// outcomeUnsupported means the source is absent on this build or
	// platform and was never attempted. It never carries an error that is
	// meaningful beyond "try the next source".
	outcomeUnsupported
)

// fillFunc fills b completely from one entropy source. Only the device-file
// source makes use of the descriptor cache.
type fillFunc func(b []byte, cache *DeviceCache) (outcome, error)

type entropySource struct {
	name     string
	fill     fillFunc
	attempts *metrics.Counter
	failures *metrics.Counter
}

func newEntropySource(name string, fill fillFunc) *entropySource {
	return &entropySource{
		name:     name,
		fill:     fill,
		attempts: metrics.GetOrCreateCounter(fmt.Sprintf(`secrandom_source_attempts_total{source=%q}`, name)),
		failures: metrics.GetOrCreateCounter(fmt.Sprintf(`secrandom_source_failures_total{source=%q}`, name)),
	}
}

func (s *entropySource) attempt(b []byte, cache *DeviceCache) (outcome, error) {
	s.attempts.Inc()
	oc, err := s.fill(b, cache)
	if oc == outcomeFailure {
		s.failures.Inc()
	}
	return oc, err
}

var (
	fortunaSource   = newEntropySource("fortuna", fillFortuna)
	arc4Source      = newEntropySource("arc4random", fillArc4Random)
	getrandomSource = newEntropySource("getrandom", fillGetrandom)
	urandomSource   = newEntropySource("urandom", fillURandom)
	nativeSource    = newEntropySource("os-native", fillOSNative)

	// fallbackOrder is the fixed candidate order on platforms where more
	// than one source may be available. Sources absent on this build simply
	// report unsupported and the next one is tried.
	fallbackOrder = []*entropySource{arc4Source, getrandomSource, urandomSource, fortunaSource}
)

// complianceRequired reports whether only the Fortuna source may satisfy a
// request before any system source is consulted. It is evaluated fresh on
// every call, so runtime config changes take effect immediately.
func complianceRequired() bool {
	if preferFortuna {
		return true
	}
	return fortunaOnlyOption != nil && fortunaOnlyOption()
}

// FortunaOnly reports whether requests are currently restricted to the
// Fortuna source, either by config or by build tag. It is side-effect-free.
func FortunaOnly() bool {
	return complianceRequired()
}

// Fill fills b with cryptographically secure random bytes, trying the
// available entropy sources in order and stopping at the first success.
// cache may be nil, in which case the device-file source opens and closes
// its own descriptor within the call.
//
// A zero-length or nil buffer is a no-op and always succeeds. On error the
// contents of b are undefined: a partially filled buffer is never reported
// as success, but it is also not zeroed.
func Fill(b []byte, cache *DeviceCache) error {
	if len(b) == 0 {
		return nil
	}

	// On platforms with a native secure random API, that API is the only
	// source and its result is final.
	if nativeOnly {
		oc, err := nativeSource.attempt(b, cache)
		switch oc {
		case outcomeSuccess:
			return nil
		case outcomeFailure:
			return fmt.Errorf("%w: %w", ErrIO, err)
		default:
			return ErrNotSupported
		}
	}

	var merr *multierror.Error

	// If compliance demands it, the Fortuna source goes first. A success
	// must return here - falling through to an uncertified source on
	// success is not permitted.
	mandatory := complianceRequired()
	if mandatory {
		oc, err := fortunaSource.attempt(b, cache)
		switch oc {
		case outcomeSuccess:
			return nil
		case outcomeFailure:
			merr = multierror.Append(merr, fmt.Errorf("%s: %w", fortunaSource.name, err))
		}
	}

	for _, src := range fallbackOrder {
		// Do not attempt the Fortuna source twice within one call.
		if mandatory && src == fortunaSource {
			continue
		}
		oc, err := src.attempt(b, cache)
		switch oc {
		case outcomeSuccess:
			return nil
		case outcomeFailure:
			merr = multierror.Append(merr, fmt.Errorf("%s: %w", src.name, err))
		}
	}

	// Distinguish "no capable source exists on this build" from "a source
	// exists but is currently broken".
	if merr == nil {
		return ErrNotSupported
	}
	return fmt.Errorf("%w: %w", ErrIO, merr.ErrorOrNil())
}
